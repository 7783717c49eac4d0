//go:build !ryudebug

package core

// debugAsserts gates precondition checks in the hot integer kernels.
// Release builds compile the checks out entirely; build with -tags ryudebug
// to enable them.
const debugAsserts = false
