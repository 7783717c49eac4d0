//go:build ryudebug

package core

const debugAsserts = true
