package core

//go:generate go run ryugo/tools/gentables -out tables.go
