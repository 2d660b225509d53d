//go:build tools

package tools

// This file tracks CLI tools used during development.
// It is not compiled into the binary.
//
// - github.com/pressly/goose/v3/cmd/goose (go.mod tool directive): ad-hoc migration runs
// - github.com/matryer/moq: mocks for consumer interfaces, see go:generate lines in *_test.go
