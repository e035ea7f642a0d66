//go:build tools
// +build tools

// Package tools pins the versions of the code generator (EvictionListenerMock),
// the linter and benchstat used to compare the *_bench_test.go results
package tools

import (
	_ "github.com/matryer/moq"
	_ "github.com/mgechev/revive"
	_ "golang.org/x/perf/cmd/benchstat"
)
