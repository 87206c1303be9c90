//go:build mage

// Package main provides build targets for the hashtable module using Mage.
//
// Usage:
//
//	mage test:all    Run all tests
//	mage test:race   Run all tests with the race detector
//	mage test:cover  Run tests and write coverage to coverage.out
//	mage test:bench  Run benchmarks
//	mage lint        Run golangci-lint
//	mage clean       Remove coverage artifacts
//	mage stats       Print Go LOC counts
package main

import (
	"os"

	"github.com/magefile/mage/sh"
)

const (
	binGo        = "go"
	coverageFile = "coverage.out"
)

// Clean removes coverage artifacts and the go test cache.
func Clean() error {
	if err := os.Remove(coverageFile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return sh.RunV(binGo, "clean", "-testcache")
}
