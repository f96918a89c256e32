//go:build mage

// Package main provides build targets for the rolodex project using Mage.
//
// Usage:
//
//	mage build       Compile rolodex binary to bin/
//	mage test:all    Run all tests
//	mage test:cover  Run all tests with coverage
//	mage lint        Run golangci-lint
//	mage clean       Remove build artifacts
//	mage install     Install rolodex to GOPATH/bin
//	mage stats       Print Go LOC counts per package
package main
