//go:build mage

// Package main provides build targets for the drills project using Mage.
//
// Usage:
//
//	mage build      Compile drills binary to bin/
//	mage test       Run all tests
//	mage lint       Run golangci-lint
//	mage scenarios  Build, then run every scenario
//	mage clean      Remove build artifacts
//	mage install    Install drills to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "drills"
	binaryDir  = "bin"
	cmdDir     = "./cmd/drills"
)

// Build compiles the drills binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", binaryPath(), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Scenarios builds the binary and runs every scenario through it.
func Scenarios() error {
	mg.Deps(Build)
	return sh.RunV(binaryPath(), "run", "--all")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	return sh.Copy(filepath.Join(gopath, "bin", binaryName), binaryPath())
}

func binaryPath() string {
	return filepath.Join(binaryDir, binaryName)
}
