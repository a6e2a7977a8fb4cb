//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Vet runs go vet over every package.
func Vet() error {
	return sh.RunV(binGo, "vet", "./...")
}

// Lint runs go vet, then golangci-lint with a bounded run time.
func Lint() error {
	mg.Deps(Vet)
	return sh.RunV("golangci-lint", "run", "--timeout", "5m", "./...")
}
