// Package main provides the sweets CLI.
package main

import "github.com/mesh-intelligence/sweets/internal/cli"

func main() {
	cli.Execute()
}
