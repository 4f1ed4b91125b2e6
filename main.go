// main package for gotraps command-line tool
// Package main is the entry point for the gotraps CLI.
package main

import "gotraps.dev/pkg/gotraps/cmd"

func main() {
	cmd.Execute()
}
