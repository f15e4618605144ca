// Package main is the entry point for the stubcorpus CLI.
package main

import "stubcorpus.dev/pkg/stubcorpus/cmd"

func main() {
	cmd.Execute()
}
