package main

import "github.com/andrescamacho/harbormaster-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
