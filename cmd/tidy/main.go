package main

import "github.com/go-sif/tidy/internal/cli"

func main() {
	cli.Execute()
}
