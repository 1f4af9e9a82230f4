package main

import (
	"github.com/andrescamacho/prunplan/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
