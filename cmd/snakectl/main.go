package main

import (
	"github.com/snakeduel/snakeduel-go/internal/cli"
)

func main() {
	cli.Execute()
}
