package main

import (
	"github.com/gistkit/gistkit/internal/cli"
)

func main() {
	cli.Execute()
}
