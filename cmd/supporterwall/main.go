package main

import (
	"os"

	"github.com/ioe2040/supporter-wall-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
