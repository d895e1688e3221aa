package main

import (
	"github.com/NVIDIA/fileversion/pkg/cli"
)

func main() {
	cli.Execute()
}
