package main

import (
	"personal-manager/cmd/cli"
)

func main() {
	cli.RunCLI()
}
