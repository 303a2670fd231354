package main

import (
	"powers-dict/cli"
)

func main() {
	cli.Start()
}
