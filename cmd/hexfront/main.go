package main

import (
	"github.com/sdudley/hexfront-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
