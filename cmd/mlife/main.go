package main

import (
	"github.com/luxlife/millionaire-go/internal/cli"
)

func main() {
	cli.Execute()
}
