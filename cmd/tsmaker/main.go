package main

import (
	"os"

	"github.com/PedroSales117/ts-cli-template-maker/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
