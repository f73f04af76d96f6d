package main

import (
	"github.com/gamestorehq/gamestore/internal/cli"
)

func main() {
	cli.Execute()
}
