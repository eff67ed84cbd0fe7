package main

import (
	"github.com/katalvlaran/cityroute/cmd/cityroute/commands"
)

func main() {
	commands.Execute()
}
