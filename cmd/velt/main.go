package main

import (
	"github.com/veltlang/velt/cmd/velt/commands"
)

func main() {
	commands.Execute()
}
