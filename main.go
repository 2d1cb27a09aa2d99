package main

import (
	"github.com/ganten7/ivory/cmd"
)

func main() {
	cmd.Execute()
}
