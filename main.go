package main

import (
	"github.com/hweifluids/ABC-Flow-Generator/cmd"
)

func main() {
	cmd.Execute()
}
