package main

import "github.com/saghen/cmp-docsite/cmd"

func main() {
	cmd.Execute()
}
