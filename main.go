package main

import "github.com/jupiter-tools/mongotest/cmd"

func main() {
	cmd.Execute()
}
