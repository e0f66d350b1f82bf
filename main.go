package main

import "github.com/iksnae/claude-logger/cmd"

func main() {
	cmd.Execute()
}
