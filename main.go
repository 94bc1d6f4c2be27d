package main

import "irkit/cmd"

func main() {
	cmd.Execute()
}
