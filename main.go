package main

import "medley/cmd"

func main() {
	cmd.Execute()
}
