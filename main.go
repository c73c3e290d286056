package main

import "sniffscope/cmd"

func main() {
	cmd.Execute()
}
