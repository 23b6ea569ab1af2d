package main

import "hcc/cmd"

func main() {
	cmd.Execute()
}
