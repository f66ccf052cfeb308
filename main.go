package main

import "github.com/they4kman/websweep/cmd"

func main() {
	cmd.Execute()
}
