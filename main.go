package main

import "github.com/kozaktomas/contact-sheet/cmd"

func main() {
	cmd.Execute()
}
