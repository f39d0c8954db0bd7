package main

import "github.com/Ramavadhoota/fitflow/cmd/fitflow/commands"

func main() {
	commands.Execute()
}
