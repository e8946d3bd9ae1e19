package main

import "github.com/2beens/gymcycle/cmd/fitadmin/commands"

func main() {
	commands.Execute()
}
