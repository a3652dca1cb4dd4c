package main

import "blogly/commands"

func main() {
	commands.Execute()
}
