package main

import "github.com/honganh1206/parley/commands"

func main() {
	commands.Execute()
}
