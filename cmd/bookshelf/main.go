package main

import "bookshelf/cmd/bookshelf/command"

func main() {
	command.Execute()
}
