package main

import "circulation/cmd/circulationctl/command"

func main() {
	command.Execute()
}
