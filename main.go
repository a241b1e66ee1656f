package main

import "github.com/pubdex/pubdex/cmd"

func main() {
	cmd.Execute()
}
