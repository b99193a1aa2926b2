package main

import "github.com/douhashi/autocomment/cmd"

func main() {
	cmd.Execute()
}
