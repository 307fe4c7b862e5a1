package main

import "github.com/shaharia-lab/contactmail/cmd"

func main() {
	cmd.Execute()
}
