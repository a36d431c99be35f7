package main

import "github.com/koki-develop/asciimg/cmd"

func main() {
	cmd.Execute()
}
