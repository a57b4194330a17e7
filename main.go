package main

import "github.com/ajensen/midi2json/cmd"

func main() {
	cmd.Execute()
}
