package main

import "github.com/paulmaxus/ddproc/cmd"

func main() {
	cmd.Execute()
}
