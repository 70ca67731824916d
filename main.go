package main

import "github.com/gaurav-prasanna/hyeat/cmd"

func main() {
	cmd.Execute()
}
