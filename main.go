package main

import "github.com/macplas/surfinterp/cmd"

func main() {
	cmd.Execute()
}
