package main

import "github.com/jkarvonen/cinescope/cmd"

// execute is swapped in tests.
var execute = cmd.Execute

func main() {
	execute()
}
