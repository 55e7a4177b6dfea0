package main

import "github.com/dfalcao/modscout/cmd"

func main() {
	cmd.Execute()
}
