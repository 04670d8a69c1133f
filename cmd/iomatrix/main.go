package main

import "github.com/katalvlaran/iomatrix/cmd/iomatrix/cmd"

func main() {
	cmd.Execute()
}
