package main

import "github.com/lixenwraith/neat-arena/cmd/arena/cmd"

func main() {
	cmd.Execute()
}
