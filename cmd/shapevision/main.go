package main

import "github.com/pmonasse/shapevision-go/cmd/shapevision/cmd"

func main() {
	cmd.Execute()
}
