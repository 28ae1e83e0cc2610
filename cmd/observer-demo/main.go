package main

import (
	"github.com/jeremyforan/observer/cmd/observer-demo/cmd"
)

func main() {
	cmd.Execute()
}
