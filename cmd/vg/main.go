package main

import "github.com/Cosmos506/Gamification-life/cmd/vg/root"

func main() {
	root.Execute()
}
