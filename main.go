package main

import (
	"github.com/GuglioIsStupid/OpenUtau/cmd"
)

func main() {
	cmd.Execute()
}
