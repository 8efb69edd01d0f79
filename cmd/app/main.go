package main

import (
	"os"

	"github.com/mariomediam/maps-backend/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
