package main

import (
	"os"

	"tweet-sentiment/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
