package main

import (
	"os"

	"plasmid/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
