package main

import (
	"os"

	"blobtidy/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
