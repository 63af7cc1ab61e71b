package main

import (
	"os"

	"github.com/jasonmoo/confread/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
