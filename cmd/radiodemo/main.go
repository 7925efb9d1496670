// Command radiodemo exercises the radio control: an interactive host list,
// PNG frame export of the animations and layout definition inspection.
package main

import (
	"os"

	"github.com/go-drift/radiobutton/cmd/radiodemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
