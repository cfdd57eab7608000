package main

import (
	"os"

	"github.com/riverfjs/gifintext-go/internal/cmd/root"
	"github.com/riverfjs/gifintext-go/internal/view"
)

func main() {
	cmd := root.NewCmdRoot()
	if err := cmd.Execute(); err != nil {
		noColor, _ := cmd.PersistentFlags().GetBool("no-color")
		renderer := view.NewRenderer(view.FormatTable, noColor)
		renderer.SetWriter(os.Stderr)
		renderer.Error(err.Error())
		os.Exit(1)
	}
}
