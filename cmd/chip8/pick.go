package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sqweek/dialog"
)

// pickCmd opens a native "Open ROM..." file dialog and prints the
// chosen path, so it can be piped straight into `chip8 run`:
//
//	chip8 run "$(chip8 pick)"
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "open a native file dialog and print the chosen ROM path",
	Args:  cobra.NoArgs,
	RunE:  runPick,
}

func runPick(cmd *cobra.Command, args []string) error {
	dlg := dialog.File().Title("Load CHIP-8 ROM")
	dlg.Filter("All Files", "*")
	dlg.Filter("CHIP-8 ROMs", "ch8", "rom")

	path, err := dlg.Load()
	if err != nil {
		return fmt.Errorf("couldn't pick a rom file: %w", err)
	}

	fmt.Println(path)
	return nil
}
