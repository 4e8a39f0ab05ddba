// Command chip8 is the CLI front-end for the chip8emu interpreter: it
// can run a ROM against either the ebiten GUI or the termbox terminal
// backend, or open a native file picker to choose one.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// currentReleaseVersion is reported by the version subcommand.
const currentReleaseVersion = "v0.1.0"

var rootCmd = &cobra.Command{
	Use:   "chip8 [command]",
	Short: "chip8 is a CHIP-8 emulator",
	Long:  "chip8 is a CHIP-8 emulator with GUI and terminal front-ends",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Unknown command. Try `chip8 help` for more information")
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(pickCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
