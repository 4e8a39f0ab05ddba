package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nevisdale/chip8emu/internal/beep"
	"github.com/nevisdale/chip8emu/internal/chip8"
	"github.com/nevisdale/chip8emu/internal/renderer"
	"github.com/nevisdale/chip8emu/internal/termview"
)

var (
	fgColorHex string
	bgColorHex string
	backend    string
	tps        int
	muted      bool
)

// runCmd boots a ROM and hands it to the requested host backend.
var runCmd = &cobra.Command{
	Use:   "run path/to/rom",
	Short: "run a ROM",
	Args:  cobra.ExactArgs(1),
	RunE:  runRom,
}

func init() {
	runCmd.Flags().StringVar(&fgColorHex, "fg", "FFFFFF", "rgb foreground color in hex")
	runCmd.Flags().StringVar(&bgColorHex, "bg", "000000", "rgb background color in hex")
	runCmd.Flags().StringVar(&backend, "backend", "gui", "display backend: gui or term")
	runCmd.Flags().IntVar(&tps, "tps", chip8.DefaultTPS, "cycles per second")
	runCmd.Flags().BoolVar(&muted, "mute", false, "disable sound (gui backend only)")
}

func runRom(cmd *cobra.Command, args []string) error {
	rom, err := chip8.NewRomFromFile(args[0])
	if err != nil {
		return fmt.Errorf("couldn't create a rom from the file: %w", err)
	}

	cpu := chip8.New()
	if err := cpu.Boot(rom); err != nil {
		return fmt.Errorf("couldn't boot the rom: %w", err)
	}

	switch backend {
	case "gui":
		return runGui(cpu)
	case "term":
		return runTerm(cpu)
	default:
		return fmt.Errorf("unknown backend %q: must be gui or term", backend)
	}
}

func runGui(cpu *chip8.Cpu) error {
	fgColor, err := renderer.DecodeColorFromHex(fgColorHex)
	if err != nil {
		return fmt.Errorf("couldn't decode fg color from hex %s: %w", fgColorHex, err)
	}
	bgColor, err := renderer.DecodeColorFromHex(bgColorHex)
	if err != nil {
		return fmt.Errorf("couldn't decode bg color from hex %s: %w", bgColorHex, err)
	}

	var player *beep.Beep
	if !muted {
		player, err = beep.New()
		if err != nil {
			fmt.Fprintf(os.Stderr, "couldn't init audio, continuing muted: %s\n", err.Error())
		}
	}

	r := renderer.NewFromConfig(cpu, player, renderer.Config{
		FgColor: fgColor,
		BgColor: bgColor,
		TPS:     tps,
	})
	return r.Run()
}

func runTerm(cpu *chip8.Cpu) error {
	v, err := termview.New(cpu)
	if err != nil {
		return fmt.Errorf("couldn't init terminal view: %w", err)
	}
	defer v.Close()

	return v.Run(tps)
}
