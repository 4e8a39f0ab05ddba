// Package termview renders the CHIP-8 framebuffer to a terminal using
// termbox-go, for running ROMs over SSH or without a GUI toolkit
// available. It is the terminal counterpart to internal/renderer's
// ebiten window.
package termview

import (
	"fmt"
	"time"

	"github.com/nsf/termbox-go"

	"github.com/nevisdale/chip8emu/internal/chip8"
)

// keyMap mirrors the classic CHIP-8 keypad layout used by the rest of
// the host backends:
//
//	1 2 3 C  -> 1 2 3 4
//	4 5 6 D  -> Q W E R
//	7 8 9 E  -> A S D F
//	A 0 B F  -> Z X C V
var keyMap = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// keyHoldDuration is how long a keypad key is reported as held after a
// single terminal keypress event. Terminals only deliver key-down
// events, not key-up, so a press is simulated as a brief hold instead
// of a true press/release pair.
const keyHoldDuration = 150 * time.Millisecond

var (
	litCell  = termbox.Cell{Ch: ' ', Bg: termbox.ColorWhite}
	darkCell = termbox.Cell{Ch: ' ', Bg: termbox.ColorBlack}
)

// View drives a Cpu from the terminal: it owns the termbox session,
// polls keyboard events on a background goroutine, and renders the
// framebuffer one cell per pixel. All Cpu calls happen on the Run
// goroutine only — the poll goroutine hands events over on a channel
// rather than touching the Cpu itself, since spec §5 requires Cpu
// methods to be serialized onto one logical thread.
type View struct {
	cpu    *chip8.Cpu
	events chan termbox.Event
	quit   chan struct{}

	releaseAt map[uint8]time.Time
}

// New initializes termbox and returns a View ready to Run. Close must
// be called to restore the terminal.
func New(cpu *chip8.Cpu) (*View, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("init termbox: %w", err)
	}
	termbox.SetOutputMode(termbox.OutputNormal)

	v := &View{
		cpu:       cpu,
		events:    make(chan termbox.Event),
		quit:      make(chan struct{}),
		releaseAt: make(map[uint8]time.Time),
	}
	go v.poll()

	return v, nil
}

// Close restores the terminal to its prior state.
func (v *View) Close() {
	close(v.quit)
	termbox.Close()
}

func (v *View) poll() {
	for {
		event := termbox.PollEvent()
		select {
		case v.events <- event:
		case <-v.quit:
			return
		}
	}
}

// Run drives the emulator at tps cycles per second until the escape
// key is pressed or StepCycle returns an error. It does not watch the
// quit channel; that channel only stops the poll goroutine on Close.
func (v *View) Run(tps int) error {
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	for {
		select {
		case event := <-v.events:
			if event.Type != termbox.EventKey {
				continue
			}
			if event.Key == termbox.KeyEsc {
				return nil
			}
			if key, ok := keyMap[event.Ch]; ok {
				v.cpu.OnKeyPressed(key)
				v.releaseAt[key] = time.Now().Add(keyHoldDuration)
			}
		case <-ticker.C:
			v.releaseExpiredKeys()
			if err := v.cpu.StepCycle(); err != nil {
				return fmt.Errorf("step cycle: %w", err)
			}
			v.draw()
		}
	}
}

// releaseExpiredKeys clears every simulated keypress whose hold
// duration has elapsed. Called only from the Run goroutine, so it
// never races StepCycle's reads of the keypad.
func (v *View) releaseExpiredKeys() {
	now := time.Now()
	for key, deadline := range v.releaseAt {
		if !now.Before(deadline) {
			v.cpu.OnKeyReleased(key)
			delete(v.releaseAt, key)
		}
	}
}

func (v *View) draw() {
	fb := v.cpu.FrameBuffer()
	for y := 0; y < v.cpu.Height(); y++ {
		for x := 0; x < v.cpu.Width(); x++ {
			cell := darkCell
			if fb.At(x, y) {
				cell = litCell
			}
			termbox.SetCell(x, y, cell.Ch, cell.Fg, cell.Bg)
		}
	}
	termbox.Flush()
}
