// Package renderer is the ebiten-backed GUI host: it owns the window,
// the keyboard-to-keypad mapping, and the per-frame draw/update loop
// that drives the chip8.Cpu.
package renderer

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/nevisdale/chip8emu/internal/beep"
	"github.com/nevisdale/chip8emu/internal/chip8"
)

// ====================
// keyboard key mapping
// ====================
//
//	1 2 3 C  -> 1 2 3 4
//	4 5 6 D  -> Q W E R
//	7 8 9 E  -> A S D F
//	A 0 B F  -> Z X C V
var keyboardMapping = map[uint8]ebiten.Key{
	0x1: ebiten.Key1, 0x2: ebiten.Key2, 0x3: ebiten.Key3, 0xC: ebiten.Key4,
	0x4: ebiten.KeyQ, 0x5: ebiten.KeyW, 0x6: ebiten.KeyE, 0xD: ebiten.KeyR,
	0x7: ebiten.KeyA, 0x8: ebiten.KeyS, 0x9: ebiten.KeyD, 0xE: ebiten.KeyF,
	0xA: ebiten.KeyZ, 0x0: ebiten.KeyX, 0xB: ebiten.KeyC, 0xF: ebiten.KeyV,
}

var keyboardPosition = map[uint8]uint8{
	0x0: 0x1, 0x1: 0x2, 0x2: 0x3, 0x3: 0xC,
	0x4: 0x4, 0x5: 0x5, 0x6: 0x6, 0x7: 0xD,
	0x8: 0x7, 0x9: 0x8, 0xA: 0x9, 0xB: 0xE,
	0xC: 0xA, 0xD: 0x0, 0xE: 0xB, 0xF: 0xF,
}

var (
	buttonReleasedColor color.Color = MustDecodeColorFromHex("999999")
	buttonPressedColor  color.Color = MustDecodeColorFromHex("65f057")
)

// Config holds the host-facing display options.
type Config struct {
	FgColor color.Color
	BgColor color.Color
	TPS     int
}

// Renderer is an ebiten.Game implementation driving a chip8.Cpu.
type Renderer struct {
	cpu  *chip8.Cpu
	beep *beep.Beep

	fgColor color.Color
	bgColor color.Color
	tps     int

	keypadMode bool
	playing    bool
}

// NewFromConfig wires a Cpu and an optional Beep (may be nil, in which
// case the sound timer is silently ignored) into a Renderer.
func NewFromConfig(cpu *chip8.Cpu, b *beep.Beep, conf Config) *Renderer {
	tps := conf.TPS
	if tps <= 0 {
		tps = chip8.DefaultTPS
	}
	return &Renderer{
		cpu:  cpu,
		beep: b,

		fgColor: conf.FgColor,
		bgColor: conf.BgColor,
		tps:     tps,
	}
}

// Update advances the emulator by one tick and reacts to host-level
// input (quit, keypad overlay toggle, volume).
func (r *Renderer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		r.keypadMode = !r.keypadMode
	}

	if r.beep != nil {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.Key0):
			r.beep.VolumeUp()
		case inpututil.IsKeyJustPressed(ebiten.Key9):
			r.beep.VolumeDown()
		}
	}

	for chip8Key, ebitenKey := range keyboardMapping {
		if ebiten.IsKeyPressed(ebitenKey) {
			r.cpu.OnKeyPressed(chip8Key)
		} else {
			r.cpu.OnKeyReleased(chip8Key)
		}
	}

	if err := r.cpu.StepCycle(); err != nil {
		return fmt.Errorf("step cycle: %w", err)
	}

	if r.beep != nil {
		shouldPlay := r.cpu.ShouldPlayAudio()
		if shouldPlay && !r.playing {
			r.beep.Play()
		}
		r.playing = shouldPlay
	}

	return nil
}

// Draw paints the CHIP-8 framebuffer and, if toggled on, the keypad
// overlay showing which keys are currently held.
func (r *Renderer) Draw(screen *ebiten.Image) {
	chip8ScreenOffsetX := 0
	chip8ScreenOffsetY := 0

	fb := r.cpu.FrameBuffer()
	for x := 0; x < r.cpu.Width(); x++ {
		for y := 0; y < r.cpu.Height(); y++ {
			pixelColor := r.bgColor
			if fb.At(x, y) {
				pixelColor = r.fgColor
			}
			screen.Set(chip8ScreenOffsetX+x, chip8ScreenOffsetY+y, pixelColor)
		}
	}

	if r.keypadMode {
		buttonsInRow := 4
		buttonSize := 4

		screenOffsetX := chip8ScreenOffsetX + (r.cpu.Width()-(buttonsInRow*buttonSize+buttonsInRow-1))>>1
		screenOffsetY := chip8ScreenOffsetY + r.cpu.Height() + 1

		for x := 0; x < 4; x++ {
			for y := 0; y < 4; y++ {
				pixelColor := buttonReleasedColor
				key := y<<2 | x&0xf
				if ebiten.IsKeyPressed(keyboardMapping[keyboardPosition[uint8(key)]]) {
					pixelColor = buttonPressedColor
				}

				posX := screenOffsetX + (x * (buttonSize + 1))
				posY := screenOffsetY + (y * (buttonSize + 1))

				vector.DrawFilledRect(screen,
					float32(posX),
					float32(posY),
					float32(buttonSize),
					float32(buttonSize),
					pixelColor, false,
				)
			}
		}
	}
}

// Layout reports the window size, growing to fit the keypad overlay
// when it's toggled on.
func (r *Renderer) Layout(int, int) (int, int) {
	w, h := r.cpu.Width(), r.cpu.Height()
	if r.keypadMode {
		return w, h + 22
	}
	return w, h
}

// Run starts the ebiten window loop. It blocks until the window is
// closed or Escape is pressed.
func (r *Renderer) Run() error {
	ebiten.SetTPS(r.tps)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	r.setWindowTitle()

	if err := ebiten.RunGame(r); err != nil {
		return fmt.Errorf("run renderer: %w", err)
	}
	return nil
}

func (r *Renderer) setWindowTitle() {
	ebiten.SetWindowTitle("CHIP8 Emulator: " + r.cpu.RomName())
}

// MustDecodeColorFromHex is DecodeColorFromHex but fatal on error; it
// exists for package-level color constants that must always parse.
func MustDecodeColorFromHex(s string) color.Color {
	c, err := DecodeColorFromHex(s)
	if err != nil {
		log.Fatal(err.Error())
	}
	return c
}

// DecodeColorFromHex parses a 3- or 4-byte rgb/rgba hex string into a color.Color.
func DecodeColorFromHex(s string) (color.Color, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("couldn't decode a hex string: %w", err)
	}
	if len(data) != 3 && len(data) != 4 {
		return nil, fmt.Errorf("color must be in rgb or rgba format")
	}

	c := color.RGBA{
		R: data[0],
		G: data[1],
		B: data[2],
		A: 0xff,
	}
	if len(data) == 4 {
		c.A = data[3]
	}

	return c, nil
}
