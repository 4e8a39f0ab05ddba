// Package chip8 implements the CHIP-8 interpreter core: bounded
// memory and stack, the register file, the 64x32 XOR-sprite
// framebuffer, the opcode matcher and instruction table, and the
// fetch-decode-execute cycle. Everything outside of that — the
// window, the audio device, the ROM file picker, the CLI — lives in
// the host packages under internal/ and cmd/.
package chip8

// Cpu is the CHIP-8 virtual machine. All of its exported methods
// (Boot, StepCycle, OnKeyPressed, OnKeyReleased, and the read-only
// accessors) are meant to be called from a single logical thread, as
// the host's event loop serializes them; nothing here blocks or
// spawns goroutines.
type Cpu struct {
	mem   [MemorySize]byte
	stack [stackBytes]byte
	regs  *Registers

	fb FrameBuffer

	delayTimer *Timer
	soundTimer *Timer

	keypad [KeypadSize]bool

	audioActive bool

	romName string
}

// New returns a freshly constructed Cpu. Boot must still be called
// before running any ROM.
func New() *Cpu {
	c := &Cpu{
		regs:       newRegisters(),
		delayTimer: newTimer(),
		soundTimer: newTimer(),
	}
	return c
}

// Boot reinitializes all state, copies the font table to mem[0:80],
// copies rom starting at EntryPoint, and sets PC to EntryPoint. It
// fails with ErrRomLoadFailure if rom doesn't fit in the program
// region.
func (c *Cpu) Boot(rom Rom) error {
	if len(rom.Data) > RomMaxSizeBytes {
		return ErrRomLoadFailure
	}

	c.mem = [MemorySize]byte{}
	c.stack = [stackBytes]byte{}
	c.keypad = [KeypadSize]bool{}
	c.fb.Clear()
	c.regs.reset()
	c.delayTimer.setValue(0)
	c.soundTimer.setValue(0)
	c.audioActive = false
	c.romName = rom.Name

	copy(c.mem[:], font)
	copy(c.mem[EntryPoint:], rom.Data)

	return c.regs.PC.Set(EntryPoint)
}

// StepCycle runs one fetch-decode-execute cycle: it fetches the
// instruction at PC, advances PC by 2, advances both timers, updates
// the audio-active flag, and dispatches the instruction. PC is
// advanced before dispatch so that CALL/RET/JP and skip-if handlers
// compose correctly — a skip adds another +2, a jump/call overwrites
// PC outright.
func (c *Cpu) StepCycle() error {
	pc := c.regs.PC.Get()

	byte1, err := c.memAt(pc)
	if err != nil {
		return err
	}
	byte2, err := c.memAt(pc + 1)
	if err != nil {
		return err
	}

	if err := c.regs.PC.AddAssign(2); err != nil {
		return err
	}

	c.delayTimer.update()
	c.soundTimer.update()
	c.audioActive = c.soundTimer.getValue() > 0

	return c.dispatch(byte1, byte2)
}

// dispatch tries every registered instruction pattern in order and
// invokes the first match's handler. Patterns are registered
// specific-before-general (see instructionSet), so 00E0/00EE always
// win over the bare 0nnn pattern.
func (c *Cpu) dispatch(byte1, byte2 uint8) error {
	nibbles := [4]uint8{
		(byte1 & 0xF0) >> 4,
		byte1 & 0x0F,
		(byte2 & 0xF0) >> 4,
		byte2 & 0x0F,
	}

	for _, ins := range instructionSet {
		if ops, _, ok := ins.pattern.match(nibbles); ok {
			return ins.handler(c, ops)
		}
	}

	return ErrUnmatchedInstruction
}

// OnKeyPressed marks key as currently held down. key must be 0x0-0xF;
// out-of-range keys are ignored since the keypad has no such slot.
func (c *Cpu) OnKeyPressed(key uint8) {
	if key < KeypadSize {
		c.keypad[key] = true
	}
}

// OnKeyReleased marks key as no longer held down.
func (c *Cpu) OnKeyReleased(key uint8) {
	if key < KeypadSize {
		c.keypad[key] = false
	}
}

// ShouldPlayAudio reports whether the sound timer is currently
// nonzero; the host should be emitting a tone for as long as this is
// true.
func (c *Cpu) ShouldPlayAudio() bool {
	return c.audioActive
}

// FrameBuffer returns the current pixel grid. The returned pointer is
// only valid until the next StepCycle.
func (c *Cpu) FrameBuffer() *FrameBuffer {
	return &c.fb
}

// RomName returns the base name of the ROM that was last booted.
func (c *Cpu) RomName() string {
	return c.romName
}

// Width is the framebuffer width in pixels.
func (c *Cpu) Width() int { return ScreenWidth }

// Height is the framebuffer height in pixels.
func (c *Cpu) Height() int { return ScreenHeight }

// memAt reads mem[addr], strictly bounds-checked against MemorySize
// regardless of what slack a pointer register's own write-validator
// allows.
func (c *Cpu) memAt(addr uint16) (uint8, error) {
	if addr >= MemorySize {
		return 0, ErrAddressOutOfBound
	}
	return c.mem[addr], nil
}

// memSet writes mem[addr], strictly bounds-checked.
func (c *Cpu) memSet(addr uint16, v uint8) error {
	if addr >= MemorySize {
		return ErrAddressOutOfBound
	}
	c.mem[addr] = v
	return nil
}
