package chip8

const (
	// MemorySize is the total addressable memory, 0x000..0xFFF.
	MemorySize = 0x1000 // 4096

	// EntryPoint is where PC starts and where ROM bytes land.
	EntryPoint = 0x200 // 512

	// RomMaxSizeBytes is the largest ROM that fits between EntryPoint
	// and the end of memory.
	RomMaxSizeBytes = MemorySize - EntryPoint // 3584

	// StackSize is the number of 16-bit return addresses the stack
	// holds (stored two bytes each, see Registers.SP).
	StackSize = 32
	// stackBytes is StackSize stored as (high byte, low byte) pairs.
	stackBytes = StackSize * 2 // 64

	// ScreenWidth and ScreenHeight are the fixed framebuffer
	// dimensions; DRW wraps horizontally and clips vertically against
	// them.
	ScreenWidth  = 64
	ScreenHeight = 32
	ScreenSize   = ScreenWidth * ScreenHeight

	// KeypadSize is the number of hex keys, 0x0..0xF.
	KeypadSize = 0x10

	// DefaultTPS is the nominal CHIP-8 instruction rate hosts should
	// drive StepCycle at. The core itself has no opinion on pacing.
	DefaultTPS = 60

	// registerCount is the number of general purpose V registers.
	registerCount = 0x10
	// flagRegister is VF, reserved as the carry/borrow/collision/shift flag.
	flagRegister = 0xF

	// fontGlyphBytes is the number of bytes per hex digit glyph.
	fontGlyphBytes = 5
)
