package chip8

import "errors"

// Sentinel errors surfaced at the Cpu boundary. ErrRomLoadFailure is
// returned by Boot (and NewRomFromFile); every other one terminates
// the StepCycle that raised it. None are retried or recovered inside
// the core.
var (
	ErrStackOverflow             = errors.New("chip8: stack overflow")
	ErrStackUnderflow            = errors.New("chip8: stack underflow")
	ErrAddressOutOfBound         = errors.New("chip8: address out of bound")
	ErrUnmatchedInstruction      = errors.New("chip8: unmatched instruction")
	ErrBadKeyboardIndex          = errors.New("chip8: bad keyboard index")
	ErrUnsupportedSysInstruction = errors.New("chip8: unsupported SYS instruction")
	ErrRomLoadFailure            = errors.New("chip8: rom load failure")
)
