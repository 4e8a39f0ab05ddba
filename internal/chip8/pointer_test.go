package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newMemoryPointer() *PointerRegister[uint16] {
	return NewPointerRegister[uint16](validateMemoryWrite, validateMemoryRead, ErrAddressOutOfBound, ErrAddressOutOfBound)
}

func TestPointerRegister_MemoryBounds(t *testing.T) {
	t.Parallel()

	t.Run("write allows the one-past-end slack, read does not", func(t *testing.T) {
		p := newMemoryPointer()
		require.NoError(t, p.Set(MemorySize))

		_, err := p.Add(0)
		require.ErrorIs(t, err, ErrAddressOutOfBound)
	})

	t.Run("write traps strictly beyond the slack", func(t *testing.T) {
		p := newMemoryPointer()
		require.ErrorIs(t, p.Set(MemorySize+1), ErrAddressOutOfBound)
	})

	t.Run("AddAssign traps on unsigned overflow before validating", func(t *testing.T) {
		// A permissive write-validator lets the register hold 0xFFFE, so
		// the only way AddAssign can fail is the wraparound check.
		p := NewPointerRegister[uint16](func(uint16) error { return nil }, validateMemoryRead, ErrAddressOutOfBound, ErrAddressOutOfBound)
		require.NoError(t, p.Set(0xFFFE))
		err := p.AddAssign(4)
		require.ErrorIs(t, err, ErrAddressOutOfBound)
	})
}

func TestPointerRegister_StackBounds(t *testing.T) {
	t.Parallel()

	newStackPointer := func() *PointerRegister[uint8] {
		return NewPointerRegister[uint8](validateStackWrite, validateStackRead, ErrStackUnderflow, ErrStackOverflow)
	}

	t.Run("SubAssign underflows below zero", func(t *testing.T) {
		p := newStackPointer()
		err := p.SubAssign(2)
		require.ErrorIs(t, err, ErrStackUnderflow)
	})

	t.Run("AddAssign overflows past 64", func(t *testing.T) {
		p := newStackPointer()
		require.NoError(t, p.Set(64))
		err := p.AddAssign(2)
		require.ErrorIs(t, err, ErrStackOverflow)
	})

	t.Run("SP stays even across push/pop pairs", func(t *testing.T) {
		p := newStackPointer()
		require.NoError(t, p.AddAssign(2))
		require.NoError(t, p.AddAssign(2))
		require.Zero(t, p.Get()%2)
		require.NoError(t, p.SubAssign(2))
		require.Zero(t, p.Get()%2)
	})
}
