package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPattern_Match(t *testing.T) {
	t.Parallel()

	t.Run("literal-only pattern matches exactly one instruction word", func(t *testing.T) {
		p := pattern{lit(0x0), lit(0x0), lit(0xE), lit(0x0)}

		_, count, ok := p.match([4]uint8{0x0, 0x0, 0xE, 0x0})
		require.True(t, ok)
		require.Zero(t, count)

		_, _, ok = p.match([4]uint8{0x0, 0x0, 0xE, 0xE})
		require.False(t, ok)
	})

	t.Run("placeholders capture in left-to-right order", func(t *testing.T) {
		p := pattern{lit(0x8), ph(), ph(), lit(0x4)}

		ops, count, ok := p.match([4]uint8{0x8, 0x3, 0x7, 0x4})
		require.True(t, ok)
		require.Equal(t, 2, count)
		require.Equal(t, uint8(0x3), ops[0])
		require.Equal(t, uint8(0x7), ops[1])
	})

	t.Run("a mismatched literal nibble anywhere rejects the whole word", func(t *testing.T) {
		p := pattern{lit(0x8), ph(), ph(), lit(0x4)}

		_, _, ok := p.match([4]uint8{0x8, 0x3, 0x7, 0x5})
		require.False(t, ok)
	})

	t.Run("an all-placeholder pattern matches anything", func(t *testing.T) {
		p := pattern{ph(), ph(), ph(), ph()}

		ops, count, ok := p.match([4]uint8{0x1, 0x2, 0x3, 0x4})
		require.True(t, ok)
		require.Equal(t, 4, count)
		require.Equal(t, [4]uint8{0x1, 0x2, 0x3, 0x4}, ops)
	})
}

func TestFoldAddr(t *testing.T) {
	t.Parallel()

	ops := [4]uint8{0x2, 0x3, 0x4, 0x0}
	require.Equal(t, uint16(0x234), foldAddr(ops))
}

func TestFoldByte(t *testing.T) {
	t.Parallel()

	// An Xxkk pattern captures [x, k_hi, k_lo]; the immediate is the
	// last two nibbles, not the first two.
	ops := [4]uint8{0xA, 0x5, 0x6, 0x0}
	require.Equal(t, uint8(0x56), foldByte(ops))
}

func TestInstructionSet_OrderingPrefersSpecificOverGeneral(t *testing.T) {
	t.Parallel()

	// 00E0 (CLS) must win over the bare 0nnn pattern at the same word.
	nibbles := [4]uint8{0x0, 0x0, 0xE, 0x0}

	for _, ins := range instructionSet {
		if ops, _, ok := ins.pattern.match(nibbles); ok {
			require.Equal(t, "CLS", ins.name)
			require.Zero(t, ops[0])
			return
		}
	}
	t.Fatal("no instruction matched 00E0")
}
