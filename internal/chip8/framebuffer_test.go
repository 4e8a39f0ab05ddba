package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameBuffer_SetSprite(t *testing.T) {
	t.Parallel()

	t.Run("drawing onto a blank buffer never erases", func(t *testing.T) {
		var fb FrameBuffer
		erased := fb.SetSprite(0, 0, []byte{0xFF})
		require.False(t, erased)
		for x := 0; x < 8; x++ {
			require.True(t, fb.At(x, 0))
		}
	})

	t.Run("drawing the same sprite twice clears it and reports collision", func(t *testing.T) {
		var fb FrameBuffer
		fb.SetSprite(0, 0, []byte{0xFF})
		erased := fb.SetSprite(0, 0, []byte{0xFF})
		require.True(t, erased)
		for x := 0; x < 8; x++ {
			require.False(t, fb.At(x, 0))
		}
	})

	t.Run("columns wrap horizontally", func(t *testing.T) {
		var fb FrameBuffer
		fb.SetSprite(ScreenWidth-2, 0, []byte{0xF0})
		require.True(t, fb.At(ScreenWidth-2, 0))
		require.True(t, fb.At(ScreenWidth-1, 0))
		require.True(t, fb.At(0, 0))
		require.True(t, fb.At(1, 0))
	})

	t.Run("rows clip at the bottom instead of wrapping", func(t *testing.T) {
		var fb FrameBuffer
		erased := fb.SetSprite(0, ScreenHeight-1, []byte{0xFF, 0xFF})
		require.False(t, erased)
		require.True(t, fb.At(0, ScreenHeight-1))
		require.False(t, fb.At(0, 0))
	})

	t.Run("Clear zeroes every pixel", func(t *testing.T) {
		var fb FrameBuffer
		fb.SetSprite(0, 0, []byte{0xFF})
		fb.Clear()
		for _, p := range fb.Pixels() {
			require.False(t, p)
		}
	})
}
