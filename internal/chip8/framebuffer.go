package chip8

// FrameBuffer is the 64x32 monochrome pixel grid the CPU writes and
// the host reads. It is row-major: pixel (x, y) lives at
// fb[y*ScreenWidth+x].
type FrameBuffer struct {
	pixels [ScreenSize]bool
}

// Clear sets every pixel off. Calling Clear twice in a row, or on an
// already-empty buffer, is a no-op either way.
func (fb *FrameBuffer) Clear() {
	fb.pixels = [ScreenSize]bool{}
}

// At reports whether the pixel at (x, y) is lit.
func (fb *FrameBuffer) At(x, y int) bool {
	return fb.pixels[y*ScreenWidth+x]
}

// Pixels returns the raw row-major grid. The caller must not retain
// it past the next SetSprite/Clear call.
func (fb *FrameBuffer) Pixels() *[ScreenSize]bool {
	return &fb.pixels
}

// SetSprite XORs an 8-pixel-wide, len(sprite)-row-tall sprite onto
// the buffer at (ox, oy). Rows that would fall past the bottom edge
// are clipped, not wrapped; columns wrap modulo ScreenWidth starting
// from ox. It reports whether any previously-lit pixel was erased
// (XORed from 1 to 0) anywhere during the blit — the DRW collision
// flag.
func (fb *FrameBuffer) SetSprite(ox, oy uint8, sprite []byte) bool {
	erased := false

	for i, row := range sprite {
		sy := int(oy) + i
		if sy >= ScreenHeight {
			break
		}

		for b := 0; b < 8; b++ {
			sx := (int(ox) + b) % ScreenWidth
			bit := (row>>(7-b))&1 != 0

			idx := sy*ScreenWidth + sx
			old := fb.pixels[idx]
			if old && bit {
				erased = true
			}
			fb.pixels[idx] = old != bit
		}
	}

	return erased
}
