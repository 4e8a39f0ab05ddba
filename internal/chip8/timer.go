package chip8

import "time"

// tickPeriod is the nominal timer decrement interval, truncated to
// whole milliseconds per spec.md §4.4/§9 ("TICK_PERIOD = 1000/60,
// treated as 16 ms with integer arithmetic").
const tickPeriod = 16 * time.Millisecond

// Timer is a 60Hz down-counter driven by wall-clock ticks rather than
// a background goroutine; the Cpu polls it once per StepCycle.
type Timer struct {
	counter  uint8
	lastTick time.Time
}

func newTimer() *Timer {
	return &Timer{lastTick: time.Now()}
}

// update decrements counter by however many whole tick periods have
// elapsed since the last update, saturating at 0 rather than
// wrapping a long pause into a huge uint8.
func (t *Timer) update() {
	elapsed := time.Since(t.lastTick)
	if elapsed < tickPeriod {
		return
	}

	ticks := int(elapsed / tickPeriod)
	if ticks > int(t.counter) {
		t.counter = 0
	} else {
		t.counter -= uint8(ticks)
	}
	t.lastTick = time.Now()
}

// setValue unconditionally stores v.
func (t *Timer) setValue(v uint8) {
	t.counter = v
}

// getValue returns the current counter.
func (t *Timer) getValue() uint8 {
	return t.counter
}
