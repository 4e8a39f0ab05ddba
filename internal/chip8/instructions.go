package chip8

import v2 "math/rand/v2"

// instructionHandler executes one decoded instruction. ops holds the
// nibbles captured by the pattern's placeholders, in left-to-right
// order; a handler only reads as many of them as its mnemonic has
// operands.
type instructionHandler func(c *Cpu, ops [4]uint8) error

type instruction struct {
	name    string
	pattern pattern
	handler instructionHandler
}

// instructionSet is the ordered list of 35 pattern/handler bindings.
// Order matters: more specific patterns (00E0, 00EE) are listed
// before the broader pattern they'd otherwise lose to (0nnn), since
// dispatch takes the first match.
var instructionSet = []instruction{
	{"CLS", pattern{lit(0x0), lit(0x0), lit(0xE), lit(0x0)}, executeCls},
	{"RET", pattern{lit(0x0), lit(0x0), lit(0xE), lit(0xE)}, executeRet},
	{"SYS addr", pattern{lit(0x0), ph(), ph(), ph()}, executeSysAddr},
	{"JP addr", pattern{lit(0x1), ph(), ph(), ph()}, executeJpAddr},
	{"CALL addr", pattern{lit(0x2), ph(), ph(), ph()}, executeCallAddr},
	{"SE Vx, byte", pattern{lit(0x3), ph(), ph(), ph()}, executeSeVxByte},
	{"SNE Vx, byte", pattern{lit(0x4), ph(), ph(), ph()}, executeSneVxByte},
	{"SE Vx, Vy", pattern{lit(0x5), ph(), ph(), lit(0x0)}, executeSeVxVy},
	{"LD Vx, byte", pattern{lit(0x6), ph(), ph(), ph()}, executeLdVxByte},
	{"ADD Vx, byte", pattern{lit(0x7), ph(), ph(), ph()}, executeAddVxByte},
	{"LD Vx, Vy", pattern{lit(0x8), ph(), ph(), lit(0x0)}, executeLdVxVy},
	{"OR Vx, Vy", pattern{lit(0x8), ph(), ph(), lit(0x1)}, executeOrVxVy},
	{"AND Vx, Vy", pattern{lit(0x8), ph(), ph(), lit(0x2)}, executeAndVxVy},
	{"XOR Vx, Vy", pattern{lit(0x8), ph(), ph(), lit(0x3)}, executeXorVxVy},
	{"ADD Vx, Vy", pattern{lit(0x8), ph(), ph(), lit(0x4)}, executeAddVxVy},
	{"SUB Vx, Vy", pattern{lit(0x8), ph(), ph(), lit(0x5)}, executeSubVxVy},
	{"SHR Vx", pattern{lit(0x8), ph(), ph(), lit(0x6)}, executeShrVx},
	{"SUBN Vx, Vy", pattern{lit(0x8), ph(), ph(), lit(0x7)}, executeSubnVxVy},
	{"SHL Vx", pattern{lit(0x8), ph(), ph(), lit(0xE)}, executeShlVx},
	{"SNE Vx, Vy", pattern{lit(0x9), ph(), ph(), lit(0x0)}, executeSneVxVy},
	{"LD I, addr", pattern{lit(0xA), ph(), ph(), ph()}, executeLdIAddr},
	{"JP V0, addr", pattern{lit(0xB), ph(), ph(), ph()}, executeJpV0Addr},
	{"RND Vx, byte", pattern{lit(0xC), ph(), ph(), ph()}, executeRndVxByte},
	{"DRW Vx, Vy, n", pattern{lit(0xD), ph(), ph(), ph()}, executeDrwVxVyN},
	{"SKP Vx", pattern{lit(0xE), ph(), lit(0x9), lit(0xE)}, executeSkpVx},
	{"SKNP Vx", pattern{lit(0xE), ph(), lit(0xA), lit(0x1)}, executeSknpVx},
	{"LD Vx, DT", pattern{lit(0xF), ph(), lit(0x0), lit(0x7)}, executeLdVxDt},
	{"LD Vx, K", pattern{lit(0xF), ph(), lit(0x0), lit(0xA)}, executeLdVxK},
	{"LD DT, Vx", pattern{lit(0xF), ph(), lit(0x1), lit(0x5)}, executeLdDtVx},
	{"LD ST, Vx", pattern{lit(0xF), ph(), lit(0x1), lit(0x8)}, executeLdStVx},
	{"ADD I, Vx", pattern{lit(0xF), ph(), lit(0x1), lit(0xE)}, executeAddIVx},
	{"LD F, Vx", pattern{lit(0xF), ph(), lit(0x2), lit(0x9)}, executeLdFVx},
	{"LD B, Vx", pattern{lit(0xF), ph(), lit(0x3), lit(0x3)}, executeLdBVx},
	{"LD [I], Vx", pattern{lit(0xF), ph(), lit(0x5), lit(0x5)}, executeLdIDataVx},
	{"LD Vx, [I]", pattern{lit(0xF), ph(), lit(0x6), lit(0x5)}, executeLdVxIData},
}

func executeCls(c *Cpu, _ [4]uint8) error {
	c.fb.Clear()
	return nil
}

func executeRet(c *Cpu, _ [4]uint8) error {
	if err := c.regs.SP.SubAssign(2); err != nil {
		return err
	}
	sp := c.regs.SP.Get()
	hi, lo := c.stack[sp], c.stack[sp+1]
	return c.regs.PC.Set(uint16(hi)<<8 | uint16(lo))
}

func executeSysAddr(_ *Cpu, _ [4]uint8) error {
	return ErrUnsupportedSysInstruction
}

func executeJpAddr(c *Cpu, ops [4]uint8) error {
	return c.regs.PC.Set(foldAddr(ops))
}

func executeCallAddr(c *Cpu, ops [4]uint8) error {
	addr := foldAddr(ops)
	old := c.regs.SP.Get()
	if err := c.regs.SP.AddAssign(2); err != nil {
		return err
	}
	pc := c.regs.PC.Get()
	c.stack[old] = byte(pc >> 8)
	c.stack[old+1] = byte(pc)
	return c.regs.PC.Set(addr)
}

func executeSeVxByte(c *Cpu, ops [4]uint8) error {
	x, kk := ops[0], foldByte(ops)
	if c.regs.V[x] != kk {
		return nil
	}
	return c.regs.PC.AddAssign(2)
}

func executeSneVxByte(c *Cpu, ops [4]uint8) error {
	x, kk := ops[0], foldByte(ops)
	if c.regs.V[x] == kk {
		return nil
	}
	return c.regs.PC.AddAssign(2)
}

func executeSeVxVy(c *Cpu, ops [4]uint8) error {
	x, y := ops[0], ops[1]
	if c.regs.V[x] != c.regs.V[y] {
		return nil
	}
	return c.regs.PC.AddAssign(2)
}

func executeLdVxByte(c *Cpu, ops [4]uint8) error {
	c.regs.V[ops[0]] = foldByte(ops)
	return nil
}

func executeAddVxByte(c *Cpu, ops [4]uint8) error {
	x, kk := ops[0], foldByte(ops)
	c.regs.V[x] += kk
	return nil
}

func executeLdVxVy(c *Cpu, ops [4]uint8) error {
	c.regs.V[ops[0]] = c.regs.V[ops[1]]
	return nil
}

func executeOrVxVy(c *Cpu, ops [4]uint8) error {
	c.regs.V[ops[0]] |= c.regs.V[ops[1]]
	return nil
}

func executeAndVxVy(c *Cpu, ops [4]uint8) error {
	c.regs.V[ops[0]] &= c.regs.V[ops[1]]
	return nil
}

func executeXorVxVy(c *Cpu, ops [4]uint8) error {
	c.regs.V[ops[0]] ^= c.regs.V[ops[1]]
	return nil
}

func executeAddVxVy(c *Cpu, ops [4]uint8) error {
	x, y := ops[0], ops[1]
	sum := uint16(c.regs.V[x]) + uint16(c.regs.V[y])
	c.regs.V[x] = uint8(sum)
	c.regs.V[flagRegister] = boolToFlag(sum > 0xFF)
	return nil
}

func executeSubVxVy(c *Cpu, ops [4]uint8) error {
	x, y := ops[0], ops[1]
	noBorrow := c.regs.V[x] >= c.regs.V[y]
	c.regs.V[x] -= c.regs.V[y]
	c.regs.V[flagRegister] = boolToFlag(noBorrow)
	return nil
}

func executeShrVx(c *Cpu, ops [4]uint8) error {
	x := ops[0]
	lsb := c.regs.V[x] & 1
	c.regs.V[x] >>= 1
	c.regs.V[flagRegister] = lsb
	return nil
}

func executeSubnVxVy(c *Cpu, ops [4]uint8) error {
	x, y := ops[0], ops[1]
	noBorrow := c.regs.V[y] >= c.regs.V[x]
	c.regs.V[x] = c.regs.V[y] - c.regs.V[x]
	c.regs.V[flagRegister] = boolToFlag(noBorrow)
	return nil
}

func executeShlVx(c *Cpu, ops [4]uint8) error {
	x := ops[0]
	msb := (c.regs.V[x] >> 7) & 1
	c.regs.V[x] <<= 1
	c.regs.V[flagRegister] = msb
	return nil
}

func executeSneVxVy(c *Cpu, ops [4]uint8) error {
	x, y := ops[0], ops[1]
	if c.regs.V[x] == c.regs.V[y] {
		return nil
	}
	return c.regs.PC.AddAssign(2)
}

func executeLdIAddr(c *Cpu, ops [4]uint8) error {
	return c.regs.I.Set(foldAddr(ops))
}

func executeJpV0Addr(c *Cpu, ops [4]uint8) error {
	return c.regs.PC.Set(foldAddr(ops) + uint16(c.regs.V[0]))
}

func executeRndVxByte(c *Cpu, ops [4]uint8) error {
	x, kk := ops[0], foldByte(ops)
	c.regs.V[x] = uint8(v2.IntN(0x100)) & kk
	return nil
}

func executeDrwVxVyN(c *Cpu, ops [4]uint8) error {
	x, y, n := ops[0], ops[1], ops[2]
	i := c.regs.I.Get()

	sprite := make([]byte, n)
	for k := uint8(0); k < n; k++ {
		b, err := c.memAt(i + uint16(k))
		if err != nil {
			return err
		}
		sprite[k] = b
	}

	erased := c.fb.SetSprite(c.regs.V[x], c.regs.V[y], sprite)
	c.regs.V[flagRegister] = boolToFlag(erased)
	return nil
}

func executeSkpVx(c *Cpu, ops [4]uint8) error {
	key := c.regs.V[ops[0]]
	if key > 0xF {
		return ErrBadKeyboardIndex
	}
	if !c.keypad[key] {
		return nil
	}
	return c.regs.PC.AddAssign(2)
}

func executeSknpVx(c *Cpu, ops [4]uint8) error {
	key := c.regs.V[ops[0]]
	if key > 0xF {
		return ErrBadKeyboardIndex
	}
	if c.keypad[key] {
		return nil
	}
	return c.regs.PC.AddAssign(2)
}

func executeLdVxDt(c *Cpu, ops [4]uint8) error {
	c.regs.V[ops[0]] = c.delayTimer.getValue()
	return nil
}

func executeLdVxK(c *Cpu, ops [4]uint8) error {
	x := ops[0]
	for k := uint8(0); k < KeypadSize; k++ {
		if c.keypad[k] {
			c.regs.V[x] = k
			c.keypad[k] = false
			return nil
		}
	}
	return c.regs.PC.SubAssign(2)
}

func executeLdDtVx(c *Cpu, ops [4]uint8) error {
	c.delayTimer.setValue(c.regs.V[ops[0]])
	return nil
}

func executeLdStVx(c *Cpu, ops [4]uint8) error {
	c.soundTimer.setValue(c.regs.V[ops[0]])
	return nil
}

func executeAddIVx(c *Cpu, ops [4]uint8) error {
	return c.regs.I.AddAssign(uint16(c.regs.V[ops[0]]))
}

func executeLdFVx(c *Cpu, ops [4]uint8) error {
	return c.regs.I.Set(uint16(c.regs.V[ops[0]]) * fontGlyphBytes)
}

func executeLdBVx(c *Cpu, ops [4]uint8) error {
	value := c.regs.V[ops[0]]
	i := c.regs.I.Get()
	if err := c.memSet(i, value/100); err != nil {
		return err
	}
	if err := c.memSet(i+1, (value/10)%10); err != nil {
		return err
	}
	return c.memSet(i+2, value%10)
}

func executeLdIDataVx(c *Cpu, ops [4]uint8) error {
	x := ops[0]
	for k := uint8(0); k <= x; k++ {
		if err := c.memSet(c.regs.I.Get(), c.regs.V[k]); err != nil {
			return err
		}
		if err := c.regs.I.AddAssign(1); err != nil {
			return err
		}
	}
	return nil
}

func executeLdVxIData(c *Cpu, ops [4]uint8) error {
	x := ops[0]
	for k := uint8(0); k <= x; k++ {
		v, err := c.memAt(c.regs.I.Get())
		if err != nil {
			return err
		}
		c.regs.V[k] = v
		if err := c.regs.I.AddAssign(1); err != nil {
			return err
		}
	}
	return nil
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
