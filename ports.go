package tms9918

// WriteAddr is the address-port write: the two-phase command word.
//
// On the first byte, current_address is set outright to b (any high bits
// from a prior address are discarded). This matches the chip's documented
// command-word quirk: the first byte is pre-committed as the address low
// byte even if the second byte later reinterprets the word as a register
// write. On the second byte: if bit 7 is set this is a register write
// (registers[b&0x07] <- low byte of current_address, then mode is
// rederived); otherwise it is an address-set that OR-assigns bits 13:8
// from b&0x3F. Either way the latch clears.
func (d *Device) WriteAddr(b uint8) {
	if !d.lastMode {
		d.currentAddress = uint16(b)
		d.lastMode = true
		return
	}

	if b&0x80 != 0 {
		regNum := b & 0x07
		d.reg[regNum] = uint8(d.currentAddress & 0xFF)
		d.mode = deriveMode(d.reg[0], d.reg[1])
	} else {
		d.currentAddress |= uint16(b&0x3F) << 8
	}
	d.lastMode = false
}

// WriteData stores b at the current VRAM address (masked to 14 bits),
// post-increments the address (16-bit wrap), and clears the address latch.
func (d *Device) WriteData(b uint8) {
	d.vram[d.currentAddress&vramMask] = b
	d.currentAddress++
	d.lastMode = false
}

// ReadData returns the byte at the current VRAM address, post-increments
// the address, and clears the address latch.
func (d *Device) ReadData() uint8 {
	b := d.vram[d.currentAddress&vramMask]
	d.currentAddress++
	d.lastMode = false
	return b
}

// PeekData returns the byte at the current VRAM address without
// incrementing it or touching the latch. Intended for host-side inspection.
func (d *Device) PeekData() uint8 {
	return d.vram[d.currentAddress&vramMask]
}

// ReadStatus returns the status byte, then clears the INT and COL bits.
// The 5S flag and its low-5-bit sprite index survive the read and are
// only overwritten the next time the sprite engine latches them.
func (d *Device) ReadStatus() uint8 {
	s := d.status
	d.status &^= StatusINT | StatusCOL
	return s
}
