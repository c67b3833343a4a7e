package tms9918

// renderGraphicsI fills row with the Graphics I background for scanline y:
// 32x24 tiles of 8x8, one color byte per 8 consecutive patterns.
func (d *Device) renderGraphicsI(y int, row *[PixelsX]uint8) {
	nameBase := d.nameTableBase()
	patternBase := d.patternTableBase()
	colorBase := d.colorTableBase()

	textRow := y / 8
	patternRow := y % 8

	for tileX := 0; tileX < 32; tileX++ {
		pattern := d.vram[(nameBase+uint16(textRow*32+tileX))&vramMask]
		patternByte := d.vram[(patternBase+uint16(pattern)*8+uint16(patternRow))&vramMask]
		colorByte := d.vram[(colorBase+uint16(pattern)/8)&vramMask]

		fg := d.colorOrBackdrop(colorByte >> 4)
		bg := d.colorOrBackdrop(colorByte & 0x0F)
		unpackBits(row, tileX*8, patternByte, 8, fg, bg)
	}
}

// renderGraphicsII fills row with the Graphics II background for scanline
// y: 32x24 tiles of 8x8 with independent per-row color, split into three
// vertical thirds each selecting its own 2 KiB page.
func (d *Device) renderGraphicsII(y int, row *[PixelsX]uint8) {
	nameBase := d.nameTableBase()
	patternBase := d.patternTableBase()
	colorBase := d.colorTableBase()

	textRow := y / 8
	patternRow := y % 8
	pageOffset := uint16(textRow/8) * 0x800

	for tileX := 0; tileX < 32; tileX++ {
		pattern := d.vram[(nameBase+uint16(textRow*32+tileX))&vramMask]
		patternByte := d.vram[(patternBase+pageOffset+uint16(pattern)*8+uint16(patternRow))&vramMask]
		colorByte := d.vram[(colorBase+pageOffset+uint16(pattern)*8+uint16(patternRow))&vramMask]

		fg := d.colorOrBackdrop(colorByte >> 4)
		bg := d.colorOrBackdrop(colorByte & 0x0F)
		unpackBits(row, tileX*8, patternByte, 8, fg, bg)
	}
}

// renderText fills row with the Text mode background for scanline y:
// 40x24 cells of 6x8, no per-cell color; colors come from register 7.
// Columns 0..7 and 248..255 are margins filled with the backdrop.
func (d *Device) renderText(y int, row *[PixelsX]uint8) {
	backdrop := d.Backdrop()
	for x := 0; x < 8; x++ {
		row[x] = backdrop
	}
	for x := 248; x < PixelsX; x++ {
		row[x] = backdrop
	}

	nameBase := d.nameTableBase()
	patternBase := d.patternTableBase()
	textRow := y / 8
	patternRow := y % 8
	fg := d.textForeground()

	for tileX := 0; tileX < 40; tileX++ {
		pattern := d.vram[(nameBase+uint16(textRow*40+tileX))&vramMask]
		patternByte := d.vram[(patternBase+uint16(pattern)*8+uint16(patternRow))&vramMask]
		unpackBits(row, 8+tileX*6, patternByte, 6, fg, backdrop)
	}
}

// renderMulticolor fills row with the Multicolor background for scanline
// y: 32x24 "tiles" of 8x8, each holding four 4x4 colored blocks across a
// 4-row stripe addressed directly out of the pattern table.
func (d *Device) renderMulticolor(y int, row *[PixelsX]uint8) {
	nameBase := d.nameTableBase()
	patternBase := d.patternTableBase()

	textRow := y / 8
	patternRow := (y/4)%2 + (textRow%4)*2

	for tileX := 0; tileX < 32; tileX++ {
		pattern := d.vram[(nameBase+uint16(textRow*32+tileX))&vramMask]
		colorByte := d.vram[(patternBase+uint16(pattern)*8+uint16(patternRow))&vramMask]

		fg := d.colorOrBackdrop(colorByte >> 4)
		bg := d.colorOrBackdrop(colorByte & 0x0F)
		base := tileX * 8
		for i := 0; i < 4; i++ {
			row[base+i] = fg
		}
		for i := 4; i < 8; i++ {
			row[base+i] = bg
		}
	}
}

// unpackBits writes the top `bits` bits of b, MSB-first, into
// row[start:start+bits], mapping 1->fg and 0->bg.
func unpackBits(row *[PixelsX]uint8, start int, b uint8, bits int, fg, bg uint8) {
	for i := 0; i < bits; i++ {
		shift := uint(7 - i)
		x := start + i
		if x < 0 || x >= PixelsX {
			continue
		}
		if b&(1<<shift) != 0 {
			row[x] = fg
		} else {
			row[x] = bg
		}
	}
}
