package tms9918

// drawSprites overlays sprites for scanline y onto row, scanning the
// sprite attribute table in slot order (0..31) and updating status
// (5S/overflow index, COL) along the way.
func (d *Device) drawSprites(y int, row *[PixelsX]uint8) {
	if y == 0 {
		d.status = 0
	}

	attrBase := d.spriteAttrBase()
	patternBase := d.spritePatternBase()

	size := 8
	if d.reg[1]&0x02 != 0 {
		size = 16
	}
	mag := d.reg[1]&0x01 != 0
	scale := 1
	if mag {
		scale = 2
	}

	onLine := 0
	clearedBits := false

	for i := 0; i < 32; i++ {
		recAddr := attrBase + uint16(i)*4
		vpos := int(d.vram[recAddr&vramMask])
		hpos := int(d.vram[(recAddr+1)&vramMask])
		patternName := d.vram[(recAddr+2)&vramMask]
		colorAttr := d.vram[(recAddr+3)&vramMask]

		if vpos == LastSpriteVpos {
			if d.status&Status5S == 0 {
				d.status |= uint8(i) & 0x1F
			}
			break
		}

		if vpos > 0xE0 {
			vpos -= 256
		}

		patternRow := y - (vpos + 1)
		if patternRow < 0 {
			continue
		}
		if mag {
			patternRow /= 2
		}
		if patternRow >= size {
			continue
		}

		onLine++
		if onLine > 4 {
			if d.status&Status5S == 0 {
				d.status |= Status5S
				d.status = d.status&^0x1F | (uint8(i) & 0x1F)
			}
			break
		}

		if !clearedBits {
			for x := range d.spriteBits {
				d.spriteBits[x] = false
			}
			clearedBits = true
		}

		d.plotSprite(row, hpos, colorAttr, patternBase, patternName, patternRow, size, scale)
	}
}

// plotSprite draws one 8x8 or 16x16 sprite (at the given magnification)
// onto row, charging collisions against d.spriteBits.
func (d *Device) plotSprite(row *[PixelsX]uint8, hpos int, colorAttr uint8, patternBase uint16, patternName uint8, patternRow, size, scale int) {
	color := colorAttr & 0x0F
	if colorAttr&0x80 != 0 {
		hpos -= 32
	}

	name := patternName
	if size == 16 {
		name &= 0xFC
	}
	patternAddr := patternBase + uint16(name)*8 + uint16(patternRow)
	patternByte := d.vram[patternAddr&vramMask]
	reloaded := false

	for col := 0; col < size*scale; col++ {
		screenX := hpos + col
		bitIndex := col / scale

		if bitIndex == 8 && !reloaded {
			patternByte = d.vram[(patternAddr+16)&vramMask]
			reloaded = true
		}

		if screenX >= PixelsX {
			break
		}
		if screenX < 0 {
			continue
		}

		shift := uint(7 - (bitIndex % 8))
		if patternByte&(1<<shift) == 0 {
			continue
		}

		if d.spriteBits[screenX] {
			d.status |= StatusCOL
		}
		d.spriteBits[screenX] = true

		if color != 0 {
			row[screenX] = color
		}
	}
}
