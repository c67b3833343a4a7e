package tms9918

// Scanline fills row with the 256 palette indices for display line y.
//
// If the display is disabled or y is out of the visible range
// [0,PixelsY), row is filled with the backdrop color and sprites are not
// processed. Otherwise the mode-appropriate rasterizer fills row, sprites
// are overlaid on top of it (every mode but Text), and on the last visible
// line the INT status bit is set.
func (d *Device) Scanline(y int, row *[PixelsX]uint8) {
	if !d.DisplayEnabled() || y < 0 || y >= PixelsY {
		backdrop := d.Backdrop()
		for x := range row {
			row[x] = backdrop
		}
		return
	}

	switch d.mode {
	case ModeGraphicsI:
		d.renderGraphicsI(y, row)
		d.drawSprites(y, row)
	case ModeGraphicsII:
		d.renderGraphicsII(y, row)
		d.drawSprites(y, row)
	case ModeMulticolor:
		d.renderMulticolor(y, row)
		d.drawSprites(y, row)
	case ModeText:
		d.renderText(y, row)
	}

	if y == PixelsY-1 {
		d.status |= StatusINT
	}
}
