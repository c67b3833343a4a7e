package tms9918

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAddr_RegisterWrite(t *testing.T) {
	d := New()

	d.WriteAddr(0x00)
	d.WriteAddr(0x80) // code bit 7 set, register 0
	assert.Equal(t, uint8(0x00), d.Reg(0))

	d.WriteAddr(0x12)
	d.WriteAddr(0x40) // code bit 7 clear: address set, not a register write
	d.WriteData(0xAA)
	assert.Equal(t, uint8(0xAA), d.VRAM(0x0012))
}

func TestWriteAddr_OnlyTargetedRegisterChanges(t *testing.T) {
	d := New()
	for i := 0; i < NumRegisters; i++ {
		d.WriteAddr(uint8(0x10 + i))
		d.WriteAddr(0x80 | uint8(i))
	}

	for i := 0; i < NumRegisters; i++ {
		require.Equal(t, uint8(0x10+i), d.Reg(i), "register %d", i)
	}

	// Rewrite register 3 only; the rest must be unchanged.
	d.WriteAddr(0x99)
	d.WriteAddr(0x83)
	for i := 0; i < NumRegisters; i++ {
		if i == 3 {
			assert.Equal(t, uint8(0x99), d.Reg(i))
			continue
		}
		assert.Equal(t, uint8(0x10+i), d.Reg(i), "register %d must be unchanged", i)
	}
}

func TestWriteAddr_SecondByteOverwritesThenOrsHighBits(t *testing.T) {
	d := New()

	d.WriteAddr(0x12)
	d.WriteAddr(0x40) // high bits OR'd in: 0x4012
	assert.Equal(t, uint16(0x4012), d.currentAddress)
}

func TestWriteData_AutoIncrementWraps(t *testing.T) {
	d := New()
	d.WriteAddr(0xFE)
	d.WriteAddr(0x3F) // address = 0x3FFE

	seq := []uint8{0x01, 0x02, 0x03, 0x04}
	for _, b := range seq {
		d.WriteData(b)
	}

	for n, want := range seq {
		got := d.VRAM((0x3FFE + n) % vramSize)
		assert.Equal(t, want, got, "write %d landed at the wrong address", n)
	}
}

func TestReadData_AutoIncrementAndPeek(t *testing.T) {
	d := New()
	d.WriteAddr(0x00)
	d.WriteAddr(0x00)
	d.WriteData(0x11)
	d.WriteData(0x22)

	d.WriteAddr(0x00)
	d.WriteAddr(0x00)

	assert.Equal(t, uint8(0x11), d.PeekData(), "peek must not advance the address")
	assert.Equal(t, uint8(0x11), d.PeekData())
	assert.Equal(t, uint8(0x11), d.ReadData())
	assert.Equal(t, uint8(0x22), d.ReadData())
}

func TestWriteData_ClearsAddressLatch(t *testing.T) {
	d := New()
	d.WriteAddr(0x00) // first byte only, latch now pending

	d.WriteData(0x01) // clears the pending latch

	// Since the latch was cleared, this next WriteAddr starts a fresh
	// first-byte phase rather than completing the stale command word.
	d.WriteAddr(0x99)
	assert.True(t, d.lastMode)
}

func TestReadStatus_ClearsINTAndCOLPreserves5S(t *testing.T) {
	d := New()
	d.status = StatusINT | Status5S | StatusCOL | 0x07

	got := d.ReadStatus()

	assert.Equal(t, uint8(StatusINT|Status5S|StatusCOL|0x07), got)
	assert.Equal(t, uint8(Status5S|0x07), d.status)
}

func TestReset_ThenReadStatus(t *testing.T) {
	d := New()
	assert.Equal(t, uint8(0x00), d.ReadStatus())
	assert.Equal(t, uint8(0x00), d.status)
}
