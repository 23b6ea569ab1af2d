// Package crc implements the streaming CRC-16 used to tie a progs image to the
// progdefs header it was compiled against.  The checksum is CRC-16/CCITT-FALSE:
// polynomial 0x1021, initial value 0xffff, no reflection and no final xor.
package crc

import (
	"io"

	"github.com/sigurn/crc16"
)

var table = crc16.MakeTable(crc16.CRC16_CCITT_FALSE)

// CRC is a running checksum.  The zero value is not ready for use: call Init
// first or create one with New.
type CRC struct {
	value uint16
}

// New returns an initialized checksum.
func New() *CRC {
	c := &CRC{}
	c.Init()
	return c
}

// Init resets the checksum to its initial value.
func (c *CRC) Init() {
	c.value = crc16.Init(table)
}

// ProcessByte folds one byte into the checksum.
func (c *CRC) ProcessByte(b byte) {
	c.value = crc16.Update(c.value, []byte{b}, table)
}

// Write folds p into the checksum.  It never fails.
func (c *CRC) Write(p []byte) (int, error) {
	c.value = crc16.Update(c.value, p, table)
	return len(p), nil
}

// Value returns the current checksum.
func (c *CRC) Value() uint16 {
	return crc16.Complete(c.value, table)
}

// Reader computes the checksum of everything readable from r.
func Reader(r io.Reader) (uint16, error) {
	c := New()
	if _, err := io.Copy(c, r); err != nil {
		return 0, err
	}

	return c.Value(), nil
}

// Bytes computes the checksum of p.
func Bytes(p []byte) uint16 {
	return crc16.Checksum(p, table)
}
