package crc

import (
	"bytes"
	"testing"
)

func TestCheckValue(t *testing.T) {
	if got := Bytes([]byte("123456789")); got != 0x29B1 {
		t.Errorf("Bytes(check) = %#04x; want 0x29b1", got)
	}
}

func TestStreamingMatchesOneShot(t *testing.T) {
	data := []byte("\n/* generated by hcc, do not modify */\n\ntypedef struct\n{\tint\tpad[28];\n")

	c := New()
	for _, b := range data {
		c.ProcessByte(b)
	}

	if c.Value() != Bytes(data) {
		t.Errorf("streaming = %d; one-shot = %d", c.Value(), Bytes(data))
	}

	r, err := Reader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if r != Bytes(data) {
		t.Errorf("Reader = %d; want %d", r, Bytes(data))
	}
}

func TestInitResets(t *testing.T) {
	c := New()
	c.ProcessByte('x')
	c.Init()

	if c.Value() != New().Value() {
		t.Errorf("Init did not reset the checksum")
	}
}
