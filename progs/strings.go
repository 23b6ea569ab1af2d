package progs

import "bytes"

// StringHeap is the append-only arena holding every string referenced by the
// image.  Strings are addressed by the offset of their first byte and are NUL
// terminated.  Offset 0 holds the empty string and is never handed out.
type StringHeap struct {
	data  []byte
	limit int
}

// newStringHeap creates a heap with the reserved byte at offset 0 installed.
func newStringHeap(limit int) StringHeap {
	return StringHeap{data: []byte{0}, limit: limit}
}

// Intern copies text and a terminator onto the end of the heap and returns the
// offset at which it starts.  Identical strings are not shared.
func (sh *StringHeap) Intern(text string) (int32, error) {
	if err := checkCapacity("string heap", len(sh.data), len(text)+1, sh.limit); err != nil {
		return 0, err
	}

	ofs := int32(len(sh.data))
	sh.data = append(sh.data, text...)
	sh.data = append(sh.data, 0)
	return ofs, nil
}

// truncate drops every byte at or past size.
func (sh *StringHeap) truncate(size int) {
	if size >= 1 && size < len(sh.data) {
		sh.data = sh.data[:size]
	}
}

// String returns the string starting at ofs.
func (sh *StringHeap) String(ofs int32) string {
	if ofs < 0 || int(ofs) >= len(sh.data) {
		return ""
	}

	end := bytes.IndexByte(sh.data[ofs:], 0)
	if end < 0 {
		return string(sh.data[ofs:])
	}

	return string(sh.data[ofs : int(ofs)+end])
}

// Size returns the next free offset.
func (sh *StringHeap) Size() int {
	return len(sh.data)
}

// Bytes returns the raw heap contents.  The slice must not be modified.
func (sh *StringHeap) Bytes() []byte {
	return sh.data
}

// Align pads the heap with zero bytes up to the next 4-byte boundary.  The
// padding is not subject to the heap's capacity.
func (sh *StringHeap) Align() {
	for len(sh.data)%4 != 0 {
		sh.data = append(sh.data, 0)
	}
}
