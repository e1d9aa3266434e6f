// Copyright 2014 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package rlp

// Encode returns the RLP encoding of the item.
func (it Item) Encode() []byte {
	buf := make([]byte, 0, it.EncodedSize())
	return it.appendTo(buf)
}

// EncodedSize returns the length of the encoding of the item.
func (it Item) EncodedSize() int {
	if it.kind == List {
		return headsize(uint64(it.payloadSize())) + it.payloadSize()
	}
	switch n := len(it.str); n {
	case 0:
		return 1
	case 1:
		if it.str[0] <= 0x7f {
			return 1
		}
		return 2
	default:
		return headsize(uint64(n)) + n
	}
}

// payloadSize returns the total encoded size of a list's elements.
func (it Item) payloadSize() int {
	size := 0
	for _, e := range it.elems {
		size += e.EncodedSize()
	}
	return size
}

func (it Item) appendTo(buf []byte) []byte {
	if it.kind == List {
		buf = appendHead(buf, 0xC0, uint64(it.payloadSize()))
		for _, e := range it.elems {
			buf = e.appendTo(buf)
		}
		return buf
	}
	// A single byte below 0x80 is its own encoding.
	if len(it.str) == 1 && it.str[0] <= 0x7f {
		return append(buf, it.str[0])
	}
	buf = appendHead(buf, 0x80, uint64(len(it.str)))
	return append(buf, it.str...)
}

// headsize returns the size of a list or string header for a value of the
// given size.
func headsize(size uint64) int {
	if size < 56 {
		return 1
	}
	return 1 + intsize(size)
}

// appendHead appends a list or string header to buf. offset must be 0x80 for
// strings and 0xC0 for lists.
func appendHead(buf []byte, offset byte, size uint64) []byte {
	if size < 56 {
		return append(buf, offset+byte(size))
	}
	sizesize := intsize(size)
	buf = append(buf, offset+0x37+byte(sizesize))
	for i := sizesize - 1; i >= 0; i-- {
		buf = append(buf, byte(size>>(uint(i)*8)))
	}
	return buf
}

// intsize computes the minimum number of bytes required to store i.
func intsize(i uint64) int {
	for size := 1; ; size++ {
		if i >>= 8; i == 0 {
			return size
		}
	}
}
