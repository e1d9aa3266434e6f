// Copyright 2015 The go-ethereum Authors
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

// Package rlp implements the RLP serialization format.
//
// The purpose of RLP (Recursive Linear Prefix) is to encode arbitrarily nested
// arrays of binary data. Values are modeled explicitly as a tagged variant,
//
//	Item = String(bytes) | List(items)
//
// rather than through reflection, which keeps the codec independently testable
// against the canonical format vectors and trivially extensible to nested
// structures.
package rlp

import (
	"errors"
	"math/big"
)

// Kind represents the kind of value contained in an RLP item.
type Kind int8

const (
	// String is a byte string, possibly empty.
	String Kind = iota
	// List is an ordered sequence of items.
	List
)

func (k Kind) String() string {
	switch k {
	case String:
		return "String"
	case List:
		return "List"
	default:
		return "Unknown"
	}
}

// Common encoding errors.
var (
	// ErrExpectedString is returned by value accessors when the item is a list.
	ErrExpectedString = errors.New("rlp: expected String or Byte")
	// ErrExpectedList is returned by Elems when the item is a byte string.
	ErrExpectedList = errors.New("rlp: expected List")
	// ErrCanonInt is returned for integer contents with leading zero bytes.
	ErrCanonInt = errors.New("rlp: non-canonical integer format")
	// ErrCanonSize is returned for length prefixes that are not minimal.
	ErrCanonSize = errors.New("rlp: non-canonical size information")
	// ErrValueTooLarge is returned when a declared size exceeds the input.
	ErrValueTooLarge = errors.New("rlp: value size exceeds available input length")
	// ErrMoreThanOneValue is returned when the input has trailing bytes after
	// the first top-level value.
	ErrMoreThanOneValue = errors.New("rlp: input contains more than one value")

	errUintOverflow = errors.New("rlp: uint overflow")
	errNegativeBig  = errors.New("rlp: cannot encode negative big.Int")
)

// Item is a single RLP value: either a byte string or a list of items.
// The zero Item is the empty string.
type Item struct {
	kind  Kind
	str   []byte
	elems []Item
}

// Bytes returns a string item holding b. The slice is not copied.
func Bytes(b []byte) Item {
	return Item{kind: String, str: b}
}

// Uint64 returns a string item holding the canonical (minimal big-endian)
// representation of x. Zero encodes as the empty string.
func Uint64(x uint64) Item {
	if x == 0 {
		return Item{kind: String}
	}
	b := make([]byte, 8)
	n := 0
	for i := x; i > 0; i >>= 8 {
		n++
	}
	for i := n - 1; i >= 0; i-- {
		b[i] = byte(x)
		x >>= 8
	}
	return Item{kind: String, str: b[:n]}
}

// BigInt returns a string item holding the canonical representation of x.
// A nil or zero value encodes as the empty string. BigInt panics on negative
// values; RLP has no representation for them.
func BigInt(x *big.Int) Item {
	if x == nil || x.Sign() == 0 {
		return Item{kind: String}
	}
	if x.Sign() < 0 {
		panic(errNegativeBig)
	}
	return Item{kind: String, str: x.Bytes()}
}

// NewList returns a list item with the given elements.
func NewList(elems ...Item) Item {
	if elems == nil {
		elems = []Item{}
	}
	return Item{kind: List, elems: elems}
}

// Kind returns the kind of the item.
func (it Item) Kind() Kind { return it.kind }

// Bytes returns the byte content of a string item.
func (it Item) Bytes() ([]byte, error) {
	if it.kind != String {
		return nil, ErrExpectedString
	}
	return it.str, nil
}

// Elems returns the elements of a list item.
func (it Item) Elems() ([]Item, error) {
	if it.kind != List {
		return nil, ErrExpectedList
	}
	return it.elems, nil
}

// Uint64 interprets a string item as a canonical unsigned integer.
func (it Item) Uint64() (uint64, error) {
	content, err := it.Bytes()
	if err != nil {
		return 0, err
	}
	switch n := len(content); {
	case n == 0:
		return 0, nil
	case n > 8:
		return 0, errUintOverflow
	case content[0] == 0:
		return 0, ErrCanonInt
	default:
		var x uint64
		for _, b := range content {
			x = x<<8 | uint64(b)
		}
		return x, nil
	}
}

// BigInt interprets a string item as a canonical arbitrary-precision unsigned
// integer.
func (it Item) BigInt() (*big.Int, error) {
	content, err := it.Bytes()
	if err != nil {
		return nil, err
	}
	if len(content) > 0 && content[0] == 0 {
		return nil, ErrCanonInt
	}
	return new(big.Int).SetBytes(content), nil
}
