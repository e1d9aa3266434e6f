// Copyright 2025 The keylesstx Authors
// This file is part of the keylesstx library.
//
// The keylesstx library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The keylesstx library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the keylesstx library. If not, see <http://www.gnu.org/licenses/>.

// Package keyless builds and decodes legacy Ethereum transactions whose
// signature components are fixed constants rather than the output of a
// signing operation. Such a transaction is valid on any EVM-compatible chain,
// and its sender address — implied by the fixed signature through public key
// recovery — has no known private key. Funding that address with the upfront
// cost is all that is required before broadcast.
package keyless

import (
	"bytes"
	"math/big"

	"github.com/keylesstx/keylesstx/common/math"
)

// Fixed signature components. The r constant is wider than a canonical
// 256-bit signature component; recovery reduces it into the curve's field.
// The exact value matters: every derived sender address depends on it.
var (
	// DefaultR is the r component used when the caller supplies no override.
	DefaultR = repeatedByteQuantity(0x12, 34)
	// FixedS is the s component of every generated transaction.
	FixedS = repeatedByteQuantity(0x12, 34)
)

// FixedV is the recovery indicator of every generated transaction, in the
// unprotected legacy encoding.
const FixedV = 27

// repeatedByteQuantity returns the big integer whose big-endian encoding is
// the byte b repeated n times.
func repeatedByteQuantity(b byte, n int) *big.Int {
	return new(big.Int).SetBytes(bytes.Repeat([]byte{b}, n))
}

// ParseQuantity converts a numeric input — a decimal string or a 0x-prefixed
// hex string — into a quantity, classifying failures as ErrInvalidHex or
// ErrInvalidNumber according to the form the input took.
func ParseQuantity(s string) (*math.HexOrDecimal256, error) {
	v, ok := math.ParseBig256(s)
	if !ok {
		if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
			return nil, errInvalidHexInput(s)
		}
		return nil, errInvalidNumberInput(s)
	}
	if v.Sign() < 0 {
		return nil, errInvalidNumberInput(s)
	}
	q := math.HexOrDecimal256(*v)
	return &q, nil
}

func isHexString(s string) bool {
	if len(s) < 2 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return false
	}
	for _, c := range []byte(s[2:]) {
		ok := ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
		if !ok {
			return false
		}
	}
	return true
}
