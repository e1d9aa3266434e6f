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

package crypto

import (
	"bytes"
	"testing"

	"github.com/keylesstx/keylesstx/common"
	"github.com/keylesstx/keylesstx/common/hexutil"
)

var testAddrHex = "970e8128ab834e8eac17ab8e3812f010678cf791"

// These tests are sanity checks.
// They should ensure that we don't e.g. use Sha3-224 instead of Sha3-256
// and that the sha3 library uses keccak-f permutation.
func TestKeccak256Hash(t *testing.T) {
	msg := []byte("abc")
	exp, _ := hexutil.Decode("0x4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45")
	checkhash(t, "Sha3-256-array", func(in []byte) []byte { h := Keccak256Hash(in); return h[:] }, msg, exp)
}

func TestKeccak256Hasher(t *testing.T) {
	msg := []byte("abc")
	exp, _ := hexutil.Decode("0x4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45")
	hasher := NewKeccakState()
	checkhash(t, "Sha3-256-array", func(in []byte) []byte { h := HashData(hasher, in); return h[:] }, msg, exp)
}

func TestKeccak256Empty(t *testing.T) {
	exp, _ := hexutil.Decode("0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	if have := Keccak256(); !bytes.Equal(have, exp) {
		t.Errorf("empty keccak256 mismatch: have %x, want %x", have, exp)
	}
}

func checkhash(t *testing.T, name string, f func([]byte) []byte, msg, exp []byte) {
	sum := f(msg)
	if !bytes.Equal(exp, sum) {
		t.Fatalf("hash %s mismatch: want: %x have: %x", name, exp, sum)
	}
}

func TestNewContractAddress(t *testing.T) {
	addr := common.HexToAddress(testAddrHex)

	caddr0 := CreateAddress(addr, 0)
	caddr1 := CreateAddress(addr, 1)
	caddr2 := CreateAddress(addr, 2)
	if exp := common.HexToAddress("333c3310824b7c685133f2bedb2ca4b8b4df633d"); caddr0 != exp {
		t.Errorf("nonce 0: have %v, want %v", caddr0, exp)
	}
	if exp := common.HexToAddress("8bda78331c916a08481428e4b07c96d3e916d165"); caddr1 != exp {
		t.Errorf("nonce 1: have %v, want %v", caddr1, exp)
	}
	if exp := common.HexToAddress("c9ddedf451bc62ce88bf9292afb13df35b670699"); caddr2 != exp {
		t.Errorf("nonce 2: have %v, want %v", caddr2, exp)
	}
}

func TestCreateAddress2(t *testing.T) {
	// EIP-1014 example 1.
	addr := common.HexToAddress("0x0000000000000000000000000000000000000000")
	salt := [32]byte{}
	inithash := Keccak256(hexutil.MustDecode("0x00"))
	if have, want := CreateAddress2(addr, salt, inithash), common.HexToAddress("0x4D1A2e2bB4F88F0250f26Ffff098B0b30B26BF38"); have != want {
		t.Errorf("create2: have %v, want %v", have, want)
	}
}
