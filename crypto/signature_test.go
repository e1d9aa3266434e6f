// Copyright 2017 The go-ethereum Authors
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
	"errors"
	"math/big"
	"testing"

	"github.com/keylesstx/keylesstx/common"
	"github.com/keylesstx/keylesstx/common/hexutil"
)

var (
	testmsg    = hexutil.MustDecode("0xce0677bb30baa8cf067c88db9811f4333d131bf8bcf12fe7065d211dce971008")
	testsig    = hexutil.MustDecode("0x90f27b8b488db00b00606796d2987f6a5f59ae62ea05effe84fef5b8b0e549984a691139ad57a3f0b906637673aa2f63d1f55cb1a69199d4009eea23ceaddc9301")
	testpubkey = hexutil.MustDecode("0x04e32df42865e97135acfb65f3bae71bdc86f4d49150ad6a440b6f15878109880a0a2b2667f7e725ceea70c673093bf67663e0312623c8e091b13cf2c0f11ef652")
)

func TestEcrecover(t *testing.T) {
	pubkey, err := Ecrecover(testmsg, testsig)
	if err != nil {
		t.Fatalf("recover error: %s", err)
	}
	if !bytes.Equal(pubkey, testpubkey) {
		t.Errorf("pubkey mismatch: want: %x have: %x", testpubkey, pubkey)
	}
}

func TestRecoverPubkey(t *testing.T) {
	r := new(big.Int).SetBytes(testsig[:32])
	s := new(big.Int).SetBytes(testsig[32:64])
	pubkey, err := RecoverPubkey(testmsg, 28, r, s)
	if err != nil {
		t.Fatalf("recover error: %s", err)
	}
	if !bytes.Equal(pubkey, testpubkey[1:]) {
		t.Errorf("pubkey mismatch: want: %x have: %x", testpubkey[1:], pubkey)
	}
	if addr, want := PubkeyToAddress(pubkey), common.HexToAddress("0xa19d069d48d2e9392ec2bB41eCaB0A72119d633b"); addr != want {
		t.Errorf("address mismatch: want: %v have: %v", want, addr)
	}
}

func TestRecoverPubkeyInvalidInputs(t *testing.T) {
	r := new(big.Int).SetBytes(testsig[:32])
	s := new(big.Int).SetBytes(testsig[32:64])

	if _, err := RecoverPubkey(testmsg[:16], 28, r, s); err == nil {
		t.Error("expected error for short hash")
	}
	if _, err := RecoverPubkey(testmsg, 2, r, s); err == nil {
		t.Error("expected error for recovery indicator outside {27, 28}")
	}
	if _, err := RecoverPubkey(testmsg, 27, new(big.Int), s); err == nil {
		t.Error("expected error for zero r")
	}
	if _, err := RecoverPubkey(testmsg, 27, r, new(big.Int)); err == nil {
		t.Error("expected error for zero s")
	}
}

// Oversized components are reduced before use: into the field for the x
// coordinate and into the group order for the scalars. The repeated 0x12
// pattern lands on the curve after reduction, the repeated 0x13 pattern does
// not.
func TestRecoverPubkeyOversizedComponents(t *testing.T) {
	oversized := func(b byte) *big.Int {
		return new(big.Int).SetBytes(bytes.Repeat([]byte{b}, 34))
	}

	pubkey, err := RecoverPubkey(testmsg, 27, oversized(0x12), oversized(0x12))
	if err != nil {
		t.Fatalf("recover error: %s", err)
	}
	if len(pubkey) != PublicKeyLength {
		t.Errorf("pubkey length mismatch: want: %d have: %d", PublicKeyLength, len(pubkey))
	}

	if _, err := RecoverPubkey(testmsg, 27, oversized(0x13), oversized(0x12)); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature for off-curve x coordinate, have %v", err)
	}
}
