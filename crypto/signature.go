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
	"errors"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/keylesstx/keylesstx/common/math"
)

// ErrInvalidSignature is returned when public key recovery fails: zero or
// unreducible r/s values, a candidate x coordinate that is not on the curve,
// or a recovered point at infinity.
var ErrInvalidSignature = errors.New("invalid signature")

var (
	secp256k1N = secp256k1.S256().Params().N
	secp256k1P = secp256k1.S256().Params().P
)

// RecoverPubkey returns the 64-byte uncompressed public key (x‖y, no format
// prefix) that produced the signature (v, r, s) over hash. v selects the
// candidate point parity and must be 27 or 28, the legacy unprotected
// encoding of recovery ids 0 and 1.
//
// r may exceed the canonical 256-bit bound: the candidate x coordinate is r
// reduced into the curve's field, and the scalar arithmetic reduces r and s
// into the group order. Oversized fixed signature components rely on this.
func RecoverPubkey(hash []byte, v byte, r, s *big.Int) ([]byte, error) {
	if len(hash) != DigestLength {
		return nil, fmt.Errorf("hash is required to be exactly %d bytes (%d)", DigestLength, len(hash))
	}
	if v != 27 && v != 28 {
		return nil, fmt.Errorf("%w: recovery id must be 27 or 28", ErrInvalidSignature)
	}
	if r == nil || s == nil || r.Sign() <= 0 || s.Sign() <= 0 {
		return nil, fmt.Errorf("%w: zero or negative r/s", ErrInvalidSignature)
	}

	// Candidate point: x = r mod p, y decompressed with the parity selected
	// by the recovery id.
	var x, y secp256k1.FieldVal
	x.SetByteSlice(math.PaddedBigBytes(new(big.Int).Mod(r, secp256k1P), 32))
	if !secp256k1.DecompressY(&x, v == 28, &y) {
		return nil, fmt.Errorf("%w: x coordinate not on curve", ErrInvalidSignature)
	}
	y.Normalize()

	var rScalar, sScalar secp256k1.ModNScalar
	rScalar.SetByteSlice(math.PaddedBigBytes(new(big.Int).Mod(r, secp256k1N), 32))
	sScalar.SetByteSlice(math.PaddedBigBytes(new(big.Int).Mod(s, secp256k1N), 32))
	if rScalar.IsZero() || sScalar.IsZero() {
		return nil, fmt.Errorf("%w: r/s reduce to zero", ErrInvalidSignature)
	}
	var e secp256k1.ModNScalar
	e.SetByteSlice(hash)

	// Q = r^-1 (s*R - e*G)
	w := new(secp256k1.ModNScalar).InverseValNonConst(&rScalar)
	u1 := new(secp256k1.ModNScalar).Mul2(&e, w).Negate()
	u2 := new(secp256k1.ModNScalar).Mul2(&sScalar, w)

	var rPoint secp256k1.JacobianPoint
	rPoint.X.Set(&x)
	rPoint.Y.Set(&y)
	rPoint.Z.SetInt(1)

	var u1G, u2R, q secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(u1, &u1G)
	secp256k1.ScalarMultNonConst(u2, &rPoint, &u2R)
	secp256k1.AddNonConst(&u1G, &u2R, &q)
	if (q.X.IsZero() && q.Y.IsZero()) || q.Z.IsZero() {
		return nil, fmt.Errorf("%w: recovered point at infinity", ErrInvalidSignature)
	}
	q.ToAffine()

	pub := secp256k1.NewPublicKey(&q.X, &q.Y).SerializeUncompressed()
	return pub[1:], nil
}

// Ecrecover returns the uncompressed public key that created the given
// signature. The signature must be in the 65-byte [R || S || V] format with
// V holding a recovery id of 0 or 1.
func Ecrecover(hash, sig []byte) ([]byte, error) {
	if len(sig) != SignatureLength {
		return nil, errors.New("invalid signature length")
	}
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	pub, err := RecoverPubkey(hash, sig[RecoveryIDOffset]+27, r, s)
	if err != nil {
		return nil, err
	}
	// Re-add the format prefix for callers expecting the 65-byte form.
	return append([]byte{4}, pub...), nil
}
