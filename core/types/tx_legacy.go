// Copyright 2021 The go-ethereum Authors
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

// Package types models the original (pre-typed) Ethereum transaction format
// and its two serialization states: the 6-field signing payload and the full
// 9-field signed form.
package types

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/keylesstx/keylesstx/common"
	"github.com/keylesstx/keylesstx/rlp"
)

// Transaction decode errors.
var (
	// ErrInvalidFieldCount is returned when a decoded transaction list does
	// not have exactly 6 (unsigned) or 9 (signed) fields.
	ErrInvalidFieldCount = errors.New("transaction list must have 6 or 9 fields")
	// ErrExpectedTxList is returned when the top-level RLP value is not a list.
	ErrExpectedTxList = errors.New("transaction must be an RLP list")

	errInvalidRecipient = errors.New("recipient must be empty or 20 bytes")
)

// LegacyTx is the transaction data of the original Ethereum transactions.
type LegacyTx struct {
	Nonce    uint64          // nonce of sender account
	GasPrice *big.Int        // wei per gas
	Gas      uint64          // gas limit
	To       *common.Address // nil means contract creation
	Value    *big.Int        // wei amount
	Data     []byte          // contract invocation input data
	V, R, S  *big.Int        // signature values, nil on the unsigned form
}

// NewTransaction creates an unsigned legacy transaction addressed to a
// recipient.
func NewTransaction(nonce uint64, to common.Address, amount *big.Int, gasLimit uint64, gasPrice *big.Int, data []byte) *LegacyTx {
	return &LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    amount,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	}
}

// NewContractCreation creates an unsigned legacy contract creation
// transaction. The new contract address is derived from the sender address
// and the nonce.
func NewContractCreation(nonce uint64, amount *big.Int, gasLimit uint64, gasPrice *big.Int, data []byte) *LegacyTx {
	return &LegacyTx{
		Nonce:    nonce,
		Value:    amount,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	}
}

// WithSignature returns a copy of the transaction carrying the given
// signature values.
func (tx *LegacyTx) WithSignature(v, r, s *big.Int) *LegacyTx {
	cpy := tx.copy()
	cpy.V, cpy.R, cpy.S = v, r, s
	return cpy
}

// copy creates a deep copy of the transaction data.
func (tx *LegacyTx) copy() *LegacyTx {
	cpy := &LegacyTx{
		Nonce: tx.Nonce,
		To:    copyAddressPtr(tx.To),
		Data:  common.CopyBytes(tx.Data),
		Gas:   tx.Gas,
	}
	if tx.Value != nil {
		cpy.Value = new(big.Int).Set(tx.Value)
	}
	if tx.GasPrice != nil {
		cpy.GasPrice = new(big.Int).Set(tx.GasPrice)
	}
	if tx.V != nil {
		cpy.V = new(big.Int).Set(tx.V)
	}
	if tx.R != nil {
		cpy.R = new(big.Int).Set(tx.R)
	}
	if tx.S != nil {
		cpy.S = new(big.Int).Set(tx.S)
	}
	return cpy
}

// IsContractCreation reports whether the transaction has no recipient.
func (tx *LegacyTx) IsContractCreation() bool { return tx.To == nil }

// IsSigned reports whether the transaction carries signature values.
func (tx *LegacyTx) IsSigned() bool { return tx.V != nil }

// Cost returns value + gas * gasPrice, the balance the sender must hold
// before broadcast. The result is exact; no overflow is possible.
func (tx *LegacyTx) Cost() *big.Int {
	total := new(big.Int).Mul(tx.GasPrice, new(big.Int).SetUint64(tx.Gas))
	if tx.Value != nil {
		total.Add(total, tx.Value)
	}
	return total
}

// SigningHash returns the hash the signature values are interpreted as having
// signed: the keccak256 hash of the RLP encoding of the 6 unsigned fields.
func (tx *LegacyTx) SigningHash() common.Hash {
	return rlpHash(rlp.NewList(tx.fields6()...))
}

// fields6 returns the unsigned field tuple as RLP items. A nil recipient
// encodes as the empty byte string.
func (tx *LegacyTx) fields6() []rlp.Item {
	to := []byte{}
	if tx.To != nil {
		to = tx.To.Bytes()
	}
	return []rlp.Item{
		rlp.Uint64(tx.Nonce),
		rlp.BigInt(tx.GasPrice),
		rlp.Uint64(tx.Gas),
		rlp.Bytes(to),
		rlp.BigInt(tx.Value),
		rlp.Bytes(tx.Data),
	}
}

// MarshalBinary returns the canonical RLP encoding of the transaction: the
// full 9-field form when signed, the 6-field signing payload otherwise.
func (tx *LegacyTx) MarshalBinary() ([]byte, error) {
	fields := tx.fields6()
	if tx.IsSigned() {
		fields = append(fields, rlp.BigInt(tx.V), rlp.BigInt(tx.R), rlp.BigInt(tx.S))
	}
	return rlp.NewList(fields...).Encode(), nil
}

// UnmarshalBinary decodes the canonical RLP encoding of a transaction. Both
// the 9-field signed form and the 6-field signing payload are accepted; for
// the latter V, R and S are left nil.
func (tx *LegacyTx) UnmarshalBinary(b []byte) error {
	it, err := rlp.Decode(b)
	if err != nil {
		return err
	}
	elems, err := it.Elems()
	if err != nil {
		return ErrExpectedTxList
	}
	if len(elems) != 6 && len(elems) != 9 {
		return fmt.Errorf("%w: have %d", ErrInvalidFieldCount, len(elems))
	}
	var dec LegacyTx
	if dec.Nonce, err = elems[0].Uint64(); err != nil {
		return fmt.Errorf("invalid nonce: %w", err)
	}
	if dec.GasPrice, err = elems[1].BigInt(); err != nil {
		return fmt.Errorf("invalid gas price: %w", err)
	}
	if dec.Gas, err = elems[2].Uint64(); err != nil {
		return fmt.Errorf("invalid gas limit: %w", err)
	}
	to, err := elems[3].Bytes()
	if err != nil {
		return fmt.Errorf("invalid recipient: %w", err)
	}
	switch len(to) {
	case 0:
		// contract creation
	case common.AddressLength:
		addr := common.BytesToAddress(to)
		dec.To = &addr
	default:
		return errInvalidRecipient
	}
	if dec.Value, err = elems[4].BigInt(); err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}
	data, err := elems[5].Bytes()
	if err != nil {
		return fmt.Errorf("invalid data: %w", err)
	}
	dec.Data = common.CopyBytes(data)
	if len(elems) == 9 {
		if dec.V, err = elems[6].BigInt(); err != nil {
			return fmt.Errorf("invalid v: %w", err)
		}
		if dec.R, err = elems[7].BigInt(); err != nil {
			return fmt.Errorf("invalid r: %w", err)
		}
		if dec.S, err = elems[8].BigInt(); err != nil {
			return fmt.Errorf("invalid s: %w", err)
		}
	}
	*tx = dec
	return nil
}

func copyAddressPtr(a *common.Address) *common.Address {
	if a == nil {
		return nil
	}
	cpy := *a
	return &cpy
}
