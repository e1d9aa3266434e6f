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

package keyless

import (
	"fmt"
	"math/big"

	"github.com/keylesstx/keylesstx/common"
	"github.com/keylesstx/keylesstx/common/hexutil"
	"github.com/keylesstx/keylesstx/core/types"
)

// ParsedTx is the structural decode of a raw legacy transaction. V, R and S
// are nil when the input was a 6-field signing payload; To is nil for
// contract creation.
type ParsedTx struct {
	Nonce    uint64          `json:"nonce"`
	GasPrice *big.Int        `json:"gasPrice"`
	GasLimit uint64          `json:"gasLimit"`
	To       *common.Address `json:"to,omitempty"`
	Value    *big.Int        `json:"value"`
	Data     hexutil.Bytes   `json:"data"`
	V        *hexutil.Big    `json:"v,omitempty"`
	R        *hexutil.Big    `json:"r,omitempty"`
	S        *hexutil.Big    `json:"s,omitempty"`
}

// Parse decodes a 0x-prefixed raw legacy transaction into its fields. It is
// a pure structural decode: no signature verification or address recovery is
// attempted, so inputs without a recoverable signature still parse.
func Parse(rawTx string) (*ParsedTx, error) {
	raw, err := hexutil.Decode(rawTx)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (%v)", ErrInvalidHex, rawTx, err)
	}
	var tx types.LegacyTx
	if err := tx.UnmarshalBinary(raw); err != nil {
		return nil, err
	}
	parsed := &ParsedTx{
		Nonce:    tx.Nonce,
		GasPrice: tx.GasPrice,
		GasLimit: tx.Gas,
		To:       tx.To,
		Value:    tx.Value,
		Data:     hexutil.Bytes(tx.Data),
	}
	if tx.IsSigned() {
		parsed.V = (*hexutil.Big)(tx.V)
		parsed.R = (*hexutil.Big)(tx.R)
		parsed.S = (*hexutil.Big)(tx.S)
	}
	return parsed, nil
}
