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
	"github.com/keylesstx/keylesstx/common/math"
	"github.com/keylesstx/keylesstx/core/types"
	"github.com/keylesstx/keylesstx/crypto"
)

// Config holds the inputs of a build. Numeric fields accept decimal or
// 0x-prefixed hex through their text/JSON encodings; payload fields are
// 0x-prefixed hex strings. A nil pointer or empty string means absent.
type Config struct {
	GasLimit *math.HexOrDecimal256 `json:"gasLimit"`
	GasPrice *math.HexOrDecimal256 `json:"gasPrice"`
	Value    *math.HexOrDecimal256 `json:"value"`
	To       string                `json:"to,omitempty"`       // execution recipient, checksummed
	Data     string                `json:"data,omitempty"`     // execution calldata
	Bytecode string                `json:"bytecode,omitempty"` // deployment init code
	R        string                `json:"r,omitempty"`        // optional r override
}

// Result is the outcome of a build. The signature components are echoed back
// exactly as used.
type Result struct {
	RawTx           string          `json:"rawTx"`
	SenderAddress   common.Address  `json:"senderAddress"`
	ContractAddress *common.Address `json:"contractAddress,omitempty"`
	UpfrontCost     *big.Int        `json:"upfrontCost"`
	V               hexutil.Uint64  `json:"v"`
	R               *hexutil.Big    `json:"r"`
	S               *hexutil.Big    `json:"s"`
}

// Required field sets per variant, in reporting order.
var (
	executionRequired  = []string{"gasLimit", "gasPrice", "to", "data", "value"}
	deploymentRequired = []string{"gasLimit", "gasPrice", "bytecode", "value"}
)

// BuildExecution constructs a keyless transaction invoking (or transferring
// value to) an existing account. The returned sender address must be funded
// with the upfront cost before the raw transaction is broadcast.
func BuildExecution(cfg *Config) (*Result, error) {
	if err := checkRequired(cfg, "execution", executionRequired); err != nil {
		return nil, err
	}
	if !common.IsChecksumAddress(cfg.To) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, cfg.To)
	}
	data, err := decodePayload(cfg.Data)
	if err != nil {
		return nil, err
	}
	to := common.HexToAddress(cfg.To)
	return build(cfg, &to, data)
}

// BuildDeployment constructs a keyless contract creation transaction. The
// contract address is derived from the sender address and nonce 0, so it is
// as deterministic as the sender itself.
func BuildDeployment(cfg *Config) (*Result, error) {
	if err := checkRequired(cfg, "deployment", deploymentRequired); err != nil {
		return nil, err
	}
	code, err := decodePayload(cfg.Bytecode)
	if err != nil {
		return nil, err
	}
	return build(cfg, nil, code)
}

func build(cfg *Config, to *common.Address, data []byte) (*Result, error) {
	r := DefaultR
	if cfg.R != "" {
		if !isHexString(cfg.R) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSignatureComponent, cfg.R)
		}
		r, _ = new(big.Int).SetString(cfg.R[2:], 16)
		if r == nil {
			r = new(big.Int)
		}
	}
	gasPrice, err := quantity(cfg.GasPrice, "gasPrice")
	if err != nil {
		return nil, err
	}
	value, err := quantity(cfg.Value, "value")
	if err != nil {
		return nil, err
	}
	gasLimitBig, err := quantity(cfg.GasLimit, "gasLimit")
	if err != nil {
		return nil, err
	}
	if gasLimitBig.BitLen() > 64 {
		return nil, fmt.Errorf("%w: gasLimit exceeds 64 bits", ErrInvalidNumber)
	}
	gasLimit := gasLimitBig.Uint64()

	// The sender address is freshly derived, so its first transaction
	// necessarily carries nonce 0.
	var tx *types.LegacyTx
	if to != nil {
		tx = types.NewTransaction(0, *to, value, gasLimit, gasPrice, data)
	} else {
		tx = types.NewContractCreation(0, value, gasLimit, gasPrice, data)
	}
	tx = tx.WithSignature(big.NewInt(FixedV), r, FixedS)
	hash := tx.SigningHash()
	pub, err := crypto.RecoverPubkey(hash.Bytes(), FixedV, tx.R, tx.S)
	if err != nil {
		return nil, err
	}
	sender := crypto.PubkeyToAddress(pub)

	raw, err := tx.MarshalBinary()
	if err != nil {
		return nil, err
	}
	res := &Result{
		RawTx:         hexutil.Encode(raw),
		SenderAddress: sender,
		UpfrontCost:   tx.Cost(),
		V:             hexutil.Uint64(FixedV),
		R:             (*hexutil.Big)(tx.R),
		S:             (*hexutil.Big)(tx.S),
	}
	if to == nil {
		contract := crypto.CreateAddress(sender, tx.Nonce)
		res.ContractAddress = &contract
	}
	return res, nil
}

// checkRequired collects every absent required field so the error names the
// exact set the variant needs.
func checkRequired(cfg *Config, variant string, required []string) error {
	var missing []string
	for _, name := range required {
		var present bool
		switch name {
		case "gasLimit":
			present = cfg.GasLimit != nil
		case "gasPrice":
			present = cfg.GasPrice != nil
		case "value":
			present = cfg.Value != nil
		case "to":
			present = cfg.To != ""
		case "data":
			present = cfg.Data != ""
		case "bytecode":
			present = cfg.Bytecode != ""
		}
		if !present {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Variant: variant, Missing: missing, Required: required}
	}
	return nil
}

// quantity validates a parsed numeric field. ParseBig256 admits negative
// decimals, so the sign is re-checked here.
func quantity(q *math.HexOrDecimal256, name string) (*big.Int, error) {
	v := q.ToInt()
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s is negative", ErrInvalidNumber, name)
	}
	return v, nil
}

// decodePayload converts a 0x-prefixed hex payload (calldata, init code)
// into bytes. "0x" is the empty payload.
func decodePayload(s string) ([]byte, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (%v)", ErrInvalidHex, s, err)
	}
	return b, nil
}
