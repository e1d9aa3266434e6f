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
	"errors"
	"fmt"
	"strings"
)

// All build and parse failures are immediate validation or cryptographic
// errors. Nothing is transient and nothing is retried; errors surface to the
// caller with no partial result.
var (
	// ErrInvalidHex is returned when a string expected to be 0x-prefixed hex
	// is not.
	ErrInvalidHex = errors.New("invalid hex string")
	// ErrInvalidNumber is returned for numeric inputs that are negative or
	// not integers.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrInvalidAddress is returned when a recipient is not a checksummed
	// address.
	ErrInvalidAddress = errors.New("invalid checksum address")
	// ErrInvalidSignatureComponent is returned when a supplied r override
	// fails hex validation.
	ErrInvalidSignatureComponent = errors.New("invalid signature component")
)

func errInvalidHexInput(s string) error {
	return fmt.Errorf("%w: %q", ErrInvalidHex, s)
}

func errInvalidNumberInput(s string) error {
	return fmt.Errorf("%w: %q", ErrInvalidNumber, s)
}

// MissingFieldsError reports absent required configuration fields together
// with the full required set for the requested transaction variant.
type MissingFieldsError struct {
	Variant  string   // "execution" or "deployment"
	Missing  []string // the absent fields
	Required []string // every field the variant requires
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing field(s) %s: %s transactions require %s",
		strings.Join(e.Missing, ", "), e.Variant, strings.Join(e.Required, ", "))
}

// Is makes errors.Is(err, &MissingFieldsError{}) usable for matching without
// comparing field sets.
func (e *MissingFieldsError) Is(target error) bool {
	_, ok := target.(*MissingFieldsError)
	return ok
}
