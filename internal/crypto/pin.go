// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPINMismatch is returned by [PinHasher.Compare] when the PIN is wrong.
var ErrPINMismatch = errors.New("pin does not match")

// bcryptPinHasher is the private implementation of [PinHasher].
type bcryptPinHasher struct {
	cost int
}

// NewPinHasher constructs a [PinHasher] using bcrypt with the given cost.
// Costs outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewPinHasher(cost int) PinHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptPinHasher{cost: cost}
}

// Hash implements [PinHasher].
func (h *bcryptPinHasher) Hash(pin string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), h.cost)
	if err != nil {
		return nil, fmt.Errorf("error hashing pin: %w", err)
	}
	return hash, nil
}

// Compare implements [PinHasher].
func (h *bcryptPinHasher) Compare(hash []byte, pin string) error {
	err := bcrypt.CompareHashAndPassword(hash, []byte(pin))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPINMismatch
	default:
		return fmt.Errorf("error comparing pin: %w", err)
	}
}
