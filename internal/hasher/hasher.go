// Package hasher provides one-way password hashing backed by bcrypt.
package hasher

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher specifies an API for generating and verifying password hashes.
type Hasher interface {
	// Hash generates the hashed string from plain-text.
	Hash(plain string) (string, error)

	// Compare compares a plain-text password to the hashed one. An error
	// indicates a failed comparison.
	Compare(plain, hashed string) error
}

type bcryptHasher struct {
	cost int
}

// NewBcrypt instantiates a bcrypt-based hasher with the given work factor.
// A zero cost selects the default work factor of 10.
func NewBcrypt(cost int) (Hasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &bcryptHasher{cost: cost}, nil
}

func (h *bcryptHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

func (h *bcryptHasher) Compare(plain, hashed string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
