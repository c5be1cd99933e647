package casts

import (
	"strconv"

	"github.com/spf13/cast"
	"golang.org/x/crypto/bcrypt"

	"github.com/ahmetaksoy/castable"
)

func init() {
	castable.RegisterCaster("hashed_value", func(args []string) (castable.CasterSetter, error) {
		cost := bcrypt.DefaultCost
		if len(args) > 0 {
			c, err := strconv.Atoi(args[0])
			if err != nil {
				return nil, err
			}
			cost = c
		}
		return NewHashed(cost)
	})
}

// Hashed writes bcrypt digests for password-style columns. It is
// inbound-only: reads return the stored digest unchanged, since digests
// are one-way.
type Hashed struct {
	cost int
}

// NewHashed returns a Hashed caster with the given bcrypt cost.
func NewHashed(cost int) (*Hashed, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, bcrypt.InvalidCostError(cost)
	}
	return &Hashed{cost: cost}, nil
}

// Set hashes value. Values that already look like bcrypt digests pass
// through so re-saving a loaded record does not double-hash.
func (h *Hashed) Set(_ castable.Record, _ string, value any, _ map[string]any) (any, error) {
	if value == nil {
		return nil, nil
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return nil, err
	}
	if isBcryptDigest(s) {
		return s, nil
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(s), h.cost)
	if err != nil {
		return nil, err
	}
	return string(digest), nil
}

func isBcryptDigest(s string) bool {
	if _, err := bcrypt.Cost([]byte(s)); err != nil {
		return false
	}
	return true
}
