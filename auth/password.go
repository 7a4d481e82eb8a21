package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// Hasher wraps bcrypt password hashing with a configurable work factor.
// bcrypt generates a fresh salt per call and embeds it in the output, so
// verification needs nothing beyond the stored hash.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher. A cost outside bcrypt's supported range
// falls back to the library default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Verify reports whether password matches hash. bcrypt's comparison is
// constant time. A malformed stored hash is a non-match, never an error
// that escapes to the caller.
func (h *Hasher) Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
