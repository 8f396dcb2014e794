package auth

import "golang.org/x/crypto/bcrypt"

// Hasher wraps bcrypt with a configurable cost.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash generates a salted digest from a plaintext password.
func (h *Hasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Check reports whether plain matches digest. Any comparison error,
// including a corrupt digest, is a non-match.
func (h *Hasher) Check(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
