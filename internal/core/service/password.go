package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher wraps bcrypt with an injectable cost so tests can run at
// the minimum work factor.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher at the given bcrypt cost. Costs
// outside bcrypt's valid range fall back to the default.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A malformed digest
// verifies as false rather than erroring. bcrypt compares the full hash
// output, so timing does not depend on where a mismatch occurs.
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
