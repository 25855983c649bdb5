// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"recyclemart/config"
	"recyclemart/internal/domain/service"
)

// forbiddenWords may not appear anywhere in a password, case-insensitively.
var forbiddenWords = []string{"password", "admin", "recyclemart", "qwerty"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	hasher := &bcryptHasher{cost: bcrypt.DefaultCost, strength: defaultStrength()}
	if cfg == nil {
		return hasher
	}
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		hasher.cost = cfg.Auth.BcryptCost
	}
	if cfg.PasswordStrength != nil {
		hasher.strength = *cfg.PasswordStrength
	}

	return hasher
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost and the default strength rules.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost, strength: defaultStrength()}
}

func defaultStrength() config.PasswordStrengthConfig {
	return config.PasswordStrengthConfig{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
		MaxLength:        128,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength applies the configured rules and reports the first one broken.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	length := utf8.RuneCountInString(password)
	switch {
	case length < h.strength.MinLength:
		return errors.Errorf("password must be at least %d characters long", h.strength.MinLength)
	case h.strength.MaxLength > 0 && length > h.strength.MaxLength:
		return errors.Errorf("password must be at most %d characters long", h.strength.MaxLength)
	case h.strength.RequireLowercase && !h.hasLowercase(password):
		return errors.New("password must contain at least one lowercase letter")
	case h.strength.RequireUppercase && !h.hasUppercase(password):
		return errors.New("password must contain at least one uppercase letter")
	case h.strength.RequireNumbers && !h.hasNumbers(password):
		return errors.New("password must contain at least one number")
	case h.strength.RequireSpecial && !h.hasSpecialChars(password):
		return errors.New("password must contain at least one special character")
	case h.containsForbiddenWords(password, forbiddenWords):
		return errors.Errorf("password contains forbidden words (%s)", strings.Join(forbiddenWords, ", "))
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
	}) >= 0
}

func (h *bcryptHasher) containsForbiddenWords(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}
