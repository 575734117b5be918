package utils

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"time"
)

const (
	minResetCode = 100000
	maxResetCode = 999999
)

// resetCodeSpan is the number of distinct codes in [minResetCode, maxResetCode].
var resetCodeSpan = big.NewInt(maxResetCode - minResetCode + 1)

// CodeGenerator produces 6-digit reset codes and their expiry.
type CodeGenerator struct {
	entropy io.Reader
	ttl     time.Duration
}

// NewCodeGenerator returns a generator drawing from crypto/rand.Reader whose
// codes live for ttl.
func NewCodeGenerator(ttl time.Duration) *CodeGenerator {
	return NewCodeGeneratorWithEntropy(rand.Reader, ttl)
}

// NewCodeGeneratorWithEntropy is NewCodeGenerator with an explicit entropy
// source. Tests use it to make codes deterministic.
func NewCodeGeneratorWithEntropy(entropy io.Reader, ttl time.Duration) *CodeGenerator {
	return &CodeGenerator{entropy: entropy, ttl: ttl}
}

// Generate returns a code uniformly drawn from [100000, 999999] and the
// instant now+ttl at which it expires.
func (g *CodeGenerator) Generate(now time.Time) (string, time.Time, error) {
	n, err := rand.Int(g.entropy, resetCodeSpan)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("error generating reset code: %w", err)
	}

	code := n.Int64() + minResetCode
	return fmt.Sprintf("%06d", code), now.Add(g.ttl), nil
}
