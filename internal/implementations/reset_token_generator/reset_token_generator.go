package resettokengenerator

import (
	"crypto/rand"
	"math/big"
	"userhub/internal/core/domain/account"
)

const TOKEN_LENGTH = 32

// Generator produces opaque alphanumeric reset tokens from a CSPRNG.
type Generator struct {
	chars []rune
}

func NewGenerator() *Generator {
	return &Generator{
		chars: []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"),
	}
}

func (g *Generator) GenerateResetToken() account.ResetToken {
	b := make([]rune, TOKEN_LENGTH)
	max := big.NewInt(int64(len(g.chars)))
	for i := range b {
		ix, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("Could not read from the random source.")
		}
		b[i] = g.chars[ix.Int64()]
	}
	return account.ResetToken(b)
}
