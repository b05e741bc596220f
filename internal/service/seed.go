package service

import (
	"crypto/sha256"
	"encoding/hex"
	"math/rand/v2"
	"strconv"
	"strings"
)

const seedSeparator = "|"

// DeriveSeed convierte una tupla ordenada de campos en una semilla estable:
// SHA-256 de los campos unidos por "|", primeros 8 digitos hex como uint32.
func DeriveSeed(fields ...string) uint32 {
	sum := sha256.Sum256([]byte(strings.Join(fields, seedSeparator)))
	digest := hex.EncodeToString(sum[:])
	// 8 digitos hex siempre entran en 32 bits.
	n, _ := strconv.ParseUint(digest[:8], 16, 32)
	return uint32(n)
}

// newSeededRand crea un generador nuevo por llamada; nunca se comparte.
func newSeededRand(seed uint32) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

func pick(r *rand.Rand, choices []string) string {
	return choices[r.IntN(len(choices))]
}
