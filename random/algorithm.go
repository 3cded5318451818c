package random

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Algorithm names a bit source implementation.
type Algorithm string

const (
	// PCG is the permuted congruential generator from golang.org/x/exp/rand.
	PCG Algorithm = "pcg"
	// MT19937 is the 32-bit Mersenne Twister from gonum.
	MT19937 Algorithm = "mt19937"
)

// ParseAlgorithm maps a case-insensitive name to an Algorithm. The empty string
// selects PCG.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(name))) {
	case "", PCG:
		return PCG, nil
	case MT19937:
		return MT19937, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
}

// Derive mixes label into seed, giving each named stream its own seed.
// The result depends only on its inputs.
func Derive(seed uint64, label string) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)

	d := xxhash.New()
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(label)
	return d.Sum64()
}
