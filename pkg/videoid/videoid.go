package videoid

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// Length of every generated identifier.
const Length = 11

// Alphabet excludes glyphs that are easy to confuse when copied by hand
// (0/O/o, 1/l/I).
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"

// Source returns a uniformly distributed integer in [0, n).
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

type cryptoSource struct{}

func (cryptoSource) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(err)
	}
	return int(v.Int64())
}

type Generator struct {
	source Source
}

// New returns a generator backed by source, or by crypto/rand if source is nil.
func New(source Source) *Generator {
	if source == nil {
		source = cryptoSource{}
	}

	return &Generator{
		source: source,
	}
}

func (g *Generator) Generate() string {
	id := make([]byte, Length)
	for i := range id {
		id[i] = Alphabet[g.source.Intn(len(Alphabet))]
	}
	return string(id)
}

var defaultGenerator = New(nil)

// Generate returns a fresh identifier using crypto/rand.
func Generate() string {
	return defaultGenerator.Generate()
}

// Valid reports whether id has the identifier shape.
func Valid(id string) bool {
	if len(id) != Length {
		return false
	}

	for i := 0; i < len(id); i++ {
		if strings.IndexByte(Alphabet, id[i]) == -1 {
			return false
		}
	}

	return true
}
