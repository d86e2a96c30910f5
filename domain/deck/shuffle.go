package deck

import (
	"crypto/cipher"
	"math/big"
	"math/rand/v2"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"

	"github.com/luca-patrignani/casino/domain/cards"
)

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	Intn(n int) int
}

var suite suites.Suite = suites.MustFind("Ed25519")

type cryptoSource struct {
	stream cipher.Stream
}

// NewCryptoSource returns a Source backed by the suite's cryptographic
// random stream.
func NewCryptoSource() Source {
	return cryptoSource{stream: suite.RandomStream()}
}

func (s cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("deck: Intn called with non-positive n")
	}
	return int(random.Int(big.NewInt(int64(n)), s.stream).Int64())
}

type seededSource struct {
	rng *rand.Rand
}

// NewSeededSource returns a deterministic Source, useful to replay a session.
func NewSeededSource(seed uint64) Source {
	return seededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s seededSource) Intn(n int) int {
	return s.rng.IntN(n)
}

// Shuffle permutes the cards in place with a Fisher-Yates pass driven by src.
func Shuffle(stack cards.Stack, src Source) {
	for i := len(stack) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		stack[i], stack[j] = stack[j], stack[i]
	}
}
