// Package poseidon implements a Poseidon sponge over the Goldilocks field
// p = 2^64 - 2^32 + 1, as an alternative hasher.Hasher to Keccak-256 for
// deployments that want an arithmetization-friendly hash. The field
// arithmetic and the round function both come from vybium-crypto's
// production Poseidon: this package is a thin sponge/packing adapter around
// it, not a reimplementation.
package poseidon

import (
	"fmt"

	"github.com/bankaixyz/mmr/digest"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/hash"
)

const (
	width         = 12
	rate          = 8
	roundsFull    = 8
	roundsPartial = 22
)

// sboxPower is 7, not vybium-crypto's own 128-bit-security default of 5:
// P-1 = 2^32 * (2^32-1), and 2^32-1 has 5 as a factor, so x -> x^5 is not a
// permutation over this field. x -> x^7 is (gcd(7, P-1) = 1).
const sboxPower = 7

// domainSeparationTag is absorbed ahead of every call's elements, so this
// hasher's digests never collide with a sponge over the same bytes run
// under a different construction.
const domainSeparationTag uint64 = 0x6d6d722d706f7365 // "mmr-pose"

var engine = func() *hash.Poseidon {
	p, err := hash.NewPoseidon(&hash.PoseidonParameters{
		SecurityLevel: 128,
		FieldSize:     64,
		Width:         width,
		Rate:          rate,
		RoundsFull:    roundsFull,
		RoundsPartial: roundsPartial,
		SboxPower:     sboxPower,
	})
	if err != nil {
		panic(fmt.Sprintf("poseidon: building engine: %v", err))
	}
	return p
}()

// Poseidon is a sponge hasher.Hasher over the Goldilocks field.
type Poseidon struct{}

// New returns a Poseidon hasher.Hasher.
func New() Poseidon {
	return Poseidon{}
}

// absorbParts packs parts, concatenated, into 7-byte little-endian chunks -
// each guaranteed to fit below P - and returns them as field elements.
func absorbParts(parts [][]byte) []field.Element {
	var buf []byte
	for _, p := range parts {
		buf = append(buf, p...)
	}

	var elements []field.Element
	for len(buf) > 0 {
		n := 7
		if len(buf) < n {
			n = len(buf)
		}
		var v uint64
		for i := 0; i < n; i++ {
			v |= uint64(buf[i]) << (8 * i)
		}
		elements = append(elements, field.New(v))
		buf = buf[n:]
	}
	return elements
}

// Hash absorbs parts, concatenated in order, and squeezes a 32 byte digest.
// engine.HashElements only exposes a single field element (8 bytes) per
// call, so a 32 byte digest is built from four tagged calls over the same
// absorbed elements - the standard way to extend a sponge's output past one
// squeeze when only a fixed-output Hash is exported.
func (Poseidon) Hash(parts ...[]byte) (digest.Hash32, error) {
	elements := absorbParts(parts)
	if len(elements) == 0 {
		return digest.Hash32{}, fmt.Errorf("poseidon: hash requires at least one absorbed element")
	}

	base := make([]field.Element, 0, len(elements)+2)
	base = append(base, field.New(domainSeparationTag))
	base = append(base, elements...)

	var out [digest.Size]byte
	for i := 0; i < digest.Size/8; i++ {
		tagged := make([]field.Element, len(base)+1)
		copy(tagged, base)
		tagged[len(base)] = field.New(uint64(i))

		limb := engine.HashElements(tagged).ToBytes()
		copy(out[i*8:(i+1)*8], limb[:])
	}
	return digest.FromBytes(out[:])
}

// IsElementSizeValid rejects only the empty input: Poseidon needs at least
// one absorbed element to produce a well-defined digest. Every 7-byte packed
// chunk fits below P by construction, so there is no upper size bound here.
func (Poseidon) IsElementSizeValid(b []byte) bool {
	return len(b) > 0
}
