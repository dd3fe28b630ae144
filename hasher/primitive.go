package hasher

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"slices"
	"strconv"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// ErrUnknownPrimitive is returned for a family/length pair without a primitive.
var ErrUnknownPrimitive = errors.New("unknown digest primitive")

// Digest families known to NewDigest.
const (
	FamilySHA     = "sha"
	FamilySHA3    = "sha3"
	FamilyBLAKE2b = "blake2b"
)

type primitiveKey struct {
	family string
	bits   int
}

var primitives = map[primitiveKey]func() (hash.Hash, error){
	{FamilySHA, 224}: plain(sha256.New224),
	{FamilySHA, 256}: plain(sha256.New),
	{FamilySHA, 384}: plain(sha512.New384),
	{FamilySHA, 512}: plain(sha512.New),

	{FamilySHA3, 224}: plain(sha3.New224),
	{FamilySHA3, 256}: plain(sha3.New256),
	{FamilySHA3, 384}: plain(sha3.New384),
	{FamilySHA3, 512}: plain(sha3.New512),

	{FamilyBLAKE2b, 256}: func() (hash.Hash, error) { return blake2b.New256(nil) },
	{FamilyBLAKE2b, 384}: func() (hash.Hash, error) { return blake2b.New384(nil) },
	{FamilyBLAKE2b, 512}: func() (hash.Hash, error) { return blake2b.New512(nil) },
}

func plain[H hash.Hash](constructor func() H) func() (hash.Hash, error) {
	return func() (hash.Hash, error) {
		return constructor(), nil
	}
}

// NewDigest returns a fresh hash for the family and output length in bits,
// e.g. ("sha", 256) or ("blake2b", 512).
func NewDigest(family string, bits int) (hash.Hash, error) {
	constructor, ok := primitives[primitiveKey{family: family, bits: bits}]
	if !ok {
		return nil, fmt.Errorf("%w: %s-%d", ErrUnknownPrimitive, family, bits)
	}

	h, err := constructor()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPrimitiveFailure, err)
	}

	return h, nil
}

// Primitives lists the known primitives as "<family>-<bits>" strings.
func Primitives() []string {
	out := make([]string, 0, len(primitives))
	for key := range primitives {
		out = append(out, key.family+"-"+strconv.Itoa(key.bits))
	}

	slices.Sort(out)

	return out
}
