package utils

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"math/bits"

	"golang.org/x/crypto/blake2b"
)

var (
	ErrInvalidObjectType    = errors.New("invalid object type")
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")
)

type ObjectType string

const (
	BlobObjectType ObjectType = "blob"
	TreeObjectType ObjectType = "tree"
)

func (ot ObjectType) IsValid() bool {
	switch ot {
	case BlobObjectType, TreeObjectType:
		return true
	default:
		return false
	}
}

// Algorithm names the digest function behind a Hasher.
type Algorithm string

const (
	SHA1    Algorithm = "sha1"
	SHA256  Algorithm = "sha256"
	BLAKE2b Algorithm = "blake2b"
)

// Algorithms lists every supported algorithm, default first.
var Algorithms = []Algorithm{SHA1, SHA256, BLAKE2b}

func (a Algorithm) IsValid() bool {
	switch a {
	case SHA1, SHA256, BLAKE2b:
		return true
	default:
		return false
	}
}

// HexLength is the length of a hex digest produced by the algorithm.
func (a Algorithm) HexLength() int {
	switch a {
	case SHA1:
		return 2 * sha1.Size
	case SHA256:
		return 2 * sha256.Size
	case BLAKE2b:
		return 2 * blake2b.Size256
	default:
		return 0
	}
}

func (a Algorithm) newHash() hash.Hash {
	switch a {
	case SHA256:
		return sha256.New()
	case BLAKE2b:
		// New256 only fails for keys longer than 64 bytes
		h, _ := blake2b.New256(nil)
		return h
	default:
		return sha1.New()
	}
}

// Hasher computes object digests with a fixed algorithm.
// The zero value hashes with SHA-1.
type Hasher struct {
	algorithm Algorithm
}

// NewHasher returns a Hasher for the named algorithm.
func NewHasher(algorithm Algorithm) (Hasher, error) {
	if !algorithm.IsValid() {
		return Hasher{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
	return Hasher{algorithm: algorithm}, nil
}

func (h Hasher) Algorithm() Algorithm {
	if h.algorithm == "" {
		return SHA1
	}
	return h.algorithm
}

// Hash computes the digest of "<type> <size>\0<content>" as lowercase hex.
func (h Hasher) Hash(objectType ObjectType, content []byte) (string, error) {
	if !objectType.IsValid() {
		return "", fmt.Errorf("%w: %s - hash not computed", ErrInvalidObjectType, objectType)
	}

	digest := h.Algorithm().newHash()
	digest.Write(Header(objectType, len(content)))
	digest.Write(content)
	return hex.EncodeToString(digest.Sum(nil)), nil
}

// Verify recomputes the digest of content and compares it to expected.
func (h Hasher) Verify(expected string, objectType ObjectType, content []byte) bool {
	actual, err := h.Hash(objectType, content)
	if err != nil {
		return false
	}
	return actual == expected
}

// Header returns the object header "<type> <size>\0".
func Header(objectType ObjectType, size int) []byte {
	return fmt.Appendf(nil, "%s %d\x00", objectType, size)
}

// ComputeHash calculates the SHA-1 hash for Object content
func ComputeHash(content []byte, objectType ObjectType) (string, error) {
	return Hasher{}.Hash(objectType, content)
}

// DifferingBits counts bit positions that differ between two hex digests of equal length.
func DifferingBits(a, b string) (int, error) {
	left, err := hex.DecodeString(a)
	if err != nil {
		return 0, fmt.Errorf("failed to decode digest %s: %w", a, err)
	}
	right, err := hex.DecodeString(b)
	if err != nil {
		return 0, fmt.Errorf("failed to decode digest %s: %w", b, err)
	}
	if len(left) != len(right) {
		return 0, fmt.Errorf("digest length mismatch: %d != %d", len(left), len(right))
	}

	count := 0
	for i := range left {
		count += bits.OnesCount8(left[i] ^ right[i])
	}
	return count, nil
}
