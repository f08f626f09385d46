package demo

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/KostasZigo/hashdemo/internal/constants"
)

// CollisionInputs returns the collision section inputs.
// Two of them embed hex encoded bytes drawn from random.
func CollisionInputs(random io.Reader) ([]string, error) {
	first, err := randomHex(random)
	if err != nil {
		return nil, err
	}
	second, err := randomHex(random)
	if err != nil {
		return nil, err
	}

	return []string{
		"Version 1.0.0",
		"Version 1.0.1",
		"Version 1.1.0",
		"Version 2.0.0",
		"Random content " + first,
		"Another random " + second,
		"The quick brown fox jumps over the lazy dog",
		"The quick brown fox jumps over the lazy dog.",
	}, nil
}

func randomHex(random io.Reader) (string, error) {
	buf := make([]byte, constants.RandomByteCount)
	if _, err := io.ReadFull(random, buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Collisions hashes distinct inputs and shows that every digest is unique.
func (r *Runner) Collisions() error {
	r.printf("=== Collision Resistance Demo ===\n\n")

	contents, err := CollisionInputs(r.random)
	if err != nil {
		return err
	}

	hashes := make(map[string]string, len(contents))
	for _, content := range contents {
		hash, err := r.hashBlob(content)
		if err != nil {
			return err
		}
		hashes[hash] = content
		r.printf("'%-*.*s' -> %s\n", constants.CollisionColumnWidth, constants.CollisionColumnWidth, content, hash)
	}

	r.printf("\nGenerated %d contents -> %d unique hashes\n", len(contents), len(hashes))
	r.printf("No collisions found: %v\n", len(contents) == len(hashes))

	return nil
}
