// Package demo prints the hashing demonstrations.
// Each section is independent and writes human-readable text to the runner's output.
package demo

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	mathrand "math/rand/v2"
	"strings"

	"github.com/KostasZigo/hashdemo/internal/constants"
	"github.com/KostasZigo/hashdemo/utils"
)

// Runner writes demonstration sections to out.
type Runner struct {
	out    io.Writer
	hasher utils.Hasher
	random io.Reader
}

type Option func(*Runner)

// WithHasher selects the digest algorithm used by every section.
func WithHasher(hasher utils.Hasher) Option {
	return func(r *Runner) {
		r.hasher = hasher
	}
}

// WithRandom replaces the entropy source of the random collision inputs.
func WithRandom(random io.Reader) Option {
	return func(r *Runner) {
		r.random = random
	}
}

func NewRunner(out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		out:    out,
		random: rand.Reader,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SeededRandom returns a deterministic byte stream for reproducible runs.
func SeededRandom(seed uint64) io.Reader {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return mathrand.NewChaCha8(key)
}

// RunAll runs every section in order and stops at the first error.
func (r *Runner) RunAll() error {
	sections := []struct {
		name string
		run  func() error
	}{
		{constants.PropertiesCmdName, r.Properties},
		{constants.IntegrityCmdName, r.Integrity},
		{constants.CollisionsCmdName, r.Collisions},
		{constants.MerkleCmdName, r.Merkle},
	}

	for i, section := range sections {
		if i > 0 {
			r.printf("\n")
		}
		slog.Debug("Running demo section", "section", section.name, "algorithm", r.hasher.Algorithm())
		if err := section.run(); err != nil {
			return fmt.Errorf("%s demo failed: %w", section.name, err)
		}
	}

	r.Conclusion()
	return nil
}

// Conclusion prints the closing summary banner.
func (r *Runner) Conclusion() {
	rule := strings.Repeat("=", constants.BannerWidth)
	r.printf("\n%s\n", rule)
	r.printf("CONCLUSION: Git's cryptographic hashing provides:\n")
	r.printf("- Deterministic content addressing\n")
	r.printf("- Automatic corruption detection\n")
	r.printf("- Strong collision resistance\n")
	r.printf("- Merkle tree integrity propagation\n")
	r.printf("%s\n", rule)
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// hashBlob encodes content as UTF-8 and hashes it as a blob.
func (r *Runner) hashBlob(content string) (string, error) {
	hash, err := r.hasher.Hash(utils.BlobObjectType, []byte(content))
	if err != nil {
		return "", fmt.Errorf("failed to hash %q: %w", content, err)
	}
	return hash, nil
}
