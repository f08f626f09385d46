package demo

import (
	"strings"

	"github.com/KostasZigo/hashdemo/internal/constants"
	"github.com/KostasZigo/hashdemo/utils"
)

const fibonacciSource = "def fibonacci(n):\n    return n if n <= 1 else fibonacci(n-1) + fibonacci(n-2)"

// Integrity shows that a corrupted copy no longer matches its recorded digest.
func (r *Runner) Integrity() error {
	r.printf("=== Integrity Verification ===\n\n")

	original := fibonacciSource
	originalHash, err := r.hashBlob(original)
	if err != nil {
		return err
	}
	r.printf("Original file:\n")
	r.printf("Content: %.*s...\n", constants.PreviewLength, original)
	r.printf("Hash:    %s\n", originalHash)

	// a single dropped letter, repeated at every occurrence
	corrupted := strings.ReplaceAll(original, "fibonacci", "fibonaci")
	corruptedHash, err := r.hashBlob(corrupted)
	if err != nil {
		return err
	}
	r.printf("\nAfter corruption:\n")
	r.printf("Content: %.*s...\n", constants.PreviewLength, corrupted)
	r.printf("Hash:    %s\n", corruptedHash)

	r.printf("\nCorruption detected: %v\n", originalHash != corruptedHash)
	r.printf("Integrity check (original):  %v\n", r.verify(originalHash, original))
	r.printf("Integrity check (corrupted): %v\n", r.verify(originalHash, corrupted))

	return nil
}

func (r *Runner) verify(expected, content string) bool {
	return r.hasher.Verify(expected, utils.BlobObjectType, []byte(content))
}
