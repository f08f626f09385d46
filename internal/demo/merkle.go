package demo

import (
	"fmt"
	"strings"

	"github.com/KostasZigo/hashdemo/internal/constants"
	"github.com/KostasZigo/hashdemo/internal/objects"
)

// MerkleFiles is the toy project of the Merkle section.
func MerkleFiles() []objects.File {
	return []objects.File{
		{Path: "src/main.py", Content: []byte("print('Hello, World!')")},
		{Path: "src/utils.py", Content: []byte("def helper(): return True")},
		{Path: "README.md", Content: []byte("# My Project")},
		{Path: "LICENSE", Content: []byte("MIT License")},
	}
}

const (
	modifiedPath    = "src/main.py"
	modifiedContent = "print('Hello, Modified World!')"
)

// Merkle builds a small tree, modifies one file and shows the change reach the root.
func (r *Runner) Merkle() error {
	r.printf("=== Merkle Tree Structure Demo ===\n\n")

	files := MerkleFiles()
	snapshot, err := objects.BuildSnapshot(r.hasher, files)
	if err != nil {
		return fmt.Errorf("failed to build snapshot: %w", err)
	}

	for _, p := range snapshot.Paths() {
		hash, _ := snapshot.BlobHash(p)
		r.printf("FILE: %-15s -> %s\n", p, hash)
	}

	srcHash, _ := snapshot.TreeHash("src")
	r.printf("\nTREE: %-17s -> %s\n", dirLabel("src"), srcHash)
	r.printf("TREE: %-17s -> %s\n", dirLabel(constants.RootPath), snapshot.Root())

	r.printf("\nMerkle Property: Change any file -> Root hash changes\n")

	updated, recomputed, err := snapshot.Update(modifiedPath, []byte(modifiedContent))
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", modifiedPath, err)
	}

	// rebuild from scratch to cross-check the incremental path
	for i := range files {
		if files[i].Path == modifiedPath {
			files[i].Content = []byte(modifiedContent)
		}
	}
	rebuilt, err := objects.BuildSnapshot(r.hasher, files)
	if err != nil {
		return fmt.Errorf("failed to rebuild snapshot: %w", err)
	}

	var unchanged []string
	before, after := snapshot.Digests(), updated.Digests()
	for _, p := range snapshot.Paths() {
		if before[p] == after[p] {
			unchanged = append(unchanged, p)
		}
	}

	// the first recomputed object is the file itself, the rest are its ancestors
	display := []string{recomputed[0]}
	for _, p := range recomputed[1:] {
		display = append(display, dirLabel(p))
	}

	r.printf("\nAfter modifying %s:\n", modifiedPath)
	r.printf("New root hash:          -> %s\n", updated.Root())
	r.printf("Root hash changed:      -> %v\n", snapshot.Root() != updated.Root())
	r.printf("Recomputed objects:     -> %s\n", strings.Join(display, ", "))
	r.printf("Unchanged objects:      -> %s\n", strings.Join(unchanged, ", "))
	r.printf("Matches full rebuild:   -> %v\n", rebuilt.Root() == updated.Root())

	return nil
}

// dirLabel renders a directory with a trailing separator and the root as "root".
func dirLabel(p string) string {
	if p == constants.RootPath {
		return "root"
	}
	return p + constants.PathSeparator
}
