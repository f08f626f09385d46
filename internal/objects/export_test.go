package objects

import (
	"testing"

	"github.com/KostasZigo/hashdemo/utils"
)

// testHasher is the default SHA-1 hasher.
var testHasher = utils.Hasher{}

// projectFiles is the four-file project used by the Merkle demo.
func projectFiles() []File {
	return []File{
		{Path: "src/main.py", Content: []byte("print('Hello, World!')")},
		{Path: "src/utils.py", Content: []byte("def helper(): return True")},
		{Path: "README.md", Content: []byte("# My Project")},
		{Path: "LICENSE", Content: []byte("MIT License")},
	}
}

// assertBlobHash verifies blob hash matches expected value for given content.
func assertBlobHash(t *testing.T, blob *Blob, content []byte) {
	t.Helper()

	expectedHash, err := utils.ComputeHash(content, utils.BlobObjectType)
	if err != nil {
		t.Fatalf("Hash computation failed: %v", err)
	}

	if blob.Hash() != expectedHash {
		t.Fatalf("Expected hash [%s], got [%s]", expectedHash, blob.Hash())
	}
}

// assertBlobContent verifies blob stores exact content and correct size.
func assertBlobContent(t *testing.T, blob *Blob, expectedContent []byte) {
	t.Helper()

	if blob.Size() != len(expectedContent) {
		t.Fatalf("Expected size %d, got %d", len(expectedContent), blob.Size())
	}

	if string(blob.Content()) != string(expectedContent) {
		t.Fatalf("Expected content [%q], got [%q]", expectedContent, blob.Content())
	}
}

// createTreeEntry creates tree entry and fails test on error.
func createTreeEntry(t *testing.T, mode FileMode, name, hash string) TreeEntry {
	t.Helper()

	entry, err := NewTreeEntry(mode, name, hash)
	if err != nil {
		t.Fatalf("Failed to create tree entry: %v", err)
	}

	return *entry
}

// createTree creates tree from entries and fails test on error.
func createTree(t *testing.T, entries []TreeEntry) *Tree {
	t.Helper()

	tree, err := NewTree(testHasher, entries)
	if err != nil {
		t.Fatalf("Failed to create tree: %v", err)
	}

	return tree
}

// buildSnapshot builds a snapshot and fails test on error.
func buildSnapshot(t *testing.T, files []File) *Snapshot {
	t.Helper()

	snapshot, err := BuildSnapshot(testHasher, files)
	if err != nil {
		t.Fatalf("Failed to build snapshot: %v", err)
	}

	return snapshot
}
