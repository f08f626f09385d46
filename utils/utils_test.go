package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"testing"
)

// TestComputeHash_ReferenceVectors pins digests that git hash-object produces.
func TestComputeHash_ReferenceVectors(t *testing.T) {
	tests := []struct {
		name       string
		objectType ObjectType
		content    []byte
		expected   string
	}{
		{"empty blob", BlobObjectType, []byte{}, "e69de29bb2d1d6434b8b29ae775ad8c2e48c5391"},
		{"empty tree", TreeObjectType, []byte{}, "4b825dc642cb6eb9a060e54bf8d69288fbee4904"},
		{"hello world", BlobObjectType, []byte("hello world\n"), "3b18e512dba79e4c8300dd08aeb37f8e728b8dad"},
		{"hello git", BlobObjectType, []byte("Hello, Git!"), "7f118ff7695c4888a5ca943591eb013e40a63187"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hash, err := ComputeHash(tc.content, tc.objectType)
			if err != nil {
				t.Fatalf("Failed to compute hash: %v", err)
			}
			if hash != tc.expected {
				t.Errorf("Expected hash %s, got %s", tc.expected, hash)
			}
		})
	}
}

// TestComputeHash_HeaderComposition verifies the digest covers "<type> <len>\0<content>".
func TestComputeHash_HeaderComposition(t *testing.T) {
	raw := sha1.Sum([]byte("blob 11\x00Hello, Git!"))
	expected := hex.EncodeToString(raw[:])

	hash, err := ComputeHash([]byte("Hello, Git!"), BlobObjectType)
	if err != nil {
		t.Fatalf("Failed to compute hash: %v", err)
	}
	if hash != expected {
		t.Errorf("Expected hash %s, got %s", expected, hash)
	}
}

// TestComputeHash_ByteLength verifies the header counts bytes, not characters.
func TestComputeHash_ByteLength(t *testing.T) {
	content := []byte("héllo")
	raw := sha1.Sum(append([]byte("blob 6\x00"), content...))

	hash, err := ComputeHash(content, BlobObjectType)
	if err != nil {
		t.Fatalf("Failed to compute hash: %v", err)
	}
	if hash != hex.EncodeToString(raw[:]) {
		t.Errorf("Header must use byte length 6, got hash %s", hash)
	}
}

func TestComputeHash_Deterministic(t *testing.T) {
	content := []byte("Hello, Git!")
	first, _ := ComputeHash(content, BlobObjectType)
	second, _ := ComputeHash(content, BlobObjectType)

	if first != second {
		t.Fatalf("Same content should produce same hash: %s != %s", first, second)
	}
}

// TestComputeHash_SingleCharacterEdits verifies every one-character edit changes the digest.
func TestComputeHash_SingleCharacterEdits(t *testing.T) {
	base := "The quick brown fox jumps over the lazy dog"
	seen := map[string]string{}

	record := func(content string) {
		hash, err := ComputeHash([]byte(content), BlobObjectType)
		if err != nil {
			t.Fatalf("Failed to compute hash: %v", err)
		}
		if previous, ok := seen[hash]; ok && previous != content {
			t.Fatalf("Collision between %q and %q", previous, content)
		}
		seen[hash] = content
	}

	record(base)
	for i := range len(base) {
		edited := []byte(base)
		edited[i]++
		record(string(edited))
		record(base[:i] + base[i+1:])
	}

	// every substitution and deletion yields a distinct content
	if expected := 1 + 2*len(base); len(seen) != expected {
		t.Errorf("Expected %d unique hashes, got %d", expected, len(seen))
	}
}

func TestComputeHash_TypeTagMatters(t *testing.T) {
	blobHash, _ := ComputeHash([]byte("x"), BlobObjectType)
	treeHash, _ := ComputeHash([]byte("x"), TreeObjectType)

	if blobHash == treeHash {
		t.Fatal("Blob and tree with same content should have different hashes")
	}
}

func TestComputeHash_InvalidObjectType(t *testing.T) {
	_, err := ComputeHash([]byte("content"), ObjectType("commit"))
	if err == nil {
		t.Fatal("Expected error for invalid object type")
	}
	if !errors.Is(err, ErrInvalidObjectType) {
		t.Errorf("Expected ErrInvalidObjectType, got: %v", err)
	}
}

func TestNewHasher_Algorithms(t *testing.T) {
	tests := []struct {
		algorithm Algorithm
		emptyBlob string
	}{
		{SHA1, "e69de29bb2d1d6434b8b29ae775ad8c2e48c5391"},
		{SHA256, "473a0f4c3be8a93681a267e3b1e9a7dcda1185436fe141f7749120a303721813"},
		{BLAKE2b, "c7207ed4aeba8e7d55617d32dd232c8466953b1a582f9c3548958d198813319c"},
	}

	for _, tc := range tests {
		t.Run(string(tc.algorithm), func(t *testing.T) {
			hasher, err := NewHasher(tc.algorithm)
			if err != nil {
				t.Fatalf("Failed to create hasher: %v", err)
			}

			hash, err := hasher.Hash(BlobObjectType, nil)
			if err != nil {
				t.Fatalf("Failed to compute hash: %v", err)
			}
			if hash != tc.emptyBlob {
				t.Errorf("Expected empty blob hash %s, got %s", tc.emptyBlob, hash)
			}
			if len(hash) != tc.algorithm.HexLength() {
				t.Errorf("Expected %d hex chars, got %d", tc.algorithm.HexLength(), len(hash))
			}
		})
	}
}

func TestNewHasher_Unsupported(t *testing.T) {
	_, err := NewHasher(Algorithm("md5"))
	if !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Fatalf("Expected ErrUnsupportedAlgorithm, got: %v", err)
	}
}

func TestHasher_ZeroValueIsSHA1(t *testing.T) {
	var hasher Hasher
	if hasher.Algorithm() != SHA1 {
		t.Fatalf("Expected zero value algorithm %s, got %s", SHA1, hasher.Algorithm())
	}
}

func TestHasher_Verify(t *testing.T) {
	hasher := Hasher{}
	original := []byte("def fibonacci(n)")
	expected, _ := hasher.Hash(BlobObjectType, original)

	if !hasher.Verify(expected, BlobObjectType, original) {
		t.Error("Verify should accept original content")
	}
	if hasher.Verify(expected, BlobObjectType, []byte("def fibonaci(n)")) {
		t.Error("Verify should reject corrupted content")
	}
	if hasher.Verify(expected, ObjectType("bogus"), original) {
		t.Error("Verify should reject invalid object type")
	}
}

func TestDifferingBits(t *testing.T) {
	count, err := DifferingBits("00ff", "0f0f")
	if err != nil {
		t.Fatalf("DifferingBits failed: %v", err)
	}
	if count != 8 {
		t.Errorf("Expected 8 differing bits, got %d", count)
	}

	if _, err := DifferingBits("00", "0000"); err == nil {
		t.Error("Expected error for digests of different length")
	}
	if _, err := DifferingBits("zz", "00"); err == nil {
		t.Error("Expected error for invalid hex")
	}
}
