package demo

import (
	"github.com/KostasZigo/hashdemo/internal/objects"
	"github.com/KostasZigo/hashdemo/utils"
)

// contentAddressingFiles are the name to content pairs of the content addressing section.
var contentAddressingFiles = []objects.File{
	{Path: "README.md", Content: []byte("# My Project\nThis is awesome!")},
	{Path: "main.py", Content: []byte("print('Hello, World!')")},
	{Path: "config.json", Content: []byte(`{"version": "1.0", "debug": true}`)},
}

// Properties shows determinism, the avalanche effect and content addressing.
func (r *Runner) Properties() error {
	r.printf("=== Git Hash Function Properties ===\n\n")

	content := "Hello, Git!"
	hash1, err := r.hashBlob(content)
	if err != nil {
		return err
	}
	hash2, err := r.hashBlob(content)
	if err != nil {
		return err
	}
	r.printf("1. DETERMINISTIC: Same input produces same hash\n")
	r.printf("   Content: '%s'\n", content)
	r.printf("   Hash 1:  %s\n", hash1)
	r.printf("   Hash 2:  %s\n", hash2)
	r.printf("   Equal:   %v\n\n", hash1 == hash2)

	contentA, contentB := "Hello, Git!", "Hello, Git?"
	hashA, err := r.hashBlob(contentA)
	if err != nil {
		return err
	}
	hashB, err := r.hashBlob(contentB)
	if err != nil {
		return err
	}
	differing, err := utils.DifferingBits(hashA, hashB)
	if err != nil {
		return err
	}
	r.printf("2. AVALANCHE EFFECT: Small change, big hash difference\n")
	r.printf("   Content A: '%s'\n", contentA)
	r.printf("   Hash A:    %s\n", hashA)
	r.printf("   Content B: '%s'\n", contentB)
	r.printf("   Hash B:    %s\n", hashB)
	r.printf("   Different: %v\n", hashA != hashB)
	r.printf("   Bits changed: %d of %d\n\n", differing, len(hashA)*4)

	r.printf("3. CONTENT ADDRESSING: Hash identifies content uniquely\n")
	for _, file := range contentAddressingFiles {
		blob := objects.NewBlob(r.hasher, file.Content)
		r.printf("   %-12s -> %s\n", file.Path, blob.Hash())
	}

	return nil
}
