package objects

import (
	"fmt"
	"os"

	"github.com/KostasZigo/hashdemo/utils"
)

type Blob struct {
	content []byte
	hash    string
}

func NewBlob(hasher utils.Hasher, content []byte) *Blob {
	// blob is always a valid type, so Hash cannot fail
	hash, _ := hasher.Hash(utils.BlobObjectType, content)
	return &Blob{
		content: content,
		hash:    hash,
	}
}

func NewBlobFromFile(hasher utils.Hasher, filepath string) (*Blob, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filepath, err)
	}
	return NewBlob(hasher, content), nil
}

func (b *Blob) Hash() string {
	return b.hash
}

func (b *Blob) Content() []byte {
	return b.content
}

func (b *Blob) Size() int {
	return len(b.content)
}

func (b *Blob) Header() string {
	return string(utils.Header(utils.BlobObjectType, b.Size()))
}

func (b *Blob) Data() []byte {
	return append([]byte(b.Header()), b.content...)
}

func (b *Blob) String() string {
	return fmt.Sprintf("Blob{hash: %s, size: %d bytes}", b.hash, b.Size())
}
