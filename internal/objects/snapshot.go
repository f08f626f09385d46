package objects

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/KostasZigo/hashdemo/internal/constants"
	"github.com/KostasZigo/hashdemo/utils"
)

// File is a path and its content, the input of a Snapshot.
type File struct {
	Path    string
	Content []byte
}

// node is a file or directory inside a snapshot.
// Children keep the order in which their paths first appeared.
type node struct {
	name     string
	isDir    bool
	content  []byte
	children []*node
	hash     string
}

func (n *node) child(name string) *node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Snapshot is an immutable Merkle tree over a set of files.
// Files hash as blobs, directories hash as trees of their children,
// and the root tree digest covers every file.
type Snapshot struct {
	hasher utils.Hasher
	root   *node
}

// BuildSnapshot hashes every file and directory bottom-up.
func BuildSnapshot(hasher utils.Hasher, files []File) (*Snapshot, error) {
	root := &node{isDir: true}

	for _, file := range files {
		if err := insert(root, file); err != nil {
			return nil, err
		}
	}

	if err := hashRecursive(hasher, root); err != nil {
		return nil, err
	}

	slog.Debug("Built snapshot",
		"files", len(files),
		"root", root.hash)

	return &Snapshot{hasher: hasher, root: root}, nil
}

// splitPath validates a file path and returns its segments.
func splitPath(filePath string) ([]string, error) {
	if filePath == constants.RootPath {
		return nil, fmt.Errorf("invalid path: empty")
	}
	segments := strings.Split(filePath, constants.PathSeparator)
	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", filePath)
		}
		if strings.IndexByte(segment, constants.NullByte) >= 0 {
			return nil, fmt.Errorf("invalid path %q: contains null byte", filePath)
		}
	}
	return segments, nil
}

func insert(root *node, file File) error {
	segments, err := splitPath(file.Path)
	if err != nil {
		return err
	}

	dir := root
	for i, segment := range segments[:len(segments)-1] {
		next := dir.child(segment)
		if next == nil {
			next = &node{name: segment, isDir: true}
			dir.children = append(dir.children, next)
		} else if !next.isDir {
			return fmt.Errorf("path %s conflicts with file %s", file.Path, strings.Join(segments[:i+1], constants.PathSeparator))
		}
		dir = next
	}

	name := segments[len(segments)-1]
	if existing := dir.child(name); existing != nil {
		if existing.isDir {
			return fmt.Errorf("path %s conflicts with directory of the same name", file.Path)
		}
		return fmt.Errorf("duplicate path %s", file.Path)
	}

	dir.children = append(dir.children, &node{name: name, content: file.Content})
	return nil
}

func hashRecursive(hasher utils.Hasher, n *node) error {
	if !n.isDir {
		n.hash = NewBlob(hasher, n.content).Hash()
		return nil
	}
	for _, c := range n.children {
		if err := hashRecursive(hasher, c); err != nil {
			return err
		}
	}
	return hashDirectory(hasher, n)
}

// hashDirectory rehashes n from the current digests of its children.
func hashDirectory(hasher utils.Hasher, n *node) error {
	entries := make([]TreeEntry, 0, len(n.children))
	for _, c := range n.children {
		mode := ModeRegularFile
		if c.isDir {
			mode = ModeDirectory
		}
		entry, err := NewTreeEntry(mode, c.name, c.hash)
		if err != nil {
			return err
		}
		entries = append(entries, *entry)
	}

	tree, err := NewTree(hasher, entries)
	if err != nil {
		return err
	}
	n.hash = tree.Hash()
	return nil
}

// lookup returns the chain of nodes from the root to the node at filePath.
func (s *Snapshot) lookup(filePath string) []*node {
	chain := []*node{s.root}
	if filePath == constants.RootPath {
		return chain
	}

	current := s.root
	for _, segment := range strings.Split(filePath, constants.PathSeparator) {
		if !current.isDir {
			return nil
		}
		current = current.child(segment)
		if current == nil {
			return nil
		}
		chain = append(chain, current)
	}
	return chain
}

// Root returns the digest of the root tree.
func (s *Snapshot) Root() string {
	return s.root.hash
}

// BlobHash returns the blob digest of the file at filePath.
func (s *Snapshot) BlobHash(filePath string) (string, bool) {
	chain := s.lookup(filePath)
	if chain == nil || chain[len(chain)-1].isDir {
		return "", false
	}
	return chain[len(chain)-1].hash, true
}

// TreeHash returns the tree digest of the directory at dir; "" is the root.
func (s *Snapshot) TreeHash(dir string) (string, bool) {
	chain := s.lookup(dir)
	if chain == nil || !chain[len(chain)-1].isDir {
		return "", false
	}
	return chain[len(chain)-1].hash, true
}

// Paths returns the file paths in tree order.
func (s *Snapshot) Paths() []string {
	var paths []string
	walk(s.root, constants.RootPath, func(p string, n *node) {
		if !n.isDir {
			paths = append(paths, p)
		}
	})
	return paths
}

// Digests maps every file and directory path to its digest.
func (s *Snapshot) Digests() map[string]string {
	digests := map[string]string{}
	walk(s.root, constants.RootPath, func(p string, n *node) {
		digests[p] = n.hash
	})
	return digests
}

func walk(n *node, p string, visit func(string, *node)) {
	visit(p, n)
	for _, c := range n.children {
		walk(c, path.Join(p, c.name), visit)
	}
}

// Update returns a snapshot with the file at filePath replaced by content,
// and the paths of the recomputed objects from the leaf up to the root.
// Only the ancestors of the changed file are rehashed; s is left unchanged.
func (s *Snapshot) Update(filePath string, content []byte) (*Snapshot, []string, error) {
	chain := s.lookup(filePath)
	if chain == nil || len(chain) < 2 || chain[len(chain)-1].isDir {
		return nil, nil, fmt.Errorf("file %s not found in snapshot", filePath)
	}

	// copy the path from the root down, sharing every untouched subtree
	copies := make([]*node, len(chain))
	for i, original := range chain {
		clone := *original
		clone.children = append([]*node(nil), original.children...)
		copies[i] = &clone
		if i > 0 {
			parent := copies[i-1]
			for j, c := range parent.children {
				if c == original {
					parent.children[j] = &clone
				}
			}
		}
	}

	leaf := copies[len(copies)-1]
	leaf.content = content
	leaf.hash = NewBlob(s.hasher, content).Hash()

	recomputed := []string{filePath}
	slog.Debug("Recomputed blob", "path", filePath, "hash", leaf.hash)

	dirPath := filePath
	for i := len(copies) - 2; i >= 0; i-- {
		if err := hashDirectory(s.hasher, copies[i]); err != nil {
			return nil, nil, err
		}
		dirPath = parentPath(dirPath)
		recomputed = append(recomputed, dirPath)
		slog.Debug("Recomputed tree", "path", dirPath, "hash", copies[i].hash)
	}

	return &Snapshot{hasher: s.hasher, root: copies[0]}, recomputed, nil
}

func parentPath(p string) string {
	idx := strings.LastIndex(p, constants.PathSeparator)
	if idx < 0 {
		return constants.RootPath
	}
	return p[:idx]
}
