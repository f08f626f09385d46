package objects

// Object represents any hashable object.
// Blobs and trees implement this interface.
type Object interface {
	// Hash returns the hex digest of the object
	Hash() string

	// Data returns the complete object data including header
	// Format: "<type> <size>\0<content>"
	Data() []byte
}
