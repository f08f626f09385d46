package constants

import "os"

// Command name constants used in tests and error messages.
// Cobra Use fields remain inline for CLI discoverability.
const (
	RootCmdName       = "hashdemo"
	PropertiesCmdName = "properties"
	IntegrityCmdName  = "integrity"
	CollisionsCmdName = "collisions"
	MerkleCmdName     = "merkle"
	HashObjectCmdName = "hash-object"
	VerifyCmdName     = "verify"
)

// Flag names shared by several commands.
const (
	AlgorithmFlag = "algorithm"
	VerboseFlag   = "verbose"
	SeedFlag      = "seed"
)

// DefaultAlgorithm matches the object format of Git repositories.
const DefaultAlgorithm = "sha1"

// File system permissions for files created by tests.
const (
	// FilePerms grants read/write to owner, read-only to others (rw-r--r--).
	FilePerms os.FileMode = 0644
)

// Cryptographic hash properties.
const (
	// HashByteLength is byte length of SHA-1 hash (20 bytes).
	HashByteLength = 20

	// HashStringLength is hex string length of SHA-1 hash (40 characters).
	HashStringLength = 40
)

// Tree entry and path syntax.
const (
	// NullByte separates header from content and an entry name from its digest.
	NullByte = '\x00'

	// PathSeparator splits snapshot paths into directory levels.
	PathSeparator = "/"

	// RootPath names the root tree of a snapshot.
	RootPath = ""
)

// Demo output formatting.
const (
	// BannerWidth is the width of the "=" rule around the conclusion.
	BannerWidth = 60

	// RandomByteCount is how many random bytes each random collision input carries.
	RandomByteCount = 10

	// PreviewLength truncates long content in the integrity demo.
	PreviewLength = 50

	// CollisionColumnWidth pads and truncates collision inputs.
	CollisionColumnWidth = 30
)
