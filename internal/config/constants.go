package config

// SourceFileExt is the canonical Velt source extension.
const SourceFileExt = ".vt"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".vt", ".velt"}

// ManifestFileName is the project manifest looked up in the project root.
const ManifestFileName = "velt.yaml"

// CacheFileName is the incremental build cache database.
const CacheFileName = ".velt-cache.db"

// MaxRecursionDepth bounds parser recursion over nested expressions.
const MaxRecursionDepth = 500
