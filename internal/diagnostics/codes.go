package diagnostics

type ErrorCode string

// Error codes are grouped by pipeline stage. The code prefix tells the
// reporter (and tests) which stage produced the diagnostic:
//
//	Lxxx - lexer
//	Pxxx - parser
//	Axxx - analyzer (name resolution, declarations)
//	Mxxx - match compilation (user-facing pattern diagnostics)
//	Ixxx - internal consistency failures (compiler defects, never user errors)
//	Bxxx - backend / build artifacts
const (
	// Lexer
	ErrL001 ErrorCode = "L001" // illegal character
	ErrL002 ErrorCode = "L002" // unterminated string literal

	// Parser
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // no prefix parse rule
	ErrP003 ErrorCode = "P003" // malformed declaration
	ErrP004 ErrorCode = "P004" // recursion depth limit exceeded

	// Analyzer
	ErrA001 ErrorCode = "A001" // unresolved name
	ErrA002 ErrorCode = "A002" // duplicate definition
	ErrA003 ErrorCode = "A003" // not a constructor
	ErrA004 ErrorCode = "A004" // constructor arity mismatch
	ErrA005 ErrorCode = "A005" // duplicate binding in one pattern

	// Match compilation
	ErrM001 ErrorCode = "M001" // missing pattern (non-exhaustive match)
	ErrM002 ErrorCode = "M002" // redundant pattern (never reachable)

	// Internal consistency
	ErrI001 ErrorCode = "I001" // conflicting shapes at one data path
	ErrI002 ErrorCode = "I002" // decision-tree terminal with no covering match
	ErrI003 ErrorCode = "I003" // unsupported shape reached the tree builder

	// Backend
	ErrB001 ErrorCode = "B001" // build cache failure
	ErrB002 ErrorCode = "B002" // artifact write failure
	ErrB003 ErrorCode = "B003" // source file unreadable
)

var messages = map[ErrorCode]string{
	ErrL001: "illegal character",
	ErrL002: "unterminated string literal",
	ErrP001: "unexpected token",
	ErrP002: "cannot parse expression",
	ErrP003: "malformed declaration",
	ErrP004: "recursion depth limit exceeded",
	ErrA001: "unresolved name",
	ErrA002: "duplicate definition",
	ErrA003: "not a constructor",
	ErrA004: "constructor arity mismatch",
	ErrA005: "duplicate binding in pattern",
	ErrM001: "non-exhaustive match",
	ErrM002: "redundant pattern",
	ErrI001: "internal error: conflicting shapes",
	ErrI002: "internal error: unresolved decision-tree terminal",
	ErrI003: "internal error: unsupported shape in decision tree",
	ErrB001: "build cache failure",
	ErrB002: "artifact write failure",
	ErrB003: "source file unreadable",
}

// IsInternal reports whether a code marks a compiler defect rather than a
// user-facing diagnostic.
func (c ErrorCode) IsInternal() bool {
	return len(c) > 0 && c[0] == 'I'
}
