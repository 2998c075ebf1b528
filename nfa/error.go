// Package nfa lowers a regex AST (see package syntax) to a Thompson NFA:
// states are arranged in a flat arena and addressed by StateID, mirroring
// the ε-patched-fragment construction of the original reference
// implementation and the arena-of-states idiom used throughout this
// repository's teacher package for the same reason — the graph has cycles.
package nfa

import (
	"errors"
	"fmt"

	"github.com/coregx/rxfsa/syntax"
)

// ErrUnknownNode indicates the builder was asked to lower an AST variant it
// does not recognize. Since syntax.Node is a closed tagged union covering
// every shape the parser can produce, this represents an internal bug in
// the compiler, not a malformed pattern — mirroring fsa.py's
// UnknownRegexNodeTypeError.
var ErrUnknownNode = errors.New("unknown regex AST node type")

// UnknownNodeError wraps ErrUnknownNode with the offending node for
// diagnostics.
type UnknownNodeError struct {
	Node syntax.Node
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("%v: %T", ErrUnknownNode, e.Node)
}

func (e *UnknownNodeError) Unwrap() error { return ErrUnknownNode }
