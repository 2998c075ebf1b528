// Package syntax implements the regex AST and the recursive-descent parser
// that builds it.
//
// The grammar is intentionally small: literal bytes, concatenation,
// alternation (|), and the postfix quantifiers ?, *, +, with (...) grouping.
// There is no escape mechanism and no Unicode character classes — every byte
// other than the six metacharacters is a literal. See the package-level
// Parse function for the exact precedence and tie-break rules.
package syntax

import "fmt"

// Node is a regex AST node. It is a closed tagged union: the only
// implementations are the seven types declared in this file. Node values are
// immutable once constructed and trees are always finite and acyclic.
type Node interface {
	fmt.Stringer
	node()
}

// Empty matches the empty string. It is the explicit representation of
// "nothing" — the zero value of Node is never used in a built AST.
type Empty struct{}

func (Empty) node() {}

func (Empty) String() string { return "Empty" }

// Char matches a single literal byte.
type Char struct {
	Token byte
}

func (Char) node() {}

func (c Char) String() string { return fmt.Sprintf("Char(%c)", c.Token) }

// Concat matches Left followed immediately by Right.
type Concat struct {
	Left, Right Node
}

func (Concat) node() {}

func (c Concat) String() string { return fmt.Sprintf("Concat(%s,%s)", c.Left, c.Right) }

// Or matches either Left or Right (alternation).
type Or struct {
	Left, Right Node
}

func (Or) node() {}

func (o Or) String() string { return fmt.Sprintf("Or(%s,%s)", o.Left, o.Right) }

// ZeroOrOne matches Arg zero or one time ("?").
type ZeroOrOne struct {
	Arg Node
}

func (ZeroOrOne) node() {}

func (z ZeroOrOne) String() string { return fmt.Sprintf("ZeroOrOne(%s)", z.Arg) }

// ZeroOrMore matches Arg zero or more times ("*").
type ZeroOrMore struct {
	Arg Node
}

func (ZeroOrMore) node() {}

func (z ZeroOrMore) String() string { return fmt.Sprintf("ZeroOrMore(%s)", z.Arg) }

// OneOrMore matches Arg one or more times ("+").
type OneOrMore struct {
	Arg Node
}

func (OneOrMore) node() {}

func (o OneOrMore) String() string { return fmt.Sprintf("OneOrMore(%s)", o.Arg) }
