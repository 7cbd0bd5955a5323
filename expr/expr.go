// Package expr models construction expressions as small immutable
// trees. The synthesizer composes these structurally; they are
// rendered to Go source text only at the emission boundary, which
// keeps nesting well-formed and lets tests compare structure instead
// of strings.
package expr

import (
	"reflect"

	"defaultgen/ir"
)

// Expr is one node of a construction expression.
type Expr interface {
	isExpr()
}

// Literal is a fixed literal spelling, e.g. `0`, `""`, `false`,
// `uint8(0)`.
type Literal struct {
	Text string
}

// Reference names a package-level object, e.g. an enum's first
// constant or a singleton instance.
type Reference struct {
	To ir.QualifiedName
}

// Call invokes a constructor function with the given arguments.
type Call struct {
	Fn   ir.QualifiedName
	Args []Expr
}

// Composite is a composite literal of the given type. An empty Fields
// list renders as T{}.
type Composite struct {
	Of     *ir.Type
	Fields []Field
}

// Field is one keyed element of a composite literal.
type Field struct {
	Name  string
	Value Expr
}

// Addr takes the address of a composite literal, rendering &T{...}.
type Addr struct {
	X *Composite
}

// Nil is the null expression.
type Nil struct{}

func (Literal) isExpr()   {}
func (Reference) isExpr() {}
func (Call) isExpr()      {}
func (Composite) isExpr() {}
func (Addr) isExpr()      {}
func (Nil) isExpr()       {}

// Empty returns the degraded empty expression used when an
// unresolvable non-nullable type is tolerated rather than failed.
func Empty() Expr { return &Literal{} }

// NilExpr returns the null expression.
func NilExpr() Expr { return &Nil{} }

// Equal reports structural equality of two expressions.
func Equal(a, b Expr) bool {
	return reflect.DeepEqual(a, b)
}
