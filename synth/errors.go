package synth

import (
	"errors"
	"strings"

	"defaultgen/ir"
)

// UnsupportedTypeError reports that no strategy produces a value for a
// non-nullable type. It aborts the generation run for the registry
// entry whose constructor chain reached the type.
type UnsupportedTypeError struct {
	Name ir.QualifiedName
}

func (e *UnsupportedTypeError) Error() string {
	return "no default value strategy for non-nullable type " + e.Name.String()
}

// CyclicTypeError reports a self-referential constructor chain that
// cannot terminate. Path holds the chain from the first repeated type
// back to itself.
type CyclicTypeError struct {
	Path []ir.QualifiedName
}

func (e *CyclicTypeError) Error() string {
	names := make([]string, len(e.Path))
	for i, n := range e.Path {
		names[i] = n.String()
	}
	return "cyclic constructor chain: " + strings.Join(names, " -> ")
}

// errUnresolved marks a descriptor with no backing declaration. It is
// never surfaced: unresolved types degrade to nil or to the empty
// expression with a warning.
var errUnresolved = errors.New("unresolved declaration")
