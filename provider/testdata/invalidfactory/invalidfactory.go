// Package invalidfactory declares factory directives on declarations
// that do not satisfy the dispatch contract.
package invalidfactory

import "reflect"

type Model interface {
	isModel()
}

//defaultgen:factory
type NotAnInterface struct {
	Name string
}

//defaultgen:factory
type TwoMethods interface {
	New(typ reflect.Type) Model
	Clone(typ reflect.Type) Model
}
