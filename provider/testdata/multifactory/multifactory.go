// Package multifactory declares two factory directives; only the first
// may be used.
package multifactory

import "reflect"

type Model interface {
	isModel()
}

//defaultgen:factory
type FirstFactory interface {
	New(typ reflect.Type) Model
}

//defaultgen:factory
type SecondFactory interface {
	New(typ reflect.Type) Model
}
