// Package testdata exercises directive discovery. Every shape the
// adapter classifies appears here at least once.
package testdata

import "reflect"

// Model is the marker bound returned by the factory.
type Model interface {
	isModel()
}

//defaultgen:factory
type ModelFactory interface {
	New(typ reflect.Type) Model
}

//defaultgen:register
type User struct {
	Name string
	Age  int
}

func (User) isModel() {}

//defaultgen:register
type Color int

const (
	ColorRed Color = iota
	ColorGreen
)

func (Color) isModel() {}

//defaultgen:register
type Widget struct {
	size int
}

func (Widget) isModel() {}

func NewWidget() Widget { return Widget{size: 1} }

//defaultgen:register
type UserID int64

func (UserID) isModel() {}

//defaultgen:register
type Tags []string

func (Tags) isModel() {}

//defaultgen:register
type Node struct {
	Value int
	Next  *Node
}

func (Node) isModel() {}

//defaultgen:register
type Registry struct {
	entries map[string]Model
}

func (Registry) isModel() {}

// DefaultRegistry is the canonical shared instance.
var DefaultRegistry = Registry{}
