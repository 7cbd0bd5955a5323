package synth

import (
	"fmt"

	"defaultgen/expr"
	"defaultgen/ir"
)

// Builder produces the canonical default-value expression for the one
// qualified name it was registered under. Handing a builder a
// descriptor with any other name is a programming error and panics.
type Builder func(t *ir.Type) (expr.Expr, error)

// Catalog is the read-only strategy table mapping qualified names to
// builders. It is constructed once and passed into the synthesizer;
// structural shapes (slices, fixed arrays, maps) are not name-keyed
// and are served by the EmptyArray and EmptyMap builders instead.
type Catalog struct {
	builders map[string]Builder
}

// Fixed default literals for built-ins. The unsigned zeros are spelled
// as conversions so the literal carries its type in any argument
// position.
var (
	primitiveLiterals = map[string]string{
		"bool":       "false",
		"string":     `""`,
		"int":        "0",
		"int8":       "0",
		"int16":      "0",
		"int32":      "0",
		"int64":      "0",
		"float32":    "0.0",
		"float64":    "0.0",
		"rune":       "'0'",
		"complex64":  "0i",
		"complex128": "0i",
	}

	unsignedLiterals = map[string]string{
		"uint":    "uint(0)",
		"uint8":   "uint8(0)",
		"byte":    "byte(0)",
		"uint16":  "uint16(0)",
		"uint32":  "uint32(0)",
		"uint64":  "uint64(0)",
		"uintptr": "uintptr(0)",
	}
)

// Well-known container types whose canonical empty value is a bare
// composite literal of the type itself. Entries needing a distinct
// spelling, such as time.Duration, register explicit builders in
// NewCatalog instead.
var namedCollections = []ir.QualifiedName{
	{Package: "bytes", Name: "Buffer"},
	{Package: "strings", Name: "Builder"},
	{Package: "sync", Name: "Map"},
	{Package: "time", Name: "Time"},
	{Package: "encoding/json", Name: "RawMessage"},
	{Package: "net/url", Name: "Values"},
	{Package: "net/http", Name: "Header"},
}

// NewCatalog builds the full strategy table. The result is immutable;
// registering two builders for one qualified name panics.
func NewCatalog() *Catalog {
	c := &Catalog{builders: make(map[string]Builder)}

	for name, lit := range primitiveLiterals {
		c.register(ir.QualifiedName{Name: name}, literalBuilder(ir.QualifiedName{Name: name}, lit))
	}
	for name, lit := range unsignedLiterals {
		c.register(ir.QualifiedName{Name: name}, literalBuilder(ir.QualifiedName{Name: name}, lit))
	}
	for _, name := range namedCollections {
		c.register(name, compositeBuilder(name))
	}
	// time.Duration is a defined integer; a bare zero type-checks in
	// every argument position expecting it.
	dur := ir.QualifiedName{Package: "time", Name: "Duration"}
	c.register(dur, literalBuilder(dur, "0"))

	return c
}

// Lookup returns the builder registered for a qualified name.
func (c *Catalog) Lookup(name ir.QualifiedName) (Builder, bool) {
	b, ok := c.builders[name.String()]
	return b, ok
}

// EmptyArray returns the canonical empty allocator for a slice or
// fixed-length array descriptor.
func (c *Catalog) EmptyArray(t *ir.Type) expr.Expr {
	return &expr.Composite{Of: valueView(t)}
}

// EmptyMap returns the canonical empty constructor for a map
// descriptor.
func (c *Catalog) EmptyMap(t *ir.Type) expr.Expr {
	return &expr.Composite{Of: valueView(t)}
}

// Covers reports whether the catalog can produce a value for the
// descriptor without recursing into constructors. This is the "flat"
// test for constructor parameters; nullable parameters count as
// covered because they short-circuit to nil.
func (c *Catalog) Covers(t *ir.Type) bool {
	if t.Nullable {
		return true
	}
	if _, ok := c.Lookup(t.Name); ok {
		return true
	}
	switch t.Category {
	case ir.CategoryArray:
		return true
	case ir.CategoryCollection:
		return t.Key != nil
	}
	return false
}

// Flat resolves a covered descriptor to its expression. Callers must
// check Covers first.
func (c *Catalog) Flat(t *ir.Type) (expr.Expr, error) {
	if t.Nullable {
		return expr.NilExpr(), nil
	}
	if b, ok := c.Lookup(t.Name); ok {
		return b(t)
	}
	switch t.Category {
	case ir.CategoryArray:
		return c.EmptyArray(t), nil
	case ir.CategoryCollection:
		if t.Key != nil {
			return c.EmptyMap(t), nil
		}
	}
	return nil, &UnsupportedTypeError{Name: t.Name}
}

func (c *Catalog) register(name ir.QualifiedName, b Builder) {
	key := name.String()
	if _, dup := c.builders[key]; dup {
		panic("synth: duplicate builder registered for " + key)
	}
	c.builders[key] = b
}

func literalBuilder(name ir.QualifiedName, text string) Builder {
	return func(t *ir.Type) (expr.Expr, error) {
		if t.Name != name {
			panic(fmt.Sprintf("synth: builder for %s invoked with %s", name, t.Name))
		}
		return &expr.Literal{Text: text}, nil
	}
}

func compositeBuilder(name ir.QualifiedName) Builder {
	return func(t *ir.Type) (expr.Expr, error) {
		if t.Name != name {
			panic(fmt.Sprintf("synth: builder for %s invoked with %s", name, t.Name))
		}
		return &expr.Composite{Of: valueView(t)}, nil
	}
}

// valueView strips the nullability flag so composite spellings name
// the pointed-to type; the synthesizer adds the address-of wrapper.
func valueView(t *ir.Type) *ir.Type {
	if !t.Nullable {
		return t
	}
	n := *t
	n.Nullable = false
	return &n
}
