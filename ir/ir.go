// Package ir defines the type descriptor model that the value
// synthesizer operates on. Descriptors are produced by the provider
// from go/types information and are treated as immutable once built.
//
// The descriptor graph may contain reference cycles for
// self-referential user types; consumers that recurse over
// constructors must carry their own visited set.
package ir

// Category identifies the construction category of a type descriptor.
// It is a closed set: the synthesizer's strategy selection is a total
// function over these values.
type Category int

const (
	CategoryOpaque     Category = iota // no resolvable declaration
	CategoryPrimitive                  // built-in with a fixed default literal
	CategoryUnsigned                   // unsigned integer, zero spelled as a conversion
	CategoryArray                      // slice or fixed-length array
	CategoryCollection                 // map or a well-known container type
	CategoryEnum                       // named type with an associated const group
	CategorySingleton                  // named type with a canonical package-level instance
	CategoryClass                      // user-defined type built via constructors
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryOpaque:
		return "Opaque"
	case CategoryPrimitive:
		return "Primitive"
	case CategoryUnsigned:
		return "Unsigned"
	case CategoryArray:
		return "Array"
	case CategoryCollection:
		return "Collection"
	case CategoryEnum:
		return "Enum"
	case CategorySingleton:
		return "Singleton"
	case CategoryClass:
		return "Class"
	default:
		return "Unknown"
	}
}

// QualifiedName names a type or a package-level object.
type QualifiedName struct {
	// Package is the fully qualified import path. Empty for builtins
	// and for structural types (slices, maps).
	Package string

	// Name is the identifier within the package, or the structural
	// spelling for unnamed types (e.g. "[]int").
	Name string
}

// IsZero reports whether the name is empty.
func (q QualifiedName) IsZero() bool {
	return q.Package == "" && q.Name == ""
}

// String returns "path.Name" for package-level names and the bare
// spelling otherwise. Intended for diagnostics, not for emission.
func (q QualifiedName) String() string {
	if q.Package == "" {
		return q.Name
	}
	return q.Package + "." + q.Name
}

// Type is the unit the synthesizer operates on.
//
// Nullable marks pointer-shaped types; the remaining fields describe
// the pointed-to type. Exactly which payload fields are populated
// depends on Category.
type Type struct {
	Name     QualifiedName
	Category Category
	Nullable bool

	// Elem is the element type for arrays and the value type for maps.
	Elem *Type

	// Key is the map key type. Nil for every other shape.
	Key *Type

	// Len is the fixed array length; 0 means slice.
	Len int

	// Constructors are the declared constructor functions for a class,
	// in declaration order.
	Constructors []Constructor

	// Primary is the composite-literal constructor over a class's
	// exported fields. Nil when the type has no struct shape.
	Primary *Constructor

	// Underlying is set for defined types over a built-in (e.g.
	// "type UserID int64"); the default is a conversion of the
	// underlying default.
	Underlying *Type

	// Members are an enum's constant names in declaration order.
	Members []string

	// Instance is a singleton's package-level instance var.
	Instance QualifiedName
}

// Constructor describes one way to build a class value.
type Constructor struct {
	// Name is the constructor function's qualified name. Zero for the
	// primary (composite-literal) constructor.
	Name QualifiedName

	// Params are the constructor parameters in declaration order. For
	// the primary constructor these are the exported fields.
	Params []Param
}

// IsPrimary reports whether this is the composite-literal constructor.
func (c Constructor) IsPrimary() bool { return c.Name.IsZero() }

// Param is a single constructor parameter or struct field.
type Param struct {
	Name string
	Type *Type
}

// PackageInfo describes a Go package.
type PackageInfo struct {
	// Path is the import path (e.g. "example.com/app/api").
	Path string

	// Name is the package name (e.g. "api").
	Name string

	// Dir is the filesystem directory, if known.
	Dir string
}

// IsZero reports whether the package info is empty.
func (p PackageInfo) IsZero() bool {
	return p.Path == "" && p.Name == "" && p.Dir == ""
}

// Warning represents a non-fatal issue encountered during a
// generation run.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string

	// TypeName is the type that triggered the warning, if applicable.
	TypeName string
}
