package ir

// Convenience constructors, used by the provider and heavily by tests.

// Primitive returns a descriptor for a built-in with a fixed default
// literal (bool, string, signed integers, floats).
func Primitive(name string) *Type {
	return &Type{Name: QualifiedName{Name: name}, Category: CategoryPrimitive}
}

// Unsigned returns a descriptor for an unsigned built-in.
func Unsigned(name string) *Type {
	return &Type{Name: QualifiedName{Name: name}, Category: CategoryUnsigned}
}

// Slice returns a descriptor for []elem.
func Slice(elem *Type) *Type {
	return &Type{Category: CategoryArray, Elem: elem}
}

// ArrayN returns a descriptor for [n]elem.
func ArrayN(elem *Type, n int) *Type {
	return &Type{Category: CategoryArray, Elem: elem, Len: n}
}

// Map returns a descriptor for map[key]value.
func Map(key, value *Type) *Type {
	return &Type{Category: CategoryCollection, Key: key, Elem: value}
}

// Collection returns a descriptor for a well-known named container.
func Collection(pkg, name string) *Type {
	return &Type{Name: QualifiedName{Package: pkg, Name: name}, Category: CategoryCollection}
}

// Enum returns a descriptor for a named const group.
func Enum(pkg, name string, members ...string) *Type {
	return &Type{Name: QualifiedName{Package: pkg, Name: name}, Category: CategoryEnum, Members: members}
}

// Singleton returns a descriptor for a type with a canonical
// package-level instance.
func Singleton(pkg, name, instance string) *Type {
	return &Type{
		Name:     QualifiedName{Package: pkg, Name: name},
		Category: CategorySingleton,
		Instance: QualifiedName{Package: pkg, Name: instance},
	}
}

// Class returns a descriptor for a user-defined struct type with the
// given primary (field) parameters.
func Class(pkg, name string, fields ...Param) *Type {
	return &Type{
		Name:     QualifiedName{Package: pkg, Name: name},
		Category: CategoryClass,
		Primary:  &Constructor{Params: fields},
	}
}

// Opaque returns a descriptor for a type with no resolvable
// declaration.
func Opaque(pkg, name string) *Type {
	return &Type{Name: QualifiedName{Package: pkg, Name: name}, Category: CategoryOpaque}
}

// Ptr returns a nullable copy of t. The original is not modified.
func Ptr(t *Type) *Type {
	n := *t
	n.Nullable = true
	return &n
}
