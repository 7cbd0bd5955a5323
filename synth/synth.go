// Package synth implements the default-value synthesizer: a recursive
// algorithm that, given a type descriptor, produces a construction
// expression for a semantically valid default instance of that type.
//
// Strategy selection, in priority order:
//
//  1. a fixed literal for primitive and unsigned built-ins,
//  2. the canonical empty allocator for slices and fixed arrays,
//  3. the canonical empty constructor for maps and well-known
//     containers,
//  4. the first declared constant for enums, the package-level
//     instance for singletons,
//  5. recursive constructor-parameter expansion for user-defined
//     classes,
//  6. nil for nullable types nothing else can serve, the empty
//     expression (with a warning) for unresolvable non-nullable ones.
//
// Synthesis is a pure function of the descriptor and the catalog; the
// only shared state on a Synthesizer is its warning list.
package synth

import (
	"defaultgen/expr"
	"defaultgen/ir"
)

// Synthesizer produces default-value expressions for type descriptors.
// One Synthesizer serves one generation run; it accumulates warnings
// across calls but is otherwise stateless.
type Synthesizer struct {
	catalog  *Catalog
	warnings []ir.Warning
}

// New returns a Synthesizer using the given catalog. A nil catalog
// selects the full built-in one.
func New(catalog *Catalog) *Synthesizer {
	if catalog == nil {
		catalog = NewCatalog()
	}
	return &Synthesizer{catalog: catalog}
}

// Warnings returns the diagnostics accumulated so far.
func (s *Synthesizer) Warnings() []ir.Warning { return s.warnings }

// Synthesize returns a construction expression for the descriptor.
//
// It fails with UnsupportedTypeError when no strategy applies to a
// non-nullable type, and with CyclicTypeError when a non-nullable
// constructor chain revisits a type. Nullable types never fail: any
// failure underneath them resolves to nil.
func (s *Synthesizer) Synthesize(t *ir.Type) (expr.Expr, error) {
	return s.synthesize(t, nil)
}

// synthesize wraps the non-null strategy with the nullability policy.
// Go has no address-of for calls or plain literals, so a successful
// value for a nullable type yields &T{...} only when the value is a
// composite literal and degrades to nil otherwise; nil is the zero
// value of every pointer, so both spellings type-check.
func (s *Synthesizer) synthesize(t *ir.Type, stack []ir.QualifiedName) (expr.Expr, error) {
	v, err := s.value(valueView(t), stack)
	if err != nil {
		if t.Nullable {
			return expr.NilExpr(), nil
		}
		if err == errUnresolved {
			s.warn("unresolved_type", "cannot resolve a declaration for "+t.Name.String()+"; emitting an empty expression", t.Name)
			return expr.Empty(), nil
		}
		return nil, err
	}
	if !t.Nullable {
		return v, nil
	}
	if c, ok := v.(*expr.Composite); ok {
		return &expr.Addr{X: c}, nil
	}
	return expr.NilExpr(), nil
}

// value selects and applies the strategy for a non-nullable view of a
// descriptor.
func (s *Synthesizer) value(t *ir.Type, stack []ir.QualifiedName) (expr.Expr, error) {
	if b, ok := s.catalog.Lookup(t.Name); ok {
		return b(t)
	}

	switch t.Category {
	case ir.CategoryArray:
		return s.catalog.EmptyArray(t), nil

	case ir.CategoryCollection:
		if t.Key != nil {
			return s.catalog.EmptyMap(t), nil
		}
		// A named container the catalog does not know.
		return nil, &UnsupportedTypeError{Name: t.Name}

	case ir.CategoryEnum:
		if len(t.Members) == 0 {
			return nil, &UnsupportedTypeError{Name: t.Name}
		}
		return &expr.Reference{To: ir.QualifiedName{Package: t.Name.Package, Name: t.Members[0]}}, nil

	case ir.CategorySingleton:
		if t.Instance.IsZero() {
			return nil, &UnsupportedTypeError{Name: t.Name}
		}
		return &expr.Reference{To: t.Instance}, nil

	case ir.CategoryClass:
		return s.expand(t, stack)

	case ir.CategoryPrimitive, ir.CategoryUnsigned:
		// A primitive-shaped name without a registered builder means
		// the provider and the catalog disagree.
		return nil, &UnsupportedTypeError{Name: t.Name}

	default:
		return nil, errUnresolved
	}
}

// expand builds a class value by constructor selection:
// a zero-parameter constructor first, then a flat constructor whose
// every parameter the catalog covers, then the primary constructor
// with full recursion. A class with no usable path degrades to the
// bare composite literal, which always compiles for a struct.
func (s *Synthesizer) expand(t *ir.Type, stack []ir.QualifiedName) (expr.Expr, error) {
	for _, seen := range stack {
		if seen == t.Name {
			return nil, &CyclicTypeError{Path: append(append([]ir.QualifiedName{}, stack...), t.Name)}
		}
	}
	stack = append(stack, t.Name)

	for _, c := range t.Constructors {
		if len(c.Params) == 0 {
			return &expr.Call{Fn: c.Name}, nil
		}
	}
	if t.Primary != nil && len(t.Primary.Params) == 0 {
		return &expr.Composite{Of: t}, nil
	}

	if c := s.flatConstructor(t); c != nil {
		return s.applyFlat(t, c)
	}

	if t.Primary != nil {
		fields := make([]expr.Field, 0, len(t.Primary.Params))
		for _, p := range t.Primary.Params {
			v, err := s.synthesize(p.Type, stack)
			if err != nil {
				return nil, err
			}
			fields = append(fields, expr.Field{Name: p.Name, Value: v})
		}
		return &expr.Composite{Of: t, Fields: fields}, nil
	}

	// Defined types over a built-in construct via conversion of the
	// underlying default, e.g. UserID(0).
	if t.Underlying != nil {
		v, err := s.value(valueView(t.Underlying), stack)
		if err != nil {
			return nil, err
		}
		return &expr.Call{Fn: t.Name, Args: []expr.Expr{v}}, nil
	}

	s.warn("missing_constructor", t.Name.String()+" has no usable constructor; degrading to an empty composite", t.Name)
	return &expr.Composite{Of: t}, nil
}

// flatConstructor returns the first constructor whose every parameter
// the catalog covers, checking declared constructors before the
// primary. Nil when none qualifies.
func (s *Synthesizer) flatConstructor(t *ir.Type) *ir.Constructor {
	candidates := make([]*ir.Constructor, 0, len(t.Constructors)+1)
	for i := range t.Constructors {
		candidates = append(candidates, &t.Constructors[i])
	}
	if t.Primary != nil {
		candidates = append(candidates, t.Primary)
	}

	for _, c := range candidates {
		flat := true
		for _, p := range c.Params {
			if !s.catalog.Covers(p.Type) {
				flat = false
				break
			}
		}
		if flat {
			return c
		}
	}
	return nil
}

func (s *Synthesizer) applyFlat(t *ir.Type, c *ir.Constructor) (expr.Expr, error) {
	args := make([]expr.Expr, 0, len(c.Params))
	for _, p := range c.Params {
		v, err := s.catalog.Flat(p.Type)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	if c.IsPrimary() {
		fields := make([]expr.Field, len(args))
		for i, p := range c.Params {
			fields[i] = expr.Field{Name: p.Name, Value: args[i]}
		}
		return &expr.Composite{Of: t, Fields: fields}, nil
	}
	return &expr.Call{Fn: c.Name, Args: args}, nil
}

func (s *Synthesizer) warn(code, msg string, name ir.QualifiedName) {
	s.warnings = append(s.warnings, ir.Warning{Code: code, Message: msg, TypeName: name.String()})
}
