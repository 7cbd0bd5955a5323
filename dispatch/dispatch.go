// Package dispatch assembles the generated factory type: one branch
// per registered type, in discovery order, each pairing a runtime type
// token with a synthesized construction expression, plus a trailing
// default branch that fails loudly at use time.
package dispatch

import (
	"fmt"

	"defaultgen/expr"
	"defaultgen/ir"
	"defaultgen/synth"
)

// TypeSuffix is appended to the factory's simple name to form the
// generated type's name.
const TypeSuffix = "Impl"

// Factory describes the discovered factory interface: the dispatch
// contract the generated type implements.
type Factory struct {
	// Name is the interface's qualified name.
	Name ir.QualifiedName

	// Package is the interface's defining package; the generated unit
	// lives there.
	Package ir.PackageInfo

	// Method is the single dispatch method.
	Method Method
}

// Method is the factory's dispatch method: it takes a runtime type
// token and returns a value of the marker bound.
type Method struct {
	// Name is the method name, e.g. "New".
	Name string

	// TokenParam is the token parameter's name, e.g. "typ".
	TokenParam string

	// Bound is the marker interface the method returns. Every
	// registered type must implement it.
	Bound ir.QualifiedName
}

// RegistryEntry pairs one registered type with its descriptor.
// Entries are consumed in discovery order and never deduplicated:
// a duplicate produces a duplicate, unreachable-after-first branch.
type RegistryEntry struct {
	Type *ir.Type
}

// Branch is one arm of the generated dispatch switch.
type Branch struct {
	// Case is the registered type the token is matched against.
	Case *ir.Type

	// Value is the construction expression returned by the branch.
	Value expr.Expr
}

// Unit is the single generated source unit of a run, structured
// enough for the emitter to render a syntactically valid file.
type Unit struct {
	// Package is the target package.
	Package ir.PackageInfo

	// TypeName is the generated type's simple name.
	TypeName string

	// Implements is the factory interface the type implements.
	Implements ir.QualifiedName

	// Method is the implemented dispatch method.
	Method Method

	// Branches are the match arms in discovery order. The emitter
	// appends the default branch itself.
	Branches []Branch

	// Warnings are the diagnostics collected while synthesizing.
	Warnings []ir.Warning
}

// Generate builds the dispatch table for a factory over a registry.
//
// A synthesis failure on any entry aborts the run; the error names the
// offending entry. An empty registry is valid and produces a unit
// whose method consists solely of the default branch.
func Generate(f *Factory, registry []RegistryEntry, s *synth.Synthesizer) (*Unit, error) {
	if f == nil {
		return nil, fmt.Errorf("dispatch: nil factory")
	}

	u := &Unit{
		Package:    f.Package,
		TypeName:   f.Name.Name + TypeSuffix,
		Implements: f.Name,
		Method:     f.Method,
	}

	for _, entry := range registry {
		v, err := s.Synthesize(entry.Type)
		if err != nil {
			return nil, fmt.Errorf("dispatch: registry entry %s: %w", entry.Type.Name, err)
		}
		u.Branches = append(u.Branches, Branch{Case: entry.Type, Value: v})
	}

	u.Warnings = s.Warnings()
	return u, nil
}
