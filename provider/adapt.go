package provider

import (
	"go/types"
	"sort"
	"strings"

	"defaultgen/ir"
)

// adapter converts go/types types into descriptors. Conversions are
// memoized so self-referential types produce a cyclic descriptor
// graph instead of diverging; the synthesizer carries its own cycle
// guard over that graph.
type adapter struct {
	memo     map[types.Type]*ir.Type
	fixups   []func()
	warnings []ir.Warning
}

func newAdapter() *adapter {
	return &adapter{memo: make(map[types.Type]*ir.Type)}
}

// resolve runs the deferred pointer copies. Pointer descriptors clone
// their element, and the element may still be mid-adaptation when the
// pointer is seen (a struct holding *itself), so the clone is deferred
// until the whole graph is built.
func (a *adapter) resolve() {
	for _, f := range a.fixups {
		f()
	}
	a.fixups = nil
}

func (a *adapter) adapt(t types.Type) *ir.Type {
	t = unalias(t)
	if d, ok := a.memo[t]; ok {
		return d
	}

	switch t := t.(type) {
	case *types.Pointer:
		d := &ir.Type{Nullable: true}
		a.memo[t] = d
		elem := a.adapt(t.Elem())
		a.fixups = append(a.fixups, func() {
			cp := *elem
			cp.Nullable = true
			*d = cp
		})
		return d

	case *types.Basic:
		return a.adaptBasic(t)

	case *types.Slice:
		d := &ir.Type{Category: ir.CategoryArray}
		a.memo[t] = d
		d.Elem = a.adapt(t.Elem())
		return d

	case *types.Array:
		d := &ir.Type{Category: ir.CategoryArray, Len: int(t.Len())}
		a.memo[t] = d
		d.Elem = a.adapt(t.Elem())
		return d

	case *types.Map:
		d := &ir.Type{Category: ir.CategoryCollection}
		a.memo[t] = d
		d.Key = a.adapt(t.Key())
		d.Elem = a.adapt(t.Elem())
		return d

	case *types.Named:
		return a.adaptNamed(t)

	default:
		// Channels, funcs, unions: nothing the synthesizer can build.
		d := &ir.Type{Category: ir.CategoryOpaque, Name: ir.QualifiedName{Name: types.TypeString(t, nil)}}
		a.memo[t] = d
		return d
	}
}

func (a *adapter) adaptBasic(t *types.Basic) *ir.Type {
	var d *ir.Type
	switch {
	case t.Info()&types.IsUnsigned != 0:
		d = ir.Unsigned(t.Name())
	case t.Info()&(types.IsBoolean|types.IsInteger|types.IsFloat|types.IsComplex|types.IsString) != 0:
		d = ir.Primitive(t.Name())
	default:
		d = &ir.Type{Category: ir.CategoryOpaque, Name: ir.QualifiedName{Name: t.Name()}}
	}
	a.memo[t] = d
	return d
}

func (a *adapter) adaptNamed(t *types.Named) *ir.Type {
	obj := t.Obj()
	d := &ir.Type{Name: qualifiedName(obj)}
	a.memo[t] = d

	if obj.Pkg() == nil {
		// error, comparable and friends
		d.Category = ir.CategoryOpaque
		return d
	}

	switch u := t.Underlying().(type) {
	case *types.Basic:
		if members := a.enumMembers(t); len(members) > 0 {
			d.Category = ir.CategoryEnum
			d.Members = members
			return d
		}
		// A defined type over a built-in constructs via conversion.
		d.Category = ir.CategoryClass
		d.Underlying = a.adaptBasic(u)
		if ctors := a.constructors(t); len(ctors) > 0 {
			d.Constructors = ctors
		}
		return d

	case *types.Struct:
		d.Constructors = a.constructors(t)
		primary := a.primaryConstructor(u)
		if len(primary.Params) == 0 && len(d.Constructors) == 0 {
			if instance, ok := a.instanceVar(t); ok {
				d.Category = ir.CategorySingleton
				d.Instance = instance
				d.Constructors = nil
				return d
			}
		}
		d.Category = ir.CategoryClass
		d.Primary = &primary
		return d

	case *types.Interface:
		d.Category = ir.CategoryOpaque
		return d

	case *types.Slice:
		// Defined collection types construct as their own composite,
		// e.g. Tags{} for "type Tags []string"; the synthesizer's
		// catalog resolves well-known names like json.RawMessage
		// before the category is consulted.
		d.Category = ir.CategoryArray
		d.Elem = a.adapt(u.Elem())
		return d

	case *types.Array:
		d.Category = ir.CategoryArray
		d.Len = int(u.Len())
		d.Elem = a.adapt(u.Elem())
		return d

	case *types.Map:
		d.Category = ir.CategoryCollection
		d.Key = a.adapt(u.Key())
		d.Elem = a.adapt(u.Elem())
		return d

	default:
		d.Category = ir.CategoryOpaque
		return d
	}
}

// enumMembers collects the exported constants of exactly this type
// from the defining package, in declaration order.
func (a *adapter) enumMembers(t *types.Named) []string {
	type member struct {
		name string
		pos  int
	}
	var members []member

	scope := t.Obj().Pkg().Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !c.Exported() || !types.Identical(c.Type(), t) {
			continue
		}
		members = append(members, member{name: c.Name(), pos: int(c.Pos())})
	}
	sort.Slice(members, func(i, j int) bool { return members[i].pos < members[j].pos })

	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.name
	}
	return out
}

// constructors collects the exported package-level New* functions
// returning exactly this type, in declaration order.
func (a *adapter) constructors(t *types.Named) []ir.Constructor {
	type ctor struct {
		fn  *types.Func
		pos int
	}
	var ctors []ctor

	scope := t.Obj().Pkg().Scope()
	for _, name := range scope.Names() {
		fn, ok := scope.Lookup(name).(*types.Func)
		if !ok || !fn.Exported() || !strings.HasPrefix(fn.Name(), "New") {
			continue
		}
		sig := fn.Type().(*types.Signature)
		if sig.Recv() != nil || sig.Variadic() || sig.Results().Len() != 1 {
			continue
		}
		if !types.Identical(sig.Results().At(0).Type(), t) {
			continue
		}
		ctors = append(ctors, ctor{fn: fn, pos: int(fn.Pos())})
	}
	sort.Slice(ctors, func(i, j int) bool { return ctors[i].pos < ctors[j].pos })

	out := make([]ir.Constructor, 0, len(ctors))
	for _, c := range ctors {
		sig := c.fn.Type().(*types.Signature)
		params := make([]ir.Param, 0, sig.Params().Len())
		for i := 0; i < sig.Params().Len(); i++ {
			p := sig.Params().At(i)
			params = append(params, ir.Param{Name: p.Name(), Type: a.adapt(p.Type())})
		}
		out = append(out, ir.Constructor{Name: qualifiedNameOf(c.fn), Params: params})
	}
	return out
}

// primaryConstructor builds the composite-literal constructor over the
// struct's exported fields.
func (a *adapter) primaryConstructor(s *types.Struct) ir.Constructor {
	var params []ir.Param
	for i := 0; i < s.NumFields(); i++ {
		f := s.Field(i)
		if !f.Exported() {
			continue
		}
		params = append(params, ir.Param{Name: f.Name(), Type: a.adapt(f.Type())})
	}
	return ir.Constructor{Params: params}
}

// instanceVar looks for a canonical package-level instance: an
// exported var of exactly this type in the defining package. Used to
// classify singletons, which expose no other way to build a value.
func (a *adapter) instanceVar(t *types.Named) (ir.QualifiedName, bool) {
	scope := t.Obj().Pkg().Scope()
	for _, name := range scope.Names() {
		v, ok := scope.Lookup(name).(*types.Var)
		if !ok || !v.Exported() || !types.Identical(v.Type(), t) {
			continue
		}
		return ir.QualifiedName{Package: t.Obj().Pkg().Path(), Name: v.Name()}, true
	}
	return ir.QualifiedName{}, false
}

func qualifiedNameOf(fn *types.Func) ir.QualifiedName {
	pkg := ""
	if fn.Pkg() != nil {
		pkg = fn.Pkg().Path()
	}
	return ir.QualifiedName{Package: pkg, Name: fn.Name()}
}
