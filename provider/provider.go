// Package provider discovers annotated declarations and adapts
// go/types information into the descriptor model.
//
// Two directives drive discovery, written as line comments on type
// declarations:
//
//	//defaultgen:factory   - the dispatch contract: an interface with a
//	                         single method taking a reflect.Type token
//	                         and returning a marker interface value
//	//defaultgen:register  - a type to include in the generated
//	                         dispatch table
//
// Invalid or unresolvable declarations are filtered out with a warning
// before they reach the synthesizer.
package provider

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"defaultgen/dispatch"
	"defaultgen/ir"
)

const (
	directiveFactory  = "defaultgen:factory"
	directiveRegister = "defaultgen:register"
)

// Options configures discovery.
type Options struct {
	// Patterns are package patterns with go command semantics
	// (".", "./...", import paths).
	Patterns []string

	// Dir is the working directory for package loading. Empty means
	// the current directory.
	Dir string
}

// Result holds one run's discovered inputs.
type Result struct {
	// Factory is the discovered dispatch contract, nil when no factory
	// directive was found. When several are declared, only the first
	// in discovery order is used.
	Factory *dispatch.Factory

	// Registry lists the registered types in discovery order.
	Registry []dispatch.RegistryEntry

	// Warnings are the non-fatal issues hit while discovering and
	// adapting.
	Warnings []ir.Warning
}

// Load scans the matched packages for directives and adapts every
// discovered declaration into a descriptor.
func Load(ctx context.Context, opts Options) (*Result, error) {
	if len(opts.Patterns) == 0 {
		return nil, fmt.Errorf("provider: no package patterns specified")
	}

	cfg := &packages.Config{
		Context: ctx,
		Dir:     opts.Dir,
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
			packages.NeedImports | packages.NeedTypes | packages.NeedSyntax |
			packages.NeedTypesInfo,
	}

	pkgs, err := packages.Load(cfg, opts.Patterns...)
	if err != nil {
		return nil, fmt.Errorf("provider: load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("provider: no packages found matching %v", opts.Patterns)
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("provider: package %s has errors: %v", pkg.PkgPath, pkg.Errors[0])
		}
	}

	res := &Result{}
	ad := newAdapter()

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			for _, decl := range file.Decls {
				gd, ok := decl.(*ast.GenDecl)
				if !ok || gd.Tok != token.TYPE {
					continue
				}
				for _, spec := range gd.Specs {
					ts, ok := spec.(*ast.TypeSpec)
					if !ok {
						continue
					}
					switch directiveFor(gd, ts) {
					case directiveFactory:
						res.addFactory(pkg, ts)
					case directiveRegister:
						res.addEntry(pkg, ts, ad)
					}
				}
			}
		}
	}

	ad.resolve()
	res.Warnings = append(res.Warnings, ad.warnings...)
	return res, nil
}

// directiveFor returns the directive attached to a type spec, checking
// the spec's own doc before the enclosing decl's.
func directiveFor(gd *ast.GenDecl, ts *ast.TypeSpec) string {
	for _, doc := range []*ast.CommentGroup{ts.Doc, gd.Doc} {
		if doc == nil {
			continue
		}
		for _, c := range doc.List {
			text := strings.TrimPrefix(c.Text, "//")
			if text == directiveFactory || text == directiveRegister {
				return text
			}
		}
	}
	return ""
}

func (r *Result) addFactory(pkg *packages.Package, ts *ast.TypeSpec) {
	if r.Factory != nil {
		// Only the first discovered factory is used.
		r.warn("extra_factory", "ignoring additional defaultgen:factory declaration "+ts.Name.Name, ts.Name.Name)
		return
	}
	f, err := factoryOf(pkg, ts)
	if err != nil {
		r.warn("invalid_factory", err.Error(), ts.Name.Name)
		return
	}
	r.Factory = f
}

func (r *Result) addEntry(pkg *packages.Package, ts *ast.TypeSpec, ad *adapter) {
	obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
	if !ok {
		r.warn("invalid_declaration", "cannot resolve registered type "+ts.Name.Name, ts.Name.Name)
		return
	}
	r.Registry = append(r.Registry, dispatch.RegistryEntry{Type: ad.adapt(obj.Type())})
}

func (r *Result) warn(code, msg, name string) {
	r.Warnings = append(r.Warnings, ir.Warning{Code: code, Message: msg, TypeName: name})
}

// factoryOf validates the factory interface shape and extracts the
// dispatch method.
func factoryOf(pkg *packages.Package, ts *ast.TypeSpec) (*dispatch.Factory, error) {
	obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("cannot resolve factory type %s", ts.Name.Name)
	}
	iface, ok := obj.Type().Underlying().(*types.Interface)
	if !ok {
		return nil, fmt.Errorf("factory %s must be an interface", ts.Name.Name)
	}
	if iface.NumExplicitMethods() != 1 {
		return nil, fmt.Errorf("factory %s must declare exactly one method", ts.Name.Name)
	}

	m := iface.ExplicitMethod(0)
	sig := m.Type().(*types.Signature)
	if sig.Params().Len() != 1 || !isReflectType(sig.Params().At(0).Type()) {
		return nil, fmt.Errorf("factory method %s.%s must take a single reflect.Type token", ts.Name.Name, m.Name())
	}
	if sig.Results().Len() != 1 {
		return nil, fmt.Errorf("factory method %s.%s must return a single value", ts.Name.Name, m.Name())
	}
	bound, ok := sig.Results().At(0).Type().(*types.Named)
	if !ok || !types.IsInterface(bound) {
		return nil, fmt.Errorf("factory method %s.%s must return a marker interface", ts.Name.Name, m.Name())
	}

	tokenParam := sig.Params().At(0).Name()
	if tokenParam == "" || tokenParam == "_" {
		tokenParam = "typ"
	}

	return &dispatch.Factory{
		Name:    ir.QualifiedName{Package: pkg.PkgPath, Name: ts.Name.Name},
		Package: packageInfo(pkg),
		Method: dispatch.Method{
			Name:       m.Name(),
			TokenParam: tokenParam,
			Bound:      qualifiedName(bound.Obj()),
		},
	}, nil
}

func isReflectType(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == "reflect" && obj.Name() == "Type"
}

func qualifiedName(obj *types.TypeName) ir.QualifiedName {
	pkg := ""
	if obj.Pkg() != nil {
		pkg = obj.Pkg().Path()
	}
	return ir.QualifiedName{Package: pkg, Name: obj.Name()}
}

func packageInfo(pkg *packages.Package) ir.PackageInfo {
	info := ir.PackageInfo{Path: pkg.PkgPath, Name: pkg.Name}
	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}
	return info
}
