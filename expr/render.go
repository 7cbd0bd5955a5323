package expr

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"defaultgen/ir"
)

// Imports collects the import paths an expression tree references and
// hands out qualified identifier spellings. Names from the local
// package render unqualified.
type Imports struct {
	local   string
	aliases map[string]string // import path -> alias
	used    map[string]bool   // alias -> taken
}

// NewImports returns a collector for a file in the given package.
func NewImports(localPkg string) *Imports {
	return &Imports{
		local:   localPkg,
		aliases: make(map[string]string),
		used:    make(map[string]bool),
	}
}

// Qualify returns the identifier spelling for a qualified name,
// recording the import if one is needed.
func (im *Imports) Qualify(n ir.QualifiedName) string {
	if n.Package == "" || n.Package == im.local {
		return n.Name
	}
	return im.alias(n.Package) + "." + n.Name
}

// Add records an import without referencing a name, e.g. "reflect"
// for the dispatch token.
func (im *Imports) Add(path string) {
	im.alias(path)
}

// Paths returns the collected import paths in sorted order, each with
// its alias (empty when the alias matches the path base).
func (im *Imports) Paths() []Import {
	paths := make([]string, 0, len(im.aliases))
	for p := range im.aliases {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	out := make([]Import, 0, len(paths))
	for _, p := range paths {
		alias := im.aliases[p]
		if alias == pathBase(p) {
			alias = ""
		}
		out = append(out, Import{Path: p, Alias: alias})
	}
	return out
}

// Import is one import clause of a generated file.
type Import struct {
	Path  string
	Alias string
}

func (im *Imports) alias(path string) string {
	if a, ok := im.aliases[path]; ok {
		return a
	}
	base := pathBase(path)
	a := base
	for i := 2; im.used[a]; i++ {
		a = base + strconv.Itoa(i)
	}
	im.aliases[path] = a
	im.used[a] = true
	return a
}

// pathBase returns the presumed package name of an import path,
// skipping semantic-version path elements like "v2".
func pathBase(path string) string {
	parts := strings.Split(path, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		p := parts[i]
		if len(p) > 1 && p[0] == 'v' && isDigits(p[1:]) {
			continue
		}
		return p
	}
	return path
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Render produces the Go source text for an expression, registering
// any imports it needs.
func Render(e Expr, im *Imports) string {
	switch e := e.(type) {
	case *Literal:
		return e.Text
	case *Reference:
		return im.Qualify(e.To)
	case *Call:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = Render(a, im)
		}
		return im.Qualify(e.Fn) + "(" + strings.Join(args, ", ") + ")"
	case *Composite:
		return renderComposite(e, im)
	case *Addr:
		return "&" + renderComposite(e.X, im)
	case *Nil:
		return "nil"
	default:
		panic(fmt.Sprintf("expr: unknown expression node %T", e))
	}
}

func renderComposite(c *Composite, im *Imports) string {
	var b strings.Builder
	b.WriteString(TypeSpelling(c.Of, im))
	b.WriteString("{")
	for i, f := range c.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(Render(f.Value, im))
	}
	b.WriteString("}")
	return b.String()
}

// TypeSpelling returns the Go spelling of a descriptor's type in the
// collector's package, registering imports for qualified names.
func TypeSpelling(t *ir.Type, im *Imports) string {
	var b strings.Builder
	if t.Nullable {
		b.WriteString("*")
	}
	switch {
	case !t.Name.IsZero():
		b.WriteString(im.Qualify(t.Name))
	case t.Category == ir.CategoryArray:
		if t.Len > 0 {
			b.WriteString("[" + strconv.Itoa(t.Len) + "]")
		} else {
			b.WriteString("[]")
		}
		b.WriteString(TypeSpelling(t.Elem, im))
	case t.Category == ir.CategoryCollection && t.Key != nil:
		b.WriteString("map[")
		b.WriteString(TypeSpelling(t.Key, im))
		b.WriteString("]")
		b.WriteString(TypeSpelling(t.Elem, im))
	default:
		b.WriteString(im.Qualify(t.Name))
	}
	return b.String()
}
