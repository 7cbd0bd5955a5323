// Package emit renders a dispatch unit into a Go source file and
// hands it to an output sink. Rendering is the only place expression
// trees become text.
package emit

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"strings"
	"unicode"

	"defaultgen/dispatch"
	"defaultgen/expr"
	"defaultgen/ir"
	"defaultgen/sink"
)

const header = "// Code generated by defaultgen. DO NOT EDIT.\n\n"

// FileName returns the generated file's name for a unit, derived from
// the factory interface name: "ModelFactory" -> "model_factory_defaultgen.go".
func FileName(u *dispatch.Unit) string {
	return toSnake(u.Implements.Name) + "_defaultgen.go"
}

// Render produces the generated file's contents.
//
// The output is gofmt-formatted when well-formed. A unit carrying a
// degraded (empty) expression renders to source that does not parse;
// in that case Render returns the unformatted bytes with a warning so
// the failure surfaces at downstream compilation instead of aborting
// the run.
func Render(u *dispatch.Unit) ([]byte, []ir.Warning, error) {
	im := expr.NewImports(u.Package.Path)
	im.Add("fmt")
	im.Add("reflect")

	var body bytes.Buffer
	fmt.Fprintf(&body, "// %s implements %s, returning a default-populated\n", u.TypeName, u.Implements.Name)
	fmt.Fprintf(&body, "// instance of every registered type.\n")
	fmt.Fprintf(&body, "type %s struct{}\n\n", u.TypeName)

	tok := u.Method.TokenParam
	if tok == "" {
		tok = "typ"
	}
	fmt.Fprintf(&body, "func (%s) %s(%s reflect.Type) %s {\n", u.TypeName, u.Method.Name, tok, im.Qualify(u.Method.Bound))
	fmt.Fprintf(&body, "\tswitch %s {\n", tok)
	for _, b := range u.Branches {
		fmt.Fprintf(&body, "\tcase %s:\n", tokenExpr(b.Case, im))
		fmt.Fprintf(&body, "\t\treturn %s\n", expr.Render(b.Value, im))
	}
	fmt.Fprintf(&body, "\tdefault:\n")
	fmt.Fprintf(&body, "\t\tpanic(fmt.Sprintf(%q, %s))\n",
		"defaultgen: no default instance registered for %v: every type implementing "+
			u.Method.Bound.Name+" must carry a //defaultgen:register directive", tok)
	fmt.Fprintf(&body, "\t}\n}\n")

	var out bytes.Buffer
	out.WriteString(header)
	fmt.Fprintf(&out, "package %s\n\n", u.Package.Name)
	writeImports(&out, im)
	out.Write(body.Bytes())

	formatted, err := format.Source(out.Bytes())
	if err != nil {
		w := ir.Warning{
			Code:    "unformatted_output",
			Message: fmt.Sprintf("generated source for %s does not format cleanly and will not compile: %v", u.TypeName, err),
		}
		return out.Bytes(), []ir.Warning{w}, nil
	}
	return formatted, nil, nil
}

// Write renders the unit and writes it through the sink under the
// unit's canonical file name. The write is a single scoped operation;
// there is no partial-write recovery beyond the sink's own atomicity.
func Write(ctx context.Context, u *dispatch.Unit, out sink.OutputSink) (string, []ir.Warning, error) {
	content, warnings, err := Render(u)
	if err != nil {
		return "", warnings, err
	}
	path := FileName(u)
	if err := out.WriteFile(ctx, path, content); err != nil {
		return "", warnings, fmt.Errorf("emit: write %s: %w", path, err)
	}
	return path, warnings, nil
}

// tokenExpr spells the runtime type token for a branch case. Struct
// types use the cheap composite spelling; everything else goes through
// the pointer-Elem form, which is valid for any named type.
func tokenExpr(t *ir.Type, im *expr.Imports) string {
	spelling := expr.TypeSpelling(t, im)
	if t.Category == ir.CategoryClass && t.Primary != nil && !t.Nullable {
		return "reflect.TypeOf(" + spelling + "{})"
	}
	return "reflect.TypeOf((*" + spelling + ")(nil)).Elem()"
}

func writeImports(out *bytes.Buffer, im *expr.Imports) {
	paths := im.Paths()
	if len(paths) == 0 {
		return
	}
	out.WriteString("import (\n")
	for _, p := range paths {
		if p.Alias != "" {
			fmt.Fprintf(out, "\t%s %q\n", p.Alias, p.Path)
		} else {
			fmt.Fprintf(out, "\t%q\n", p.Path)
		}
	}
	out.WriteString(")\n\n")
}

// toSnake lowercases a CamelCase name with underscore separators. A
// run of capitals counts as one word, so HTTPFactory becomes
// http_factory.
func toSnake(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		startsWord := i > 0 && !unicode.IsUpper(runes[i-1])
		endsRun := i > 0 && i+1 < len(runes) && unicode.IsUpper(runes[i-1]) && unicode.IsLower(runes[i+1])
		if startsWord || endsRun {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
