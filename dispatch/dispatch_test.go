package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"defaultgen/expr"
	"defaultgen/ir"
	"defaultgen/synth"
)

const pkg = "example.com/app/api"

func testFactory() *Factory {
	return &Factory{
		Name:    ir.QualifiedName{Package: pkg, Name: "ModelFactory"},
		Package: ir.PackageInfo{Path: pkg, Name: "api"},
		Method: Method{
			Name:       "New",
			TokenParam: "typ",
			Bound:      ir.QualifiedName{Package: pkg, Name: "Model"},
		},
	}
}

func TestGenerateBranchesInOrder(t *testing.T) {
	user := ir.Class(pkg, "User", ir.Param{Name: "Name", Type: ir.Primitive("string")})
	color := ir.Enum(pkg, "Color", "ColorRed")
	foo := ir.Class(pkg, "Foo")

	u, err := Generate(testFactory(), []RegistryEntry{{user}, {color}, {foo}}, synth.New(nil))
	require.NoError(t, err)

	require.Len(t, u.Branches, 3)
	assert.Equal(t, "User", u.Branches[0].Case.Name.Name)
	assert.Equal(t, "Color", u.Branches[1].Case.Name.Name)
	assert.Equal(t, "Foo", u.Branches[2].Case.Name.Name)

	im := expr.NewImports(pkg)
	assert.Equal(t, `User{Name: ""}`, expr.Render(u.Branches[0].Value, im))
	assert.Equal(t, "ColorRed", expr.Render(u.Branches[1].Value, im))
	assert.Equal(t, "Foo{}", expr.Render(u.Branches[2].Value, im))
}

func TestGenerateUnitShape(t *testing.T) {
	u, err := Generate(testFactory(), nil, synth.New(nil))
	require.NoError(t, err)

	assert.Equal(t, "ModelFactoryImpl", u.TypeName)
	assert.Equal(t, "ModelFactory", u.Implements.Name)
	assert.Equal(t, "New", u.Method.Name)
	assert.Equal(t, "typ", u.Method.TokenParam)
	assert.Equal(t, pkg, u.Package.Path)
	assert.Empty(t, u.Branches, "an empty registry is a valid, default-only unit")
}

func TestGenerateKeepsDuplicates(t *testing.T) {
	foo := ir.Class(pkg, "Foo")
	u, err := Generate(testFactory(), []RegistryEntry{{foo}, {foo}}, synth.New(nil))
	require.NoError(t, err)
	assert.Len(t, u.Branches, 2, "duplicates are not collapsed")
}

func TestGenerateErrorNamesEntry(t *testing.T) {
	bad := ir.Enum(pkg, "Void")
	_, err := Generate(testFactory(), []RegistryEntry{{bad}}, synth.New(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Void")

	var unsupported *synth.UnsupportedTypeError
	assert.ErrorAs(t, err, &unsupported)
}

func TestGenerateNilFactory(t *testing.T) {
	_, err := Generate(nil, nil, synth.New(nil))
	assert.Error(t, err)
}

func TestGenerateCollectsWarnings(t *testing.T) {
	bare := &ir.Type{Name: ir.QualifiedName{Package: pkg, Name: "Husk"}, Category: ir.CategoryClass}
	u, err := Generate(testFactory(), []RegistryEntry{{bare}}, synth.New(nil))
	require.NoError(t, err)

	require.Len(t, u.Warnings, 1)
	assert.Equal(t, "missing_constructor", u.Warnings[0].Code)
}
