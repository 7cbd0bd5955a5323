package ir

import "testing"

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryOpaque, "Opaque"},
		{CategoryPrimitive, "Primitive"},
		{CategoryUnsigned, "Unsigned"},
		{CategoryArray, "Array"},
		{CategoryCollection, "Collection"},
		{CategoryEnum, "Enum"},
		{CategorySingleton, "Singleton"},
		{CategoryClass, "Class"},
		{Category(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestQualifiedNameString(t *testing.T) {
	q := QualifiedName{Package: "example.com/app/api", Name: "User"}
	if got := q.String(); got != "example.com/app/api.User" {
		t.Errorf("String() = %q", got)
	}
	builtin := QualifiedName{Name: "int"}
	if got := builtin.String(); got != "int" {
		t.Errorf("String() = %q, want %q", got, "int")
	}
}

func TestQualifiedNameIsZero(t *testing.T) {
	if !(QualifiedName{}).IsZero() {
		t.Error("zero QualifiedName should report IsZero")
	}
	if (QualifiedName{Name: "int"}).IsZero() {
		t.Error("named QualifiedName should not report IsZero")
	}
}

func TestPtrDoesNotMutate(t *testing.T) {
	base := Primitive("int")
	p := Ptr(base)
	if !p.Nullable {
		t.Error("Ptr result should be nullable")
	}
	if base.Nullable {
		t.Error("Ptr must not mutate its argument")
	}
	if p.Name != base.Name || p.Category != base.Category {
		t.Error("Ptr should preserve the element's payload")
	}
}

func TestConstructorIsPrimary(t *testing.T) {
	primary := Constructor{Params: []Param{{Name: "X", Type: Primitive("int")}}}
	if !primary.IsPrimary() {
		t.Error("unnamed constructor should be primary")
	}
	named := Constructor{Name: QualifiedName{Package: "p", Name: "NewFoo"}}
	if named.IsPrimary() {
		t.Error("named constructor should not be primary")
	}
}

func TestHelpers(t *testing.T) {
	s := Slice(Primitive("string"))
	if s.Category != CategoryArray || s.Len != 0 || s.Elem.Name.Name != "string" {
		t.Errorf("Slice built %+v", s)
	}

	a := ArrayN(Primitive("int"), 4)
	if a.Category != CategoryArray || a.Len != 4 {
		t.Errorf("ArrayN built %+v", a)
	}

	m := Map(Primitive("string"), Primitive("int"))
	if m.Category != CategoryCollection || m.Key == nil || m.Elem == nil {
		t.Errorf("Map built %+v", m)
	}

	e := Enum("p", "Color", "Red", "Green")
	if e.Category != CategoryEnum || len(e.Members) != 2 {
		t.Errorf("Enum built %+v", e)
	}

	g := Singleton("p", "Registry", "Default")
	if g.Category != CategorySingleton || g.Instance.Name != "Default" {
		t.Errorf("Singleton built %+v", g)
	}

	c := Class("p", "User", Param{Name: "Name", Type: Primitive("string")})
	if c.Category != CategoryClass || c.Primary == nil || len(c.Primary.Params) != 1 {
		t.Errorf("Class built %+v", c)
	}
}
