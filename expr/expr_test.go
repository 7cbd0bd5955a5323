package expr

import (
	"testing"

	"defaultgen/ir"
)

func TestEqualStructural(t *testing.T) {
	a := &Call{
		Fn:   ir.QualifiedName{Package: "p", Name: "NewUser"},
		Args: []Expr{&Literal{Text: "0"}, &Literal{Text: `""`}},
	}
	b := &Call{
		Fn:   ir.QualifiedName{Package: "p", Name: "NewUser"},
		Args: []Expr{&Literal{Text: "0"}, &Literal{Text: `""`}},
	}
	if !Equal(a, b) {
		t.Error("structurally identical calls should compare equal")
	}

	c := &Call{Fn: a.Fn, Args: []Expr{&Literal{Text: "1"}, &Literal{Text: `""`}}}
	if Equal(a, c) {
		t.Error("differing arguments should not compare equal")
	}
}

func TestEqualAcrossKinds(t *testing.T) {
	if Equal(&Nil{}, &Literal{Text: "nil"}) {
		t.Error("Nil and a nil literal are distinct nodes")
	}
	if !Equal(NilExpr(), &Nil{}) {
		t.Error("NilExpr should equal a bare Nil node")
	}
}

func TestEmpty(t *testing.T) {
	lit, ok := Empty().(*Literal)
	if !ok || lit.Text != "" {
		t.Errorf("Empty() = %#v, want empty literal", Empty())
	}
}
