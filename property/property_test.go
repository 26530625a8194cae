// Copyright 2026, Square, Inc.

package property_test

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/square/shadergraph/id"
	"github.com/square/shadergraph/property"
	"github.com/square/shadergraph/value"
)

func newRegistry() *property.Registry {
	return property.NewRegistry(id.NewGenerator(3))
}

func TestAddAssignsIdAndReferenceName(t *testing.T) {
	r := newRegistry()
	p, err := r.Create(value.Texture2D, "Main Tex", value.Value{Texture: "bricks"})
	if err != nil {
		t.Fatal(err)
	}
	if p.ID == "" {
		t.Errorf("id not assigned")
	}
	if p.ReferenceName != "_MainTex" {
		t.Errorf("reference name = %s, expected _MainTex", p.ReferenceName)
	}

	// Same display name gets a unique reference name.
	p2, err := r.Create(value.Texture2D, "Main Tex", value.Value{})
	if err != nil {
		t.Fatal(err)
	}
	if p2.ReferenceName != "_MainTex_1" {
		t.Errorf("reference name = %s, expected _MainTex_1", p2.ReferenceName)
	}

	got, ok := r.Property(p.ID)
	if !ok {
		t.Fatalf("property %s not found", p.ID)
	}
	if diff := deep.Equal(got, p); diff != nil {
		t.Error(diff)
	}
}

func TestAddRejectsDuplicates(t *testing.T) {
	r := newRegistry()
	if _, err := r.Add(property.Property{ID: "a", Kind: value.Scalar, ReferenceName: "_Foo"}); err != nil {
		t.Fatal(err)
	}

	_, err := r.Add(property.Property{ID: "a", Kind: value.Scalar, ReferenceName: "_Bar"})
	if _, ok := err.(property.DuplicateIdError); !ok {
		t.Errorf("err = %v (%T), expected DuplicateIdError", err, err)
	}

	_, err = r.Add(property.Property{ID: "b", Kind: value.Scalar, ReferenceName: "_Foo"})
	switch err.(type) {
	case property.DuplicateReferenceNameError:
		t.Log(err)
	default:
		t.Errorf("err = %v (%T), expected DuplicateReferenceNameError", err, err)
	}

	if r.Len() != 1 {
		t.Errorf("registry has %d properties, expected 1", r.Len())
	}
}

func TestAddRejectsInvalidReferenceName(t *testing.T) {
	r := newRegistry()
	for _, name := range []string{"1abc", "has space", "float", "__x", "a-b"} {
		_, err := r.Add(property.Property{Kind: value.Scalar, ReferenceName: name})
		if _, ok := err.(property.InvalidReferenceNameError); !ok {
			t.Errorf("%q: err = %v, expected InvalidReferenceNameError", name, err)
		}
	}
	_, err := r.Add(property.Property{Kind: value.Dynamic, ReferenceName: "_Dyn"})
	if err == nil {
		t.Errorf("added Dynamic property, expected error")
	}
}

func TestRemoveRetiresId(t *testing.T) {
	r := newRegistry()
	p, err := r.Add(property.Property{ID: "prop1", Kind: value.Color, ReferenceName: "_Tint"})
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Remove(p.ID); err != nil {
		t.Fatal(err)
	}
	if _, ok := r.Property(p.ID); ok {
		t.Errorf("property still present after Remove")
	}
	if _, ok := r.ByReferenceName("_Tint"); ok {
		t.Errorf("reference name still present after Remove")
	}

	_, err = r.Add(property.Property{ID: "prop1", Kind: value.Color, ReferenceName: "_Tint"})
	if _, ok := err.(property.RetiredIdError); !ok {
		t.Errorf("err = %v, expected RetiredIdError", err)
	}

	if err := r.Remove("nope"); err == nil {
		t.Errorf("no error removing unknown property")
	}
}

func TestRenameAndOrder(t *testing.T) {
	r := newRegistry()
	a, _ := r.Add(property.Property{ID: "a", Kind: value.Scalar, ReferenceName: "_A"})
	b, _ := r.Add(property.Property{ID: "b", Kind: value.Boolean, ReferenceName: "_B"})

	if err := r.Rename(a.ID, "_B"); err == nil {
		t.Errorf("renamed onto an existing reference name")
	}
	if err := r.Rename(a.ID, "_Alpha"); err != nil {
		t.Fatal(err)
	}
	if _, ok := r.ByReferenceName("_A"); ok {
		t.Errorf("old reference name still resolves")
	}

	var refs []string
	for _, p := range r.All() {
		refs = append(refs, p.ReferenceName)
	}
	if diff := deep.Equal(refs, []string{"_Alpha", b.ReferenceName}); diff != nil {
		t.Error(diff)
	}
}

func TestSanitizeReferenceName(t *testing.T) {
	tests := map[string]string{
		"Main Tex":  "_MainTex",
		"tint-2":    "_tint2",
		"":          "_Property",
		"_Already":  "_Already",
		"!!!":       "_Property",
		"Bump Map!": "_BumpMap",
	}
	for in, expect := range tests {
		if got := property.SanitizeReferenceName(in); got != expect {
			t.Errorf("SanitizeReferenceName(%q) = %q, expected %q", in, got, expect)
		}
	}
}
