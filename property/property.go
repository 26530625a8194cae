// Copyright 2026, Square, Inc.

// Package property provides graph-level material properties and the registry
// that owns them. Properties are what the host exposes to users: each one is
// bound into generated source by its reference name.
package property

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/square/shadergraph/id"
	"github.com/square/shadergraph/value"
)

// Property is a declared external parameter of a graph.
type Property struct {
	ID            string      `yaml:"id" json:"id"`
	Kind          value.Kind  `yaml:"kind" json:"kind"`
	DisplayName   string      `yaml:"display_name" json:"displayName"`
	ReferenceName string      `yaml:"reference_name" json:"referenceName"`
	Default       value.Value `yaml:"default" json:"default"`

	// Modifiable is false for properties declared by nodes rather than by
	// the user; the host shows them but does not let users edit them.
	Modifiable bool `yaml:"-" json:"modifiable"`
}

// Lookup finds properties by id. Nodes receive a Lookup rather than the
// registry so they cannot mutate it.
type Lookup interface {
	Property(id string) (Property, bool)
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var reserved = map[string]bool{
	"bool": true, "break": true, "const": true, "continue": true, "discard": true,
	"do": true, "else": true, "false": true, "float": true, "for": true,
	"half": true, "if": true, "in": true, "inout": true, "int": true,
	"out": true, "return": true, "sampler": true, "struct": true, "switch": true,
	"true": true, "uint": true, "uniform": true, "void": true, "while": true,
}

// ValidReferenceName returns nil if name can be used as a reference name in
// generated source.
func ValidReferenceName(name string) error {
	if !identRe.MatchString(name) {
		return InvalidReferenceNameError{Name: name, Reason: "not an identifier"}
	}
	if reserved[name] {
		return InvalidReferenceNameError{Name: name, Reason: "reserved word"}
	}
	if strings.HasPrefix(name, "__") {
		return InvalidReferenceNameError{Name: name, Reason: "leading double underscore is reserved"}
	}
	return nil
}

// SanitizeReferenceName derives a reference name from a display name:
// non-identifier characters are dropped and the result is prefixed with an
// underscore, e.g. "Main Tex" -> "_MainTex".
func SanitizeReferenceName(displayName string) string {
	var b strings.Builder
	b.WriteByte('_')
	for _, r := range displayName {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "_" {
		return "_Property"
	}
	for strings.HasPrefix(s, "__") {
		s = s[1:]
	}
	return s
}

// Registry is the ordered list of properties declared by a graph. It is not
// safe for concurrent use; like the graph that owns it, it belongs to one
// goroutine at a time.
type Registry struct {
	idgen   id.Generator
	order   []string             // property ids in registration order
	byId    map[string]*Property // id -> property
	byRef   map[string]string    // reference name -> id
	retired map[string]struct{}  // removed ids, never reused
}

// NewRegistry creates an empty registry that assigns ids with idgen.
func NewRegistry(idgen id.Generator) *Registry {
	return &Registry{
		idgen:   idgen,
		order:   []string{},
		byId:    map[string]*Property{},
		byRef:   map[string]string{},
		retired: map[string]struct{}{},
	}
}

// Add registers p. If p.ID is empty a new id is assigned; if p.ReferenceName
// is empty one is derived from the display name and made unique. The stored
// property is returned.
func (r *Registry) Add(p Property) (Property, error) {
	switch p.Kind {
	case value.Scalar, value.Vector2, value.Vector3, value.Vector4, value.Color,
		value.Boolean, value.Texture2D, value.Texture2DArray, value.Texture3D, value.Cubemap:
	default:
		return Property{}, fmt.Errorf("property %q: invalid kind %s", p.DisplayName, p.Kind)
	}

	if p.ID == "" {
		uid, err := r.idgen.UID()
		if err != nil {
			return Property{}, err
		}
		p.ID = uid
	} else {
		if _, ok := r.byId[p.ID]; ok {
			return Property{}, DuplicateIdError{Id: p.ID}
		}
		if _, ok := r.retired[p.ID]; ok {
			return Property{}, RetiredIdError{Id: p.ID}
		}
		r.idgen.Reserve(p.ID)
	}

	if p.ReferenceName == "" {
		p.ReferenceName = r.uniqueReferenceName(SanitizeReferenceName(p.DisplayName))
	}
	if err := ValidReferenceName(p.ReferenceName); err != nil {
		return Property{}, err
	}
	if other, ok := r.byRef[p.ReferenceName]; ok {
		return Property{}, DuplicateReferenceNameError{Name: p.ReferenceName, Id: p.ID, ExistingId: other}
	}
	if p.DisplayName == "" {
		p.DisplayName = strings.TrimPrefix(p.ReferenceName, "_")
	}

	stored := p
	r.order = append(r.order, p.ID)
	r.byId[p.ID] = &stored
	r.byRef[p.ReferenceName] = p.ID
	return stored, nil
}

// Create is a convenience for Add with a generated id and reference name.
func (r *Registry) Create(kind value.Kind, displayName string, def value.Value) (Property, error) {
	return r.Add(Property{
		Kind:        kind,
		DisplayName: displayName,
		Default:     def,
		Modifiable:  true,
	})
}

// Remove deletes the property with the given id. Its id is retired and will
// not be assigned again. Nodes still bound to it report an error.
func (r *Registry) Remove(id string) error {
	p, ok := r.byId[id]
	if !ok {
		return PropertyNotFoundError{Id: id}
	}
	delete(r.byId, id)
	delete(r.byRef, p.ReferenceName)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.retired[id] = struct{}{}
	return nil
}

// Rename changes the reference name of a property.
func (r *Registry) Rename(id, referenceName string) error {
	p, ok := r.byId[id]
	if !ok {
		return PropertyNotFoundError{Id: id}
	}
	if p.ReferenceName == referenceName {
		return nil
	}
	if err := ValidReferenceName(referenceName); err != nil {
		return err
	}
	if other, ok := r.byRef[referenceName]; ok {
		return DuplicateReferenceNameError{Name: referenceName, Id: id, ExistingId: other}
	}
	delete(r.byRef, p.ReferenceName)
	p.ReferenceName = referenceName
	r.byRef[referenceName] = id
	return nil
}

// Property implements Lookup.
func (r *Registry) Property(id string) (Property, bool) {
	p, ok := r.byId[id]
	if !ok {
		return Property{}, false
	}
	return *p, true
}

// ByReferenceName finds a property by reference name.
func (r *Registry) ByReferenceName(name string) (Property, bool) {
	id, ok := r.byRef[name]
	if !ok {
		return Property{}, false
	}
	return r.Property(id)
}

// All returns all properties in registration order.
func (r *Registry) All() []Property {
	all := make([]Property, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, *r.byId[id])
	}
	return all
}

// Len returns the number of registered properties.
func (r *Registry) Len() int {
	return len(r.order)
}

func (r *Registry) uniqueReferenceName(base string) string {
	name := base
	for i := 1; ; i++ {
		if _, taken := r.byRef[name]; !taken && !reserved[name] {
			return name
		}
		name = fmt.Sprintf("%s_%d", base, i)
	}
}
