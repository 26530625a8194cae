// Copyright 2026, Square, Inc.

// Package value provides the closed set of value kinds carried by slots and
// properties, their literals, and the coercions between them.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the concrete type of a slot or property. The set is closed: every
// switch on Kind in this module is exhaustive, so adding a kind means visiting
// each of them.
type Kind byte

const (
	Unknown Kind = iota

	// Vector family, in order of width.
	Scalar
	Vector2
	Vector3
	Vector4
	Color

	Boolean

	// Texture family.
	Texture2D
	Texture2DArray
	Texture3D
	Cubemap

	// Dynamic is only valid on slots. It resolves to a concrete vector kind at
	// generation time.
	Dynamic
)

var KindName = map[Kind]string{
	Unknown:        "Unknown",
	Scalar:         "Scalar",
	Vector2:        "Vector2",
	Vector3:        "Vector3",
	Vector4:        "Vector4",
	Color:          "Color",
	Boolean:        "Boolean",
	Texture2D:      "Texture2D",
	Texture2DArray: "Texture2DArray",
	Texture3D:      "Texture3D",
	Cubemap:        "Cubemap",
	Dynamic:        "Dynamic",
}

var KindValue = map[string]Kind{
	"Scalar":         Scalar,
	"Vector1":        Scalar, // older documents
	"Vector2":        Vector2,
	"Vector3":        Vector3,
	"Vector4":        Vector4,
	"Color":          Color,
	"Boolean":        Boolean,
	"Texture2D":      Texture2D,
	"Texture":        Texture2D, // older documents
	"Texture2DArray": Texture2DArray,
	"Texture3D":      Texture3D,
	"Cubemap":        Cubemap,
	"Dynamic":        Dynamic,
}

// ParseKind returns the Kind named s. Matching is exact except for the legacy
// aliases in KindValue.
func ParseKind(s string) (Kind, error) {
	k, ok := KindValue[s]
	if !ok {
		return Unknown, fmt.Errorf("unknown value kind %q", s)
	}
	return k, nil
}

func (k Kind) String() string {
	if s, ok := KindName[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", k)
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

func (k *Kind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return k.UnmarshalText([]byte(s))
}

// IsVector returns true for Scalar through Color.
func (k Kind) IsVector() bool {
	switch k {
	case Scalar, Vector2, Vector3, Vector4, Color:
		return true
	}
	return false
}

// IsTexture returns true for every texture kind.
func (k Kind) IsTexture() bool {
	switch k {
	case Texture2D, Texture2DArray, Texture3D, Cubemap:
		return true
	}
	return false
}

// Components returns the number of scalar components of a vector kind, 1 for
// Boolean, and 0 for textures and unresolved kinds.
func (k Kind) Components() int {
	switch k {
	case Scalar, Boolean:
		return 1
	case Vector2:
		return 2
	case Vector3:
		return 3
	case Vector4, Color:
		return 4
	case Texture2D, Texture2DArray, Texture3D, Cubemap, Dynamic, Unknown:
		return 0
	}
	return 0
}

// Precision is the floating point type used for generated variables.
type Precision string

const (
	Float Precision = "float"
	Half  Precision = "half"
)

// ParsePrecision accepts "float" or "half". An empty string means Float.
func ParsePrecision(s string) (Precision, error) {
	switch Precision(s) {
	case "", Float:
		return Float, nil
	case Half:
		return Half, nil
	}
	return "", fmt.Errorf("invalid precision %q, expected float or half", s)
}

// TypeName returns the shading-language type used to declare a variable of
// kind k. Textures are never declared as locals; their type name is the
// object type used in function signatures.
func (k Kind) TypeName(p Precision) string {
	switch k {
	case Scalar:
		return string(p)
	case Vector2:
		return string(p) + "2"
	case Vector3:
		return string(p) + "3"
	case Vector4, Color:
		return string(p) + "4"
	case Boolean:
		return "bool"
	case Texture2D:
		return "Texture2D"
	case Texture2DArray:
		return "Texture2DArray"
	case Texture3D:
		return "Texture3D"
	case Cubemap:
		return "TextureCube"
	case Dynamic, Unknown:
		return string(p)
	}
	return string(p)
}

// CanConvert reports whether an output of kind from may feed an input of kind
// to. Vector kinds (and Dynamic) coerce into each other, Boolean only matches
// Boolean, and textures only match the identical texture kind.
func CanConvert(from, to Kind) bool {
	if from == Unknown || to == Unknown {
		return false
	}
	if from == to {
		return true
	}
	switch {
	case from == Dynamic:
		return to.IsVector()
	case to == Dynamic:
		return from.IsVector()
	case from.IsVector() && to.IsVector():
		return true
	}
	return false
}

var swizzles = []string{"", "x", "xy", "xyz", "xyzw"}

// Convert wraps expr, an expression of kind from, so it has kind to. Only
// vector kinds are wrapped: expr is returned unchanged when either kind is not
// a vector, even if CanConvert(from, to) is false.
func Convert(expr string, from, to Kind, p Precision) string {
	fc, tc := from.Components(), to.Components()
	if from == to || !from.IsVector() || !to.IsVector() || fc == tc {
		return expr
	}
	switch {
	case fc == 1:
		return "(" + expr + ")." + strings.Repeat("x", tc)
	case fc > tc:
		return "(" + expr + ")." + swizzles[tc]
	default:
		pad := strings.TrimSuffix(strings.Repeat("0, ", tc-fc), ", ")
		return fmt.Sprintf("%s(%s, %s)", to.TypeName(p), expr, pad)
	}
}

// Widest returns the widest vector kind in ks, treating Color as Vector4.
// It returns Scalar when ks has no vector kinds.
func Widest(ks ...Kind) Kind {
	w := Scalar
	for _, k := range ks {
		if !k.IsVector() {
			continue
		}
		if k == Color {
			k = Vector4
		}
		if k > w {
			w = k
		}
	}
	return w
}

// Value is a default or constant value. Which fields are meaningful depends on
// the kind it is paired with.
type Value struct {
	Vector  [4]float64 `yaml:"vector,omitempty,flow" json:"vector,omitempty"`
	Bool    bool       `yaml:"bool,omitempty" json:"bool,omitempty"`
	Texture string     `yaml:"texture,omitempty" json:"texture,omitempty"` // texture asset reference
	Expr    string     `yaml:"expr,omitempty" json:"expr,omitempty"`       // raw expression, e.g. a mesh UV channel
}

// Vec returns a Value holding the given vector components.
func Vec(c ...float64) Value {
	var v Value
	copy(v.Vector[:], c)
	return v
}

// Literal renders v as a shading-language expression of kind k.
func (v Value) Literal(k Kind, p Precision) string {
	if v.Expr != "" {
		return v.Expr
	}
	switch k {
	case Scalar, Dynamic:
		return formatFloat(v.Vector[0])
	case Vector2, Vector3, Vector4, Color:
		n := k.Components()
		parts := make([]string, n)
		for i := 0; i < n; i++ {
			parts[i] = formatFloat(v.Vector[i])
		}
		return fmt.Sprintf("%s(%s)", k.TypeName(p), strings.Join(parts, ", "))
	case Boolean:
		return strconv.FormatBool(v.Bool)
	case Texture2D, Texture2DArray, Texture3D, Cubemap, Unknown:
		return v.Texture
	}
	return ""
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// valueYAML is Value with a variable-length vector, so documents can write
// only the components a kind uses.
type valueYAML struct {
	Vector  []float64 `yaml:"vector,omitempty,flow"`
	Bool    bool      `yaml:"bool,omitempty"`
	Texture string    `yaml:"texture,omitempty"`
	Expr    string    `yaml:"expr,omitempty"`
}

func (v *Value) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var y valueYAML
	if err := unmarshal(&y); err != nil {
		return err
	}
	if len(y.Vector) > 4 {
		return fmt.Errorf("vector has %d components, expected at most 4", len(y.Vector))
	}
	*v = Value{Bool: y.Bool, Texture: y.Texture, Expr: y.Expr}
	copy(v.Vector[:], y.Vector)
	return nil
}

func (v Value) MarshalYAML() (interface{}, error) {
	y := valueYAML{Bool: v.Bool, Texture: v.Texture, Expr: v.Expr}
	n := len(v.Vector)
	for n > 0 && v.Vector[n-1] == 0 {
		n--
	}
	if n > 0 {
		y.Vector = append([]float64{}, v.Vector[:n]...)
	}
	return y, nil
}
