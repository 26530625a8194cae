// Copyright 2026, Square, Inc.

package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/square/shadergraph/property"
	"github.com/square/shadergraph/value"
)

// PropertyBlock renders a manifest as a host material Properties block, one
// declaration per property in manifest order.
func PropertyBlock(manifest []property.Property) string {
	var b strings.Builder
	b.WriteString("Properties\n{\n")
	for _, p := range manifest {
		b.WriteString("    ")
		b.WriteString(declaration(p))
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return b.String()
}

func declaration(p property.Property) string {
	var attr string
	if !p.Modifiable && p.Kind.IsTexture() {
		attr = "[NonModifiableTextureData] "
	}
	name := strconv.Quote(p.DisplayName)
	switch p.Kind {
	case value.Scalar:
		return fmt.Sprintf("%s%s(%s, Float) = %s", attr, p.ReferenceName, name, num(p.Default.Vector[0]))
	case value.Vector2, value.Vector3, value.Vector4:
		return fmt.Sprintf("%s%s(%s, Vector) = %s", attr, p.ReferenceName, name, tuple(p.Default.Vector))
	case value.Color:
		return fmt.Sprintf("%s%s(%s, Color) = %s", attr, p.ReferenceName, name, tuple(p.Default.Vector))
	case value.Boolean:
		on := "0"
		if p.Default.Bool {
			on = "1"
		}
		return fmt.Sprintf("%s[Toggle] %s(%s, Float) = %s", attr, p.ReferenceName, name, on)
	case value.Texture2D:
		return fmt.Sprintf(`%s%s(%s, 2D) = "white" {}`, attr, p.ReferenceName, name)
	case value.Texture2DArray:
		return fmt.Sprintf(`%s%s(%s, 2DArray) = "" {}`, attr, p.ReferenceName, name)
	case value.Texture3D:
		return fmt.Sprintf(`%s%s(%s, 3D) = "" {}`, attr, p.ReferenceName, name)
	case value.Cubemap:
		return fmt.Sprintf(`%s%s(%s, Cube) = "" {}`, attr, p.ReferenceName, name)
	case value.Dynamic, value.Unknown:
	}
	return fmt.Sprintf("// %s: unsupported kind %s", p.ReferenceName, p.Kind)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func tuple(v [4]float64) string {
	return fmt.Sprintf("(%s, %s, %s, %s)", num(v[0]), num(v[1]), num(v[2]), num(v[3]))
}
