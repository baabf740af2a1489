package shaderlab

import (
	"strconv"

	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/shaderlab/slbuild"
)

// DefaultTextureRef is the built-in texture name used when a texture
// property is declared with an empty reference.
const DefaultTextureRef = "white"

// PropertyValue is the default value of a [Property]. The set of
// implementations is closed: [Int], [Float], [Range], [Texture2D],
// [Texture2DArray], [Texture3D], [Cubemap], [CubemapArray], [Color] and [Vector].
type PropertyValue interface {
	// Kind returns the variant tag of the value.
	Kind() PropertyKind
	// appendType appends the ShaderLab property type token, i.e: "Range(0, 1)".
	appendType(b []byte) []byte
	// appendDefault appends the default value as written after the '=' sign.
	appendDefault(b []byte) []byte
	// declType returns the code block type used to declare the property
	// given the explicit precision hint. ok is false when the variant has no
	// declaration type.
	declType(hint Precision) (typename string, ok bool)
}

// PropertyKind is the variant tag of a [PropertyValue].
type PropertyKind uint8

const (
	KindInt PropertyKind = iota
	KindFloat
	KindRange
	KindTexture2D
	KindTexture2DArray
	KindTexture3D
	KindCubemap
	KindCubemapArray
	KindColor
	KindVector
)

func (k PropertyKind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindRange:
		return "Range"
	case KindTexture2D:
		return "Texture2D"
	case KindTexture2DArray:
		return "Texture2DArray"
	case KindTexture3D:
		return "Texture3D"
	case KindCubemap:
		return "Cubemap"
	case KindCubemapArray:
		return "CubemapArray"
	case KindColor:
		return "Color"
	case KindVector:
		return "Vector"
	}
	return "PropertyKind(" + strconv.Itoa(int(k)) + ")"
}

// Int is an integer property value.
type Int int32

func (Int) Kind() PropertyKind { return KindInt }
func (Int) appendType(b []byte) []byte { return append(b, "Int"...) }
func (v Int) appendDefault(b []byte) []byte { return strconv.AppendInt(b, int64(v), 10) }
func (Int) declType(Precision) (string, bool) { return "int", true }

// Float is a floating point property value.
type Float float32

func (Float) Kind() PropertyKind { return KindFloat }
func (Float) appendType(b []byte) []byte { return append(b, "Float"...) }
func (v Float) appendDefault(b []byte) []byte { return slbuild.AppendFloat(b, float32(v)) }

func (v Float) declType(hint Precision) (string, bool) {
	if hint == PrecisionAuto {
		hint = ClassifyPrecision(float32(v))
	}
	return hint.String(), true
}

// Range is a floating point property value constrained to [Min, Max],
// displayed as a slider in the material inspector.
type Range struct {
	Min, Max, Value float32
}

func (Range) Kind() PropertyKind { return KindRange }

func (r Range) appendType(b []byte) []byte {
	b = append(b, "Range("...)
	b = slbuild.AppendFloats(b, ',', r.Min, r.Max)
	return append(b, ')')
}

// appendDefault appends only the value. Min and Max are part of the type token.
func (r Range) appendDefault(b []byte) []byte { return slbuild.AppendFloat(b, r.Value) }

func (r Range) declType(hint Precision) (string, bool) {
	if hint == PrecisionAuto {
		hint = ClassifyRangePrecision(r.Min, r.Max)
	}
	return hint.String(), true
}

// Texture2D references a 2D texture by name, i.e: "white", "bump".
type Texture2D struct{ Ref string }

func (Texture2D) Kind() PropertyKind { return KindTexture2D }
func (Texture2D) appendType(b []byte) []byte { return append(b, "2D"...) }
func (t Texture2D) appendDefault(b []byte) []byte { return appendTextureRef(b, t.Ref) }

func (Texture2D) declType(hint Precision) (string, bool) {
	switch hint {
	case PrecisionFloat:
		return "sampler2D_float", true
	case PrecisionHalf:
		return "sampler2D_half", true
	}
	return "sampler2D", true
}

// Texture2DArray references a 2D texture array.
type Texture2DArray struct{ Ref string }

func (Texture2DArray) Kind() PropertyKind { return KindTexture2DArray }
func (Texture2DArray) appendType(b []byte) []byte { return append(b, "2DArray"...) }
func (t Texture2DArray) appendDefault(b []byte) []byte { return appendTextureRef(b, t.Ref) }
func (Texture2DArray) declType(Precision) (string, bool) { return "", false }

// Texture3D references a volume texture.
type Texture3D struct{ Ref string }

func (Texture3D) Kind() PropertyKind { return KindTexture3D }
func (Texture3D) appendType(b []byte) []byte { return append(b, "3D"...) }
func (t Texture3D) appendDefault(b []byte) []byte { return appendTextureRef(b, t.Ref) }
func (Texture3D) declType(Precision) (string, bool) { return "", false }

// Cubemap references a cube texture.
type Cubemap struct{ Ref string }

func (Cubemap) Kind() PropertyKind { return KindCubemap }
func (Cubemap) appendType(b []byte) []byte { return append(b, "Cube"...) }
func (c Cubemap) appendDefault(b []byte) []byte { return appendTextureRef(b, c.Ref) }
func (Cubemap) declType(Precision) (string, bool) { return "", false }

// CubemapArray references a cube texture array.
type CubemapArray struct{ Ref string }

func (CubemapArray) Kind() PropertyKind { return KindCubemapArray }
func (CubemapArray) appendType(b []byte) []byte { return append(b, "CubeArray"...) }
func (c CubemapArray) appendDefault(b []byte) []byte { return appendTextureRef(b, c.Ref) }
func (CubemapArray) declType(Precision) (string, bool) { return "", false }

func appendTextureRef(b []byte, ref string) []byte {
	if ref == "" {
		ref = DefaultTextureRef
	}
	b = slbuild.AppendQuoted(b, ref)
	return append(b, " {}"...)
}

// Color is an RGBA color property value.
type Color struct {
	R, G, B, A float32
}

// White is opaque white.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// RGB returns an opaque color.
func RGB(r, g, b float32) Color { return Color{R: r, G: g, B: b, A: 1} }

// RGBA returns a color with the given alpha.
func RGBA(r, g, b, a float32) Color { return Color{R: r, G: g, B: b, A: a} }

// ColorFromVec returns a color with X,Y,Z mapped to R,G,B.
func ColorFromVec(rgb ms3.Vec, a float32) Color {
	return Color{R: rgb.X, G: rgb.Y, B: rgb.Z, A: a}
}

// RGB returns the color channels as a vector, dropping alpha.
func (c Color) RGB() ms3.Vec { return ms3.Vec{X: c.R, Y: c.G, Z: c.B} }

func (Color) Kind() PropertyKind { return KindColor }
func (Color) appendType(b []byte) []byte { return append(b, "Color"...) }

func (c Color) appendDefault(b []byte) []byte {
	b = append(b, '(')
	b = slbuild.AppendFloats(b, ',', c.R, c.G, c.B, c.A)
	return append(b, ')')
}

func (Color) declType(Precision) (string, bool) { return "", false }

// Vector is a four component vector property value.
type Vector struct {
	X, Y, Z, W float32
}

// Vec2 returns a vector with Z and W set to zero.
func Vec2(x, y float32) Vector { return Vector{X: x, Y: y} }

// Vec3 returns a vector with W set to zero.
func Vec3(x, y, z float32) Vector { return Vector{X: x, Y: y, Z: z} }

// Vec4 returns a vector with all four components set.
func Vec4(x, y, z, w float32) Vector { return Vector{X: x, Y: y, Z: z, W: w} }

// VectorFromVec2 returns a vector with Z and W set to zero.
func VectorFromVec2(v ms2.Vec) Vector { return Vector{X: v.X, Y: v.Y} }

// VectorFromVec3 returns a vector from v and the fourth component w.
func VectorFromVec3(v ms3.Vec, w float32) Vector { return Vector{X: v.X, Y: v.Y, Z: v.Z, W: w} }

// Vec3 returns the first three components.
func (v Vector) Vec3() ms3.Vec { return ms3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

func (Vector) Kind() PropertyKind { return KindVector }
func (Vector) appendType(b []byte) []byte { return append(b, "Vector"...) }

func (v Vector) appendDefault(b []byte) []byte {
	b = append(b, '(')
	b = slbuild.AppendFloats(b, ',', v.X, v.Y, v.Z, v.W)
	return append(b, ')')
}

func (Vector) declType(Precision) (string, bool) { return "", false }

// Interface implementation compile-time checks.
var (
	_ PropertyValue = Int(0)
	_ PropertyValue = Float(0)
	_ PropertyValue = Range{}
	_ PropertyValue = Texture2D{}
	_ PropertyValue = Texture2DArray{}
	_ PropertyValue = Texture3D{}
	_ PropertyValue = Cubemap{}
	_ PropertyValue = CubemapArray{}
	_ PropertyValue = Color{}
	_ PropertyValue = Vector{}
)
