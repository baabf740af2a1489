package shaderlab

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/soypat/shaderlab/slbuild"
)

// Precision is a floating point precision hint for a property declaration.
// The zero value [PrecisionAuto] infers precision from the default value.
type Precision uint8

const (
	PrecisionAuto Precision = iota
	PrecisionFixed
	PrecisionHalf
	PrecisionFloat
)

func (p Precision) String() string {
	switch p {
	case PrecisionAuto:
		return "auto"
	case PrecisionFixed:
		return "fixed"
	case PrecisionHalf:
		return "half"
	case PrecisionFloat:
		return "float"
	}
	return "Precision(" + strconv.Itoa(int(p)) + ")"
}

// ParsePrecision parses "fixed", "half" or "float". The empty string and "auto" parse as [PrecisionAuto].
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return PrecisionAuto, nil
	case "fixed":
		return PrecisionFixed, nil
	case "half":
		return PrecisionHalf, nil
	case "float":
		return PrecisionFloat, nil
	}
	return PrecisionAuto, fmt.Errorf("precision %q: %w", s, ErrInvalidArgument)
}

// Exclusive magnitude limits of the fixed and half precision formats.
const (
	fixedLimit = 2
	halfLimit  = 60000
)

// ClassifyPrecision returns the narrowest precision able to hold v:
// fixed for |v| < 2, half for |v| < 60000 and float otherwise. NaN is float.
func ClassifyPrecision(v float32) Precision {
	a := math32.Abs(v)
	switch {
	case a < fixedLimit:
		return PrecisionFixed
	case a < halfLimit:
		return PrecisionHalf
	}
	return PrecisionFloat
}

// ClassifyRangePrecision returns the narrowest precision able to hold both
// lo and hi. The result does not depend on argument order.
func ClassifyRangePrecision(lo, hi float32) Precision {
	return max(ClassifyPrecision(lo), ClassifyPrecision(hi))
}

// Property is a single entry of the Properties block. Property is immutable,
// use [NewProperty] and the With methods to build one.
type Property struct {
	name      string
	display   string
	value     PropertyValue
	precision Precision
	noDecl    bool
}

// NewProperty creates a property declared in the code block with the
// variable name. A declaration is generated unless [Property.WithoutDeclaration] is used.
//
//	NewProperty("_Glow", "Glow", Float(0.5)) // _Glow("Glow", Float) = 0.5
func NewProperty(name, display string, value PropertyValue) Property {
	return Property{name: name, display: display, value: value}
}

// WithPrecision returns a copy of p with an explicit declaration precision.
func (p Property) WithPrecision(hint Precision) Property {
	p.precision = hint
	return p
}

// WithoutDeclaration returns a copy of p which is not declared in the code block.
// Use it for properties already declared by included code.
func (p Property) WithoutDeclaration() Property {
	p.noDecl = true
	return p
}

func (p Property) Name() string { return p.name }
func (p Property) DisplayName() string { return p.display }
func (p Property) Value() PropertyValue { return p.value }
func (p Property) Precision() Precision { return p.precision }
func (p Property) GeneratesDeclaration() bool { return !p.noDecl }

// Validate checks the property may be added to a [Shader].
func (p Property) Validate() error {
	if p.value == nil {
		return fmt.Errorf("property %q has no value: %w", p.name, ErrInvalidArgument)
	} else if p.name == "" {
		return fmt.Errorf("%s property with empty variable name: %w", p.value.Kind(), ErrInvalidArgument)
	} else if p.precision > PrecisionFloat {
		return fmt.Errorf("property %q: %s: %w", p.name, p.precision, ErrInvalidArgument)
	}
	return nil
}

// AppendDescription appends the Properties block line of p:
//
//	_Cutoff("Alpha cutoff", Range(0, 1)) = 0.5
func (p Property) AppendDescription(b []byte) []byte {
	b = append(b, p.name...)
	b = append(b, '(')
	b = slbuild.AppendQuoted(b, p.display)
	b = append(b, ", "...)
	if p.value != nil {
		b = p.value.appendType(b)
	}
	b = append(b, ") = "...)
	if p.value != nil {
		b = p.value.appendDefault(b)
	}
	return b
}

// String returns the Properties block line of p.
func (p Property) String() string { return string(p.AppendDescription(nil)) }

// DeclarationType returns the code block type of the property's declaration.
// Int is always int. Float and Range use the precision hint or infer it from
// their magnitude, see [ClassifyPrecision]. Texture2D maps the hint to a sampler2D type.
// Other variants have no declaration type and return an error wrapping [ErrNoDeclarationType].
func (p Property) DeclarationType() (string, error) {
	if p.value == nil {
		return "", fmt.Errorf("property %q has no value: %w", p.name, ErrInvalidArgument)
	}
	typename, ok := p.value.declType(p.precision)
	if !ok {
		return "", fmt.Errorf("property %q of kind %s: %w", p.name, p.value.Kind(), ErrNoDeclarationType)
	}
	return typename, nil
}
