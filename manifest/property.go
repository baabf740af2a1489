package manifest

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/soypat/shaderlab"
	"github.com/soypat/shaderlab/slaux"
)

// Property is a manifest property entry. Exactly one of the value fields must be set.
type Property struct {
	Name      string `yaml:"name"`
	Display   string `yaml:"display"`
	Precision string `yaml:"precision"`
	// Declare set to false omits the code block declaration.
	Declare *bool `yaml:"declare"`

	Int            *int32    `yaml:"int"`
	Float          *float32  `yaml:"float"`
	Range          *Range    `yaml:"range"`
	Texture2D      *string   `yaml:"texture2d"`
	Texture2DArray *string   `yaml:"texture2darray"`
	Texture3D      *string   `yaml:"texture3d"`
	Cubemap        *string   `yaml:"cubemap"`
	CubemapArray   *string   `yaml:"cubemaparray"`
	Color          *Color    `yaml:"color"`
	Vector         []float32 `yaml:"vector"`
}

// Range is the value of a range property.
type Range struct {
	Min   float32 `yaml:"min"`
	Max   float32 `yaml:"max"`
	Value float32 `yaml:"value"`
}

// Color decodes from [r, g, b], [r, g, b, a] or a quoted hex string such as "#ff8000".
type Color struct {
	shaderlab.Color
}

// UnmarshalYAML implements [yaml.BytesUnmarshaler].
func (c *Color) UnmarshalYAML(b []byte) error {
	var channels []float32
	if err := yaml.Unmarshal(b, &channels); err == nil {
		switch len(channels) {
		case 3:
			c.Color = shaderlab.RGB(channels[0], channels[1], channels[2])
		case 4:
			c.Color = shaderlab.RGBA(channels[0], channels[1], channels[2], channels[3])
		default:
			return fmt.Errorf("color with %d channels: %w", len(channels), shaderlab.ErrInvalidArgument)
		}
		return nil
	}
	var hex string
	if err := yaml.Unmarshal(b, &hex); err != nil {
		return fmt.Errorf("color must be a channel list or hex string: %w", err)
	}
	color, err := slaux.ParseHexColor(hex)
	if err != nil {
		return err
	}
	c.Color = color
	return nil
}

// Property returns the document property described by the entry.
func (p *Property) Property() (shaderlab.Property, error) {
	value, err := p.value()
	if err != nil {
		return shaderlab.Property{}, fmt.Errorf("property %q: %w", p.Name, err)
	}
	precision, err := shaderlab.ParsePrecision(p.Precision)
	if err != nil {
		return shaderlab.Property{}, fmt.Errorf("property %q: %w", p.Name, err)
	}
	prop := shaderlab.NewProperty(p.Name, p.Display, value).WithPrecision(precision)
	if p.Declare != nil && !*p.Declare {
		prop = prop.WithoutDeclaration()
	}
	return prop, prop.Validate()
}

func (p *Property) value() (shaderlab.PropertyValue, error) {
	var values []shaderlab.PropertyValue
	if p.Int != nil {
		values = append(values, shaderlab.Int(*p.Int))
	}
	if p.Float != nil {
		values = append(values, shaderlab.Float(*p.Float))
	}
	if p.Range != nil {
		values = append(values, shaderlab.Range{Min: p.Range.Min, Max: p.Range.Max, Value: p.Range.Value})
	}
	if p.Texture2D != nil {
		values = append(values, shaderlab.Texture2D{Ref: *p.Texture2D})
	}
	if p.Texture2DArray != nil {
		values = append(values, shaderlab.Texture2DArray{Ref: *p.Texture2DArray})
	}
	if p.Texture3D != nil {
		values = append(values, shaderlab.Texture3D{Ref: *p.Texture3D})
	}
	if p.Cubemap != nil {
		values = append(values, shaderlab.Cubemap{Ref: *p.Cubemap})
	}
	if p.CubemapArray != nil {
		values = append(values, shaderlab.CubemapArray{Ref: *p.CubemapArray})
	}
	if p.Color != nil {
		values = append(values, p.Color.Color)
	}
	if p.Vector != nil {
		if len(p.Vector) < 2 || len(p.Vector) > 4 {
			return nil, fmt.Errorf("vector with %d components: %w", len(p.Vector), shaderlab.ErrInvalidArgument)
		}
		var v [4]float32
		copy(v[:], p.Vector)
		values = append(values, shaderlab.Vec4(v[0], v[1], v[2], v[3]))
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("want exactly one value, got %d: %w", len(values), shaderlab.ErrInvalidArgument)
	}
	return values[0], nil
}
