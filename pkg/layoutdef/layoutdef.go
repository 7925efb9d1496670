// Package layoutdef builds radio controls from serialized layout definitions.
//
// A definition is a YAML document listing views with a frame and optional
// user-defined runtime attributes:
//
//	schema: v1.0.0
//	views:
//	  - id: plan-basic
//	    class: RadioButton
//	    frame: {x: 16, y: 12, width: 24, height: 24}
//	    attributes:
//	      selectedColor: "#4A90E2"
//	      deselectedColor: "#AAAAAA"
//
// The control's diameter is the frame width. Colors not given as attributes
// fall back to the radio defaults.
package layoutdef

import (
	"bytes"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/radiobutton/pkg/errors"
	"github.com/go-drift/radiobutton/pkg/graphics"
	"github.com/go-drift/radiobutton/pkg/radio"
)

// SchemaVersion is the newest schema this package writes and understands.
// Any v1.x.y document is accepted.
const SchemaVersion = "v1.0.0"

// RadioClass is the view class that produces a radio control.
const RadioClass = "RadioButton"

// Attribute names recognized on radio views.
const (
	AttrSelectedColor   = "selectedColor"
	AttrDeselectedColor = "deselectedColor"
)

// Document is a decoded layout definition.
type Document struct {
	Schema string `yaml:"schema"`
	Views  []View `yaml:"views"`

	source string
}

// View is one entry of a layout definition.
type View struct {
	ID         string            `yaml:"id"`
	Class      string            `yaml:"class"`
	Frame      Frame             `yaml:"frame"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
}

// Frame positions a view in its parent.
type Frame struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rect returns the frame as a rectangle.
func (f Frame) Rect() graphics.Rect {
	return graphics.RectFromLTWH(f.X, f.Y, f.Width, f.Height)
}

// Radio is a control built from a view, positioned by its frame.
type Radio struct {
	ID      string
	Frame   graphics.Rect
	Control *radio.Control
}

// Parse decodes a layout definition. Unknown fields are rejected.
func Parse(data []byte) (*Document, error) {
	return parse(data, "")
}

// Load reads and decodes the layout definition at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("layoutdef.Load", errors.KindParsing, err)
	}
	return parse(data, path)
}

func parse(data []byte, source string) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.New("layoutdef.Parse", errors.KindParsing,
			&errors.ParseError{Source: source, Path: "document", Err: err})
	}
	doc.source = source

	if doc.Schema == "" {
		doc.Schema = SchemaVersion
	}
	if !semver.IsValid(doc.Schema) {
		return nil, errors.New("layoutdef.Parse", errors.KindParsing,
			&errors.ParseError{Source: source, Path: "schema", Err: fmt.Errorf("%q is not a semantic version", doc.Schema)})
	}
	if semver.Major(doc.Schema) != semver.Major(SchemaVersion) {
		return nil, errors.New("layoutdef.Parse", errors.KindParsing,
			&errors.ParseError{Source: source, Path: "schema", Err: fmt.Errorf("unsupported schema %s (want %s.x)", doc.Schema, semver.Major(SchemaVersion))})
	}
	return &doc, nil
}

// Build creates a control for every radio view, in document order.
//
// Views of other classes are reported to the global error handler and
// skipped. Missing or duplicate ids, invalid colors and invalid frames fail
// the whole build.
func (d *Document) Build() ([]Radio, error) {
	seen := make(map[string]bool, len(d.Views))
	var out []Radio
	for i, v := range d.Views {
		path := fmt.Sprintf("views[%d]", i)

		if !strings.EqualFold(v.Class, RadioClass) {
			errors.Report(errors.New("layoutdef.Build", errors.KindParsing,
				d.parseError(path+".class", fmt.Errorf("skipping view %q of class %q", v.ID, v.Class))))
			continue
		}
		if v.ID == "" {
			return nil, d.buildError(path+".id", fmt.Errorf("missing id"))
		}
		if seen[v.ID] {
			return nil, d.buildError(path+".id", fmt.Errorf("duplicate id %q", v.ID))
		}
		seen[v.ID] = true

		cfg, err := d.config(path, v)
		if err != nil {
			return nil, err
		}
		c, err := radio.New(cfg)
		if err != nil {
			return nil, d.buildError(path+".frame", err)
		}
		out = append(out, Radio{ID: v.ID, Frame: v.Frame.Rect(), Control: c})
	}
	return out, nil
}

// config resolves a view's construction parameters.
func (d *Document) config(path string, v View) (radio.Config, error) {
	cfg := radio.DefaultConfig().WithDiameter(v.Frame.Width)
	if v.Frame.Height != 0 && v.Frame.Height != v.Frame.Width {
		return cfg, d.buildError(path+".frame", fmt.Errorf("radio frame must be square, got %vx%v", v.Frame.Width, v.Frame.Height))
	}

	// Sorted so the first reported error is stable.
	for _, name := range slices.Sorted(maps.Keys(v.Attributes)) {
		raw := v.Attributes[name]
		attrPath := path + ".attributes." + name
		switch name {
		case AttrSelectedColor:
			color, err := graphics.ParseColor(raw)
			if err != nil {
				return cfg, d.buildError(attrPath, err)
			}
			cfg = cfg.WithSelectedColor(color)
		case AttrDeselectedColor:
			color, err := graphics.ParseColor(raw)
			if err != nil {
				return cfg, d.buildError(attrPath, err)
			}
			cfg = cfg.WithDeselectedColor(color)
		default:
			return cfg, d.buildError(attrPath, fmt.Errorf("unknown attribute"))
		}
	}
	return cfg, nil
}

func (d *Document) parseError(path string, err error) *errors.ParseError {
	return &errors.ParseError{Source: d.source, Path: path, Err: err}
}

func (d *Document) buildError(path string, err error) error {
	return errors.New("layoutdef.Build", errors.KindConfig, d.parseError(path, err))
}

// Marshal encodes the document as YAML.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Describe returns a view entry reproducing a control's geometry and colors.
func Describe(id string, origin graphics.Offset, c *radio.Control) View {
	return View{
		ID:    id,
		Class: RadioClass,
		Frame: Frame{X: origin.X, Y: origin.Y, Width: c.Diameter(), Height: c.Diameter()},
		Attributes: map[string]string{
			AttrSelectedColor:   c.SelectedColor().Hex(),
			AttrDeselectedColor: c.DeselectedColor().Hex(),
		},
	}
}
