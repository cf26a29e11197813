package shader

import (
	"fmt"

	"github.com/gogpu/mixrgb"
)

// Values is a constant parameter set for one node.
//
// It implements Inputs for hosts and tools that evaluate a node with fixed
// parameters instead of per-sample connections.
type Values struct {
	info NodeInfo
	vals []any
}

// NewValues returns the declared defaults of node.
func NewValues(node NodeInfo) *Values {
	v := &Values{info: node, vals: make([]any, len(node.Params))}
	for i, p := range node.Params {
		v.vals[i] = p.Default
	}
	return v
}

// Set assigns a parameter by name.
//
// Floats accept float32 or float64, colors accept mixrgb.RGB or
// mixrgb.RGBA, and enums accept an index or an identifier string.
func (v *Values) Set(name string, value any) error {
	i := v.info.Index(name)
	if i < 0 {
		return fmt.Errorf("%w: %s.%s", ErrUnknownParam, v.info.Name, name)
	}
	p := v.info.Params[i]

	var ok bool
	switch p.Type {
	case TypeFloat:
		switch x := value.(type) {
		case float32:
			v.vals[i], ok = x, true
		case float64:
			v.vals[i], ok = float32(x), true
		}
	case TypeRGB:
		switch x := value.(type) {
		case mixrgb.RGB:
			v.vals[i], ok = x, true
		case mixrgb.RGBA:
			v.vals[i], ok = x.RGB(), true
		}
	case TypeRGBA:
		switch x := value.(type) {
		case mixrgb.RGBA:
			v.vals[i], ok = x, true
		case mixrgb.RGB:
			v.vals[i], ok = x.WithAlpha(1), true
		}
	case TypeEnum:
		switch x := value.(type) {
		case int:
			v.vals[i], ok = x, true
		case string:
			for j, id := range p.Enum {
				if id == x {
					v.vals[i], ok = j, true
					break
				}
			}
			if !ok {
				return fmt.Errorf("%w: %s.%s has no value %q", ErrParamType, v.info.Name, name, x)
			}
		}
	}
	if !ok {
		return fmt.Errorf("%w: %s.%s is %v, got %T", ErrParamType, v.info.Name, name, p.Type, value)
	}
	return nil
}

// Float returns parameter i as a float.
func (v *Values) Float(i int) float32 {
	f, _ := v.vals[i].(float32)
	return f
}

// RGB returns parameter i as a color.
func (v *Values) RGB(i int) mixrgb.RGB {
	switch x := v.vals[i].(type) {
	case mixrgb.RGB:
		return x
	case mixrgb.RGBA:
		return x.RGB()
	}
	return mixrgb.RGB{}
}

// RGBA returns parameter i as a color with alpha.
func (v *Values) RGBA(i int) mixrgb.RGBA {
	switch x := v.vals[i].(type) {
	case mixrgb.RGBA:
		return x
	case mixrgb.RGB:
		return x.WithAlpha(1)
	}
	return mixrgb.RGBA{}
}

// Enum returns parameter i as an enum index.
func (v *Values) Enum(i int) int {
	e, _ := v.vals[i].(int)
	return e
}
