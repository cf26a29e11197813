// Package shader adapts the blend engine to the renderer's node model.
//
// It owns everything the host needs to expose a blend node: the node
// registry, parameter declarations with their defaults, and the display
// names of the blend enum. Parameter values reach a node through the
// Inputs interface, which the host implements on top of its own
// shading-context API.
package shader

import (
	"errors"
	"fmt"

	"github.com/gogpu/mixrgb"
)

// Registry errors.
var (
	// ErrUnknownNode is returned by Lookup for unregistered node names.
	ErrUnknownNode = errors.New("shader: unknown node")

	// ErrUnknownParam is returned when a parameter name is not declared.
	ErrUnknownParam = errors.New("shader: unknown parameter")

	// ErrParamType is returned when a value does not match the declared type.
	ErrParamType = errors.New("shader: parameter type mismatch")
)

// ParamType is the declared type of a node parameter.
type ParamType uint8

const (
	TypeFloat ParamType = iota
	TypeRGB
	TypeRGBA
	TypeEnum
)

// String returns the type name.
func (t ParamType) String() string {
	switch t {
	case TypeFloat:
		return "float"
	case TypeRGB:
		return "rgb"
	case TypeRGBA:
		return "rgba"
	case TypeEnum:
		return "enum"
	default:
		return fmt.Sprintf("ParamType(%d)", uint8(t))
	}
}

// Param declares one node parameter.
type Param struct {
	Name    string
	Type    ParamType
	Default any      // float32, mixrgb.RGB, mixrgb.RGBA or int (enum index)
	Enum    []string // identifiers for TypeEnum, in index order
}

// NodeInfo describes a node the plugin exposes to the host.
type NodeInfo struct {
	Name   string
	Output ParamType
	Params []Param
}

// Index returns the position of the named parameter, or -1.
func (n NodeInfo) Index(name string) int {
	for i, p := range n.Params {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// Inputs supplies evaluated parameter values for one shading sample.
// Indices follow the order of NodeInfo.Params.
type Inputs interface {
	Float(i int) float32
	RGB(i int) mixrgb.RGB
	RGBA(i int) mixrgb.RGBA
	Enum(i int) int
}

var nodes = []NodeInfo{mixRGBInfo, legacyBlendInfo}

// Nodes lists every node in loader order.
func Nodes() []NodeInfo {
	out := make([]NodeInfo, len(nodes))
	copy(out, nodes)
	return out
}

// Lookup returns the node registered under name.
func Lookup(name string) (NodeInfo, error) {
	for _, n := range nodes {
		if n.Name == name {
			return n, nil
		}
	}
	return NodeInfo{}, fmt.Errorf("%w: %q", ErrUnknownNode, name)
}
