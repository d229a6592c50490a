// Package ast is the tagged tree the parser builds: JsonElement nodes
// with ordered children, label lookup, and typed scalar accessors.
package ast

import "github.com/yandex/haversine-workbench/internal/jsonio/loc"

type Kind int

const (
	Object Kind = iota
	Array
	String
	Number
	Boolean
	Null
)

func (k Kind) String() string {
	switch k {
	case Object:
		return "Object"
	case Array:
		return "Array"
	case String:
		return "String"
	case Number:
		return "Number"
	case Boolean:
		return "Boolean"
	case Null:
		return "Null"
	default:
		return "Unknown"
	}
}

// Element is a node of the parsed JSON tree. Label is set by the parent
// object for named children and is empty for array elements and the
// root. No mutation happens after construction; the parser is the only
// builder.
type Element struct {
	Kind     Kind
	Location loc.Location
	Label    string
	HasLabel bool
	Children []*Element

	StringValue  string
	NumberValue  float64
	BooleanValue bool
}

// FindByLabel returns the first child whose label equals name, in
// source order, or nil if none matches (including when the receiver is
// not an Object).
func (e *Element) FindByLabel(name string) *Element {
	if e == nil || e.Kind != Object {
		return nil
	}
	for _, child := range e.Children {
		if child.HasLabel && child.Label == name {
			return child
		}
	}
	return nil
}

func (e *Element) ChildCount() int {
	if e == nil {
		return 0
	}
	return len(e.Children)
}
