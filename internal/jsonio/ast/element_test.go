package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindByLabel_FirstMatchWins(t *testing.T) {
	obj := &Element{
		Kind: Object,
		Children: []*Element{
			{Kind: String, Label: "x", HasLabel: true, StringValue: "first"},
			{Kind: String, Label: "x", HasLabel: true, StringValue: "second"},
		},
	}

	found := obj.FindByLabel("x")
	require.NotNil(t, found)
	require.Equal(t, "first", found.StringValue)
}

func TestFindByLabel_Missing(t *testing.T) {
	obj := &Element{Kind: Object}
	require.Nil(t, obj.FindByLabel("missing"))
}

func TestFindByLabel_NotAnObject(t *testing.T) {
	arr := &Element{Kind: Array, Children: []*Element{{Kind: Number, NumberValue: 1}}}
	require.Nil(t, arr.FindByLabel("anything"))
}

func TestChildCount(t *testing.T) {
	var nilElem *Element
	require.Equal(t, 0, nilElem.ChildCount())

	arr := &Element{Kind: Array, Children: []*Element{{}, {}, {}}}
	require.Equal(t, 3, arr.ChildCount())
}
