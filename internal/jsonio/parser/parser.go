// Package parser recursively builds a jsonio/ast tree by pulling tokens
// lazily from jsonio/lexer. Every frame wraps inner failures with a
// location-bearing message, per spec Error semantics: the tokenizer and
// parser never throw.
package parser

import (
	"github.com/yandex/haversine-workbench/internal/diag"
	"github.com/yandex/haversine-workbench/internal/jsonio/ast"
	"github.com/yandex/haversine-workbench/internal/jsonio/lexer"
	"github.com/yandex/haversine-workbench/internal/jsonio/loc"
	"github.com/yandex/haversine-workbench/internal/jsonio/view"
)

// node bundles a parsed element with the location immediately after it,
// so callers can keep threading the cursor through the recursive descent
// without a mutable parser struct.
type node struct {
	element *ast.Element
	next    loc.Location
}

// Parse parses one element from the start of the buffer and returns it
// as the root. Bytes after the root element are not examined.
func Parse(v view.View) diag.Result[*ast.Element] {
	result := parseElement("", false, v, loc.Start())
	if !result.IsOk() {
		return diag.Fail[*ast.Element](diag.Wrap("Failed parsing document", result.Err()))
	}
	n, _ := result.Unwrap()
	return diag.Ok(n.element)
}

func parseElement(label string, hasLabel bool, v view.View, at loc.Location) diag.Result[node] {
	tokResult := lexer.NextToken(v, at)
	if !tokResult.IsOk() {
		return diag.Fail[node](tokResult.Err())
	}
	tok, _ := tokResult.Unwrap()

	switch tok.Kind {
	case lexer.OpenObject:
		return parseList(label, hasLabel, v, tok.Start, tok.End, ast.Object, lexer.CloseObject, true)
	case lexer.OpenArray:
		return parseList(label, hasLabel, v, tok.Start, tok.End, ast.Array, lexer.CloseArray, false)
	case lexer.StringLiteral:
		return diag.Ok(node{
			element: &ast.Element{Kind: ast.String, Location: tok.Start, Label: label, HasLabel: hasLabel, StringValue: tok.Text},
			next:    tok.End,
		})
	case lexer.IntegerLiteral, lexer.DecimalLiteral:
		return diag.Ok(node{
			element: &ast.Element{Kind: ast.Number, Location: tok.Start, Label: label, HasLabel: hasLabel, NumberValue: tok.Number},
			next:    tok.End,
		})
	case lexer.TrueLiteral:
		return diag.Ok(node{
			element: &ast.Element{Kind: ast.Boolean, Location: tok.Start, Label: label, HasLabel: hasLabel, BooleanValue: true},
			next:    tok.End,
		})
	case lexer.FalseLiteral:
		return diag.Ok(node{
			element: &ast.Element{Kind: ast.Boolean, Location: tok.Start, Label: label, HasLabel: hasLabel, BooleanValue: false},
			next:    tok.End,
		})
	case lexer.NullLiteral:
		return diag.Ok(node{
			element: &ast.Element{Kind: ast.Null, Location: tok.Start, Label: label, HasLabel: hasLabel},
			next:    tok.End,
		})
	default:
		return diag.Fail[node](diag.Newf("Unexpected token %s at location %s", tok.Kind, tok.Start))
	}
}

// parseList implements the shared object/array body: [key ":"] element
// ("," [key ":"] element)* close, per spec 4.D.
func parseList(label string, hasLabel bool, v view.View, start, at loc.Location, kind ast.Kind, endTok lexer.Kind, requireKeys bool) diag.Result[node] {
	element := &ast.Element{Kind: kind, Location: start, Label: label, HasLabel: hasLabel}

	first := true
	for {
		if first {
			peekResult := lexer.NextToken(v, at)
			if !peekResult.IsOk() {
				return diag.Fail[node](diag.Wrap(wrapContext(kind, label), peekResult.Err()))
			}
			peek, _ := peekResult.Unwrap()
			if peek.Kind == endTok {
				return diag.Ok(node{element: element, next: peek.End})
			}
		}

		childLabel := ""
		hasChildLabel := false
		if requireKeys {
			keyResult := lexer.NextToken(v, at)
			if !keyResult.IsOk() {
				return diag.Fail[node](diag.Wrap(wrapContext(kind, label), keyResult.Err()))
			}
			key, _ := keyResult.Unwrap()
			if key.Kind != lexer.StringLiteral {
				return diag.Fail[node](diag.Wrapf(
					diag.Newf("Expected string key, got %s", key.Kind),
					"Failed parsing %s at location %s", wrapContext(kind, label), key.Start))
			}
			childLabel = key.Text
			hasChildLabel = true
			at = key.End

			assignResult := lexer.NextToken(v, at)
			if !assignResult.IsOk() {
				return diag.Fail[node](diag.Wrap(wrapContext(kind, label), assignResult.Err()))
			}
			assign, _ := assignResult.Unwrap()
			if assign.Kind != lexer.Assign {
				return diag.Fail[node](diag.Wrapf(
					diag.Newf("Expected ':' after key %q, got %s", childLabel, assign.Kind),
					"Failed parsing %s at location %s", wrapContext(kind, label), assign.Start))
			}
			at = assign.End
		}

		childResult := parseElement(childLabel, hasChildLabel, v, at)
		if !childResult.IsOk() {
			context := "child element"
			if hasChildLabel {
				context = "child element '" + childLabel + "'"
			}
			return diag.Fail[node](diag.Wrapf(childResult.Err(), "Failed parsing %s at location %s", context, at))
		}
		child, _ := childResult.Unwrap()
		element.Children = append(element.Children, child.element)
		at = child.next

		termResult := lexer.NextToken(v, at)
		if !termResult.IsOk() {
			return diag.Fail[node](diag.Wrap(wrapContext(kind, label), termResult.Err()))
		}
		term, _ := termResult.Unwrap()
		switch term.Kind {
		case endTok:
			return diag.Ok(node{element: element, next: term.End})
		case lexer.Separator:
			at = term.End
			first = false
			continue
		default:
			return diag.Fail[node](diag.Wrapf(
				diag.Newf("Unexpected list token %s", term.Kind),
				"Failed parsing list '%s' at location %s", contextLabel(label), term.Start))
		}
	}
}

func wrapContext(kind ast.Kind, label string) string {
	if kind == ast.Object {
		return "object '" + contextLabel(label) + "'"
	}
	return "list '" + contextLabel(label) + "'"
}

func contextLabel(label string) string {
	if label == "" {
		return "$"
	}
	return label
}
