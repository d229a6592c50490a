package lexer

import (
	"github.com/yandex/haversine-workbench/internal/jsonio/loc"
)

type Kind int

const (
	OpenObject Kind = iota
	CloseObject
	OpenArray
	CloseArray
	Assign
	Separator
	IntegerLiteral
	DecimalLiteral
	StringLiteral
	TrueLiteral
	FalseLiteral
	NullLiteral
)

func (k Kind) String() string {
	switch k {
	case OpenObject:
		return "OpenObject"
	case CloseObject:
		return "CloseObject"
	case OpenArray:
		return "OpenArray"
	case CloseArray:
		return "CloseArray"
	case Assign:
		return "Assign"
	case Separator:
		return "Separator"
	case IntegerLiteral:
		return "IntegerLiteral"
	case DecimalLiteral:
		return "DecimalLiteral"
	case StringLiteral:
		return "StringLiteral"
	case TrueLiteral:
		return "TrueLiteral"
	case FalseLiteral:
		return "FalseLiteral"
	case NullLiteral:
		return "NullLiteral"
	default:
		return "Unknown"
	}
}

// Token is a single lexical unit produced by nextToken. Numeric tokens
// carry Number; string tokens carry Text; single-byte operator tokens
// carry Op.
type Token struct {
	Kind   Kind
	Start  loc.Location
	End    loc.Location
	Number float64
	Text   string
	Op     byte
}
