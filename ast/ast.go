// Package ast defines the expression-language abstract syntax tree: a
// tagged sum type of expression nodes plus the single-child root wrapper
// returned by every parser entry point.
//
// Nodes are created once by the parser and never mutated afterward; the
// tree is a strict parent-to-child structure with no sharing and no
// cycles. The package performs no normalization, folding, or identifier
// resolution — it is a pure data model.
package ast

import "github.com/mvlabs/exprc/token"

// Kind tags the variant of a [Node].
type Kind int

const (
	Null Kind = iota
	Bool
	Int
	Float
	Str
	List
	Map
	Var
	DataRef
	DataRefKey
	DataRefIndex
	Global
	Call
	Op
)

var kindName = map[Kind]string{
	Null:         "Null",
	Bool:         "Bool",
	Int:          "Int",
	Float:        "Float",
	Str:          "Str",
	List:         "List",
	Map:          "Map",
	Var:          "Var",
	DataRef:      "DataRef",
	DataRefKey:   "DataRefKey",
	DataRefIndex: "DataRefIndex",
	Global:       "Global",
	Call:         "Call",
	Op:           "Op",
}

// String returns the node kind's display name.
func (k Kind) String() string {
	if s, ok := kindName[k]; ok {
		return s
	}

	return "Unknown"
}

// OpKind identifies one of the fixed-arity operator variants. Operator
// identity implies both arity and precedence.
type OpKind int

const (
	Neg OpKind = iota // unary -
	Not               // unary not
	Mul
	Div
	Mod
	Add
	Sub
	Lt
	Gt
	Le
	Ge
	Eq
	Ne
	And
	Or
	Cond // ternary ?:
)

var opName = map[OpKind]string{
	Neg: "Neg",
	Not: "Not",
	Mul: "Mul",
	Div: "Div",
	Mod: "Mod",
	Add: "Add",
	Sub: "Sub",
	Lt:  "Lt",
	Gt:  "Gt",
	Le:  "Le",
	Ge:  "Ge",
	Eq:  "Eq",
	Ne:  "Ne",
	And: "And",
	Or:  "Or",
	Cond: "Cond",
}

// String returns the operator's display name.
func (o OpKind) String() string {
	if s, ok := opName[o]; ok {
		return s
	}

	return "Unknown"
}

// Arity returns the fixed number of children an operator node of this kind
// owns.
func (o OpKind) Arity() int {
	switch o {
	case Neg, Not:
		return 1
	case Cond:
		return 3
	default:
		return 2
	}
}

// Node is one variant of the expression AST. Only the fields relevant to
// Kind (and, for Op nodes, OpKind) are meaningful; the rest are zero.
type Node struct {
	Kind     Kind
	Span     token.Span
	Children []*Node

	// Leaf payloads.
	BoolValue  bool
	IntValue   int64
	FloatValue float64
	StrValue   string

	// Var, Global, Call, DataRefKey: identifier text. For Global it is the
	// full dotted name joined verbatim.
	Name string

	// DataRefIndex.
	IndexValue uint32

	// DataRef.
	Injected bool

	// Op.
	OpKind OpKind
}

func leaf(kind Kind, span token.Span) *Node {
	return &Node{Kind: kind, Span: span}
}

// NewNull returns a Null leaf node.
func NewNull(span token.Span) *Node { return leaf(Null, span) }

// NewBool returns a Boolean leaf node.
func NewBool(v bool, span token.Span) *Node {
	n := leaf(Bool, span)
	n.BoolValue = v

	return n
}

// NewInt returns an Integer leaf node.
func NewInt(v int64, span token.Span) *Node {
	n := leaf(Int, span)
	n.IntValue = v

	return n
}

// NewFloat returns a Float leaf node.
func NewFloat(v float64, span token.Span) *Node {
	n := leaf(Float, span)
	n.FloatValue = v

	return n
}

// NewStr returns a String leaf node holding the already-unescaped value.
func NewStr(v string, span token.Span) *Node {
	n := leaf(Str, span)
	n.StrValue = v

	return n
}

// NewList returns a ListLiteral node with elements in source order.
func NewList(elements []*Node, span token.Span) *Node {
	return &Node{Kind: List, Span: span, Children: elements}
}

// NewMap returns a MapLiteral node. children alternates key, value, key,
// value, ...; len(children) is always even.
func NewMap(children []*Node, span token.Span) *Node {
	return &Node{Kind: Map, Span: span, Children: children}
}

// NewVar returns a Var node. Callers are responsible for rejecting the
// reserved name "ij" before constructing this node.
func NewVar(name string, span token.Span) *Node {
	n := leaf(Var, span)
	n.Name = name

	return n
}

// NewDataRef returns a DataRef node. steps is the sequence of access-step
// children (DataRefKey, DataRefIndex, or an arbitrary bracket-index
// expression); its first element is always a DataRefKey.
func NewDataRef(injected bool, steps []*Node, span token.Span) *Node {
	return &Node{Kind: DataRef, Span: span, Children: steps, Injected: injected}
}

// NewDataRefKey returns a dotted-key access step.
func NewDataRefKey(name string, span token.Span) *Node {
	n := leaf(DataRefKey, span)
	n.Name = name

	return n
}

// NewDataRefIndex returns a dotted-index access step.
func NewDataRefIndex(index uint32, span token.Span) *Node {
	n := leaf(DataRefIndex, span)
	n.IndexValue = index

	return n
}

// NewGlobal returns a Global node carrying the full dotted name.
func NewGlobal(name string, span token.Span) *Node {
	n := leaf(Global, span)
	n.Name = name

	return n
}

// NewCall returns a FunctionCall node.
func NewCall(name string, args []*Node, span token.Span) *Node {
	return &Node{Kind: Call, Span: span, Children: args, Name: name}
}

// NewOp returns an operator node. The caller must supply exactly
// op.Arity() children.
func NewOp(op OpKind, children []*Node, span token.Span) *Node {
	return &Node{Kind: Op, Span: span, Children: children, OpKind: op}
}

// Root is the single-child wrapper every parser entry point returns. It
// exists so a later pass may replace the root expression in place without
// the caller having to track where the root pointer lives.
type Root struct {
	Child *Node
}

// NewRoot wraps child in a Root.
func NewRoot(child *Node) *Root { return &Root{Child: child} }

// Span returns the span of the root's child.
func (r *Root) Span() token.Span { return r.Child.Span }
