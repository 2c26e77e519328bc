// Package object defines the runtime value model the evaluator produces
// and consumes: a closed set of concrete types sharing the Object
// interface, grounded on the teacher's GoMixObject/GetType/ToString
// split (go-mix/objects/objects.go) but trimmed to the Monkey value set
// spec.md names — no arrays, maps, sets, structs, or enums.
package object

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jrbailey/monkeylang/ast"
)

// ObjectType identifies the concrete type of an Object at runtime, the
// same role the teacher's GoMixType plays for GoMixObject.
type ObjectType string

const (
	IntegerObj     ObjectType = "INTEGER"
	BooleanObj     ObjectType = "BOOLEAN"
	StringObj      ObjectType = "STRING"
	NullObj        ObjectType = "NULL"
	ReturnValueObj ObjectType = "RETURN_VALUE"
	ErrorObj       ObjectType = "ERROR"
	FunctionObj    ObjectType = "FUNCTION"
	BuiltinObj     ObjectType = "BUILTIN"
)

// Object is implemented by every Monkey runtime value. Type reports the
// concrete kind for type-switches in the evaluator; Inspect renders a
// human-readable form for the REPL and error messages.
type Object interface {
	Type() ObjectType
	Inspect() string
}

// Integer is a 64-bit signed integer value.
type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return IntegerObj }
func (i *Integer) Inspect() string  { return fmt.Sprintf("%d", i.Value) }

// Boolean is one of the two singleton truth values.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BooleanObj }
func (b *Boolean) Inspect() string  { return fmt.Sprintf("%t", b.Value) }

// String is an immutable sequence of bytes.
type String struct {
	Value string
}

func (s *String) Type() ObjectType { return StringObj }
func (s *String) Inspect() string  { return s.Value }

// Null is the absence of a value. It is not a singleton: the puts builtin
// allocates a new Null on every call.
type Null struct{}

func (n *Null) Type() ObjectType { return NullObj }
func (n *Null) Inspect() string  { return "null" }

// ReturnValue wraps the operand of a return statement so it can be
// distinguished from an ordinary value while it unwinds through nested
// BlockStatements, stopping only at a function call boundary or Program.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() ObjectType { return ReturnValueObj }
func (rv *ReturnValue) Inspect() string  { return rv.Value.Inspect() }

// Error wraps a runtime error message. Like ReturnValue, it short-circuits
// evaluation until something handles it; here nothing does, and it
// propagates all the way to the top of Eval.
type Error struct {
	Message string
}

func (e *Error) Type() ObjectType { return ErrorObj }
func (e *Error) Inspect() string  { return "ERROR: " + e.Message }

// Function is a closure: its Env is the environment active at the point
// the fn literal was evaluated, captured by reference so that later
// mutations of outer bindings are visible inside the closure.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (f *Function) Type() ObjectType { return FunctionObj }
func (f *Function) Inspect() string {
	var out bytes.Buffer

	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}

	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")

	return out.String()
}

// BuiltinFunction is the signature every built-in callable must satisfy,
// grounded on the teacher's CallbackFunc (go-mix/objects/builtins.go),
// simplified to drop the io.Writer parameter: none of the required
// builtins perform output as a side effect of computing a value, and puts,
// the one builtin that prints, writes to standard output directly.
type BuiltinFunction func(args ...Object) Object

// Builtin adapts a Go function into a callable Monkey value.
type Builtin struct {
	Fn BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BuiltinObj }
func (b *Builtin) Inspect() string  { return "builtin function" }
