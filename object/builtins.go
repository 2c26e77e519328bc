package object

import "fmt"

// Builtins is the registry of functions available in every environment
// without an explicit `let`. Grounded on the teacher's Builtins slice
// (go-mix/objects/builtins.go init()), but keyed by name in a map since
// Monkey's builtins are looked up by Identifier, not dispatched as a
// method table. len is the one spec.md requires; puts and type are
// additions in its idiom (puts mirrors the teacher's println, type
// mirrors its typeofFunc).
var Builtins = map[string]*Builtin{
	"len": {Fn: func(args ...Object) Object {
		if len(args) != 1 {
			return newError("wrong number of arguments. got=%d, want=1", len(args))
		}
		switch arg := args[0].(type) {
		case *String:
			return &Integer{Value: int64(len(arg.Value))}
		default:
			return newError("argument to \"len\" not supported, got %s", args[0].Type())
		}
	}},
	"puts": {Fn: func(args ...Object) Object {
		for _, arg := range args {
			fmt.Println(arg.Inspect())
		}
		return &Null{}
	}},
	"type": {Fn: func(args ...Object) Object {
		if len(args) != 1 {
			return newError("wrong number of arguments. got=%d, want=1", len(args))
		}
		return &String{Value: string(args[0].Type())}
	}},
}

func newError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}
