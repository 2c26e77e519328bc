package ast

import (
	"fmt"
	"strings"
)

// Dump renders an indented, human-readable tree of node for debugging,
// in the spirit of the teacher's PrintingVisitor (go-mix's main.go):
// each node is printed on its own line with its children nested beneath
// it. Unlike the teacher's visitor, which declares one Visit method per
// concrete node type, Dump walks the small Monkey AST with a single type
// switch — the node family here is an order of magnitude smaller than
// go-mix's, so a dedicated visitor interface would add indirection
// without adding clarity.
func Dump(node Node) string {
	var b strings.Builder
	dump(&b, node, 0)
	return b.String()
}

func dump(b *strings.Builder, node Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := node.(type) {
	case *Program:
		fmt.Fprintf(b, "%sProgram\n", indent)
		for _, s := range n.Statements {
			dump(b, s, depth+1)
		}
	case *LetStatement:
		fmt.Fprintf(b, "%sLetStatement %s\n", indent, n.Name.Value)
		dump(b, n.Value, depth+1)
	case *ReturnStatement:
		fmt.Fprintf(b, "%sReturnStatement\n", indent)
		dump(b, n.ReturnValue, depth+1)
	case *ExpressionStatement:
		dump(b, n.Expression, depth)
	case *BlockStatement:
		fmt.Fprintf(b, "%sBlockStatement\n", indent)
		for _, s := range n.Statements {
			dump(b, s, depth+1)
		}
	case *Identifier:
		fmt.Fprintf(b, "%sIdentifier(%s)\n", indent, n.Value)
	case *IntegerLiteral:
		fmt.Fprintf(b, "%sIntegerLiteral(%d)\n", indent, n.Value)
	case *StringLiteral:
		fmt.Fprintf(b, "%sStringLiteral(%q)\n", indent, n.Value)
	case *Boolean:
		fmt.Fprintf(b, "%sBoolean(%t)\n", indent, n.Value)
	case *PrefixExpression:
		fmt.Fprintf(b, "%sPrefixExpression(%s)\n", indent, n.Operator)
		dump(b, n.Right, depth+1)
	case *InfixExpression:
		fmt.Fprintf(b, "%sInfixExpression(%s)\n", indent, n.Operator)
		dump(b, n.Left, depth+1)
		dump(b, n.Right, depth+1)
	case *IfExpression:
		fmt.Fprintf(b, "%sIfExpression\n", indent)
		dump(b, n.Condition, depth+1)
		dump(b, n.Consequence, depth+1)
		if n.Alternative != nil {
			dump(b, n.Alternative, depth+1)
		}
	case *FunctionLiteral:
		names := make([]string, 0, len(n.Parameters))
		for _, p := range n.Parameters {
			names = append(names, p.Value)
		}
		fmt.Fprintf(b, "%sFunctionLiteral(%s)\n", indent, strings.Join(names, ", "))
		dump(b, n.Body, depth+1)
	case *CallExpression:
		fmt.Fprintf(b, "%sCallExpression\n", indent)
		dump(b, n.Function, depth+1)
		for _, a := range n.Arguments {
			dump(b, a, depth+1)
		}
	default:
		fmt.Fprintf(b, "%s%T\n", indent, n)
	}
}
