// Package estreejson renders internal/ast.Node trees as ESTree-shaped JSON:
// "type" first, then the node's own fields in ESTree's documented order,
// then "start"/"end"/"loc" last. Grounded on the ordered-wire-shape
// approach esbuild's own printer package uses for its JS/JSON output (build
// an explicit wire shape, let the encoder do the byte-level work), using
// goccy/go-json in place of encoding/json for the actual byte encoding.
package estreejson

import (
	"bytes"
	"math"

	gojson "github.com/goccy/go-json"

	"github.com/jimmyhmiller/estree-go/internal/ast"
)

// Marshal renders n as ESTree JSON.
func Marshal(n ast.Node) ([]byte, error) {
	return gojson.Marshal(toWire(n))
}

// MarshalIndent renders n as indented ESTree JSON, convenient for fixture
// files and CLI pretty-printing.
func MarshalIndent(n ast.Node, prefix, indent string) ([]byte, error) {
	w := toWire(n)
	compact, err := gojson.Marshal(w)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := gojson.Indent(&buf, compact, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type pos struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type loc struct {
	Start pos `json:"start"`
	End   pos `json:"end"`
}

// kv is one field of a node, in the order it should be written.
type kv struct {
	key   string
	value any
}

// orderedNode is the wire shape for a single AST node: "type", then its own
// fields in ESTree order, then start/end/loc. Implementing MarshalJSON by
// hand (rather than relying on struct-field order) lets toWire build the
// field list once per node variant without declaring a parallel wire struct
// for all seventy-odd node types.
type orderedNode struct {
	typeName      string
	fields        []kv
	start, end    int
	loc           loc
}

func (o *orderedNode) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeKV := func(first bool, key string, value any) error {
		if !first {
			buf.WriteByte(',')
		}
		kb, err := gojson.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := gojson.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(vb)
		return nil
	}

	if err := writeKV(true, "type", o.typeName); err != nil {
		return nil, err
	}
	for _, f := range o.fields {
		if err := writeKV(false, f.key, f.value); err != nil {
			return nil, err
		}
	}
	if err := writeKV(false, "start", o.start); err != nil {
		return nil, err
	}
	if err := writeKV(false, "end", o.end); err != nil {
		return nil, err
	}
	if err := writeKV(false, "loc", o.loc); err != nil {
		return nil, err
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func node(typeName string, base ast.BaseNode, fields ...kv) *orderedNode {
	return &orderedNode{
		typeName: typeName,
		fields:   fields,
		start:    base.Start,
		end:      base.End,
		loc:      loc{pos{base.Loc.Start.Line, base.Loc.Start.Column}, pos{base.Loc.End.Line, base.Loc.End.Column}},
	}
}

func f(key string, value any) kv { return kv{key, value} }

// toWire converts a Node (and, recursively, its children) into an
// *orderedNode. nil is rendered as JSON null, matching ESTree's "field
// present but null" contract for optional children.
func toWire(n ast.Node) any {
	switch v := n.(type) {
	case nil:
		return nil
	case *ast.Program:
		if v == nil {
			return nil
		}
		return node("Program", v.BaseNode, f("sourceType", v.SourceType), f("body", toWireList(v.Body)))
	case *ast.BlockStatement:
		if v == nil {
			return nil
		}
		return node("BlockStatement", v.BaseNode, f("body", toWireList(v.Body)))
	case *ast.EmptyStatement:
		if v == nil {
			return nil
		}
		return node("EmptyStatement", v.BaseNode)
	case *ast.DebuggerStatement:
		if v == nil {
			return nil
		}
		return node("DebuggerStatement", v.BaseNode)
	case *ast.ExpressionStatement:
		if v == nil {
			return nil
		}
		fields := []kv{f("expression", toWire(v.Expression))}
		if v.Directive != "" {
			fields = append(fields, f("directive", v.Directive))
		}
		return node("ExpressionStatement", v.BaseNode, fields...)
	case *ast.IfStatement:
		if v == nil {
			return nil
		}
		return node("IfStatement", v.BaseNode,
			f("test", toWire(v.Test)), f("consequent", toWire(v.Consequent)), f("alternate", toWire(v.Alternate)))
	case *ast.LabeledStatement:
		if v == nil {
			return nil
		}
		return node("LabeledStatement", v.BaseNode, f("label", toWire(v.Label)), f("body", toWire(v.Body)))
	case *ast.BreakStatement:
		if v == nil {
			return nil
		}
		return node("BreakStatement", v.BaseNode, f("label", toWire(v.Label)))
	case *ast.ContinueStatement:
		if v == nil {
			return nil
		}
		return node("ContinueStatement", v.BaseNode, f("label", toWire(v.Label)))
	case *ast.WithStatement:
		if v == nil {
			return nil
		}
		return node("WithStatement", v.BaseNode, f("object", toWire(v.Object)), f("body", toWire(v.Body)))
	case *ast.SwitchStatement:
		if v == nil {
			return nil
		}
		return node("SwitchStatement", v.BaseNode, f("discriminant", toWire(v.Discriminant)), f("cases", toWireCases(v.Cases)))
	case *ast.SwitchCase:
		if v == nil {
			return nil
		}
		return node("SwitchCase", v.BaseNode, f("test", toWire(v.Test)), f("consequent", toWireList(v.Consequent)))
	case *ast.ReturnStatement:
		if v == nil {
			return nil
		}
		return node("ReturnStatement", v.BaseNode, f("argument", toWire(v.Argument)))
	case *ast.ThrowStatement:
		if v == nil {
			return nil
		}
		return node("ThrowStatement", v.BaseNode, f("argument", toWire(v.Argument)))
	case *ast.TryStatement:
		if v == nil {
			return nil
		}
		return node("TryStatement", v.BaseNode,
			f("block", toWire(v.Block)), f("handler", toWire(v.Handler)), f("finalizer", toWire(v.Finalizer)))
	case *ast.CatchClause:
		if v == nil {
			return nil
		}
		return node("CatchClause", v.BaseNode, f("param", toWire(v.Param)), f("body", toWire(v.Body)))
	case *ast.WhileStatement:
		if v == nil {
			return nil
		}
		return node("WhileStatement", v.BaseNode, f("test", toWire(v.Test)), f("body", toWire(v.Body)))
	case *ast.DoWhileStatement:
		if v == nil {
			return nil
		}
		return node("DoWhileStatement", v.BaseNode, f("body", toWire(v.Body)), f("test", toWire(v.Test)))
	case *ast.ForStatement:
		if v == nil {
			return nil
		}
		return node("ForStatement", v.BaseNode,
			f("init", toWire(v.Init)), f("test", toWire(v.Test)), f("update", toWire(v.Update)), f("body", toWire(v.Body)))
	case *ast.ForInStatement:
		if v == nil {
			return nil
		}
		return node("ForInStatement", v.BaseNode, f("left", toWire(v.Left)), f("right", toWire(v.Right)), f("body", toWire(v.Body)))
	case *ast.ForOfStatement:
		if v == nil {
			return nil
		}
		return node("ForOfStatement", v.BaseNode,
			f("left", toWire(v.Left)), f("right", toWire(v.Right)), f("body", toWire(v.Body)), f("await", v.Await))
	case *ast.VariableDeclaration:
		if v == nil {
			return nil
		}
		return node("VariableDeclaration", v.BaseNode, f("declarations", toWireDeclarators(v.Declarations)), f("kind", v.Kind))
	case *ast.VariableDeclarator:
		if v == nil {
			return nil
		}
		return node("VariableDeclarator", v.BaseNode, f("id", toWire(v.ID)), f("init", toWire(v.Init)))
	case *ast.FunctionDeclaration:
		if v == nil {
			return nil
		}
		return node("FunctionDeclaration", v.BaseNode,
			f("id", toWire(v.ID)), f("params", toWireList(v.Params)), f("body", toWire(v.Body)),
			f("generator", v.Generator), f("async", v.Async))
	case *ast.ClassDeclaration:
		if v == nil {
			return nil
		}
		return node("ClassDeclaration", v.BaseNode, f("id", toWire(v.ID)), f("superClass", toWire(v.SuperClass)), f("body", toWire(v.Body)))
	case *ast.ThisExpression:
		if v == nil {
			return nil
		}
		return node("ThisExpression", v.BaseNode)
	case *ast.Super:
		if v == nil {
			return nil
		}
		return node("Super", v.BaseNode)
	case *ast.Identifier:
		if v == nil {
			return nil
		}
		return node("Identifier", v.BaseNode, f("name", v.Name))
	case *ast.PrivateIdentifier:
		if v == nil {
			return nil
		}
		return node("PrivateIdentifier", v.BaseNode, f("name", v.Name))
	case *ast.Literal:
		if v == nil {
			return nil
		}
		return literalWire(v)
	case *ast.ArrayExpression:
		if v == nil {
			return nil
		}
		return node("ArrayExpression", v.BaseNode, f("elements", toWireList(v.Elements)))
	case *ast.ObjectExpression:
		if v == nil {
			return nil
		}
		return node("ObjectExpression", v.BaseNode, f("properties", toWireList(v.Properties)))
	case *ast.Property:
		if v == nil {
			return nil
		}
		return node("Property", v.BaseNode,
			f("key", toWire(v.Key)), f("value", toWire(v.Value)), f("kind", v.Kind),
			f("method", v.Method), f("shorthand", v.Shorthand), f("computed", v.Computed))
	case *ast.FunctionExpression:
		if v == nil {
			return nil
		}
		return node("FunctionExpression", v.BaseNode,
			f("id", toWire(v.ID)), f("params", toWireList(v.Params)), f("body", toWire(v.Body)),
			f("generator", v.Generator), f("async", v.Async))
	case *ast.ArrowFunctionExpression:
		if v == nil {
			return nil
		}
		return node("ArrowFunctionExpression", v.BaseNode,
			f("id", toWire(v.ID)), f("params", toWireList(v.Params)), f("body", toWire(v.Body)),
			f("expression", v.Expression), f("generator", v.Generator), f("async", v.Async))
	case *ast.ClassExpression:
		if v == nil {
			return nil
		}
		return node("ClassExpression", v.BaseNode, f("id", toWire(v.ID)), f("superClass", toWire(v.SuperClass)), f("body", toWire(v.Body)))
	case *ast.TaggedTemplateExpression:
		if v == nil {
			return nil
		}
		return node("TaggedTemplateExpression", v.BaseNode, f("tag", toWire(v.Tag)), f("quasi", toWire(v.Quasi)))
	case *ast.TemplateElement:
		if v == nil {
			return nil
		}
		return node("TemplateElement", v.BaseNode, f("tail", v.Tail), f("value", templateElementValueWire(v.Value)))
	case *ast.TemplateLiteral:
		if v == nil {
			return nil
		}
		return node("TemplateLiteral", v.BaseNode, f("expressions", toWireList(v.Expressions)), f("quasis", toWireQuasis(v.Quasis)))
	case *ast.MemberExpression:
		if v == nil {
			return nil
		}
		return node("MemberExpression", v.BaseNode,
			f("object", toWire(v.Object)), f("property", toWire(v.Property)), f("computed", v.Computed), f("optional", v.Optional))
	case *ast.CallExpression:
		if v == nil {
			return nil
		}
		return node("CallExpression", v.BaseNode,
			f("callee", toWire(v.Callee)), f("arguments", toWireList(v.Arguments)), f("optional", v.Optional))
	case *ast.NewExpression:
		if v == nil {
			return nil
		}
		return node("NewExpression", v.BaseNode, f("callee", toWire(v.Callee)), f("arguments", toWireList(v.Arguments)))
	case *ast.UpdateExpression:
		if v == nil {
			return nil
		}
		return node("UpdateExpression", v.BaseNode, f("operator", v.Operator), f("argument", toWire(v.Argument)), f("prefix", v.Prefix))
	case *ast.AwaitExpression:
		if v == nil {
			return nil
		}
		return node("AwaitExpression", v.BaseNode, f("argument", toWire(v.Argument)))
	case *ast.YieldExpression:
		if v == nil {
			return nil
		}
		return node("YieldExpression", v.BaseNode, f("argument", toWire(v.Argument)), f("delegate", v.Delegate))
	case *ast.UnaryExpression:
		if v == nil {
			return nil
		}
		return node("UnaryExpression", v.BaseNode, f("operator", v.Operator), f("argument", toWire(v.Argument)), f("prefix", v.Prefix))
	case *ast.BinaryExpression:
		if v == nil {
			return nil
		}
		return node("BinaryExpression", v.BaseNode, f("operator", v.Operator), f("left", toWire(v.Left)), f("right", toWire(v.Right)))
	case *ast.LogicalExpression:
		if v == nil {
			return nil
		}
		return node("LogicalExpression", v.BaseNode, f("operator", v.Operator), f("left", toWire(v.Left)), f("right", toWire(v.Right)))
	case *ast.AssignmentExpression:
		if v == nil {
			return nil
		}
		return node("AssignmentExpression", v.BaseNode, f("operator", v.Operator), f("left", toWire(v.Left)), f("right", toWire(v.Right)))
	case *ast.ConditionalExpression:
		if v == nil {
			return nil
		}
		return node("ConditionalExpression", v.BaseNode,
			f("test", toWire(v.Test)), f("consequent", toWire(v.Consequent)), f("alternate", toWire(v.Alternate)))
	case *ast.SequenceExpression:
		if v == nil {
			return nil
		}
		return node("SequenceExpression", v.BaseNode, f("expressions", toWireList(v.Expressions)))
	case *ast.ChainExpression:
		if v == nil {
			return nil
		}
		return node("ChainExpression", v.BaseNode, f("expression", toWire(v.Expression)))
	case *ast.ImportExpression:
		if v == nil {
			return nil
		}
		fields := []kv{f("source", toWire(v.Source))}
		if v.Options != nil {
			fields = append(fields, f("options", toWire(v.Options)))
		}
		return node("ImportExpression", v.BaseNode, fields...)
	case *ast.MetaProperty:
		if v == nil {
			return nil
		}
		return node("MetaProperty", v.BaseNode, f("meta", toWire(v.Meta)), f("property", toWire(v.Property)))
	case *ast.SpreadElement:
		if v == nil {
			return nil
		}
		return node("SpreadElement", v.BaseNode, f("argument", toWire(v.Argument)))
	case *ast.ArrayPattern:
		if v == nil {
			return nil
		}
		return node("ArrayPattern", v.BaseNode, f("elements", toWireList(v.Elements)))
	case *ast.ObjectPattern:
		if v == nil {
			return nil
		}
		return node("ObjectPattern", v.BaseNode, f("properties", toWireList(v.Properties)))
	case *ast.RestElement:
		if v == nil {
			return nil
		}
		return node("RestElement", v.BaseNode, f("argument", toWire(v.Argument)))
	case *ast.AssignmentPattern:
		if v == nil {
			return nil
		}
		return node("AssignmentPattern", v.BaseNode, f("left", toWire(v.Left)), f("right", toWire(v.Right)))
	case *ast.ImportAttribute:
		if v == nil {
			return nil
		}
		return node("ImportAttribute", v.BaseNode, f("key", toWire(v.Key)), f("value", toWire(v.Value)))
	case *ast.ImportSpecifier:
		if v == nil {
			return nil
		}
		return node("ImportSpecifier", v.BaseNode, f("imported", toWire(v.Imported)), f("local", toWire(v.Local)))
	case *ast.ImportDefaultSpecifier:
		if v == nil {
			return nil
		}
		return node("ImportDefaultSpecifier", v.BaseNode, f("local", toWire(v.Local)))
	case *ast.ImportNamespaceSpecifier:
		if v == nil {
			return nil
		}
		return node("ImportNamespaceSpecifier", v.BaseNode, f("local", toWire(v.Local)))
	case *ast.ImportDeclaration:
		if v == nil {
			return nil
		}
		return node("ImportDeclaration", v.BaseNode,
			f("specifiers", toWireList(v.Specifiers)), f("source", toWire(v.Source)), f("attributes", toWireAttrs(v.Attributes)))
	case *ast.ExportSpecifier:
		if v == nil {
			return nil
		}
		return node("ExportSpecifier", v.BaseNode, f("local", toWire(v.Local)), f("exported", toWire(v.Exported)))
	case *ast.ExportNamedDeclaration:
		if v == nil {
			return nil
		}
		return node("ExportNamedDeclaration", v.BaseNode,
			f("declaration", toWire(v.Declaration)), f("specifiers", toWireSpecifiers(v.Specifiers)),
			f("source", toWire(v.Source)), f("attributes", toWireAttrs(v.Attributes)))
	case *ast.ExportDefaultDeclaration:
		if v == nil {
			return nil
		}
		return node("ExportDefaultDeclaration", v.BaseNode, f("declaration", toWire(v.Declaration)))
	case *ast.ExportAllDeclaration:
		if v == nil {
			return nil
		}
		return node("ExportAllDeclaration", v.BaseNode,
			f("exported", toWire(v.Exported)), f("source", toWire(v.Source)), f("attributes", toWireAttrs(v.Attributes)))
	case *ast.ClassBody:
		if v == nil {
			return nil
		}
		return node("ClassBody", v.BaseNode, f("body", toWireList(v.Body)))
	case *ast.MethodDefinition:
		if v == nil {
			return nil
		}
		return node("MethodDefinition", v.BaseNode,
			f("key", toWire(v.Key)), f("value", toWire(v.Value)), f("kind", v.Kind), f("static", v.Static), f("computed", v.Computed))
	case *ast.PropertyDefinition:
		if v == nil {
			return nil
		}
		return node("PropertyDefinition", v.BaseNode,
			f("key", toWire(v.Key)), f("value", toWire(v.Value)), f("static", v.Static), f("computed", v.Computed))
	case *ast.StaticBlock:
		if v == nil {
			return nil
		}
		return node("StaticBlock", v.BaseNode, f("body", toWireList(v.Body)))
	default:
		return nil
	}
}

func toWireList(nodes []ast.Node) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = toWire(n)
	}
	return out
}

func toWireCases(cases []*ast.SwitchCase) []any {
	out := make([]any, len(cases))
	for i, c := range cases {
		out[i] = toWire(c)
	}
	return out
}

func toWireDeclarators(decls []*ast.VariableDeclarator) []any {
	out := make([]any, len(decls))
	for i, d := range decls {
		out[i] = toWire(d)
	}
	return out
}

func toWireQuasis(elems []*ast.TemplateElement) []any {
	out := make([]any, len(elems))
	for i, e := range elems {
		out[i] = toWire(e)
	}
	return out
}

func toWireAttrs(attrs []*ast.ImportAttribute) []any {
	out := make([]any, len(attrs))
	for i, a := range attrs {
		out[i] = toWire(a)
	}
	return out
}

func toWireSpecifiers(specs []*ast.ExportSpecifier) []any {
	out := make([]any, len(specs))
	for i, s := range specs {
		out[i] = toWire(s)
	}
	return out
}

type templateElementValue struct {
	Raw    string `json:"raw"`
	Cooked any    `json:"cooked"`
}

func templateElementValueWire(v ast.TemplateElementValue) templateElementValue {
	if !v.CookedValid {
		return templateElementValue{Raw: v.Raw, Cooked: nil}
	}
	return templateElementValue{Raw: v.Raw, Cooked: v.Cooked}
}

// literalWire renders a Literal per its Kind, matching ESTree's
// JSON.stringify-style numeric rendering and the regex/BigInt
// "value: null, raw carries the source text" contract.
func literalWire(v *ast.Literal) any {
	switch v.Kind {
	case ast.LiteralRegExp:
		return node("Literal", v.BaseNode,
			f("value", nil), f("raw", v.Raw),
			f("regex", struct {
				Pattern string `json:"pattern"`
				Flags   string `json:"flags"`
			}{v.Regex.Pattern, v.Regex.Flags}))
	case ast.LiteralBigInt:
		return node("Literal", v.BaseNode, f("value", nil), f("raw", v.Raw), f("bigint", v.BigInt))
	case ast.LiteralNumber:
		return node("Literal", v.BaseNode, f("value", jsonNumber(v.Value.(float64))), f("raw", v.Raw))
	default:
		return node("Literal", v.BaseNode, f("value", v.Value), f("raw", v.Raw))
	}
}

// jsonNumber renders a float64 the way JSON.stringify would: Infinity/NaN
// have no JSON representation, so this parser emits null and leaves the
// original text available in Literal.Raw.
func jsonNumber(fv float64) any {
	if math.IsInf(fv, 0) || math.IsNaN(fv) {
		return nil
	}
	return fv
}
