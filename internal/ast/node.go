// Package ast defines the ESTree-compatible node variants produced by the
// parser. Every node carries byte offsets plus a line/column location; the
// set of variants and their field contracts mirror the ESTree convention bit
// for bit, including the "present but null" shape contracts the consumer
// interface depends on.
package ast

// Position is a 1-based line, 0-based column pair measured in UTF-16 code
// units, per ESTree convention.
type Position struct {
	Line   int
	Column int
}

// Loc is the start/end location pair attached to every node.
type Loc struct {
	Start Position
	End   Position
}

// Node is satisfied by every concrete node struct in this package. Dispatch
// on Type is how pkg/estreejson and internal/parser's cover-grammar
// reinterpretation tell variants apart; there is no other runtime
// polymorphism in this tree.
type Node interface {
	Type() string
	Span() (start, end int)
}

// BaseNode carries the byte-offset span and source location shared by every
// node. It is never used on its own.
type BaseNode struct {
	Start int
	End   int
	Loc   Loc
}

func (n BaseNode) Span() (int, int) { return n.Start, n.End }

// Program is the root node. SourceType selects the goal symbol used to
// parse the file and determines which module forms and early errors apply.
type Program struct {
	BaseNode
	SourceType string // "script" or "module"
	Body       []Node
}

func (*Program) Type() string { return "Program" }

// --- Statements -------------------------------------------------------

type BlockStatement struct {
	BaseNode
	Body []Node
}

func (*BlockStatement) Type() string { return "BlockStatement" }

type EmptyStatement struct{ BaseNode }

func (*EmptyStatement) Type() string { return "EmptyStatement" }

type DebuggerStatement struct{ BaseNode }

func (*DebuggerStatement) Type() string { return "DebuggerStatement" }

// ExpressionStatement.Directive is non-empty when the expression is a
// string-literal directive prologue entry (e.g. "use strict").
type ExpressionStatement struct {
	BaseNode
	Expression Node
	Directive  string
}

func (*ExpressionStatement) Type() string { return "ExpressionStatement" }

type IfStatement struct {
	BaseNode
	Test       Node
	Consequent Node
	Alternate  Node // nil when absent
}

func (*IfStatement) Type() string { return "IfStatement" }

type LabeledStatement struct {
	BaseNode
	Label *Identifier
	Body  Node
}

func (*LabeledStatement) Type() string { return "LabeledStatement" }

type BreakStatement struct {
	BaseNode
	Label *Identifier // nil when absent
}

func (*BreakStatement) Type() string { return "BreakStatement" }

type ContinueStatement struct {
	BaseNode
	Label *Identifier // nil when absent
}

func (*ContinueStatement) Type() string { return "ContinueStatement" }

type WithStatement struct {
	BaseNode
	Object Node
	Body   Node
}

func (*WithStatement) Type() string { return "WithStatement" }

type SwitchStatement struct {
	BaseNode
	Discriminant Node
	Cases        []*SwitchCase
}

func (*SwitchStatement) Type() string { return "SwitchStatement" }

type SwitchCase struct {
	BaseNode
	Test       Node // nil for the default case
	Consequent []Node
}

func (*SwitchCase) Type() string { return "SwitchCase" }

type ReturnStatement struct {
	BaseNode
	Argument Node // nil when absent
}

func (*ReturnStatement) Type() string { return "ReturnStatement" }

type ThrowStatement struct {
	BaseNode
	Argument Node
}

func (*ThrowStatement) Type() string { return "ThrowStatement" }

type TryStatement struct {
	BaseNode
	Block     *BlockStatement
	Handler   *CatchClause // nil when absent
	Finalizer *BlockStatement // nil when absent
}

func (*TryStatement) Type() string { return "TryStatement" }

type CatchClause struct {
	BaseNode
	Param Node // nil for a parameter-less catch
	Body  *BlockStatement
}

func (*CatchClause) Type() string { return "CatchClause" }

type WhileStatement struct {
	BaseNode
	Test Node
	Body Node
}

func (*WhileStatement) Type() string { return "WhileStatement" }

type DoWhileStatement struct {
	BaseNode
	Body Node
	Test Node
}

func (*DoWhileStatement) Type() string { return "DoWhileStatement" }

type ForStatement struct {
	BaseNode
	Init   Node // VariableDeclaration or Expression, nil when absent
	Test   Node // nil when absent
	Update Node // nil when absent
	Body   Node
}

func (*ForStatement) Type() string { return "ForStatement" }

type ForInStatement struct {
	BaseNode
	Left  Node // VariableDeclaration or Pattern
	Right Node
	Body  Node
}

func (*ForInStatement) Type() string { return "ForInStatement" }

type ForOfStatement struct {
	BaseNode
	Left  Node
	Right Node
	Body  Node
	Await bool
}

func (*ForOfStatement) Type() string { return "ForOfStatement" }

// --- Declarations -------------------------------------------------------

type VariableDeclaration struct {
	BaseNode
	Kind         string // "var" | "let" | "const"
	Declarations []*VariableDeclarator
}

func (*VariableDeclaration) Type() string { return "VariableDeclaration" }

type VariableDeclarator struct {
	BaseNode
	ID   Node // a Pattern
	Init Node // nil when absent, always present as a field
}

func (*VariableDeclarator) Type() string { return "VariableDeclarator" }

type FunctionDeclaration struct {
	BaseNode
	ID        *Identifier // nil only for a default-exported anonymous function
	Params    []Node
	Body      *BlockStatement
	Generator bool
	Async     bool
}

func (*FunctionDeclaration) Type() string { return "FunctionDeclaration" }

type ClassDeclaration struct {
	BaseNode
	ID         *Identifier // nil only for a default-exported anonymous class
	SuperClass Node        // nil when absent
	Body       *ClassBody
}

func (*ClassDeclaration) Type() string { return "ClassDeclaration" }

// --- Expressions -------------------------------------------------------

type ThisExpression struct{ BaseNode }

func (*ThisExpression) Type() string { return "ThisExpression" }

type Super struct{ BaseNode }

func (*Super) Type() string { return "Super" }

type Identifier struct {
	BaseNode
	Name string
}

func (*Identifier) Type() string { return "Identifier" }

type PrivateIdentifier struct {
	BaseNode
	Name string
}

func (*PrivateIdentifier) Type() string { return "PrivateIdentifier" }

// RegexValue mirrors ESTree's Literal.regex field.
type RegexValue struct {
	Pattern string
	Flags   string
}

// Literal covers string, numeric, boolean, null, regexp, and BigInt
// literals. Exactly one of the payload fields is meaningful, selected by
// Kind; Value/HasValue models ESTree's "value: null" contract for regex and
// BigInt literals (whose runtime value this parser does not construct).
type Literal struct {
	BaseNode
	Kind     LiteralKind
	Raw      string
	Value    any // string, float64, bool, or nil
	HasValue bool
	Regex    *RegexValue // non-nil only when Kind == LiteralRegExp
	BigInt   string      // non-empty only when Kind == LiteralBigInt
}

func (*Literal) Type() string { return "Literal" }

// LiteralKind disambiguates how Literal.Value/Raw should be interpreted;
// it is an internal parser concern, not an ESTree field.
type LiteralKind uint8

const (
	LiteralString LiteralKind = iota
	LiteralNumber
	LiteralBoolean
	LiteralNull
	LiteralRegExp
	LiteralBigInt
)

type ArrayExpression struct {
	BaseNode
	Elements []Node // elements may be nil to represent an elision
}

func (*ArrayExpression) Type() string { return "ArrayExpression" }

type ObjectExpression struct {
	BaseNode
	Properties []Node // *Property or *SpreadElement
}

func (*ObjectExpression) Type() string { return "ObjectExpression" }

type Property struct {
	BaseNode
	Key       Node
	Value     Node
	Kind      string // "init" | "get" | "set"
	Method    bool
	Shorthand bool
	Computed  bool
}

func (*Property) Type() string { return "Property" }

type FunctionExpression struct {
	BaseNode
	ID        *Identifier // nil unless the function expression is named
	Params    []Node
	Body      *BlockStatement
	Generator bool
	Async     bool
}

func (*FunctionExpression) Type() string { return "FunctionExpression" }

// ArrowFunctionExpression.ID is always nil; ESTree keeps the field for
// shape-compatibility with FunctionExpression.
type ArrowFunctionExpression struct {
	BaseNode
	ID         *Identifier
	Params     []Node
	Body       Node // BlockStatement or an Expression when Expression == true
	Expression bool
	Generator  bool
	Async      bool
}

func (*ArrowFunctionExpression) Type() string { return "ArrowFunctionExpression" }

type ClassExpression struct {
	BaseNode
	ID         *Identifier // nil when anonymous
	SuperClass Node        // nil when absent
	Body       *ClassBody
}

func (*ClassExpression) Type() string { return "ClassExpression" }

type TaggedTemplateExpression struct {
	BaseNode
	Tag   Node
	Quasi *TemplateLiteral
}

func (*TaggedTemplateExpression) Type() string { return "TaggedTemplateExpression" }

type TemplateElementValue struct {
	Raw    string
	Cooked string
	// CookedValid is false when the tagged template contains an invalid
	// escape; ESTree represents that as value.cooked == null.
	CookedValid bool
}

type TemplateElement struct {
	BaseNode
	Tail  bool
	Value TemplateElementValue
}

func (*TemplateElement) Type() string { return "TemplateElement" }

type TemplateLiteral struct {
	BaseNode
	Quasis      []*TemplateElement
	Expressions []Node
}

func (*TemplateLiteral) Type() string { return "TemplateLiteral" }

type MemberExpression struct {
	BaseNode
	Object   Node
	Property Node
	Computed bool
	Optional bool
}

func (*MemberExpression) Type() string { return "MemberExpression" }

type CallExpression struct {
	BaseNode
	Callee    Node
	Arguments []Node
	Optional  bool
}

func (*CallExpression) Type() string { return "CallExpression" }

type NewExpression struct {
	BaseNode
	Callee    Node
	Arguments []Node
}

func (*NewExpression) Type() string { return "NewExpression" }

// UpdateExpression models ++/-- in both prefix and postfix position.
type UpdateExpression struct {
	BaseNode
	Operator string
	Argument Node
	Prefix   bool
}

func (*UpdateExpression) Type() string { return "UpdateExpression" }

type AwaitExpression struct {
	BaseNode
	Argument Node
}

func (*AwaitExpression) Type() string { return "AwaitExpression" }

type YieldExpression struct {
	BaseNode
	Argument Node // nil when absent
	Delegate bool
}

func (*YieldExpression) Type() string { return "YieldExpression" }

type UnaryExpression struct {
	BaseNode
	Operator string
	Argument Node
	Prefix   bool // always true in the ECMAScript grammar
}

func (*UnaryExpression) Type() string { return "UnaryExpression" }

type BinaryExpression struct {
	BaseNode
	Operator string
	Left     Node
	Right    Node
}

func (*BinaryExpression) Type() string { return "BinaryExpression" }

type LogicalExpression struct {
	BaseNode
	Operator string // "&&" | "||" | "??"
	Left     Node
	Right    Node
}

func (*LogicalExpression) Type() string { return "LogicalExpression" }

type AssignmentExpression struct {
	BaseNode
	Operator string
	Left     Node // a Pattern once reinterpreted, or an Expression
	Right    Node
}

func (*AssignmentExpression) Type() string { return "AssignmentExpression" }

type ConditionalExpression struct {
	BaseNode
	Test       Node
	Consequent Node
	Alternate  Node
}

func (*ConditionalExpression) Type() string { return "ConditionalExpression" }

type SequenceExpression struct {
	BaseNode
	Expressions []Node
}

func (*SequenceExpression) Type() string { return "SequenceExpression" }

// ChainExpression wraps the outermost optional-chain member/call exactly
// once, per Acorn's wrapping rule (see Open Question (c)).
type ChainExpression struct {
	BaseNode
	Expression Node
}

func (*ChainExpression) Type() string { return "ChainExpression" }

type ImportExpression struct {
	BaseNode
	Source  Node
	Options Node // nil when the second argument form is absent
}

func (*ImportExpression) Type() string { return "ImportExpression" }

// MetaProperty covers new.target and import.meta.
type MetaProperty struct {
	BaseNode
	Meta     *Identifier
	Property *Identifier
}

func (*MetaProperty) Type() string { return "MetaProperty" }

type SpreadElement struct {
	BaseNode
	Argument Node
}

func (*SpreadElement) Type() string { return "SpreadElement" }

// --- Patterns -------------------------------------------------------

type ArrayPattern struct {
	BaseNode
	Elements []Node // elements may be nil to represent an elision
}

func (*ArrayPattern) Type() string { return "ArrayPattern" }

type ObjectPattern struct {
	BaseNode
	Properties []Node // *Property or *RestElement
}

func (*ObjectPattern) Type() string { return "ObjectPattern" }

type RestElement struct {
	BaseNode
	Argument Node
}

func (*RestElement) Type() string { return "RestElement" }

type AssignmentPattern struct {
	BaseNode
	Left  Node
	Right Node
}

func (*AssignmentPattern) Type() string { return "AssignmentPattern" }

// --- Modules -------------------------------------------------------

type ImportAttribute struct {
	BaseNode
	Key   Node // Identifier or string Literal
	Value *Literal
}

func (*ImportAttribute) Type() string { return "ImportAttribute" }

type ImportSpecifier struct {
	BaseNode
	Imported Node // Identifier or string Literal
	Local    *Identifier
}

func (*ImportSpecifier) Type() string { return "ImportSpecifier" }

type ImportDefaultSpecifier struct {
	BaseNode
	Local *Identifier
}

func (*ImportDefaultSpecifier) Type() string { return "ImportDefaultSpecifier" }

type ImportNamespaceSpecifier struct {
	BaseNode
	Local *Identifier
}

func (*ImportNamespaceSpecifier) Type() string { return "ImportNamespaceSpecifier" }

type ImportDeclaration struct {
	BaseNode
	Specifiers []Node // Import{,Default,Namespace}Specifier
	Source     *Literal
	Attributes []*ImportAttribute
}

func (*ImportDeclaration) Type() string { return "ImportDeclaration" }

type ExportSpecifier struct {
	BaseNode
	Local    Node // Identifier or string Literal
	Exported Node // Identifier or string Literal
}

func (*ExportSpecifier) Type() string { return "ExportSpecifier" }

type ExportNamedDeclaration struct {
	BaseNode
	Declaration Node // nil when exporting a specifier list
	Specifiers  []*ExportSpecifier
	Source      *Literal // nil unless this is a re-export
	Attributes  []*ImportAttribute
}

func (*ExportNamedDeclaration) Type() string { return "ExportNamedDeclaration" }

type ExportDefaultDeclaration struct {
	BaseNode
	Declaration Node // Expression, FunctionDeclaration, or ClassDeclaration
}

func (*ExportDefaultDeclaration) Type() string { return "ExportDefaultDeclaration" }

type ExportAllDeclaration struct {
	BaseNode
	Exported   Node // Identifier when "export * as ns from", else nil
	Source     *Literal
	Attributes []*ImportAttribute
}

func (*ExportAllDeclaration) Type() string { return "ExportAllDeclaration" }

// --- Classes -------------------------------------------------------

type ClassBody struct {
	BaseNode
	Body []Node // MethodDefinition, PropertyDefinition, or StaticBlock
}

func (*ClassBody) Type() string { return "ClassBody" }

type MethodDefinition struct {
	BaseNode
	Key      Node // Identifier, PrivateIdentifier, Literal, or computed Expression
	Value    *FunctionExpression
	Kind     string // "constructor" | "method" | "get" | "set"
	Static   bool
	Computed bool
}

func (*MethodDefinition) Type() string { return "MethodDefinition" }

type PropertyDefinition struct {
	BaseNode
	Key      Node
	Value    Node // nil when there is no initializer
	Static   bool
	Computed bool
}

func (*PropertyDefinition) Type() string { return "PropertyDefinition" }

type StaticBlock struct {
	BaseNode
	Body []Node
}

func (*StaticBlock) Type() string { return "StaticBlock" }
