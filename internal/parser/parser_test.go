package parser

import (
	"testing"

	"jsxwrap/internal/ast"
	"jsxwrap/internal/diag"
	"jsxwrap/internal/lexer"
	"jsxwrap/internal/source"
)

func parseSource(t *testing.T, src string) (*ast.File, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.jsx", []byte(src))
	file := fs.Get(id)

	bag := diag.NewBag(50)
	reporter := &diag.BagReporter{Bag: bag}

	toks := lexer.Tokenize(file, lexer.Options{Reporter: reporter})
	p := New(file, toks, Options{Reporter: reporter})
	return p.ParseFile(), bag
}

func mustParse(t *testing.T, src string) *ast.File {
	t.Helper()
	f, bag := parseSource(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors for %q: %+v", src, bag.Items())
	}
	return f
}

func TestParseVarDecl(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKw    ast.DeclKeyword
		wantDecls int
		wantInit  bool
	}{
		{"const with init", "const x = 1;", ast.DeclConst, 1, true},
		{"let without init", "let y;", ast.DeclLet, 1, false},
		{"var multiple declarators", "var a = 1, b = 2;", ast.DeclVar, 2, true},
		{"const jsx init", "const el = <div/>;", ast.DeclConst, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustParse(t, tt.input)
			if len(f.Stmts) != 1 {
				t.Fatalf("got %d statements, want 1", len(f.Stmts))
			}
			decl, ok := f.Stmts[0].(*ast.VarDeclStmt)
			if !ok {
				t.Fatalf("statement is %T, want *ast.VarDeclStmt", f.Stmts[0])
			}
			if decl.Keyword != tt.wantKw {
				t.Errorf("keyword = %v, want %v", decl.Keyword, tt.wantKw)
			}
			if len(decl.Decls) != tt.wantDecls {
				t.Fatalf("got %d declarators, want %d", len(decl.Decls), tt.wantDecls)
			}
			if (decl.Decls[0].Init != nil) != tt.wantInit {
				t.Errorf("init presence = %v, want %v", decl.Decls[0].Init != nil, tt.wantInit)
			}
		})
	}
}

func TestParseFuncDecl(t *testing.T) {
	f := mustParse(t, "function render(props, extra) {\n  return <div>hi</div>;\n}")
	if len(f.Stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(f.Stmts))
	}
	decl, ok := f.Stmts[0].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("statement is %T, want *ast.FuncDecl", f.Stmts[0])
	}
	if decl.Name == nil || decl.Name.Name != "render" {
		t.Fatalf("name = %+v, want render", decl.Name)
	}
	if len(decl.Params) != 2 || decl.Params[0].Name != "props" || decl.Params[1].Name != "extra" {
		t.Fatalf("params = %+v", decl.Params)
	}
	if decl.Body == nil || len(decl.Body.Stmts) != 1 {
		t.Fatalf("body = %+v", decl.Body)
	}
	if _, ok := decl.Body.Stmts[0].(*ast.ReturnStmt); !ok {
		t.Fatalf("body statement is %T, want *ast.ReturnStmt", decl.Body.Stmts[0])
	}
}

func TestParseFuncDeclNoParams(t *testing.T) {
	f := mustParse(t, "function f() { return 1; }")
	decl := f.Stmts[0].(*ast.FuncDecl)
	if len(decl.Params) != 0 {
		t.Fatalf("params = %+v, want none", decl.Params)
	}
}

func TestParseFuncDeclMissingBody(t *testing.T) {
	_, bag := parseSource(t, "function f()")
	if !bag.HasErrors() {
		t.Fatal("expected a parse error for a function without a body")
	}
}

func TestGroupingParensProduceNoNode(t *testing.T) {
	f := mustParse(t, "const x = (<div/>);")
	decl := f.Stmts[0].(*ast.VarDeclStmt).Decls[0]

	el, ok := decl.Init.(*ast.JSXElement)
	if !ok {
		t.Fatalf("init is %T, want *ast.JSXElement", decl.Init)
	}
	// the element's span excludes the parens
	if el.Loc.Start != 11 || el.Loc.End != 17 {
		t.Errorf("element span = %v, want 11-17", el.Loc)
	}
}

func TestParseArrowFunc(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantParams int
		wantBlock  bool
	}{
		{"no params expr body", "const f = () => 1;", 0, false},
		{"single bare param", "const f = x => x;", 1, false},
		{"two params", "const f = (a, b) => a;", 2, false},
		{"block body", "const f = () => { return 1; };", 0, true},
		{"jsx body", "const f = () => <div/>;", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustParse(t, tt.input)
			decl := f.Stmts[0].(*ast.VarDeclStmt).Decls[0]
			arrow, ok := decl.Init.(*ast.ArrowFunc)
			if !ok {
				t.Fatalf("init is %T, want *ast.ArrowFunc", decl.Init)
			}
			if len(arrow.Params) != tt.wantParams {
				t.Errorf("got %d params, want %d", len(arrow.Params), tt.wantParams)
			}
			_, isBlock := arrow.Body.(*ast.BlockStmt)
			if isBlock != tt.wantBlock {
				t.Errorf("block body = %v, want %v", isBlock, tt.wantBlock)
			}
			if tt.wantBlock && arrow.ExprBody() != nil {
				t.Error("ExprBody should be nil for block bodies")
			}
		})
	}
}

func TestParseConditionalAndLogical(t *testing.T) {
	f := mustParse(t, "const x = a ? b : c || d;")
	decl := f.Stmts[0].(*ast.VarDeclStmt).Decls[0]
	cond, ok := decl.Init.(*ast.CondExpr)
	if !ok {
		t.Fatalf("init is %T, want *ast.CondExpr", decl.Init)
	}
	if _, ok := cond.Alternate.(*ast.LogicalExpr); !ok {
		t.Errorf("alternate is %T, want *ast.LogicalExpr", cond.Alternate)
	}
}

func TestParseJSXElement(t *testing.T) {
	f := mustParse(t, `const el = <Panel title="hi" active data={value}><span>text</span>{rest}</Panel>;`)
	decl := f.Stmts[0].(*ast.VarDeclStmt).Decls[0]
	el, ok := decl.Init.(*ast.JSXElement)
	if !ok {
		t.Fatalf("init is %T, want *ast.JSXElement", decl.Init)
	}
	if el.Name != "Panel" {
		t.Errorf("name = %q, want Panel", el.Name)
	}
	if len(el.Attrs) != 3 {
		t.Fatalf("got %d attrs, want 3", len(el.Attrs))
	}

	title := el.Attrs[0].(*ast.JSXAttr)
	if title.Name != "title" {
		t.Errorf("first attr = %q, want title", title.Name)
	}
	if _, ok := title.Value.(*ast.BasicLit); !ok {
		t.Errorf("title value is %T, want *ast.BasicLit", title.Value)
	}

	active := el.Attrs[1].(*ast.JSXAttr)
	if active.Value != nil {
		t.Error("bare attribute should have nil value")
	}

	data := el.Attrs[2].(*ast.JSXAttr)
	if _, ok := data.Value.(*ast.JSXExprContainer); !ok {
		t.Errorf("data value is %T, want *ast.JSXExprContainer", data.Value)
	}

	if len(el.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(el.Children))
	}
	if _, ok := el.Children[0].(*ast.JSXElement); !ok {
		t.Errorf("first child is %T, want *ast.JSXElement", el.Children[0])
	}
	if _, ok := el.Children[1].(*ast.JSXExprContainer); !ok {
		t.Errorf("second child is %T, want *ast.JSXExprContainer", el.Children[1])
	}
}

func TestParseJSXSelfClosingAndFragment(t *testing.T) {
	f := mustParse(t, "const a = <br/>;\nconst b = <>{x}</>;")

	first := f.Stmts[0].(*ast.VarDeclStmt).Decls[0].Init.(*ast.JSXElement)
	if !first.SelfClosing {
		t.Error("expected self-closing element")
	}

	frag, ok := f.Stmts[1].(*ast.VarDeclStmt).Decls[0].Init.(*ast.JSXFragment)
	if !ok {
		t.Fatalf("second init is %T, want *ast.JSXFragment", f.Stmts[1].(*ast.VarDeclStmt).Decls[0].Init)
	}
	if len(frag.Children) != 1 {
		t.Errorf("fragment has %d children, want 1", len(frag.Children))
	}
}

func TestParseJSXMemberTagAndSpread(t *testing.T) {
	f := mustParse(t, "const el = <Foo.Bar {...props}/>;")
	el := f.Stmts[0].(*ast.VarDeclStmt).Decls[0].Init.(*ast.JSXElement)
	if el.Name != "Foo.Bar" {
		t.Errorf("name = %q, want Foo.Bar", el.Name)
	}
	if len(el.Attrs) != 1 {
		t.Fatalf("got %d attrs, want 1", len(el.Attrs))
	}
	if _, ok := el.Attrs[0].(*ast.JSXSpreadAttr); !ok {
		t.Errorf("attr is %T, want *ast.JSXSpreadAttr", el.Attrs[0])
	}
}

func TestParseReturnAndAssignment(t *testing.T) {
	f := mustParse(t, "const f = () => {\n  el = <div/>;\n  return el;\n};")
	arrow := f.Stmts[0].(*ast.VarDeclStmt).Decls[0].Init.(*ast.ArrowFunc)
	block := arrow.Body.(*ast.BlockStmt)
	if len(block.Stmts) != 2 {
		t.Fatalf("got %d statements in block, want 2", len(block.Stmts))
	}

	assign, ok := block.Stmts[0].(*ast.ExprStmt).X.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("first stmt is not an assignment")
	}
	if _, ok := assign.Right.(*ast.JSXElement); !ok {
		t.Errorf("assignment right is %T, want *ast.JSXElement", assign.Right)
	}

	ret, ok := block.Stmts[1].(*ast.ReturnStmt)
	if !ok || ret.Result == nil {
		t.Error("expected return with result")
	}
}

func TestParseErrorRecovery(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode diag.Code
	}{
		{"unclosed paren", "const x = (1;", diag.SynUnclosedParen},
		{"missing expression", "const x = ;", diag.SynExpectExpression},
		{"mismatched close tag", "const x = <div>text</span>;", diag.SynMismatchedJSXClose},
		{"unclosed jsx", "const x = <div>text;", diag.SynUnclosedJSXTag},
		{"bad attr value", "const x = <div a=1/>;", diag.SynExpectAttrValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := parseSource(t, tt.input)
			found := false
			for _, d := range bag.Items() {
				if d.Code == tt.wantCode {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected code %v in %+v", tt.wantCode, bag.Items())
			}
		})
	}
}

func TestParseCommentsAreTrivia(t *testing.T) {
	f := mustParse(t, "// leading\nconst x = /* inner */ 1;")
	if len(f.Stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(f.Stmts))
	}
}
