package ast

// Visitor observes a depth-first walk. Enter returning false prunes the
// subtree; Exit still fires for every entered node. The exit hook exists for
// checks that must see a node only after its children, such as the
// arrow-body context of the wrap rule.
type Visitor interface {
	Enter(n Node) bool
	Exit(n Node)
}

// Walk drives a depth-first traversal of n. Nil children are skipped; an
// unknown node type panics, keeping the node set closed.
func Walk(v Visitor, n Node) {
	if n == nil {
		return
	}
	if !v.Enter(n) {
		v.Exit(n)
		return
	}

	switch node := n.(type) {
	case *File:
		for _, s := range node.Stmts {
			Walk(v, s)
		}

	case *VarDeclStmt:
		for _, d := range node.Decls {
			Walk(v, d)
		}
	case *VarDecl:
		walkExpr(v, node.Init)
	case *ReturnStmt:
		walkExpr(v, node.Result)
	case *FuncDecl:
		if node.Body != nil {
			Walk(v, node.Body)
		}
	case *ExprStmt:
		walkExpr(v, node.X)
	case *BlockStmt:
		for _, s := range node.Stmts {
			Walk(v, s)
		}

	case *Ident, *BasicLit, *JSXText:
		// leaves

	case *AssignExpr:
		walkExpr(v, node.Left)
		walkExpr(v, node.Right)
	case *CondExpr:
		walkExpr(v, node.Cond)
		walkExpr(v, node.Consequent)
		walkExpr(v, node.Alternate)
	case *LogicalExpr:
		walkExpr(v, node.Left)
		walkExpr(v, node.Right)
	case *BinaryExpr:
		walkExpr(v, node.Left)
		walkExpr(v, node.Right)
	case *UnaryExpr:
		walkExpr(v, node.X)
	case *CallExpr:
		walkExpr(v, node.Fun)
		for _, a := range node.Args {
			walkExpr(v, a)
		}
	case *MemberExpr:
		walkExpr(v, node.Obj)
	case *IndexExpr:
		walkExpr(v, node.Obj)
		walkExpr(v, node.Index)
	case *ArrowFunc:
		Walk(v, node.Body)
	case *ArrayLit:
		for _, e := range node.Elems {
			walkExpr(v, e)
		}
	case *ObjectLit:
		for _, f := range node.Fields {
			walkExpr(v, f.Value)
		}

	case *JSXElement:
		for _, a := range node.Attrs {
			Walk(v, a)
		}
		for _, c := range node.Children {
			walkExpr(v, c)
		}
	case *JSXFragment:
		for _, c := range node.Children {
			walkExpr(v, c)
		}
	case *JSXExprContainer:
		walkExpr(v, node.X)
	case *JSXAttr:
		walkExpr(v, node.Value)
	case *JSXSpreadAttr:
		walkExpr(v, node.X)

	default:
		panic("ast: walk hit unknown node type")
	}

	v.Exit(n)
}

func walkExpr(v Visitor, e Expr) {
	if e == nil {
		return
	}
	Walk(v, e)
}
