package generate

import (
	"github.com/MineChook/Coal/internal/ast"
	"github.com/MineChook/Coal/internal/report"
	"github.com/MineChook/Coal/internal/typing"
)

func (e *emitter) lowerStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.VarDecl:
		e.lowerVarDecl(n)
	case *ast.Assign:
		e.lowerAssign(n)
	case *ast.ExprStmt:
		e.lowerExpr(n.Expr)
	case *ast.IfStmt:
		e.lowerIf(n)
	case *ast.WhileStmt:
		e.lowerWhile(n)
	default:
		report.Internal(e.file, nil, "emitter: unhandled statement kind %T", s)
	}
}

// lowerVarDecl allocates the variable's slot, stores its initial value
// (the initializer if present, otherwise the type's zero value), and
// mirrors that store into the variable's debug global.
func (e *emitter) lowerVarDecl(d *ast.VarDecl) {
	typ, _ := e.table.Decl(d)
	slot := e.declareSlot(d.Name, typ)

	var v value
	if d.Init != nil {
		v = e.lowerExpr(d.Init)
	} else {
		v = value{Text: zeroValue(typ), Type: typ}
	}

	e.write("store %s %s, ptr %s", irType(typ), v.Text, slot)
	e.storeDebugMirror(d.Name, typ, v)
}

func (e *emitter) lowerAssign(a *ast.Assign) {
	lv := e.lookup(a.Name)
	v := e.lowerExpr(a.Value)
	e.write("store %s %s, ptr %s", irType(lv.Type), v.Text, lv.Slot)
	e.storeDebugMirror(a.Name, lv.Type, v)
}

func (e *emitter) storeDebugMirror(name string, typ typing.NamedType, v value) {
	global := e.m.dbgGlobal(e.fnName, name, irType(typ), zeroValue(typ))
	e.write("store %s %s, ptr %s", irType(typ), v.Text, global)
}
