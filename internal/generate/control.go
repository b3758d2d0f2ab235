package generate

import (
	"github.com/MineChook/Coal/internal/ast"
	"github.com/MineChook/Coal/internal/typing"
)

// lowerShortCircuit lowers && and || without ever evaluating the right
// operand unless the left one requires it: the left is evaluated in the
// current block, which branches either straight to the join (carrying the
// short-circuited result) or into a block that evaluates the right
// operand, and the join phi picks up whichever path was taken.
func (e *emitter) lowerShortCircuit(n *ast.Binary) value {
	left := e.lowerExpr(n.Left)
	leftBlock := e.curLabel

	rhsLabel := e.m.label("sc.rhs")
	joinLabel := e.m.label("sc.join")

	shortValue := "0" // && short-circuits to false
	if n.Op == ast.Or {
		shortValue = "1"
	}

	if n.Op == ast.And {
		e.write("br i1 %s, label %%%s, label %%%s", left.Text, rhsLabel, joinLabel)
	} else {
		e.write("br i1 %s, label %%%s, label %%%s", left.Text, joinLabel, rhsLabel)
	}

	e.openBlock(rhsLabel)
	right := e.lowerExpr(n.Right)
	rhsEndBlock := e.curLabel
	e.write("br label %%%s", joinLabel)

	e.openBlock(joinLabel)
	t := e.newTemp()
	e.write("%s = phi i1 [ %s, %%%s ], [ %s, %%%s ]", t, shortValue, leftBlock, right.Text, rhsEndBlock)
	return value{Text: t, Type: typing.Bool}
}

// lowerIf lowers an if/elif*/else? chain as a sequence of condition
// checks, each branching to its own body block or to the next check
//. Every branch body, and the implicit empty else when none
// is written, rejoins at one shared end block.
func (e *emitter) lowerIf(n *ast.IfStmt) {
	endLabel := e.m.label("if.end")

	for i, branch := range n.Branches {
		cond := e.lowerExpr(branch.Cond)

		thenLabel := e.m.label("if.then")
		var nextLabel string
		isLast := i == len(n.Branches)-1
		switch {
		case !isLast:
			nextLabel = e.m.label("if.check")
		case n.ElseBranch != nil:
			nextLabel = e.m.label("if.else")
		default:
			nextLabel = endLabel
		}

		e.write("br i1 %s, label %%%s, label %%%s", cond.Text, thenLabel, nextLabel)

		e.openBlock(thenLabel)
		e.lowerBlock(branch.Body)
		e.write("br label %%%s", endLabel)

		if !isLast || n.ElseBranch != nil {
			e.openBlock(nextLabel)
		}
	}

	if n.ElseBranch != nil {
		e.lowerBlock(n.ElseBranch)
		e.write("br label %%%s", endLabel)
	}

	e.openBlock(endLabel)
}

// lowerWhile lowers a pre-tested loop with the header -> cond check ->
// body -> backedge -> header shape: the header block is re-entered both
// from the preheader and from the end of the body, so the condition is
// re-evaluated on every iteration.
func (e *emitter) lowerWhile(n *ast.WhileStmt) {
	headerLabel := e.m.label("while.header")
	bodyLabel := e.m.label("while.body")
	endLabel := e.m.label("while.end")

	e.write("br label %%%s", headerLabel)
	e.openBlock(headerLabel)

	cond := e.lowerExpr(n.Cond)
	e.write("br i1 %s, label %%%s, label %%%s", cond.Text, bodyLabel, endLabel)

	e.openBlock(bodyLabel)
	e.lowerBlock(n.Body)
	e.write("br label %%%s", headerLabel)

	e.openBlock(endLabel)
}
