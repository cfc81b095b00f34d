package builder

// Expression is anything the renderer can emit in expression position:
// an Expr tree or a CASE builder.
type Expression interface {
	writeExpr(w *sqlWriter)
}

type exprKind int

const (
	exprColumn = exprKind(iota)
	exprValue
	exprBinary
	exprIn
	exprBetween
	exprIsNull
	exprFunc
	exprExists
	exprLogical
	exprNot
	exprNotCond
)

// Expr is one node of the expression tree. Nodes are immutable after
// construction; the fluent operators wrap existing nodes, never mutate them.
type Expr struct {
	kind exprKind

	op        string // operator token for exprBinary / exprLogical
	table     string
	name      string // column name, or function name for exprFunc
	val       Value
	lhs, rhs  *Expr
	list      []Value // IN list
	low, high Value   // BETWEEN bounds
	negated   bool    // IN / BETWEEN / IS NULL negation
	distinct  bool    // COUNT(DISTINCT ...)
	args      []Expression
	sub       *SelectStatement // EXISTS subquery
	cond      *Condition       // exprNotCond operand
}

// Col references a column by name.
func Col(name string) *Expr {
	return &Expr{kind: exprColumn, name: name}
}

// TableCol references a table-qualified column.
func TableCol(table, name string) *Expr {
	return &Expr{kind: exprColumn, table: table, name: name}
}

// Val lifts a Go scalar into an expression literal.
func Val(v any) *Expr {
	return &Expr{kind: exprValue, val: ToValue(v)}
}

// Exists wraps a subquery in an EXISTS predicate.
func Exists(sub *SelectStatement) *Expr {
	return &Expr{kind: exprExists, sub: sub}
}

func (e *Expr) binary(op string, rhs *Expr) *Expr {
	return &Expr{kind: exprBinary, op: op, lhs: e, rhs: rhs}
}

func (e *Expr) Eq(v any) *Expr  { return e.binary("=", Val(v)) }
func (e *Expr) Ne(v any) *Expr  { return e.binary("<>", Val(v)) }
func (e *Expr) Gt(v any) *Expr  { return e.binary(">", Val(v)) }
func (e *Expr) Gte(v any) *Expr { return e.binary(">=", Val(v)) }
func (e *Expr) Lt(v any) *Expr  { return e.binary("<", Val(v)) }
func (e *Expr) Lte(v any) *Expr { return e.binary("<=", Val(v)) }

func (e *Expr) Is(v any) *Expr    { return e.binary("IS", Val(v)) }
func (e *Expr) IsNot(v any) *Expr { return e.binary("IS NOT", Val(v)) }

func (e *Expr) Add(v any) *Expr { return e.binary("+", Val(v)) }
func (e *Expr) Sub(v any) *Expr { return e.binary("-", Val(v)) }
func (e *Expr) Mul(v any) *Expr { return e.binary("*", Val(v)) }
func (e *Expr) Div(v any) *Expr { return e.binary("/", Val(v)) }

// AddExpr and friends combine two expression trees arithmetically.
func (e *Expr) AddExpr(other *Expr) *Expr { return e.binary("+", other) }
func (e *Expr) SubExpr(other *Expr) *Expr { return e.binary("-", other) }
func (e *Expr) MulExpr(other *Expr) *Expr { return e.binary("*", other) }
func (e *Expr) DivExpr(other *Expr) *Expr { return e.binary("/", other) }

func (e *Expr) Like(pattern string) *Expr    { return e.binary("LIKE", Val(pattern)) }
func (e *Expr) NotLike(pattern string) *Expr { return e.binary("NOT LIKE", Val(pattern)) }

// Equals compares against another column rather than a value.
func (e *Expr) Equals(column string) *Expr {
	return e.binary("=", Col(column))
}

// EqualsTable compares against a table-qualified column.
func (e *Expr) EqualsTable(table, column string) *Expr {
	return e.binary("=", TableCol(table, column))
}

func (e *Expr) In(values ...any) *Expr {
	return &Expr{kind: exprIn, lhs: e, list: toValues(values)}
}

func (e *Expr) NotIn(values ...any) *Expr {
	return &Expr{kind: exprIn, lhs: e, list: toValues(values), negated: true}
}

func (e *Expr) Between(low, high any) *Expr {
	return &Expr{kind: exprBetween, lhs: e, low: ToValue(low), high: ToValue(high)}
}

func (e *Expr) NotBetween(low, high any) *Expr {
	return &Expr{kind: exprBetween, lhs: e, low: ToValue(low), high: ToValue(high), negated: true}
}

func (e *Expr) IsNull() *Expr {
	return &Expr{kind: exprIsNull, lhs: e}
}

func (e *Expr) IsNotNull() *Expr {
	return &Expr{kind: exprIsNull, lhs: e, negated: true}
}

func (e *Expr) fn(name string) *Expr {
	return &Expr{kind: exprFunc, name: name, args: []Expression{e}}
}

func (e *Expr) Max() *Expr   { return e.fn("MAX") }
func (e *Expr) Min() *Expr   { return e.fn("MIN") }
func (e *Expr) Sum() *Expr   { return e.fn("SUM") }
func (e *Expr) Count() *Expr { return e.fn("COUNT") }

func (e *Expr) CountDistinct() *Expr {
	return &Expr{kind: exprFunc, name: "COUNT", args: []Expression{e}, distinct: true}
}

// IfNull renders as COALESCE(expr, default).
func (e *Expr) IfNull(def any) *Expr {
	return &Expr{kind: exprFunc, name: "COALESCE", args: []Expression{e, Val(def)}}
}

// And combines two expressions; no algebraic reassociation is performed,
// explicit grouping survives as distinct subtrees.
func (e *Expr) And(other *Expr) *Expr {
	return &Expr{kind: exprLogical, op: "AND", lhs: e, rhs: other}
}

func (e *Expr) Or(other *Expr) *Expr {
	return &Expr{kind: exprLogical, op: "OR", lhs: e, rhs: other}
}

func (e *Expr) Not() *Expr {
	return &Expr{kind: exprNot, lhs: e}
}

func (e *Expr) writeExpr(w *sqlWriter) {
	switch e.kind {
	case exprColumn:
		w.column(e.table, e.name)
	case exprValue:
		w.value(e.val)
	case exprBinary:
		e.writeOperand(w, e.lhs)
		w.str(" " + e.op + " ")
		e.writeOperand(w, e.rhs)
	case exprIn:
		if len(e.list) == 0 {
			w.fail(ErrEmptyInList)
			return
		}
		e.lhs.writeExpr(w)
		if e.negated {
			w.str(" NOT IN (")
		} else {
			w.str(" IN (")
		}
		for i, v := range e.list {
			if i > 0 {
				w.str(", ")
			}
			w.value(v)
		}
		w.str(")")
	case exprBetween:
		e.lhs.writeExpr(w)
		if e.negated {
			w.str(" NOT BETWEEN ")
		} else {
			w.str(" BETWEEN ")
		}
		w.value(e.low)
		w.str(" AND ")
		w.value(e.high)
	case exprIsNull:
		e.lhs.writeExpr(w)
		if e.negated {
			w.str(" IS NOT NULL")
		} else {
			w.str(" IS NULL")
		}
	case exprFunc:
		w.str(e.name + "(")
		if e.distinct {
			w.str("DISTINCT ")
		}
		for i, arg := range e.args {
			if i > 0 {
				w.str(", ")
			}
			arg.writeExpr(w)
		}
		w.str(")")
	case exprExists:
		w.str("EXISTS(")
		e.sub.write(w)
		w.str(")")
	case exprLogical:
		e.writeOperand(w, e.lhs)
		w.str(" " + e.op + " ")
		e.writeOperand(w, e.rhs)
	case exprNot:
		w.str("NOT ")
		e.lhs.writeExpr(w)
	case exprNotCond:
		w.str("NOT (")
		e.cond.write(w, false)
		w.str(")")
	}
}

// writeOperand parenthesizes a child that carries its own grouping: logical
// subtrees under logical operators and arithmetic subtrees under arithmetic
// operators keep the shape the caller built.
func (e *Expr) writeOperand(w *sqlWriter, operand *Expr) {
	grouped := operand.kind == e.kind && (e.kind == exprLogical || isArithmeticOp(e.op) && isArithmeticOp(operand.op))
	if grouped {
		w.str("(")
		operand.writeExpr(w)
		w.str(")")
		return
	}
	operand.writeExpr(w)
}

func isArithmeticOp(op string) bool {
	switch op {
	case "+", "-", "*", "/":
		return true
	}
	return false
}

// caseWhen is one WHEN <cond> THEN <result> arm.
type caseWhen struct {
	cond   ConditionItem
	result *Expr
}

// CaseBuilder accumulates a CASE expression. It can be used anywhere an
// expression fits, e.g. as a SELECT projection item.
type CaseBuilder struct {
	whens    []caseWhen
	elseExpr *Expr
}

// Case starts an empty CASE expression.
func Case() *CaseBuilder {
	return &CaseBuilder{}
}

func (c *CaseBuilder) When(cond ConditionItem, result any) *CaseBuilder {
	c.whens = append(c.whens, caseWhen{cond: cond, result: Val(result)})
	return c
}

func (c *CaseBuilder) WhenExpr(cond ConditionItem, result *Expr) *CaseBuilder {
	c.whens = append(c.whens, caseWhen{cond: cond, result: result})
	return c
}

func (c *CaseBuilder) Else(v any) *CaseBuilder {
	c.elseExpr = Val(v)
	return c
}

func (c *CaseBuilder) ElseExpr(e *Expr) *CaseBuilder {
	c.elseExpr = e
	return c
}

func (c *CaseBuilder) writeExpr(w *sqlWriter) {
	if len(c.whens) == 0 {
		w.fail(invalidStatement("CASE", "no WHEN clauses"))
		return
	}
	w.str("(CASE")
	for _, arm := range c.whens {
		w.str(" WHEN (")
		arm.cond.writeCondItem(w)
		w.str(") THEN ")
		arm.result.writeExpr(w)
	}
	if c.elseExpr != nil {
		w.str(" ELSE ")
		c.elseExpr.writeExpr(w)
	}
	w.str(" END)")
}
