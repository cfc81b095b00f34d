package builder

// OrderBy is the direction of an ORDER BY spec.
type OrderBy int

const (
	Asc = OrderBy(iota)
	Desc
)

func (o OrderBy) token() string {
	if o == Desc {
		return "DESC"
	}
	return "ASC"
}

// NullsOrder places NULLs first or last within an ORDER BY spec.
type NullsOrder int

const (
	NullsFirst = NullsOrder(iota)
	NullsLast
)

// UnionType selects the set operation appended after the base SELECT.
type UnionType int

const (
	UnionDistinct = UnionType(iota)
	UnionAll
	Intersect
	Except
)

func (t UnionType) token() string {
	switch t {
	case UnionAll:
		return "UNION ALL"
	case Intersect:
		return "INTERSECT"
	case Except:
		return "EXCEPT"
	default:
		return "UNION"
	}
}

// JoinKind selects the join keyword.
type JoinKind int

const (
	InnerJoin = JoinKind(iota)
	LeftJoin
	RightJoin
	FullOuterJoin
	CrossJoin
)

func (k JoinKind) token() string {
	switch k {
	case LeftJoin:
		return "LEFT JOIN"
	case RightJoin:
		return "RIGHT JOIN"
	case FullOuterJoin:
		return "FULL OUTER JOIN"
	case CrossJoin:
		return "CROSS JOIN"
	default:
		return "INNER JOIN"
	}
}

// LockType selects the row-locking clause.
type LockType int

const (
	LockUpdate = LockType(iota)
	LockNoKeyUpdate
	LockShare
	LockKeyShare
)

func (t LockType) token() string {
	switch t {
	case LockNoKeyUpdate:
		return "FOR NO KEY UPDATE"
	case LockShare:
		return "FOR SHARE"
	case LockKeyShare:
		return "FOR KEY SHARE"
	default:
		return "FOR UPDATE"
	}
}

// LockBehavior modifies how a lock acquisition waits.
type LockBehavior int

const (
	Nowait = LockBehavior(iota)
	SkipLocked
)

type selectItem struct {
	all   bool
	expr  Expression
	alias string
}

type fromSource struct {
	table    string
	alias    string
	subquery *SelectStatement
}

type joinClause struct {
	kind   JoinKind
	source fromSource
	on     *Expr
}

type orderSpec struct {
	expr  Expression
	order OrderBy
	nulls *NullsOrder
}

type unionClause struct {
	kind  UnionType
	query *SelectStatement
}

type lockClause struct {
	typ      LockType
	tables   []string
	behavior *LockBehavior
}

// SelectStatement is the mutable SELECT builder. Setters append in call
// order and return the receiver; rendering never mutates the statement.
type SelectStatement struct {
	distinct  bool
	selection []selectItem
	from      []fromSource
	joins     []joinClause
	where     *Condition
	groupBy   []Expression
	having    *Condition
	orderBy   []orderSpec
	limit     *Value
	offset    *Value
	unions    []unionClause
	lock      *lockClause
}

// Select starts an empty SELECT statement.
func Select() *SelectStatement {
	return &SelectStatement{}
}

// All projects `*`.
func (s *SelectStatement) All() *SelectStatement {
	s.selection = append(s.selection, selectItem{all: true})
	return s
}

func (s *SelectStatement) Distinct() *SelectStatement {
	s.distinct = true
	return s
}

func (s *SelectStatement) Column(name string) *SelectStatement {
	return s.Expr(Col(name))
}

func (s *SelectStatement) TableColumn(table, name string) *SelectStatement {
	return s.Expr(TableCol(table, name))
}

func (s *SelectStatement) Columns(names ...string) *SelectStatement {
	for _, name := range names {
		s.Column(name)
	}
	return s
}

func (s *SelectStatement) TableColumns(table string, names ...string) *SelectStatement {
	for _, name := range names {
		s.TableColumn(table, name)
	}
	return s
}

func (s *SelectStatement) Expr(e Expression) *SelectStatement {
	s.selection = append(s.selection, selectItem{expr: e})
	return s
}

func (s *SelectStatement) ExprAs(e Expression, alias string) *SelectStatement {
	s.selection = append(s.selection, selectItem{expr: e, alias: alias})
	return s
}

func (s *SelectStatement) FromTable(name string) *SelectStatement {
	s.from = append(s.from, fromSource{table: name})
	return s
}

func (s *SelectStatement) FromTableAs(name, alias string) *SelectStatement {
	s.from = append(s.from, fromSource{table: name, alias: alias})
	return s
}

// FromSubquery selects from a parenthesized subquery under an alias.
func (s *SelectStatement) FromSubquery(sub *SelectStatement, alias string) *SelectStatement {
	s.from = append(s.from, fromSource{subquery: sub, alias: alias})
	return s
}

func (s *SelectStatement) Join(kind JoinKind, table string, on *Expr) *SelectStatement {
	s.joins = append(s.joins, joinClause{kind: kind, source: fromSource{table: table}, on: on})
	return s
}

func (s *SelectStatement) JoinAs(kind JoinKind, table, alias string, on *Expr) *SelectStatement {
	s.joins = append(s.joins, joinClause{kind: kind, source: fromSource{table: table, alias: alias}, on: on})
	return s
}

func (s *SelectStatement) JoinSubquery(kind JoinKind, sub *SelectStatement, alias string, on *Expr) *SelectStatement {
	s.joins = append(s.joins, joinClause{kind: kind, source: fromSource{subquery: sub, alias: alias}, on: on})
	return s
}

// AndWhere appends to the implicit top-level AND container.
func (s *SelectStatement) AndWhere(e *Expr) *SelectStatement {
	s.where = andInto(s.where, e)
	return s
}

// CondWhere replaces the WHERE tree.
func (s *SelectStatement) CondWhere(c *Condition) *SelectStatement {
	s.where = c
	return s
}

func (s *SelectStatement) GroupBy(column string) *SelectStatement {
	s.groupBy = append(s.groupBy, Col(column))
	return s
}

func (s *SelectStatement) GroupByTable(table, column string) *SelectStatement {
	s.groupBy = append(s.groupBy, TableCol(table, column))
	return s
}

func (s *SelectStatement) GroupByExpr(e Expression) *SelectStatement {
	s.groupBy = append(s.groupBy, e)
	return s
}

func (s *SelectStatement) AndHaving(e *Expr) *SelectStatement {
	s.having = andInto(s.having, e)
	return s
}

func (s *SelectStatement) CondHaving(c *Condition) *SelectStatement {
	s.having = c
	return s
}

func (s *SelectStatement) OrderBy(column string, order OrderBy) *SelectStatement {
	s.orderBy = append(s.orderBy, orderSpec{expr: Col(column), order: order})
	return s
}

func (s *SelectStatement) OrderByTable(table, column string, order OrderBy) *SelectStatement {
	s.orderBy = append(s.orderBy, orderSpec{expr: TableCol(table, column), order: order})
	return s
}

func (s *SelectStatement) OrderByExpr(e Expression, order OrderBy) *SelectStatement {
	s.orderBy = append(s.orderBy, orderSpec{expr: e, order: order})
	return s
}

// OrderByWithNulls places NULLs explicitly. MySQL has no NULLS FIRST/LAST
// syntax; the renderer emulates it with an `IS NULL` sort key.
func (s *SelectStatement) OrderByWithNulls(column string, order OrderBy, nulls NullsOrder) *SelectStatement {
	n := nulls
	s.orderBy = append(s.orderBy, orderSpec{expr: Col(column), order: order, nulls: &n})
	return s
}

func (s *SelectStatement) Limit(n int64) *SelectStatement {
	v := IntValue(n)
	s.limit = &v
	return s
}

func (s *SelectStatement) Offset(n int64) *SelectStatement {
	v := IntValue(n)
	s.offset = &v
	return s
}

func (s *SelectStatement) Union(kind UnionType, query *SelectStatement) *SelectStatement {
	s.unions = append(s.unions, unionClause{kind: kind, query: query})
	return s
}

func (s *SelectStatement) Lock(typ LockType) *SelectStatement {
	s.lock = &lockClause{typ: typ}
	return s
}

// LockOf restricts the lock to the given tables. A no-op until Lock is set.
func (s *SelectStatement) LockOf(tables ...string) *SelectStatement {
	if s.lock != nil {
		s.lock.tables = append(s.lock.tables, tables...)
	}
	return s
}

func (s *SelectStatement) LockNowait() *SelectStatement {
	if s.lock != nil {
		b := Nowait
		s.lock.behavior = &b
	}
	return s
}

func (s *SelectStatement) LockSkipLocked() *SelectStatement {
	if s.lock != nil {
		b := SkipLocked
		s.lock.behavior = &b
	}
	return s
}

// ToString renders the statement with all values inlined as literals.
func (s *SelectStatement) ToString(d Dialect) (string, error) {
	return renderToString(s, d)
}

// Build renders the statement with placeholders and the positional
// parameter vector.
func (s *SelectStatement) Build(d Dialect) (string, []Value, error) {
	return renderBuild(s, d)
}

func (s *SelectStatement) write(w *sqlWriter) {
	w.str("SELECT ")
	if s.distinct {
		w.str("DISTINCT ")
	}
	for i, item := range s.selection {
		if i > 0 {
			w.str(", ")
		}
		switch {
		case item.all:
			w.str("*")
		default:
			item.expr.writeExpr(w)
			if item.alias != "" {
				w.str(" AS ")
				w.ident(item.alias)
			}
		}
	}
	if len(s.from) > 0 {
		w.str(" FROM ")
		for i, src := range s.from {
			if i > 0 {
				w.str(", ")
			}
			src.write(w)
		}
	}
	for _, j := range s.joins {
		w.str(" " + j.kind.token() + " ")
		j.source.write(w)
		if j.on != nil {
			w.str(" ON ")
			j.on.writeExpr(w)
		}
	}
	writeCondClause(w, "WHERE", s.where)
	if len(s.groupBy) > 0 {
		w.str(" GROUP BY ")
		for i, e := range s.groupBy {
			if i > 0 {
				w.str(", ")
			}
			e.writeExpr(w)
		}
	}
	writeCondClause(w, "HAVING", s.having)
	if len(s.orderBy) > 0 {
		w.str(" ORDER BY ")
		for i, spec := range s.orderBy {
			if i > 0 {
				w.str(", ")
			}
			spec.write(w)
		}
	}
	if s.limit != nil {
		w.str(" LIMIT ")
		w.value(*s.limit)
	}
	if s.offset != nil {
		w.str(" OFFSET ")
		w.value(*s.offset)
	}
	for _, u := range s.unions {
		w.str(" " + u.kind.token() + " ")
		if w.dialect.parenthesizedUnions() {
			w.str("(")
			u.query.write(w)
			w.str(")")
		} else {
			u.query.write(w)
		}
	}
	if s.lock != nil && w.dialect.supportsRowLocks() {
		w.str(" " + s.lock.typ.token())
		if len(s.lock.tables) > 0 {
			w.str(" OF ")
			w.identList(s.lock.tables)
		}
		if s.lock.behavior != nil {
			if *s.lock.behavior == Nowait {
				w.str(" NOWAIT")
			} else {
				w.str(" SKIP LOCKED")
			}
		}
	}
}

func (src fromSource) write(w *sqlWriter) {
	if src.subquery != nil {
		w.str("(")
		src.subquery.write(w)
		w.str(")")
		if src.alias != "" {
			w.str(" AS ")
			w.ident(src.alias)
		}
		return
	}
	w.ident(src.table)
	if src.alias != "" {
		w.str(" AS ")
		w.ident(src.alias)
	}
}

func (spec orderSpec) write(w *sqlWriter) {
	if spec.nulls != nil && w.dialect == Mysql {
		// MySQL emulation: sort on `expr IS NULL` first to float or sink
		// the NULL group, then on the expression itself.
		spec.expr.writeExpr(w)
		if *spec.nulls == NullsFirst {
			w.str(" IS NULL DESC, ")
		} else {
			w.str(" IS NULL ASC, ")
		}
		spec.expr.writeExpr(w)
		w.str(" " + spec.order.token())
		return
	}
	spec.expr.writeExpr(w)
	w.str(" " + spec.order.token())
	if spec.nulls != nil {
		if *spec.nulls == NullsFirst {
			w.str(" NULLS FIRST")
		} else {
			w.str(" NULLS LAST")
		}
	}
}
