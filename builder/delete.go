package builder

// DeleteStatement is the mutable DELETE builder.
type DeleteStatement struct {
	table     string
	where     *Condition
	limit     *Value
	returning returningClause
}

// Delete starts an empty DELETE statement.
func Delete() *DeleteStatement {
	return &DeleteStatement{}
}

func (s *DeleteStatement) FromTable(name string) *DeleteStatement {
	s.table = name
	return s
}

func (s *DeleteStatement) AndWhere(e *Expr) *DeleteStatement {
	s.where = andInto(s.where, e)
	return s
}

func (s *DeleteStatement) CondWhere(c *Condition) *DeleteStatement {
	s.where = c
	return s
}

func (s *DeleteStatement) Limit(n int64) *DeleteStatement {
	v := IntValue(n)
	s.limit = &v
	return s
}

func (s *DeleteStatement) ReturningAll() *DeleteStatement {
	s.returning.setAll()
	return s
}

func (s *DeleteStatement) ReturningColumn(name string) *DeleteStatement {
	s.returning.setColumns([]string{name})
	return s
}

func (s *DeleteStatement) ReturningColumns(names ...string) *DeleteStatement {
	s.returning.setColumns(names)
	return s
}

func (s *DeleteStatement) ToString(d Dialect) (string, error) {
	return renderToString(s, d)
}

func (s *DeleteStatement) Build(d Dialect) (string, []Value, error) {
	return renderBuild(s, d)
}

func (s *DeleteStatement) write(w *sqlWriter) {
	if s.table == "" {
		w.fail(invalidStatement("DELETE", "no target table"))
		return
	}
	w.str("DELETE FROM ")
	w.ident(s.table)
	writeCondClause(w, "WHERE", s.where)
	if s.limit != nil {
		w.str(" LIMIT ")
		w.value(*s.limit)
	}
	s.returning.write(w)
}
