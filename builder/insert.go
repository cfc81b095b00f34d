package builder

// OnConflict describes the conflict clause of an INSERT. Only single-column
// targets with DO NOTHING are supported; MySQL renders the clause as
// ON DUPLICATE KEY IGNORE.
type OnConflict struct {
	column    string
	doNothing bool
}

// OnConflictColumn targets a conflict on the given column.
func OnConflictColumn(name string) *OnConflict {
	return &OnConflict{column: name}
}

func (c *OnConflict) DoNothing() *OnConflict {
	c.doNothing = true
	return c
}

func (c *OnConflict) write(w *sqlWriter) {
	if !c.doNothing {
		w.fail(invalidStatement("INSERT", "ON CONFLICT has no action"))
		return
	}
	if w.dialect == Mysql {
		w.str(" ON DUPLICATE KEY IGNORE")
		return
	}
	w.str(" ON CONFLICT (")
	w.ident(c.column)
	w.str(") DO NOTHING")
}

// InsertStatement is the mutable INSERT builder. Values rows and SelectFrom
// are mutually exclusive; the conflict surfaces at render time.
type InsertStatement struct {
	into       string
	columns    []string
	rows       [][]Value
	selectFrom *SelectStatement
	onConflict *OnConflict
	returning  returningClause
}

// Insert starts an empty INSERT statement.
func Insert() *InsertStatement {
	return &InsertStatement{}
}

func (s *InsertStatement) Into(table string) *InsertStatement {
	s.into = table
	return s
}

func (s *InsertStatement) Columns(names ...string) *InsertStatement {
	s.columns = append(s.columns, names...)
	return s
}

// Values appends one row.
func (s *InsertStatement) Values(values ...any) *InsertStatement {
	s.rows = append(s.rows, toValues(values))
	return s
}

// SelectFrom inserts the result of a subselect instead of literal rows.
func (s *InsertStatement) SelectFrom(query *SelectStatement) *InsertStatement {
	s.selectFrom = query
	return s
}

func (s *InsertStatement) OnConflict(c *OnConflict) *InsertStatement {
	s.onConflict = c
	return s
}

func (s *InsertStatement) ReturningAll() *InsertStatement {
	s.returning.setAll()
	return s
}

func (s *InsertStatement) ReturningColumn(name string) *InsertStatement {
	s.returning.setColumns([]string{name})
	return s
}

func (s *InsertStatement) ReturningColumns(names ...string) *InsertStatement {
	s.returning.setColumns(names)
	return s
}

func (s *InsertStatement) ToString(d Dialect) (string, error) {
	return renderToString(s, d)
}

func (s *InsertStatement) Build(d Dialect) (string, []Value, error) {
	return renderBuild(s, d)
}

func (s *InsertStatement) write(w *sqlWriter) {
	if s.into == "" {
		w.fail(invalidStatement("INSERT", "no target table"))
		return
	}
	if len(s.rows) > 0 && s.selectFrom != nil {
		w.fail(invalidStatement("INSERT", "VALUES rows and SELECT source are mutually exclusive"))
		return
	}
	if len(s.rows) == 0 && s.selectFrom == nil {
		w.fail(invalidStatement("INSERT", "no values"))
		return
	}
	w.str("INSERT INTO ")
	w.ident(s.into)
	if len(s.columns) > 0 {
		w.str(" (")
		w.identList(s.columns)
		w.str(")")
	}
	if s.selectFrom != nil {
		w.str(" ")
		s.selectFrom.write(w)
	} else {
		w.str(" VALUES ")
		for i, row := range s.rows {
			if i > 0 {
				w.str(", ")
			}
			w.str("(")
			for j, v := range row {
				if j > 0 {
					w.str(", ")
				}
				w.value(v)
			}
			w.str(")")
		}
	}
	if s.onConflict != nil {
		s.onConflict.write(w)
	}
	s.returning.write(w)
}
