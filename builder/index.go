package builder

// IndexType selects the index access method.
type IndexType int

const (
	BTree = IndexType(iota)
	FullText
	Hash
)

// token maps the index type to its USING keyword; FullText maps to GIN,
// which only Postgres reaches (MySQL takes the FULLTEXT INDEX form instead).
func (t IndexType) token() string {
	switch t {
	case FullText:
		return "GIN"
	case Hash:
		return "HASH"
	default:
		return "BTREE"
	}
}

type indexColumn struct {
	name  string
	order *OrderBy
}

// IndexCreateStatement is the mutable CREATE INDEX builder. It renders
// whatever combination was requested; feature validation is left to the
// target database.
type IndexCreateStatement struct {
	name             string
	table            string
	columns          []indexColumn
	unique           bool
	primary          bool
	ifNotExists      bool
	nullsNotDistinct bool
	indexType        *IndexType
}

// CreateIndex starts an empty CREATE INDEX statement.
func CreateIndex() *IndexCreateStatement {
	return &IndexCreateStatement{}
}

func (s *IndexCreateStatement) Name(name string) *IndexCreateStatement {
	s.name = name
	return s
}

func (s *IndexCreateStatement) Table(name string) *IndexCreateStatement {
	s.table = name
	return s
}

func (s *IndexCreateStatement) Column(name string) *IndexCreateStatement {
	s.columns = append(s.columns, indexColumn{name: name})
	return s
}

func (s *IndexCreateStatement) ColumnWithOrder(name string, order OrderBy) *IndexCreateStatement {
	o := order
	s.columns = append(s.columns, indexColumn{name: name, order: &o})
	return s
}

func (s *IndexCreateStatement) Unique() *IndexCreateStatement {
	s.unique = true
	return s
}

func (s *IndexCreateStatement) Primary() *IndexCreateStatement {
	s.primary = true
	return s
}

// IfNotExists guards creation; MySQL strips the guard.
func (s *IndexCreateStatement) IfNotExists() *IndexCreateStatement {
	s.ifNotExists = true
	return s
}

// NullsNotDistinct makes NULLs compare equal in a unique index; Postgres
// only, other dialects drop the clause.
func (s *IndexCreateStatement) NullsNotDistinct() *IndexCreateStatement {
	s.nullsNotDistinct = true
	return s
}

// Using picks the index access method.
func (s *IndexCreateStatement) Using(t IndexType) *IndexCreateStatement {
	it := t
	s.indexType = &it
	return s
}

func (s *IndexCreateStatement) ToString(d Dialect) (string, error) {
	return renderToString(s, d)
}

func (s *IndexCreateStatement) write(w *sqlWriter) {
	if s.name == "" || s.table == "" {
		w.fail(invalidStatement("CREATE INDEX", "index and table names are required"))
		return
	}
	if len(s.columns) == 0 {
		w.fail(invalidStatement("CREATE INDEX", "no columns"))
		return
	}
	w.str("CREATE ")
	fulltext := s.indexType != nil && *s.indexType == FullText
	switch {
	case s.primary && w.dialect == Mysql:
		w.str("PRIMARY ")
	case s.primary:
		w.str("PRIMARY KEY ")
	case s.unique:
		w.str("UNIQUE ")
	case fulltext && w.dialect == Mysql:
		w.str("FULLTEXT ")
	}
	w.str("INDEX ")
	if s.ifNotExists && w.dialect != Mysql {
		w.str("IF NOT EXISTS ")
	}
	w.ident(s.name)
	w.str(" ON ")
	w.ident(s.table)
	if s.indexType != nil && w.dialect == Postgres {
		w.str(" USING " + s.indexType.token())
	}
	w.str(" (")
	s.writeColumns(w)
	w.str(")")
	if s.indexType != nil && w.dialect == Mysql && !fulltext {
		w.str(" USING " + s.indexType.token())
	}
	if s.nullsNotDistinct && w.dialect == Postgres {
		w.str(" NULLS NOT DISTINCT")
	}
}

func (s *IndexCreateStatement) writeColumns(w *sqlWriter) {
	for i, col := range s.columns {
		if i > 0 {
			w.str(", ")
		}
		w.ident(col.name)
		if col.order != nil {
			w.str(" " + col.order.token())
		}
	}
}

// IndexDropStatement is the mutable DROP INDEX builder. MySQL needs the
// table name; the other dialects drop by index name alone.
type IndexDropStatement struct {
	name     string
	table    string
	ifExists bool
}

// DropIndex starts an empty DROP INDEX statement.
func DropIndex() *IndexDropStatement {
	return &IndexDropStatement{}
}

func (s *IndexDropStatement) Name(name string) *IndexDropStatement {
	s.name = name
	return s
}

func (s *IndexDropStatement) Table(name string) *IndexDropStatement {
	s.table = name
	return s
}

func (s *IndexDropStatement) IfExists() *IndexDropStatement {
	s.ifExists = true
	return s
}

func (s *IndexDropStatement) ToString(d Dialect) (string, error) {
	return renderToString(s, d)
}

func (s *IndexDropStatement) write(w *sqlWriter) {
	if s.name == "" {
		w.fail(invalidStatement("DROP INDEX", "no index name"))
		return
	}
	w.str("DROP INDEX ")
	if w.dialect == Mysql {
		w.ident(s.name)
		if s.table == "" {
			w.fail(invalidStatement("DROP INDEX", "MySQL requires the table name"))
			return
		}
		w.str(" ON ")
		w.ident(s.table)
		return
	}
	if s.ifExists {
		w.str("IF EXISTS ")
	}
	w.ident(s.name)
}
