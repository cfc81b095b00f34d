package builder

import "fmt"

// ColumnType is the logical type of a schema column. The renderer maps each
// logical type to the dialect's concrete type name.
type ColumnType int

const (
	ColumnChar = ColumnType(iota)
	ColumnString
	ColumnText
	ColumnTinyInt
	ColumnSmallInt
	ColumnInt
	ColumnBigInt
	ColumnTinyUnsigned
	ColumnSmallUnsigned
	ColumnUnsigned
	ColumnBigUnsigned
	ColumnFloat
	ColumnDouble
	ColumnDecimal
	ColumnDateTime
	ColumnTimestamp
	ColumnTimestampTz
	ColumnDate
	ColumnTime
	ColumnBlob
	ColumnBoolean
	ColumnJSON
	ColumnJSONB
	ColumnUUID
)

// Column is a schema column definition for CREATE TABLE and ALTER TABLE.
type Column struct {
	name          string
	typ           ColumnType
	length        int // 0 = unset
	precision     int
	scale         int
	hasPrecision  bool
	nullable      *bool
	def           Expression
	primaryKey    bool
	autoIncrement bool
	unique        bool
	check         Expression
	comment       string
}

// NewColumn starts a column definition; pick a type with one of the type
// setters below.
func NewColumn(name string) *Column {
	return &Column{name: name}
}

func NewColumnWithType(name string, typ ColumnType) *Column {
	return &Column{name: name, typ: typ}
}

func (c *Column) setType(t ColumnType) *Column {
	c.typ = t
	return c
}

func (c *Column) Char() *Column { return c.setType(ColumnChar) }

func (c *Column) CharLen(length int) *Column {
	c.length = length
	return c.setType(ColumnChar)
}

func (c *Column) String() *Column { return c.setType(ColumnString) }

func (c *Column) StringLen(length int) *Column {
	c.length = length
	return c.setType(ColumnString)
}

func (c *Column) Text() *Column          { return c.setType(ColumnText) }
func (c *Column) TinyInteger() *Column   { return c.setType(ColumnTinyInt) }
func (c *Column) SmallInteger() *Column  { return c.setType(ColumnSmallInt) }
func (c *Column) Integer() *Column       { return c.setType(ColumnInt) }
func (c *Column) BigInteger() *Column    { return c.setType(ColumnBigInt) }
func (c *Column) TinyUnsigned() *Column  { return c.setType(ColumnTinyUnsigned) }
func (c *Column) SmallUnsigned() *Column { return c.setType(ColumnSmallUnsigned) }
func (c *Column) Unsigned() *Column      { return c.setType(ColumnUnsigned) }
func (c *Column) BigUnsigned() *Column   { return c.setType(ColumnBigUnsigned) }
func (c *Column) Float() *Column         { return c.setType(ColumnFloat) }
func (c *Column) Double() *Column        { return c.setType(ColumnDouble) }
func (c *Column) Decimal() *Column       { return c.setType(ColumnDecimal) }

func (c *Column) DecimalLen(precision, scale int) *Column {
	c.precision = precision
	c.scale = scale
	c.hasPrecision = true
	return c.setType(ColumnDecimal)
}

func (c *Column) DateTime() *Column        { return c.setType(ColumnDateTime) }
func (c *Column) Timestamp() *Column       { return c.setType(ColumnTimestamp) }
func (c *Column) TimestampWithTz() *Column { return c.setType(ColumnTimestampTz) }
func (c *Column) Date() *Column            { return c.setType(ColumnDate) }
func (c *Column) Time() *Column            { return c.setType(ColumnTime) }
func (c *Column) Blob() *Column            { return c.setType(ColumnBlob) }
func (c *Column) Boolean() *Column         { return c.setType(ColumnBoolean) }
func (c *Column) JSON() *Column            { return c.setType(ColumnJSON) }
func (c *Column) JSONB() *Column           { return c.setType(ColumnJSONB) }
func (c *Column) UUID() *Column            { return c.setType(ColumnUUID) }

func (c *Column) NotNull() *Column {
	v := false
	c.nullable = &v
	return c
}

func (c *Column) Null() *Column {
	v := true
	c.nullable = &v
	return c
}

func (c *Column) Default(v any) *Column {
	c.def = Val(v)
	return c
}

func (c *Column) DefaultExpr(e Expression) *Column {
	c.def = e
	return c
}

func (c *Column) PrimaryKey() *Column {
	c.primaryKey = true
	return c
}

func (c *Column) AutoIncrement() *Column {
	c.autoIncrement = true
	return c
}

func (c *Column) Unique() *Column {
	c.unique = true
	return c
}

func (c *Column) Check(e Expression) *Column {
	c.check = e
	return c
}

// Comment attaches a column comment; rendered for MySQL only.
func (c *Column) Comment(text string) *Column {
	c.comment = text
	return c
}

// typeSQL maps the logical type to the dialect's type name.
func (c *Column) typeSQL(d Dialect) string {
	switch c.typ {
	case ColumnChar:
		if c.length > 0 {
			return fmt.Sprintf("char(%d)", c.length)
		}
		return "char"
	case ColumnString:
		if c.length > 0 {
			return fmt.Sprintf("varchar(%d)", c.length)
		}
		if d == Mysql {
			return "varchar(255)"
		}
		return "varchar"
	case ColumnText:
		return "text"
	case ColumnTinyInt:
		if d == Postgres {
			return "smallint"
		}
		return "tinyint"
	case ColumnSmallInt:
		return "smallint"
	case ColumnInt:
		if d == Mysql {
			return "int"
		}
		return "integer"
	case ColumnBigInt:
		return "bigint"
	case ColumnTinyUnsigned:
		switch d {
		case Postgres:
			return "smallint"
		case Mysql:
			return "tinyint UNSIGNED"
		default:
			return "tinyint"
		}
	case ColumnSmallUnsigned:
		if d == Mysql {
			return "smallint UNSIGNED"
		}
		return "smallint"
	case ColumnUnsigned:
		if d == Mysql {
			return "int UNSIGNED"
		}
		return "integer"
	case ColumnBigUnsigned:
		if d == Mysql {
			return "bigint UNSIGNED"
		}
		return "bigint"
	case ColumnFloat:
		if d == Postgres {
			return "real"
		}
		return "float"
	case ColumnDouble:
		if d == Postgres {
			return "double precision"
		}
		return "double"
	case ColumnDecimal:
		base := "decimal"
		if d == Sqlite {
			base = "real"
		}
		if c.hasPrecision {
			return fmt.Sprintf("%s(%d, %d)", base, c.precision, c.scale)
		}
		return base
	case ColumnDateTime:
		switch d {
		case Postgres:
			return "timestamp without time zone"
		case Sqlite:
			return "datetime_text"
		default:
			return "datetime"
		}
	case ColumnTimestamp:
		if d == Sqlite {
			return "timestamp_text"
		}
		return "timestamp"
	case ColumnTimestampTz:
		switch d {
		case Postgres:
			return "timestamp with time zone"
		case Sqlite:
			return "timestamp_with_timezone_text"
		default:
			return "timestamp"
		}
	case ColumnDate:
		if d == Sqlite {
			return "date_text"
		}
		return "date"
	case ColumnTime:
		if d == Sqlite {
			return "time_text"
		}
		return "time"
	case ColumnBlob:
		if d == Postgres {
			return "bytea"
		}
		return "blob"
	case ColumnBoolean:
		if d == Sqlite {
			return "boolean"
		}
		return "bool"
	case ColumnJSON:
		if d == Sqlite {
			return "json_text"
		}
		return "json"
	case ColumnJSONB:
		switch d {
		case Postgres:
			return "jsonb"
		case Sqlite:
			return "jsonb_text"
		default:
			return "json"
		}
	case ColumnUUID:
		switch d {
		case Postgres:
			return "uuid"
		case Sqlite:
			return "uuid_text"
		default:
			return "binary(16)"
		}
	}
	return ""
}

// serialTypeSQL picks the Postgres serial type replacing an auto-increment
// integer column.
func (c *Column) serialTypeSQL() string {
	switch c.typ {
	case ColumnTinyInt, ColumnSmallInt, ColumnTinyUnsigned, ColumnSmallUnsigned:
		return "smallserial"
	case ColumnBigInt, ColumnBigUnsigned:
		return "bigserial"
	default:
		return "serial"
	}
}

// writeDef emits the full column definition. Modifiers render in fixed
// order: PRIMARY KEY, auto-increment, UNIQUE, nullability, DEFAULT, CHECK,
// COMMENT.
func (c *Column) writeDef(w *sqlWriter) {
	w.ident(c.name)
	w.str(" ")
	switch {
	case c.autoIncrement && w.dialect == Postgres:
		w.str(c.serialTypeSQL())
	case c.autoIncrement && w.dialect == Sqlite:
		w.str("integer")
	default:
		w.str(c.typeSQL(w.dialect))
	}
	if c.primaryKey {
		w.str(" PRIMARY KEY")
	}
	if c.autoIncrement {
		switch w.dialect {
		case Mysql:
			w.str(" AUTO_INCREMENT")
		case Sqlite:
			w.str(" AUTOINCREMENT")
		}
	}
	if c.unique {
		w.str(" UNIQUE")
	}
	if c.nullable != nil {
		if *c.nullable {
			w.str(" NULL")
		} else {
			w.str(" NOT NULL")
		}
	}
	if c.def != nil {
		w.str(" DEFAULT ")
		c.def.writeExpr(w)
	}
	if c.check != nil {
		w.str(" CHECK (")
		c.check.writeExpr(w)
		w.str(")")
	}
	if c.comment != "" && w.dialect == Mysql {
		w.str(" COMMENT " + StringConstant(c.comment))
	}
}

// TableCreateStatement is the mutable CREATE TABLE builder.
type TableCreateStatement struct {
	name        string
	ifNotExists bool
	columns     []*Column
	checks      []Expression
	primaryKey  *IndexCreateStatement
	foreignKeys []*ForeignKeyCreateStatement
	indexes     []*IndexCreateStatement
}

// CreateTable starts an empty CREATE TABLE statement.
func CreateTable() *TableCreateStatement {
	return &TableCreateStatement{}
}

func (s *TableCreateStatement) Name(name string) *TableCreateStatement {
	s.name = name
	return s
}

func (s *TableCreateStatement) IfNotExists() *TableCreateStatement {
	s.ifNotExists = true
	return s
}

func (s *TableCreateStatement) Column(c *Column) *TableCreateStatement {
	s.columns = append(s.columns, c)
	return s
}

func (s *TableCreateStatement) Check(e Expression) *TableCreateStatement {
	s.checks = append(s.checks, e)
	return s
}

// PrimaryKey sets a table-level primary key from the index's column list.
func (s *TableCreateStatement) PrimaryKey(index *IndexCreateStatement) *TableCreateStatement {
	s.primaryKey = index
	return s
}

func (s *TableCreateStatement) ForeignKey(fk *ForeignKeyCreateStatement) *TableCreateStatement {
	s.foreignKeys = append(s.foreignKeys, fk)
	return s
}

// Index attaches an index; rendered inline as KEY (...) for MySQL only.
func (s *TableCreateStatement) Index(index *IndexCreateStatement) *TableCreateStatement {
	s.indexes = append(s.indexes, index)
	return s
}

func (s *TableCreateStatement) ToString(d Dialect) (string, error) {
	return renderToString(s, d)
}

func (s *TableCreateStatement) write(w *sqlWriter) {
	if s.name == "" {
		w.fail(invalidStatement("CREATE TABLE", "no table name"))
		return
	}
	w.str("CREATE TABLE ")
	if s.ifNotExists {
		w.str("IF NOT EXISTS ")
	}
	w.ident(s.name)
	w.str(" ( ")
	parts := 0
	sep := func() {
		if parts > 0 {
			w.str(", ")
		}
		parts++
	}
	for _, c := range s.columns {
		sep()
		c.writeDef(w)
	}
	for _, check := range s.checks {
		sep()
		w.str("CHECK (")
		check.writeExpr(w)
		w.str(")")
	}
	if s.primaryKey != nil {
		sep()
		w.str("PRIMARY KEY (")
		s.primaryKey.writeColumns(w)
		w.str(")")
	}
	for _, fk := range s.foreignKeys {
		sep()
		fk.writeConstraint(w)
	}
	if w.dialect == Mysql {
		for _, index := range s.indexes {
			sep()
			w.str("KEY (")
			index.writeColumns(w)
			w.str(")")
		}
	}
	w.str(" )")
}

type alterOpKind int

const (
	alterAddColumn = alterOpKind(iota)
	alterAddColumnIfNotExists
	alterModifyColumn
	alterRenameColumn
	alterDropColumn
	alterAddForeignKey
	alterDropForeignKey
)

type alterOp struct {
	kind   alterOpKind
	column *Column
	from   string
	to     string
	name   string
	fk     *ForeignKeyCreateStatement
}

// TableAlterStatement is the mutable ALTER TABLE builder; operations render
// comma-joined in insertion order.
type TableAlterStatement struct {
	table string
	ops   []alterOp
}

// AlterTable starts an empty ALTER TABLE statement.
func AlterTable() *TableAlterStatement {
	return &TableAlterStatement{}
}

func (s *TableAlterStatement) Table(name string) *TableAlterStatement {
	s.table = name
	return s
}

func (s *TableAlterStatement) AddColumn(c *Column) *TableAlterStatement {
	s.ops = append(s.ops, alterOp{kind: alterAddColumn, column: c})
	return s
}

// AddColumnIfNotExists guards the add; SQLite strips the guard.
func (s *TableAlterStatement) AddColumnIfNotExists(c *Column) *TableAlterStatement {
	s.ops = append(s.ops, alterOp{kind: alterAddColumnIfNotExists, column: c})
	return s
}

func (s *TableAlterStatement) ModifyColumn(c *Column) *TableAlterStatement {
	s.ops = append(s.ops, alterOp{kind: alterModifyColumn, column: c})
	return s
}

func (s *TableAlterStatement) RenameColumn(from, to string) *TableAlterStatement {
	s.ops = append(s.ops, alterOp{kind: alterRenameColumn, from: from, to: to})
	return s
}

func (s *TableAlterStatement) DropColumn(name string) *TableAlterStatement {
	s.ops = append(s.ops, alterOp{kind: alterDropColumn, name: name})
	return s
}

func (s *TableAlterStatement) AddForeignKey(fk *ForeignKeyCreateStatement) *TableAlterStatement {
	s.ops = append(s.ops, alterOp{kind: alterAddForeignKey, fk: fk})
	return s
}

func (s *TableAlterStatement) DropForeignKey(name string) *TableAlterStatement {
	s.ops = append(s.ops, alterOp{kind: alterDropForeignKey, name: name})
	return s
}

func (s *TableAlterStatement) ToString(d Dialect) (string, error) {
	return renderToString(s, d)
}

func (s *TableAlterStatement) write(w *sqlWriter) {
	if s.table == "" {
		w.fail(invalidStatement("ALTER TABLE", "no table name"))
		return
	}
	if len(s.ops) == 0 {
		w.fail(invalidStatement("ALTER TABLE", "no operations"))
		return
	}
	w.str("ALTER TABLE ")
	w.ident(s.table)
	w.str(" ")
	for i, op := range s.ops {
		if i > 0 {
			w.str(", ")
		}
		op.write(w)
	}
}

func (op alterOp) write(w *sqlWriter) {
	switch op.kind {
	case alterAddColumn:
		w.str("ADD COLUMN ")
		op.column.writeDef(w)
	case alterAddColumnIfNotExists:
		if w.dialect == Sqlite {
			w.str("ADD COLUMN ")
		} else {
			w.str("ADD COLUMN IF NOT EXISTS ")
		}
		op.column.writeDef(w)
	case alterModifyColumn:
		switch w.dialect {
		case Postgres:
			w.str("ALTER COLUMN ")
			w.ident(op.column.name)
			w.str(" TYPE " + op.column.typeSQL(w.dialect))
		case Mysql:
			w.str("MODIFY COLUMN ")
			w.ident(op.column.name)
			w.str(" " + op.column.typeSQL(w.dialect))
		default:
			w.fail(unsupported(w.dialect, "MODIFY COLUMN"))
		}
	case alterRenameColumn:
		w.str("RENAME COLUMN ")
		w.ident(op.from)
		w.str(" TO ")
		w.ident(op.to)
	case alterDropColumn:
		w.str("DROP COLUMN ")
		w.ident(op.name)
	case alterAddForeignKey:
		if w.dialect == Sqlite {
			w.fail(unsupported(w.dialect, "adding a foreign key to an existing table"))
			return
		}
		w.str("ADD ")
		op.fk.writeConstraint(w)
	case alterDropForeignKey:
		switch w.dialect {
		case Mysql:
			w.str("DROP FOREIGN KEY ")
		case Postgres:
			w.str("DROP CONSTRAINT ")
		default:
			w.fail(unsupported(w.dialect, "dropping a foreign key"))
			return
		}
		w.ident(op.name)
	}
}

// TableRenameStatement renames a table.
type TableRenameStatement struct {
	from string
	to   string
}

// RenameTable starts an empty RENAME statement.
func RenameTable() *TableRenameStatement {
	return &TableRenameStatement{}
}

func (s *TableRenameStatement) Table(from, to string) *TableRenameStatement {
	s.from = from
	s.to = to
	return s
}

func (s *TableRenameStatement) ToString(d Dialect) (string, error) {
	return renderToString(s, d)
}

func (s *TableRenameStatement) write(w *sqlWriter) {
	if s.from == "" || s.to == "" {
		w.fail(invalidStatement("RENAME TABLE", "both table names are required"))
		return
	}
	if w.dialect == Mysql {
		w.str("RENAME TABLE ")
		w.ident(s.from)
		w.str(" TO ")
		w.ident(s.to)
		return
	}
	w.str("ALTER TABLE ")
	w.ident(s.from)
	w.str(" RENAME TO ")
	w.ident(s.to)
}

type dropBehavior int

const (
	dropDefault = dropBehavior(iota)
	dropCascade
	dropRestrict
)

// TableDropStatement drops one or more tables.
type TableDropStatement struct {
	tables   []string
	ifExists bool
	behavior dropBehavior
}

// DropTable starts an empty DROP TABLE statement.
func DropTable() *TableDropStatement {
	return &TableDropStatement{}
}

func (s *TableDropStatement) Table(name string) *TableDropStatement {
	s.tables = append(s.tables, name)
	return s
}

func (s *TableDropStatement) IfExists() *TableDropStatement {
	s.ifExists = true
	return s
}

// Cascade drops dependent objects too; ignored for SQLite.
func (s *TableDropStatement) Cascade() *TableDropStatement {
	s.behavior = dropCascade
	return s
}

func (s *TableDropStatement) Restrict() *TableDropStatement {
	s.behavior = dropRestrict
	return s
}

func (s *TableDropStatement) ToString(d Dialect) (string, error) {
	return renderToString(s, d)
}

func (s *TableDropStatement) write(w *sqlWriter) {
	if len(s.tables) == 0 {
		w.fail(invalidStatement("DROP TABLE", "no table name"))
		return
	}
	w.str("DROP TABLE ")
	if s.ifExists {
		w.str("IF EXISTS ")
	}
	w.identList(s.tables)
	if w.dialect != Sqlite {
		switch s.behavior {
		case dropCascade:
			w.str(" CASCADE")
		case dropRestrict:
			w.str(" RESTRICT")
		}
	}
}

// TableTruncateStatement empties a table. SQLite has no TRUNCATE.
type TableTruncateStatement struct {
	table string
}

// TruncateTable starts an empty TRUNCATE statement.
func TruncateTable() *TableTruncateStatement {
	return &TableTruncateStatement{}
}

func (s *TableTruncateStatement) Table(name string) *TableTruncateStatement {
	s.table = name
	return s
}

func (s *TableTruncateStatement) ToString(d Dialect) (string, error) {
	return renderToString(s, d)
}

func (s *TableTruncateStatement) write(w *sqlWriter) {
	if s.table == "" {
		w.fail(invalidStatement("TRUNCATE TABLE", "no table name"))
		return
	}
	if w.dialect == Sqlite {
		w.fail(unsupported(w.dialect, "TRUNCATE TABLE"))
		return
	}
	w.str("TRUNCATE TABLE ")
	w.ident(s.table)
}
