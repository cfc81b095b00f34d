package builder

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Dialect selects the target SQL grammar for rendering.
type Dialect int

const (
	Postgres = Dialect(iota)
	Mysql
	Sqlite
)

func (d Dialect) String() string {
	switch d {
	case Postgres:
		return "postgres"
	case Mysql:
		return "mysql"
	case Sqlite:
		return "sqlite"
	default:
		return fmt.Sprintf("dialect(%d)", int(d))
	}
}

// QuoteIdent wraps an identifier in the dialect's quote characters.
// The `*` wildcard is passed through unquoted.
func (d Dialect) QuoteIdent(name string) string {
	if name == "*" {
		return name
	}
	switch d {
	case Postgres:
		return pq.QuoteIdentifier(name)
	case Mysql:
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	default:
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
}

// placeholder returns the n-th (1-based) parameter marker.
func (d Dialect) placeholder(n int) string {
	if d == Postgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// supportsReturning reports whether DML statements may carry a RETURNING
// clause. MySQL statements are rendered without one.
func (d Dialect) supportsReturning() bool {
	return d != Mysql
}

// supportsRowLocks reports whether SELECT ... FOR <lock> is emitted.
// The clause is dropped for SQLite.
func (d Dialect) supportsRowLocks() bool {
	return d != Sqlite
}

// parenthesizedUnions reports whether union branches are wrapped in parens.
func (d Dialect) parenthesizedUnions() bool {
	return d != Sqlite
}
