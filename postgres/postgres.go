// Package postgres renders builder statements with the PostgreSQL dialect
// pre-bound, so callers skip the dialect argument on the terminal renderers.
package postgres

import "github.com/oldani/seaquery/builder"

// Dialect is the bound dialect value.
const Dialect = builder.Postgres

// ToString renders the statement as fully inlined SQL.
func ToString(s builder.Statement) (string, error) {
	return s.ToString(Dialect)
}

// Build renders the statement with $N placeholders plus the parameter vector.
func Build(s builder.DMLStatement) (string, []builder.Value, error) {
	return s.Build(Dialect)
}
