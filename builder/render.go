package builder

import (
	"fmt"
	"strings"

	"github.com/oldani/seaquery/util"
)

// sqlWriter accumulates rendered SQL. In inline mode values are written as
// literals; otherwise each value takes the next placeholder and is appended
// to the parameter vector. The first error sticks and aborts the render.
type sqlWriter struct {
	dialect Dialect
	inline  bool

	sb     strings.Builder
	params []Value
	err    error
}

func newSQLWriter(d Dialect, inline bool) *sqlWriter {
	return &sqlWriter{dialect: d, inline: inline}
}

func (w *sqlWriter) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *sqlWriter) str(s string) {
	w.sb.WriteString(s)
}

func (w *sqlWriter) ident(name string) {
	w.str(w.dialect.QuoteIdent(name))
}

// column writes an optionally table-qualified column reference.
func (w *sqlWriter) column(table, name string) {
	if table != "" {
		w.ident(table)
		w.str(".")
	}
	w.ident(name)
}

func (w *sqlWriter) identList(names []string) {
	w.str(strings.Join(util.TransformSlice(names, w.dialect.QuoteIdent), ", "))
}

func (w *sqlWriter) value(v Value) {
	if w.inline {
		s, err := v.inline()
		if err != nil {
			w.fail(err)
			return
		}
		w.str(s)
		return
	}
	if v.kind == valueInvalid {
		w.fail(fmt.Errorf("cannot bind %s as a parameter", v.strVal))
		return
	}
	w.params = append(w.params, v)
	w.str(w.dialect.placeholder(len(w.params)))
}

func (w *sqlWriter) result() (string, []Value, error) {
	if w.err != nil {
		return "", nil, w.err
	}
	return w.sb.String(), w.params, nil
}

type writable interface {
	write(w *sqlWriter)
}

func renderToString(s writable, d Dialect) (string, error) {
	w := newSQLWriter(d, true)
	s.write(w)
	sql, _, err := w.result()
	return sql, err
}

func renderBuild(s writable, d Dialect) (string, []Value, error) {
	w := newSQLWriter(d, false)
	s.write(w)
	return w.result()
}
