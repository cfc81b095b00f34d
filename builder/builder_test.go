package builder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertQuery checks the inlined rendering on all three dialects. The MySQL
// expectation defaults to the Postgres string with backtick quoting; pass an
// explicit string when the dialects genuinely diverge.
func assertQuery(t *testing.T, s Statement, expected string, mysqlExpected ...string) {
	t.Helper()
	for _, d := range []Dialect{Postgres, Sqlite} {
		sql, err := s.ToString(d)
		require.NoError(t, err)
		assert.Equal(t, expected, sql, "dialect %s", d)
	}
	want := strings.ReplaceAll(expected, `"`, "`")
	if len(mysqlExpected) > 0 {
		want = mysqlExpected[0]
	}
	sql, err := s.ToString(Mysql)
	require.NoError(t, err)
	assert.Equal(t, want, sql, "dialect mysql")
}
