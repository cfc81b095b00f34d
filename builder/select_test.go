package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectAll(t *testing.T) {
	query := Select().FromTable("table").All()
	assertQuery(t, query, `SELECT * FROM "table"`)
}

func TestSelectAllDistinct(t *testing.T) {
	query := Select().FromTable("table").All().Distinct()
	assertQuery(t, query, `SELECT DISTINCT * FROM "table"`)
}

func TestSelectColumn(t *testing.T) {
	query := Select().FromTable("table").Column("column")
	assertQuery(t, query, `SELECT "column" FROM "table"`)
}

func TestSelectColumnChained(t *testing.T) {
	query := Select().FromTable("table").Column("column1").Column("column2")
	assertQuery(t, query, `SELECT "column1", "column2" FROM "table"`)
}

func TestSelectColumns(t *testing.T) {
	query := Select().FromTable("table").Columns("column1", "column2")
	assertQuery(t, query, `SELECT "column1", "column2" FROM "table"`)
}

func TestSelectColumnWithTable(t *testing.T) {
	query := Select().FromTable("table").TableColumn("table", "column")
	assertQuery(t, query, `SELECT "table"."column" FROM "table"`)
}

func TestSelectColumnsWithTable(t *testing.T) {
	query := Select().FromTable("table").TableColumns("table", "column1", "column2")
	assertQuery(t, query, `SELECT "table"."column1", "table"."column2" FROM "table"`)
}

func TestSelectExprAs(t *testing.T) {
	query := Select().FromTable("table").ExprAs(Col("column").Count(), "total")
	assertQuery(t, query, `SELECT COUNT("column") AS "total" FROM "table"`)
}

func TestSelectFromTableAs(t *testing.T) {
	query := Select().All().FromTableAs("table", "t")
	assertQuery(t, query, `SELECT * FROM "table" AS "t"`)
}

func TestSelectFromSubquery(t *testing.T) {
	sub := Select().Column("id").FromTable("users")
	query := Select().All().FromSubquery(sub, "u")
	assertQuery(t, query, `SELECT * FROM (SELECT "id" FROM "users") AS "u"`)
}

func TestSelectAndWhere(t *testing.T) {
	query := Select().All().FromTable("table").AndWhere(Col("column1").Eq(1))
	assertQuery(t, query, `SELECT * FROM "table" WHERE "column1" = 1`)
}

func TestSelectAndWhereChained(t *testing.T) {
	query := Select().All().FromTable("table").
		AndWhere(Col("column1").Ne(1)).
		AndWhere(Col("column2").Gt(2))
	assertQuery(t, query, `SELECT * FROM "table" WHERE "column1" <> 1 AND "column2" > 2`)
}

func TestSelectWhereExprAnd(t *testing.T) {
	query := Select().All().FromTable("table").
		AndWhere(Col("column1").Eq(1).And(Col("column2").Eq(2)))
	assertQuery(t, query, `SELECT * FROM "table" WHERE "column1" = 1 AND "column2" = 2`)
}

func TestSelectWhereExprOr(t *testing.T) {
	query := Select().All().FromTable("table").
		AndWhere(Col("column1").Eq(1).Or(Col("column2").Eq(2)))
	assertQuery(t, query, `SELECT * FROM "table" WHERE "column1" = 1 OR "column2" = 2`)
}

func TestSelectWhereExprGrouped(t *testing.T) {
	query := Select().All().FromTable("table").
		AndWhere(
			Col("column1").Eq(1).And(Col("column2").Eq(2)).
				Or(Col("column3").Eq(3).Or(Col("column4").Eq(4))),
		)
	assertQuery(t, query,
		`SELECT * FROM "table" WHERE ("column1" = 1 AND "column2" = 2) OR ("column3" = 3 OR "column4" = 4)`)
}

func TestSelectWhereExprNot(t *testing.T) {
	query := Select().All().FromTable("table").AndWhere(Col("column1").Eq(1).Not())
	assertQuery(t, query, `SELECT * FROM "table" WHERE NOT "column1" = 1`)
}

func TestSelectCondWhereAll(t *testing.T) {
	query := Select().All().FromTable("table").
		CondWhere(All().
			Add(Col("column1").Eq(1)).
			Add(Col("column2").Eq(2)))
	assertQuery(t, query, `SELECT * FROM "table" WHERE "column1" = 1 AND "column2" = 2`)
}

func TestSelectCondWhereAny(t *testing.T) {
	query := Select().All().FromTable("table").
		CondWhere(Any().
			Add(Col("column1").Eq(1)).
			Add(Col("column2").Eq(2)))
	assertQuery(t, query, `SELECT * FROM "table" WHERE "column1" = 1 OR "column2" = 2`)
}

func TestSelectCondWhereNested(t *testing.T) {
	query := Select().All().FromTable("table").
		CondWhere(All().
			Add(Col("column1").Eq(1)).
			Add(Col("column2").Eq(2)).
			Add(Any().
				Add(Col("column3").Eq(3)).
				Add(Col("column4").Eq(4))))
	assertQuery(t, query,
		`SELECT * FROM "table" WHERE "column1" = 1 AND "column2" = 2 AND ("column3" = 3 OR "column4" = 4)`)
}

func TestSelectCondWhereSingleChild(t *testing.T) {
	query := Select().All().FromTable("table").
		CondWhere(Any().Add(Col("column1").Eq(1)))
	assertQuery(t, query, `SELECT * FROM "table" WHERE "column1" = 1`)
}

func TestSelectCondWhereEmpty(t *testing.T) {
	query := Select().All().FromTable("table").CondWhere(All())
	assertQuery(t, query, `SELECT * FROM "table"`)
}

func TestSelectGroupBy(t *testing.T) {
	query := Select().FromTable("table").GroupBy("column1")
	assertQuery(t, query, `SELECT  FROM "table" GROUP BY "column1"`)

	query = Select().FromTable("table").GroupBy("column1").GroupBy("column2")
	assertQuery(t, query, `SELECT  FROM "table" GROUP BY "column1", "column2"`)

	query = Select().FromTable("table").GroupBy("column1").GroupByTable("table", "column2")
	assertQuery(t, query, `SELECT  FROM "table" GROUP BY "column1", "table"."column2"`)
}

func TestSelectGroupByAndHaving(t *testing.T) {
	query := Select().FromTable("table").
		GroupBy("column1").
		AndHaving(Col("column1").Gt(1))
	assertQuery(t, query, `SELECT  FROM "table" GROUP BY "column1" HAVING "column1" > 1`)
}

func TestSelectGroupByAndHavingChained(t *testing.T) {
	query := Select().FromTable("table").
		GroupBy("column1").
		AndHaving(Col("column1").Gt(1)).
		AndHaving(Col("column2").Lt(2))
	assertQuery(t, query,
		`SELECT  FROM "table" GROUP BY "column1" HAVING "column1" > 1 AND "column2" < 2`)
}

func TestSelectCondHavingAll(t *testing.T) {
	query := Select().FromTable("table").
		GroupBy("column1").
		CondHaving(All().
			Add(Col("column1").Gt(1)).
			Add(Col("column2").Lt(2)))
	assertQuery(t, query,
		`SELECT  FROM "table" GROUP BY "column1" HAVING "column1" > 1 AND "column2" < 2`)
}

func TestSelectCondHavingAny(t *testing.T) {
	query := Select().FromTable("table").
		GroupBy("column1").
		CondHaving(Any().
			Add(Col("column1").Gt(1)).
			Add(Col("column2").Lt(2)))
	assertQuery(t, query,
		`SELECT  FROM "table" GROUP BY "column1" HAVING "column1" > 1 OR "column2" < 2`)
}

func TestSelectCondHavingNested(t *testing.T) {
	query := Select().FromTable("table").
		GroupBy("column1").
		CondHaving(All().
			Add(Col("column1").Gt(1)).
			Add(Col("column2").Lt(2)).
			Add(Any().
				Add(Col("column3").Eq(3)).
				Add(Col("column4").Ne(4))))
	assertQuery(t, query,
		`SELECT  FROM "table" GROUP BY "column1" HAVING "column1" > 1 AND "column2" < 2 AND ("column3" = 3 OR "column4" <> 4)`)
}

func TestSelectJoin(t *testing.T) {
	query := Select().All().FromTable("t1").
		Join(InnerJoin, "t2", TableCol("t1", "id").EqualsTable("t2", "t1_id"))
	assertQuery(t, query,
		`SELECT * FROM "t1" INNER JOIN "t2" ON "t1"."id" = "t2"."t1_id"`)
}

func TestSelectJoinKinds(t *testing.T) {
	on := TableCol("t1", "id").EqualsTable("t2", "t1_id")
	cases := []struct {
		kind JoinKind
		want string
	}{
		{LeftJoin, "LEFT JOIN"},
		{RightJoin, "RIGHT JOIN"},
		{FullOuterJoin, "FULL OUTER JOIN"},
		{InnerJoin, "INNER JOIN"},
	}
	for _, tc := range cases {
		query := Select().All().FromTable("t1").Join(tc.kind, "t2", on)
		assertQuery(t, query,
			`SELECT * FROM "t1" `+tc.want+` "t2" ON "t1"."id" = "t2"."t1_id"`)
	}
}

func TestSelectCrossJoin(t *testing.T) {
	query := Select().All().FromTable("t1").Join(CrossJoin, "t2", nil)
	assertQuery(t, query, `SELECT * FROM "t1" CROSS JOIN "t2"`)
}

func TestSelectJoinChained(t *testing.T) {
	query := Select().All().FromTable("t1").
		Join(InnerJoin, "t2", TableCol("t1", "id").EqualsTable("t2", "t1_id")).
		Join(LeftJoin, "t3", TableCol("t2", "id").EqualsTable("t3", "t2_id"))
	assertQuery(t, query,
		`SELECT * FROM "t1" INNER JOIN "t2" ON "t1"."id" = "t2"."t1_id" LEFT JOIN "t3" ON "t2"."id" = "t3"."t2_id"`)
}

func TestSelectOrderBy(t *testing.T) {
	query := Select().FromTable("table").OrderBy("column1", Asc)
	assertQuery(t, query, `SELECT  FROM "table" ORDER BY "column1" ASC`)

	query = Select().FromTable("table").OrderBy("column1", Desc)
	assertQuery(t, query, `SELECT  FROM "table" ORDER BY "column1" DESC`)
}

func TestSelectOrderByChained(t *testing.T) {
	query := Select().FromTable("table").
		OrderBy("column1", Asc).
		OrderBy("column2", Desc)
	assertQuery(t, query, `SELECT  FROM "table" ORDER BY "column1" ASC, "column2" DESC`)
}

func TestSelectOrderByWithNulls(t *testing.T) {
	query := Select().FromTable("table").
		OrderByWithNulls("column1", Asc, NullsFirst)
	assertQuery(t, query,
		`SELECT  FROM "table" ORDER BY "column1" ASC NULLS FIRST`,
		"SELECT  FROM `table` ORDER BY `column1` IS NULL DESC, `column1` ASC")
}

func TestSelectOrderByWithNullsLast(t *testing.T) {
	query := Select().FromTable("table").
		OrderByWithNulls("column1", Desc, NullsLast)
	assertQuery(t, query,
		`SELECT  FROM "table" ORDER BY "column1" DESC NULLS LAST`,
		"SELECT  FROM `table` ORDER BY `column1` IS NULL ASC, `column1` DESC")
}

func TestSelectLimit(t *testing.T) {
	query := Select().FromTable("table").Limit(1)
	assertQuery(t, query, `SELECT  FROM "table" LIMIT 1`)
}

func TestSelectLimitAndOffset(t *testing.T) {
	query := Select().FromTable("table").Limit(10).Offset(5)
	assertQuery(t, query, `SELECT  FROM "table" LIMIT 10 OFFSET 5`)
}

func TestSelectUnion(t *testing.T) {
	query := Select().All().FromTable("t1").
		Union(UnionDistinct, Select().All().FromTable("t2"))

	sql, err := query.ToString(Postgres)
	assert.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "t1" UNION (SELECT * FROM "t2")`, sql)

	sql, err = query.ToString(Mysql)
	assert.NoError(t, err)
	assert.Equal(t, "SELECT * FROM `t1` UNION (SELECT * FROM `t2`)", sql)

	sql, err = query.ToString(Sqlite)
	assert.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "t1" UNION SELECT * FROM "t2"`, sql)
}

func TestSelectUnionAll(t *testing.T) {
	query := Select().FromTable("t1").
		Union(UnionAll, Select().FromTable("t2"))

	sql, err := query.ToString(Postgres)
	assert.NoError(t, err)
	assert.Equal(t, `SELECT  FROM "t1" UNION ALL (SELECT  FROM "t2")`, sql)

	sql, err = query.ToString(Sqlite)
	assert.NoError(t, err)
	assert.Equal(t, `SELECT  FROM "t1" UNION ALL SELECT  FROM "t2"`, sql)
}

func TestSelectIntersectAndExcept(t *testing.T) {
	query := Select().All().FromTable("t1").
		Union(Intersect, Select().All().FromTable("t2")).
		Union(Except, Select().All().FromTable("t3"))

	sql, err := query.ToString(Postgres)
	assert.NoError(t, err)
	assert.Equal(t,
		`SELECT * FROM "t1" INTERSECT (SELECT * FROM "t2") EXCEPT (SELECT * FROM "t3")`, sql)

	sql, err = query.ToString(Sqlite)
	assert.NoError(t, err)
	assert.Equal(t,
		`SELECT * FROM "t1" INTERSECT SELECT * FROM "t2" EXCEPT SELECT * FROM "t3"`, sql)
}

func TestSelectLock(t *testing.T) {
	query := Select().All().FromTable("table").Lock(LockUpdate)

	sql, err := query.ToString(Postgres)
	assert.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "table" FOR UPDATE`, sql)

	sql, err = query.ToString(Mysql)
	assert.NoError(t, err)
	assert.Equal(t, "SELECT * FROM `table` FOR UPDATE", sql)

	// SQLite has no row locks; the clause is dropped.
	sql, err = query.ToString(Sqlite)
	assert.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "table"`, sql)
}

func TestSelectLockVariants(t *testing.T) {
	cases := []struct {
		typ  LockType
		want string
	}{
		{LockUpdate, "FOR UPDATE"},
		{LockNoKeyUpdate, "FOR NO KEY UPDATE"},
		{LockShare, "FOR SHARE"},
		{LockKeyShare, "FOR KEY SHARE"},
	}
	for _, tc := range cases {
		query := Select().All().FromTable("table").Lock(tc.typ)
		sql, err := query.ToString(Postgres)
		assert.NoError(t, err)
		assert.Equal(t, `SELECT * FROM "table" `+tc.want, sql)
	}
}

func TestSelectLockOfNowait(t *testing.T) {
	query := Select().All().FromTable("table").
		Lock(LockUpdate).LockOf("table").LockNowait()
	sql, err := query.ToString(Postgres)
	assert.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "table" FOR UPDATE OF "table" NOWAIT`, sql)
}

func TestSelectLockSkipLocked(t *testing.T) {
	query := Select().All().FromTable("table").
		Lock(LockShare).LockSkipLocked()
	sql, err := query.ToString(Postgres)
	assert.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "table" FOR SHARE SKIP LOCKED`, sql)
}

func TestSelectDeterministic(t *testing.T) {
	query := Select().All().FromTable("table").
		AndWhere(Col("a").Eq(1)).
		OrderBy("b", Desc).
		Limit(3)
	first, err := query.ToString(Postgres)
	assert.NoError(t, err)
	second, err := query.ToString(Postgres)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
