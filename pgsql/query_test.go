package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pgdatadiff/model"
)

func TestAllTablesForSchema(t *testing.T) {
	all, err := model.NewIncludedExcludedTables(nil, nil)
	require.NoError(t, err)
	include, err := model.NewIncludedExcludedTables([]string{"table1", "table2"}, nil)
	require.NoError(t, err)
	exclude, err := model.NewIncludedExcludedTables(nil, []string{"table1"})
	require.NoError(t, err)

	cases := []struct {
		name   string
		tables model.IncludedExcludedTables
		want   string
	}{
		{"all", all, "SELECT table_name FROM information_schema.tables WHERE table_schema = 'public'"},
		{"include", include, "SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' AND table_name IN ('table1', 'table2')"},
		{"exclude", exclude, "SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' AND table_name NOT IN ('table1')"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, AllTablesForSchema("public", c.tables))
		})
	}
}

func TestAllTablesForSchema_EscapesLiterals(t *testing.T) {
	tables, err := model.NewIncludedExcludedTables([]string{"o'brien"}, nil)
	require.NoError(t, err)
	assert.Contains(t, AllTablesForSchema("public", tables), "IN ('o''brien')")
}

func TestCountRowsForTable(t *testing.T) {
	assert.Equal(t, `SELECT count(*) FROM "public"."table1"`, CountRowsForTable("public", "table1"))
	assert.Equal(t, `SELECT count(*) FROM "public"."Mixed""Case"`, CountRowsForTable("public", `Mixed"Case`))
}

func TestFindPrimaryKeyForTable(t *testing.T) {
	sqlText := FindPrimaryKeyForTable("sales", "orders")
	assert.Contains(t, sqlText, "pg_namespace.nspname = 'sales'")
	assert.Contains(t, sqlText, "pg_class.relname = 'orders'")
	assert.Contains(t, sqlText, "order by array_position(pg_index.indkey, pg_attribute.attnum)")
}

func TestHashQuery(t *testing.T) {
	want := `SELECT md5(array_agg(md5((t.*)::varchar) ORDER BY "id", "tenant")::varchar) AS md5 FROM (SELECT * FROM "public"."table1" ORDER BY "id", "tenant" LIMIT 10000 OFFSET 20000) AS t`
	assert.Equal(t, want, HashQuery("public", "table1", model.TablePrimaryKeys{"id", "tenant"}, 20000, 10000))
}

func TestSequenceQueries(t *testing.T) {
	assert.Equal(t, "SELECT sequence_name FROM information_schema.sequences WHERE sequence_schema = 'test_schema'", AllSequences("test_schema"))
	assert.Equal(t, `SELECT last_value FROM "test_schema"."test_sequence"`, LastValue("test_schema", "test_sequence"))
}
