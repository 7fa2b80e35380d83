package pgsql

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"pgdatadiff/model"
)

func quoteTable(schema model.SchemaName, name string) string {
	return pq.QuoteIdentifier(schema.Name()) + "." + pq.QuoteIdentifier(name)
}

func quoteIdentifiers(list []string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		out = append(out, pq.QuoteIdentifier(v))
	}
	return out
}

// quoteLiterals renders a list for an IN clause, e.g. 'a', 'b'.
func quoteLiterals(list []string) string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		out = append(out, pq.QuoteLiteral(v))
	}
	return strings.Join(out, ", ")
}

// AllTablesForSchema lists the tables of one schema, narrowed by the include or exclude list.
func AllTablesForSchema(schema model.SchemaName, tables model.IncludedExcludedTables) string {
	sqlText := fmt.Sprintf("SELECT table_name FROM information_schema.tables WHERE table_schema = %s", pq.QuoteLiteral(schema.Name()))
	switch tables.Mode() {
	case model.TableModeInclude:
		sqlText += fmt.Sprintf(" AND table_name IN (%s)", quoteLiterals(tables.Tables()))
	case model.TableModeExclude:
		sqlText += fmt.Sprintf(" AND table_name NOT IN (%s)", quoteLiterals(tables.Tables()))
	}
	return sqlText
}

func CountRowsForTable(schema model.SchemaName, table model.TableName) string {
	return "SELECT count(*) FROM " + quoteTable(schema, table.Name())
}

// FindPrimaryKeyForTable returns the primary key columns in index order.
func FindPrimaryKeyForTable(schema model.SchemaName, table model.TableName) string {
	return fmt.Sprintf(`select pg_attribute.attname as column_name
from pg_index, pg_class, pg_attribute, pg_namespace
where pg_namespace.oid = pg_class.relnamespace and pg_namespace.nspname = %s and pg_class.relname = %s and indrelid = pg_class.oid and pg_attribute.attrelid = pg_class.oid and pg_attribute.attnum = any(pg_index.indkey) and indisprimary
order by array_position(pg_index.indkey, pg_attribute.attnum)`, pq.QuoteLiteral(schema.Name()), pq.QuoteLiteral(table.Name()))
}

// HashQuery fingerprints the rows [position, position+offset) in primary key order.
// An empty window hashes to NULL.
func HashQuery(schema model.SchemaName, table model.TableName, keys model.TablePrimaryKeys, position model.TablePosition, offset model.TableOffset) string {
	keysText := strings.Join(quoteIdentifiers(keys.Keys()), ", ")
	return fmt.Sprintf("SELECT md5(array_agg(md5((t.*)::varchar) ORDER BY %s)::varchar) AS md5 FROM (SELECT * FROM %s ORDER BY %s LIMIT %d OFFSET %d) AS t",
		keysText, quoteTable(schema, table.Name()), keysText, offset.Offset(), position.Position())
}

func AllSequences(schema model.SchemaName) string {
	return fmt.Sprintf("SELECT sequence_name FROM information_schema.sequences WHERE sequence_schema = %s", pq.QuoteLiteral(schema.Name()))
}

func LastValue(schema model.SchemaName, sequence model.SequenceName) string {
	return "SELECT last_value FROM " + quoteTable(schema, sequence.Name())
}
