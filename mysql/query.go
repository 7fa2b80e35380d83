package mysql

import (
	"fmt"
	"strings"

	"pgdatadiff/model"
	"pgdatadiff/util"
)

// QuoteIdentifier wraps a name in backticks, doubling embedded backticks.
func QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func escapeLiteral(value string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `''`).Replace(value)
}

func QuoteLiteral(value string) string {
	return util.EncloseValue(value, escapeLiteral)
}

func quoteTable(schema model.SchemaName, name string) string {
	return QuoteIdentifier(schema.Name()) + "." + QuoteIdentifier(name)
}

func quoteIdentifiers(list []string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		out = append(out, QuoteIdentifier(v))
	}
	return out
}

// AllTablesForSchema lists base tables and views of a database; MariaDB sequences are left out.
func AllTablesForSchema(schema model.SchemaName, tables model.IncludedExcludedTables) string {
	sqlText := fmt.Sprintf("SELECT table_name FROM information_schema.tables WHERE table_schema = %s AND table_type <> 'SEQUENCE'", QuoteLiteral(schema.Name()))
	switch tables.Mode() {
	case model.TableModeInclude:
		sqlText += fmt.Sprintf(" AND table_name IN (%s)", strings.Join(util.EncloseValues(tables.Tables(), escapeLiteral), ", "))
	case model.TableModeExclude:
		sqlText += fmt.Sprintf(" AND table_name NOT IN (%s)", strings.Join(util.EncloseValues(tables.Tables(), escapeLiteral), ", "))
	}
	return sqlText
}

func CountRowsForTable(schema model.SchemaName, table model.TableName) string {
	return "SELECT count(*) FROM " + quoteTable(schema, table.Name())
}

func FindPrimaryKeyForTable(schema model.SchemaName, table model.TableName) string {
	return fmt.Sprintf("SELECT column_name FROM information_schema.key_column_usage WHERE table_schema = %s AND table_name = %s AND constraint_name = 'PRIMARY' ORDER BY ordinal_position",
		QuoteLiteral(schema.Name()), QuoteLiteral(table.Name()))
}

func ColumnsForTable(schema model.SchemaName, table model.TableName) string {
	return fmt.Sprintf("SELECT column_name FROM information_schema.columns WHERE table_schema = %s AND table_name = %s ORDER BY ordinal_position",
		QuoteLiteral(schema.Name()), QuoteLiteral(table.Name()))
}

// HashQuery fingerprints the rows [position, position+offset) in primary key order as
// "<rows>:<sum of row crc32>". An empty window yields NULL.
func HashQuery(schema model.SchemaName, table model.TableName, keys model.TablePrimaryKeys, columns []string, position model.TablePosition, offset model.TableOffset) string {
	values := make([]string, 0, len(columns))
	for _, col := range quoteIdentifiers(columns) {
		values = append(values, fmt.Sprintf("COALESCE(%s, 'NULL')", col))
	}
	return fmt.Sprintf("SELECT CONCAT(COUNT(*), ':', SUM(CRC32(CONCAT_WS('|', %s)))) AS chksum FROM (SELECT * FROM %s ORDER BY %s LIMIT %d OFFSET %d) AS t",
		strings.Join(values, ", "), quoteTable(schema, table.Name()), strings.Join(quoteIdentifiers(keys.Keys()), ", "), offset.Offset(), position.Position())
}

// AllSequences lists MariaDB sequences. On MySQL the list is always empty.
func AllSequences(schema model.SchemaName) string {
	return fmt.Sprintf("SELECT table_name FROM information_schema.tables WHERE table_schema = %s AND table_type = 'SEQUENCE'", QuoteLiteral(schema.Name()))
}

func LastValue(schema model.SchemaName, sequence model.SequenceName) string {
	return "SELECT next_not_cached_value FROM " + quoteTable(schema, sequence.Name())
}
