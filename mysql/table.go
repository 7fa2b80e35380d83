package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/gookit/slog"

	"pgdatadiff/metrics"
	"pgdatadiff/model"
	"pgdatadiff/util"
)

type TableSingleSourceQueryExecutor struct {
	Db *sql.DB
}

func NewTableSingleSourceQueryExecutor(db *sql.DB) *TableSingleSourceQueryExecutor {
	return &TableSingleSourceQueryExecutor{Db: db}
}

func (self *TableSingleSourceQueryExecutor) QueryTableNames(ctx context.Context, input model.QueryTableNamesInput) ([]string, error) {
	sqlText := AllTablesForSchema(input.SchemaName, input.Tables)
	slog.Debugf("[%s] SqlText: %s", input.SchemaName, sqlText)
	return util.QueryListOne(ctx, self.Db, sqlText, metrics.QueryTableNames), nil
}

func (self *TableSingleSourceQueryExecutor) QueryPrimaryKeys(ctx context.Context, input model.QueryPrimaryKeysInput) []string {
	keys := util.QueryListOne(ctx, self.Db, FindPrimaryKeyForTable(input.SchemaName, input.TableName), metrics.QueryPrimaryKeys)
	slog.Debugf("[%s.%s] primary key: %s", input.SchemaName, input.TableName, strings.Join(keys, ", "))
	return keys
}

// TableDualSourceQueryExecutor hashes chunks on both databases. The column list
// comes from the first database and is fetched once per table.
type TableDualSourceQueryExecutor struct {
	FirstDb  *sql.DB
	SecondDb *sql.DB
	columns  sync.Map
}

func NewTableDualSourceQueryExecutor(first, second *sql.DB) *TableDualSourceQueryExecutor {
	return &TableDualSourceQueryExecutor{FirstDb: first, SecondDb: second}
}

func (self *TableDualSourceQueryExecutor) QueryTableCount(ctx context.Context, input model.QueryTableCountInput) (model.CountResult, model.CountResult) {
	return util.QueryCountBoth(ctx, self.FirstDb, self.SecondDb, CountRowsForTable(input.SchemaName, input.TableName), metrics.QueryTableCount)
}

func (self *TableDualSourceQueryExecutor) QueryHashData(ctx context.Context, input model.QueryHashDataInput) (string, string) {
	columns := self.tableColumns(ctx, input.SchemaName, input.TableName)
	if len(columns) == 0 {
		return fmt.Sprintf("%s: no columns found", model.First), fmt.Sprintf("%s: no columns found", model.Second)
	}
	sqlText := HashQuery(input.SchemaName, input.TableName, input.PrimaryKeys, columns, input.Position, input.Offset)
	return util.QueryHashBoth(ctx, self.FirstDb, self.SecondDb, sqlText)
}

func (self *TableDualSourceQueryExecutor) tableColumns(ctx context.Context, schema model.SchemaName, table model.TableName) []string {
	key := schema.Name() + "." + table.Name()
	if v, ok := self.columns.Load(key); ok {
		return v.([]string)
	}
	columns := util.QueryListOne(ctx, self.FirstDb, ColumnsForTable(schema, table), metrics.QueryColumns)
	if len(columns) > 0 {
		self.columns.Store(key, columns)
	}
	return columns
}
