package pgsql

import (
	"context"
	"database/sql"
	"strings"

	"github.com/gookit/slog"

	"pgdatadiff/metrics"
	"pgdatadiff/model"
	"pgdatadiff/util"
)

// TableSingleSourceQueryExecutor reads table metadata from the first database.
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

// TableDualSourceQueryExecutor runs row counts and chunk hashes on both databases.
type TableDualSourceQueryExecutor struct {
	FirstDb  *sql.DB
	SecondDb *sql.DB
}

func NewTableDualSourceQueryExecutor(first, second *sql.DB) *TableDualSourceQueryExecutor {
	return &TableDualSourceQueryExecutor{FirstDb: first, SecondDb: second}
}

func (self *TableDualSourceQueryExecutor) QueryTableCount(ctx context.Context, input model.QueryTableCountInput) (model.CountResult, model.CountResult) {
	return util.QueryCountBoth(ctx, self.FirstDb, self.SecondDb, CountRowsForTable(input.SchemaName, input.TableName), metrics.QueryTableCount)
}

func (self *TableDualSourceQueryExecutor) QueryHashData(ctx context.Context, input model.QueryHashDataInput) (string, string) {
	sqlText := HashQuery(input.SchemaName, input.TableName, input.PrimaryKeys, input.Position, input.Offset)
	return util.QueryHashBoth(ctx, self.FirstDb, self.SecondDb, sqlText)
}
