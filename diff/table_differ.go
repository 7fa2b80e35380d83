package diff

import (
	"context"
	"fmt"
	"time"

	"github.com/gookit/slog"

	"pgdatadiff/metrics"
	"pgdatadiff/model"
	"pgdatadiff/threading"
	"pgdatadiff/util"
)

// TableDiffer compares every table in scope, count first, then chunk by chunk.
type TableDiffer struct {
	single model.TableSingleSourceQueryExecutor
	dual   model.TableDualSourceQueryExecutor
}

func NewTableDiffer(single model.TableSingleSourceQueryExecutor, dual model.TableDualSourceQueryExecutor) *TableDiffer {
	return &TableDiffer{single: single, dual: dual}
}

// GetAllTables returns the tables in scope sorted case-insensitively.
func (self *TableDiffer) GetAllTables(ctx context.Context, schema model.SchemaName, tables model.IncludedExcludedTables) ([]string, error) {
	names, err := self.single.QueryTableNames(ctx, model.QueryTableNamesInput{SchemaName: schema, Tables: tables})
	if err != nil {
		return nil, fmt.Errorf("GetAllTables -> %w", err)
	}
	util.SortCaseInsensitive(names)
	return names, nil
}

// DiffAllTableData returns one result per table in the sorted table order.
func (self *TableDiffer) DiffAllTableData(ctx context.Context, payload *model.DiffPayload) ([]model.TableDiffOutput, error) {
	defer util.TimeCost()(fmt.Sprintf("[%s] table diff finished", payload.SchemaName()))

	names, err := self.GetAllTables(ctx, payload.SchemaName(), payload.Tables())
	if err != nil {
		return nil, fmt.Errorf("DiffAllTableData -> %w", err)
	}
	slog.Infof("[%s] comparing %d tables", payload.SchemaName(), len(names))

	results := threading.RunOrdered(payload.MaxConnections(), len(names), func(i int) model.TableDiffOutput {
		out := self.diffTable(ctx, payload, model.TableName(names[i]))
		metrics.ObserveOutcome(out.Kind())
		slog.Infof("%s", out)
		return out
	})
	return results, nil
}

func (self *TableDiffer) diffTable(ctx context.Context, payload *model.DiffPayload, table model.TableName) model.TableDiffOutput {
	schema := payload.SchemaName()
	first, second := self.dual.QueryTableCount(ctx, model.QueryTableCountInput{SchemaName: schema, TableName: table})

	counted := classifyCounts(table, first, second)
	if payload.OnlyCount() || model.SkipTableDiff(counted) {
		return counted
	}

	keys := self.single.QueryPrimaryKeys(ctx, model.QueryPrimaryKeysInput{SchemaName: schema, TableName: table})
	if len(keys) == 0 {
		return model.NoPrimaryKeyFound{Table: table.Name()}
	}

	return self.diffChunks(ctx, payload, table, model.TablePrimaryKeys(keys), first.Value)
}

func classifyCounts(table model.TableName, first, second model.CountResult) model.TableDiffOutput {
	switch {
	case !first.Ok():
		slog.Debugf("[%s.%s] %s", model.First, table, first.Err)
		return model.TableNotExists{Table: table.Name(), Source: model.First}
	case !second.Ok():
		slog.Debugf("[%s.%s] %s", model.Second, table, second.Err)
		return model.TableNotExists{Table: table.Name(), Source: model.Second}
	case first.Value != second.Value:
		return model.TableDiff{Table: table.Name(), Counts: model.TableCountDiff{First: first.Value, Second: second.Value}}
	}
	return model.NoCountDiff{Table: table.Name(), Count: first.Value}
}

// diffChunks walks windows of chunk_size rows until the first mismatch.
// The loop condition is position <= total, so an empty table still issues one query.
// It stops before position+chunk can pass total, so position never overflows.
func (self *TableDiffer) diffChunks(ctx context.Context, payload *model.DiffPayload, table model.TableName, keys model.TablePrimaryKeys, total int64) model.TableDiffOutput {
	begin := time.Now()
	chunk := payload.ChunkSize()
	for position := payload.StartPosition(); position <= total; position += chunk {
		first, second := self.dual.QueryHashData(ctx, model.QueryHashDataInput{
			SchemaName:  payload.SchemaName(),
			TableName:   table,
			PrimaryKeys: keys,
			Position:    model.TablePosition(position),
			Offset:      model.TableOffset(chunk),
		})
		if first != second {
			slog.Debugf("[%s.%s] rows [%d,%d] first: %s, second: %s", payload.SchemaName(), table, position, position+chunk, first, second)
			return model.DataDiffWithDuration{
				Table:    table.Name(),
				Position: position,
				Offset:   position + chunk,
				Elapsed:  time.Since(begin),
			}
		}
		if position > total-chunk {
			break
		}
	}
	return model.NoDiffWithDuration{Table: table.Name(), Elapsed: time.Since(begin)}
}
