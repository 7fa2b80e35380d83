package diff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gookit/slog"
	"golang.org/x/sync/errgroup"

	"pgdatadiff/model"
	"pgdatadiff/mysql"
	"pgdatadiff/pgsql"
	"pgdatadiff/util"
)

// Differ runs the table and sequence differs for one payload and merges their results.
type Differ struct {
	payload        *model.DiffPayload
	tableDiffer    *TableDiffer
	sequenceDiffer *SequenceDiffer
}

func NewDiffer(payload *model.DiffPayload, tableDiffer *TableDiffer, sequenceDiffer *SequenceDiffer) *Differ {
	return &Differ{payload: payload, tableDiffer: tableDiffer, sequenceDiffer: sequenceDiffer}
}

// Diff returns table results followed by sequence results.
func (self *Differ) Diff(ctx context.Context) ([]model.DiffOutput, error) {
	var tables []model.TableDiffOutput
	var sequences []model.SequenceDiffOutput
	var err error

	switch {
	case self.payload.OnlyTables():
		tables, err = self.tableDiffer.DiffAllTableData(ctx, self.payload)
	case self.payload.OnlySequences():
		sequences, err = self.sequenceDiffer.DiffAllSequences(ctx, self.payload.SchemaName())
	default:
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			tables, err = self.tableDiffer.DiffAllTableData(gctx, self.payload)
			return
		})
		g.Go(func() (err error) {
			sequences, err = self.sequenceDiffer.DiffAllSequences(gctx, self.payload.SchemaName())
			return
		})
		err = g.Wait()
	}
	if err != nil {
		return nil, fmt.Errorf("Diff -> %w", err)
	}

	outputs := make([]model.DiffOutput, 0, len(tables)+len(sequences))
	for _, o := range tables {
		outputs = append(outputs, o)
	}
	for _, o := range sequences {
		outputs = append(outputs, o)
	}
	return outputs, nil
}

// DiffDbs connects to both databases, runs the comparison and closes the pools.
// A connection failure aborts the run before any comparison.
func DiffDbs(ctx context.Context, payload *model.DiffPayload) ([]model.DiffOutput, error) {
	firstDriver := util.DetectDriver(payload.FirstDb())
	if secondDriver := util.DetectDriver(payload.SecondDb()); firstDriver != secondDriver {
		return nil, &model.ConfigError{Field: "second_db", Reason: fmt.Sprintf("driver %s does not match first_db driver %s", secondDriver, firstDriver)}
	}

	slog.Infof("connecting to %s databases", firstDriver)
	first, _, err := util.OpenDb(ctx, util.DbConfig{Dsn: payload.FirstDb(), MaxConnections: payload.MaxConnections(), AcceptInvalidCerts: payload.AcceptInvalidCertsFirstDb()})
	if err != nil {
		return nil, fmt.Errorf("DiffDbs:first -> %w", err)
	}
	defer first.Close()
	second, _, err := util.OpenDb(ctx, util.DbConfig{Dsn: payload.SecondDb(), MaxConnections: payload.MaxConnections(), AcceptInvalidCerts: payload.AcceptInvalidCertsSecondDb()})
	if err != nil {
		return nil, fmt.Errorf("DiffDbs:second -> %w", err)
	}
	defer second.Close()
	slog.Infof("connected, comparing schema %s", payload.SchemaName())

	differ := NewDifferForDriver(firstDriver, payload, first, second)
	outputs, err := differ.Diff(ctx)
	if err != nil {
		return nil, fmt.Errorf("DiffDbs -> %w", err)
	}
	slog.Infof("done, %d results", len(outputs))
	return outputs, nil
}

// NewDifferForDriver wires the executors of one dialect to both differs.
func NewDifferForDriver(driver string, payload *model.DiffPayload, first, second *sql.DB) *Differ {
	var tableDiffer *TableDiffer
	var sequenceDiffer *SequenceDiffer
	switch driver {
	case util.DriverMysql:
		tableDiffer = NewTableDiffer(mysql.NewTableSingleSourceQueryExecutor(first), mysql.NewTableDualSourceQueryExecutor(first, second))
		sequenceDiffer = NewSequenceDiffer(mysql.NewSequenceSingleSourceQueryExecutor(first), mysql.NewSequenceDualSourceQueryExecutor(first, second), payload.MaxConnections())
	default:
		tableDiffer = NewTableDiffer(pgsql.NewTableSingleSourceQueryExecutor(first), pgsql.NewTableDualSourceQueryExecutor(first, second))
		sequenceDiffer = NewSequenceDiffer(pgsql.NewSequenceSingleSourceQueryExecutor(first), pgsql.NewSequenceDualSourceQueryExecutor(first, second), payload.MaxConnections())
	}
	return NewDiffer(payload, tableDiffer, sequenceDiffer)
}
