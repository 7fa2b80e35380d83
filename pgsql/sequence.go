package pgsql

import (
	"context"
	"database/sql"

	"pgdatadiff/metrics"
	"pgdatadiff/model"
	"pgdatadiff/util"
)

type SequenceSingleSourceQueryExecutor struct {
	Db *sql.DB
}

func NewSequenceSingleSourceQueryExecutor(db *sql.DB) *SequenceSingleSourceQueryExecutor {
	return &SequenceSingleSourceQueryExecutor{Db: db}
}

func (self *SequenceSingleSourceQueryExecutor) QuerySequenceNames(ctx context.Context, input model.QueryAllSequencesInput) ([]string, error) {
	return util.QueryListOne(ctx, self.Db, AllSequences(input.SchemaName), metrics.QuerySequenceNames), nil
}

type SequenceDualSourceQueryExecutor struct {
	FirstDb  *sql.DB
	SecondDb *sql.DB
}

func NewSequenceDualSourceQueryExecutor(first, second *sql.DB) *SequenceDualSourceQueryExecutor {
	return &SequenceDualSourceQueryExecutor{FirstDb: first, SecondDb: second}
}

func (self *SequenceDualSourceQueryExecutor) QuerySequenceLastValues(ctx context.Context, input model.QueryLastValuesInput) (model.CountResult, model.CountResult) {
	return util.QueryCountBoth(ctx, self.FirstDb, self.SecondDb, LastValue(input.SchemaName, input.SequenceName), metrics.QueryLastValue)
}
