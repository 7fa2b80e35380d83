package model

import "context"

// CountResult is the outcome of a single-row numeric query on one side.
type CountResult struct {
	Value int64
	Err   error
}

func (self CountResult) Ok() bool {
	return self.Err == nil
}

type QueryTableNamesInput struct {
	SchemaName SchemaName
	Tables     IncludedExcludedTables
}

type QueryPrimaryKeysInput struct {
	SchemaName SchemaName
	TableName  TableName
}

type QueryTableCountInput struct {
	SchemaName SchemaName
	TableName  TableName
}

type QueryHashDataInput struct {
	SchemaName  SchemaName
	TableName   TableName
	PrimaryKeys TablePrimaryKeys
	Position    TablePosition
	Offset      TableOffset
}

type QueryAllSequencesInput struct {
	SchemaName SchemaName
}

type QueryLastValuesInput struct {
	SchemaName   SchemaName
	SequenceName SequenceName
}

// TableSingleSourceQueryExecutor reads table metadata from one database.
// Production implementations log fetch failures and return an empty list.
type TableSingleSourceQueryExecutor interface {
	QueryTableNames(ctx context.Context, input QueryTableNamesInput) ([]string, error)
	QueryPrimaryKeys(ctx context.Context, input QueryPrimaryKeysInput) []string
}

// TableDualSourceQueryExecutor runs the same query against both databases concurrently.
// A failure on one side never affects the other side's result.
type TableDualSourceQueryExecutor interface {
	QueryTableCount(ctx context.Context, input QueryTableCountInput) (CountResult, CountResult)
	// QueryHashData returns one fingerprint per side; a failed side yields its error text.
	QueryHashData(ctx context.Context, input QueryHashDataInput) (string, string)
}

type SequenceSingleSourceQueryExecutor interface {
	QuerySequenceNames(ctx context.Context, input QueryAllSequencesInput) ([]string, error)
}

type SequenceDualSourceQueryExecutor interface {
	QuerySequenceLastValues(ctx context.Context, input QueryLastValuesInput) (CountResult, CountResult)
}
