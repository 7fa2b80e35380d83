package model

// SchemaName, TableName and SequenceName are only ever used as query parameters.
type SchemaName string

func (self SchemaName) Name() string {
	return string(self)
}

type TableName string

func (self TableName) Name() string {
	return string(self)
}

type SequenceName string

func (self SequenceName) Name() string {
	return string(self)
}

// TablePrimaryKeys holds the primary key columns of a table in index order.
type TablePrimaryKeys []string

func (self TablePrimaryKeys) Keys() []string {
	return []string(self)
}

// TablePosition is the number of rows skipped before a chunk starts.
type TablePosition int64

func (self TablePosition) Position() int64 {
	return int64(self)
}

// TableOffset is the number of rows in a chunk.
type TableOffset int64

func (self TableOffset) Offset() int64 {
	return int64(self)
}
