package model

import (
	"math"
	"strings"
)

// Options is the raw run configuration as collected by the command line.
type Options struct {
	FirstDb                    string
	SecondDb                   string
	OnlyTables                 bool
	OnlySequences              bool
	OnlyCount                  bool
	ChunkSize                  int64
	StartPosition              int64
	MaxConnections             int
	IncludeTables              []string
	ExcludeTables              []string
	SchemaName                 string
	AcceptInvalidCertsFirstDb  bool
	AcceptInvalidCertsSecondDb bool
}

// DiffPayload is the validated, immutable configuration of one run.
type DiffPayload struct {
	firstDb                    string
	secondDb                   string
	onlyTables                 bool
	onlySequences              bool
	onlyCount                  bool
	chunkSize                  int64
	startPosition              int64
	maxConnections             int
	tables                     IncludedExcludedTables
	schemaName                 SchemaName
	acceptInvalidCertsFirstDb  bool
	acceptInvalidCertsSecondDb bool
}

func NewDiffPayload(opt Options) (*DiffPayload, error) {
	if strings.TrimSpace(opt.FirstDb) == "" {
		return nil, &ConfigError{Field: "first_db", Reason: "connection string is empty"}
	}
	if strings.TrimSpace(opt.SecondDb) == "" {
		return nil, &ConfigError{Field: "second_db", Reason: "connection string is empty"}
	}
	if strings.TrimSpace(opt.SchemaName) == "" {
		return nil, &ConfigError{Field: "schema_name", Reason: "schema name is empty"}
	}
	if opt.OnlyTables && opt.OnlySequences {
		return nil, &ConfigError{Field: "only_tables", Reason: "only_tables and only_sequences cannot be set together"}
	}
	if opt.ChunkSize <= 0 {
		return nil, &ConfigError{Field: "chunk_size", Reason: "must be greater than 0"}
	}
	if opt.StartPosition < 0 {
		return nil, &ConfigError{Field: "start_position", Reason: "must not be negative"}
	}
	if opt.ChunkSize > math.MaxInt64-opt.StartPosition {
		return nil, &ConfigError{Field: "chunk_size", Reason: "start_position + chunk_size overflows"}
	}
	if opt.MaxConnections <= 0 {
		return nil, &ConfigError{Field: "max_connections", Reason: "must be greater than 0"}
	}

	tables, err := NewIncludedExcludedTables(opt.IncludeTables, opt.ExcludeTables)
	if err != nil {
		return nil, err
	}

	return &DiffPayload{
		firstDb:                    opt.FirstDb,
		secondDb:                   opt.SecondDb,
		onlyTables:                 opt.OnlyTables,
		onlySequences:              opt.OnlySequences,
		onlyCount:                  opt.OnlyCount,
		chunkSize:                  opt.ChunkSize,
		startPosition:              opt.StartPosition,
		maxConnections:             opt.MaxConnections,
		tables:                     tables,
		schemaName:                 SchemaName(strings.TrimSpace(opt.SchemaName)),
		acceptInvalidCertsFirstDb:  opt.AcceptInvalidCertsFirstDb,
		acceptInvalidCertsSecondDb: opt.AcceptInvalidCertsSecondDb,
	}, nil
}

func (self *DiffPayload) FirstDb() string {
	return self.firstDb
}

func (self *DiffPayload) SecondDb() string {
	return self.secondDb
}

func (self *DiffPayload) OnlyTables() bool {
	return self.onlyTables
}

func (self *DiffPayload) OnlySequences() bool {
	return self.onlySequences
}

func (self *DiffPayload) OnlyCount() bool {
	return self.onlyCount
}

func (self *DiffPayload) ChunkSize() int64 {
	return self.chunkSize
}

func (self *DiffPayload) StartPosition() int64 {
	return self.startPosition
}

func (self *DiffPayload) MaxConnections() int {
	return self.maxConnections
}

func (self *DiffPayload) Tables() IncludedExcludedTables {
	return self.tables
}

func (self *DiffPayload) SchemaName() SchemaName {
	return self.schemaName
}

func (self *DiffPayload) AcceptInvalidCertsFirstDb() bool {
	return self.acceptInvalidCertsFirstDb
}

func (self *DiffPayload) AcceptInvalidCertsSecondDb() bool {
	return self.acceptInvalidCertsSecondDb
}

func (self *DiffPayload) AnyAcceptInvalidCerts() bool {
	return self.acceptInvalidCertsFirstDb || self.acceptInvalidCertsSecondDb
}
