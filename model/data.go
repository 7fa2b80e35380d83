package model

import (
	"fmt"
	"time"
)

// Source tells which side of the comparison an outcome refers to.
type Source int

const (
	First Source = iota + 1
	Second
)

func (self Source) String() string {
	switch self {
	case First:
		return "first"
	case Second:
		return "second"
	}
	return "unknown"
}

// Status -1:unknown, 0:different, 1:same
type Status int

const (
	StatusUnknown Status = -1
	StatusDiff    Status = 0
	StatusSame    Status = 1
)

const (
	KindNoCountDiff          = "no_count_diff"
	KindNoDiffWithDuration   = "no_diff"
	KindTableNotExists       = "table_not_exists"
	KindTableCountDiff       = "table_count_diff"
	KindNoPrimaryKeyFound    = "no_primary_key"
	KindDataDiffWithDuration = "data_diff"
	KindSequenceNoDiff       = "sequence_no_diff"
	KindSequenceNotExists    = "sequence_not_exists"
	KindSequenceDiff         = "sequence_diff"
)

// DiffOutput is one result line of a run: either a TableDiffOutput or a SequenceDiffOutput.
type DiffOutput interface {
	Name() string
	Kind() string
	Status() Status
	String() string
}

// TableDiffOutput is implemented only by the table variants in this package.
type TableDiffOutput interface {
	DiffOutput
	tableDiffOutput()
}

// SequenceDiffOutput is implemented only by the sequence variants in this package.
type SequenceDiffOutput interface {
	DiffOutput
	sequenceDiffOutput()
}

type TableCountDiff struct {
	First  int64
	Second int64
}

type SequenceCountDiff struct {
	First  int64
	Second int64
}

// NoCountDiff means both sides hold the same number of rows.
type NoCountDiff struct {
	Table string
	Count int64
}

type NoDiffWithDuration struct {
	Table   string
	Elapsed time.Duration
}

type TableNotExists struct {
	Table  string
	Source Source
}

// TableDiff means the row counts differ, data is not compared.
type TableDiff struct {
	Table  string
	Counts TableCountDiff
}

type NoPrimaryKeyFound struct {
	Table string
}

// DataDiffWithDuration marks the first chunk [Position, Offset] whose fingerprints differ.
type DataDiffWithDuration struct {
	Table    string
	Position int64
	Offset   int64
	Elapsed  time.Duration
}

type SequenceNoDiff struct {
	Sequence string
}

type SequenceNotExists struct {
	Sequence string
	Source   Source
}

type SequenceDiff struct {
	Sequence string
	Values   SequenceCountDiff
}

func (NoCountDiff) tableDiffOutput()          {}
func (NoDiffWithDuration) tableDiffOutput()   {}
func (TableNotExists) tableDiffOutput()       {}
func (TableDiff) tableDiffOutput()            {}
func (NoPrimaryKeyFound) tableDiffOutput()    {}
func (DataDiffWithDuration) tableDiffOutput() {}
func (SequenceNoDiff) sequenceDiffOutput()    {}
func (SequenceNotExists) sequenceDiffOutput() {}
func (SequenceDiff) sequenceDiffOutput()      {}

func (self NoCountDiff) Name() string          { return self.Table }
func (self NoDiffWithDuration) Name() string   { return self.Table }
func (self TableNotExists) Name() string       { return self.Table }
func (self TableDiff) Name() string            { return self.Table }
func (self NoPrimaryKeyFound) Name() string    { return self.Table }
func (self DataDiffWithDuration) Name() string { return self.Table }
func (self SequenceNoDiff) Name() string       { return self.Sequence }
func (self SequenceNotExists) Name() string    { return self.Sequence }
func (self SequenceDiff) Name() string         { return self.Sequence }

func (NoCountDiff) Kind() string          { return KindNoCountDiff }
func (NoDiffWithDuration) Kind() string   { return KindNoDiffWithDuration }
func (TableNotExists) Kind() string       { return KindTableNotExists }
func (TableDiff) Kind() string            { return KindTableCountDiff }
func (NoPrimaryKeyFound) Kind() string    { return KindNoPrimaryKeyFound }
func (DataDiffWithDuration) Kind() string { return KindDataDiffWithDuration }
func (SequenceNoDiff) Kind() string       { return KindSequenceNoDiff }
func (SequenceNotExists) Kind() string    { return KindSequenceNotExists }
func (SequenceDiff) Kind() string         { return KindSequenceDiff }

func (NoCountDiff) Status() Status          { return StatusSame }
func (NoDiffWithDuration) Status() Status   { return StatusSame }
func (TableNotExists) Status() Status       { return StatusDiff }
func (TableDiff) Status() Status            { return StatusDiff }
func (NoPrimaryKeyFound) Status() Status    { return StatusUnknown }
func (DataDiffWithDuration) Status() Status { return StatusDiff }
func (SequenceNoDiff) Status() Status       { return StatusSame }
func (SequenceNotExists) Status() Status    { return StatusDiff }
func (SequenceDiff) Status() Status         { return StatusDiff }

func (self NoCountDiff) String() string {
	return fmt.Sprintf("%s - No difference. Total rows: %d", self.Table, self.Count)
}

func (self NoDiffWithDuration) String() string {
	return fmt.Sprintf("%s - No difference in %dms", self.Table, self.Elapsed.Milliseconds())
}

func (self TableNotExists) String() string {
	return fmt.Sprintf("%s - Does not exist in %s", self.Table, self.Source)
}

func (self TableDiff) String() string {
	return fmt.Sprintf("%s - First table rows: %d, Second table rows: %d", self.Table, self.Counts.First, self.Counts.Second)
}

func (self NoPrimaryKeyFound) String() string {
	return fmt.Sprintf("%s - No primary key found", self.Table)
}

func (self DataDiffWithDuration) String() string {
	return fmt.Sprintf("%s - Data diff between rows [%d,%d] - in %dms", self.Table, self.Position, self.Offset, self.Elapsed.Milliseconds())
}

func (self SequenceNoDiff) String() string {
	return fmt.Sprintf("%s - No difference", self.Sequence)
}

func (self SequenceNotExists) String() string {
	return fmt.Sprintf("%s - Does not exist in %s", self.Sequence, self.Source)
}

func (self SequenceDiff) String() string {
	return fmt.Sprintf("Difference in sequence:%s - First: %d, Second: %d", self.Sequence, self.Values.First, self.Values.Second)
}

// SkipTableDiff reports whether the count step already settled the table,
// so no primary key or chunk query is needed.
func SkipTableDiff(o TableDiffOutput) bool {
	switch o.(type) {
	case TableDiff, TableNotExists:
		return true
	}
	return false
}
