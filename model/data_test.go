package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiffOutputString(t *testing.T) {
	cases := []struct {
		out  DiffOutput
		want string
	}{
		{NoCountDiff{Table: "table1", Count: 3}, "table1 - No difference. Total rows: 3"},
		{NoDiffWithDuration{Table: "table1", Elapsed: 1500 * time.Millisecond}, "table1 - No difference in 1500ms"},
		{TableNotExists{Table: "table1", Source: Second}, "table1 - Does not exist in second"},
		{TableDiff{Table: "table1", Counts: TableCountDiff{First: 2, Second: 1}}, "table1 - First table rows: 2, Second table rows: 1"},
		{NoPrimaryKeyFound{Table: "table1"}, "table1 - No primary key found"},
		{DataDiffWithDuration{Table: "table1", Position: 0, Offset: 10000, Elapsed: 7 * time.Millisecond}, "table1 - Data diff between rows [0,10000] - in 7ms"},
		{SequenceNoDiff{Sequence: "seq1"}, "seq1 - No difference"},
		{SequenceNotExists{Sequence: "seq1", Source: First}, "seq1 - Does not exist in first"},
		{SequenceDiff{Sequence: "seq1", Values: SequenceCountDiff{First: 2, Second: 1}}, "Difference in sequence:seq1 - First: 2, Second: 1"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.out.String(), c.out.Kind())
	}
}

func TestStatus(t *testing.T) {
	assert.Equal(t, StatusSame, NoCountDiff{}.Status())
	assert.Equal(t, StatusDiff, DataDiffWithDuration{}.Status())
	assert.Equal(t, StatusUnknown, NoPrimaryKeyFound{}.Status())
	assert.Equal(t, StatusDiff, SequenceNotExists{}.Status())
}

func TestSkipTableDiff(t *testing.T) {
	assert.True(t, SkipTableDiff(TableDiff{Table: "t"}))
	assert.True(t, SkipTableDiff(TableNotExists{Table: "t", Source: First}))
	assert.False(t, SkipTableDiff(NoCountDiff{Table: "t"}))
	assert.False(t, SkipTableDiff(NoPrimaryKeyFound{Table: "t"}))
	assert.False(t, SkipTableDiff(DataDiffWithDuration{Table: "t"}))
}
