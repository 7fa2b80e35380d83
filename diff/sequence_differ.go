package diff

import (
	"context"
	"fmt"

	"github.com/gookit/slog"

	"pgdatadiff/metrics"
	"pgdatadiff/model"
	"pgdatadiff/threading"
	"pgdatadiff/util"
)

type SequenceDiffer struct {
	single  model.SequenceSingleSourceQueryExecutor
	dual    model.SequenceDualSourceQueryExecutor
	workers int
}

// NewSequenceDiffer runs at most workers sequence comparisons at a time.
func NewSequenceDiffer(single model.SequenceSingleSourceQueryExecutor, dual model.SequenceDualSourceQueryExecutor, workers int) *SequenceDiffer {
	if workers <= 0 {
		workers = 1
	}
	return &SequenceDiffer{single: single, dual: dual, workers: workers}
}

func (self *SequenceDiffer) GetAllSequences(ctx context.Context, schema model.SchemaName) ([]string, error) {
	names, err := self.single.QuerySequenceNames(ctx, model.QueryAllSequencesInput{SchemaName: schema})
	if err != nil {
		return nil, fmt.Errorf("GetAllSequences -> %w", err)
	}
	util.SortCaseInsensitive(names)
	return names, nil
}

// DiffAllSequences returns one result per sequence in the sorted sequence order.
func (self *SequenceDiffer) DiffAllSequences(ctx context.Context, schema model.SchemaName) ([]model.SequenceDiffOutput, error) {
	defer util.TimeCost()(fmt.Sprintf("[%s] sequence diff finished", schema))

	names, err := self.GetAllSequences(ctx, schema)
	if err != nil {
		return nil, fmt.Errorf("DiffAllSequences -> %w", err)
	}
	slog.Infof("[%s] comparing %d sequences", schema, len(names))

	results := threading.RunOrdered(self.workers, len(names), func(i int) model.SequenceDiffOutput {
		out := self.diffSequence(ctx, schema, model.SequenceName(names[i]))
		metrics.ObserveOutcome(out.Kind())
		slog.Infof("%s", out)
		return out
	})
	return results, nil
}

func (self *SequenceDiffer) diffSequence(ctx context.Context, schema model.SchemaName, sequence model.SequenceName) model.SequenceDiffOutput {
	first, second := self.dual.QuerySequenceLastValues(ctx, model.QueryLastValuesInput{SchemaName: schema, SequenceName: sequence})
	switch {
	case !first.Ok():
		return model.SequenceNotExists{Sequence: sequence.Name(), Source: model.First}
	case !second.Ok():
		return model.SequenceNotExists{Sequence: sequence.Name(), Source: model.Second}
	case first.Value != second.Value:
		return model.SequenceDiff{Sequence: sequence.Name(), Values: model.SequenceCountDiff{First: first.Value, Second: second.Value}}
	}
	return model.SequenceNoDiff{Sequence: sequence.Name()}
}
