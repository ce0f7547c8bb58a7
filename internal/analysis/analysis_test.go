package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/rubiks_cube"
	"github.com/SeamusWaldron/rubiks_cube/internal/storage"
)

// records builds forward step records one second apart with a depth that
// simply counts up.
func records(ops ...rubiks.Operation) []storage.StepRecord {
	out := make([]storage.StepRecord, len(ops))
	for i, op := range ops {
		out[i] = storage.StepRecord{
			SessionID:  "s1",
			StepIndex:  i,
			TsMs:       int64(i) * 1000,
			Operation:  op.String(),
			Family:     op.Family().String(),
			StackDepth: i + 1,
		}
	}
	return out
}

func TestSummarize(t *testing.T) {
	steps := []storage.StepRecord{
		{StepIndex: 0, TsMs: 0, Operation: "rotate_up", Family: "rotation", StackDepth: 1},
		{StepIndex: 1, TsMs: 100, Operation: "shift_left_column_up", Family: "shift", StackDepth: 2},
		{StepIndex: 2, TsMs: 1100, Operation: "shift_left_column_down", Family: "shift", StackDepth: 1},
		{StepIndex: 3, TsMs: 1200, Operation: "rotate_down", Family: "rotation", Undo: true, StackDepth: 0},
	}

	s := Summarize(nil, steps, 2)

	assert.Equal(t, 4, s.TotalSteps)
	assert.Equal(t, 1, s.UndoSteps)
	assert.Equal(t, 1, s.Cancellations)
	assert.Equal(t, 2, s.MaxStackDepth)
	assert.Equal(t, 0, s.FinalStackDepth)
	assert.Equal(t, int64(1200), s.DurationMs)
	assert.Equal(t, int64(1000), s.LongestPauseMs)
	assert.Equal(t, 2, s.OrientationChanges)
	assert.Equal(t, 2, s.FamilyCounts["rotation"])
	assert.Equal(t, 2, s.FamilyCounts["shift"])
	assert.Equal(t, 1, s.OperationCounts["rotate_up"])
	assert.InDelta(t, 3.333, s.StepsPerSecond, 0.01)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil, 0)
	assert.Zero(t, s.TotalSteps)
	assert.Zero(t, s.StepsPerSecond)
	assert.Zero(t, s.LongestPauseMs)
}

func TestAnalyzePauses(t *testing.T) {
	steps := []storage.StepRecord{
		{StepIndex: 0, TsMs: 0},
		{StepIndex: 1, TsMs: 100},
		{StepIndex: 2, TsMs: 900},
		{StepIndex: 3, TsMs: 1000},
	}

	pauses := AnalyzePauses(steps, 500)
	require.Len(t, pauses, 1)
	assert.Equal(t, 1, pauses[0].AfterStepIndex)
	assert.Equal(t, int64(800), pauses[0].DurationMs)
}

func TestRollingHashMatchesFreshWindow(t *testing.T) {
	rolled := NewRollingHash(3)
	for _, tok := range []uint8{4, 9, 2, 7, 1} {
		rolled.Roll(tok)
	}

	fresh := NewRollingHash(3)
	for _, tok := range []uint8{2, 7, 1} {
		fresh.Roll(tok)
	}

	assert.True(t, rolled.Ready())
	assert.Equal(t, fresh.Hash(), rolled.Hash())
	assert.Equal(t, []uint8{2, 7, 1}, rolled.Window())
}

func TestMineNGrams(t *testing.T) {
	a, b, c := rubiks.RotateUp, rubiks.ShiftLeftColumnUp, rubiks.InvertVertical
	report := MineNGrams(records(a, b, c, a, b, c, a, b), 2, 3, 1)

	require.Len(t, report.TopNGrams[2], 1)
	top := report.TopNGrams[2][0]
	assert.Equal(t, []string{"rotate_up", "shift_left_column_up"}, top.Sequence)
	assert.Equal(t, 3, top.Count)
	require.Len(t, top.Occurrences, 3)
	assert.Equal(t, 3, top.Occurrences[1].StartIndex)

	require.Len(t, report.TopNGrams[3], 1)
	assert.Equal(t, []string{"rotate_up", "shift_left_column_up", "invert_vertical"}, report.TopNGrams[3][0].Sequence)
	assert.Equal(t, 2, report.TopNGrams[3][0].Count)
}

func TestMineNGramsSkipsUndoSteps(t *testing.T) {
	recs := records(rubiks.RotateUp, rubiks.ShiftTopRowLeft, rubiks.RotateUp, rubiks.ShiftTopRowLeft)
	recs = append(recs[:2], append([]storage.StepRecord{{
		StepIndex: 99, Operation: "rotate_down", Family: "rotation", Undo: true,
	}}, recs[2:]...)...)

	report := MineNGrams(recs, 2, 2, 5)
	require.NotEmpty(t, report.TopNGrams[2])
	assert.Equal(t, 2, report.TopNGrams[2][0].Count)
}

func TestMineNGramsTooShort(t *testing.T) {
	report := MineNGrams(records(rubiks.RotateUp), 2, 4, 5)
	assert.Empty(t, report.TopNGrams)
}

func TestMergeReports(t *testing.T) {
	a, b := rubiks.RotateUp, rubiks.ShiftTopRowLeft
	r1 := MineNGrams(records(a, b, a, b), 2, 2, 5)
	r2 := MineNGrams(records(a, b, a, b, a, b), 2, 2, 5)

	merged := MergeReports([]*NGramReport{r1, r2}, 1)
	require.Len(t, merged.TopNGrams[2], 1)
	assert.Equal(t, []string{"rotate_up", "shift_top_row_left"}, merged.TopNGrams[2][0].Sequence)
	assert.Equal(t, 5, merged.TopNGrams[2][0].Count)
}

func TestSimplify(t *testing.T) {
	up, down := rubiks.RotateUp, rubiks.RotateDown
	tests := []struct {
		name string
		in   []rubiks.Operation
		want []rubiks.Operation
	}{
		{"three quarter turns", []rubiks.Operation{up, up, up}, []rubiks.Operation{down}},
		{"full turn", []rubiks.Operation{up, up, up, up}, []rubiks.Operation{}},
		{"double inversion", []rubiks.Operation{rubiks.InvertHorizontal, rubiks.InvertHorizontal}, []rubiks.Operation{}},
		{"nested inverse pairs", []rubiks.Operation{up, rubiks.ShiftLeftColumnUp, rubiks.ShiftLeftColumnDown, down}, []rubiks.Operation{}},
		{"half turn kept", []rubiks.Operation{up, up}, []rubiks.Operation{up, up}},
		{"partial cancel", []rubiks.Operation{up, down, up}, []rubiks.Operation{up}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Simplify(tt.in))
		})
	}
}

func TestSimplifyPreservesState(t *testing.T) {
	ops := []rubiks.Operation{
		rubiks.RotateUp, rubiks.RotateUp, rubiks.RotateUp,
		rubiks.ShiftTopRowLeft, rubiks.ShiftTopRowRight,
		rubiks.InvertVertical, rubiks.ShiftRightColumnUp,
	}

	full := rubiks.New()
	require.NoError(t, full.ApplyAll(ops...))
	short := rubiks.New()
	require.NoError(t, short.ApplyAll(Simplify(ops)...))

	assert.Equal(t, full.State(), short.State())
}

func TestAnalyzeRepetitions(t *testing.T) {
	up, shift := rubiks.RotateUp, rubiks.ShiftBottomRowLeft
	report := AnalyzeRepetitions(records(up, rubiks.RotateDown, shift, up, shift, up, shift, up))

	require.Len(t, report.ImmediateCancellations, 1)
	assert.Equal(t, 0, report.ImmediateCancellations[0].Index1)
	assert.Equal(t, 1, report.ImmediateCancellations[0].Index2)

	require.Len(t, report.BackAndForthPatterns, 1)
	assert.Equal(t, 3, report.BackAndForthPatterns[0].Count)
	assert.Equal(t, 2, report.BackAndForthPatterns[0].StartIndex)
	assert.Equal(t, 7, report.BackAndForthPatterns[0].EndIndex)

	assert.Equal(t, 2, report.TotalWastedSteps)
	assert.InDelta(t, 0.75, report.Efficiency, 1e-9)
}

func TestAnalyzeRepetitionsMergeRun(t *testing.T) {
	op := rubiks.ShiftLeftColumnUp
	report := AnalyzeRepetitions(records(op, op, op))

	require.Len(t, report.MergeOpportunities, 1)
	assert.Equal(t, 3, report.MergeOpportunities[0].Run)
	assert.Equal(t, []string{"shift_left_column_down"}, report.MergeOpportunities[0].Merged)
	assert.Equal(t, 2, report.TotalWastedSteps)
}
