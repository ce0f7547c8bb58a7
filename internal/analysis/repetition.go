package analysis

import (
	"github.com/SeamusWaldron/rubiks_cube"
	"github.com/SeamusWaldron/rubiks_cube/internal/storage"
)

// Cancellation represents an operation immediately followed by its inverse.
type Cancellation struct {
	Index1 int    `json:"index1" yaml:"index1"`
	Index2 int    `json:"index2" yaml:"index2"`
	Op1    string `json:"op1" yaml:"op1"`
	Op2    string `json:"op2" yaml:"op2"`
	TsMs   int64  `json:"ts_ms" yaml:"ts_ms"`
}

// MergeOpportunity represents a run of one operation that a shorter
// sequence would reproduce, such as three quarter turns for one inverse.
type MergeOpportunity struct {
	StartIndex int      `json:"start_index" yaml:"start_index"`
	Op         string   `json:"op" yaml:"op"`
	Run        int      `json:"run" yaml:"run"`
	Merged     []string `json:"merged" yaml:"merged"`
	TsMs       int64    `json:"ts_ms" yaml:"ts_ms"`
}

// BackAndForthPattern represents two operations alternating, e.g. A B A B A B.
type BackAndForthPattern struct {
	StartIndex int      `json:"start_index" yaml:"start_index"`
	EndIndex   int      `json:"end_index" yaml:"end_index"`
	Pattern    []string `json:"pattern" yaml:"pattern"`
	Count      int      `json:"count" yaml:"count"`
	TsMs       int64    `json:"ts_ms" yaml:"ts_ms"`
}

// RepetitionReport contains all repetition analysis results.
type RepetitionReport struct {
	ImmediateCancellations []Cancellation        `json:"immediate_cancellations" yaml:"immediate_cancellations"`
	MergeOpportunities     []MergeOpportunity    `json:"merge_opportunities" yaml:"merge_opportunities"`
	BackAndForthPatterns   []BackAndForthPattern `json:"back_and_forth_patterns" yaml:"back_and_forth_patterns"`
	TotalWastedSteps       int                   `json:"total_wasted_steps" yaml:"total_wasted_steps"`
	Efficiency             float64               `json:"efficiency" yaml:"efficiency"`
}

// period is the number of repetitions of op that return the cube to where
// it started.
func period(op rubiks.Operation) int {
	if op.Family() == rubiks.FamilyInversion {
		return 2
	}
	return 4
}

// AnalyzeRepetitions looks for wasted motion in the forward steps of a
// session. Indices in the report are step indices.
func AnalyzeRepetitions(records []storage.StepRecord) *RepetitionReport {
	report := &RepetitionReport{
		ImmediateCancellations: []Cancellation{},
		MergeOpportunities:     []MergeOpportunity{},
		BackAndForthPatterns:   []BackAndForthPattern{},
		Efficiency:             1.0,
	}

	ops, idx := forwardOps(records)
	if len(ops) == 0 {
		return report
	}
	at := func(i int) storage.StepRecord { return records[idx[i]] }

	for i := 0; i < len(ops)-1; i++ {
		if ops[i+1] == ops[i].Inverse() {
			report.ImmediateCancellations = append(report.ImmediateCancellations, Cancellation{
				Index1: at(i).StepIndex,
				Index2: at(i + 1).StepIndex,
				Op1:    ops[i].String(),
				Op2:    ops[i+1].String(),
				TsMs:   at(i).TsMs,
			})
		}
	}

	// Runs of three or more of the same quarter turn.
	for i := 0; i < len(ops); {
		j := i
		for j < len(ops) && ops[j] == ops[i] {
			j++
		}
		run := j - i
		if period(ops[i]) == 4 && run >= 3 {
			report.MergeOpportunities = append(report.MergeOpportunities, MergeOpportunity{
				StartIndex: at(i).StepIndex,
				Op:         ops[i].String(),
				Run:        run,
				Merged:     opNames(Simplify(ops[i:j])),
				TsMs:       at(i).TsMs,
			})
		}
		i = j
	}

	report.BackAndForthPatterns = findBackAndForth(ops, func(i int) (int, int64) {
		return at(i).StepIndex, at(i).TsMs
	})

	simplified := Simplify(ops)
	report.TotalWastedSteps = len(ops) - len(simplified)
	report.Efficiency = CalculateEfficiency(len(ops), len(simplified))

	return report
}

// findBackAndForth finds two distinct operations alternating at least
// three times.
func findBackAndForth(ops []rubiks.Operation, pos func(int) (int, int64)) []BackAndForthPattern {
	patterns := []BackAndForthPattern{}

	i := 0
	for i < len(ops)-3 {
		a, b := ops[i], ops[i+1]
		if a == b {
			i++
			continue
		}

		count := 1
		j := i + 2
		for j < len(ops)-1 && ops[j] == a && ops[j+1] == b {
			count++
			j += 2
		}

		if count >= 3 {
			start, ts := pos(i)
			end, _ := pos(i + count*2 - 1)
			patterns = append(patterns, BackAndForthPattern{
				StartIndex: start,
				EndIndex:   end,
				Pattern:    []string{a.String(), b.String()},
				Count:      count,
				TsMs:       ts,
			})
			i = j
		} else {
			i++
		}
	}

	return patterns
}

type opRun struct {
	op    rubiks.Operation
	count int
}

// Simplify returns the shortest sequence reachable from ops by folding
// adjacent repeats and inverse pairs. The result has the same effect on
// the cube as ops.
func Simplify(ops []rubiks.Operation) []rubiks.Operation {
	var stack []opRun

	for _, op := range ops {
		if n := len(stack); n > 0 {
			top := &stack[n-1]
			switch {
			case top.op == op:
				top.count++
			case top.op.Inverse() == op:
				top.count--
			default:
				stack = append(stack, opRun{op: op, count: 1})
				continue
			}
			if top.count%period(top.op) == 0 {
				stack = stack[:n-1]
			}
			continue
		}
		stack = append(stack, opRun{op: op, count: 1})
	}

	result := make([]rubiks.Operation, 0, len(stack))
	for _, r := range stack {
		switch {
		case period(r.op) == 4 && r.count == 3:
			result = append(result, r.op.Inverse())
		default:
			for k := 0; k < r.count; k++ {
				result = append(result, r.op)
			}
		}
	}
	return result
}

// CalculateEfficiency returns optimized/original, or 1 for an empty session.
func CalculateEfficiency(original, optimized int) float64 {
	if original == 0 {
		return 1.0
	}
	return float64(optimized) / float64(original)
}

func opNames(ops []rubiks.Operation) []string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.String()
	}
	return names
}
