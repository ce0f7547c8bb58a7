// Package analysis computes statistics over recorded sessions.
package analysis

import (
	"time"

	"github.com/SeamusWaldron/rubiks_cube/internal/storage"
)

// SessionSummary contains statistics for a single session.
type SessionSummary struct {
	SessionID          string         `json:"session_id" yaml:"session_id"`
	StartedAt          string         `json:"started_at" yaml:"started_at"`
	EndedAt            string         `json:"ended_at,omitempty" yaml:"ended_at,omitempty"`
	DurationMs         int64          `json:"duration_ms" yaml:"duration_ms"`
	TotalSteps         int            `json:"total_steps" yaml:"total_steps"`
	UndoSteps          int            `json:"undo_steps" yaml:"undo_steps"`
	Cancellations      int            `json:"cancellations" yaml:"cancellations"`
	FamilyCounts       map[string]int `json:"family_counts" yaml:"family_counts"`
	OperationCounts    map[string]int `json:"operation_counts" yaml:"operation_counts"`
	MaxStackDepth      int            `json:"max_stack_depth" yaml:"max_stack_depth"`
	FinalStackDepth    int            `json:"final_stack_depth" yaml:"final_stack_depth"`
	StepsPerSecond     float64        `json:"steps_per_second" yaml:"steps_per_second"`
	LongestPauseMs     int64          `json:"longest_pause_ms" yaml:"longest_pause_ms"`
	OrientationChanges int            `json:"orientation_changes" yaml:"orientation_changes"`
	Notes              string         `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Summarize builds a summary from a session row and its steps. sess may
// be nil when only the steps are known.
func Summarize(sess *storage.Session, steps []storage.StepRecord, orientations int) *SessionSummary {
	s := &SessionSummary{
		FamilyCounts:       make(map[string]int),
		OperationCounts:    make(map[string]int),
		OrientationChanges: orientations,
	}

	if sess != nil {
		s.SessionID = sess.SessionID
		s.StartedAt = sess.StartedAt.Format(time.RFC3339)
		if sess.EndedAt != nil {
			s.EndedAt = sess.EndedAt.Format(time.RFC3339)
		}
		if sess.DurationMs != nil {
			s.DurationMs = *sess.DurationMs
		}
		if sess.Notes != nil {
			s.Notes = *sess.Notes
		}
	}

	depth := 0
	for _, st := range steps {
		s.TotalSteps++
		s.FamilyCounts[st.Family]++
		s.OperationCounts[st.Operation]++

		switch {
		case st.Undo:
			s.UndoSteps++
		case st.StackDepth < depth:
			// A forward step that shrank the stack cancelled the top.
			s.Cancellations++
		}

		depth = st.StackDepth
		if depth > s.MaxStackDepth {
			s.MaxStackDepth = depth
		}
	}
	s.FinalStackDepth = depth

	if s.DurationMs == 0 && len(steps) > 0 {
		s.DurationMs = steps[len(steps)-1].TsMs - steps[0].TsMs
	}
	s.StepsPerSecond = CalculateStepsPerSecond(len(steps), s.DurationMs)
	s.LongestPauseMs = FindLongestPause(steps)

	return s
}

// PauseInfo represents a pause between two steps.
type PauseInfo struct {
	AfterStepIndex int   `json:"after_step_index" yaml:"after_step_index"`
	DurationMs     int64 `json:"duration_ms" yaml:"duration_ms"`
	TsMs           int64 `json:"ts_ms" yaml:"ts_ms"`
}

// AnalyzePauses finds all gaps between steps of at least thresholdMs.
func AnalyzePauses(steps []storage.StepRecord, thresholdMs int64) []PauseInfo {
	var pauses []PauseInfo

	for i := 1; i < len(steps); i++ {
		gap := steps[i].TsMs - steps[i-1].TsMs
		if gap >= thresholdMs {
			pauses = append(pauses, PauseInfo{
				AfterStepIndex: steps[i-1].StepIndex,
				DurationMs:     gap,
				TsMs:           steps[i-1].TsMs,
			})
		}
	}

	return pauses
}

// CalculateStepsPerSecond returns n steps over durationMs as a rate.
func CalculateStepsPerSecond(n int, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(n) / (float64(durationMs) / 1000.0)
}

// FindLongestPause finds the longest gap between consecutive steps.
func FindLongestPause(steps []storage.StepRecord) int64 {
	var longest int64

	for i := 1; i < len(steps); i++ {
		gap := steps[i].TsMs - steps[i-1].TsMs
		if gap > longest {
			longest = gap
		}
	}

	return longest
}
