package storage

import (
	"path/filepath"
	"testing"

	"github.com/SeamusWaldron/rubiks_cube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenAndMigrate(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	v, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), v)

	require.NoError(t, db.MigrateUp())
	v, err = db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), v)
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	seed := uint64(1<<63 + 5)
	id, err := repo.Create("first", &seed, "test")
	require.NoError(t, err)

	s, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.True(t, s.Active())
	require.NotNil(t, s.Seed)
	assert.Equal(t, seed, *s.Seed)
	require.NotNil(t, s.Notes)
	assert.Equal(t, "first", *s.Notes)

	require.NoError(t, repo.End(id))
	s, err = repo.Get(id)
	require.NoError(t, err)
	assert.False(t, s.Active())
	assert.NotNil(t, s.DurationMs)

	missing, err := repo.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListAndGetLast(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := repo.Create("", nil, "")
		require.NoError(t, err)
		ids = append(ids, id)
	}

	list, err := repo.List(10)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	last, err := repo.GetLast()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, ids[2], last.SessionID)
	assert.Nil(t, last.Seed)
}

func TestStepsRoundTripToReplay(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	steps := NewStepRepository(db)

	id, err := sessions.Create("", nil, "")
	require.NoError(t, err)

	var recorded []rubiks.Step
	cube := rubiks.New(rubiks.WithSeed(4), rubiks.WithStepHook(func(s rubiks.Step) {
		recorded = append(recorded, s)
	}))
	require.NoError(t, cube.ShuffleN(20))
	if cube.StackDepth() > 0 {
		_, err = cube.Undo()
		require.NoError(t, err)
	}

	require.NoError(t, steps.CreateBatch(id, recorded, 0, 0))

	next, err := steps.GetNextIndex(id)
	require.NoError(t, err)
	assert.Equal(t, len(recorded), next)

	records, err := steps.GetBySession(id)
	require.NoError(t, err)
	loaded, err := ToSteps(records)
	require.NoError(t, err)

	replayed := rubiks.New()
	require.NoError(t, replayed.Replay(loaded))
	assert.Equal(t, cube.State(), replayed.State())
	assert.Equal(t, cube.Stack(), replayed.Stack())
}

func TestEventsAndOrientations(t *testing.T) {
	db := openTestDB(t)
	id, err := NewSessionRepository(db).Create("", nil, "")
	require.NoError(t, err)

	events := NewEventRepository(db)
	_, err = events.Create(id, 10, EventShuffle, map[string]int{"steps": 120})
	require.NoError(t, err)
	_, err = events.Create(id, 20, EventResetPerspective, nil)
	require.NoError(t, err)

	shuffles, err := events.GetByType(id, EventShuffle)
	require.NoError(t, err)
	require.Len(t, shuffles, 1)
	assert.JSONEq(t, `{"steps":120}`, shuffles[0].PayloadJSON)

	orients := NewOrientationRepository(db)
	last, err := orients.GetLast(id)
	require.NoError(t, err)
	assert.Nil(t, last)

	_, err = orients.Create(id, 5, 0, "yellow", "blue")
	require.NoError(t, err)
	_, err = orients.Create(id, 9, 3, "blue", "white")
	require.NoError(t, err)

	last, err = orients.GetLast(id)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "blue", last.FrontColor)
	assert.Equal(t, 3, last.StepIndex)
}

func TestDeleteCascades(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	steps := NewStepRepository(db)

	id, err := sessions.Create("", nil, "")
	require.NoError(t, err)
	_, err = steps.Create(id, 0, 0, rubiks.Step{Op: rubiks.RotateUp, Depth: 1})
	require.NoError(t, err)

	require.NoError(t, sessions.Delete(id))
	n, err := steps.Count(id)
	require.NoError(t, err)
	assert.Zero(t, n)
}
