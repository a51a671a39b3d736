package profiles

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/raidtracker/internal/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE profiles (
  id       TEXT PRIMARY KEY,
  position INTEGER NOT NULL,
  data     TEXT NOT NULL
);
CREATE TABLE active_profile (
  id         TEXT PRIMARY KEY CHECK (id = 'current'),
  profile_id TEXT NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func newRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	r := NewSQLiteRepository(setupDB(t))
	r.now = func() time.Time { return time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC) }
	return r
}

func TestLoadAll_SeedsDefaultProfileOnEmptyStore(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	list, err := r.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.DefaultProfileID, list[0].ID)
	require.Len(t, list[0].Armors, 1)
	assert.Equal(t, "926 Composite Body Armor", list[0].Armors[0].Name)

	active, err := r.ActiveProfileID(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultProfileID, active)

	// The seed must be durable, not synthesized per call.
	again, err := r.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, list[0].ID, again[0].ID)
}

func TestSaveAll_ReplacesListAndKeepsOrder(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	now := time.Now().UTC()
	list := []models.Profile{
		{ID: "b", Name: "Bravo", Icon: models.IconSkull, CreatedAt: now, Keys: []models.Key{}, Armors: []models.Armor{}},
		{ID: "a", Name: "Alpha", Icon: models.IconUser, CreatedAt: now, Keys: []models.Key{}, Armors: []models.Armor{}},
	}
	require.NoError(t, r.SaveAll(ctx, list))

	got, err := r.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID, "insertion order survives the round trip")
	assert.Equal(t, "a", got[1].ID)

	require.NoError(t, r.SaveAll(ctx, list[1:]))
	got, err = r.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestLoadAll_NormalizesStoredRecords(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	// A record persisted by an older version: no keys array, armor without
	// repairDeductions or currentDurability.
	raw := `{"id":"p1","name":"Old","icon":"User","createdAt":"2025-01-01T00:00:00Z",
		"armors":[{"id":"a1","name":"Old Vest","armorClass":4,"material":"Aramid","newDurability":60}]}`
	_, err := r.db.Exec(`INSERT INTO profiles (id, position, data) VALUES ('p1', 0, ?)`, raw)
	require.NoError(t, err)

	got, err := r.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotNil(t, got[0].Keys)
	require.Len(t, got[0].Armors, 1)
	require.NotNil(t, got[0].Armors[0].RepairDeductions)
	assert.Equal(t, 8.1, got[0].Armors[0].RepairDeductions.Low)
	assert.Equal(t, 60.0, got[0].Armors[0].CurrentDurability)
}

func TestActiveProfileID_RoundTrip(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	id, err := r.ActiveProfileID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", id, "empty store has no pointer")

	require.NoError(t, r.SetActiveProfileID(ctx, "p1"))
	id, err = r.ActiveProfileID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p1", id)

	require.NoError(t, r.SetActiveProfileID(ctx, "p2"))
	id, err = r.ActiveProfileID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p2", id, "pointer row is upserted, not duplicated")
}

func TestClearAll_WipesBothRecords(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	_, err := r.LoadAll(ctx) // seeds
	require.NoError(t, err)

	require.NoError(t, r.ClearAll(ctx))

	var n int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM profiles`).Scan(&n))
	assert.Equal(t, 0, n)

	id, err := r.ActiveProfileID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", id)
}
