package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/raidtracker/internal/common"
	"github.com/dmitrijs2005/raidtracker/internal/dbx"
	"github.com/dmitrijs2005/raidtracker/internal/models"
)

// activeRowID is the fixed primary key of the single active-profile row.
const activeRowID = "current"

// SQLiteRepository implements Repository on top of a local SQLite database.
// Each profile is stored as one JSON document; list order is kept in the
// position column.
type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteRepository returns a repository bound to the given database handle.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

// LoadAll reads the persisted profile list. An empty store is seeded with the
// default profile before returning. Every profile passes through
// models.NormalizeProfile so downstream code sees complete records.
func (r *SQLiteRepository) LoadAll(ctx context.Context) ([]models.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data FROM profiles ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to select profiles: %v", common.ErrStorage, err)
	}
	defer rows.Close()

	var result []models.Profile
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: scan failed: %v", common.ErrStorage, err)
		}
		var p models.Profile
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%w: corrupt profile record: %v", common.ErrStorage, err)
		}
		models.NormalizeProfile(&p)
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	if len(result) == 0 {
		seed := models.SeedProfile(r.now().UTC())
		if err := r.SaveAll(ctx, []models.Profile{seed}); err != nil {
			return nil, err
		}
		if err := r.SetActiveProfileID(ctx, seed.ID); err != nil {
			return nil, err
		}
		result = []models.Profile{seed}
	}

	return result, nil
}

// SaveAll replaces the whole persisted list inside one transaction with a
// clear-then-put write.
func (r *SQLiteRepository) SaveAll(ctx context.Context, list []models.Profile) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM profiles`); err != nil {
			return err
		}
		for i := range list {
			raw, err := json.Marshal(&list[i])
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO profiles (id, position, data) VALUES (?, ?, ?)`,
				list[i].ID, i, raw)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: failed to save profiles: %v", common.ErrStorage, err)
	}
	return nil
}

// ActiveProfileID returns the stored pointer, "" when absent.
func (r *SQLiteRepository) ActiveProfileID(ctx context.Context) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`SELECT profile_id FROM active_profile WHERE id = ?`, activeRowID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: failed to read active profile: %v", common.ErrStorage, err)
	}
	return id, nil
}

// SetActiveProfileID upserts the single pointer row.
func (r *SQLiteRepository) SetActiveProfileID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO active_profile (id, profile_id) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET profile_id = excluded.profile_id`,
		activeRowID, id)
	if err != nil {
		return fmt.Errorf("%w: failed to save active profile: %v", common.ErrStorage, err)
	}
	return nil
}

// ClearAll wipes both records in one transaction.
func (r *SQLiteRepository) ClearAll(ctx context.Context) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM profiles`); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM active_profile`)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: failed to clear data: %v", common.ErrStorage, err)
	}
	return nil
}
