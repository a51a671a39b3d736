package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/raidtracker/internal/common"
	"github.com/dmitrijs2005/raidtracker/internal/models"
)

// ExportArmors renders the active profile's armor pieces as the versioned
// transfer payload, ready to be written to a file.
func (t *Tracker) ExportArmors(ctx context.Context) ([]byte, error) {
	p, err := t.ActiveProfile(ctx)
	if err != nil {
		return nil, err
	}
	payload := models.ExportArmors(p.Armors, t.now().UTC())
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrFormat, err)
	}
	return data, nil
}

// ImportArmors parses a transfer payload and appends its armor pieces to the
// active profile as fresh instances. The batch is validated up front and
// applied all or nothing: one bad entry rejects the whole file. Returns the
// number of pieces imported.
func (t *Tracker) ImportArmors(ctx context.Context, data []byte) (int, error) {
	p, err := t.ActiveProfile(ctx)
	if err != nil {
		return 0, err
	}

	var payload models.ExportPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrFormat, err)
	}
	if payload.Armors == nil {
		return 0, fmt.Errorf("%w: missing armors list", common.ErrFormat)
	}

	for i := range payload.Armors {
		if err := models.ValidateTransfer(&payload.Armors[i]); err != nil {
			return 0, fmt.Errorf("entry %d: %w", i+1, err)
		}
	}

	now := t.now().UTC()
	for i := range payload.Armors {
		p.Armors = append(p.Armors, payload.Armors[i].ToArmor(t.newID(), now))
	}
	if err := t.flush(ctx); err != nil {
		return 0, err
	}
	t.log.Info(ctx, "armors imported", "count", len(payload.Armors))
	return len(payload.Armors), nil
}
