package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/raidtracker/internal/backup"
)

// Export writes the active profile's armor pieces to a JSON file.
func (a *App) Export(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Export file path", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
	data, err := a.service.ExportArmors(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintf(a.out, "Exported to %s\n", path)
	return nil
}

// Import reads a JSON export file and appends its armor pieces to the active
// profile. One bad entry rejects the whole file.
func (a *App) Import(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Import file path", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		a.printErr(err)
		return err
	}
	count, err := a.service.ImportArmors(ctx, data)
	if err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintf(a.out, "Imported %d armor pieces\n", count)
	return nil
}

// Backup writes the current armor export to the configured snapshot store.
func (a *App) Backup(ctx context.Context) error {
	if a.backups == nil {
		err := fmt.Errorf("backups are disabled, set a backup driver in the config")
		a.printErr(err)
		return err
	}
	data, err := a.service.ExportArmors(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	key := backup.SnapshotKey("armors", a.service.Now())
	info, err := a.backups.Put(ctx, key, data)
	if err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintf(a.out, "Snapshot %s (%d bytes, %s driver)\n", info.Key, info.Size, a.backups.Driver())
	return nil
}

// Clear wipes every profile after a typed confirmation and reseeds the
// default one.
func (a *App) Clear(ctx context.Context) error {
	confirm, err := GetSimpleText(a.reader, "Type DELETE to wipe all profiles and data", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
	if confirm != "DELETE" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	if err := a.service.ClearAllData(ctx); err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintln(a.out, "All data cleared")
	return nil
}
