package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/raidtracker/internal/models"
)

// Profiles prints the profile list, marking the active one.
func (a *App) Profiles(ctx context.Context) error {
	list, err := a.service.Profiles(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	activeID, err := a.service.ActiveProfileID(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}

	for i, p := range list {
		marker := " "
		if p.ID == activeID {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %d. %s [%s]  keys: %d  armors: %d\n",
			marker, i+1, p.Name, p.Icon, len(p.Keys), len(p.Armors))
	}
	return nil
}

// pickProfile prompts for a profile by list position and returns it.
func (a *App) pickProfile(ctx context.Context) (*models.Profile, error) {
	list, err := a.service.Profiles(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]string, 0, len(list))
	for _, p := range list {
		options = append(options, p.Name)
	}
	idx, err := GetChoice(a.reader, "Profiles:", options, a.out)
	if err != nil {
		return nil, err
	}
	return &list[idx], nil
}

// SwitchProfile prompts for a profile and makes it active.
func (a *App) SwitchProfile(ctx context.Context) error {
	p, err := a.pickProfile(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	if err := a.service.SwitchProfile(ctx, p.ID); err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintf(a.out, "Switched to %s\n", p.Name)
	return nil
}

// pickIcon prompts for one of the known profile icons.
func (a *App) pickIcon() (models.Icon, error) {
	icons := models.Icons()
	options := make([]string, 0, len(icons))
	for _, ic := range icons {
		options = append(options, string(ic))
	}
	idx, err := GetChoice(a.reader, "Icon:", options, a.out)
	if err != nil {
		return "", err
	}
	return icons[idx], nil
}

// NewProfile prompts for a name and icon and creates the profile.
func (a *App) NewProfile(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Profile name", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
	icon, err := a.pickIcon()
	if err != nil {
		a.printErr(err)
		return err
	}
	p, err := a.service.CreateProfile(ctx, name, icon)
	if err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintf(a.out, "Created %s\n", p.Name)
	return nil
}

// EditProfile renames an existing profile and lets the user re-pick its icon.
func (a *App) EditProfile(ctx context.Context) error {
	p, err := a.pickProfile(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	name, err := GetSimpleText(a.reader, fmt.Sprintf("New name [%s]", p.Name), a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
	if name == "" {
		name = p.Name
	}
	icon, err := a.pickIcon()
	if err != nil {
		a.printErr(err)
		return err
	}
	if err := a.service.EditProfile(ctx, p.ID, name, icon); err != nil {
		a.printErr(err)
		return err
	}
	return nil
}

// DeleteProfile prompts for a profile and deletes it after confirmation.
func (a *App) DeleteProfile(ctx context.Context) error {
	p, err := a.pickProfile(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Delete %s and all its data? (y/n)", p.Name), a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
	if confirm != "y" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	if err := a.service.DeleteProfile(ctx, p.ID); err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s\n", p.Name)
	return nil
}
