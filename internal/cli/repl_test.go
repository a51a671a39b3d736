package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) Profiles(ctx context.Context) error      { return f.record("profiles") }
func (f *fakeExec) SwitchProfile(ctx context.Context) error { return f.record("switch") }
func (f *fakeExec) NewProfile(ctx context.Context) error    { return f.record("newprofile") }
func (f *fakeExec) EditProfile(ctx context.Context) error   { return f.record("editprofile") }
func (f *fakeExec) DeleteProfile(ctx context.Context) error { return f.record("delprofile") }
func (f *fakeExec) Keys(ctx context.Context) error          { return f.record("keys") }
func (f *fakeExec) AddKey(ctx context.Context) error        { return f.record("addkey") }
func (f *fakeExec) EditKey(ctx context.Context) error       { return f.record("editkey") }
func (f *fakeExec) DeleteKey(ctx context.Context) error     { return f.record("delkey") }
func (f *fakeExec) ResetKey(ctx context.Context) error      { return f.record("resetkey") }
func (f *fakeExec) AddRun(ctx context.Context) error        { return f.record("addrun") }
func (f *fakeExec) EditRun(ctx context.Context) error       { return f.record("editrun") }
func (f *fakeExec) DeleteRun(ctx context.Context) error     { return f.record("delrun") }
func (f *fakeExec) Armors(ctx context.Context) error        { return f.record("armors") }
func (f *fakeExec) AddArmor(ctx context.Context) error      { return f.record("addarmor") }
func (f *fakeExec) EditArmor(ctx context.Context) error     { return f.record("editarmor") }
func (f *fakeExec) DeleteArmor(ctx context.Context) error   { return f.record("delarmor") }
func (f *fakeExec) Repair(ctx context.Context) error        { return f.record("repair") }
func (f *fakeExec) ApplyRepair(ctx context.Context) error   { return f.record("apply") }
func (f *fakeExec) Stats(ctx context.Context) error         { return f.record("stats") }
func (f *fakeExec) Trend(ctx context.Context) error         { return f.record("trend") }
func (f *fakeExec) Export(ctx context.Context) error        { return f.record("export") }
func (f *fakeExec) Import(ctx context.Context) error        { return f.record("import") }
func (f *fakeExec) Backup(ctx context.Context) error        { return f.record("backup") }
func (f *fakeExec) Clear(ctx context.Context) error         { return f.record("clear") }

func runScript(t *testing.T, script ...string) *fakeExec {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	f := &fakeExec{}
	scanner := bufio.NewScanner(strings.NewReader(strings.Join(script, "\n") + "\n"))
	runREPL(context.Background(), f, func() string { return "" }, scanner)
	return f
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	f := runScript(t,
		"profiles",
		"keys",
		"addkey",
		"addrun",
		"armors",
		"repair",
		"stats",
		"export",
		"exit",
	)
	assert.Equal(t, []string{"profiles", "keys", "addkey", "addrun", "armors", "repair", "stats", "export"}, f.calls)
}

func TestRunREPL_Aliases(t *testing.T) {
	f := runScript(t, "k", "a", "quit")
	assert.Equal(t, []string{"keys", "armors"}, f.calls)
}

func TestRunREPL_UnknownAndEmptyLines(t *testing.T) {
	f := runScript(t, "", "   ", "frobnicate", "keys", "exit")
	assert.Equal(t, []string{"keys"}, f.calls)
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	f := runScript(t, "keys")
	assert.Equal(t, []string{"keys"}, f.calls)
}

func TestRunREPL_HelpDoesNotDispatch(t *testing.T) {
	f := runScript(t, "help", "exit")
	assert.Empty(t, f.calls)
}
