package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Profiles(ctx context.Context) error
	SwitchProfile(ctx context.Context) error
	NewProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	DeleteProfile(ctx context.Context) error
	Keys(ctx context.Context) error
	AddKey(ctx context.Context) error
	EditKey(ctx context.Context) error
	DeleteKey(ctx context.Context) error
	ResetKey(ctx context.Context) error
	AddRun(ctx context.Context) error
	EditRun(ctx context.Context) error
	DeleteRun(ctx context.Context) error
	Armors(ctx context.Context) error
	AddArmor(ctx context.Context) error
	EditArmor(ctx context.Context) error
	DeleteArmor(ctx context.Context) error
	Repair(ctx context.Context) error
	ApplyRepair(ctx context.Context) error
	Stats(ctx context.Context) error
	Trend(ctx context.Context) error
	Export(ctx context.Context) error
	Import(ctx context.Context) error
	Backup(ctx context.Context) error
	Clear(ctx context.Context) error
}

const helpText = `Available commands:
  profiles | switch | newprofile | editprofile | delprofile
  keys | addkey | editkey | delkey | resetkey
  addrun | editrun | delrun
  armors | addarmor | editarmor | delarmor
  repair | apply
  stats | trend
  export | import | backup | clear
  help | exit`

// runREPL starts a simple read-eval-print loop for the tracker CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("rt> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "profiles":
			_ = a.Profiles(ctx)

		case "switch":
			_ = a.SwitchProfile(ctx)

		case "newprofile":
			_ = a.NewProfile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "delprofile":
			_ = a.DeleteProfile(ctx)

		case "k", "keys":
			_ = a.Keys(ctx)

		case "addkey":
			_ = a.AddKey(ctx)

		case "editkey":
			_ = a.EditKey(ctx)

		case "delkey":
			_ = a.DeleteKey(ctx)

		case "resetkey":
			_ = a.ResetKey(ctx)

		case "addrun":
			_ = a.AddRun(ctx)

		case "editrun":
			_ = a.EditRun(ctx)

		case "delrun":
			_ = a.DeleteRun(ctx)

		case "a", "armors":
			_ = a.Armors(ctx)

		case "addarmor":
			_ = a.AddArmor(ctx)

		case "editarmor":
			_ = a.EditArmor(ctx)

		case "delarmor":
			_ = a.DeleteArmor(ctx)

		case "repair":
			_ = a.Repair(ctx)

		case "apply":
			_ = a.ApplyRepair(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "trend":
			_ = a.Trend(ctx)

		case "export":
			_ = a.Export(ctx)

		case "import":
			_ = a.Import(ctx)

		case "backup":
			_ = a.Backup(ctx)

		case "clear":
			_ = a.Clear(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
