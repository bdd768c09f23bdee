// Package commands holds the ONTX CLI subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ontx/ontx"
	"github.com/ontx/ontx/errors"
	"github.com/ontx/ontx/logger"
	"github.com/ontx/ontx/onto"
	"github.com/ontx/ontx/punning"
	"github.com/ontx/ontx/store"
)

var (
	punFormat string
	punApply  bool
)

// PunCmd plans punning repair over statement snapshots.
var PunCmd = &cobra.Command{
	Use:   "pun SNAPSHOT...",
	Short: "Plan punning repair over statement snapshots",
	Long: `pun - Plan punning repair over statement snapshots

Loads one or more JSON statement snapshots, finds individuals whose
identifier collides with a declared class, and plans the change script that
converts their data property assertions into annotations.

The plan is printed; nothing is modified unless --apply is given, in which
case the script is executed and the snapshots are rewritten in place.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPunCommand,
}

func init() {
	PunCmd.Flags().StringVarP(&punFormat, "format", "f", "table", "Output format (table/json)")
	PunCmd.Flags().BoolVar(&punApply, "apply", false, "Apply the plan and rewrite the snapshots")
}

func runPunCommand(cmd *cobra.Command, args []string) error {
	containers := make([]ontx.Container, 0, len(args))
	stores := make(map[ontx.Container]string, len(args))
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "failed to open snapshot %s", path)
		}
		mem, err := store.DecodeSnapshot(f)
		f.Close()
		if err != nil {
			return errors.Wrapf(err, "failed to load snapshot %s", path)
		}
		logger.Logger.Debugw("loaded snapshot", "file", path, "statements", mem.Len())
		containers = append(containers, mem)
		stores[mem] = path
	}

	planner, err := punning.NewPlannerWithOptions(store.Factory{}, containers, punning.PlannerOptions{
		Logger: logger.Logger,
	})
	if err != nil {
		return errors.Wrap(err, "failed to plan punning repair")
	}
	changes := planner.Changes()

	switch punFormat {
	case "json":
		if err := printChangesJSON(changes, stores); err != nil {
			return err
		}
	case "table":
		printChangesTable(changes, stores)
	default:
		return errors.Wrapf(errors.ErrInvalidArgument, "unknown format %q", punFormat)
	}

	if !punApply {
		return nil
	}
	if err := ontx.Apply(changes); err != nil {
		return errors.Wrap(err, "failed to apply plan")
	}
	for _, ont := range containers {
		path := stores[ont]
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "failed to rewrite snapshot %s", path)
		}
		if err := store.EncodeSnapshot(f, ont.(*store.MemStore)); err != nil {
			f.Close()
			return errors.Wrapf(err, "failed to rewrite snapshot %s", path)
		}
		if err := f.Close(); err != nil {
			return errors.Wrapf(err, "failed to rewrite snapshot %s", path)
		}
	}
	pterm.Success.Printfln("Applied %d changes across %d snapshots", len(changes), len(containers))
	return nil
}

type changeOutput struct {
	Op        string          `json:"op"`
	Container string          `json:"container"`
	Statement *onto.Statement `json:"statement"`
}

func printChangesJSON(changes []ontx.Change, stores map[ontx.Container]string) error {
	out := make([]changeOutput, len(changes))
	for i, c := range changes {
		out[i] = changeOutput{Op: c.Op.String(), Container: stores[c.Container], Statement: c.Statement}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printChangesTable(changes []ontx.Change, stores map[ontx.Container]string) {
	if len(changes) == 0 {
		pterm.Info.Println("No punned individuals; nothing to change")
		return
	}
	rows := pterm.TableData{{"#", "Op", "Container", "Statement"}}
	for i, c := range changes {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			c.Op.String(),
			stores[c.Container],
			c.Statement.String(),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
