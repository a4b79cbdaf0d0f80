package main

import (
	"fmt"
	"os"

	"fortio.org/safecast"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"hif/internal/hif"
	"hif/internal/observ"
	"hif/internal/ui"
)

var benchWidth int

func init() {
	benchCmd.Flags().IntVar(&benchWidth, "width", 2000, "number of declarations in the generated design")
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time the tree operations on a generated design",
	RunE:  runBench,
}

var benchTasks = []string{"build", "copy", "equals", "visit", "match"}

func runBench(cmd *cobra.Command, args []string) error {
	applyColorMode(cmd)
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")

	if _, err := safecast.Conv[uint32](benchWidth); err != nil || benchWidth <= 0 {
		return fmt.Errorf("invalid --width %d", benchWidth)
	}

	opts, _, err := loadEqualsProfile(".")
	if err != nil {
		return err
	}

	interactive := isTerminal(os.Stdout) && !quiet
	var timer *observ.Timer
	var benchErr error

	if interactive {
		events := make(chan ui.Event, 16)
		go func() {
			defer close(events)
			timer, benchErr = runBenchTasks(benchWidth, opts, func(task string, st ui.Status, note string) {
				events <- ui.Event{Task: task, Status: st, Note: note}
			})
		}()
		model := ui.NewProgressModel("hif bench", benchTasks, events)
		if _, err := tea.NewProgram(model).Run(); err != nil {
			return fmt.Errorf("progress ui failed: %w", err)
		}
	} else {
		timer, benchErr = runBenchTasks(benchWidth, opts, func(task string, st ui.Status, note string) {
			if quiet || st == ui.StatusWorking {
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", task, note)
		})
	}

	if benchErr != nil {
		return benchErr
	}
	if timings || !quiet {
		fmt.Fprint(cmd.OutOrStdout(), timer.Summary())
	}
	return nil
}

// runBenchTasks executes the benchmark stages in order, reporting progress
// through report.
func runBenchTasks(width int, opts hif.EqualsOptions, report func(string, ui.Status, string)) (*observ.Timer, error) {
	timer := observ.NewTimer()

	report("build", ui.StatusWorking, "")
	idx := timer.Begin("build")
	sys := generateBenchDesign(width)
	nodes := hif.CountNodes(sys)
	timer.End(idx, fmt.Sprintf("%d nodes", nodes))
	report("build", ui.StatusDone, fmt.Sprintf("%d nodes", nodes))

	report("copy", ui.StatusWorking, "")
	idx = timer.Begin("copy")
	cp := hif.Copy(sys)
	timer.End(idx, "")
	report("copy", ui.StatusDone, "")

	report("equals", ui.StatusWorking, "")
	idx = timer.Begin("equals")
	equal := hif.Equals(sys, cp, opts)
	timer.End(idx, "")
	if !equal {
		report("equals", ui.StatusError, "copy differs")
		return timer, fmt.Errorf("deep copy does not compare equal to the original")
	}
	report("equals", ui.StatusDone, "")

	report("visit", ui.StatusWorking, "")
	idx = timer.Begin("visit")
	count := hif.CountNodes(cp)
	timer.End(idx, "")
	if count != nodes {
		report("visit", ui.StatusError, "node count differs")
		return timer, fmt.Errorf("copy has %d nodes, original %d", count, nodes)
	}
	report("visit", ui.StatusDone, "")

	report("match", ui.StatusWorking, "")
	idx = timer.Begin("match")
	matched := 0
	var matchErr error
	hif.Visit(sys, func(p hif.Object) bool {
		if matchErr != nil {
			return false
		}
		if _, ok := hif.MatchObject(p, sys, cp, hif.MatchOptions{}); !ok {
			matchErr = fmt.Errorf("no match for %s", p.Class())
			return false
		}
		matched++
		return true
	})
	timer.End(idx, fmt.Sprintf("%d matched", matched))
	if matchErr != nil {
		report("match", ui.StatusError, matchErr.Error())
		return timer, matchErr
	}
	report("match", ui.StatusDone, fmt.Sprintf("%d matched", matched))

	return timer, nil
}

// generateBenchDesign builds a wide design: one view whose contents hold
// width signals, each carrying a vector type and an initial-value expression.
func generateBenchDesign(width int) *hif.System {
	sys := hif.NewSystem("bench")
	du := hif.NewDesignUnit("wide")
	view := hif.NewView("rtl")
	view.SetEntity(hif.NewEntity("wide"))
	contents := hif.NewContents()
	for i := 0; i < width; i++ {
		sig := hif.NewSignal(fmt.Sprintf("s%d", i))
		sig.SetDeclType(logicVector(31, 0))
		sig.SetInitial(hif.NewExpression(hif.OpPlus,
			hif.NewIdentifier(fmt.Sprintf("s%d", i)),
			hif.NewIntValue(int64(i))))
		contents.Declarations.PushBack(sig)
	}
	view.SetContents(contents)
	du.Views.PushBack(view)
	sys.DesignUnits.PushBack(du)
	return sys
}
