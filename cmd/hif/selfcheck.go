package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"hif/internal/hif"
	"hif/internal/observ"
	"hif/internal/testkit"
	"hif/internal/trace"
)

var selfcheckTraceLevel string

func init() {
	selfcheckCmd.Flags().StringVar(&selfcheckTraceLevel, "trace-level", "off", "diagnostic trace level (off|op|debug)")
}

var selfcheckCmd = &cobra.Command{
	Use:   "selfcheck",
	Short: "Run the built-in consistency suites",
	Long:  `selfcheck builds representative design trees and verifies the ownership, copying, equality and matching guarantees against them`,
	RunE:  runSelfcheck,
}

type checkSuite struct {
	name string
	run  func(opts hif.EqualsOptions) error
}

func runSelfcheck(cmd *cobra.Command, args []string) error {
	applyColorMode(cmd)
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")

	opts, profilePath, err := loadEqualsProfile(".")
	if err != nil {
		return err
	}
	if profilePath != "" && !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "using equality profile %s\n", profilePath)
	}

	level, err := trace.ParseLevel(selfcheckTraceLevel)
	if err != nil {
		return err
	}
	ring := trace.NewRingTracer(0, level)
	if level > trace.LevelOff {
		opts.Tracer = ring
	}

	timer := observ.NewTimer()
	suites := []checkSuite{
		{name: "ownership", run: checkOwnership},
		{name: "deep-copy", run: checkDeepCopy},
		{name: "equality", run: checkEquality},
		{name: "matching", run: checkMatching},
		{name: "dedup", run: checkDedup},
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	var mu sync.Mutex
	failed := false
	var g errgroup.Group
	for _, suite := range suites {
		g.Go(func() error {
			idx := -1
			mu.Lock()
			idx = timer.Begin(suite.name)
			mu.Unlock()

			err := suite.run(opts)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				timer.End(idx, "failed")
				failed = true
				red.Fprintf(cmd.OutOrStdout(), "FAIL %-12s %v\n", suite.name, err)
				return fmt.Errorf("%s: %w", suite.name, err)
			}
			timer.End(idx, "")
			if !quiet {
				green.Fprintf(cmd.OutOrStdout(), "ok   %s\n", suite.name)
			}
			return nil
		})
	}
	runErr := g.Wait()

	if timings {
		fmt.Fprint(cmd.OutOrStdout(), timer.Summary())
	}
	if failed && level > trace.LevelOff {
		fmt.Fprintln(cmd.ErrOrStderr(), "trace events:")
		if err := ring.Dump(os.Stderr, trace.FormatText); err != nil {
			return err
		}
	}
	return runErr
}

func checkOwnership(hif.EqualsOptions) error {
	sys := buildSampleDesign()
	if err := testkit.CheckOwnershipInvariants(sys); err != nil {
		return err
	}

	du := sys.DesignUnits.Front()
	view := du.Views.Front()
	entity := view.Entity()
	port := entity.Ports.Front()
	former := hif.Detach(port)
	if former != hif.Object(entity) {
		return fmt.Errorf("detach reported the wrong former parent")
	}
	if err := testkit.CheckDetached(port); err != nil {
		return err
	}
	entity.Ports.PushBack(port)
	return testkit.CheckOwnershipInvariants(sys)
}

func checkDeepCopy(opts hif.EqualsOptions) error {
	sys := buildSampleDesign()
	cp := hif.Copy(sys)
	if err := testkit.CheckOwnershipInvariants(cp); err != nil {
		return err
	}
	if got, want := hif.CountNodes(cp), hif.CountNodes(sys); got != want {
		return fmt.Errorf("copy has %d nodes, original %d", got, want)
	}
	if !hif.Equals(sys, cp, opts) {
		return fmt.Errorf("copy is not structurally equal to the original")
	}
	return nil
}

func checkEquality(opts hif.EqualsOptions) error {
	sys := buildSampleDesign()
	cp := hif.Copy(sys).(*hif.System)

	// renaming a port must break equality
	du := cp.DesignUnits.Front()
	port := du.Views.Front().Entity().Ports.Front()
	port.SetName("renamed")
	if hif.Equals(sys, cp, opts) {
		return fmt.Errorf("renamed copy still compares equal")
	}

	typesOnly := opts
	typesOnly.CheckOnlyTypes = true
	if !hif.Equals(sys, cp, typesOnly) {
		return fmt.Errorf("type-only comparison should ignore the rename")
	}

	// nil asymmetry
	if !hif.Equals(nil, nil, opts) {
		return fmt.Errorf("nil/nil must compare equal")
	}
	if hif.Equals(sys, nil, opts) {
		return fmt.Errorf("value/nil must compare unequal")
	}
	return nil
}

func checkMatching(opts hif.EqualsOptions) error {
	sys := buildSampleDesign()
	cp := hif.Copy(sys)

	var firstErr error
	hif.Visit(sys, func(p hif.Object) bool {
		if firstErr != nil {
			return false
		}
		m, ok := hif.MatchObject(p, sys, cp, hif.MatchOptions{SkipReferences: opts.SkipReferences})
		if !ok {
			firstErr = fmt.Errorf("no match for %s", p.Class())
			return false
		}
		if m.Class() != p.Class() {
			firstErr = fmt.Errorf("match of %s has class %s", p.Class(), m.Class())
			return false
		}
		return true
	})
	return firstErr
}

func checkDedup(opts hif.EqualsOptions) error {
	sys := buildSampleDesign()
	entity := sys.DesignUnits.Front().Views.Front().Entity()

	dup := hif.Copy(entity.Ports.Front()).(*hif.Port)
	addOpts := hif.DefaultAddUniqueOptions()
	addOpts.Equals = opts
	addOpts.DeleteIfNotAdded = true
	before := entity.Ports.Size()
	if hif.AddUniqueObject[*hif.Port](dup, &entity.Ports, addOpts) {
		return fmt.Errorf("duplicate port was inserted")
	}
	if entity.Ports.Size() != before {
		return fmt.Errorf("list size changed on rejected insert")
	}

	fresh := hif.NewPort("enable", hif.DirIn)
	fresh.SetDeclType(hif.NewBit())
	if !hif.AddUniqueObject[*hif.Port](fresh, &entity.Ports, addOpts) {
		return fmt.Errorf("fresh port was rejected")
	}
	return testkit.CheckOwnershipInvariants(sys)
}
