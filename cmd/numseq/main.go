package main

import (
	_ "embed"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tphakala/go-numseq"
	"github.com/tphakala/go-numseq/internal/logging"
	"github.com/tphakala/go-numseq/internal/pipeline"
	"github.com/tphakala/go-numseq/internal/recipe"
	"github.com/tphakala/go-numseq/pitch"
)

//go:embed demo.yaml
var demoRecipe string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.GetLogger().WithError(err).Error("numseq failed")
		os.Exit(exitFailure)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "numseq",
		Short:         "Run numeric sequence recipes for algorithmic composition",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Log every pipeline stage")

	newLogger := func() *logrus.Logger {
		l := logging.GetLogger()
		if debug {
			l.SetLevel(logrus.DebugLevel)
		}
		return l
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "run <recipe.yaml>",
			Short: "Run a recipe file and print the resulting sequences",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				rec, err := recipe.LoadFile(args[0])
				if err != nil {
					return err
				}
				return runRecipe(cmd.OutOrStdout(), rec, newLogger())
			},
		},
		&cobra.Command{
			Use:   "demo",
			Short: "Run the built-in demonstration recipe",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				rec, err := recipe.Load(strings.NewReader(demoRecipe))
				if err != nil {
					return err
				}
				return runRecipe(cmd.OutOrStdout(), rec, newLogger())
			},
		},
		&cobra.Command{
			Use:   "info",
			Short: "Show version, SIMD support and available operations",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				printInfo(cmd.OutOrStdout())
			},
		},
	)
	return root
}

func runRecipe(w io.Writer, rec *recipe.Recipe, log *logrus.Logger) error {
	log.WithFields(logrus.Fields{
		"recipe": rec.Name,
		"steps":  len(rec.Steps),
	}).Info("running recipe")

	env, err := rec.Env()
	if err != nil {
		return err
	}
	p, err := rec.Pipeline(pipeline.WithLogger(log))
	if err != nil {
		return err
	}
	if err := p.Run(env); err != nil {
		return err
	}

	printReport(w, rec.Name, env)
	return nil
}

func printReport(w io.Writer, name string, env *pipeline.Env) {
	fmt.Fprintf(w, "Recipe %q\n\nSequences:\n", name)
	for _, key := range slices.Sorted(maps.Keys(env.Sequences)) {
		fmt.Fprintf(w, "  %-*s %s\n", nameColumnWidth, key, env.Sequences[key])
	}

	if len(env.Outputs) == 0 {
		return
	}
	fmt.Fprintln(w, "\nOutputs:")
	for _, out := range env.Outputs {
		fmt.Fprintf(w, "  stage %d: %s of %s\n", out.Stage, out.Type, out.Target)
		if st := out.Stats; st != nil {
			fmt.Fprintf(w, "    len=%d min=%.*f max=%.*f sum=%.*f mean=%.*f median=%.*f\n",
				st.Len,
				statsPrecision, st.Min,
				statsPrecision, st.Max,
				statsPrecision, st.Sum,
				statsPrecision, st.Mean,
				statsPrecision, st.Median)
			continue
		}
		for i, row := range out.Rows {
			fmt.Fprintf(w, "    %d: %v\n", i, row)
		}
	}
}

func printInfo(w io.Writer) {
	fmt.Fprintf(w, "numseq %s\n", version)
	fmt.Fprintf(w, "  SIMD: %s\n", numseq.SIMDInfo())

	stages := make([]string, 0, int(pipeline.StageStats)+1)
	for t := pipeline.StageApply + 1; t <= pipeline.StageStats; t++ {
		stages = append(stages, t.String())
	}
	ops := make([]string, 0, int(numseq.OpMod)+1)
	for op := numseq.OpAdd; op <= numseq.OpMod; op++ {
		ops = append(ops, op.String())
	}
	modes := make([]string, 0, int(numseq.SampleRandNoReplace)+1)
	for m := numseq.SampleUniform; m <= numseq.SampleRandNoReplace; m++ {
		modes = append(modes, m.String())
	}

	fmt.Fprintf(w, "  Operators: %s\n", strings.Join(ops, ", "))
	fmt.Fprintf(w, "  Stages: %s\n", strings.Join(stages, ", "))
	fmt.Fprintf(w, "  Sample modes: %s\n", strings.Join(modes, ", "))
	fmt.Fprintf(w, "  Scale models: %s, %s\n", pitch.Major.Name, pitch.NaturalMinor.Name)
}
