package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/permtree/pkg/bench"
	"github.com/matzehuels/permtree/pkg/errors"
	"github.com/matzehuels/permtree/pkg/observability"
)

// benchFormats lists the formats accepted by bench and bench show.
var benchFormats = []string{formatTable, formatText, formatCSV, formatJSON, formatYAML}

// benchCommand creates the bench command.
func (c *CLI) benchCommand() *cobra.Command {
	var cfg bench.Config
	var format string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time enumeration and both lookup strategies for growing alphabets",
		Long: `Time enumeration and both lookup strategies for alphabets of size min..max.

For every size the full tree is enumerated once, then the given number of
uniformly random ranks is looked up by enumeration and directly. Reported
times are microseconds; lookup times are averages per sample. The report is
stored so that "bench show" can print it again.

The text format prints "n enumerate lookup1 lookup2" per line.`,
		Example: `  permtree bench --max 7 --samples 50
  permtree bench --format csv > bench.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(format, benchFormats...); err != nil {
				return err
			}
			cfg = c.benchConfig(cmd, cfg)

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			spinner := newSpinnerWithContext(ctx, "Measuring")
			prev := observability.Bench()
			observability.SetBenchHooks(&spinnerHooks{BenchHooks: prev, spinner: spinner, maxN: cfg.MaxN})
			spinner.Start()
			report, err := bench.Run(ctx, cfg, logger)
			observability.SetBenchHooks(prev)
			if err != nil {
				spinner.StopWithError("Benchmark failed")
				return err
			}
			spinner.StopWithSuccess(fmt.Sprintf("Measured %d sizes", len(report.Rows)))

			store, err := c.newStore(ctx, noCache)
			if err != nil {
				return err
			}
			defer store.Cache.Close()
			if err := store.Save(ctx, report); err != nil {
				logger.Warn("report not stored", "err", err)
			} else {
				logger.Debug("report stored", "id", report.ID)
			}

			if err := writeReport(cmd.OutOrStdout(), report, format); err != nil {
				return err
			}
			if n := report.Mismatches(); n > 0 {
				printWarning("%d samples returned different permutations", n)
				return errors.New(errors.ErrCodeInternal, "lookup strategies disagree")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&cfg.MinN, "min", bench.DefaultMinN, "smallest alphabet size")
	cmd.Flags().IntVar(&cfg.MaxN, "max", bench.DefaultMaxN, "largest alphabet size")
	cmd.Flags().IntVar(&cfg.Samples, "samples", bench.DefaultSamples, "random ranks per size")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", 0, "random seed (0 for time-based)")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, text, csv, json, yaml")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "do not store the report")

	cmd.AddCommand(c.benchShowCommand())

	return cmd
}

// benchConfig merges the config file's [bench] table under the flags:
// a flag set on the command line wins, otherwise a key present in the file
// does, even when its value is zero.
func (c *CLI) benchConfig(cmd *cobra.Command, flags bench.Config) bench.Config {
	file := c.Config.Bench
	out := flags
	if !cmd.Flags().Changed("min") && c.Config.IsSet("bench", "min") {
		out.MinN = file.MinN
	}
	if !cmd.Flags().Changed("max") && c.Config.IsSet("bench", "max") {
		out.MaxN = file.MaxN
	}
	if !cmd.Flags().Changed("samples") && c.Config.IsSet("bench", "samples") {
		out.Samples = file.Samples
	}
	if !cmd.Flags().Changed("seed") && c.Config.IsSet("bench", "seed") {
		out.Seed = file.Seed
	}
	return out
}

// benchShowCommand creates the "bench show" subcommand.
func (c *CLI) benchShowCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Print a stored benchmark report (latest if no id)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(format, benchFormats...); err != nil {
				return err
			}
			var id string
			if len(args) == 1 {
				id = args[0]
			}

			store, err := c.newStore(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer store.Cache.Close()

			report, err := store.Load(cmd.Context(), id)
			if errors.Is(err, errors.ErrCodeNotFound) {
				printInfo("%s", errors.UserMessage(err))
				printNextStep("Run a benchmark first", "permtree bench")
				return nil
			}
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), report, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, text, csv, json, yaml")

	return cmd
}

func writeReport(w io.Writer, r *bench.Report, format string) error {
	if format != formatTable {
		return r.Encode(w, format)
	}
	_, err := fmt.Fprintln(w, benchTable(r))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("report %s · seed %d · %d samples",
		r.ID, r.Config.Seed, r.Config.Samples)))
	return err
}

// benchTable renders report rows as a bordered table.
func benchTable(r *bench.Report) string {
	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, []string{
			strconv.Itoa(row.N),
			strconv.FormatInt(row.Permutations, 10),
			strconv.FormatInt(row.EnumerateMicros, 10),
			formatAvg(row.AvgEnumerationLookupMicros),
			formatAvg(row.AvgDirectLookupMicros),
			strconv.Itoa(row.Mismatches),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("n", "perms", "enumerate µs", "by enumeration µs", "direct µs", "mismatches").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHeader
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if col == 0 {
				return base.Foreground(colorCyan)
			}
			if col == 5 && row < len(r.Rows) && r.Rows[row].Mismatches > 0 {
				return base.Foreground(colorRed)
			}
			return base.Align(lipgloss.Right)
		})
	return t.Render()
}

func formatAvg(v float64) string {
	if v < 0 {
		return "-1"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
