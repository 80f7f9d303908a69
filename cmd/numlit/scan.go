package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"numlit/internal/diag"
	"numlit/internal/diagfmt"
	"numlit/internal/driver"
	"numlit/internal/observ"
	"numlit/internal/source"
)

func newScanCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [flags] <file.py|directory|pattern>...",
		Short: "Tokenize source files and parse every numeric literal",
		Long: `Scan tokenizes Python source files and parses each numeric literal it finds.
Literals are printed to stdout, diagnostics to stderr. Directories are walked
for *.py files; patterns may use ** (for example 'src/**/*.py').`,
		Args: cobra.MinimumNArgs(1),
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto), overrides [scan].jobs")
	cmd.Flags().Int("max-diagnostics", 0, "maximum number of diagnostics per file, overrides [scan].max_diagnostics")
	cmd.Flags().Bool("cache", false, "reuse results from the on-disk cache, overrides [scan].cache")
	cmd.Flags().String("cache-dir", "", "cache directory (default: $XDG_CACHE_HOME/numlit)")
	cmd.Flags().Bool("clear-cache", false, "drop cached results before scanning")
	cmd.Flags().String("path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
	cmd.Flags().Int8("context", 0, "source lines of context around each diagnostic")
	cmd.Flags().Bool("quiet", false, "print diagnostics only")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runScan(cmd, st, args)
	}
	return cmd
}

type scanFlags struct {
	format     string
	opts       driver.Options
	cache      bool
	cacheDir   string
	clearCache bool
	pathMode   diagfmt.PathMode
	context    int8
	quiet      bool
}

func readScanFlags(cmd *cobra.Command, st *state) (scanFlags, error) {
	flags := cmd.Flags()
	sf := scanFlags{
		opts: driver.Options{
			Jobs:           st.cfg.Jobs,
			MaxDiagnostics: st.cfg.MaxDiagnostics,
		},
		cache:    st.cfg.Cache,
		cacheDir: st.cfg.CacheDir,
	}

	var err error
	if sf.format, err = flags.GetString("format"); err != nil {
		return sf, fmt.Errorf("failed to get format flag: %w", err)
	}
	sf.format = strings.ToLower(sf.format)
	switch sf.format {
	case "pretty", "json", "msgpack":
	default:
		return sf, fmt.Errorf("unknown format: %s", sf.format)
	}

	if flags.Changed("jobs") {
		if sf.opts.Jobs, err = flags.GetInt("jobs"); err != nil {
			return sf, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if flags.Changed("max-diagnostics") {
		if sf.opts.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return sf, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if flags.Changed("cache") {
		if sf.cache, err = flags.GetBool("cache"); err != nil {
			return sf, fmt.Errorf("failed to get cache flag: %w", err)
		}
	}
	if flags.Changed("cache-dir") {
		if sf.cacheDir, err = flags.GetString("cache-dir"); err != nil {
			return sf, fmt.Errorf("failed to get cache-dir flag: %w", err)
		}
	}
	if sf.clearCache, err = flags.GetBool("clear-cache"); err != nil {
		return sf, fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	pathMode, err := flags.GetString("path-mode")
	if err != nil {
		return sf, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	if sf.pathMode, err = diagfmt.ParsePathMode(pathMode); err != nil {
		return sf, err
	}
	if sf.context, err = flags.GetInt8("context"); err != nil {
		return sf, fmt.Errorf("failed to get context flag: %w", err)
	}
	if sf.quiet, err = flags.GetBool("quiet"); err != nil {
		return sf, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if sf.opts.Jobs < 0 || sf.opts.MaxDiagnostics < 0 {
		return sf, fmt.Errorf("--jobs and --max-diagnostics must not be negative")
	}
	return sf, nil
}

func runScan(cmd *cobra.Command, st *state, args []string) error {
	sf, err := readScanFlags(cmd, st)
	if err != nil {
		return err
	}

	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	timer := observ.NewTimer()

	phase := timer.Begin("expand")
	paths, err := driver.ExpandPaths(args)
	if err != nil {
		return err
	}
	timer.End(phase, fmt.Sprintf("%d file(s)", len(paths)))

	if sf.cache || sf.clearCache {
		dir := sf.cacheDir
		if dir == "" {
			if dir, err = driver.DefaultCacheDir("numlit"); err != nil {
				return fmt.Errorf("failed to locate cache directory: %w", err)
			}
		}
		cache, err := driver.OpenResultCache(dir)
		if err != nil {
			return err
		}
		if sf.clearCache {
			if err := cache.Clear(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
		}
		if sf.cache {
			sf.opts.Cache = cache
		}
	}

	phase = timer.Begin("scan")
	fs, results, err := driver.ScanFiles(cmd.Context(), paths, st.parser, sf.opts)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	bag := driver.MergeBags(results)
	timer.End(phase, fmt.Sprintf("%d literal(s), %d diagnostic(s)", countLiterals(results), bag.Len()))

	phase = timer.Begin("report")
	if err := writeScanOutput(cmd, sf, results, bag, fs); err != nil {
		return err
	}
	timer.End(phase, sf.format)

	if timings {
		if err := timer.WriteSummary(cmd.ErrOrStderr()); err != nil {
			return fmt.Errorf("failed to write timings: %w", err)
		}
	}
	if bag.HasErrors() {
		return errFailed
	}
	return nil
}

func countLiterals(results []driver.FileResult) int {
	n := 0
	for _, r := range results {
		n += len(r.Literals)
	}
	return n
}

func writeScanOutput(cmd *cobra.Command, sf scanFlags, results []driver.FileResult, bag *diag.Bag, fs *source.FileSet) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	switch sf.format {
	case "json", "msgpack":
		out := diagfmt.BuildScanOutput(results, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         sf.pathMode,
			IncludeNotes:     true,
		})
		var err error
		if sf.format == "json" {
			err = diagfmt.JSON(stdout, out)
		} else {
			err = diagfmt.Msgpack(stdout, out)
		}
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	default:
		if !sf.quiet {
			colored, err := useColor(cmd, stdout)
			if err != nil {
				return err
			}
			if err := diagfmt.LiteralsPretty(stdout, results, fs, diagfmt.PrettyOpts{Color: colored, PathMode: sf.pathMode}); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		if bag.Len() > 0 || bag.Dropped() > 0 {
			colored, err := useColor(cmd, stderr)
			if err != nil {
				return err
			}
			opts := diagfmt.PrettyOpts{
				Color:     colored,
				Context:   sf.context,
				PathMode:  sf.pathMode,
				ShowNotes: true,
			}
			if err := diagfmt.Pretty(stderr, bag, fs, opts); err != nil {
				return fmt.Errorf("failed to write diagnostics: %w", err)
			}
		}
	}
	return nil
}
