package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"numlit/internal/config"
	"numlit/internal/parsenum"
	"numlit/internal/prof"
	"numlit/internal/trace"
)

// state is what PersistentPreRunE resolves once for the running command.
type state struct {
	cfg    config.Config
	parser *parsenum.Parser
	tracer trace.Tracer
	prof   *prof.Session
}

func (st *state) setup(cmd *cobra.Command) error {
	if err := st.setupProfiling(cmd); err != nil {
		return err
	}
	if err := st.setupTracing(cmd); err != nil {
		return err
	}
	if err := st.loadConfig(cmd); err != nil {
		return err
	}
	trace.Point(st.tracer, trace.ScopeRun, "config", 0, configSource(st.cfg))
	return nil
}

// loadConfig reads numlit.toml (explicit or discovered) and applies the
// persistent flag overrides.
func (st *state) loadConfig(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	path, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}

	var cfg config.Config
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return err
	}

	if flags.Changed("reporting") {
		value, err := flags.GetString("reporting")
		if err != nil {
			return fmt.Errorf("failed to get reporting flag: %w", err)
		}
		if cfg.Reporting, err = parsenum.ParseReporting(value); err != nil {
			return fmt.Errorf("--reporting: %w", err)
		}
	}

	st.cfg = cfg
	st.parser = parsenum.New(cfg.Parser())
	return nil
}

// setupProfiling starts the profilers named by the persistent flags.
func (st *state) setupProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	var cfg prof.Config
	var err error
	if cfg.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if cfg.Mem, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if cfg.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if cfg == (prof.Config{}) {
		return nil
	}
	st.prof, err = prof.Start(cfg)
	return err
}

func (st *state) close(stderr io.Writer) {
	if err := st.prof.Stop(); err != nil {
		fmt.Fprintf(stderr, "profile: %v\n", err)
	}
	if st.tracer == nil {
		return
	}
	if err := st.tracer.Flush(); err != nil {
		fmt.Fprintf(stderr, "trace: flush error: %v\n", err)
	}
	if err := st.tracer.Close(); err != nil {
		fmt.Fprintf(stderr, "trace: close error: %v\n", err)
	}
}

func configSource(cfg config.Config) string {
	if cfg.Path == "" {
		return "defaults"
	}
	return cfg.Path
}
