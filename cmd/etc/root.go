package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/axiomhq/etc"
	"github.com/axiomhq/etc/internal/config"
	"github.com/axiomhq/etc/recode"
)

// app carries the resolved configuration and logger to every subcommand.
type app struct {
	cfgPath string
	cfg     config.Config
	log     *slog.Logger
	out     string
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}
	root := &cobra.Command{
		Use:   "etc",
		Short: "Effort-To-Compress complexity of symbolic sequences",
		Long: `etc estimates sequence complexity by counting the steps of
Non-Sequential Recursive Window Substitution needed to reduce a sequence
to a constant one.

Input files hold one sequence each. With --recode fields (the default)
they are integers separated by whitespace or commas; the other recoders
read the file as text.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	f := root.PersistentFlags()
	f.StringVar(&a.cfgPath, "config", "", "YAML config file")
	f.String("log-level", a.cfg.LogLevel, "debug, info, warn or error")
	f.Int("order", a.cfg.Order, "window order (>= 2)")
	f.Bool("truncate", a.cfg.Truncate, "stop once all windows are unique and finish in closed form")
	f.Bool("verbose", a.cfg.Verbose, "record and write the step trajectory")
	f.Int("tail", a.cfg.Tail, "extra steps to record after windows become unique (with --verbose)")
	f.String("recode", a.cfg.Recode, "input recoder: fields, lexical, alphabetical or dna")
	f.String("format", a.cfg.Format, "output format for tables: csv or xlsx")
	f.StringVarP(&a.out, "out", "o", "", "output file (default stdout)")

	root.AddCommand(
		newComputeCmd(a),
		newJointCmd(a),
		newDistanceCmd(a),
		newLZCmd(a),
		newBatchCmd(a),
	)
	return root
}

// setup loads the config file and environment, then applies any flags the
// user set explicitly.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("log-level") {
		cfg.LogLevel, _ = f.GetString("log-level")
	}
	if f.Changed("order") {
		cfg.Order, _ = f.GetInt("order")
	}
	if f.Changed("truncate") {
		cfg.Truncate, _ = f.GetBool("truncate")
	}
	if f.Changed("verbose") {
		cfg.Verbose, _ = f.GetBool("verbose")
	}
	if f.Changed("tail") {
		cfg.Tail, _ = f.GetInt("tail")
	}
	if f.Changed("recode") {
		cfg.Recode, _ = f.GetString("recode")
	}
	if f.Changed("format") {
		cfg.Format, _ = f.GetString("format")
	}
	if f.Changed("workers") {
		cfg.Workers, _ = f.GetInt("workers")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	a.log.Debug("configuration", "order", cfg.Order, "truncate", cfg.Truncate,
		"verbose", cfg.Verbose, "recode", cfg.Recode, "format", cfg.Format)
	return nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

// readSequence reads path ("-" for stdin) and recodes it with the
// configured recoder.
func (a *app) readSequence(cmd *cobra.Command, path string) (etc.Sequence, error) {
	decode, err := recode.ByName(a.cfg.Recode)
	if err != nil {
		return nil, err
	}
	data, err := a.readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	text := string(data)
	if a.cfg.Recode != "fields" {
		text = strings.TrimRight(text, "\r\n")
	}
	seq, err := decode(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debug("read sequence", "path", path, "length", len(seq))
	return seq, nil
}

func (a *app) readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

// output opens the --out destination, or returns stdout with a no-op close.
func (a *app) output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if a.out == "" || a.out == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(a.out)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
