package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ajroetker/go-highway-cmplx/hwy"
	"github.com/ajroetker/go-highway-cmplx/hwy/contrib/cmplx"
	"github.com/ajroetker/go-highway-cmplx/hwy/contrib/cmplx/cases"
	"github.com/ajroetker/go-highway-cmplx/internal/config"
	"github.com/ajroetker/go-highway-cmplx/internal/conformance"
)

const (
	exitMismatch = 1
	exitUsage    = 2
)

type options struct {
	configPath  string
	logLevel    string
	repeat      int
	log10Broken bool
	noDouble    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "cmplxcheck",
		Short:         "Check complex Log10 against its boundary value and log(x)/ln(10)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChecks(cmd.Context(), cmd, opts)
		},
	}
	bindFlags(root.PersistentFlags(), opts)

	root.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Run the conformance suites (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChecks(cmd.Context(), cmd, opts)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "cases",
		Short: "Print the test-vector table with classifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printCases(cmd.OutOrStdout())
		},
	})
	return root
}

func bindFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVar(&opts.configPath, "config", "", "YAML config file")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.IntVar(&opts.repeat, "repeat", 0, "number of passes over the suites")
	fs.BoolVar(&opts.log10Broken, "log10-broken", false, "skip exact value and sign-of-zero checks of the edge cases")
	fs.BoolVar(&opts.noDouble, "no-double", false, "treat the platform as lacking double precision")
}

// usageError marks failures that are not conformance mismatches.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

func exitCode(err error) int {
	var m *conformance.Mismatch
	if errors.As(err, &m) {
		return exitMismatch
	}
	var u usageError
	if errors.As(err, &u) {
		return exitUsage
	}
	return exitMismatch
}

// loadConfig resolves defaults, file, environment and flags in that order.
func loadConfig(fs *pflag.FlagSet, opts *options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
	}
	cfg, err := config.FromEnv(cfg)
	if err != nil {
		return cfg, err
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if fs.Changed("repeat") {
		cfg.Repeat = opts.repeat
	}
	if opts.log10Broken {
		cfg.Log10Broken = true
	}
	if opts.noDouble {
		cfg.DoubleSupport = false
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config, w io.Writer) *zap.Logger {
	zcfg := zap.NewDevelopmentEncoderConfig()
	zcfg.TimeKey = ""
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zcfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(cfg.Level()),
	))
}

func runChecks(ctx context.Context, cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd.Flags(), opts)
	if err != nil {
		return usageError{errors.Wrap(err, "configuration")}
	}

	logger := newLogger(cfg, cmd.ErrOrStderr())
	defer func() { _ = logger.Sync() }()

	report, err := conformance.New(cfg, logger).Run(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "PASS %s passes=%d vectors=%d dispatch=%s\n",
		joinSuites(report.Ran), report.Passes, report.Vectors, hwy.CurrentName())
	return nil
}

func joinSuites(suites []conformance.Suite) string {
	if len(suites) == 0 {
		return "(none)"
	}
	return strings.Join(lo.Map(suites, func(s conformance.Suite, _ int) string {
		return s.String()
	}), ",")
}

func printCases(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tINPUT\tCLASS\tLOG10")
	for i, z := range cases.Testcases() {
		r := cmplx.Log10(cmplx.FromComplex128[float64](z))
		fmt.Fprintf(tw, "%d\t%v\t%s\t%v\n", i, z, cases.Classify(z), r)
	}
	return tw.Flush()
}
