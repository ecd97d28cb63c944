// Package conformance checks the complex Log10 implementation against its
// boundary value at the origin and against the identity
// log10(x) = log(x)/ln(10) over the shared test-vector table.
package conformance

import (
	"context"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/ajroetker/go-highway-cmplx/hwy"
	"github.com/ajroetker/go-highway-cmplx/hwy/contrib/cmplx"
	"github.com/ajroetker/go-highway-cmplx/hwy/contrib/cmplx/cases"
	"github.com/ajroetker/go-highway-cmplx/internal/config"
)

// Suite identifies one gated group of checks.
type Suite string

const (
	SuiteFloat32  Suite = "float32"
	SuiteFloat64  Suite = "float64"
	SuiteExtended Suite = "extended"
	SuiteEdges    Suite = "edges"
)

func (s Suite) String() string { return string(s) }

// Suites lists every suite in execution order.
var Suites = []Suite{SuiteFloat32, SuiteFloat64, SuiteExtended, SuiteEdges}

// Skip reasons reported for suites that did not run.
const (
	skipDisabled       = "disabled"
	skipNoDouble       = "no double support"
	skipNoExtendedType = "extended precision unsupported"
)

// Report summarizes a successful or failed run.
type Report struct {
	// Passes is the number of completed passes over the whole suite.
	Passes int
	// Ran lists the suites executed in the last pass, in order.
	Ran []Suite
	// Skipped maps each suite that did not run to the reason.
	Skipped map[Suite]string
	// Vectors is the number of edge-case vectors checked per pass.
	Vectors int
}

// Verifier runs the conformance suites selected by a config.Config.
type Verifier struct {
	cfg    config.Config
	logger *zap.Logger

	log10F32 func(cmplx.Complex[float32]) cmplx.Complex[float32]
	log10F64 func(cmplx.Complex[float64]) cmplx.Complex[float64]
	vectors  func() []complex128
}

// Option customizes a Verifier.
type Option func(*Verifier)

// WithLog10F32 replaces the single-precision function under test.
func WithLog10F32(fn func(cmplx.Complex[float32]) cmplx.Complex[float32]) Option {
	return func(v *Verifier) { v.log10F32 = fn }
}

// WithLog10F64 replaces the double-precision function under test.
func WithLog10F64(fn func(cmplx.Complex[float64]) cmplx.Complex[float64]) Option {
	return func(v *Verifier) { v.log10F64 = fn }
}

// WithVectors replaces the test-vector table.
func WithVectors(fn func() []complex128) Option {
	return func(v *Verifier) { v.vectors = fn }
}

// New returns a Verifier for cfg. A nil logger disables logging.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) *Verifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	v := &Verifier{
		cfg:      cfg,
		logger:   logger.Named("conformance"),
		log10F32: cmplx.Log10[float32],
		log10F64: cmplx.Log10[float64],
		vectors:  cases.Testcases,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Plan returns, for the configured gates, the suites that will run and the
// reasons the others will not.
func (v *Verifier) Plan() ([]Suite, map[Suite]string) {
	skipped := make(map[Suite]string)

	switch {
	case !v.cfg.Float32:
		skipped[SuiteFloat32] = skipDisabled
	case !v.cfg.Float32Enabled():
		skipped[SuiteFloat32] = skipNoDouble
	}
	switch {
	case !v.cfg.Float64:
		skipped[SuiteFloat64] = skipDisabled
	case !v.cfg.Float64Enabled():
		skipped[SuiteFloat64] = skipNoDouble
	}
	if !v.cfg.Extended {
		skipped[SuiteExtended] = skipDisabled
	} else {
		skipped[SuiteExtended] = skipNoExtendedType
	}
	if !v.cfg.EdgesEnabled() {
		skipped[SuiteEdges] = skipNoDouble
	}

	ran := lo.Filter(Suites, func(s Suite, _ int) bool {
		_, skip := skipped[s]
		return !skip
	})
	return ran, skipped
}

// Run executes the planned suites cfg.Repeat times and stops at the first
// failure. The returned error wraps a *Mismatch when Log10 is wrong;
// use errors.As to retrieve it.
func (v *Verifier) Run(ctx context.Context) (Report, error) {
	ran, skipped := v.Plan()
	report := Report{Ran: ran, Skipped: skipped}

	v.logger.Debug("platform",
		zap.String("dispatch", hwy.CurrentName()),
		zap.Bool("fma", hwy.HasFMA()),
	)
	for suite, reason := range skipped {
		v.logger.Info("suite skipped", zap.Stringer("suite", suite), zap.String("reason", reason))
	}

	repeat := max(v.cfg.Repeat, 1)
	for pass := 0; pass < repeat; pass++ {
		for _, suite := range ran {
			if err := ctx.Err(); err != nil {
				return report, errors.Wrap(err, "conformance run interrupted")
			}
			n, err := v.runSuite(suite)
			if err != nil {
				v.logMismatch(err)
				return report, errors.Wrapf(err, "pass %d", pass+1)
			}
			if suite == SuiteEdges {
				report.Vectors = n
			}
			v.logger.Debug("suite passed", zap.Stringer("suite", suite), zap.Int("pass", pass+1), zap.Int("checks", n))
		}
		report.Passes++
	}
	return report, nil
}

// runSuite runs one suite and returns the number of inputs it checked.
func (v *Verifier) runSuite(suite Suite) (int, error) {
	switch suite {
	case SuiteFloat32:
		return 1, CheckZero(suite, v.log10F32)
	case SuiteFloat64:
		return 1, CheckZero(suite, v.log10F64)
	case SuiteEdges:
		vectors := v.vectors()
		return len(vectors), CheckEdges(vectors, v.log10F64, !v.cfg.Log10Broken)
	}
	return 0, errors.Errorf("suite %s cannot run on this platform", suite)
}

func (v *Verifier) logMismatch(err error) {
	var m *Mismatch
	if !errors.As(err, &m) {
		v.logger.Error("conformance check failed", zap.Error(err))
		return
	}
	v.logger.Error("conformance mismatch",
		zap.Stringer("suite", m.Suite),
		zap.Int("index", m.Index),
		zap.String("input", cmplx.FromComplex128[float64](m.Input).String()),
		zap.String("component", string(m.Component)),
		zap.String("reason", string(m.Reason)),
		zap.Float64("got", m.Got),
		zap.Float64("want", m.Want),
	)
}
