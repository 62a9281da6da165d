package shortrate

// Stage names passed to a ProgressFunc.
const (
	// StageRates is the forward fill of the rate lattice.
	StageRates = "rates"
	// StagePrices is the backward-induction fill of the price lattice.
	StagePrices = "prices"
)

// ProgressFunc observes lattice construction, invoked once per completed time
// step with step in 1..total. It is a side channel only: builders produce the
// same output whether or not a callback is installed.
type ProgressFunc func(stage string, step, total int)

// Option configures a lattice build.
type Option func(*buildConfig)

// WithProgress installs fn as the build's progress observer.
func WithProgress(fn ProgressFunc) Option {
	return func(c *buildConfig) { c.progress = fn }
}

// ReportProgress invokes the observer configured in opts, if any. It lets
// downstream passes (the price lattice build) share the same option slice.
func ReportProgress(opts []Option, stage string, step, total int) {
	applyOptions(opts).report(stage, step, total)
}

type buildConfig struct {
	progress ProgressFunc
}

func applyOptions(opts []Option) buildConfig {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c buildConfig) report(stage string, step, total int) {
	if c.progress != nil {
		c.progress(stage, step, total)
	}
}
