package try

const defaultCauseDepth = 8

type captureOptions struct {
	stack      bool
	causeDepth int
}

// CaptureOption tunes how Run and RunE record a fault.
type CaptureOption func(*captureOptions)

// WithStack records the goroutine stack at the point of capture.
func WithStack() CaptureOption {
	return func(o *captureOptions) {
		o.stack = true
	}
}

// WithCauseDepth limits how many levels of wrapped errors are recorded as
// causes. Zero records none.
func WithCauseDepth(depth int) CaptureOption {
	return func(o *captureOptions) {
		if depth < 0 {
			depth = 0
		}
		o.causeDepth = depth
	}
}

func newCaptureOptions(opts []CaptureOption) captureOptions {
	o := captureOptions{causeDepth: defaultCauseDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
