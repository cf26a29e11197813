package driver

// Option configures a driver or ProcessAll.
//
// Example:
//
//	d := driver.NewDisplay(show,
//		driver.WithFlipY(true),
//		driver.WithTransform(driver.SRGBTransform),
//	)
type Option func(*options)

type options struct {
	flipY     bool
	transform Transform
	dither    float32
	workers   int
	filename  string
}

func newOptions(opts []Option) options {
	o := options{
		transform: Identity,
		dither:    1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFlipY makes a driver read bucket rows bottom-up, for renderers that
// store the last row first. Dither noise still follows output coordinates.
func WithFlipY(flip bool) Option {
	return func(o *options) {
		o.flipY = flip
	}
}

// WithTransform sets the color transform applied before quantization.
// A nil transform means Identity.
func WithTransform(t Transform) Option {
	return func(o *options) {
		if t == nil {
			t = Identity
		}
		o.transform = t
	}
}

// WithDither sets the dither amplitude in output steps.
// The default is 1; 0 rounds to nearest.
func WithDither(amplitude float32) Option {
	return func(o *options) {
		o.dither = amplitude
	}
}

// WithWorkers sets the worker count for ProcessAll.
// 0 or negative uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithFilename sets the output path of a file driver.
// An empty name keeps the driver's default.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}
