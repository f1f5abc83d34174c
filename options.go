package qmeans

type options struct {
	seed int64
}

func defaultOptions() options {
	return options{seed: 0}
}

// Option configures a clustering engine at construction time.
//
// Engines hold no global state: everything that influences a run, including
// the seed behind centroid initialization, is passed in explicitly so that
// repeated or concurrent runs stay independent and reproducible.
type Option func(*options)

// WithSeed sets the seed used to pick the k initial centroids from the input.
// The default seed is 0; identical inputs plus an identical seed always
// produce identical results.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}
