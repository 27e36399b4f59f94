package xorcrack

import "context"

// Options bounds Break. Zero fields take the defaults below.
type Options struct {
	MinKeyLength int
	MaxKeyLength int
	// Candidates is how many of the top ranked key lengths are tried.
	Candidates int
	Workers    int
}

const (
	DefaultMinKeyLength = 2
	DefaultMaxKeyLength = 40
	DefaultCandidates   = 3
)

// WithDefaults fills zero fields with the package defaults.
func (o Options) WithDefaults() Options {
	if o.MinKeyLength == 0 {
		o.MinKeyLength = DefaultMinKeyLength
	}
	if o.MaxKeyLength == 0 {
		o.MaxKeyLength = DefaultMaxKeyLength
	}
	if o.Candidates < 1 {
		o.Candidates = DefaultCandidates
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	return o
}

// Result is one key length tried by Break.
type Result struct {
	KeyLength int
	Distance  float64
	Key       Bytes
	Plaintext Bytes
	Score     int
}

// Break estimates the key length of b, recovers a key for each of the top
// ranked lengths and decrypts with it. Results keep the estimator's order;
// Score is informational.
func Break(ctx context.Context, b Bytes, opts Options) ([]Result, error) {
	opts = opts.WithDefaults()
	ranked, err := EstimateKeyLength(b, opts.MinKeyLength, opts.MaxKeyLength)
	if err != nil {
		return nil, err
	}
	if len(ranked) > opts.Candidates {
		ranked = ranked[:opts.Candidates]
	}

	results := make([]Result, 0, len(ranked))
	for _, c := range ranked {
		key, err := RecoverKeyConcurrent(ctx, b, c.Length, opts.Workers)
		if err != nil {
			return nil, err
		}
		pt, err := Xor(b, key)
		if err != nil {
			return nil, err
		}
		results = append(results, Result{
			KeyLength: c.Length,
			Distance:  c.Distance,
			Key:       key,
			Plaintext: pt,
			Score:     Score(pt),
		})
	}
	return results, nil
}
