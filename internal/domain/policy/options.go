package policy

// Option applies a configuration option to a Rule.
type Option func(*Rule)

// WithPreseason sets the preseason assignment policy.
func WithPreseason(p Preseason) Option {
	return func(r *Rule) {
		if p != "" {
			r.preseason = p
		}
	}
}

// WithScoring sets the scoring policy.
func WithScoring(s Scoring) Option {
	return func(r *Rule) {
		if s != "" {
			r.scoring = s
		}
	}
}

// WithTierSizes sets the contiguous tier sizes for the tiered preseason.
func WithTierSizes(sizes []int) Option {
	return func(r *Rule) {
		if len(sizes) > 0 {
			r.tiers = make([]int, len(sizes))
			copy(r.tiers, sizes)
		}
	}
}
