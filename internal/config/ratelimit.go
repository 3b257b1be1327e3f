package config

import "time"

// RateLimitConfig configures the Redis token bucket.  Each key starts with
// Capacity tokens and regains RefillTokens per RefillInterval, spread evenly
// over the interval.  Mutations cost WriteCost tokens, reads cost one.
type RateLimitConfig struct {
	Enabled        bool          `env:"ENABLED" envDefault:"true"`
	Capacity       int           `env:"CAPACITY" envDefault:"60"`
	RefillTokens   int           `env:"REFILL_TOKENS" envDefault:"1"`
	RefillInterval time.Duration `env:"REFILL_INTERVAL" envDefault:"1s"`
	WriteCost      int           `env:"WRITE_COST" envDefault:"5"`
	TTL            time.Duration `env:"TTL" envDefault:"10m"`
	KeyStrategy    string        `env:"KEY_STRATEGY" envDefault:"ip_route"`
	Prefix         string        `env:"PREFIX" envDefault:"fyyur:rl"`
	Debug          bool          `env:"DEBUG" envDefault:"false"`
}

// normalize clamps values that would make the bucket unusable.  The TTL
// must outlive several refill intervals or idle buckets would reset early.
func (r *RateLimitConfig) normalize() {
	if r.Capacity < 1 {
		r.Capacity = 1
	}
	if r.RefillTokens < 1 {
		r.RefillTokens = 1
	}
	if r.WriteCost < 1 {
		r.WriteCost = 1
	}
	if r.WriteCost > r.Capacity {
		r.WriteCost = r.Capacity
	}
	if r.RefillInterval <= 0 {
		r.RefillInterval = time.Second
	}
	if minTTL := 5 * r.RefillInterval; r.TTL < minTTL {
		r.TTL = minTTL
	}
}
