package middleware

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/fyyur/booking/internal/config"
)

// bucketScript refills the bucket continuously since the last call and
// then tries to take cost tokens.  The bucket is a hash {level, at}.
//
// KEYS[1] bucket key
// ARGV    now_ms, capacity, tokens_per_ms, cost, ttl_ms
//
// Returns {granted, floor(level), wait_ms}.
var bucketScript = redis.NewScript(`
local now = tonumber(ARGV[1])
local cap = tonumber(ARGV[2])
local rate = tonumber(ARGV[3])
local cost = tonumber(ARGV[4])

local saved = redis.call('HMGET', KEYS[1], 'level', 'at')
local level = tonumber(saved[1]) or cap
local at = tonumber(saved[2]) or now
if now > at then
	level = math.min(cap, level + (now - at) * rate)
end

local granted, wait = 0, 0
if level >= cost then
	granted = 1
	level = level - cost
elseif rate > 0 then
	wait = math.ceil((cost - level) / rate)
end

redis.call('HSET', KEYS[1], 'level', tostring(level), 'at', tostring(now))
redis.call('PEXPIRE', KEYS[1], ARGV[5])
return {granted, math.floor(level), wait}
`)

// NewTokenBucket limits requests per key with a Redis token bucket.  Reads
// take one token; create, edit and delete requests take WriteCost tokens.
// Redis errors let the request through.
func NewTokenBucket(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return passthrough
	}
	perMs := float64(cfg.RefillTokens) / float64(cfg.RefillInterval.Milliseconds())
	if cfg.RefillInterval < time.Millisecond {
		perMs = 0
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := buildRateKey(cfg, c)
			cost := requestCost(cfg, c)

			res, err := bucketScript.Run(c.Request().Context(), rdb, []string{key},
				time.Now().UnixMilli(), cfg.Capacity, perMs, cost, cfg.TTL.Milliseconds(),
			).Int64Slice()
			if err != nil || len(res) != 3 {
				log.Warn().Err(err).Str("key", key).Msg("rate limit check skipped")
				return next(c)
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(cfg.Capacity))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(res[1], 10))
			if cfg.Debug {
				h.Set("X-RateLimit-Key", key)
			}
			if res[0] == 1 {
				return next(c)
			}

			wait := int(math.Ceil(float64(res[2]) / 1000))
			h.Set("Retry-After", strconv.Itoa(wait))
			log.Info().Str("key", key).Int("cost", cost).Int("retry_after", wait).Msg("rate limited")
			return c.JSON(http.StatusTooManyRequests, echo.Map{
				"error":       "too_many_requests",
				"message":     "Too many requests. Try again later.",
				"retry_after": wait,
			})
		}
	}
}

// requestCost is one token for reads and WriteCost for anything else.
func requestCost(cfg config.RateLimitConfig, c echo.Context) int {
	if readOnly(c) || cfg.WriteCost < 1 {
		return 1
	}
	return cfg.WriteCost
}

// buildRateKey derives the bucket key from the client IP, the route
// template, or both.
func buildRateKey(cfg config.RateLimitConfig, c echo.Context) string {
	ip := c.RealIP()
	if ip == "" {
		ip = "unknown"
	}
	route := c.Request().Method + " " + c.Path()

	switch strings.ToLower(cfg.KeyStrategy) {
	case "ip":
		return cfg.Prefix + ":ip:" + ip
	case "route":
		return cfg.Prefix + ":route:" + route
	default:
		return cfg.Prefix + ":ip:" + ip + ":route:" + route
	}
}
