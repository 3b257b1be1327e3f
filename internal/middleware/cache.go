package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/fyyur/booking/internal/config"
)

// teeWriter forwards the response to the client and keeps a copy of the
// body until it grows past limit.
type teeWriter struct {
	http.ResponseWriter
	status   int
	body     bytes.Buffer
	limit    int64
	overflow bool
}

func (w *teeWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *teeWriter) Write(b []byte) (int, error) {
	if !w.overflow {
		if w.limit > 0 && int64(w.body.Len()+len(b)) > w.limit {
			w.overflow = true
			w.body.Reset()
		} else {
			w.body.Write(b)
		}
	}
	return w.ResponseWriter.Write(b)
}

// cachedResponse is the value stored under a cache key.
type cachedResponse struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

// cacheKey is "<prefix>:<method>:<path>", followed by "?<query>" unless the
// key strategy is "route".  The concrete path is used so /venues/1 and
// /venues/2 never share an entry.
func cacheKey(cfg config.CacheConfig, r *http.Request) string {
	key := cfg.Prefix + ":" + r.Method + ":" + r.URL.Path
	if strings.ToLower(cfg.KeyStrategy) != "route" && r.URL.RawQuery != "" {
		key += "?" + r.URL.RawQuery
	}
	return key
}

func replay(c echo.Context, cached cachedResponse) {
	h := c.Response().Header()
	for k, vals := range cached.Header {
		if strings.EqualFold(k, echo.HeaderContentLength) {
			continue
		}
		for _, v := range vals {
			h.Add(k, v)
		}
	}
	h.Set("X-Cache", "HIT")
	c.Response().WriteHeader(cached.Status)
	if len(cached.Body) > 0 {
		_, _ = c.Response().Write(cached.Body)
	}
}

// NewRedisCache serves cacheable requests from Redis and stores 200
// responses with their headers so clients see identical output.  Any other
// request that succeeds and is not read-only (see readOnly) clears all keys
// under the cache prefix, since upcoming show counts appear on several
// pages.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return passthrough
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	maxBody := int64(cfg.MaxBodyBytes)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Cacheable(c.Request().Method) {
				err := next(c)
				if err == nil && !readOnly(c) && c.Response().Status < http.StatusBadRequest {
					if n, ferr := flushPrefix(c.Request().Context(), rdb, cfg.Prefix); ferr != nil {
						log.Warn().Err(ferr).Msg("cache: invalidation failed")
					} else if n > 0 {
						log.Debug().Int("keys", n).Msg("cache: invalidated")
					}
				}
				return err
			}

			ctx := c.Request().Context()
			key := cacheKey(cfg, c.Request())

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var cached cachedResponse
				if json.Unmarshal(raw, &cached) == nil && cached.Status != 0 {
					replay(c, cached)
					return nil
				}
			} else if !errors.Is(err, redis.Nil) {
				log.Warn().Err(err).Str("key", key).Msg("cache: read failed")
			}

			tw := &teeWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: maxBody}
			c.Response().Writer = tw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}
			if tw.status != http.StatusOK || tw.overflow {
				return nil
			}

			hdr := c.Response().Header().Clone()
			hdr.Del("X-Cache")
			raw, err := json.Marshal(cachedResponse{Status: tw.status, Header: hdr, Body: tw.body.Bytes()})
			if err == nil {
				err = rdb.Set(context.WithoutCancel(ctx), key, raw, ttl).Err()
			}
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("cache: store failed")
			}
			return nil
		}
	}
}

// flushPrefix deletes every key that starts with prefix and returns how
// many were removed.
func flushPrefix(ctx context.Context, rdb *redis.Client, prefix string) (int, error) {
	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, next, err := rdb.Scan(ctx, cursor, prefix+":*", 200).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			n, err := rdb.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, err
			}
			deleted += int(n)
		}
		if next == 0 {
			return deleted, nil
		}
		cursor = next
	}
}

func passthrough(next echo.HandlerFunc) echo.HandlerFunc {
	return next
}
