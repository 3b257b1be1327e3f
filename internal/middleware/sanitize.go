package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
)

// Sanitize strips HTML from every string in JSON and form bodies of
// POST, PUT and PATCH requests before handlers bind them.  Other bodies are
// passed through untouched.
func Sanitize() echo.MiddlewareFunc {
	policy := bluemonday.StrictPolicy()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			switch req.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
			default:
				return next(c)
			}
			if req.Body == nil {
				return next(c)
			}

			ctype := req.Header.Get(echo.HeaderContentType)
			switch {
			case strings.HasPrefix(ctype, echo.MIMEApplicationJSON):
				body, err := io.ReadAll(req.Body)
				if err != nil {
					return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
				}
				cleaned := sanitizeJSON(policy, body)
				req.Body = io.NopCloser(bytes.NewReader(cleaned))
				req.ContentLength = int64(len(cleaned))
			case strings.HasPrefix(ctype, echo.MIMEApplicationForm):
				if err := req.ParseForm(); err != nil {
					return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
				}
				sanitizeValues(policy, req.PostForm)
				sanitizeValues(policy, req.Form)
			}
			return next(c)
		}
	}
}

// sanitizeJSON returns body with every string value cleaned.  Bodies that
// are not valid JSON are returned unchanged so binding reports the error.
func sanitizeJSON(p *bluemonday.Policy, body []byte) []byte {
	var v any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return body
	}
	out, err := json.Marshal(sanitizeValue(p, v))
	if err != nil {
		return body
	}
	return out
}

func sanitizeValue(p *bluemonday.Policy, v any) any {
	switch t := v.(type) {
	case string:
		return clean(p, t)
	case []any:
		for i := range t {
			t[i] = sanitizeValue(p, t[i])
		}
		return t
	case map[string]any:
		for k, val := range t {
			t[k] = sanitizeValue(p, val)
		}
		return t
	default:
		return v
	}
}

func sanitizeValues(p *bluemonday.Policy, vals url.Values) {
	for k, vs := range vals {
		for i := range vs {
			vs[i] = clean(p, vs[i])
		}
		vals[k] = vs
	}
}

// clean removes markup.  bluemonday escapes '&' and quotes, which must
// survive in names like "R&B" or "Guns N' Petals"; angle brackets stay
// escaped.
func clean(p *bluemonday.Policy, s string) string {
	return textUnescaper.Replace(p.Sanitize(s))
}

var textUnescaper = strings.NewReplacer("&amp;", "&", "&#39;", "'", "&#34;", `"`)
