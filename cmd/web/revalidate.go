package main

import (
	"bytes"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	mw "localsite.dev/site-web/internal/middleware"
)

// sitemapPath is regenerated on every request and never cached.
const sitemapPath = "/sitemap.xml"

const maxRevalidateBody = 1 << 20

var errNullBody = errors.New("request body is null")

// cacheInvalidator drops cached CMS documents. *cms.Client implements it.
type cacheInvalidator interface {
	Revalidate(tags ...string) int
	Purge() int
}

// revalidateRequest fields are loosely typed: a non-string token fails
// authentication and non-list paths or tags are ignored, rather than
// rejecting the body.
type revalidateRequest struct {
	Token any `json:"token"`
	Paths any `json:"paths"`
	Tags  any `json:"tags"`
}

type revalidated struct {
	Paths []string `json:"paths"`
	Tags  []string `json:"tags"`
}

type revalidateResponse struct {
	OK          bool        `json:"ok"`
	Revalidated revalidated `json:"revalidated"`
	Timestamp   string      `json:"timestamp"`
}

// RevalidateHandler invalidates cached content on demand.
//
//	POST /api/revalidate {"token":"...","paths":["/"],"tags":["services"]}
//
// Tags drop the matching cache entries. Any path other than the sitemap
// purges the whole cache, since every page reads from the same documents.
func (a *app) RevalidateHandler(w http.ResponseWriter, r *http.Request) {
	l := mw.LoggerFrom(r.Context())

	var req revalidateRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRevalidateBody))
	if err == nil {
		err = json.Unmarshal(body, &req)
	}
	if err == nil && bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		err = errNullBody
	}
	if err != nil {
		l.Warn("revalidate: invalid body", zap.Error(err))
		mw.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if a.revalidateToken == "" {
		l.Error("revalidate: REVALIDATE_TOKEN env var not set")
		mw.WriteError(w, http.StatusInternalServerError, "Server misconfigured: REVALIDATE_TOKEN not set", "")
		return
	}
	token, _ := req.Token.(string)
	if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(a.revalidateToken)) != 1 {
		mw.WriteError(w, http.StatusUnauthorized, "Invalid or missing token", "")
		return
	}

	out := revalidated{Paths: []string{}, Tags: []string{}}
	purge := false
	for _, p := range stringItems(req.Paths) {
		if p == sitemapPath {
			out.Paths = append(out.Paths, p+" (auto-handled)")
			continue
		}
		purge = true
		out.Paths = append(out.Paths, p)
	}
	out.Tags = append(out.Tags, stringItems(req.Tags)...)

	dropped := 0
	if purge {
		dropped = a.cache.Purge()
	} else if len(out.Tags) > 0 {
		dropped = a.cache.Revalidate(out.Tags...)
	}
	l.Info("revalidate",
		zap.Strings("paths", out.Paths),
		zap.Strings("tags", out.Tags),
		zap.Int("entries", dropped),
	)

	now := time.Now
	if a.now != nil {
		now = a.now
	}
	mw.WriteJSON(w, http.StatusOK, revalidateResponse{
		OK:          true,
		Revalidated: out,
		Timestamp:   now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
}

// stringItems returns the string entries of a JSON list, skipping the rest.
func stringItems(v any) []string {
	list, _ := v.([]any)
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
