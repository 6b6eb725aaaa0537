// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

/*
Package media resolves stored image references into servable URLs.

Content images have been captured through several generations of admin forms,
so a stored value may be an absolute URL, a bare storage key, or empty — and
the images column may hold a single string, an array of strings, or an array
of objects. This package is the single place that keeps tolerating every
historical shape; page templates only ever see a resolved URL or nil.
*/
package media

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/periplus-travel/periplus/pkg/pointer"
)

// Resolver normalizes raw stored image values into servable URLs.
type Resolver struct {
	storageBase  string
	bucket       string
	allowedHosts map[string]struct{}
}

// NewResolver builds a resolver for the given storage base URL and bucket.
//
// extraHosts are external photo hosts whose absolute URLs pass through
// unchanged; the storage host itself is always allowed.
func NewResolver(storageBase, bucket string, extraHosts []string) *Resolver {
	allowed := make(map[string]struct{}, len(extraHosts)+1)

	if parsed, err := url.Parse(storageBase); err == nil && parsed.Host != "" {
		allowed[strings.ToLower(parsed.Host)] = struct{}{}
	}
	for _, host := range extraHosts {
		if clean := strings.ToLower(strings.TrimSpace(host)); clean != "" {
			allowed[clean] = struct{}{}
		}
	}

	return &Resolver{
		storageBase:  strings.TrimRight(storageBase, "/"),
		bucket:       strings.Trim(bucket, "/"),
		allowedHosts: allowed,
	}
}

// Resolve maps a raw stored value to a servable URL.
//
// # Behavior
//
//   - empty value → nil (callers render a placeholder box, not an image)
//   - absolute URL with an allow-listed host → passed through unchanged,
//     which makes Resolve idempotent on its own output
//   - absolute URL with an unknown host → nil (never serve arbitrary hosts)
//   - bare storage key → storageBase/bucket/key
func (resolver *Resolver) Resolve(raw string) *string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}

	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		parsed, err := url.Parse(value)
		if err != nil || parsed.Host == "" {
			return nil
		}
		if _, ok := resolver.allowedHosts[strings.ToLower(parsed.Host)]; !ok {
			return nil
		}
		return pointer.To(value)
	}

	return pointer.To(resolver.storageBase + "/" + resolver.bucket + "/" + strings.TrimLeft(value, "/"))
}

// FirstImage extracts the first usable image reference from a stored images
// column and resolves it.
//
// The column may contain:
//
//	"a.jpg"
//	["a.jpg", "b.jpg"]
//	[{"url": "a.jpg"}, ...] or [{"src": "a.jpg"}, ...]
//
// All three yield the same resolved URL for "a.jpg". Unrecognized shapes
// resolve to nil.
func (resolver *Resolver) FirstImage(raw json.RawMessage) *string {
	first := FirstImageRef(raw)
	if first == "" {
		return nil
	}
	return resolver.Resolve(first)
}

// FirstImageRef returns the first raw string reference inside an images
// value, without resolving it. Exposed separately so list queries can defer
// resolution to the presentation layer.
func FirstImageRef(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	// Shape 1: a single JSON string.
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return strings.TrimSpace(single)
	}

	// Shape 2: an array of strings.
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return ""
		}
		return strings.TrimSpace(list[0])
	}

	// Shape 3: an array of objects carrying url or src.
	var objects []struct {
		URL string `json:"url"`
		Src string `json:"src"`
	}
	if err := json.Unmarshal(raw, &objects); err == nil && len(objects) > 0 {
		if objects[0].URL != "" {
			return strings.TrimSpace(objects[0].URL)
		}
		return strings.TrimSpace(objects[0].Src)
	}

	return ""
}
