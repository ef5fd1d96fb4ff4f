// Package asseturl translates asset URLs between the edge proxy's addressing
// scheme and the bucket's public one, and repairs poster image URLs written
// under the wrong folder by an earlier upload flow.
package asseturl

import (
	"net/url"
	"strings"

	"dealerapi/internal/assets"
)

// Owner is the kind of record an asset URL belongs to.
type Owner string

const (
	OwnerVehicle     Owner = "vehicle"
	OwnerPoster      Owner = "poster"
	OwnerTestimonial Owner = "testimonial"
)

// Resolver rewrites proxy-form URLs (served by the edge proxy at ProxyHost)
// to public-store form (served directly from the bucket at PublicHost).
// The zero value passes every URL through unchanged.
type Resolver struct {
	// ProxyHost matches either the exact host or any subdomain of it, so a
	// value like "workers.dev" covers every deployed proxy instance.
	ProxyHost  string
	PublicHost string
}

// ToPublicForm returns the public-store form of a proxy-form URL. Any input it
// does not recognize, including unparseable strings, comes back unchanged so
// rendering never breaks on unexpected data.
func (r Resolver) ToPublicForm(raw string) string {
	if r.PublicHost == "" {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if !hostMatches(u.Host, r.ProxyHost) {
		return raw
	}
	return "https://" + r.PublicHost + u.Path
}

func hostMatches(host, pattern string) bool {
	if host == "" || pattern == "" {
		return false
	}
	return host == pattern || strings.HasSuffix(host, "."+pattern)
}

// RepairMisrouted detects a poster asset whose key sits in the products folder
// and rewrites the folder segment to posters. It reports whether a rewrite
// happened; callers persist the corrected URL back onto the owning record.
// Reapplying it is a no-op because the corrected key no longer matches.
func RepairMisrouted(owner Owner, raw string) (string, bool) {
	if owner != OwnerPoster {
		return raw, false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" {
		return raw, false
	}
	key, err := assets.ParseKey(strings.TrimPrefix(u.Path, "/"))
	if err != nil || key.Folder != assets.FolderProducts {
		return raw, false
	}
	key.Folder = assets.FolderPosters
	if strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + key.String()
	} else {
		u.Path = key.String()
	}
	return u.String(), true
}
