package asseturl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var res = Resolver{
	ProxyHost:  "workers.dev",
	PublicHost: "pub-09af7e48.r2.dev",
}

func TestToPublicForm(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "proxy subdomain rewritten",
			in:   "https://frosty-tooth.workers.dev/posters/1700000000000-banner.jpg",
			want: "https://pub-09af7e48.r2.dev/posters/1700000000000-banner.jpg",
		},
		{
			name: "exact proxy host rewritten",
			in:   "https://workers.dev/products/1-a.jpg",
			want: "https://pub-09af7e48.r2.dev/products/1-a.jpg",
		},
		{
			name: "already public form unchanged",
			in:   "https://pub-09af7e48.r2.dev/posters/1-a.jpg",
			want: "https://pub-09af7e48.r2.dev/posters/1-a.jpg",
		},
		{
			name: "external url unchanged",
			in:   "https://example.com/logo.png",
			want: "https://example.com/logo.png",
		},
		{
			name: "lookalike host unchanged",
			in:   "https://evilworkers.dev/a/b.jpg",
			want: "https://evilworkers.dev/a/b.jpg",
		},
		{
			name: "garbage passes through",
			in:   "::not a url::",
			want: "::not a url::",
		},
		{
			name: "empty passes through",
			in:   "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, res.ToPublicForm(tt.in))
		})
	}
}

func TestToPublicForm_Idempotent(t *testing.T) {
	inputs := []string{
		"https://frosty-tooth.workers.dev/posters/1700000000000-banner.jpg",
		"https://pub-09af7e48.r2.dev/products/1-a.jpg",
		"https://example.com/logo.png",
		"not a url at all",
	}
	for _, in := range inputs {
		once := res.ToPublicForm(in)
		assert.Equal(t, once, res.ToPublicForm(once), "input %q", in)
	}
}

func TestToPublicForm_ZeroResolver(t *testing.T) {
	var zero Resolver
	in := "https://frosty-tooth.workers.dev/posters/1-a.jpg"
	assert.Equal(t, in, zero.ToPublicForm(in))
}

func TestRepairMisrouted(t *testing.T) {
	in := "https://frosty-tooth.workers.dev/products/1690000000000-x.jpg"

	fixed, repaired := RepairMisrouted(OwnerPoster, in)
	assert.True(t, repaired)
	assert.Equal(t, "https://frosty-tooth.workers.dev/posters/1690000000000-x.jpg", fixed)

	// idempotent: the corrected key no longer matches the detection rule
	again, repaired := RepairMisrouted(OwnerPoster, fixed)
	assert.False(t, repaired)
	assert.Equal(t, fixed, again)
}

func TestRepairMisrouted_OnlyPostersTrigger(t *testing.T) {
	in := "https://frosty-tooth.workers.dev/products/1690000000000-x.jpg"

	for _, owner := range []Owner{OwnerVehicle, OwnerTestimonial} {
		out, repaired := RepairMisrouted(owner, in)
		assert.False(t, repaired)
		assert.Equal(t, in, out)
	}
}

func TestRepairMisrouted_PublicFormURL(t *testing.T) {
	in := "https://pub-09af7e48.r2.dev/products/1690000000000-x.jpg"

	fixed, repaired := RepairMisrouted(OwnerPoster, in)
	assert.True(t, repaired)
	assert.Equal(t, "https://pub-09af7e48.r2.dev/posters/1690000000000-x.jpg", fixed)
}

func TestRepairMisrouted_IgnoresUnrelatedURLs(t *testing.T) {
	for _, in := range []string{
		"https://host/posters/1-a.jpg",
		"https://host/banners/1-a.jpg",
		"https://host/",
		"",
		"::bad::",
	} {
		out, repaired := RepairMisrouted(OwnerPoster, in)
		assert.False(t, repaired, "input %q", in)
		assert.Equal(t, in, out)
	}
}
