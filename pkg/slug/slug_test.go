package slug_test

import (
	"strings"
	"testing"

	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/slug"
	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Premium E-Book Bundle!":   "premium-e-book-bundle",
		"  Notion Template 2.0  ":  "notion-template-2-0",
		"UPPER case":               "upper-case",
		"---":                      "",
		"hello":                    "hello",
		"Crash Course: Go (2024)":  "crash-course-go-2024",
		"multi   space\ttitle":     "multi-space-title",
	}

	for in, want := range cases {
		assert.Equal(t, want, slug.Make(in), "input %q", in)
	}
}

func TestWithTimestamp(t *testing.T) {
	s := slug.WithTimestamp("premium-e-book-bundle")

	assert.True(t, strings.HasPrefix(s, "premium-e-book-bundle-"))
	assert.NotEqual(t, "premium-e-book-bundle", s)

	suffix := strings.TrimPrefix(s, "premium-e-book-bundle-")
	assert.Regexp(t, `^\d{10,}$`, suffix)
}
