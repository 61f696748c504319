package ghclient

import (
	"testing"

	"github.com/pirakansa/contract/schema"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeRepository(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"acme/widgets", "acme/widgets", true},
		{"acme/widgets.git", "acme/widgets", true},
		{"git@github.com:acme/widgets.git", "acme/widgets", true},
		{"ssh://git@github.com/acme/widgets", "acme/widgets", true},
		{"https://github.com/acme/widgets", "acme/widgets", true},
		{"https://github.com/acme/widgets.git", "acme/widgets", true},
		{"https://github.example.com/github.com/acme/widgets", "acme/widgets", true},
		{"acme", "", false},
		{"", "", false},
		{"git@github.com:acme", "", false},
	}
	for _, tc := range cases {
		got, ok := normalizeRepository(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestResolveRepository_ExplicitRemote(t *testing.T) {
	slug, err := ResolveRepository("https://github.com/acme/widgets.git")

	assert.NoError(t, err)
	assert.Equal(t, "acme/widgets", slug)
}

func TestResolveRepository_InvalidRemote(t *testing.T) {
	_, err := ResolveRepository("not-a-repo")

	var invalid *schema.InvalidConfigError
	assert.ErrorAs(t, err, &invalid)
}

func TestResolveRepository_EnvFallback(t *testing.T) {
	t.Setenv("GITHUB_REPOSITORY", "acme/widgets")

	slug, err := ResolveRepository("")

	assert.NoError(t, err)
	assert.Equal(t, "acme/widgets", slug)
}
