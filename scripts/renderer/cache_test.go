package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_ParsesOnceAndCaches(t *testing.T) {
	parsed.Delete(TplTrailingSlash)

	first, err := lookup(TplTrailingSlash)
	require.NoError(t, err)

	cached, ok := parsed.Load(TplTrailingSlash)
	require.True(t, ok, "template should be cached after first lookup")
	assert.Same(t, first, cached)

	second, err := lookup(TplTrailingSlash)
	require.NoError(t, err)
	assert.Same(t, first, second, "second lookup must reuse the cached template")
}

func TestLookup_FailuresAreNotCached(t *testing.T) {
	missing := TemplateName("missing.tmpl")

	_, err := lookup(missing)
	require.Error(t, err)

	_, ok := parsed.Load(missing)
	assert.False(t, ok)
}
