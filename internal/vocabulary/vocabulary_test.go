package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisplayVocabulariesAreDisjoint(t *testing.T) {
	t.Parallel()

	seen := make(map[string]Category)
	for _, c := range DisplayOrder() {
		for _, token := range Members(c) {
			prev, dup := seen[token]
			require.Falsef(t, dup, "token %q is in both %s and %s", token, prev, c)
			seen[token] = c
		}
	}
}

func TestCategorize(t *testing.T) {
	t.Parallel()

	cases := map[string]Category{
		"flat":            Finish,
		"dense":           Density,
		"bloom-strong":    Bloom,
		"default-primary": Material,
		"chevron-middle":  Shape,
		"button":          Component,
		"surface":         Component,
		"hoverable":       Other,
		"Flat":            Other,
	}

	for token, want := range cases {
		require.Equalf(t, want, Categorize(token), "token %q", token)
	}
}

func TestMembersReturnsCopy(t *testing.T) {
	t.Parallel()

	got := Members(Finish)
	got[0] = "tampered"
	require.Equal(t, "transparent", Members(Finish)[0])
	require.Empty(t, Members(Other))
}

func TestInternalTokens(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"menu", "surface", "overlay"}, Internal())
	require.Equal(t, "material", Material.String())
	require.Equal(t, "other", Category(99).String())
}
