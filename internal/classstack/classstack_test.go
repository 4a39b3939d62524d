package classstack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/surfaces/internal/vocabulary"
)

func TestFormatOrdersByCategoryAndStripsInternals(t *testing.T) {
	t.Parallel()

	input := []string{
		"menu", "surface", "overlay",
		"bloom-weak", "default-primary", "transparent", "window",
		"custom-class", "dense",
	}

	require.Equal(t, "transparent dense bloom-weak default-primary window custom-class", Format(input))
}

func TestFormatCases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "mapping value",
			input: "button metallic bloom-mild gold gem hoverable",
			want:  "metallic bloom-mild gold gem button hoverable",
		},
		{
			name:  "stable within category follows input order",
			input: "pill flat sapphire transparent",
			want:  "flat transparent sapphire pill",
		},
		{
			name:  "other bucket keeps relative order",
			input: "zeta card alpha flat",
			want:  "flat zeta card alpha",
		},
		{
			name:  "only internals",
			input: "menu overlay surface",
			want:  "",
		},
		{
			name:  "irregular whitespace",
			input: "  window \t onyx\n tinted ",
			want:  "tinted onyx window",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, FormatString(tc.input))
		})
	}
}

func TestOrdererWithCustomExclude(t *testing.T) {
	t.Parallel()

	o := DefaultOrderer()
	o.Exclude = []string{"hoverable"}

	require.Equal(t, "polished default-primary pill button", o.Format([]string{"button", "polished", "default-primary", "pill", "hoverable"}))
}

func TestMergeIsOrderedUnion(t *testing.T) {
	t.Parallel()

	merged := Merge(
		[]string{"custom", "button"},
		[]string{"button", "flat", "sapphire", ""},
		[]string{"button", "polished", "flat"},
	)

	require.Equal(t, []string{"custom", "button", "flat", "sapphire", "polished"}, merged)
	require.Empty(t, Merge())
}

func TestGroup(t *testing.T) {
	t.Parallel()

	groups := Group(Fields("surface dialog liquid diamond window overlay"))
	require.Equal(t, []string{"liquid"}, groups[vocabulary.Finish])
	require.Equal(t, []string{"diamond"}, groups[vocabulary.Material])
	require.Equal(t, []string{"window"}, groups[vocabulary.Shape])
	require.Equal(t, []string{"dialog"}, groups[vocabulary.Other])
	require.NotContains(t, groups, vocabulary.Component)
}
