package stylesheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/surfaces/internal/mappings"
)

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}

func TestClassNames(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		css  string
		want []string
	}{
		{
			name: "simple rules",
			css:  `.button { color: red } .chip{}`,
			want: []string{"button", "chip"},
		},
		{
			name: "grouped and compound selectors",
			css:  `.flat.sapphire, div > .pill:hover, a[href] { margin: 0 }`,
			want: []string{"flat", "sapphire", "pill"},
		},
		{
			name: "nested in media",
			css:  `@media (min-width: 40em) { .dense { padding: 1px } } @import "x.css";`,
			want: []string{"dense"},
		},
		{
			name: "escaped class",
			css:  `.w-1\/2 { width: 50% }`,
			want: []string{"w-1/2"},
		},
		{
			name: "declarations are not selectors",
			css:  `p { width: .5em; font: 12px/1.5 serif }`,
			want: []string{},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			names, err := ClassNames(strings.NewReader(tc.css))
			require.NoError(t, err)
			require.ElementsMatch(t, tc.want, keys(names))
		})
	}
}

func TestAudit(t *testing.T) {
	t.Parallel()

	table, err := mappings.Parse(map[string]string{
		"ok":     "button flat sapphire",
		"cancel": "button flat ruby",
		"tag":    "chip ruby",
	})
	require.NoError(t, err)

	defined, err := ClassNames(strings.NewReader(`.button, .chip { } .flat {}`))
	require.NoError(t, err)

	report := Audit(table, defined)
	require.False(t, report.OK())
	require.Equal(t, 5, report.Tokens)
	require.Equal(t, 3, report.Defined)
	require.Equal(t, []string{"ruby", "sapphire"}, report.MissingClasses())
	require.Equal(t, []string{"cancel", "tag"}, report.Missing["ruby"])
	require.Equal(t, []string{"ok"}, report.Missing["sapphire"])
}

func TestAuditFullCoverage(t *testing.T) {
	t.Parallel()

	table, err := mappings.Parse(map[string]string{"tag": "chip pill"})
	require.NoError(t, err)

	report := Audit(table, map[string]struct{}{"chip": {}, "pill": {}, "extra": {}})
	require.True(t, report.OK())
	require.Empty(t, report.MissingClasses())
}
