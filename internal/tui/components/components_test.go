package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/surfaces/internal/mappings"
	"github.com/alexisbeaulieu97/surfaces/internal/vocabulary"
)

func testTable(t *testing.T) *mappings.Table {
	t.Helper()
	table, err := mappings.New([]mappings.Entry{
		{Key: "ok-button", Classes: []string{"button", "flat", "sapphire", "plaque", "hoverable"}},
		{Key: "tag", Classes: []string{"chip", "milky", "sapphire", "pill"}},
		{Key: "snippet", Classes: []string{"code", "block"}, Exempt: true},
	})
	require.NoError(t, err)
	return table
}

func TestNewEntryList(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		filter string
		want   []string
	}{
		{name: "empty filter keeps all", filter: "", want: []string{"ok-button", "snippet", "tag"}},
		{name: "key substring", filter: "butt", want: []string{"ok-button"}},
		{name: "class prefix", filter: "sapph", want: []string{"ok-button", "tag"}},
		{name: "case insensitive", filter: " TAG ", want: []string{"tag"}},
		{name: "no match", filter: "zzz", want: []string{}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			list := NewEntryList(testTable(t), tc.filter)
			keys := []string{}
			for _, e := range list.Entries() {
				keys = append(keys, e.Key)
			}
			require.Equal(t, tc.want, keys)
			require.Equal(t, 3, list.Total())
			require.Equal(t, len(tc.want), list.Len())
		})
	}
}

func TestEntryListAt(t *testing.T) {
	t.Parallel()

	list := NewEntryList(testTable(t), "")
	entry, ok := list.At(2)
	require.True(t, ok)
	require.Equal(t, "tag", entry.Key)

	_, ok = list.At(3)
	require.False(t, ok)
	_, ok = list.At(-1)
	require.False(t, ok)
}

func TestDetailRows(t *testing.T) {
	t.Parallel()

	detail := NewDetail(Entry{Key: "ok-button", Classes: []string{"button", "flat", "sapphire", "plaque", "hoverable"}})

	rows := detail.Rows()
	require.Len(t, rows, 5)
	require.Equal(t, vocabulary.Component, rows[0].Category)
	require.Equal(t, vocabulary.Finish, rows[1].Category)
	require.Equal(t, []string{"hoverable"}, rows[len(rows)-1].Tokens)
	require.Equal(t, "flat sapphire plaque button hoverable", detail.Ordered())
}

func TestDetailLinesMarksExempt(t *testing.T) {
	t.Parallel()

	lines := NewDetail(Entry{Key: "snippet", Classes: []string{"code", "block"}, Exempt: true}).Lines()
	require.Contains(t, lines[len(lines)-1], "exempt")
	require.True(t, strings.HasPrefix(lines[0], "component"))
}

func TestMeterView(t *testing.T) {
	t.Parallel()

	require.Contains(t, NewMeter(4).View(2), "2/4 keys")
	require.Contains(t, NewMeter(0).View(0), "0/0 keys")
}
