package mappings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/surfaces/internal/vocabulary"
	surfaceserrors "github.com/alexisbeaulieu97/surfaces/pkg/errors"
)

func TestDefaultResolvesKnownKey(t *testing.T) {
	t.Parallel()

	table := Default()
	require.True(t, table.Has("ok-button"))

	classes, ok := table.Lookup("ok-button")
	require.True(t, ok)
	require.Equal(t, []string{"button", "flat", "sapphire", "plaque", "hoverable"}, classes)

	value, ok := table.Value("ok-button")
	require.True(t, ok)
	require.Equal(t, "button flat sapphire plaque hoverable", value)
}

func TestUnknownKeyIsAbsent(t *testing.T) {
	t.Parallel()

	table := Default()
	require.False(t, table.Has("does-not-exist"))

	classes, ok := table.Lookup("does-not-exist")
	require.False(t, ok)
	require.Nil(t, classes)

	_, ok = table.Lookup("OK-BUTTON")
	require.False(t, ok, "lookup is case-sensitive")

	_, ok = table.Lookup(" ok-button")
	require.False(t, ok, "lookup does not normalize")
}

func TestSnapshotIsIndependent(t *testing.T) {
	t.Parallel()

	table := Default()
	all := table.Snapshot()
	all["ok-button"] = "tampered"
	all["new-key"] = "button flat onyx pill"
	delete(all, "card")

	value, _ := table.Value("ok-button")
	require.NotEqual(t, "tampered", value)
	require.False(t, table.Has("new-key"))
	require.True(t, table.Has("card"))
}

func TestLookupReturnsCopy(t *testing.T) {
	t.Parallel()

	table := Default()
	classes, _ := table.Lookup("tag")
	classes[0] = "tampered"

	again, _ := table.Lookup("tag")
	require.Equal(t, "chip", again[0])
}

func TestDefaultSatisfiesVocabularyRules(t *testing.T) {
	t.Parallel()

	table := Default()
	require.Equal(t, 46, table.Len())
	require.Empty(t, Check(table))
	require.True(t, table.Exempt("code"))
	require.False(t, table.Exempt("ok-button"))
}

func TestEveryNonExemptEntryHasComponentFinishMaterial(t *testing.T) {
	t.Parallel()

	table := Default()
	for key, value := range table.Snapshot() {
		if table.Exempt(key) {
			continue
		}
		tokens := strings.Fields(value)

		var components int
		var finish, material bool
		for _, token := range tokens {
			if vocabulary.Is(vocabulary.Component, token) {
				components++
			}
			finish = finish || vocabulary.Is(vocabulary.Finish, token)
			material = material || vocabulary.Is(vocabulary.Material, token)
		}
		require.Equalf(t, 1, components, "key %q", key)
		require.Truef(t, finish, "key %q has no finish", key)
		require.Truef(t, material, "key %q has no material", key)
	}
}

func TestCheckReportsViolations(t *testing.T) {
	t.Parallel()

	table, err := Parse(map[string]string{
		"bare":    "hoverable",
		"twice":   "button chip flat onyx pill",
		"snippet": "code block",
	}, "snippet")
	require.NoError(t, err)

	violations := Check(table)
	require.Equal(t, []Violation{
		{Key: "bare", Rule: RuleComponent, Message: "expected exactly one component token, found 0"},
		{Key: "bare", Rule: RuleFinish, Message: "no finish token"},
		{Key: "bare", Rule: RuleMaterial, Message: "no material token"},
		{Key: "twice", Rule: RuleComponent, Message: "expected exactly one component token, found 2"},
	}, violations)

	var mappingErr *surfaceserrors.MappingError
	require.ErrorAs(t, violations[0].Err(), &mappingErr)
	require.Equal(t, "bare", mappingErr.Key)
}

func TestNewRejectsInvalidEntries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		entries []Entry
		message string
	}{
		{name: "empty key", entries: []Entry{{Key: " ", Classes: []string{"button"}}}, message: "semantic key must not be empty"},
		{name: "key with space", entries: []Entry{{Key: "ok button", Classes: []string{"button"}}}, message: "must not contain whitespace"},
		{name: "empty token", entries: []Entry{{Key: "a", Classes: []string{"button", ""}}}, message: "class token must not be empty"},
		{name: "token with space", entries: []Entry{{Key: "a", Classes: []string{"button flat"}}}, message: "must not contain whitespace"},
		{name: "duplicate", entries: []Entry{{Key: "a"}, {Key: "a"}}, message: "duplicate semantic key"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tc.entries)
			var validationErr *surfaceserrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Contains(t, validationErr.Message, tc.message)
		})
	}
}

func TestParseRejectsUndeclaredExemption(t *testing.T) {
	t.Parallel()

	_, err := Parse(map[string]string{"a": "button flat onyx pill"}, "b")
	require.Error(t, err)
}

func TestExistsIndependentOfValue(t *testing.T) {
	t.Parallel()

	table, err := New([]Entry{{Key: "placeholder", Exempt: true}})
	require.NoError(t, err)
	require.True(t, table.Has("placeholder"))

	classes, ok := table.Lookup("placeholder")
	require.True(t, ok)
	require.Empty(t, classes)
}

func TestExtendLeavesReceiverUntouched(t *testing.T) {
	t.Parallel()

	base := Default()
	extended, err := base.Extend([]Entry{
		{Key: "ok-button", Classes: []string{"button", "glossy", "gold", "pill"}},
		{Key: "hero-card", Classes: []string{"surface", "card", "glossy", "gold", "window"}},
		{Key: "code", Classes: []string{"button", "flat", "onyx", "pill"}},
	})
	require.NoError(t, err)

	value, _ := base.Value("ok-button")
	require.Equal(t, "button flat sapphire plaque hoverable", value)
	require.False(t, base.Has("hero-card"))

	value, _ = extended.Value("ok-button")
	require.Equal(t, "button glossy gold pill", value)
	require.True(t, extended.Has("hero-card"))
	require.Equal(t, base.Len()+1, extended.Len())
	require.False(t, extended.Exempt("code"), "override without the flag clears the exemption")
	require.True(t, base.Exempt("code"))
}

func TestKeysAreSorted(t *testing.T) {
	t.Parallel()

	keys := Default().Keys()
	require.Equal(t, "active-button", keys[0])
	require.IsNonDecreasing(t, keys)
}

func TestComponent(t *testing.T) {
	t.Parallel()

	component, ok := Default().Component("dialog")
	require.True(t, ok)
	require.Equal(t, "surface", component)

	_, ok = Default().Component("nope")
	require.False(t, ok)
}

func TestNilTableIsEmpty(t *testing.T) {
	t.Parallel()

	var table *Table
	require.False(t, table.Has("ok-button"))
	require.Zero(t, table.Len())
	require.Empty(t, table.Snapshot())
}
