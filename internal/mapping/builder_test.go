package mapping

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	m := Build([]string{
		"strength", "MinimumLevel", "*comment", "#note", "", "param1", "MaxDamage", "strength",
	})

	want := []Entry{
		{Header: "MaxDamage", Abbreviation: "MDamage"},
		{Header: "MinimumLevel", Abbreviation: "MinLevel"},
		{Header: "param1", Abbreviation: "param1"},
		{Header: "strength", Abbreviation: "Str"},
	}
	if diff := cmp.Diff(want, m.Entries); diff != "" {
		t.Errorf("Build mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 4, m.Processed())
	assert.Equal(t, 3, m.Skipped)
}

func TestBuild_CollisionsAreKept(t *testing.T) {
	t.Parallel()

	m := Build([]string{"Multiplier", "Multiplicative"})

	assert.Equal(t, map[string]string{"Multiplier": "Mult", "Multiplicative": "Mult"}, m.Pairs())
}

func TestIsComment(t *testing.T) {
	t.Parallel()

	assert.True(t, IsComment(""))
	assert.True(t, IsComment("*eol"))
	assert.True(t, IsComment("#notes"))
	assert.False(t, IsComment("name*"))
	assert.False(t, IsComment("Level"))
}

func TestMapping_Lookup(t *testing.T) {
	t.Parallel()

	m := Build([]string{"strength", "MaxDamage", "*comment"})

	abbr, ok := m.Lookup("strength")
	assert.True(t, ok)
	assert.Equal(t, "Str", abbr)

	_, ok = m.Lookup("*comment")
	assert.False(t, ok)

	_, ok = (&Mapping{}).Lookup("strength")
	assert.False(t, ok)
}

func TestFromPairs(t *testing.T) {
	t.Parallel()

	m := FromPairs(map[string]string{"b": "b", "B": "B", "a10": "a10", "a9": "a9"})

	var headers []string
	for _, e := range m.Entries {
		headers = append(headers, e.Header)
	}

	assert.Equal(t, []string{"B", "a10", "a9", "b"}, headers)
}
