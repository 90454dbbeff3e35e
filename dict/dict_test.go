package dict

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinDictionary(t *testing.T) {
	d := Builtin()
	require.GreaterOrEqual(t, d.Len(), 15, "builtin table should cover at least 15 syllables")

	rec, ok := d.Lookup("မောင်")
	require.True(t, ok)
	assert.Equal(t, "Mg", rec.Primary)
	assert.Equal(t, []string{"Maung", "M"}, rec.Alternates)
	assert.Equal(t, Honorific, rec.Category)

	rec, ok = d.Lookup("အကြမ်းဖက်")
	require.True(t, ok)
	assert.Equal(t, Political, rec.Category)

	_, ok = d.Lookup("hello")
	assert.False(t, ok)

	// All three categories are represented.
	found := map[Category]bool{}
	for _, key := range d.Keys() {
		rec, ok := d.Lookup(key)
		require.True(t, ok)
		found[rec.Category] = true
	}
	assert.True(t, found[Honorific])
	assert.True(t, found[Name])
	assert.True(t, found[Political])
}

func TestKeysPreserveInsertionOrder(t *testing.T) {
	d, err := New([]Entry{
		{"ဘ", Record{Primary: "Ba", Category: Name}},
		{"အ", Record{Primary: "A", Category: Name}},
		{"က", Record{Primary: "Ka", Category: Name}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ဘ", "အ", "က"}, d.Keys())
}

func TestNewRejectsBadEntries(t *testing.T) {
	_, err := New([]Entry{{"", Record{Primary: "X"}}})
	assert.Error(t, err, "empty syllable")

	_, err = New([]Entry{
		{"က", Record{Primary: "Ka"}},
		{"က", Record{Primary: "Ka2"}},
	})
	assert.Error(t, err, "duplicate syllable")

	_, err = New([]Entry{{"က", Record{Primary: "Ka", Frequency: 1.5}}})
	assert.Error(t, err, "frequency out of range")
}

func TestMatchLongestPrefersLongerKey(t *testing.T) {
	// A one-rune prefix of မောင် must never win over the full key.
	d, err := New([]Entry{
		{"မ", Record{Primary: "Ma", Category: Name}},
		{"မောင်", Record{Primary: "Mg", Alternates: []string{"Maung", "M"}, Category: Honorific}},
	})
	require.NoError(t, err)

	key, rec, ok := d.MatchLongest([]rune("မောင်"))
	require.True(t, ok)
	assert.Equal(t, "မောင်", key)
	assert.Equal(t, "Mg", rec.Primary)
}

func TestMatchLongestCompoundOverComponent(t *testing.T) {
	d := Builtin()
	key, rec, ok := d.MatchLongest([]rune("နိုင်ငံရေး"))
	require.True(t, ok)
	assert.Equal(t, "နိုင်ငံ", key, "compound နိုင်ငံ should shadow နိုင်")
	assert.Equal(t, "Nation", rec.Primary)

	// Without the ငံ continuation the shorter key wins.
	key, _, ok = d.MatchLongest([]rune("နိုင်"))
	require.True(t, ok)
	assert.Equal(t, "နိုင်", key)
}

func TestMatchLongestNoMatch(t *testing.T) {
	d := Builtin()
	_, _, ok := d.MatchLongest([]rune("၁၂၃"))
	assert.False(t, ok, "Myanmar digits are not in the table")
}

func TestCategoryText(t *testing.T) {
	assert.Equal(t, "honorific", Honorific.String())
	assert.Equal(t, "unmapped", Unmapped.String())
	b, err := Political.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "political", string(b))
}

func TestCategoryJSONRoundTrip(t *testing.T) {
	// Serialized breakdowns must decode back; categories travel as names.
	for _, c := range []Category{Honorific, Name, Political, Unmapped} {
		data, err := json.Marshal(c)
		require.NoError(t, err)

		var decoded Category
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, c, decoded)
	}

	var c Category
	assert.Error(t, json.Unmarshal([]byte(`"royalty"`), &c), "unknown category names must not decode")
}
