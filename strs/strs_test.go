package strs_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drills/strs"
)

var words = []string{"eat", "tea", "tan", "ate", "nat", "bat"}

func TestGroupAnagrams(t *testing.T) {
	want := [][]string{{"eat", "tea", "ate"}, {"tan", "nat"}, {"bat"}}
	assert.Equal(t, want, strs.GroupAnagrams(words))

	got, err := strs.GroupAnagramsFreq(words)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	assert.Empty(t, strs.GroupAnagrams(nil))
}

func TestGroupAnagramsFreq_RejectsUppercase(t *testing.T) {
	_, err := strs.GroupAnagramsFreq([]string{"abc", "Cab"})
	assert.ErrorIs(t, err, strs.ErrNotLowercase)
}

func TestFirstUnique(t *testing.T) {
	r, ok := strs.FirstUnique("aabcbcdee")
	require.True(t, ok)
	assert.Equal(t, 'd', r)

	_, ok = strs.FirstUnique("aabb")
	assert.False(t, ok)

	_, ok = strs.FirstUnique("")
	assert.False(t, ok)
}

func TestLongestUnique(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"abcabcbb", 3, "abc"},
		{"bbbbb", 1, "b"},
		{"pwwkew", 3, "wke"},
		{"", 0, ""},
		{"abba", 2, "ab"},
		{"你好吗你好", 3, "你好吗"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.n, strs.LongestUniqueLen(tc.in))
			assert.Equal(t, tc.n, strs.LongestUniqueLenSet(tc.in))
			assert.Equal(t, tc.want, strs.LongestUnique(tc.in))

			n, err := strs.LongestUniqueLenStream(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.n, n)
		})
	}
}

func TestCompressRoundTrip(t *testing.T) {
	cases := map[string]string{
		"aaabbbccd": "a3b3c2d1",
		"aaaaaaabbbbbbbbbccddddddddddddddddddd": "a7b9c2d19",
		"a":  "a1",
		"":   "",
		"ab": "a1b1",
		"ééé": "é3",
	}
	for plain, enc := range cases {
		got, err := strs.Compress(plain)
		require.NoError(t, err)
		assert.Equal(t, enc, got)

		back, err := strs.Decompress(got)
		require.NoError(t, err)
		assert.Equal(t, plain, back)
	}
}

func TestCompress_Digits(t *testing.T) {
	_, err := strs.Compress("a1")
	assert.ErrorIs(t, err, strs.ErrDigitInput)
}

func TestDecompress_Edges(t *testing.T) {
	got, err := strs.Decompress("a12")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 12), got)

	got, err = strs.Decompress("ab2")
	require.NoError(t, err)
	assert.Equal(t, "bb", got, "a character without count expands to nothing")

	_, err = strs.Decompress("3a")
	assert.ErrorIs(t, err, strs.ErrMalformed)
}

func TestDecompress_CountTooLarge(t *testing.T) {
	for _, in := range []string{
		"a99999999999999999999",
		"a9223372036854775807",
		"a16777217",
		"a16777216b1",
	} {
		_, err := strs.Decompress(in)
		assert.ErrorIs(t, err, strs.ErrMalformed, "input %q", in)
	}

	got, err := strs.Decompress("a16777216")
	require.NoError(t, err)
	assert.Len(t, got, strs.MaxDecodedRunes)
}
