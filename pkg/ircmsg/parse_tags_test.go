package ircmsg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTags(t *testing.T) {
	l, err := ParseTags(`@id=123;+acme.org/reply=abc;acme.org/flag;empty=;esc=a\sb\:c`)
	require.NoError(t, err)

	require.Equal(t, []string{"id", "acme.org/flag", "empty", "esc", "+acme.org/reply"}, l.Keys())
	require.Equal(t, []Tag{
		{Name: "id", Value: Text("123")},
		{Name: "flag", Vendor: "acme.org", Value: Flag()},
		{Name: "empty", Value: Text("")},
		{Name: "esc", Value: Text(`a\sb\:c`)},
		{Name: "reply", Vendor: "acme.org", ClientOnly: true, Value: Text("abc")},
	}, l.Tags())
}

func TestParseTags_Empty(t *testing.T) {
	l, err := ParseTags("")
	require.NoError(t, err)
	require.Nil(t, l)
}

func TestParseTags_ValueMayHoldEquals(t *testing.T) {
	l, err := ParseTags("@k=a=b")
	require.NoError(t, err)
	v, _ := l.Get("k")
	require.Equal(t, Text("a=b"), v)
}

func TestParseTags_Vendors(t *testing.T) {
	valid := []string{
		"acme.org",
		"twitch.tv",
		"a.b.c.network",
		"x1-y.example.com",
		strings.Repeat("a", 63) + ".com",
	}
	for _, vendor := range valid {
		t.Run(vendor, func(t *testing.T) {
			_, err := ParseTags("@" + vendor + "/id=1")
			require.NoError(t, err)
		})
	}

	invalid := []string{
		"localhost",
		"acme.c",
		"acme.c0m",
		"-acme.org",
		"acme-.org",
		"1acme.org",
		"acme..org",
		"acme.org.",
		strings.Repeat("a", 64) + ".com",
		strings.Repeat("abcdefgh.", 28) + "com", // 255 characters
	}
	for _, vendor := range invalid {
		t.Run(vendor, func(t *testing.T) {
			_, err := ParseTags("@" + vendor + "/id=1")
			require.ErrorIs(t, err, ErrMalformedTagList)
		})
	}
}

func TestParseTags_Malformed(t *testing.T) {
	for _, tags := range []string{
		"@",
		"id=1",
		"@id=1;",
		"@;id=1",
		"@id=1;;b=2",
		"@id=1 b=2",
		"@id=1\tb=2",
		"@i_d=1",
		"@=1",
		"@+",
		"@a/b/c=1",
		"@acme.org/=1",
		"@k=a\x00b",
		"@++k=1",
	} {
		t.Run(tags, func(t *testing.T) {
			l, err := ParseTags(tags)
			require.ErrorIs(t, err, ErrMalformedTagList)
			require.Nil(t, l)
		})
	}
}
