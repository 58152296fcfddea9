package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"a", "ab", 1},
		{"abc", "ab", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Hello", "hello", 1},
		{"msgpack", "msgpak", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a), "symmetric")
		})
	}
}

func TestSuggest(t *testing.T) {
	names := []string{"time", "duration", "bignumber", "uuid", "float-sentinels"}

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"tiem", "time", true},
		{"Duraton", "duration", true},
		{"big_number", "bignumber", true},
		{"floatsentinel", "float-sentinels", true},
		{"money", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Suggest(tt.in, names)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggest_PrefersCloser(t *testing.T) {
	got, ok := Suggest("jsn", []string{"yaml", "json", "js"})
	assert.True(t, ok)
	assert.Equal(t, "json", got)
}

func TestHint(t *testing.T) {
	assert.Equal(t, ` (did you mean "yaml"?)`, Hint("yml", []string{"json", "yaml"}))
	assert.Empty(t, Hint("toml", []string{"json", "cbor"}))
}
