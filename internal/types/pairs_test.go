package types_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/imurl/internal/types"
)

func TestParsePairs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		sep   byte
		want  types.Pairs
	}{
		{"empty", "", '&', nil},
		{"single", "a=1", '&', types.Pairs{types.KV("a", "1")}},
		{"ordered duplicates", "a=1&b=2&a=3", '&', types.Pairs{types.KV("a", "1"), types.KV("b", "2"), types.KV("a", "3")}},
		{"bare key", "flag", '&', types.Pairs{types.Flag("flag")}},
		{"bare key vs empty value", "a&a=", '&', types.Pairs{types.Flag("a"), types.KV("a", "")}},
		{"value with equals", "k=a=b", '&', types.Pairs{types.KV("k", "a=b")}},
		{"empty items dropped", "a=1&&b=2&", '&', types.Pairs{types.KV("a", "1"), types.KV("b", "2")}},
		{"semicolon separated", "rev=2;draft", ';', types.Pairs{types.KV("rev", "2"), types.Flag("draft")}},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := types.ParsePairs(c.input, c.sep)
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("types.ParsePairs(%q, %q) = %+v, want %+v\ndiff (-got +want):\n%v", c.input, c.sep, got, c.want, diff)
			}
		})
	}
}

func TestPairs_Get(t *testing.T) {
	t.Parallel()

	ps := types.ParsePairs("a=1&b=2&a=3&c", '&')

	cases := []struct {
		name string
		key  string
		want []string
	}{
		{"repeated key in order", "a", []string{"1", "3"}},
		{"single", "b", []string{"2"}},
		{"bare key", "c", []string{""}},
		{"missing", "z", nil},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(ps.Get(c.key), c.want); diff != "" {
				t.Errorf("ps.Get(%q) diff (-got +want):\n%v", c.key, diff)
			}
		})
	}
}

func TestPairs_Set(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		ps         types.Pairs
		key, value string
		want       types.Pairs
	}{
		{
			"collapses duplicates at first position",
			types.Pairs{types.KV("a", "1"), types.KV("b", "2"), types.KV("a", "3")},
			"a", "9",
			types.Pairs{types.KV("a", "9"), types.KV("b", "2")},
		},
		{
			"appends missing key",
			types.Pairs{types.KV("a", "1")},
			"b", "2",
			types.Pairs{types.KV("a", "1"), types.KV("b", "2")},
		},
		{"empty list", nil, "a", "1", types.Pairs{types.KV("a", "1")}},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := c.ps.Set(c.key, c.value)
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("ps.Set(%q, %q) diff (-got +want):\n%v", c.key, c.value, diff)
			}
		})
	}
}

func TestPairs_Add(t *testing.T) {
	t.Parallel()

	ps := types.Pairs{types.KV("a", "1")}
	got := ps.Add("a", "2").AddFlag("b")
	want := types.Pairs{types.KV("a", "1"), types.KV("a", "2"), types.Flag("b")}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf(`ps.Add("a", "2").AddFlag("b") diff (-got +want):\n%v`, diff)
	}
	if diff := cmp.Diff(ps, types.Pairs{types.KV("a", "1")}); diff != "" {
		t.Errorf("receiver changed, diff (-got +want):\n%v", diff)
	}
}

func TestPairs_Del(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ps   types.Pairs
		key  string
		want types.Pairs
	}{
		{
			"removes all occurrences",
			types.Pairs{types.KV("a", "1"), types.KV("b", "2"), types.KV("a", "3")},
			"a",
			types.Pairs{types.KV("b", "2")},
		},
		{
			"missing key is no-op",
			types.Pairs{types.KV("a", "1")},
			"z",
			types.Pairs{types.KV("a", "1")},
		},
		{"empty list", nil, "a", nil},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := c.ps.Del(c.key)
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("ps.Del(%q) diff (-got +want):\n%v", c.key, diff)
			}
		})
	}
}

func TestPairs_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ps   types.Pairs
		val  any
		want bool
	}{
		{"equal", types.Pairs{types.KV("a", "1")}, types.Pairs{types.KV("a", "1")}, true},
		{"equal by pointer", types.Pairs{types.KV("a", "1")}, &types.Pairs{types.KV("a", "1")}, true},
		{"different order", types.Pairs{types.KV("a", "1"), types.KV("b", "2")}, types.Pairs{types.KV("b", "2"), types.KV("a", "1")}, false},
		{"bare key vs empty value", types.Pairs{types.Flag("a")}, types.Pairs{types.KV("a", "")}, false},
		{"nil vs empty", nil, types.Pairs{}, true},
		{"not pairs", types.Pairs{}, "a=1", false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := c.ps.Equal(c.val), c.want; got != want {
				t.Errorf("ps.Equal(%+v) = %v, want %v", c.val, got, want)
			}
		})
	}
}
