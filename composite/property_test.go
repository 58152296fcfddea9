package composite

import (
	"reflect"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var dumper = spew.ConfigState{Indent: "  ", SortKeys: true}

// drawValue draws a tree of plain values, points, segments and the
// missing sentinel. Keys never start with the tag prefix.
func drawValue(t *rapid.T, depth int) any {
	kinds := 8
	if depth <= 0 {
		kinds = 6
	}

	switch rapid.IntRange(0, kinds-1).Draw(t, "kind") {
	case 0:
		return nil
	case 1:
		return rapid.Bool().Draw(t, "bool")
	case 2:
		return rapid.Float64Range(-1e9, 1e9).Draw(t, "number")
	case 3:
		return rapid.StringMatching(`[ -~]{0,12}`).Draw(t, "string")
	case 4:
		return point{
			X: rapid.Float64Range(-1e6, 1e6).Draw(t, "x"),
			Y: rapid.Float64Range(-1e6, 1e6).Draw(t, "y"),
		}
	case 5:
		return missing
	case 6:
		n := rapid.IntRange(0, 4).Draw(t, "len")
		out := make([]any, n)
		for i := range out {
			out[i] = drawValue(t, depth-1)
		}

		return out
	default:
		keys := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,6}`), 0, 4).Draw(t, "keys")
		out := make(map[string]any, len(keys))
		for _, k := range keys {
			out[k] = drawValue(t, depth-1)
		}

		return out
	}
}

func TestProperty_RoundTrip(t *testing.T) {
	c := newGeo(t)

	rapid.Check(t, func(rt *rapid.T) {
		in := drawValue(rt, 3)

		dumped, err := c.Dump(in)
		if err != nil {
			rt.Fatalf("dump: %v\n%s", err, dumper.Sdump(in))
		}

		got, err := c.Restore(dumped)
		if err != nil {
			rt.Fatalf("restore: %v\n%s", err, dumper.Sdump(dumped))
		}

		if !reflect.DeepEqual(in, got) {
			rt.Fatalf("round trip mismatch\nin:  %s\ngot: %s", dumper.Sdump(in), dumper.Sdump(got))
		}
	})
}

func TestProperty_TextRoundTrip(t *testing.T) {
	c := newGeo(t)

	rapid.Check(t, func(rt *rapid.T) {
		in := drawValue(rt, 3)

		data, err := c.Stringify(in)
		if err != nil {
			rt.Fatalf("stringify: %v\n%s", err, dumper.Sdump(in))
		}

		got, err := c.Parse(data)
		if err != nil {
			rt.Fatalf("parse %s: %v", data, err)
		}

		if !reflect.DeepEqual(in, got) {
			rt.Fatalf("text round trip mismatch for %s\nin:  %s\ngot: %s", data, dumper.Sdump(in), dumper.Sdump(got))
		}
	})
}

func TestProperty_DumpIsPure(t *testing.T) {
	c := newGeo(t)

	rapid.Check(t, func(rt *rapid.T) {
		in := drawValue(rt, 3)
		before := dumper.Sdump(in)

		first, err := c.Dump(in)
		if err != nil {
			rt.Fatal(err)
		}

		second, err := c.Dump(in)
		if err != nil {
			rt.Fatal(err)
		}

		if !reflect.DeepEqual(first, second) {
			rt.Fatalf("dump is not deterministic for %s", before)
		}

		if after := dumper.Sdump(in); after != before {
			rt.Fatalf("dump modified its input\nbefore: %s\nafter:  %s", before, after)
		}
	})
}

func TestComposite_ConcurrentUse(t *testing.T) {
	c := newGeo(t)
	shared := map[string]any{
		"points": []any{point{1, 2}, point{3, 4}},
		"none":   missing,
	}

	dumped, err := c.Dump(shared)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 50 {
				d, err := c.Dump(shared)
				assert.NoError(t, err)

				r, err := c.Restore(dumped)
				assert.NoError(t, err)
				assert.Equal(t, shared, r)
				assert.Equal(t, dumped, d)
			}
		}()
	}

	wg.Wait()
}
