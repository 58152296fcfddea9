package options

import (
	"fmt"
	"strings"

	"type-transformer/internal/match"
)

type CategoryEnum int

const (
	CategoryTime           CategoryEnum = 1 << iota // time.Time <-> string(RFC3339Nano)
	CategoryDuration                                // time.Duration <-> string(2h45m)
	CategoryBigNumber                               // *big.Int <-> decimal string, *big.Rat <-> string(a/b)
	CategoryUUID                                    // uuid.UUID <-> canonical string
	CategoryBytes                                   // []byte <-> string(base64)
	CategoryComplex                                 // complex128 <-> [re, im]
	CategoryFloatSentinels                          // NaN, +Inf, -Inf <-> null under their own tags

	CategoryAll  CategoryEnum = (1 << iota) - 1 // all categories combined
	CategoryNone CategoryEnum = 0               // no categories selected
)

var categoryNames = []struct {
	name string
	cat  CategoryEnum
}{
	{"time", CategoryTime},
	{"duration", CategoryDuration},
	{"bignumber", CategoryBigNumber},
	{"uuid", CategoryUUID},
	{"bytes", CategoryBytes},
	{"complex", CategoryComplex},
	{"float-sentinels", CategoryFloatSentinels},
}

// Has reports whether every category of other is selected in c.
func (c CategoryEnum) Has(other CategoryEnum) bool {
	return c&other == other
}

// String lists the selected categories joined with commas.
func (c CategoryEnum) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryAll:
		return "all"
	}

	var parts []string

	rest := c
	for _, n := range categoryNames {
		if c.Has(n.cat) {
			parts = append(parts, n.name)
			rest &^= n.cat
		}
	}

	if rest != 0 {
		parts = append(parts, fmt.Sprintf("CategoryEnum(%#x)", int(rest)))
	}

	return strings.Join(parts, ",")
}

// Names returns the names accepted by ParseCategory for single categories.
func Names() []string {
	out := make([]string, len(categoryNames))
	for i, n := range categoryNames {
		out[i] = n.name
	}

	return out
}

// ParseCategory parses a comma separated list of category names. The words
// "all" and "none" select every category or no category; blanks are
// skipped.
func ParseCategory(s string) (CategoryEnum, error) {
	var out CategoryEnum

	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))

		switch part {
		case "":
			continue
		case "all":
			out |= CategoryAll
			continue
		case "none":
			continue
		}

		found := false
		for _, n := range categoryNames {
			if n.name == part {
				out |= n.cat
				found = true

				break
			}
		}

		if !found {
			return CategoryNone, fmt.Errorf("unknown category %q%s", part, match.Hint(part, Names()))
		}
	}

	return out, nil
}
