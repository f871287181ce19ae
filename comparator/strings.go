package comparator

import (
	"strings"
	"sync"

	"facette.io/natsort"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collation hands out collators from a pool, since a collate.Collator keeps
// scratch buffers and must not be shared between goroutines.
type collation struct {
	pool sync.Pool
}

func newCollation(tag language.Tag, opts ...collate.Option) *collation {
	c := &collation{}
	c.pool.New = func() any {
		return collate.New(tag, opts...)
	}

	return c
}

func (c *collation) compare(a, b string) int {
	col := c.pool.Get().(*collate.Collator) //nolint:forcetypeassert
	defer c.pool.Put(col)

	return col.CompareString(a, b)
}

var rootCollation = newCollation(language.Und) //nolint:gochecknoglobals

// LocaleKeyComparator is the default ordering rule with strings collated for
// the given locale. Options such as collate.IgnoreCase or collate.Numeric are
// passed through to the collator.
func LocaleKeyComparator(tag language.Tag, opts ...collate.Option) KeyComparator {
	rule := keyRule{strings: newCollation(tag, opts...).compare}

	return rule.compare
}

// NaturalKeyComparator is the default ordering rule with strings in natural
// order, where digit runs compare by value: "file2" sorts before "file10".
func NaturalKeyComparator() KeyComparator {
	rule := keyRule{strings: naturalStrings}

	return rule.compare
}

func naturalStrings(a, b string) int {
	if a == b {
		return 0
	}

	less, greater := natsort.Compare(a, b), natsort.Compare(b, a)

	switch {
	case less == greater:
		// Distinct strings natsort cannot tell apart, such as "01" and "1".
		return strings.Compare(a, b)
	case less:
		return -1
	default:
		return 1
	}
}
