package comparator

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/amp-labs/amp-compare/errors"
)

func compareKeys(t *testing.T, keyCmp KeyComparator, a, b any) int {
	t.Helper()

	res, err := keyCmp(a, b)
	require.NoError(t, err)

	return res
}

func TestLocaleKeyComparator(t *testing.T) {
	t.Parallel()

	// Swedish sorts ö after z, the root collation sorts it next to o.
	assert.Equal(t, 1, compareKeys(t, LocaleKeyComparator(language.Swedish), "ö", "z"))
	assert.Equal(t, -1, compareKeys(t, DefaultKeyComparator(), "ö", "z"))

	ignoreCase := LocaleKeyComparator(language.English, collate.IgnoreCase)
	assert.Equal(t, 0, compareKeys(t, ignoreCase, "john", "JOHN"))
	assert.NotEqual(t, 0, compareKeys(t, DefaultKeyComparator(), "john", "JOHN"))

	numeric := LocaleKeyComparator(language.English, collate.Numeric)
	assert.Equal(t, -1, compareKeys(t, numeric, "file2", "file10"))

	// Non-string keys keep the default rule.
	assert.Equal(t, -1, compareKeys(t, ignoreCase, 1, 2))

	_, err := ignoreCase(1, "a")
	require.ErrorIs(t, err, errors.ErrIncomparableTypes)
}

func TestNaturalKeyComparator(t *testing.T) {
	t.Parallel()

	natural := NaturalKeyComparator()

	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{name: "numeric run", a: "file2", b: "file10", expected: -1},
		{name: "numeric run reversed", a: "file10", b: "file2", expected: 1},
		{name: "equal", a: "img12.png", b: "img12.png", expected: 0},
		{name: "plain text", a: "alpha", b: "beta", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, compareKeys(t, natural, tt.a, tt.b))
		})
	}

	// The collated default puts "file10" first.
	assert.Equal(t, 1, compareKeys(t, DefaultKeyComparator(), "file2", "file10"))

	_, err := natural("file", false)
	require.ErrorIs(t, err, errors.ErrIncomparableTypes)
}

func TestNaturalKeyComparator_Sort(t *testing.T) {
	t.Parallel()

	files := []string{"file10.txt", "file2.txt", "file1.txt"}

	sorted, err := MustComparing(Identity[string](), NaturalKeyComparator()).Sort(files)
	require.NoError(t, err)
	assert.Equal(t, []string{"file1.txt", "file2.txt", "file10.txt"}, sorted)
}

func TestCollation_ConcurrentUse(t *testing.T) {
	t.Parallel()

	keyCmp := LocaleKeyComparator(language.German)

	const workers = 16

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []int
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				res, err := keyCmp("Äpfel", "Birnen")
				if err != nil {
					res = 99
				}

				mu.Lock()
				results = append(results, res)
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	require.Len(t, results, workers*100)

	for _, res := range results {
		assert.Equal(t, -1, res)
	}
}

func TestNaturalKeyComparator_ChunkEqualStrings(t *testing.T) {
	t.Parallel()

	natural := NaturalKeyComparator()

	assert.Equal(t, -1, compareKeys(t, natural, "01", "1"))
	assert.Equal(t, 1, compareKeys(t, natural, "1", "01"))
}
