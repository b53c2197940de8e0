package top500

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNextEdition(t *testing.T) {
	testCases := []struct {
		edition  Edition
		expected Edition
	}{
		{
			edition:  Edition{Year: 2024, Month: 6},
			expected: Edition{Year: 2024, Month: 11},
		},
		{
			edition:  Edition{Year: 2024, Month: 11},
			expected: Edition{Year: 2025, Month: 6},
		},
		{
			edition:  Edition{Year: 1993, Month: 6},
			expected: Edition{Year: 1993, Month: 11},
		},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, test.edition.Next())
	}
}

func TestNewEdition(t *testing.T) {
	edition, err := NewEdition(2017, 11)
	require.NoError(t, err)
	require.Equal(t, Edition{Year: 2017, Month: 11}, edition)

	_, err = NewEdition(1993, 6)
	require.NoError(t, err)

	invalid := []struct {
		year  int
		month int
	}{
		{year: 1990, month: 6},
		{year: 2017, month: 3},
		{year: time.Now().Year() + 1, month: 6},
	}
	for _, test := range invalid {
		_, err := NewEdition(test.year, test.month)
		require.ErrorAs(t, err, &InvalidEditionError{})
	}
}

func TestEditionFromURLRoundTrip(t *testing.T) {
	editions := []Edition{
		{Year: 1993, Month: 6},
		{Year: 2012, Month: 6},
		{Year: 2023, Month: 11},
	}
	for _, edition := range editions {
		parsed, err := EditionFromURL(ListURL(edition, 1))
		require.NoError(t, err)
		require.Equal(t, edition, parsed)
	}

	_, err := EditionFromURL("https://www.top500.org/statistics/")
	require.ErrorIs(t, err, ErrMalformedReference)
}

func TestLatest(t *testing.T) {
	testCases := []struct {
		now      time.Time
		expected Edition
	}{
		{
			now:      time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
			expected: Edition{Year: 2025, Month: 11},
		},
		{
			now:      time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC),
			expected: Edition{Year: 2026, Month: 6},
		},
		{
			now:      time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC),
			expected: Edition{Year: 2026, Month: 11},
		},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, Latest(test.now))
	}
}

func TestIDFromLink(t *testing.T) {
	id, err := IDFromLink("https://www.top500.org/system/177556")
	require.NoError(t, err)
	require.Equal(t, 177556, id)

	id, err = IDFromLink("/site/50440/")
	require.NoError(t, err)
	require.Equal(t, 50440, id)

	_, err = IDFromLink("/about")
	require.ErrorIs(t, err, ErrMalformedReference)

	_, err = IDFromLink("")
	require.ErrorIs(t, err, ErrMalformedReference)
}
