package top500

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		kind     Kind
		raw      string
		expected any
	}{
		{kind: Integer, raw: "12,345", expected: int64(12345)},
		{kind: Integer, raw: "1,572,864", expected: int64(1572864)},
		{kind: Integer, raw: "1,572,864 GB", expected: int64(1572864)},
		{kind: Float, raw: "12,345.6", expected: 12345.6},
		{kind: Float, raw: "7,890.00 kW", expected: 7890.0},
		// negative values mark a data defect in the source, never a
		// legitimate measurement
		{kind: Integer, raw: "-12", expected: nil},
		{kind: Float, raw: "-", expected: nil},
		// values with no leading number come back unchanged so the
		// caller can log them
		{kind: Integer, raw: "N/A", expected: "N/A"},
		{kind: Float, raw: "unknown", expected: "unknown"},
		// a fractional value for an integer field is an anomaly too
		{kind: Integer, raw: "12,345.6", expected: "12,345.6"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, EnUS.Normalize(test.kind, test.raw), "raw: %q", test.raw)
	}
}

func TestParseIntFloat(t *testing.T) {
	cores, err := EnUS.ParseInt(" 705,024 ")
	require.NoError(t, err)
	require.Equal(t, int64(705024), cores)

	_, err = EnUS.ParseInt("")
	require.Error(t, err)

	rmax, err := EnUS.ParseFloat("10,510.0")
	require.NoError(t, err)
	require.Equal(t, 10510.0, rmax)

	_, err = EnUS.ParseFloat("n/a")
	require.Error(t, err)

	_, err = EnUS.ParseFloat("-7,890")
	require.Error(t, err)
}
