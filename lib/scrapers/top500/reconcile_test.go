package top500

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReconcile(t *testing.T) {
	testCases := []struct {
		parts        []string
		known        KnownParts
		expectedName string
		expectedGpu  string
	}{
		{
			// the details page spells both components slightly
			// differently than the listing does
			parts: []string{"Sequoia-BlueGene/Q", "Power BQC 16C 1.60 GHz", "Custom"},
			known: KnownParts{
				Processor:    "Power BQC 16C 1.6GHz",
				Interconnect: "Custom Interconnect",
			},
			expectedName: "Sequoia-BlueGene/Q",
			expectedGpu:  "",
		},
		{
			parts: []string{"Titan - Cray XK7", "Opteron 6274 16C 2.200GHz", "Cray Gemini interconnect", "NVIDIA K20x"},
			known: KnownParts{
				Processor:    "Opteron 6274 16C 2.2GHz",
				Interconnect: "Cray Gemini interconnect",
			},
			expectedName: "Titan - Cray XK7",
			expectedGpu:  "NVIDIA K20x",
		},
		{
			// nothing known, nothing removed
			parts:        []string{"Frontier", "AMD Optimized 3rd Gen EPYC 64C 2GHz"},
			known:        KnownParts{},
			expectedName: "Frontier",
			expectedGpu:  "AMD Optimized 3rd Gen EPYC 64C 2GHz",
		},
		{
			// a component matching both known fields is removed once,
			// not twice
			parts: []string{"BlueGene/Q", "Custom"},
			known: KnownParts{
				Processor:    "Custom",
				Interconnect: "Custom",
			},
			expectedName: "BlueGene/Q",
			expectedGpu:  "",
		},
		{
			// every component consumed, the name falls back to a
			// placeholder instead of failing the row
			parts: []string{"Custom"},
			known: KnownParts{
				Processor:    "Power BQC 16C 1.6GHz",
				Interconnect: "Custom Interconnect",
			},
			expectedName: "Unknown",
			expectedGpu:  "",
		},
		{
			parts:        nil,
			known:        KnownParts{},
			expectedName: "Unknown",
			expectedGpu:  "",
		},
	}

	for _, test := range testCases {
		name, gpu := Reconcile(test.parts, test.known)
		require.Equal(t, test.expectedName, name, "parts: %v", test.parts)
		require.Equal(t, test.expectedGpu, gpu, "parts: %v", test.parts)
	}
}
