package scan_test

import (
	"strings"
	"testing"

	"filescan/internal/scan"

	"github.com/stretchr/testify/require"
)

func TestFingerprint_Deterministic(t *testing.T) {
	inputs := [][]byte{
		nil,
		{},
		[]byte("hello"),
		[]byte(strings.Repeat("x", 1<<16)),
		{0x00, 0xff, 0x10},
	}

	for _, in := range inputs {
		first := scan.Fingerprint(in)
		require.Len(t, first, 64)
		require.Equal(t, first, scan.Fingerprint(in), "fingerprint must be stable across calls")
	}
}

func TestFingerprint_KnownVectors(t *testing.T) {
	// SHA-256 test vectors
	require.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		scan.Fingerprint(nil))
	require.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		scan.Fingerprint([]byte("abc")))
}

func TestFingerprint_DistinctInputsDistinctOutputs(t *testing.T) {
	require.NotEqual(t, scan.Fingerprint([]byte("a")), scan.Fingerprint([]byte("b")))
}

func TestIsFingerprint(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "real fingerprint", in: scan.Fingerprint([]byte("x")), want: true},
		{name: "uppercase hex", in: strings.ToUpper(scan.Fingerprint([]byte("x"))), want: true},
		{name: "server analysis id", in: "MjJhNDJhYmEtYzQ1Mi00OTk1LTg1NDE6MTc1NjE2", want: false},
		{name: "too short", in: strings.Repeat("a", 63), want: false},
		{name: "too long", in: strings.Repeat("a", 65), want: false},
		{name: "non hex char", in: strings.Repeat("a", 63) + "g", want: false},
		{name: "empty", in: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, scan.IsFingerprint(tt.in))
		})
	}
}
