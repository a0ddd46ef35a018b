package model

// bitbool_test.go
// BitBool must accept every wire shape the legacy clients still send:
// driver byte buffers, numbers, strings, booleans, and the serialized
// Node Buffer object. All of them funnel through the same conversion.

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitBoolScan(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want bool
	}{
		{"byte buffer set", []byte{1}, true},
		{"byte buffer clear", []byte{0}, false},
		{"empty buffer", []byte{}, false},
		{"multi-byte buffer keeps last", []byte{0, 1}, true},
		{"int64 one", int64(1), true},
		{"int64 zero", int64(0), false},
		{"nil", nil, false},
		{"bool", true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b BitBool
			require.NoError(t, b.Scan(tc.raw))
			assert.Equal(t, tc.want, b.Bool())
		})
	}
}

func TestBitBoolScanRejectsUnknownType(t *testing.T) {
	var b BitBool
	assert.Error(t, b.Scan(struct{}{}))
}

func TestBitBoolUnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"native true", `true`, true},
		{"native false", `false`, false},
		{"number one", `1`, true},
		{"number zero", `0`, false},
		{"string one", `"1"`, true},
		{"string zero", `"0"`, false},
		{"string true", `"true"`, true},
		{"node buffer set", `{"type":"Buffer","data":[1]}`, true},
		{"node buffer clear", `{"type":"Buffer","data":[0]}`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b BitBool
			require.NoError(t, json.Unmarshal([]byte(tc.in), &b))
			assert.Equal(t, tc.want, b.Bool())
		})
	}
}

func TestBitBoolUnmarshalJSONRejectsGarbage(t *testing.T) {
	var b BitBool
	assert.Error(t, json.Unmarshal([]byte(`"quizas"`), &b))
}

func TestBitBoolMarshalJSONAlwaysBool(t *testing.T) {
	// Whatever shape came in, plain booleans go out.
	var b BitBool
	require.NoError(t, json.Unmarshal([]byte(`{"type":"Buffer","data":[1]}`), &b))
	out, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, `true`, string(out))
}

func TestBitBoolValue(t *testing.T) {
	v, err := BitBool(true).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, v)

	v, err = BitBool(false).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, v)
}

func TestBitBoolRoundTripThroughStruct(t *testing.T) {
	// A request struct with the legacy Buffer shape decodes into the flag.
	type req struct {
		AplicaSaldo BitBool `json:"aplica_saldo"`
	}
	var r req
	require.NoError(t, json.Unmarshal([]byte(`{"aplica_saldo":{"type":"Buffer","data":[1]}}`), &r))
	assert.True(t, r.AplicaSaldo.Bool())
}
