package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in    string
		want  int64
		valid bool
	}{
		{in: "#6cc644", want: 0x6cc644, valid: true},
		{in: "6CC644", want: 0x6cc644, valid: true},
		{in: " #112233 ", want: 0x112233, valid: true},
		{in: "0xff", want: 0xff, valid: true},
		{in: "12zz", want: 0x12, valid: true},
		{in: "-ff", want: -0xff, valid: true},
		{in: "#zzzzzz"},
		{in: "#"},
		{in: "##112233"},
		{in: "ffffffffffffffffffff"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseHexColor(tt.in).Value()
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestColorJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		C Color `json:"c"`
	}{RGB(0x112233)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"c":1122867}`, string(data))

	data, err = json.Marshal(struct {
		C Color `json:"c"`
	}{ParseHexColor("nope")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"c":null}`, string(data))

	var out struct {
		A Color `json:"a"`
		B Color `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":1122867,"b":null}`), &out))
	assert.Equal(t, RGB(0x112233), out.A)
	assert.False(t, out.B.Valid())
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#6cc644", ColorOpen.Hex())
	assert.Equal(t, "#000012", RGB(0x12).Hex())
	assert.Empty(t, Color{}.Hex())
}

func TestPRActionIsOpen(t *testing.T) {
	assert.True(t, ActionOpened.IsOpen())
	assert.True(t, ActionReopened.IsOpen())
	assert.False(t, ActionClosed.IsOpen())
	assert.False(t, PRAction("labeled").IsOpen())
}
