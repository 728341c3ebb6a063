package duedate

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRejectsTimestamps(t *testing.T) {
	_, err := Parse("2024-06-10T15:04:05Z")
	assert.Error(t, err)
}

func TestJSONWireFormat(t *testing.T) {
	d := New(2024, time.June, 9)

	encoded, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-09"`, string(encoded))

	var decoded Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-09"`), &decoded))
	assert.True(t, d.Equal(decoded))
}

func TestScanAcceptsDriverShapes(t *testing.T) {
	want := New(2024, time.June, 9)

	var fromTime Date
	require.NoError(t, fromTime.Scan(time.Date(2024, time.June, 9, 17, 30, 0, 0, time.Local)))
	assert.True(t, want.Equal(fromTime))

	// sqlite hands back text, sometimes with a time suffix
	var fromText Date
	require.NoError(t, fromText.Scan("2024-06-09 00:00:00+00:00"))
	assert.True(t, want.Equal(fromText))

	var fromBytes Date
	require.NoError(t, fromBytes.Scan([]byte("2024-06-09")))
	assert.True(t, want.Equal(fromBytes))
}
