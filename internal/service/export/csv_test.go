package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCSV_HeaderAndRows(t *testing.T) {
	t.Parallel()
	out := MarshalCSV(
		[]string{"id", "name"},
		[][]string{
			{"1", "Budi"},
			{"2", "Sari"},
		},
	)

	assert.Equal(t, "\"id\",\"name\"\n\"1\",\"Budi\"\n\"2\",\"Sari\"\n", string(out))
}

func TestMarshalCSV_EscapesQuotes(t *testing.T) {
	t.Parallel()
	out := MarshalCSV([]string{"reason"}, [][]string{{`said "no" twice`}})

	assert.Equal(t, "\"reason\"\n\"said \"\"no\"\" twice\"\n", string(out))
}

func TestMarshalCSV_RoundTrip(t *testing.T) {
	t.Parallel()
	headers := []string{"id", "reason", "comment"}
	rows := [][]string{
		{"1", "family, vacation", "ok"},
		{"2", `quoted "reason"`, ""},
		{"3", "multi\nline", "fine"},
	}

	out := MarshalCSV(headers, rows)

	reader := csv.NewReader(bytes.NewReader(out))
	records, err := reader.ReadAll()
	require.NoError(t, err)

	require.Len(t, records, len(rows)+1)
	assert.Equal(t, headers, records[0])
	for i, row := range rows {
		assert.Equal(t, row, records[i+1])
	}
}

func TestMarshalCSV_NoRows(t *testing.T) {
	t.Parallel()
	out := MarshalCSV([]string{"id", "email"}, nil)

	assert.Equal(t, "\"id\",\"email\"\n", string(out))
}

func TestMarshalCSV_EmptyFields(t *testing.T) {
	t.Parallel()
	out := MarshalCSV([]string{"a", "b"}, [][]string{{"", ""}})

	reader := csv.NewReader(bytes.NewReader(out))
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"", ""}, records[1])
}
