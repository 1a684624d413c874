package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type base struct {
	ID      string    `json:"_id"`
	Created time.Time `json:"createdAt"`
}

type row struct {
	base
	Code   int64  `json:"Code"`
	Name   string `json:"Name"`
	Secret string `json:"-"`
	Note   string `json:"Note,omitempty"`
}

func TestTabulateUsesJSONNames(t *testing.T) {
	created := time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)
	data, err := Tabulate([]*row{
		{base: base{ID: "a", Created: created}, Code: 7, Name: "Algebra, I", Secret: "x"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"_id", "createdAt", "Code", "Name", "Note"}, data.Headers)
	require.Len(t, data.Rows, 1)
	assert.Equal(t, "7", data.Rows[0]["Code"])
	assert.Equal(t, "2024-01-15T08:30:00Z", data.Rows[0]["createdAt"])
	assert.NotContains(t, data.Rows[0], "Secret")
}

func TestTabulateRejectsNonSlices(t *testing.T) {
	_, err := Tabulate(row{})
	assert.Error(t, err)

	_, err = Tabulate([]int{1})
	assert.Error(t, err)
}

func TestCSVExporterQuotesValues(t *testing.T) {
	data, err := Tabulate([]row{{Code: 1, Name: "Algebra, I"}})
	require.NoError(t, err)

	out, err := NewCSVExporter().Render(data, "")
	require.NoError(t, err)
	assert.Equal(t, "_id,createdAt,Code,Name,Note\n,,1,\"Algebra, I\",\n", string(out))
}

func TestPDFExporterRendersDocument(t *testing.T) {
	data, err := Tabulate([]row{{Code: 1, Name: "Algebra"}})
	require.NoError(t, err)

	out, err := NewPDFExporter().Render(data, "courses")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestForFormat(t *testing.T) {
	r, ok := ForFormat("PDF")
	require.True(t, ok)
	assert.Equal(t, "application/pdf", r.ContentType())

	r, ok = ForFormat("")
	require.True(t, ok)
	assert.Equal(t, "csv", r.Extension())

	_, ok = ForFormat("xlsx")
	assert.False(t, ok)
}

func TestRenderRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{}, "")
	assert.Error(t, err)
	_, err = NewPDFExporter().Render(Dataset{}, "")
	assert.Error(t, err)
}
