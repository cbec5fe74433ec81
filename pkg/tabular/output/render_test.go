package output

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/mxmh-go/pkg/tabular/models"
)

func sample() (*models.Dataset, []models.Row) {
	ds := &models.Dataset{
		Name: "small.csv",
		Columns: []models.Column{
			{Name: "age", Type: models.TypeInt},
			{Name: "genre", Type: models.TypeString},
			{Name: "hours_per_day", Type: models.TypeFloat},
		},
		Rows: []models.Row{
			{"age": int64(25), "genre": "Rock", "hours_per_day": 3.0},
			{"age": int64(30), "genre": "Jazz", "hours_per_day": nil},
		},
	}
	return ds, ds.Rows
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected string
	}{
		{nil, "NaN"},
		{"Rock", "Rock"},
		{int64(-7), "-7"},
		{1.5, "1.5"},
		{3.0, "3"},
		{999999999.0, "999999999"},
		{math.Inf(1), "+Inf"},
		{true, "true"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatCell(tt.input), "FormatCell(%v)", tt.input)
	}
}

func TestFrame(t *testing.T) {
	ds, rows := sample()

	out, err := Frame(ds, rows)
	require.NoError(t, err)

	assert.Contains(t, out, "[2x3] DataFrame")
	for _, want := range []string{"age", "genre", "hours_per_day", "Rock", "Jazz", "NaN"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Rock"), strings.Index(out, "Jazz"))
	assert.Contains(t, out, "<int>")
	assert.Contains(t, out, "<float>")
}

func TestFrameShowsEveryColumn(t *testing.T) {
	ds := &models.Dataset{}
	row := models.Row{}
	for i := 0; i < 33; i++ {
		name := fmt.Sprintf("Frequency [Genre number %d]", i)
		ds.Columns = append(ds.Columns, models.Column{Name: name, Type: models.TypeString})
		row[name] = fmt.Sprintf("Very frequently %d", i)
	}

	out, err := Frame(ds, []models.Row{row})
	require.NoError(t, err)

	assert.Contains(t, out, "[1x33] DataFrame")
	assert.NotContains(t, out, "Not Showing")
	for _, c := range ds.Columns {
		assert.Contains(t, out, c.Name)
		assert.Contains(t, out, row[c.Name].(string))
	}
}

func TestFrameEmpty(t *testing.T) {
	ds, _ := sample()

	out, err := Frame(ds, nil)
	require.NoError(t, err)
	assert.Equal(t, "Empty DataFrame\nColumns: [age, genre, hours_per_day]", out)
}

func TestStyled(t *testing.T) {
	ds, rows := sample()

	out := Styled(ds, rows)

	for _, want := range []string{"age", "genre", "hours_per_day", "Rock", "Jazz", "NaN", "25", "3"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Rock"), strings.Index(out, "Jazz"))
}

func TestRender(t *testing.T) {
	ds, rows := sample()

	var plain, styled bytes.Buffer
	require.NoError(t, Render(&plain, ds, rows, false))
	require.NoError(t, Render(&styled, ds, rows, true))

	assert.Contains(t, plain.String(), "DataFrame")
	assert.NotContains(t, styled.String(), "DataFrame")
	assert.Contains(t, styled.String(), "Jazz")
	assert.True(t, strings.HasSuffix(plain.String(), "\n"))
}
