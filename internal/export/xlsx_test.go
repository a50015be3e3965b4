package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteXLSX(sampleLeads(t), path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 1)

	sheet := f.Sheets[0]
	assert.Equal(t, "Leads", sheet.Name)
	require.Len(t, sheet.Rows, 3)

	for i, col := range leadColumns {
		assert.Equal(t, col, sheet.Rows[0].Cells[i].String())
	}
	assert.Equal(t, "Joe's Diner", sheet.Rows[1].Cells[0].String())
	assert.Equal(t, "p2", sheet.Rows[2].Cells[9].String())
}
