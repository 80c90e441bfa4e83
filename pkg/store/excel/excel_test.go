package excel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Extras"))
	rows := [][]any{
		{"Data", "Colaborador", "Valor (R$)"},
		{"06/01/2025", "Ana", "R$ 100,00"},
		{"07/01/2025", "Bruno", "R$ 50,00"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Extras", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "extras.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoad(t *testing.T) {
	path := writeWorkbook(t)

	t.Run("first sheet by default", func(t *testing.T) {
		table, err := Load(path, "")
		require.NoError(t, err)

		assert.Equal(t, []string{"Data", "Colaborador", "Valor (R$)"}, table.Columns)
		require.Len(t, table.Rows, 2)
		assert.Equal(t, "Ana", table.Cell(0, 1))
	})

	t.Run("named sheet", func(t *testing.T) {
		table, err := Load(path, "Extras")
		require.NoError(t, err)
		assert.Len(t, table.Rows, 2)
	})

	t.Run("unknown sheet", func(t *testing.T) {
		_, err := Load(path, "Planilha2")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"), "")
		assert.Error(t, err)
	})
}
