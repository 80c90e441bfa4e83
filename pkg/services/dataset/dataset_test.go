package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trontec/extras-atlas/pkg/models/domain"
	"github.com/trontec/extras-atlas/pkg/models/store"
	"github.com/trontec/extras-atlas/pkg/services/normalize"
)

func fixtureTable() store.Table {
	return store.Table{
		Columns: []string{"Data", "Colaborador", "Valor (R$)", "Cobrar do Condomínio", "Condução Própria"},
		Rows: [][]string{
			{"05/01/2025", "Ana", "R$ 150,00", "Sim", "não"},
			{"06/01/2025", "Bruno", "R$ 99,90", "NÃO", "s"},
			{"bogus", "Carla", "abc", "", "true"},
		},
	}
}

func fixtureMapping() domain.ColumnMapping {
	return domain.ColumnMapping{
		domain.RoleDate:         "Data",
		domain.RoleCollaborator: "Colaborador",
		domain.RoleValue:        "Valor (R$)",
		domain.RoleBillable:     "Cobrar do Condomínio",
		domain.RoleOwnTransport: "Condução Própria",
	}
}

func TestBuild(t *testing.T) {
	ds := Build(fixtureTable(), fixtureMapping())
	require.Equal(t, 3, ds.Len())

	t.Run("dates parsed day first", func(t *testing.T) {
		require.NotNil(t, ds.Records[0].Date)
		assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), *ds.Records[0].Date)
		assert.Nil(t, ds.Records[2].Date, "unparseable date stays nil")
	})

	t.Run("values coerced", func(t *testing.T) {
		assert.Equal(t, 150.0, ds.Records[0].Value)
		assert.Equal(t, 99.9, ds.Records[1].Value)
		assert.Equal(t, 0.0, ds.Records[2].Value, "unparseable value coerced to zero")
	})

	t.Run("boolean columns rewritten to canonical labels", func(t *testing.T) {
		assert.Equal(t, normalize.Yes, ds.Records[0].Cells["Cobrar do Condomínio"])
		assert.Equal(t, normalize.No, ds.Records[1].Cells["Cobrar do Condomínio"])
		assert.Equal(t, normalize.No, ds.Records[2].Cells["Cobrar do Condomínio"])
		assert.Equal(t, normalize.Yes, ds.Records[1].Cells["Condução Própria"])
		assert.Equal(t, normalize.Yes, ds.Records[2].Cells["Condução Própria"])
	})

	t.Run("unmapped cells kept raw", func(t *testing.T) {
		assert.Equal(t, "Ana", ds.Records[0].Cells["Colaborador"])
	})
}

func TestBuild_PartialMapping(t *testing.T) {
	table := fixtureTable()
	mapping := domain.ColumnMapping{domain.RoleCollaborator: "Colaborador"}

	ds := Build(table, mapping)
	require.Equal(t, 3, ds.Len())
	assert.Nil(t, ds.Records[0].Date)
	assert.Equal(t, 0.0, ds.Records[0].Value)
	assert.Equal(t, "Sim", ds.Records[0].Cells["Cobrar do Condomínio"], "unmapped boolean column untouched")
}

func TestBuild_RaggedRows(t *testing.T) {
	table := store.Table{
		Columns: []string{"Data", "Valor (R$)"},
		Rows:    [][]string{{"05/01/2025"}},
	}
	ds := Build(table, fixtureMapping())
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "", ds.Records[0].Cells["Valor (R$)"])
	assert.Equal(t, 0.0, ds.Records[0].Value)
}
