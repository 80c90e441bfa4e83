package terminal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trontec/extras-atlas/pkg/models/domain"
)

func writeDatasetFile(t *testing.T) string {
	t.Helper()
	content := "Data,Colaborador,Condomínio,Setor,Valor (R$),Cobrar do Condomínio\n" +
		"06/01/2025,Ana,Alfa,Portaria,\"R$ 100,00\",Sim\n" +
		"07/01/2025,Bruno,Beta,Limpeza,\"R$ 50,00\",Não\n" +
		"08/01/2025,Ana,Alfa,Portaria,\"R$ 75,00\",Sim\n"

	path := filepath.Join(t.TempDir(), "extras.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cli := NewCLI(Options{Output: &out})
	cli.rootCmd.SetArgs(args)
	cli.rootCmd.SetOut(&out)
	cli.rootCmd.SetErr(&out)
	err := cli.Execute()
	return out.String(), err
}

func TestSummaryCommand(t *testing.T) {
	out, err := runCLI(t, "summary", "--file", writeDatasetFile(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Records:       3")
	assert.Contains(t, out, "Total Value:   R$ 225,00")
	assert.Contains(t, out, "Billable:      R$ 175,00")
	assert.Contains(t, out, "Collaborators: 2")
	assert.Contains(t, out, "Avg Ticket:    R$ 75,00")
}

func TestTopCommand(t *testing.T) {
	t.Run("default role", func(t *testing.T) {
		out, err := runCLI(t, "top", "--file", writeDatasetFile(t))
		require.NoError(t, err)
		assert.Contains(t, out, "Top 10 by site")
		assert.Contains(t, out, "Alfa")
		assert.Contains(t, out, "R$ 175,00")
	})

	t.Run("collaborator role with fold", func(t *testing.T) {
		out, err := runCLI(t, "top", "--file", writeDatasetFile(t), "--role", "collaborator", "--n", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "Ana")
		assert.Contains(t, out, "Outros")
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := runCLI(t, "top", "--file", writeDatasetFile(t), "--role", "bogus")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown role")
	})
}

func TestParetoCommand(t *testing.T) {
	out, err := runCLI(t, "pareto", "--file", writeDatasetFile(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Pareto (80/20)")
	assert.Contains(t, out, "100.0%")
	assert.Contains(t, out, "Alfa")
}

func TestMissingFileFlag(t *testing.T) {
	_, err := runCLI(t, "summary")
	assert.Error(t, err)
}

func TestLoadDatasetResolvesColumns(t *testing.T) {
	cli := NewCLI(Options{Output: &bytes.Buffer{}})
	cli.file = writeDatasetFile(t)

	ds, err := cli.loadDataset()
	require.NoError(t, err)

	assert.Equal(t, 3, ds.Len())
	assert.True(t, ds.Mapping.IsSet(domain.RoleDate))
	assert.True(t, ds.Mapping.IsSet(domain.RoleValue))
	assert.Equal(t, 100.0, ds.Records[0].Value)
	require.NotNil(t, ds.Records[0].Date)
}

func TestReporterCategoryTable(t *testing.T) {
	var out bytes.Buffer
	reporter := NewReporter(&out)

	err := reporter.HandleCategoryTable("Top 2 by site", []domain.CategoryTotal{
		{Category: "Alfa", Total: 175},
		{Category: "Beta", Total: 50},
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Top 2 by site")
	assert.Contains(t, out.String(), "| Category")
	assert.Contains(t, out.String(), "R$ 175,00")
}
