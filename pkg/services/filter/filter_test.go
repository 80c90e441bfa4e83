package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trontec/extras-atlas/pkg/models/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixtureDataset() domain.Dataset {
	dates := []time.Time{
		day(2025, 1, 6), day(2025, 1, 8), day(2025, 1, 12), day(2025, 1, 15),
	}
	records := []domain.Record{
		{Cells: map[string]string{"Setor": "Portaria", "Condomínio": "Alfa"}, Date: &dates[0], Value: 100},
		{Cells: map[string]string{"Setor": "Limpeza", "Condomínio": "Beta"}, Date: &dates[1], Value: 50},
		{Cells: map[string]string{"Setor": "Portaria", "Condomínio": "Alfa"}, Date: &dates[2], Value: 75},
		{Cells: map[string]string{"Setor": "Manutenção", "Condomínio": "Gama"}, Date: &dates[3], Value: 25},
		{Cells: map[string]string{"Setor": "Portaria", "Condomínio": "Beta"}, Value: 10}, // no date
	}
	return domain.Dataset{
		Columns: []string{"Data", "Setor", "Condomínio"},
		Mapping: domain.ColumnMapping{
			domain.RoleDate:   "Data",
			domain.RoleSector: "Setor",
			domain.RoleSite:   "Condomínio",
		},
		Records: records,
	}
}

func TestCategorical(t *testing.T) {
	ds := fixtureDataset()

	t.Run("keeps members of the selection", func(t *testing.T) {
		out := Categorical(ds, "Setor", []string{"Portaria"})
		require.Equal(t, 3, out.Len())
		for _, rec := range out.Records {
			assert.Equal(t, "Portaria", rec.Cells["Setor"])
		}
	})

	t.Run("empty selection is identity", func(t *testing.T) {
		out := Categorical(ds, "Setor", nil)
		assert.Equal(t, ds.Len(), out.Len())
	})

	t.Run("unset column is identity", func(t *testing.T) {
		out := Categorical(ds, "", []string{"Portaria"})
		assert.Equal(t, ds.Len(), out.Len())
	})

	t.Run("input is not mutated", func(t *testing.T) {
		before := ds.Len()
		Categorical(ds, "Setor", []string{"Limpeza"})
		assert.Equal(t, before, ds.Len())
	})
}

func TestByRole(t *testing.T) {
	ds := fixtureDataset()

	out := ByRole(ds, domain.RoleSite, []string{"Alfa", "Gama"})
	assert.Equal(t, 3, out.Len())

	t.Run("unmapped role is identity", func(t *testing.T) {
		out := ByRole(ds, domain.RoleReason, []string{"anything"})
		assert.Equal(t, ds.Len(), out.Len())
	})
}

func TestDateRange(t *testing.T) {
	ds := fixtureDataset()
	start := day(2025, 1, 8)
	end := day(2025, 1, 12)

	t.Run("inclusive on both ends", func(t *testing.T) {
		out := DateRange(ds, &start, &end)
		require.Equal(t, 2, out.Len())
		assert.Equal(t, 50.0, out.Records[0].Value)
		assert.Equal(t, 75.0, out.Records[1].Value)
	})

	t.Run("nil bound is identity", func(t *testing.T) {
		assert.Equal(t, ds.Len(), DateRange(ds, nil, &end).Len())
		assert.Equal(t, ds.Len(), DateRange(ds, &start, nil).Len())
	})

	t.Run("dateless records dropped once a range applies", func(t *testing.T) {
		wide := day(2020, 1, 1)
		wideEnd := day(2030, 1, 1)
		out := DateRange(ds, &wide, &wideEnd)
		assert.Equal(t, 4, out.Len())
	})

	t.Run("unset date role is identity", func(t *testing.T) {
		noDate := ds
		noDate.Mapping = domain.ColumnMapping{domain.RoleSector: "Setor"}
		out := DateRange(noDate, &start, &end)
		assert.Equal(t, ds.Len(), out.Len())
	})
}

func TestLastCompleteWeek(t *testing.T) {
	cases := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			// 2025-01-15 is a Wednesday; the last complete week is Jan 6-12.
			name:      "midweek",
			now:       time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC),
			wantStart: day(2025, 1, 6),
			wantEnd:   day(2025, 1, 12),
		},
		{
			// On a Monday the week that just ended counts as complete.
			name:      "monday",
			now:       day(2025, 1, 13),
			wantStart: day(2025, 1, 6),
			wantEnd:   day(2025, 1, 12),
		},
		{
			// A Sunday still belongs to the running week.
			name:      "sunday",
			now:       time.Date(2025, 1, 12, 23, 59, 0, 0, time.UTC),
			wantStart: day(2024, 12, 30),
			wantEnd:   day(2025, 1, 5),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wr := LastCompleteWeek(tc.now)
			assert.Equal(t, tc.wantStart, wr.Start)
			assert.Equal(t, tc.wantEnd, wr.End)
			assert.Equal(t, time.Monday, wr.Start.Weekday())
			assert.Equal(t, time.Sunday, wr.End.Weekday())
			assert.Equal(t, tc.wantEnd.Add(24*time.Hour-time.Microsecond), wr.EndInclusive)
		})
	}
}

func TestByWeek(t *testing.T) {
	ds := fixtureDataset()
	wr := LastCompleteWeek(day(2025, 1, 15))

	out := ByWeek(ds, wr)
	require.Equal(t, 3, out.Len())
	for _, rec := range out.Records {
		require.NotNil(t, rec.Date)
		assert.False(t, rec.Date.Before(wr.Start))
		assert.False(t, rec.Date.After(wr.EndInclusive))
	}
}

func TestValues(t *testing.T) {
	ds := fixtureDataset()

	assert.Equal(t, []string{"Limpeza", "Manutenção", "Portaria"}, Values(ds, "Setor"))
	assert.Nil(t, Values(ds, ""))
}
