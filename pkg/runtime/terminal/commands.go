package terminal

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/trontec/extras-atlas/pkg/models/domain"
	"github.com/trontec/extras-atlas/pkg/services/aggregate"
	"github.com/trontec/extras-atlas/pkg/services/filter"
)

func (cli *CLI) newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the KPI block for the whole dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := cli.loadDataset()
			if err != nil {
				return err
			}
			return cli.reporter.HandleSummary(aggregate.Summary(ds))
		},
	}
}

var cliRoles = map[string]domain.Role{
	"site":         domain.RoleSite,
	"collaborator": domain.RoleCollaborator,
	"sector":       domain.RoleSector,
	"reason":       domain.RoleReason,
}

func (cli *CLI) newTopCmd() *cobra.Command {
	var (
		roleName string
		n        int
	)
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Rank categories by total cost",
		RunE: func(cmd *cobra.Command, _ []string) error {
			role, ok := cliRoles[roleName]
			if !ok {
				return fmt.Errorf("unknown role %q; valid roles: site, collaborator, sector, reason", roleName)
			}

			ds, err := cli.loadDataset()
			if err != nil {
				return err
			}

			grouped := aggregate.SumByCategory(ds, role)
			if grouped == nil {
				return fmt.Errorf("no column resolved for role %q in this file", roleName)
			}

			title := fmt.Sprintf("Top %d by %s", n, roleName)
			return cli.reporter.HandleCategoryTable(title, aggregate.TopNWithOthers(grouped, n, "Outros", false))
		},
	}

	cmd.Flags().StringVar(&roleName, "role", "site", "Category role to rank (site, collaborator, sector, reason)")
	cmd.Flags().IntVar(&n, "n", 10, "Number of categories to keep before folding into Outros")
	return cmd
}

func (cli *CLI) newParetoCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "pareto",
		Short: "80/20 analysis of cost by client site",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := cli.loadDataset()
			if err != nil {
				return err
			}

			chart, analysis := aggregate.Pareto(ds, domain.RoleSite, n, "Demais")
			if analysis.Rows == nil {
				return fmt.Errorf("no site or value column resolved in this file")
			}
			return cli.reporter.HandlePareto(chart, analysis)
		},
	}

	cmd.Flags().IntVar(&n, "n", 15, "Number of categories in the chart bucket")
	return cmd
}

func (cli *CLI) newLastWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lastweek",
		Short: "Report on the previous complete Monday-Sunday week",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := cli.loadDataset()
			if err != nil {
				return err
			}

			wr := filter.LastCompleteWeek(time.Now())
			week := filter.ByWeek(ds, wr)

			report := domain.LastWeekReport{Range: wr}
			if week.Empty() {
				report.Empty = true
			} else {
				report.Summary = aggregate.Summary(week)
				report.RecoveryPercent = aggregate.BillableRecovery(week)
				report.Daily = aggregate.DailyOfWeekTotals(week)
				report.TopSites = aggregate.TopN(aggregate.SumByCategory(week, domain.RoleSite), 5)
			}
			return cli.reporter.HandleLastWeek(report)
		},
	}
}
