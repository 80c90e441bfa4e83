// Package terminal is the command-line runtime: it loads a local dataset
// file, runs the requested aggregation, and renders the result as text.
package terminal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trontec/extras-atlas/pkg/models/domain"
	"github.com/trontec/extras-atlas/pkg/models/store"
	"github.com/trontec/extras-atlas/pkg/services/dataset"
	"github.com/trontec/extras-atlas/pkg/services/normalize"
	"github.com/trontec/extras-atlas/pkg/store/csvfile"
	"github.com/trontec/extras-atlas/pkg/store/excel"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *Reporter
	rootCmd  *cobra.Command

	file  string
	sheet string
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{reporter: NewReporter(opts.Output)}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extras",
		Short: "Extra-work cost analysis over a local dataset file",
	}

	cmd.PersistentFlags().StringVarP(&cli.file, "file", "f", "", "Path to a .csv or .xlsx dataset")
	cmd.PersistentFlags().StringVar(&cli.sheet, "sheet", "", "Worksheet name for .xlsx files (default: first sheet)")
	_ = cmd.MarkPersistentFlagRequired("file")

	cmd.AddCommand(cli.newSummaryCmd())
	cmd.AddCommand(cli.newTopCmd())
	cmd.AddCommand(cli.newParetoCmd())
	cmd.AddCommand(cli.newLastWeekCmd())

	return cmd
}

// loadDataset reads the file (csv or xlsx by extension) and normalizes it
// using the header heuristics.
func (cli *CLI) loadDataset() (domain.Dataset, error) {
	var (
		t   store.Table
		err error
	)
	switch strings.ToLower(filepath.Ext(cli.file)) {
	case ".xlsx", ".xlsm":
		t, err = excel.Load(cli.file, cli.sheet)
	default:
		t, err = csvfile.Load(cli.file)
	}
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("load dataset: %w", err)
	}

	return dataset.Build(t, normalize.SuggestMapping(t.Columns)), nil
}
