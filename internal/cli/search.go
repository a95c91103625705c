package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"docindex/internal/indexstore"
	"docindex/internal/search"
	"docindex/internal/tui"
)

func NewSearchCmd() *cobra.Command {
	var indexPath string
	cmd := &cobra.Command{
		Use:   "search -i <file>",
		Short: "Interactively query an index",
		RunE: func(cmd *cobra.Command, args []string) error {
			if indexPath == "" {
				indexPath = cfg.Query.IndexPath
			}
			idx, err := indexstore.Load(indexPath)
			if err != nil {
				return err
			}
			engine := search.NewEngine(idx)
			status := fmt.Sprintf("%d documents, %d terms", len(idx.Docs), len(idx.Terms))
			m := tui.New(engine, status)
			_, err = tea.NewProgram(m).Run()
			return err
		},
	}
	cmd.Flags().StringVarP(&indexPath, "index", "i", "", "index file (default from config or DOCINDEX_INDEX)")
	return cmd
}
