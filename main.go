package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/akshitb/jotter/config"
	"github.com/akshitb/jotter/model"
	"github.com/akshitb/jotter/storage"
)

const version = "0.1.0"

func openStore() (*storage.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return storage.NewStore(cfg.StorePath), nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:     "jotter",
		Short:   "Notes in your terminal",
		Long:    "jotter keeps a flat list of notes in a single JSON file and edits them in a sidebar-plus-detail terminal UI.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			p := tea.NewProgram(model.InitialModel(store), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [dir]",
		Short: "Write all notes as markdown files with YAML frontmatter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			notes, err := store.Load()
			if err != nil {
				return err
			}
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}
			dir, count, err := model.ExportAll(notes, dir)
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d notes to %s/\n", count, dir)
			return nil
		},
	}
	rootCmd.AddCommand(exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
