// Package cli wires the promptgen cobra commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yinchengxin/claudekit/internal/config"
	"github.com/yinchengxin/claudekit/internal/promptgen/catalog"
)

var templatesFile string

// NewRoot builds the promptgen command tree. Running with no subcommand
// opens the interactive menu loop.
func NewRoot(version string) *cobra.Command {
	root := &cobra.Command{
		Use:     "promptgen",
		Short:   "Prompt template toolkit for AI coding assistants",
		Version: version,
		Long: `promptgen manages a catalog of prompt templates: 21 built-ins for
common engineering tasks plus your own custom templates.

Fill a template's variables interactively, build a prompt from scratch,
or export the whole catalog to markdown.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runMenu,
	}
	root.PersistentFlags().StringVar(&templatesFile, "templates-file", "", "Custom template store path (default ~/.promptgen/custom_templates.json)")

	root.AddCommand(listCmd, searchCmd, useCmd, buildCmd, exportCmd, deleteCmd)
	return root
}

// openStore applies the precedence flag > config file > default path.
func openStore(cmd *cobra.Command) *catalog.Store {
	path := ""
	if cmd.Flags().Changed("templates-file") {
		path = templatesFile
	} else if cfg, err := config.Load(config.Path()); err == nil && cfg.TemplatesFile != "" {
		path = cfg.TemplatesFile
	}
	return catalog.NewStore(path)
}

func openCatalog(cmd *cobra.Command) (*catalog.Catalog, *catalog.Store) {
	store := openStore(cmd)
	return catalog.Merge(store), store
}
