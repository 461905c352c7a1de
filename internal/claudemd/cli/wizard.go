package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/yinchengxin/claudekit/internal/claudemd/doc"
	"github.com/yinchengxin/claudekit/internal/claudemd/wizard"
	"github.com/yinchengxin/claudekit/internal/ui"
)

var wizardCmd = &cobra.Command{
	Use:     "wizard",
	Aliases: []string{"w"},
	Short:   "Guided interview that builds a CLAUDE.md step by step",
	Args:    cobra.NoArgs,
	RunE:    runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	a := ui.NewAsker()

	loc, decided := resolveLocale(cmd)
	if !decided {
		var err error
		if loc, err = askLocale(a); err != nil {
			return cancelOK(err, loc)
		}
	}

	ui.Banner(
		loc.Pick("CLAUDE.md 配置向导", "CLAUDE.md Configuration Wizard"),
		loc.Pick("回答问题，生成适合你项目的 CLAUDE.md", "Answer the questions to generate a CLAUDE.md for your project"),
	)

	c, err := wizard.Run(a, loc)
	if err != nil {
		return cancelOK(err, loc)
	}

	return previewAndSave(a, doc.Assemble(&c, loc), loc)
}

// cancelOK turns a user interrupt into a clean exit. Other errors pass
// through to cobra.
func cancelOK(err error, loc doc.Locale) error {
	if errors.Is(err, ui.ErrInterrupted) {
		ui.Warnf("%s", loc.Pick("已取消，未生成文件。", "Cancelled. Nothing was written."))
		return nil
	}
	return err
}
