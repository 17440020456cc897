package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/pool-cli/internal/application"
	"github.com/bnema/pool-cli/internal/domain"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func writeResult(cmd *cobra.Command, app *app, kind domain.KindConfig, result application.Result, asJSON bool) error {
	out := cmd.OutOrStdout()

	switch result.Action {
	case application.ActionLike, application.ActionBan, application.ActionFree:
		warning := app.warningColor()
		for _, item := range result.Mutation.Missing {
			_, _ = warning.Fprintf(cmd.ErrOrStderr(), "* item name '%s' not exists *", item)
			_, _ = fmt.Fprintln(cmd.ErrOrStderr())
		}
		return nil
	case application.ActionPick, application.ActionCurrent:
		if result.Item == "" {
			return nil
		}
		_, err := fmt.Fprintln(out, result.Item)
		return err
	case application.ActionList, application.ActionWhiteList, application.ActionFreeList, application.ActionBlackList:
		return writeItems(cmd, result.Items, asJSON)
	case application.ActionInfo:
		return writeInfo(cmd, app, *result.Info, asJSON)
	case application.ActionSetRights:
		_, err := fmt.Fprintf(out, "white item weight: %d  free item weight: %d  black item weight: %d\n",
			result.Rights.White, result.Rights.Free, result.Rights.Black())
		return err
	case application.ActionReset:
		if result.BackupPath == "" {
			_, err := fmt.Fprintf(out, "No %s pool record to reset\n", kind.Kind)
			return err
		}
		_, err := fmt.Fprintf(out, "Reset %s pool (previous record: %s)\n", kind.Kind, result.BackupPath)
		return err
	default:
		return fmt.Errorf("unhandled action %q", result.Action)
	}
}

func writeItems(cmd *cobra.Command, items []domain.Item, asJSON bool) error {
	if asJSON {
		if items == nil {
			items = []domain.Item{}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	for _, item := range items {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), item); err != nil {
			return err
		}
	}
	return nil
}

func writeInfo(cmd *cobra.Command, app *app, info application.Info, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	rendered, err := app.infoRenderer(info, app.renderOptions())
	if err != nil {
		return fmt.Errorf("render pool info: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func (a *app) warningColor() *color.Color {
	warning := color.New(color.FgYellow)
	if a.env.NoColor != "" {
		warning.DisableColor()
	}
	return warning
}
