package cli

import (
	"fmt"

	"github.com/alexanderramin/castqc/internal/cli/formatter"
	"github.com/alexanderramin/castqc/internal/domain"
	"github.com/spf13/cobra"
)

func newListsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists [list]",
		Short: "Show pick lists (casting_names, executors, controllers)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printWarnings(cmd, app)
			if len(args) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPickLists(app.PickLists.Lists()))
				return nil
			}
			name, err := domain.ParseListName(args[0])
			if err != nil {
				return err
			}
			l, err := app.PickLists.List(name)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPickList(name, l))
			return nil
		},
	}

	cmd.AddCommand(newListsAddCmd(app), newListsRemoveCmd(app))
	return cmd
}

func newListsAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <list> <value>",
		Short: "Add a value to a pick list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			printWarnings(cmd, app)
			name, err := domain.ParseListName(args[0])
			if err != nil {
				return err
			}
			if err := validateListValue(args[1]); err != nil {
				return err
			}
			added, err := app.PickLists.Add(cmd.Context(), name, args[1])
			if err != nil {
				return err
			}
			value := domain.NormalizeValue(args[1])
			if !added {
				fmt.Fprintf(cmd.OutOrStdout(), "«%s» уже есть в списке %s\n", value, name)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Добавлено в %s: %s\n",
				formatter.StyleGreen.Render("✔"), name, formatter.Bold(value))
			return nil
		},
	}
}

func newListsRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <list> <value>",
		Short: "Remove a value from a pick list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			printWarnings(cmd, app)
			name, err := domain.ParseListName(args[0])
			if err != nil {
				return err
			}
			removed, err := app.PickLists.Remove(cmd.Context(), name, args[1])
			if err != nil {
				return err
			}
			value := domain.NormalizeValue(args[1])
			if !removed {
				return fmt.Errorf("«%s» нет в списке %s", value, name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Удалено из %s: %s\n",
				formatter.StyleGreen.Render("✔"), name, formatter.Bold(value))
			return nil
		},
	}
}

func printWarnings(cmd *cobra.Command, app *App) {
	for _, w := range app.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), formatter.StyleYellow.Render("warning: ")+w)
	}
}
