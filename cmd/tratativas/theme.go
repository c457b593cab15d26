package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DevIBlogistica/frontend-tratativas/theme"
)

func newThemeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the color theme",
	}
	cmd.AddCommand(newThemeShowCmd(a))
	cmd.AddCommand(newThemeToggleCmd(a))
	cmd.AddCommand(newThemeSetCmd(a))
	return cmd
}

func newThemeShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current theme and the system preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pref, err := a.preference(true)
			if err != nil {
				return err
			}
			defer pref.Close()

			pal := theme.PaletteFor(pref.Theme())
			system := theme.Light
			if pref.SystemDark() {
				system = theme.Dark
			}
			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), map[string]string{
					"theme":  string(pref.Theme()),
					"system": string(system),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", pal.Muted.Render("Tema:"), pal.Title.Render(string(pref.Theme())))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", pal.Muted.Render("Preferência do sistema:"), string(system))
			return nil
		},
	}
}

func newThemeToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pref, err := a.preference(false)
			if err != nil {
				return err
			}
			defer pref.Close()

			next, err := pref.Toggle()
			if err != nil {
				return err
			}
			return a.reportTheme(cmd, next)
		},
	}
}

func newThemeSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Choose the theme explicitly",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := theme.Parse(args[0])
			if err != nil {
				return err
			}
			pref, err := a.preference(false)
			if err != nil {
				return err
			}
			defer pref.Close()

			if err := pref.Set(t); err != nil {
				return err
			}
			return a.reportTheme(cmd, t)
		},
	}
}

func (a *app) reportTheme(cmd *cobra.Command, t theme.Theme) error {
	defer follow(a.center, cmd.ErrOrStderr(), theme.PaletteFor(t))()
	a.center.Info(fmt.Sprintf("Tema alterado para %s", t))
	if a.asJSON {
		return printJSON(cmd.OutOrStdout(), map[string]string{"theme": string(t)})
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(t))
	return nil
}
