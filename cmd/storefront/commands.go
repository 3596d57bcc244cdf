package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/bookstore/storefront/internal/app"
	"github.com/bookstore/storefront/internal/cart"
	"github.com/bookstore/storefront/internal/i18n"
	"github.com/bookstore/storefront/internal/profile"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the books on sale",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tCATEGORY\tPRICE")
		for _, item := range e.catalog.Items() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", item.ID, item.Title, item.Author, item.Category, i18n.Money(item.Price))
		}
		return w.Flush()
	},
}

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show the saved cart and its total",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		c := cart.NewStore(e.store, e.catalog, e.log)
		if err := c.Load(cmd.Context()); err != nil {
			return err
		}

		view := app.BuildCartView(e.catalog, c.Lines())
		out := cmd.OutOrStdout()
		if view.Empty {
			fmt.Fprintln(out, "cart is empty")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tID\tTITLE\tQTY\tPRICE\tTOTAL")
		for _, l := range view.Lines {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n", l.Index, l.ID, l.Title, l.Quantity, i18n.Money(l.UnitPrice), i18n.Money(l.LineTotal))
		}
		fmt.Fprintf(w, "\t\t\t%d\t\t%s\n", view.Count, i18n.Money(view.Total))
		return w.Flush()
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out the saved user",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		user, loggedIn, err := profile.Load(cmd.Context(), e.store)
		if err != nil {
			return err
		}
		if err := profile.Clear(cmd.Context(), e.store); err != nil {
			return err
		}
		if loggedIn {
			fmt.Fprintf(cmd.OutOrStdout(), "logged out %s\n", user.Name)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd, cartCmd, logoutCmd)
}
