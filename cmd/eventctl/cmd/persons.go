package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var personsPage int

var personsCmd = &cobra.Command{
	Use:   "persons",
	Short: "Look persons up",
}

var personsSearchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search persons by username",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := ""
		if len(args) == 1 {
			term = args[0]
		}

		svcs, err := openServices()
		if err != nil {
			return err
		}

		persons, total, err := svcs.admin.SearchPersons(cmd.Context(), term, personsPage)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CIN\tUSERNAME\tEMAIL\tSTAFF\tACTIVE")
		for _, p := range persons {
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%t\n", p.CIN, p.Username, p.Email, p.IsStaff, p.IsActive)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d person(s)\n", total)

		return nil
	},
}

func init() {
	personsSearchCmd.Flags().IntVar(&personsPage, "page", 1, "page number")
	personsCmd.AddCommand(personsSearchCmd)
}
