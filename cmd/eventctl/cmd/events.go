package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vietanh2810/events-api/internal/domain"
)

var (
	eventsCategory string
	eventsState    string
	eventsNbr      string
	eventsSearch   string
	eventsPage     int
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List, accept and refuse events",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List events with the admin filters",
	Long: `List events the way the staff console does.

Examples:
  # Second page of sport events nobody joined yet
  eventctl events list --category sport --nbr No --page 2

  # Refused events whose title contains "gala"
  eventctl events list --state false --search gala`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := eventFilterFromFlags()
		if err != nil {
			return err
		}

		svcs, err := openServices()
		if err != nil {
			return err
		}

		page, err := svcs.admin.ListEvents(cmd.Context(), filter, eventsPage)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPARTICIPANTS\tSTATE\tDATE\tORGANISATEUR")
		for _, e := range page.Events {
			organizer := "-"
			if e.OrganisateurCIN != nil {
				organizer = *e.OrganisateurCIN
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%t\t%s\t%s\n",
				e.ID, e.Title, e.Category, e.Participants(), e.State, e.EvtDate.Format("2006-01-02"), organizer)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d event(s), page %d\n", page.Total, max(page.Number, 1))

		return nil
	},
}

var eventsAcceptCmd = &cobra.Command{
	Use:   "accept <id>...",
	Short: "Set state=true on the given events",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEventsState(cmd, args, true)
	},
}

var eventsRefuseCmd = &cobra.Command{
	Use:   "refuse <id>...",
	Short: "Set state=false on the given events",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEventsState(cmd, args, false)
	},
}

func init() {
	eventsListCmd.Flags().StringVar(&eventsCategory, "category", "", "sport, musique or Cinema")
	eventsListCmd.Flags().StringVar(&eventsState, "state", "", "true or false")
	eventsListCmd.Flags().StringVar(&eventsNbr, "nbr", "", "Number of participants: No or Yes")
	eventsListCmd.Flags().StringVar(&eventsSearch, "search", "", "title contains")
	eventsListCmd.Flags().IntVar(&eventsPage, "page", 1, "page number")

	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsAcceptCmd)
	eventsCmd.AddCommand(eventsRefuseCmd)
}

func eventFilterFromFlags() (domain.EventFilter, error) {
	filter := domain.EventFilter{
		Search:       eventsSearch,
		Participants: domain.ParticipantsFilter(eventsNbr),
	}

	if eventsCategory != "" {
		c := domain.Category(eventsCategory)
		filter.Category = &c
	}
	if eventsState != "" {
		state, err := strconv.ParseBool(eventsState)
		if err != nil {
			return filter, fmt.Errorf("--state: %w", err)
		}
		filter.State = &state
	}

	return filter, nil
}

func parseIDs(args []string) ([]uint, error) {
	ids := make([]uint, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseUint(arg, 10, 64)
		if err != nil || id == 0 {
			return nil, fmt.Errorf("invalid event id %q", arg)
		}
		ids = append(ids, uint(id))
	}

	return ids, nil
}

func setEventsState(cmd *cobra.Command, args []string, state bool) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	svcs, err := openServices()
	if err != nil {
		return err
	}

	var n int64
	if state {
		n, err = svcs.admin.AcceptEvents(cmd.Context(), ids)
	} else {
		n, err = svcs.admin.RefuseEvents(cmd.Context(), ids)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d event(s) updated\n", n)

	return nil
}
