package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vietanh2810/events-api/internal/domain"
)

var (
	participantsPage  int
	participantsEvent uint
)

var participantsCmd = &cobra.Command{
	Use:   "participants",
	Short: "Inspect and manage participations",
}

var participantsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List participant rows, optionally for one event",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := openServices()
		if err != nil {
			return err
		}

		var (
			participants []domain.Participant
			total        int64
		)
		if participantsEvent != 0 {
			participants, err = svcs.admin.EventParticipants(cmd.Context(), participantsEvent)
			total = int64(len(participants))
		} else {
			participants, total, err = svcs.admin.ListParticipants(cmd.Context(), participantsPage)
		}
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEVENT\tPERSON\tDATE")
		for _, p := range participants {
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", p.ID, p.EventID, p.PersonCIN, p.ParticipationDate.Format("2006-01-02"))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d participant(s)\n", total)

		return nil
	},
}

var participantsAddCmd = &cobra.Command{
	Use:   "add <event-id> <cin>...",
	Short: "Join persons to an event",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args[:1])
		if err != nil {
			return err
		}

		svcs, err := openServices()
		if err != nil {
			return err
		}

		results, err := svcs.admin.AddParticipants(cmd.Context(), ids[0], args[1:])
		if err != nil {
			return err
		}
		for _, r := range results {
			if r.Added {
				fmt.Fprintf(cmd.OutOrStdout(), "%s added\n", r.PersonCIN)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s skipped: %s\n", r.PersonCIN, r.Error)
			}
		}

		return nil
	},
}

var participantsRemoveCmd = &cobra.Command{
	Use:   "remove <event-id> <cin>",
	Short: "Remove a person from an event",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args[:1])
		if err != nil {
			return err
		}

		svcs, err := openServices()
		if err != nil {
			return err
		}

		event, err := svcs.admin.RemoveParticipant(cmd.Context(), ids[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s removed from %q, %d participant(s) left\n", args[1], event.String(), event.Participants())

		return nil
	},
}

func init() {
	participantsListCmd.Flags().IntVar(&participantsPage, "page", 1, "page number")
	participantsListCmd.Flags().UintVar(&participantsEvent, "event", 0, "only list participants of this event")

	participantsCmd.AddCommand(participantsListCmd)
	participantsCmd.AddCommand(participantsAddCmd)
	participantsCmd.AddCommand(participantsRemoveCmd)
}
