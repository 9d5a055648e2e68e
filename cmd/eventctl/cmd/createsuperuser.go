package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vietanh2810/events-api/internal/domain"
)

var superuser domain.Person

var createSuperuserCmd = &cobra.Command{
	Use:   "createsuperuser",
	Short: "Create a staff person with every permission",
	Long: `Create a superuser able to use the staff console.

Missing values are prompted for on stdin.

Examples:
  eventctl createsuperuser --cin 12345678 --username admin --email admin@esprit.tn`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := bufio.NewReader(cmd.InOrStdin())
		for _, field := range []struct {
			label string
			value *string
		}{
			{"CIN", &superuser.CIN},
			{"Username", &superuser.Username},
			{"Email", &superuser.Email},
			{"Password", &superuser.Password},
		} {
			if *field.value != "" {
				continue
			}
			v, err := prompt(cmd.OutOrStdout(), in, field.label)
			if err != nil {
				return err
			}
			*field.value = v
		}

		svcs, err := openServices()
		if err != nil {
			return err
		}

		created, err := svcs.auth.CreateSuperuser(cmd.Context(), superuser)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "superuser %s (%s) created\n", created.Username, created.CIN)

		return nil
	},
}

func init() {
	createSuperuserCmd.Flags().StringVar(&superuser.CIN, "cin", "", "8 character CIN")
	createSuperuserCmd.Flags().StringVar(&superuser.Username, "username", "", "username")
	createSuperuserCmd.Flags().StringVar(&superuser.Email, "email", "", "email ending with "+domain.EmailDomain)
	createSuperuserCmd.Flags().StringVar(&superuser.Password, "password", "", "password (prompted when omitted)")
}

func prompt(out io.Writer, in *bufio.Reader, label string) (string, error) {
	fmt.Fprintf(out, "%s: ", label)
	line, err := in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", fmt.Errorf("read %s -> %w", strings.ToLower(label), err)
	}

	return strings.TrimSpace(line), nil
}
