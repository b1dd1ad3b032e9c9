package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var groupCommand = &cobra.Command{
	Use:   "group",
	Short: "Create or delete entry groups",
}

var groupCreateCommand = &cobra.Command{
	Use:   "create <id>",
	Short: "Create an entry group in the configured location",
	Args:  cobra.ExactArgs(1),
	RunE:  groupCreate,
}

var groupDeleteCommand = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete an entry group by its resource name",
	Args:  cobra.ExactArgs(1),
	RunE:  groupDelete,
}

func init() {
	groupCommand.AddCommand(groupCreateCommand)
	groupCommand.AddCommand(groupDeleteCommand)
}

func groupCreate(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	group, err := s.facade.CreateEntryGroup(cmd.Context(), cfg.Location, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), group.GetName())
	return nil
}

func groupDelete(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.facade.DeleteEntryGroup(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}
