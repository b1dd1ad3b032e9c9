package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var entryCommand = &cobra.Command{
	Use:   "entry",
	Short: "Fetch or delete single entries",
}

var entryGetCommand = &cobra.Command{
	Use:   "get <name>",
	Short: "Show an entry by its resource name",
	Args:  cobra.ExactArgs(1),
	RunE:  entryGet,
}

var entryDeleteCommand = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete an entry by its resource name",
	Long: `Delete an entry by its resource name. Failures are logged, not
returned, so the command always exits zero once connected.`,
	Args: cobra.ExactArgs(1),
	RunE: entryDelete,
}

func init() {
	entryCommand.AddCommand(entryGetCommand)
	entryCommand.AddCommand(entryDeleteCommand)
}

func entryGet(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	entry, err := s.facade.GetEntry(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printMessage(cmd.OutOrStdout(), entry)
}

func entryDelete(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	s.facade.DeleteEntry(cmd.Context(), args[0])
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}
