package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var templateCommand = &cobra.Command{
	Use:   "template",
	Short: "Fetch or delete tag templates",
}

var templateGetCommand = &cobra.Command{
	Use:   "get <name>",
	Short: "Show a tag template by its resource name",
	Args:  cobra.ExactArgs(1),
	RunE:  templateGet,
}

var templateDeleteCommand = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a tag template and every tag that uses it",
	Args:  cobra.ExactArgs(1),
	RunE:  templateDelete,
}

func init() {
	templateCommand.AddCommand(templateGetCommand)
	templateCommand.AddCommand(templateDeleteCommand)
}

func templateGet(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	tmpl, err := s.facade.GetTagTemplate(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printMessage(cmd.OutOrStdout(), tmpl)
}

func templateDelete(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.facade.DeleteTagTemplate(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}
