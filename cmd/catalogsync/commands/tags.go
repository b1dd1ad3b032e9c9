package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagsCommand = &cobra.Command{
	Use:   "tags",
	Short: "Inspect tags attached to entries",
}

var tagsListCommand = &cobra.Command{
	Use:   "list <entry>",
	Short: "List the tags of an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  tagsList,
}

func init() {
	tagsCommand.AddCommand(tagsListCommand)
}

func tagsList(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	tags, err := s.facade.ListTags(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), msgNoRecords)
		return nil
	}
	for _, t := range tags {
		if err := printMessage(cmd.OutOrStdout(), t); err != nil {
			return err
		}
	}
	return nil
}
