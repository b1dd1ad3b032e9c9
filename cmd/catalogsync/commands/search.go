package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchNamesOnly bool

var searchCommand = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the project's catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  search,
}

func init() {
	searchCommand.Flags().BoolVar(
		&searchNamesOnly,
		"names", false,
		"Print only relative resource names.",
	)
}

func search(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	results, err := s.facade.SearchCatalog(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), msgNoRecords)
		return nil
	}

	for _, r := range results {
		if searchNamesOnly {
			fmt.Fprintln(cmd.OutOrStdout(), r.GetRelativeResourceName())
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-60s %-12s %s\n",
			r.GetRelativeResourceName(), r.GetSearchResultSubtype(), r.GetLinkedResource())
	}
	return nil
}
