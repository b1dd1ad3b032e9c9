package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nainya/catalogsync/internal/config"
	"github.com/nainya/catalogsync/internal/syncer"
	"github.com/nainya/catalogsync/pkg/manifest"
)

var syncDryRun bool

var syncCommand = &cobra.Command{
	Use:   "sync <manifest>",
	Short: "Apply a manifest to Data Catalog",
	Long: `Ensure the manifest's tag templates and entry groups exist, upsert
every entry and its tags, then delete entries matched by the prune query
that the manifest no longer lists.`,
	Args: cobra.ExactArgs(1),
	RunE: syncRun,
}

func setupSyncFlags() {
	syncCommand.Flags().Float64(
		"qps", 0,
		"Maximum entry upserts per second. Zero disables throttling.",
	)
	syncCommand.Flags().BoolVar(
		&syncDryRun,
		"dry-run", false,
		"Validate the manifest without calling Data Catalog.",
	)
	bind(config.KeySyncQPS, syncCommand.Flags().Lookup("qps"))
}

func init() {
	setupSyncFlags()
}

func syncRun(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(args[0])
	if err != nil {
		return err
	}
	if cfg.Location != "" && m.Location != cfg.Location {
		initLogger().Warn("Manifest location differs from configured location").
			Str("manifest", m.Location).
			Str("configured", cfg.Location).
			Send()
	}

	if syncDryRun {
		entries := 0
		for _, g := range m.EntryGroups {
			entries += len(g.Entries)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "manifest ok: %d tag template(s), %d entry group(s), %d entries\n",
			len(m.TagTemplates), len(m.EntryGroups), entries)
		return nil
	}

	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	s.log.LogSyncStart(cfg.ProjectID, args[0])
	runLog := s.log.WithFields(map[string]interface{}{
		"project":  cfg.ProjectID,
		"manifest": args[0],
	})
	res, err := syncer.New(s.facade, cfg.SyncQPS, runLog).Run(cmd.Context(), m)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %d tag template(s), %d entry group(s); synced %d entries; pruned %d\n",
		res.Templates, res.Groups, res.Entries, res.Deleted)
	return nil
}
