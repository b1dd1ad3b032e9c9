package commands

import (
	"github.com/spf13/cobra"

	"github.com/nainya/catalogsync/internal/config"
)

var (
	vp         = config.NewViper()
	configFile string
	cfg        *config.Config
)

var RootCommand = &cobra.Command{
	Use:   "catalogsync",
	Short: "catalogsync - keep Data Catalog in line with a manifest.",
	Long:  "Create, update and prune Data Catalog entries, tags and tag templates.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(vp, configFile)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func addGlobalFlags() {
	flags := RootCommand.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Path to a YAML, JSON or TOML config file.")
	flags.String("project", "", "Google Cloud project that owns the catalog resources.")
	flags.String("location", "us-central1", "Location of entry groups and tag templates.")
	flags.String("endpoint", "", "Override the Data Catalog API endpoint (host:port).")
	flags.String("log-level", "info", "One of debug, info, warn or error.")
	flags.Bool("log-pretty", false, "Write human-readable logs instead of JSON.")
	flags.Int("metrics-port", 0, "Serve /metrics, /health and pprof on this port while running.")

	bind(config.KeyProjectID, flags.Lookup("project"))
	bind(config.KeyLocation, flags.Lookup("location"))
	bind(config.KeyEndpoint, flags.Lookup("endpoint"))
	bind(config.KeyLogLevel, flags.Lookup("log-level"))
	bind(config.KeyLogPretty, flags.Lookup("log-pretty"))
	bind(config.KeyMetricsPort, flags.Lookup("metrics-port"))
}

func init() {
	addGlobalFlags()

	RootCommand.AddCommand(syncCommand)
	RootCommand.AddCommand(searchCommand)
	RootCommand.AddCommand(entryCommand)
	RootCommand.AddCommand(tagsCommand)
	RootCommand.AddCommand(templateCommand)
	RootCommand.AddCommand(groupCommand)
	RootCommand.SilenceUsage = true
	RootCommand.SilenceErrors = true
}
