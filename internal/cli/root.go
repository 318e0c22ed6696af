// Package cli implements the indraloader command line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ndexcontent/indraloader/pkg/logger"
	"github.com/ndexcontent/indraloader/pkg/logger/console"
	"github.com/ndexcontent/indraloader/pkg/version"
)

var (
	confFile string
	profile  string
	verbose  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "indraloader",
	Short: "Annotate molecular interaction networks with INDRA evidence",
	Long: `indraloader enriches NDEx molecular interaction networks with
causal-relationship evidence mined by the INDRA subgraph service.

For each pair of network nodes that INDRA knows something about, the tool
filters, deduplicates and merges the mined statements, then adds a single
edge summarizing the surviving evidence with links back to the INDRA
database.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{
			Debug: verbose,
		}))
	},
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("indraloader v" + version.Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&confFile, "conf", "", "config file with NDEx credentials (default: $HOME/.indraloader/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "ndexindraloader", "section of the config file holding user, password and server")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads the credentials config file and INDRALOADER_* environment
// variables. A missing config file is fine; credentials are only needed when
// networks are fetched from an NDEx server.
func initConfig() {
	if confFile != "" {
		viper.SetConfigFile(confFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(filepath.Join(home, ".indraloader"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("INDRALOADER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
