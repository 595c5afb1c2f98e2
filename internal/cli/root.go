// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/winport/vstool/pkg/msvc"
)

var (
	cfgFile string
	verbose bool
	config  *msvc.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vstool",
	Short: "Visual Studio toolchain support",
	Long: `vstool - Visual Studio toolchain support

Locates an installed Visual Studio toolchain and the Windows SDK, reports
their paths in a form the calling build system can parse, and copies the
runtime DLLs produced binaries need into a build output directory.`,
	Version:       "0.1.0",
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("expected one of: get_toolchain_dir, copy_dlls")
	},
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file overriding environment defaults")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log each copied file")

	// Add commands
	rootCmd.AddCommand(toolchainDirCmd)
	rootCmd.AddCommand(copyDLLsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = msvc.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = msvc.ConfigFromEnv()
	}

	if verbose {
		config.Verbose = true
	}
}
