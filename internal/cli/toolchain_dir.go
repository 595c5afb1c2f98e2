// internal/cli/toolchain_dir.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/winport/vstool/pkg/msvc"
)

var toolchainDirCmd = &cobra.Command{
	Use:   "get_toolchain_dir",
	Short: "Print resolved toolchain and SDK locations",
	Long: `Resolve the toolchain installation root, the Windows SDK directory and the
runtime DLL directories, and print them one key = "value" pair per line for
the calling build system.`,
	Args: cobra.NoArgs,
	RunE: runToolchainDir,
}

func runToolchainDir(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	report, err := msvc.BuildReport(config)
	if err != nil {
		return err
	}
	return report.Write(cmd.OutOrStdout())
}
