// internal/cli/copy_dlls.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/winport/vstool/pkg/msvc"
)

var copyDLLsCmd = &cobra.Command{
	Use:   "copy_dlls <target_dir> <configuration> <target_cpu>",
	Short: "Copy runtime DLLs into a build output directory",
	Long: `Copy the runtime DLLs the given configuration and architecture need into
the target directory. Files already up to date are left alone, so repeated
runs are cheap.

Examples:
  vstool copy_dlls out/Release Release x64
  vstool copy_dlls out/Debug Debug x86`,
	Args: cobra.ExactArgs(3),
	RunE: runCopyDLLs,
}

func runCopyDLLs(cmd *cobra.Command, args []string) error {
	configuration, err := msvc.ParseConfiguration(args[1])
	if err != nil {
		return err
	}
	cpu, err := msvc.ParseTargetCPU(args[2])
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	return msvc.NewCopier(config).CopyDLLs(args[0], configuration, cpu)
}
