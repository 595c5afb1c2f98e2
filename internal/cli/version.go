// internal/cli/version.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/winport/vstool/pkg/msvc"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("vstool version 0.1.0")
		fmt.Printf("Supported toolchains: %s\n", strings.Join(msvc.SupportedVersions(), ", "))
	},
}
