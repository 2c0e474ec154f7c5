package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/jostylr/rix-parser-sub000/internal/render"
	"github.com/jostylr/rix-parser-sub000/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Version an",
	RunE: func(cmd *cobra.Command, args []string) error {
		if f := format(); f != render.FormatText {
			info := version.Info()
			info["go_version"] = runtime.Version()
			info["platform"] = runtime.GOOS + "/" + runtime.GOARCH
			return render.Encode(cmd.OutOrStdout(), f, info)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s v%s\n", version.Name, version.Version)
		fmt.Fprintf(out, "  Git Commit: %s\n", version.GitCommit)
		fmt.Fprintf(out, "  Build Date: %s\n", version.BuildDate)
		fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
