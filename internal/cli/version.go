package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/huddle-sh/huddle/internal/buildinfo"
	"github.com/huddle-sh/huddle/internal/updater"
)

var versionCheckUpdate bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Huddle %s\n", buildinfo.Version)
		fmt.Printf("  Commit: %s\n", buildinfo.CommitHash)
		fmt.Printf("  Built: %s\n", buildinfo.BuildDate)
		fmt.Printf("  OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Printf("  Go: %s\n", runtime.Version())

		if !versionCheckUpdate {
			return nil
		}

		result, err := updater.CheckForUpdate()
		if err != nil {
			return fmt.Errorf("update check failed: %w", err)
		}
		if result.Available {
			fmt.Println(styleWarning.Render(
				fmt.Sprintf("Update available: %s → %s", result.CurrentVersion, result.LatestVersion)))
			fmt.Println(styleHint.Render("  " + result.ReleaseURL))
		} else {
			fmt.Println(styleSuccess.Render("Up to date."))
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheckUpdate, "check-update", false,
		"Check GitHub releases for a newer version")
}
