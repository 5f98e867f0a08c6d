package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/workspace-manager/internal/watch"
)

func newWatchCmd(flags *rootFlags) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the workspace file whenever folders change",
		Long: `Generate the workspace file, then keep watching the scan path and regenerate
it whenever a subdirectory is added, removed or renamed. Stops on Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			req, err := newGenerateRequest(cmd, flags)
			if err != nil {
				return err
			}
			eng := newEngine()

			result, err := eng.Generate(ctx, req)
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Workspace file '%s' updated successfully!", result.FileName))

			w := watch.New(result.ScanRoot, debounce, func(ctx context.Context) error {
				res, err := eng.Generate(ctx, req)
				if err != nil {
					return err
				}
				if res.Changed {
					printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Workspace file '%s' updated successfully!", res.FileName))
				}
				return nil
			})
			return w.Run(ctx)
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Quiet period before regenerating")
	return cmd
}
