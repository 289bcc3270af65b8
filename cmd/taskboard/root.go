package main

import (
	"context"

	"github.com/spf13/cobra"

	"taskboard/internal/app"
)

var opts app.Options

var rootCmd = &cobra.Command{
	Use:   "taskboard",
	Short: "Taskboard - a drag and drop task board for the terminal",
	Long: `Taskboard shows three columns of tasks (All Tasks, In progress, Paused).
Drag items between columns with the mouse, or pick them up with space,
choose a column with h/l and drop them with space or enter.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if opts.WriteConfig {
			path, err := app.WriteConfig(opts)
			if err != nil {
				return err
			}
			cmd.Printf("wrote %s\n", path)
			return nil
		}
		return app.Run(cmd.Context(), opts)
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default $XDG_CONFIG_HOME/taskboard/config.yaml)")
	flags.StringVar(&opts.LogFile, "log-file", "", "log file (default ~/.taskboard/logs/taskboard.log)")
	flags.BoolVar(&opts.Debug, "debug", false, "log drag and drop events at debug level")
	flags.BoolVar(&opts.NoMouse, "no-mouse", false, "disable mouse support")
	flags.BoolVar(&opts.WriteConfig, "write-config", false, "write the effective config file and exit")
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
