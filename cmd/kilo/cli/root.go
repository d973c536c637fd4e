// Package cli implements the kilo command-line interface using Cobra.
// The root command runs the editor; errors are printed after the screen
// has been restored and cleared so the diagnostic stays readable.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/syamimhazmi/kilo-editor/internal/editor"
	"github.com/syamimhazmi/kilo-editor/internal/log"
	"github.com/syamimhazmi/kilo-editor/internal/term"
	"github.com/syamimhazmi/kilo-editor/internal/ui"
)

var (
	verbose  bool
	debugDir string
)

// debugRetentionDays is how long debug log files are kept.
const debugRetentionDays = 7

var rootCmd = &cobra.Command{
	Use:   "kilo",
	Short: "A minimal terminal screen editor",
	Long: `Kilo is the scaffold of a terminal screen editor: it puts the
controlling terminal into raw mode, repaints the screen every cycle, and
dispatches single keystrokes. Press Ctrl-Q to quit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := log.Init(log.Options{
			Verbose:       verbose,
			Interactive:   true,
			DebugDir:      debugDir,
			RetentionDays: debugRetentionDays,
		}); err != nil {
			cmd.PrintErrf("Warning: failed to initialize debug logging: %v\n", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEditor(cmd.Context())
	},
}

// Execute runs the root command. The fatal diagnostic is printed here, after
// runEditor has restored the terminal and cleared the screen.
func Execute() error {
	defer log.Close()
	err := rootCmd.Execute()
	if err != nil {
		ui.Errorf("%v", err)
	}
	return err
}

func runEditor(ctx context.Context) (err error) {
	// Leave the screen clean behind the diagnostic on any failure. Runs
	// after the deferred Restore below, so the clear lands in cooked mode.
	defer func() {
		if err != nil {
			os.Stdout.WriteString("\x1b[2J\x1b[H")
		}
	}()

	session, err := term.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	// Probe geometry before any raw-mode mutation: a broken probe must
	// leave the terminal in its original configuration.
	rows, cols, err := term.Size(session.Output())
	if err != nil {
		return err
	}
	log.Debug("terminal geometry", "rows", rows, "cols", cols)

	if err := session.EnterRaw(); err != nil {
		return err
	}
	defer func() {
		if rerr := session.Restore(); rerr != nil {
			// Reported, never escalated: refusing to exit would leave the
			// terminal unusable anyway.
			log.Warn("terminal restore failed", "error", rerr)
		}
	}()

	return editor.New(session.Input(), session.Output(), rows, cols).Run(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&debugDir, "debug-dir", "", "directory for debug log files")
}
