package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/fs/core"
	fserrors "github.com/jmgilman/go/fs/errors"
	"github.com/jmgilman/go/fs/filesystem"
	"github.com/jmgilman/go/fs/native"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type app struct {
	root    string
	json    bool
	verbose bool

	newPlatform func(root string) core.Platform
	fsys        *filesystem.FileSystem
}

func newApp() *app {
	return &app{
		newPlatform: func(root string) core.Platform {
			return native.New(native.WithRoot(root))
		},
	}
}

// run executes the command line and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return newApp().run(args, stdin, stdout, stderr)
}

func (a *app) run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	var usage usageError
	if fserrors.As(err, &usage) {
		fmt.Fprintf(stderr, "fsx: %v\n", err)
		return exitUsage
	}

	if a.json {
		data, _ := json.Marshal(fserrors.ToJSON(err))
		fmt.Fprintln(stderr, string(data))
	} else {
		hint := ""
		if fserrors.IsRetryable(err) {
			hint = " (retryable)"
		}
		fmt.Fprintf(stderr, "fsx: %v%s\n", err, hint)
	}
	return exitFailure
}

// usageError marks command-line mistakes.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fsx",
		Short:         "Portable filesystem operations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var opts []filesystem.Option
			if a.verbose {
				logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
				opts = append(opts, filesystem.WithLogger(logger))
			}
			a.fsys = filesystem.New(a.newPlatform(a.root), opts...)
			return nil
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	root.PersistentFlags().StringVar(&a.root, "root", "", "directory relative paths resolve against")
	root.PersistentFlags().BoolVar(&a.json, "json", false, "print failures as JSON")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log operations to stderr")

	root.AddCommand(
		a.findCmd(),
		a.statCmd(),
		a.mkdirCmd(),
		a.rmCmd(),
		a.mvCmd(),
		a.catCmd(),
		a.putCmd(),
	)
	return root
}

// args wraps a cobra argument validator so violations map to exitUsage.
func args(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		if err := v(cmd, a); err != nil {
			return usageError{err}
		}
		return nil
	}
}
