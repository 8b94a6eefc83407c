package main

import (
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/fs/core"
)

func (a *app) findCmd() *cobra.Command {
	var (
		recursive bool
		pattern   string
	)
	cmd := &cobra.Command{
		Use:   "find [dir]",
		Short: "List directory entries in pre-order",
		Args:  args(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, argv []string) error {
			var dir string
			if len(argv) == 1 {
				dir = argv[0]
			}

			var seq iter.Seq2[core.DirEntry, error]
			if pattern == "" {
				seq = a.fsys.FindFiles(dir, recursive)
			} else {
				var err error
				if seq, err = a.fsys.FindMatching(dir, pattern, recursive); err != nil {
					return err
				}
			}

			var firstErr error
			out := cmd.OutOrStdout()
			for entry, err := range seq {
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "fsx: %v\n", err)
					if firstErr == nil {
						firstErr = err
					}
					continue
				}
				name := entry.Name
				if entry.IsDirectory {
					name += "/"
				}
				fmt.Fprintln(out, name)
			}
			return firstErr
		},
	}
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "descend into subdirectories")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "only list entries matching a glob (e.g. '**/*.go')")
	return cmd
}

func (a *app) statCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stat <path>",
		Short: "Show type, size and timestamps",
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, argv []string) error {
			st, err := a.fsys.Stat(argv[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:     %s\n", argv[0])
			fmt.Fprintf(out, "type:     %s\n", kind(st))
			if st.IsFile {
				fmt.Fprintf(out, "size:     %s (%d bytes)\n", humanize.IBytes(st.SizeInBytes), st.SizeInBytes)
			}
			fmt.Fprintf(out, "created:  %s (%s)\n", st.Created.Format(time.RFC3339), humanize.Time(st.Created))
			fmt.Fprintf(out, "modified: %s (%s)\n", st.Modified.Format(time.RFC3339), humanize.Time(st.Modified))
			return nil
		},
	}
}

func kind(st core.Stat) string {
	switch {
	case st.IsFile:
		return "file"
	case st.IsDirectory:
		return "directory"
	default:
		return "other"
	}
}

func (a *app) mkdirCmd() *cobra.Command {
	var parents bool
	cmd := &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a directory",
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, argv []string) error {
			return a.fsys.CreateDir(argv[0], parents)
		},
	}
	cmd.Flags().BoolVarP(&parents, "parents", "p", false, "create missing parent directories")
	return cmd
}

func (a *app) rmCmd() *cobra.Command {
	var recursive bool
	cmd := &cobra.Command{
		Use:   "rm <path>",
		Short: "Remove a file or directory",
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, argv []string) error {
			return a.fsys.Remove(argv[0], recursive)
		},
	}
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "remove directories and their contents")
	return cmd
}

func (a *app) mvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mv <path> <new-path>",
		Short: "Rename a file or directory",
		Args:  args(cobra.ExactArgs(2)),
		RunE: func(_ *cobra.Command, argv []string) error {
			return a.fsys.Move(argv[0], argv[1])
		},
	}
}

func (a *app) catCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <path>",
		Short: "Write a file to standard output",
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, argv []string) error {
			in, err := a.fsys.OpenForInput(argv[0])
			if err != nil {
				return err
			}
			defer func() { _ = in.Close() }()

			_, err = io.Copy(cmd.OutOrStdout(), in)
			return err
		},
	}
}

func (a *app) putCmd() *cobra.Command {
	var exclusive bool
	cmd := &cobra.Command{
		Use:   "put <path>",
		Short: "Write standard input to a file, replacing it",
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, argv []string) (err error) {
			creation := core.Create | core.Truncate
			if exclusive {
				creation = core.Exclusive
			}

			out, err := a.fsys.OpenForOutput(argv[0], creation)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := out.Close(); err == nil {
					err = cerr
				}
			}()

			if _, err := io.Copy(out, cmd.InOrStdin()); err != nil {
				return err
			}
			return out.Flush()
		},
	}
	cmd.Flags().BoolVarP(&exclusive, "exclusive", "x", false, "fail if the file already exists")
	return cmd
}
