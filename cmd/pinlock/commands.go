package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frederic-klein/pinlock/internal/dep"
	"github.com/frederic-klein/pinlock/internal/lockfile"
)

func (c *cli) newLockCmd() *cobra.Command {
	var opts lockfile.UpdateOptions

	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Update the lock from the packages installed in the environment",
		Long: `Update the lock from the packages installed in the environment.

Simple pins follow the installed versions, source references are kept as they
are and new packages are appended. Nothing is ever removed from the lock.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.newApp()
			if err != nil {
				return err
			}
			return a.Lock(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.PythonVersion, "python-version", "", `Marker for new dependencies, e.g. "< '3.6'"`)
	cmd.Flags().StringVar(&opts.SysPlatform, "platform", "", `sys_platform of new dependencies, e.g. "win32"`)
	return cmd
}

func (c *cli) newBumpCmd() *cobra.Command {
	var git bool

	cmd := &cobra.Command{
		Use:   "bump-in-lock NAME VALUE",
		Short: "Set the version or git reference of one locked dependency",
		Example: `  pinlock bump-in-lock foo 1.2.3
  pinlock bump-in-lock bar v2.0 --git`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.newApp()
			if err != nil {
				return err
			}
			kind := dep.KindSimple
			if git {
				kind = dep.KindSourceRef
			}
			return a.Bump(cmd.Context(), args[0], args[1], kind)
		},
	}

	cmd.Flags().BoolVar(&git, "git", false, "Bump a git reference instead of a version")
	return cmd
}

func (c *cli) newTidyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tidy",
		Short: "Drop simple pins no longer installed in the environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.newApp()
			if err != nil {
				return err
			}
			return a.Tidy(cmd.Context())
		},
	}
}

func (c *cli) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the locked dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.newApp()
			if err != nil {
				return err
			}
			return a.Show(cmd.OutOrStdout())
		},
	}
}

func (c *cli) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "pinlock version %s\n", version)
		},
	}
}
