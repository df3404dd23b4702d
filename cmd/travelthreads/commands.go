package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const cliVersion = "1.0.0"

// options collects flag values; a flag only overrides the environment when
// it was set explicitly.
type options struct {
	logLevel       string
	dataDir        string
	inMemory       bool
	seedFile       string
	categoriesFile string

	addr   string
	handle string

	chip string

	after int
	limit int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "travelthreads",
		Short:        "Threaded travel discussions with heuristic search",
		SilenceUsage: true,
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&opts.dataDir, "data-dir", "", "directory of the journal store")
	pf.BoolVar(&opts.inMemory, "in-memory", false, "keep the journal in memory only")
	pf.StringVar(&opts.seedFile, "seed", "", "YAML file with the initial posts")
	pf.StringVar(&opts.categoriesFile, "categories", "", "YAML file with the search keyword table")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API and metrics endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts) // Defined in cmd_serve.go
		},
	}
	serveCmd.Flags().StringVar(&opts.addr, "addr", "", "listen address")
	serveCmd.Flags().StringVar(&opts.handle, "handle", "", "author and handle of new posts and replies")

	searchCmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search posts and replies and print matches, chips and a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, args) // Defined in cmd_search.go
		},
	}
	searchCmd.Flags().StringVar(&opts.chip, "chip", "", "refine the query with a chip")

	threadsCmd := &cobra.Command{
		Use:   "threads [filter]",
		Short: "Print the discussion tree as it is shown to readers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThreads(cmd, opts, args) // Defined in cmd_threads.go
		},
	}

	journalCmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect and manage the mutation journal",
	}
	journalListCmd := &cobra.Command{
		Use:   "list",
		Short: "List journaled mutations in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJournalList(cmd, opts) // Defined in cmd_journal.go
		},
	}
	journalListCmd.Flags().IntVar(&opts.after, "after", 0, "only list mutations after this sequence number")
	journalListCmd.Flags().IntVar(&opts.limit, "limit", 0, "list at most this many mutations")

	journalBackupCmd := &cobra.Command{
		Use:   "backup [file]",
		Short: "Write a backup of the journal store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJournalBackup(cmd, opts, args[0])
		},
	}
	journalRestoreCmd := &cobra.Command{
		Use:   "restore [file]",
		Short: "Load a journal backup into an empty store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJournalRestore(cmd, opts, args[0])
		},
	}
	journalCmd.AddCommand(journalListCmd, journalBackupCmd, journalRestoreCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "travelthreads version %s\n", cliVersion)
		},
	}

	rootCmd.AddCommand(serveCmd, searchCmd, threadsCmd, journalCmd, versionCmd)
	return rootCmd
}
