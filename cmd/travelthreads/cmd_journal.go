package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func runJournalList(cmd *cobra.Command, opts *options) error {
	e, err := newEnv(cmd, opts)
	if err != nil {
		return err
	}
	defer e.Close()

	mutations, err := e.journal.List(opts.after, opts.limit)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, m := range mutations {
		target := m.PostID
		if m.TargetID != "" {
			target += "/" + m.TargetID
		}
		fmt.Fprintf(w, "%6d  %s  %-18s %s", m.Seq, m.RecordedAt.Format("2006-01-02 15:04:05"), m.Kind, target)
		if m.CreatesNode() {
			fmt.Fprintf(w, " -> %s %q", m.NodeID, m.Text)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func runJournalBackup(cmd *cobra.Command, opts *options, path string) error {
	e, err := newEnv(cmd, opts)
	if err != nil {
		return err
	}
	defer e.Close()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer f.Close()

	if err := e.journal.Backup(f); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Journal backed up to %s\n", path)
	return nil
}

func runJournalRestore(cmd *cobra.Command, opts *options, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return err
	}
	if fi.Size() == 0 {
		return fmt.Errorf("backup file is empty: %s", path)
	}

	e, err := newEnv(cmd, opts)
	if err != nil {
		return err
	}
	defer e.Close()

	existing, err := e.journal.List(0, 1)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return fmt.Errorf("journal at %s is not empty", e.cfg.DataDir)
	}

	if err := e.journal.Restore(f); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Journal restored successfully")
	return nil
}
