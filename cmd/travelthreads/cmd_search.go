package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"travelthreads/app/search"
)

func runSearch(cmd *cobra.Command, opts *options, args []string) error {
	e, err := newEnv(cmd, opts)
	if err != nil {
		return err
	}
	defer e.Close()

	query := strings.Join(args, " ")
	if opts.chip != "" {
		query = search.RefineQuery(query, opts.chip)
	}
	res := e.engine.Search(query, search.FromTree(e.tree))

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
