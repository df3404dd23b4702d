package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"travelthreads/app/models"
	"travelthreads/app/thread"
)

func runThreads(cmd *cobra.Command, opts *options, args []string) error {
	e, err := newEnv(cmd, opts)
	if err != nil {
		return err
	}
	defer e.Close()

	var filter string
	if len(args) > 0 {
		filter = args[0]
	}
	for _, post := range thread.Filter(e.tree, filter) {
		printPost(cmd.OutOrStdout(), post)
	}
	return nil
}

func printPost(w io.Writer, post *models.Post) {
	liked := ""
	if post.LikedByMe {
		liked = " (liked)"
	}
	fmt.Fprintf(w, "@%s · %s · ♥ %d%s · %d replies  [%s]\n", post.Handle, post.Time, post.Likes, liked, post.ReplyCount(), post.ID)
	fmt.Fprintf(w, "  %s\n", post.Text)
	for _, v := range thread.Visible(post) {
		indent := strings.Repeat("  ", v.Depth+2)
		marker := "-"
		if v.Reply.Collapsed && v.Reply.HasChildren() {
			marker = "+"
		}
		fmt.Fprintf(w, "%s%s @%s: %s  [%s]\n", indent, marker, v.Reply.Handle, v.Reply.Text, v.Reply.ID)
	}
}
