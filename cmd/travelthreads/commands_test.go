package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"travelthreads/app/models"
	"travelthreads/app/repositories"
	"travelthreads/app/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeContext(t, context.Background(), args...)
}

func executeContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

// journalWith opens a store in a fresh directory and appends mutations.
func journalWith(t *testing.T, mutations ...*models.Mutation) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "badger")
	repo, err := repositories.OpenMutationRepository(dir)
	require.NoError(t, err)
	for _, m := range mutations {
		require.NoError(t, repo.Append(m))
	}
	require.NoError(t, repo.Close())
	return dir
}

func tokyoReply() *models.Mutation {
	return &models.Mutation{
		Kind:   models.MutationAddReplyToPost,
		PostID: "post-tokyo",
		NodeID: "reply-pasmo",
		Author: "you",
		Handle: "you",
		Time:   "now",
		Text:   "Pasmo тоже подходит",
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "travelthreads version "+cliVersion+"\n", out)
}

func TestSearchCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		query   string
		matches []string
		chip    string
	}{
		{
			name:    "hilton sharm price",
			args:    []string{"search", "--in-memory", "hilton", "sharm", "price"},
			query:   "hilton sharm price",
			matches: []string{"post-sharm"},
			chip:    "topic:hotel",
		},
		{
			name:    "with chip",
			args:    []string{"search", "--in-memory", "--chip", "brand:hilton", "sharm"},
			query:   "sharm brand:hilton",
			matches: []string{"post-sharm"},
			chip:    "location:sharm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)

			var res search.Result
			require.NoError(t, json.Unmarshal([]byte(out), &res))
			assert.Equal(t, tt.query, res.Query)
			ids := make([]string, len(res.Matches))
			for i, m := range res.Matches {
				ids[i] = m.Document.ID
			}
			assert.Equal(t, tt.matches, ids)
			assert.Contains(t, res.Chips, tt.chip)
		})
	}
}

func TestSearchCommandSeesJournal(t *testing.T) {
	dir := journalWith(t, tokyoReply())

	out, err := execute(t, "search", "--data-dir", dir, "pasmo")
	require.NoError(t, err)

	var res search.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "reply-pasmo", res.Matches[0].Document.ID)
}

func TestThreadsCommand(t *testing.T) {
	out, err := execute(t, "threads", "--in-memory")
	require.NoError(t, err)
	assert.Contains(t, out, "@bali_nomad")
	assert.Contains(t, out, "[reply-bali-2]")
	assert.Contains(t, out, "@aviageek_uz")

	out, err = execute(t, "threads", "--in-memory", "tokyo")
	require.NoError(t, err)
	assert.Contains(t, out, "@tokyo_weekender")
	assert.NotContains(t, out, "@bali_nomad")
}

func TestThreadsCommandHidesCollapsedChildren(t *testing.T) {
	dir := journalWith(t, &models.Mutation{
		Kind:      models.MutationToggleCollapse,
		PostID:    "post-bali",
		TargetID:  "reply-bali-1",
		Collapsed: true,
	})

	out, err := execute(t, "threads", "--data-dir", dir, "bali")
	require.NoError(t, err)
	assert.Contains(t, out, "+ @you: ес  [reply-bali-1]")
	assert.NotContains(t, out, "reply-bali-2")
}

func TestJournalCommands(t *testing.T) {
	dir := journalWith(t, tokyoReply(), &models.Mutation{Kind: models.MutationToggleLike, PostID: "post-visa", Liked: true, Likes: 8})

	t.Run("list", func(t *testing.T) {
		out, err := execute(t, "journal", "list", "--data-dir", dir)
		require.NoError(t, err)
		assert.Contains(t, out, "add_reply_to_post")
		assert.Contains(t, out, `reply-pasmo "Pasmo тоже подходит"`)
		assert.Contains(t, out, "toggle_like")
	})

	t.Run("list after", func(t *testing.T) {
		out, err := execute(t, "journal", "list", "--data-dir", dir, "--after", "1")
		require.NoError(t, err)
		assert.NotContains(t, out, "add_reply_to_post")
		assert.Contains(t, out, "toggle_like")
	})

	backup := filepath.Join(t.TempDir(), "journal.bak")

	t.Run("backup and restore", func(t *testing.T) {
		out, err := execute(t, "journal", "backup", "--data-dir", dir, backup)
		require.NoError(t, err)
		assert.Contains(t, out, "Journal backed up to")

		fresh := filepath.Join(t.TempDir(), "restored")
		out, err = execute(t, "journal", "restore", "--data-dir", fresh, backup)
		require.NoError(t, err)
		assert.Contains(t, out, "Journal restored successfully")

		out, err = execute(t, "journal", "list", "--data-dir", fresh)
		require.NoError(t, err)
		assert.Contains(t, out, "reply-pasmo")
	})

	t.Run("restore refuses a non-empty journal", func(t *testing.T) {
		_, err := execute(t, "journal", "restore", "--data-dir", dir, backup)
		assert.Error(t, err)
	})

	t.Run("restore needs a backup", func(t *testing.T) {
		_, err := execute(t, "journal", "restore", "--in-memory", filepath.Join(t.TempDir(), "missing"))
		assert.Error(t, err)
	})
}

func TestInvalidFlags(t *testing.T) {
	_, err := execute(t, "threads", "--in-memory", "--log-level", "loud")
	assert.Error(t, err)

	_, err = execute(t, "threads", "--in-memory", "--seed", "missing.yaml")
	assert.Error(t, err)

	_, err = execute(t, "search", "--in-memory", "--categories", "missing.yaml", "bali")
	assert.Error(t, err)
}

func TestServeStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := executeContext(t, ctx, "serve", "--in-memory", "--addr", "127.0.0.1:0")
	assert.NoError(t, err)
}

func TestServeBadAddress(t *testing.T) {
	_, err := execute(t, "serve", "--in-memory", "--addr", "127.0.0.1:-1")
	assert.Error(t, err)
}
