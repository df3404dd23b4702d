package thread

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"travelthreads/app/ids"
	"travelthreads/app/models"
)

func reply(id, text string, children ...*models.Reply) *models.Reply {
	if children == nil {
		children = []*models.Reply{}
	}
	return &models.Reply{ID: id, Author: "you", Handle: "you", Time: "now", Text: text, Replies: children}
}

// fixture mirrors the demo feed: a post with a two-level thread and an
// untouched second post.
func fixture() Tree {
	return NewTree(
		&models.Post{
			ID: "p1", Author: "bali_nomad", Handle: "bali_nomad", Time: "2h",
			Text:  "Bali: Canggu. Wifi everywhere, cheap food",
			Likes: 12,
			Replies: []*models.Reply{
				reply("r1", "yes", reply("r2", "yes too")),
				reply("r3", "sunsets are great"),
			},
		},
		&models.Post{
			ID: "p2", Author: "tokyo_weekender", Handle: "tokyo_weekender", Time: "4h",
			Text:    "Tokyo: Suica + Google Maps",
			Likes:   31,
			Replies: []*models.Reply{},
		},
	)
}

func newTestMutator() *Mutator {
	return NewMutator(WithIDs(ids.NewCounter("n")))
}

func snapshot(t *testing.T, tree Tree) string {
	t.Helper()
	data, err := json.Marshal(tree)
	require.NoError(t, err)
	return string(data)
}
