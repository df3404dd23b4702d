package thread

import (
	"slices"

	"travelthreads/app/models"
)

// step is one hop on the way from a top-level reply to a target reply.
type step struct {
	index int
	reply *models.Reply
}

// locate searches replies depth first without recursion and returns the
// chain of steps ending at replyID, or nil. Each node is visited at most once.
func locate(replies []*models.Reply, replyID string) []step {
	type frame struct {
		list []*models.Reply
		next int
	}

	stack := []frame{{list: replies}}
	var path []step
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.list) {
			stack = stack[:len(stack)-1]
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
			continue
		}

		i := top.next
		top.next++
		r := top.list[i]
		path = append(path, step{index: i, reply: r})
		if r.ID == replyID {
			return path
		}
		stack = append(stack, frame{list: r.Replies})
	}
	return nil
}

// replaceAlong copies each reply on path, lets edit change the last copy and
// returns a new top-level list. Siblings and untouched subtrees are shared.
func replaceAlong(replies []*models.Reply, path []step, edit func(r *models.Reply)) []*models.Reply {
	var child *models.Reply
	for i := len(path) - 1; i >= 0; i-- {
		cp := *path[i].reply
		if i == len(path)-1 {
			edit(&cp)
		} else {
			cp.Replies = withReplaced(cp.Replies, path[i+1].index, child)
		}
		child = &cp
	}
	return withReplaced(replies, path[0].index, child)
}

func withReplaced[T any](list []*T, i int, v *T) []*T {
	out := slices.Clone(list)
	out[i] = v
	return out
}

// appended never writes into list's spare capacity, so older versions that
// share the backing array stay intact.
func appended[T any](list []*T, v *T) []*T {
	out := make([]*T, len(list), len(list)+1)
	copy(out, list)
	return append(out, v)
}
