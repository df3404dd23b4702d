package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"travelthreads/app/metrics"
	"travelthreads/app/models"
	"travelthreads/app/repositories"
	"travelthreads/app/thread"
)

var ErrStopped = errors.New("thread service stopped")

// Outcome reports what a submitted operation did.
type Outcome struct {
	Applied  bool             `json:"applied"`
	Mutation *models.Mutation `json:"mutation,omitempty"`
}

type request struct {
	op    thread.Op
	reply chan Outcome
}

// ThreadService owns the live discussion tree. Operations are applied one at
// a time by the goroutine started with Run; readers take snapshots.
type ThreadService struct {
	mutator  *thread.Mutator
	journal  repositories.MutationRepository
	logger   *slog.Logger
	requests chan request
	done     chan struct{}
	current  atomic.Pointer[thread.Tree]
}

// NewThreadService creates a service starting from initial. journal may be
// nil, in which case nothing is recorded.
func NewThreadService(initial thread.Tree, mutator *thread.Mutator, journal repositories.MutationRepository, logger *slog.Logger) *ThreadService {
	if mutator == nil {
		mutator = thread.NewMutator()
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &ThreadService{
		mutator:  mutator,
		journal:  journal,
		logger:   logger.With("component", "threads"),
		requests: make(chan request),
		done:     make(chan struct{}),
	}
	s.current.Store(&initial)
	return s
}

// Run applies submitted operations until ctx is cancelled. It must be
// called exactly once.
func (s *ThreadService) Run(ctx context.Context) {
	defer close(s.done)
	s.logger.Info("thread service started", "posts", s.Snapshot().Len())

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("thread service stopped")
			return
		case req := <-s.requests:
			req.reply <- s.apply(req.op)
		}
	}
}

func (s *ThreadService) apply(op thread.Op) Outcome {
	next, m := s.mutator.Apply(s.Snapshot(), op)
	if m == nil {
		metrics.MutationsIgnored.WithLabelValues(string(op.Kind)).Inc()
		s.logger.Debug("operation ignored", "kind", op.Kind, "post", op.PostID, "reply", op.ReplyID)
		return Outcome{}
	}

	s.current.Store(&next)
	metrics.MutationsApplied.WithLabelValues(string(m.Kind)).Inc()

	if s.journal != nil {
		if err := s.journal.Append(m); err != nil {
			metrics.JournalFailures.Inc()
			s.logger.Error("failed to journal mutation", "kind", m.Kind, "error", err)
		}
	}
	s.logger.Debug("mutation applied", "kind", m.Kind, "seq", m.Seq, "node", m.NodeID)
	return Outcome{Applied: true, Mutation: m}
}

// Snapshot returns the current tree. The result is immutable and stays
// valid after later mutations.
func (s *ThreadService) Snapshot() thread.Tree {
	return *s.current.Load()
}

// Submit hands op to the service and waits for it to be applied.
func (s *ThreadService) Submit(ctx context.Context, op thread.Op) (Outcome, error) {
	req := request{op: op, reply: make(chan Outcome, 1)}
	select {
	case s.requests <- req:
	case <-s.done:
		return Outcome{}, ErrStopped
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}

	select {
	case out := <-req.reply:
		return out, nil
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

func (s *ThreadService) AddPost(ctx context.Context, text string) (Outcome, error) {
	return s.Submit(ctx, thread.Op{Kind: models.MutationAddPost, Text: text})
}

func (s *ThreadService) AddReplyToPost(ctx context.Context, postID, text string) (Outcome, error) {
	return s.Submit(ctx, thread.Op{Kind: models.MutationAddReplyToPost, PostID: postID, Text: text})
}

func (s *ThreadService) AddReplyToReply(ctx context.Context, postID, replyID, text string) (Outcome, error) {
	return s.Submit(ctx, thread.Op{Kind: models.MutationAddReplyToReply, PostID: postID, ReplyID: replyID, Text: text})
}

func (s *ThreadService) ToggleCollapse(ctx context.Context, postID, replyID string) (Outcome, error) {
	return s.Submit(ctx, thread.Op{Kind: models.MutationToggleCollapse, PostID: postID, ReplyID: replyID})
}

func (s *ThreadService) ToggleLike(ctx context.Context, postID string) (Outcome, error) {
	return s.Submit(ctx, thread.Op{Kind: models.MutationToggleLike, PostID: postID})
}

// Restore replays the whole journal on top of base.
func Restore(base thread.Tree, journal repositories.MutationRepository) (thread.Tree, int, error) {
	mutations, err := journal.List(0, 0)
	if err != nil {
		return thread.Tree{}, 0, fmt.Errorf("failed to read journal: %w", err)
	}
	t, applied := thread.Replay(base, mutations)
	return t, applied, nil
}
