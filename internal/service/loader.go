package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trameview/internal/domain"
	"trameview/internal/port"
)

// ErrNoPendingLoad is returned by Wait when nothing is picked or the last
// result was already taken.
var ErrNoPendingLoad = errors.New("no load pending")

// LoadResult is the outcome of one pick.
type LoadResult struct {
	Generation uint64
	RequestID  uuid.UUID
	Name       string
	Frames     []domain.Frame
	Err        error
}

// Loader reads and decodes one picked file at a time in the background.
// It holds a single result slot: each Pick starts a new generation, and a
// result from an older generation is dropped when it lands instead of
// being delivered. Superseded work is not interrupted.
type Loader struct {
	decoder port.FrameDecoder
	logger  *zap.Logger

	mu      sync.Mutex
	gen     uint64
	pending bool
	slot    *LoadResult
	changed chan struct{} // closed and replaced on every state change
}

// NewLoader creates a Loader that decodes with decoder.
func NewLoader(decoder port.FrameDecoder, logger *zap.Logger) *Loader {
	return &Loader{
		decoder: decoder,
		logger:  logger,
		changed: make(chan struct{}),
	}
}

// Pick starts loading from source and returns the new generation.
func (l *Loader) Pick(source port.FileSource) uint64 {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.pending = true
	l.slot = nil
	l.notify()
	l.mu.Unlock()

	id := uuid.New()
	l.logger.Debug("loader: pick started", zap.Uint64("generation", gen), zap.Stringer("request_id", id))

	go l.run(gen, id, source)
	return gen
}

// Generation returns the generation of the most recent Pick.
func (l *Loader) Generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen
}

// Poll takes the current generation's result if it is ready. The slot is
// empty afterwards.
func (l *Loader) Poll() (LoadResult, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.slot == nil {
		return LoadResult{}, false
	}
	res := *l.slot
	l.slot = nil
	return res, true
}

// Wait blocks until the current generation's result is ready and takes it.
// A Pick made while waiting moves the wait on to the new generation.
func (l *Loader) Wait(ctx context.Context) (LoadResult, error) {
	for {
		l.mu.Lock()
		if l.slot != nil {
			res := *l.slot
			l.slot = nil
			l.mu.Unlock()
			return res, nil
		}
		if !l.pending {
			l.mu.Unlock()
			return LoadResult{}, ErrNoPendingLoad
		}
		changed := l.changed
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return LoadResult{}, ctx.Err()
		case <-changed:
		}
	}
}

func (l *Loader) run(gen uint64, id uuid.UUID, source port.FileSource) {
	ctx := context.Background()
	res := LoadResult{Generation: gen, RequestID: id}

	file, err := source.Fetch(ctx)
	if err != nil {
		res.Err = err
	} else {
		res.Name = file.Name
		res.Frames, res.Err = l.decoder.Decode(ctx, file.Name, file.Text)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		l.logger.Debug("loader: dropped stale result",
			zap.Uint64("generation", gen),
			zap.Uint64("current", l.gen),
			zap.Stringer("request_id", id),
		)
		return
	}
	l.pending = false
	l.slot = &res
	l.notify()
	l.logger.Debug("loader: result ready",
		zap.Uint64("generation", gen),
		zap.Stringer("request_id", id),
		zap.Int("frames", len(res.Frames)),
		zap.Error(res.Err),
	)
}

// notify wakes every Wait. Callers hold mu.
func (l *Loader) notify() {
	close(l.changed)
	l.changed = make(chan struct{})
}
