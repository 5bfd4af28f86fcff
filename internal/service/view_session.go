package service

import (
	"context"

	"go.uber.org/zap"

	"trameview/internal/port"
	"trameview/internal/viewer"
)

// ViewSession connects a Loader to the frame viewer. A failed load leaves
// the frames on screen untouched.
type ViewSession struct {
	loader *Loader
	nav    *viewer.Navigator
	logger *zap.Logger
	name   string
}

// NewViewSession creates a ViewSession with nothing loaded.
func NewViewSession(loader *Loader, logger *zap.Logger) *ViewSession {
	return &ViewSession{
		loader: loader,
		nav:    viewer.New(nil),
		logger: logger,
	}
}

func (s *ViewSession) Navigator() *viewer.Navigator {
	return s.nav
}

// Name returns the file whose frames are displayed.
func (s *ViewSession) Name() string {
	return s.name
}

// Open picks a new file, superseding any load still in flight.
func (s *ViewSession) Open(source port.FileSource) uint64 {
	return s.loader.Pick(source)
}

// Refresh applies a finished load if one is ready.
func (s *ViewSession) Refresh() bool {
	res, ok := s.loader.Poll()
	if !ok {
		return false
	}
	return s.Apply(res)
}

// Await blocks for the pending load and applies it. It returns the load's
// own error, if any.
func (s *ViewSession) Await(ctx context.Context) error {
	res, err := s.loader.Wait(ctx)
	if err != nil {
		return err
	}
	s.Apply(res)
	return res.Err
}

// Apply shows res's frames if res is current and succeeded. It reports
// whether the displayed sequence changed.
func (s *ViewSession) Apply(res LoadResult) bool {
	if res.Generation != s.loader.Generation() {
		s.logger.Debug("viewSession: ignoring stale result", zap.Uint64("generation", res.Generation))
		return false
	}
	if res.Err != nil {
		s.logger.Info("viewSession: load failed",
			zap.Stringer("request_id", res.RequestID),
			zap.Error(res.Err),
		)
		return false
	}
	s.nav.Replace(res.Frames)
	s.name = res.Name
	s.logger.Info("viewSession: loaded",
		zap.String("file", res.Name),
		zap.Int("frames", len(res.Frames)),
	)
	return true
}
