package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"trameview/internal/beanxml"
	"trameview/internal/domain"
	"trameview/internal/trame"
)

// DecodeService defines the bean XML to frame decoding contract.
// It satisfies port.FrameDecoder.
type DecodeService interface {
	Decode(ctx context.Context, name, text string) ([]domain.Frame, error)
}

type decodeService struct {
	transformer *trame.Transformer
	logger      *zap.Logger
}

// NewDecodeService creates a new DecodeService implementation.
func NewDecodeService(transformer *trame.Transformer, logger *zap.Logger) DecodeService {
	return &decodeService{
		transformer: transformer,
		logger:      logger,
	}
}

func (s *decodeService) Decode(ctx context.Context, name, text string) ([]domain.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := beanxml.Parse(text)
	if err != nil {
		s.logger.Info("decodeService: parse failed", zap.String("file", name), zap.Error(err))
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	frames, err := s.transformer.Transform(doc)
	if err != nil {
		s.logger.Warn("decodeService: transform failed", zap.String("file", name), zap.Error(err))
		return nil, fmt.Errorf("transform %s: %w", name, err)
	}

	s.logger.Debug("decodeService: decoded",
		zap.String("file", name),
		zap.String("version", doc.Version),
		zap.Int("frames", len(frames)),
	)
	return frames, nil
}
