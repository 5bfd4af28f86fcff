package port

import (
	"context"

	"trameview/internal/domain"
)

// FrameDecoder turns bean XML text into frames.
type FrameDecoder interface {
	Decode(ctx context.Context, name, text string) ([]domain.Frame, error)
}
