package trame

import (
	"time"

	"trameview/internal/beanxml"
	"trameview/internal/domain"
)

// Property names read from each bean. Anything else is ignored.
const (
	PropFN             = "FN"
	PropCanalLogique   = "canal_Logique"
	PropContenuSegment = "contenuSegment"
	PropHeure          = "heure"
	PropLongueur       = "longueur"
	PropSubType        = "subType"
)

// Transformer projects a bean document onto frames.
type Transformer struct {
	now func() time.Time
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithClock sets the clock used for frames whose source has no timestamp.
func WithClock(now func() time.Time) Option {
	return func(t *Transformer) {
		t.now = now
	}
}

// NewTransformer creates a Transformer using the wall clock unless overridden.
func NewTransformer(opts ...Option) *Transformer {
	t := &Transformer{now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var defaultTransformer = NewTransformer()

// Transform converts doc with the wall clock.
func Transform(doc *beanxml.Document) ([]domain.Frame, error) {
	return defaultTransformer.Transform(doc)
}

// Transform returns exactly one frame per object, in document order. Either
// every frame is returned or, on a *MissingFieldError, none is. A nil doc
// fails with ErrNilDocument.
func (t *Transformer) Transform(doc *beanxml.Document) ([]domain.Frame, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	now := t.now().UTC()
	frames := make([]domain.Frame, 0, len(doc.Objects))
	for i := range doc.Objects {
		frame := domain.NewFrame(now)
		// Properties apply in order, so a repeated name is last-write-wins.
		for _, prop := range doc.Objects[i].Properties {
			if err := apply(&frame, prop); err != nil {
				err.Object = i
				return nil, err
			}
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

func apply(f *domain.Frame, prop beanxml.Property) *MissingFieldError {
	switch prop.Name {
	case PropFN:
		if v, ok := prop.Value.(beanxml.Long); ok {
			id := int32(v)
			f.FnID = &id
		} else {
			f.FnID = nil
		}
	case PropCanalLogique:
		if v, ok := prop.Value.(beanxml.Int); ok {
			f.LogicalCanal = int32(v)
		}
	case PropContenuSegment:
		if arr, ok := prop.Value.(*beanxml.Array); ok {
			for _, b := range arr.Elements {
				f.ContenuSegment = append(f.ContenuSegment, uint8(b.Value))
			}
		}
	case PropHeure:
		if d, ok := prop.Value.(*beanxml.Date); ok && d.Millis != nil {
			f.Date = time.UnixMilli(*d.Millis).UTC()
		}
	// TODO: confirm with the capture producers whether longueur and subType
	// should fall back to defaults like the other properties. Until then a
	// wrong value kind aborts the document.
	case PropLongueur:
		v, ok := prop.Value.(beanxml.Int)
		if !ok {
			return missing(prop, beanxml.KindInt)
		}
		f.Length = int32(v)
	case PropSubType:
		v, ok := prop.Value.(beanxml.Byte)
		if !ok {
			return missing(prop, beanxml.KindByte)
		}
		f.SubType = int32(v)
	}
	return nil
}

func missing(prop beanxml.Property, want beanxml.Kind) *MissingFieldError {
	return &MissingFieldError{
		Property: prop.Name,
		Want:     want,
		Got:      beanxml.KindOf(prop.Value),
	}
}
