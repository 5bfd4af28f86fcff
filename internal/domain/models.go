package domain

import "time"

// Frame is one decoded telemetry burst ("Trame").
type Frame struct {
	FnID           *int32    `json:"fn_id" yaml:"fn_id"`
	LogicalCanal   int32     `json:"logical_canal" yaml:"logical_canal"`
	ContenuSegment []byte    `json:"contenu_segment" yaml:"contenu_segment,flow"`
	Freq           int32     `json:"freq" yaml:"freq"`
	Date           time.Time `json:"date" yaml:"date"`
	Localisation   *int32    `json:"localisation" yaml:"localisation"`
	Length         int32     `json:"length" yaml:"length"`
	SubType        int32     `json:"sub_type" yaml:"sub_type"`
}

// NewFrame returns a Frame with every field at its default. at is the
// timestamp used when the source carries none.
func NewFrame(at time.Time) Frame {
	return Frame{
		ContenuSegment: []byte{},
		Date:           at,
	}
}
