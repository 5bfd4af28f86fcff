package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"trameview/internal/beanxml"
	"trameview/internal/domain"
	"trameview/internal/service"
	"trameview/internal/trame"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<java version="1.8" class="java.beans.XMLDecoder">
 <object class="Trame">
  <void property="canal_Logique"><int>3</int></void>
  <void property="longueur"><int>2</int></void>
  <void property="contenuSegment">
   <array class="byte" length="2">
    <void index="0"><byte>1</byte></void>
    <void index="1"><byte>-2</byte></void>
   </array>
  </void>
 </object>
 <object class="Trame"/>
</java>`

func newDecodeService(t *testing.T) (service.DecodeService, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	clock := func() time.Time { return time.Unix(0, 0) }
	return service.NewDecodeService(trame.NewTransformer(trame.WithClock(clock)), zap.New(core)), logs
}

func TestDecodeService_Decode(t *testing.T) {
	svc, logs := newDecodeService(t)

	frames, err := svc.Decode(context.Background(), "capture.xml", sampleXML)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, int32(3), frames[0].LogicalCanal)
	assert.Equal(t, int32(2), frames[0].Length)
	assert.Equal(t, []byte{1, 254}, frames[0].ContenuSegment)

	entries := logs.FilterMessage("decodeService: decoded").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["frames"])
}

func TestDecodeService_ParseError(t *testing.T) {
	svc, logs := newDecodeService(t)

	frames, err := svc.Decode(context.Background(), "broken.xml", "<java version=\"1\" class=\"c\"><object")
	require.Error(t, err)
	assert.Nil(t, frames)

	var perr *beanxml.ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Contains(t, err.Error(), "broken.xml")

	entries := logs.FilterMessage("decodeService: parse failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
}

func TestDecodeService_TransformError(t *testing.T) {
	svc, logs := newDecodeService(t)

	raw := `<java version="1" class="c"><object class="T"><void property="subType"><string>x</string></void></object></java>`
	frames, err := svc.Decode(context.Background(), "bad.xml", raw)
	require.Error(t, err)
	assert.Nil(t, frames)
	assert.ErrorIs(t, err, domain.ErrMissingField)

	entries := logs.FilterMessage("decodeService: transform failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestDecodeService_CanceledContext(t *testing.T) {
	svc, _ := newDecodeService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Decode(ctx, "capture.xml", sampleXML)
	assert.ErrorIs(t, err, context.Canceled)
}
