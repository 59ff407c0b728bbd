package handler_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/handler"
	"github.com/philipp01105/fanlog/handler/memoryhandler"
)

func TestHandlerFunc(t *testing.T) {
	var gotLevel core.Level
	var gotMsg string
	var gotCtx core.Context

	h := handler.HandlerFunc(func(level core.Level, message string, ctx core.Context) error {
		gotLevel, gotMsg, gotCtx = level, message, ctx
		return nil
	})

	ctx := core.Context{"k": "v"}
	require.NoError(t, h.Log(core.AlertLevel, "msg", ctx))
	assert.Equal(t, core.AlertLevel, gotLevel)
	assert.Equal(t, "msg", gotMsg)
	assert.Equal(t, ctx, gotCtx)
}

func TestDiscard(t *testing.T) {
	assert.NoError(t, handler.Discard.Log(core.InfoLevel, "m", nil))
}

func TestMultiHandler(t *testing.T) {
	r1 := memoryhandler.New()
	r2 := memoryhandler.New()

	multi := handler.NewMultiHandler(r1, r2)
	ctx := core.Context{"key": "value"}

	require.NoError(t, multi.Log(core.InfoLevel, "multi test", ctx))

	for _, r := range []*memoryhandler.Recorder{r1, r2} {
		records := r.Records()
		require.Len(t, records, 1)
		assert.Equal(t, "multi test", records[0].Message)
		assert.Equal(t, core.InfoLevel, records[0].Level)
		// same map instance for every handler
		records[0].Context["seen"] = true
	}
	assert.Equal(t, true, ctx["seen"])
}

func TestMultiHandler_Order(t *testing.T) {
	var order []int
	mk := func(i int) handler.Handler {
		return handler.HandlerFunc(func(core.Level, string, core.Context) error {
			order = append(order, i)
			return nil
		})
	}

	multi := handler.NewMultiHandler(mk(1), mk(2), mk(3))
	require.NoError(t, multi.Log(core.InfoLevel, "m", nil))
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestMultiHandler_StopsAtFirstError(t *testing.T) {
	first := memoryhandler.New()
	broken := memoryhandler.New()
	last := memoryhandler.New()
	boom := errors.New("boom")
	broken.FailWith(boom)

	multi := handler.NewMultiHandler(first, broken, last)

	err := multi.Log(core.ErrorLevel, "m", nil)
	assert.Same(t, boom, err)
	assert.Equal(t, 1, first.Len())
	assert.Equal(t, 1, broken.Len())
	assert.Zero(t, last.Len())
}

func TestMultiHandler_PanicPropagates(t *testing.T) {
	last := memoryhandler.New()
	multi := handler.NewMultiHandler(
		handler.HandlerFunc(func(core.Level, string, core.Context) error { panic("sink gone") }),
		last,
	)

	assert.PanicsWithValue(t, "sink gone", func() {
		_ = multi.Log(core.InfoLevel, "m", nil)
	})
	assert.Zero(t, last.Len())
}

func TestMultiHandler_Empty(t *testing.T) {
	multi := handler.NewMultiHandler()
	assert.NoError(t, multi.Log(core.InfoLevel, "m", nil))
	assert.Zero(t, multi.Len())
	assert.NoError(t, multi.Close())
}

func TestMultiHandler_CopiesInput(t *testing.T) {
	r1 := memoryhandler.New()
	r2 := memoryhandler.New()
	hs := []handler.Handler{r1}

	multi := handler.NewMultiHandler(hs...)
	hs[0] = r2

	require.NoError(t, multi.Log(core.InfoLevel, "m", nil))
	assert.Equal(t, 1, r1.Len())
	assert.Zero(t, r2.Len())

	got := multi.Handlers()
	got[0] = r2
	assert.Same(t, r1, multi.Handlers()[0])
}

type closer struct {
	memoryhandler.Recorder
	err    error
	closed int
}

func (c *closer) Close() error {
	c.closed++
	return c.err
}

func TestMultiHandler_Close(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	c1 := &closer{err: errA}
	c2 := &closer{}
	c3 := &closer{err: errB}

	multi := handler.NewMultiHandler(c1, memoryhandler.New(), c2, c3)
	err := multi.Close()

	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Equal(t, 1, c1.closed)
	assert.Equal(t, 1, c2.closed)
	assert.Equal(t, 1, c3.closed)
}

func TestStats(t *testing.T) {
	s := handler.NewStats()
	s.Observe(nil)
	s.Observe(nil)
	s.Observe(errors.New("x"))

	assert.Equal(t, handler.Snapshot{ProcessedTotal: 2, FailedTotal: 1}, s.GetSnapshot())

	s.Reset()
	assert.Equal(t, handler.Snapshot{}, s.GetSnapshot())
}

func TestMultiHandler_NilReceiver(t *testing.T) {
	var multi *handler.MultiHandler

	assert.NoError(t, multi.Log(core.InfoLevel, "m", nil))
	assert.Empty(t, multi.Handlers())
	assert.Equal(t, 0, multi.Len())
	assert.NoError(t, multi.Close())
}
