package view

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/AnatoleLucet/sigui"
	"github.com/AnatoleLucet/sigui/layout"
	"github.com/AnatoleLucet/sigui/style"
)

var t0 = time.Unix(1000, 0)

func newTree(t *testing.T, opts ...Option) *Tree {
	t.Helper()
	t.Cleanup(sigui.Shutdown)

	return NewTree(opts...)
}

func update(w *Window) Stats {
	return w.Update(context.Background(), t0)
}

type fill struct {
	Transform layout.Affine
	Rect      layout.Rect
	Color     style.RGBA
	Radius    float64
}

type recordingPainter struct {
	transform layout.Affine
	fills     []fill
}

func (p *recordingPainter) SetTransform(t layout.Affine) { p.transform = t }

func (p *recordingPainter) FillRect(r layout.Rect, c style.RGBA, radius float64) {
	p.fills = append(p.fills, fill{p.transform, r, c, radius})
}

type recordingTracer struct {
	noop.Tracer
	spans []string
}

func (r *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	r.spans = append(r.spans, name)
	return r.Tracer.Start(ctx, name, opts...)
}

type stateView struct {
	states []any
}

func (v *stateView) Update(t *Tree, id ID, state any) {
	v.states = append(v.states, state)
}

func (v *stateView) Paint(Painter, ID, layout.Size, *style.Computed) {}

func recovered(fn func()) (v any) {
	defer func() { v = recover() }()
	fn()
	return nil
}
