package reactive

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// EnableTracing wires tracer to o's scheduler so every flush becomes a span
// (attributed with the exec cycle and number of effects run) and every
// effect run within it becomes a child span — letting a host correlate a
// batch of signal writes with the effects it ultimately triggered.
func (o *Owner) EnableTracing(ctx context.Context, tracer trace.Tracer) {
	sched := o.scheduler()

	var flushCtx context.Context
	var flushSpan trace.Span

	prevStart := sched.onFlushStart
	sched.onFlushStart = func(execCount uint64) {
		flushCtx, flushSpan = tracer.Start(ctx, "reactive.flush")
		flushSpan.SetAttributes(execCountAttr(execCount))
		if prevStart != nil {
			prevStart(execCount)
		}
	}

	prevRun := sched.onEffectRun
	sched.onEffectRun = func(id uint64) {
		if flushCtx != nil {
			_, effectSpan := tracer.Start(flushCtx, fmt.Sprintf("reactive.effect.%d", id))
			effectSpan.End()
		}
		if prevRun != nil {
			prevRun(id)
		}
	}

	prevEnd := sched.onFlushEnd
	sched.onFlushEnd = func(execCount uint64, effectsRun int) {
		if flushSpan != nil {
			flushSpan.SetAttributes(effectsRunAttr(effectsRun))
			flushSpan.End()
			flushSpan = nil
			flushCtx = nil
		}
		if prevEnd != nil {
			prevEnd(execCount, effectsRun)
		}
	}
}

func execCountAttr(execCount uint64) attribute.KeyValue {
	return attribute.Int64("fibre.reactive.exec_count", int64(execCount))
}

func effectsRunAttr(n int) attribute.KeyValue {
	return attribute.Int("fibre.reactive.effects_run", n)
}
