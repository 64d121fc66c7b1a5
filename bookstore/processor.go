package bookstore

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/ZulvikaK/bookstore"

// Processor runs a Flow over a batch of input records, strictly in order.
type Processor struct {
	Pacer  Pacer
	Logger *zap.Logger
	Tracer trace.Tracer
}

// NewProcessor returns a Processor using the global tracer provider.
// A nil pacer means NoDelay and a nil logger discards logs.
func NewProcessor(pacer Pacer, logger *zap.Logger) *Processor {
	if pacer == nil {
		pacer = NoDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		Pacer:  pacer,
		Logger: logger,
		Tracer: otel.Tracer(tracerName),
	}
}

// Run returns exactly one output record per input, in input order.
// Per-record failures become row data; nothing aborts the batch.
func (p *Processor) Run(ctx context.Context, flow Flow, inputs []InputRecord) []OutputRecord {
	results := make([]OutputRecord, 0, len(inputs))
	logger := p.Logger.With(zap.String("flow", string(flow.Name())))

	for i, in := range inputs {
		recordCtx, span := p.Tracer.Start(ctx, "bookstore."+string(flow.Name()),
			trace.WithAttributes(attribute.Int("bookstore.line", in.Line)))
		out, requested := flow.Handle(recordCtx, in)
		outcome := out.Outcome()
		span.SetAttributes(
			attribute.String("bookstore.outcome", outcome.Kind.String()),
			attribute.Int("http.status_code", outcome.StatusCode),
			attribute.Bool("bookstore.requested", requested),
		)
		if !outcome.IsSuccess() {
			span.SetStatus(codes.Error, outcome.Message)
		}
		span.End()

		results = append(results, out)
		logger.Info("Processed record",
			zap.Int("line", in.Line),
			zap.String("outcome", outcome.Kind.String()),
			zap.Int("status", outcome.StatusCode),
			zap.String("message", outcome.Message),
			zap.Bool("requested", requested))

		if requested && i < len(inputs)-1 {
			logger.Debug("Waiting before the next request")
			if err := p.Pacer.Wait(ctx); err != nil {
				logger.Warn("Pause interrupted", zap.Error(err))
			}
		}
	}
	return results
}

// Summary counts the outcomes of a finished batch.
type Summary struct {
	Total  int
	ByKind map[OutcomeKind]int
}

func Summarize(results []OutputRecord) Summary {
	s := Summary{Total: len(results), ByKind: make(map[OutcomeKind]int)}
	for _, r := range results {
		s.ByKind[r.Outcome().Kind]++
	}
	return s
}
