// Package tracer defines the Tracer facility that the tracerresolver package
// locates at runtime, together with the implementations shipped with this module.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" idiom:
//   - Tracer and Span are the contracts every candidate implementation satisfies
//   - *TracerClient is the OpenTelemetry SDK backed implementation
//   - *NoopTracer (see Noop) records nothing and is the usual last-resort fallback
//
// # Basic Usage
//
//	client, err := tracer.NewClient(tracer.Config{
//		ServiceName: "checkout",
//		AppEnv:      "production",
//		Exporter:    tracer.ExporterOTLP,
//	})
//	if err != nil {
//		return err
//	}
//	defer client.Shutdown(context.Background())
//
//	ctx, span := client.StartSpan(ctx, "charge-card")
//	defer span.End()
//	span.SetAttributes(map[string]interface{}{"order.id": orderID})
//
// # Exporters
//
//   - "none" or empty: spans are recorded but never leave the process
//   - "stdout": spans are written as JSON to Config.Writer as they end
//   - "otlp": spans are batched to an OTLP/HTTP collector configured through the
//     standard OTEL_EXPORTER_OTLP_* environment variables
//
// # Propagation
//
// GetCarrier and SetCarrierOnContext move W3C trace context and baggage across
// process boundaries:
//
//	headers := t.GetCarrier(ctx)          // on the sending side
//	ctx = t.SetCarrierOnContext(ctx, hdr) // on the receiving side
//
// # Thread Safety
//
// TracerClient, NoopTracer and their spans are safe for concurrent use.
package tracer
