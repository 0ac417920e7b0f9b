// Package providers contains the candidates shipped with this module.
//
// Register adds them to a discovery registry:
//
//	otel-env   resolver   an OpenTelemetry TracerClient configured from the
//	                      standard OTEL_* environment variables
//	noop       tracer     tracer.Noop(), the last resort
//	logging    converter  logs every started span at debug level (only with WithLogger)
//
// RegisterStdout adds the "stdout" factory, which always builds a TracerClient
// exporting to a writer. Being a factory it wins over every resolver, so it is
// kept out of Register.
package providers
