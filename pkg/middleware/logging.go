package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insights-api/pkg/log"
)

// slowRequestThreshold marca requisições de análise lentas
const slowRequestThreshold = 500 * time.Millisecond

const correlationHeader = "X-Correlation-ID"

// operações atendidas por cada rota; rotas fora do mapa são registradas sem operação
var routeOperations = map[string]string{
	"/api/summary":         "summary",
	"/api/drivers":         "drivers",
	"/api/risk-factors":    "risk_factors",
	"/api/recommendations": "recommendations",
	"/api/digest/run":      "analytics_digest",
	"/api/digest/status":   "analytics_digest_status",
	"/health":              "healthcheck",
}

// OperationFor retorna a operação de análise associada ao caminho
func OperationFor(path string) (string, bool) {
	operation, ok := routeOperations[path]
	return operation, ok
}

// LoggingMiddleware registra cada requisição com o ID de correlação e a operação de análise.
// A operação também vai para o contexto, e os logs dos handlers e do serviço a herdam.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			operation, known := OperationFor(r.URL.Path)
			if known {
				ctx = log.WithOperationContext(ctx, operation)
			}
			r = r.WithContext(ctx)
			w.Header().Set(correlationHeader, correlationID)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"query":       r.URL.RawQuery,
				"remote_addr": r.RemoteAddr,
				"origin":      r.Header.Get("Origin"),
			}).Debug("→ Iniciando requisição")

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			fields := log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": lrw.statusCode,
				"duration_ms": elapsed.Milliseconds(),
			}
			if known {
				fields["analytics_response_bytes"] = lrw.bytes
			}
			logger := log.ForContext(ctx).WithFields(fields)

			msg := fmt.Sprintf("%s Completada em %s", statusSymbol(lrw.statusCode), formatDuration(elapsed))
			switch {
			case lrw.statusCode >= 500:
				logger.Error(msg)
			case lrw.statusCode >= 400:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}

			if known && elapsed > slowRequestThreshold {
				logger.Warnf("⚠ Análise lenta: %s (%dms)", operation, elapsed.Milliseconds())
			}
		})
	}
}

func statusSymbol(code int) string {
	if code >= 400 {
		return "✗"
	}
	return "✓"
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter captura o status e o tamanho do corpo respondido
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	bytes      int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	n, err := lrw.ResponseWriter.Write(b)
	lrw.bytes += n
	return n, err
}

// LogPanicMiddleware transforma um panic em 500 no formato de erro da API.
// Fica antes do LoggingMiddleware, então o ID de correlação é lido do cabeçalho já escrito.
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackTrace := string(stack[:runtime.Stack(stack, false)])

					logger := log.L.WithFields(log.Fields{
						"correlation_id": w.Header().Get(correlationHeader),
						"error":          err,
						"method":         r.Method,
						"path":           r.URL.Path,
					})
					if operation, ok := OperationFor(r.URL.Path); ok {
						logger = logger.WithOperation(operation)
					}

					if log.IsDevelopment() {
						logger.Error("❌ PANIC na aplicação")
						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						logger.WithField("stack_trace", stackTrace).Error("Erro não tratado na aplicação")
					}

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
