package httpx

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/rs/xid"

	"catalog_demo/pkg/contextx"
	"catalog_demo/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

//go:generate moq -rm -out sensitive_data_masker_mock.gen.go . sensitiveDataMasker:SensitiveDataMaskerMock
type sensitiveDataMasker interface {
	Mask([]byte) []byte
}

// LoggingRoundTripper implements http.RoundTripper interface and executes HTTP
// requests with logging.
type LoggingRoundTripper struct {
	next                http.RoundTripper
	sensitiveDataMasker sensitiveDataMasker
	logFieldMaxLen      int
}

// NewLoggingRoundTripper returns a new logging RoundTripper instance.
func NewLoggingRoundTripper(
	next http.RoundTripper,
	opts ...LoggingOption,
) LoggingRoundTripper {
	rt := LoggingRoundTripper{
		next:                next,
		sensitiveDataMasker: logx.NewNopSensitiveDataMasker(),
		logFieldMaxLen:      0,
	}

	for _, opt := range opts {
		opt(&rt)
	}

	return rt
}

type LoggingOption func(*LoggingRoundTripper)

// WithLogFieldMaxLen caps the dumped request and response fields. Zero
// keeps them whole.
func WithLogFieldMaxLen(logFieldMaxLen int) LoggingOption {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

func WithSensitiveDataMasker(sensitiveDataMasker sensitiveDataMasker) LoggingOption {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = sensitiveDataMasker
	}
}

// RoundTrip implements http.RoundTripper interface.
func (rt LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	requestID := xid.New().String()
	log := logger(ctx).With(slog.String(logx.FieldRequestID, requestID))

	if traceID, err := contextx.TraceIDFromContext(ctx); err == nil {
		log = log.With(logx.Stringer(logx.FieldTraceID, traceID))
	}

	reqBytes, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		log.Error("httputil.DumpRequestOut", logx.Error(err))
	}

	log.Info(
		logx.FieldHTTPRequest,
		slog.String(logx.FieldHTTPMethod, req.Method),
		logx.Stringer(logx.FieldURL, req.URL),
		slog.String(logx.FieldRequestBody, rt.truncate(reqBytes)),
	)

	start := time.Now()

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		log.Error(
			logx.FieldHTTPResponse,
			logx.Error(err),
			slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
		)

		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	respBytes, err := httputil.DumpResponse(resp, true)
	if err != nil {
		log.Error("httputil.DumpResponse", logx.Error(err))
	}

	log.Info(
		logx.FieldHTTPResponse,
		slog.Int(logx.FieldResponseStatus, resp.StatusCode),
		slog.String(logx.FieldResponseBody, rt.truncate(respBytes)),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)

	return resp, nil
}

// truncate masks dump and cuts it to logFieldMaxLen. Masking runs on the
// whole dump, a cut pattern would not match.
func (rt LoggingRoundTripper) truncate(dump []byte) string {
	dump = rt.sensitiveDataMasker.Mask(dump)

	if rt.logFieldMaxLen != 0 && len(dump) > rt.logFieldMaxLen {
		dump = dump[:rt.logFieldMaxLen]
	}

	return string(dump)
}
