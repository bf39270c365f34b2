package logger

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type TrackRequestWriter struct {
	w       http.ResponseWriter
	reqInfo *ResponseInfo
}

type ResponseInfo struct {
	code int
	size int
}

func (tw *TrackRequestWriter) Write(b []byte) (int, error) {
	if tw.reqInfo.code == 0 {
		tw.reqInfo.code = http.StatusOK
	}
	n, err := tw.w.Write(b)
	tw.reqInfo.size += n
	return n, err
}

func (tw *TrackRequestWriter) WriteHeader(statusCode int) {
	tw.reqInfo.code = statusCode
	tw.w.WriteHeader(statusCode)
}

func (tw *TrackRequestWriter) Header() http.Header {
	return tw.w.Header()
}

func LoggingReqResMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqInfo := &ResponseInfo{}
			trw := &TrackRequestWriter{
				w:       w,
				reqInfo: reqInfo,
			}

			start := time.Now()
			h.ServeHTTP(trw, r)
			elapsed := time.Since(start)

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("uri", r.RequestURI),
				zap.Int("status", reqInfo.code),
				zap.Int("size", reqInfo.size),
				zap.Duration("elapsed", elapsed),
			}
			if reqInfo.code >= http.StatusInternalServerError {
				logger.Warn("checkout request failed", fields...)
				return
			}
			logger.Info("checkout request", fields...)
		})
	}
}
