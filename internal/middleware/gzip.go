package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/0x24CaptainParrot/splitpay-service/internal/logger"
)

var gzipWriterPool = sync.Pool{
	New: func() interface{} {
		return gzip.NewWriter(io.Discard)
	},
}

// GzipCompressWriter picks the encoding once the status is known and only
// starts a gzip stream on the first body write.
type GzipCompressWriter struct {
	rw          http.ResponseWriter
	gzipWriter  *gzip.Writer
	wroteHeader bool
	compress    bool
}

func NewCompressWriter(rw http.ResponseWriter) *GzipCompressWriter {
	return &GzipCompressWriter{rw: rw}
}

func (cw *GzipCompressWriter) Close() error {
	if cw.gzipWriter == nil {
		return nil
	}
	err := cw.gzipWriter.Close()
	cw.gzipWriter.Reset(io.Discard)
	gzipWriterPool.Put(cw.gzipWriter)
	cw.gzipWriter = nil
	return err
}

func (cw *GzipCompressWriter) Write(p []byte) (int, error) {
	if !cw.wroteHeader {
		cw.WriteHeader(http.StatusOK)
	}
	if !cw.compress {
		return cw.rw.Write(p)
	}
	if cw.gzipWriter == nil {
		cw.gzipWriter = gzipWriterPool.Get().(*gzip.Writer)
		cw.gzipWriter.Reset(cw.rw)
	}
	return cw.gzipWriter.Write(p)
}

func (cw *GzipCompressWriter) Header() http.Header {
	return cw.rw.Header()
}

func (cw *GzipCompressWriter) WriteHeader(statusCode int) {
	if cw.wroteHeader {
		return
	}
	cw.wroteHeader = true
	cw.compress = bodyAllowed(statusCode)
	if cw.compress {
		cw.rw.Header().Set("Content-Encoding", "gzip")
		cw.rw.Header().Add("Vary", "Accept-Encoding")
		cw.rw.Header().Del("Content-Length")
	}
	cw.rw.WriteHeader(statusCode)
}

func bodyAllowed(statusCode int) bool {
	switch {
	case statusCode < http.StatusOK:
		return false
	case statusCode == http.StatusNoContent, statusCode == http.StatusNotModified:
		return false
	}
	return true
}

type GzipDecompressReader struct {
	body       io.ReadCloser
	gzipReader *gzip.Reader
}

func NewDecompressReader(r io.ReadCloser) (*GzipDecompressReader, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	return &GzipDecompressReader{
		body:       r,
		gzipReader: gz,
	}, nil
}

func (dr *GzipDecompressReader) Read(p []byte) (int, error) {
	return dr.gzipReader.Read(p)
}

func (dr *GzipDecompressReader) Close() error {
	if err := dr.gzipReader.Close(); err != nil {
		logger.Log.Sugar().Warnf("failed to close gzip reader: %v", err)
	}
	return dr.body.Close()
}

func CompressGzipMiddleware() func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				decompReader, err := NewDecompressReader(r.Body)
				if err != nil {
					http.Error(w, "failed to decompress request body", http.StatusBadRequest)
					return
				}
				defer decompReader.Close()

				r.Body = decompReader
				r.Header.Del("Content-Encoding")
			}

			if strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				compWriter := NewCompressWriter(w)
				defer func() {
					if err := compWriter.Close(); err != nil {
						logger.Log.Sugar().Warnf("failed to close gzip writer: %v", err)
					}
				}()

				w = compWriter
			}

			h.ServeHTTP(w, r)
		})
	}
}
