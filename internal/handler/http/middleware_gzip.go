// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/restful-users/internal/logger"
	"github.com/MKhiriev/restful-users/internal/response"
)

const msgInvalidGzip = "Invalid gzip data"

var gzipWriterPool = sync.Pool{
	New: func() any { return gzip.NewWriter(io.Discard) },
}

var gzipReaderPool = sync.Pool{
	New: func() any { return new(gzip.Reader) },
}

// withGZip inflates request bodies sent with Content-Encoding: gzip and
// compresses responses for clients whose Accept-Encoding lists gzip.
// HEAD requests and responses without a body are never compressed.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasGzip(r.Header.Get("Content-Encoding")) && r.Body != nil {
			zr := gzipReaderPool.Get().(*gzip.Reader)
			if err := zr.Reset(r.Body); err != nil {
				gzipReaderPool.Put(zr)
				if err := response.New().RespondBadRequest(msgInvalidGzip, nil, 0).Write(w); err != nil {
					logger.FromRequest(r).Err(err).Msg("error writing response")
				}
				return
			}

			r.Body = &gzipRequestBody{reader: zr, source: r.Body}
			r.Header.Del("Content-Encoding")
			r.Header.Del("Content-Length")
			r.ContentLength = -1
		}

		if r.Method == http.MethodHead || !hasGzip(r.Header.Get("Accept-Encoding")) {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Add("Vary", "Accept-Encoding")
		gw := &gzipResponseWriter{ResponseWriter: w}
		defer gw.finish()

		next.ServeHTTP(gw, r)
	})
}

func hasGzip(header string) bool {
	for _, part := range strings.Split(header, ",") {
		name, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if strings.EqualFold(name, "gzip") {
			return true
		}
	}
	return false
}

// gzipRequestBody returns its reader to the pool on Close.
type gzipRequestBody struct {
	reader *gzip.Reader
	source io.ReadCloser
	closed bool
}

func (b *gzipRequestBody) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *gzipRequestBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	_ = b.reader.Close()
	gzipReaderPool.Put(b.reader)
	return b.source.Close()
}

// gzipResponseWriter takes a pooled gzip.Writer on the first body write.
// Statuses that cannot carry a body pass through uncompressed.
type gzipResponseWriter struct {
	http.ResponseWriter

	zw          *gzip.Writer
	wroteHeader bool
	bodyless    bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	w.bodyless = statusCode == http.StatusNoContent || statusCode == http.StatusNotModified
	if !w.bodyless {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.bodyless {
		return w.ResponseWriter.Write(data)
	}

	if w.zw == nil {
		w.zw = gzipWriterPool.Get().(*gzip.Writer)
		w.zw.Reset(w.ResponseWriter)
	}
	return w.zw.Write(data)
}

// finish flushes the gzip stream and returns the writer to the pool. A
// response with Content-Encoding: gzip but no body still gets a valid empty
// stream.
func (w *gzipResponseWriter) finish() {
	if w.zw == nil {
		if !w.wroteHeader || w.bodyless {
			return
		}
		w.zw = gzipWriterPool.Get().(*gzip.Writer)
		w.zw.Reset(w.ResponseWriter)
	}

	_ = w.zw.Close()
	w.zw.Reset(io.Discard)
	gzipWriterPool.Put(w.zw)
}
