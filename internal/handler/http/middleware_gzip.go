// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGzipRequest transparently inflates request bodies sent with
// "Content-Encoding: gzip". Response compression is left to chi's Compress.
func withGzipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}

		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		if err := gzipReader.Reset(r.Body); err != nil {
			gzipReaderPool.Put(gzipReader)
			utils.WriteError(w, "Invalid gzip data", http.StatusBadRequest)
			return
		}

		r.Body = &pooledReadCloser{
			Reader: gzipReader,
			onClose: func() {
				gzipReader.Close()
				gzipReaderPool.Put(gzipReader)
			},
		}
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

type pooledReadCloser struct {
	io.Reader
	onClose func()
	once    sync.Once
}

func (p *pooledReadCloser) Close() error {
	if p.onClose != nil {
		p.once.Do(p.onClose)
	}
	return nil
}
