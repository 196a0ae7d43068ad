// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Degis-Insurance/Degis-Core-sub000/log"
)

// mockLogger records the context of Info and Warn calls.
type mockLogger struct {
	loggedData []any
}

func (m *mockLogger) With(_ ...any) log.Logger { return m }

func (m *mockLogger) New(_ ...any) log.Logger { return m }

func (m *mockLogger) Log(_ slog.Level, _ string, _ ...any) {}

func (m *mockLogger) Write(_ slog.Level, _ string, _ ...any) {}

func (m *mockLogger) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (m *mockLogger) Handler() slog.Handler { return nil }

func (m *mockLogger) Trace(_ string, _ ...any) {}

func (m *mockLogger) Debug(_ string, _ ...any) {}

func (m *mockLogger) Error(_ string, _ ...any) {}

func (m *mockLogger) Crit(_ string, _ ...any) {}

func (m *mockLogger) Info(_ string, ctx ...any) {
	m.loggedData = append(m.loggedData, ctx...)
}

func (m *mockLogger) Warn(_ string, ctx ...any) {
	m.loggedData = append(m.loggedData, ctx...)
}

func respond(code int, delay time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(delay)
		w.WriteHeader(code)
		w.Write([]byte(http.StatusText(code)))
	}
}

func TestRequestLoggerHandler(t *testing.T) {
	tests := []struct {
		name                 string
		handler              http.HandlerFunc
		enabled              bool
		slowQueriesThreshold time.Duration
		log5xxErrors         bool
		shouldLog            bool
	}{
		{"all logging enabled", respond(http.StatusOK, 0), true, 0, false, true},
		{"all logging disabled", respond(http.StatusOK, 0), false, 0, false, false},
		{"slow request over threshold", respond(http.StatusOK, 15*time.Millisecond), false, 10 * time.Millisecond, false, true},
		{"fast request under threshold", respond(http.StatusOK, 0), false, 20 * time.Millisecond, false, false},
		{"5xx logged", respond(http.StatusInternalServerError, 0), false, 0, true, true},
		{"503 logged", respond(http.StatusServiceUnavailable, 0), false, 0, true, true},
		{"5xx not logged when disabled", respond(http.StatusInternalServerError, 0), false, 0, false, false},
		{"4xx not logged", respond(http.StatusBadRequest, 0), false, 0, true, false},
		{
			"implicit 200",
			func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("OK")) },
			false, 0, true, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLog := &mockLogger{}
			enabled := atomic.Bool{}
			enabled.Store(tt.enabled)

			handler := RequestLoggerMiddleware(mockLog, &enabled, tt.slowQueriesThreshold, tt.log5xxErrors)(tt.handler)

			reqBody := `{"caller":"0x0000000000000000000000000000000000000001"}`
			req := httptest.NewRequest(http.MethodPost, "http://example.com/pools/1/stake", strings.NewReader(reqBody))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if !tt.shouldLog {
				assert.Empty(t, mockLog.loggedData)
				return
			}
			assert.Contains(t, mockLog.loggedData, "http://example.com/pools/1/stake")
			assert.Contains(t, mockLog.loggedData, http.MethodPost)
			assert.Contains(t, mockLog.loggedData, reqBody)
			assert.Contains(t, mockLog.loggedData, rr.Code)
		})
	}
}

func TestRequestLoggerKeepsBody(t *testing.T) {
	enabled := atomic.Bool{}
	enabled.Store(true)

	var seen string
	handler := RequestLoggerMiddleware(&mockLogger{}, &enabled, 0, false)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		buf := new(strings.Builder)
		_, _ = io.Copy(buf, r.Body)
		seen = buf.String()
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("payload")))
	assert.Equal(t, "payload", seen)
}
