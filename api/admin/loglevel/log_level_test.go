// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package loglevel

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestCase struct {
	name             string
	method           string
	body             any
	expectedStatus   int
	expectedLevel    string
	expectedErrorMsg string
}

func marshalBody(tt TestCase, t *testing.T) []byte {
	var reqBody []byte
	var err error
	if tt.body != nil {
		reqBody, err = json.Marshal(tt.body)
		require.NoError(t, err, "could not marshal request body")
	}
	return reqBody
}

func TestLogLevelHandler(t *testing.T) {
	tests := []TestCase{
		{
			name:           "Valid POST input - set level to DEBUG",
			method:         "POST",
			body:           map[string]string{"level": "debug"},
			expectedStatus: http.StatusOK,
			expectedLevel:  "debug",
		},
		{
			name:           "Valid POST input - set level to TRACE",
			method:         "POST",
			body:           map[string]string{"level": "TRACE"},
			expectedStatus: http.StatusOK,
			expectedLevel:  "trace",
		},
		{
			name:           "Valid POST input - set level to CRIT",
			method:         "POST",
			body:           map[string]string{"level": "crit"},
			expectedStatus: http.StatusOK,
			expectedLevel:  "crit",
		},
		{
			name:             "Invalid POST input - invalid level",
			method:           "POST",
			body:             map[string]string{"level": "invalid_body"},
			expectedStatus:   http.StatusBadRequest,
			expectedErrorMsg: "Invalid verbosity level",
		},
		{
			name:             "Invalid POST input - unknown field",
			method:           "POST",
			body:             map[string]string{"verbosity": "info"},
			expectedStatus:   http.StatusBadRequest,
			expectedErrorMsg: "Invalid request body",
		},
		{
			name:           "GET request - get current level INFO",
			method:         "GET",
			body:           nil,
			expectedStatus: http.StatusOK,
			expectedLevel:  "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logLevel slog.LevelVar
			logLevel.Set(slog.LevelInfo)

			req, err := http.NewRequest(tt.method, "/admin/loglevel", bytes.NewBuffer(marshalBody(tt, t)))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router := mux.NewRouter()
			New(&logLevel).Mount(router, "/admin/loglevel")
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedLevel != "" {
				var response Response
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedLevel, response.CurrentLevel)
			}
			if tt.expectedErrorMsg != "" {
				assert.True(t, strings.Contains(rr.Body.String(), tt.expectedErrorMsg), rr.Body.String())
			}
		})
	}
}
