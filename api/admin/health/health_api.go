// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package health

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Degis-Insurance/Degis-Core-sub000/api/utils"
)

const defaultMaxLag = 0

type API struct {
	healthStatus *Health
}

func NewAPI(healthStatus *Health) *API {
	return &API{
		healthStatus: healthStatus,
	}
}

func (h *API) handleGetHealth(w http.ResponseWriter, r *http.Request) error {
	maxLag := uint64(defaultMaxLag)
	if q := r.URL.Query().Get("maxLag"); q != "" {
		parsed, err := strconv.ParseUint(q, 10, 64)
		if err != nil {
			return utils.BadRequest(err)
		}
		maxLag = parsed
	}

	acc, err := h.healthStatus.Status(maxLag)
	if err != nil {
		return err
	}

	if !acc.Healthy {
		w.Header().Set("Content-Type", utils.JSONContentType)
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	return utils.WriteJSON(w, acc)
}

func (h *API) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").
		Methods(http.MethodGet).
		Name("health").
		HandlerFunc(utils.WrapHandlerFunc(h.handleGetHealth))
}
