// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logs

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/api/utils"
	"github.com/Degis-Insurance/Degis-Core-sub000/logdb"
)

type Logs struct {
	db    *logdb.LogDB
	limit uint64
}

func New(db *logdb.LogDB, logsLimit uint64) *Logs {
	return &Logs{
		db,
		logsLimit,
	}
}

func (l *Logs) handleFilter(w http.ResponseWriter, req *http.Request) error {
	var filter FactFilter
	if err := utils.ParseJSON(req.Body, &filter); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if filter.Options != nil && filter.Options.Limit > l.limit {
		return utils.Forbidden(fmt.Errorf("options.limit exceeds the maximum allowed value of %d", l.limit))
	}
	if filter.Options != nil && filter.Options.Offset > math.MaxInt64 {
		return utils.BadRequest(fmt.Errorf("options.offset exceeds the maximum allowed value of %d", math.MaxInt64))
	}
	if filter.Range != nil && filter.Range.From != nil && filter.Range.To != nil && *filter.Range.From > *filter.Range.To {
		return utils.BadRequest(errors.New("range.to must be greater than or equal to range.from"))
	}
	if filter.Order != "" && filter.Order != logdb.ASC && filter.Order != logdb.DESC {
		return utils.BadRequest(fmt.Errorf("order: unknown value %q", filter.Order))
	}
	if filter.Options == nil {
		// one more than the limit to detect whether there are more facts than the limit
		filter.Options = &Options{
			Offset: 0,
			Limit:  l.limit + 1,
		}
	}

	facts, err := l.db.Filter(req.Context(), convertFilter(&filter))
	if err != nil {
		return err
	}
	if len(facts) > int(l.limit) {
		return utils.Forbidden(fmt.Errorf("the number of filtered facts exceeds the maximum allowed value of %d, please use pagination", l.limit))
	}
	if facts == nil {
		facts = []*logdb.Fact{}
	}
	return utils.WriteJSON(w, facts)
}

func (l *Logs) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").
		Methods(http.MethodPost).
		Name("POST /logs").
		HandlerFunc(utils.WrapHandlerFunc(l.handleFilter))
}
