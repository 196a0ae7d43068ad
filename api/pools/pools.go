// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pools

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/api/utils"
	"github.com/Degis-Insurance/Degis-Core-sub000/ledger"
)

type Pools struct {
	ledger *ledger.Ledger
}

func New(ledger *ledger.Ledger) *Pools {
	return &Pools{ledger}
}

func (p *Pools) handleGetPools(w http.ResponseWriter, _ *http.Request) error {
	list, err := p.ledger.Pools()
	if err != nil {
		return err
	}
	pools := make([]*Pool, 0, len(list))
	for i, pl := range list {
		pools = append(pools, convertPool(uint64(i+1), pl))
	}
	return utils.WriteJSON(w, pools)
}

func (p *Pools) handleGetPool(w http.ResponseWriter, req *http.Request) error {
	id, err := utils.ParsePoolID(mux.Vars(req)["id"])
	if err != nil {
		return utils.BadRequest(err)
	}
	pl, err := p.ledger.Pool(id)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, convertPool(id, pl))
}

func (p *Pools) handleGetPosition(w http.ResponseWriter, req *http.Request) error {
	id, err := utils.ParsePoolID(mux.Vars(req)["id"])
	if err != nil {
		return utils.BadRequest(err)
	}
	user, err := utils.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	pos, err := p.ledger.Position(id, user)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, convertPosition(id, user, pos))
}

func (p *Pools) handleGetPending(w http.ResponseWriter, req *http.Request) error {
	id, err := utils.ParsePoolID(mux.Vars(req)["id"])
	if err != nil {
		return utils.BadRequest(err)
	}
	user, err := utils.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	quote, err := p.ledger.QuotePending(id, user)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &Pending{
		Pool:   id,
		User:   user,
		Amount: utils.Amount(quote.Amount),
		Time:   quote.Time,
	})
}

func (p *Pools) handleStake(w http.ResponseWriter, req *http.Request) error {
	id, body, err := parseAmountRequest(req)
	if err != nil {
		return err
	}
	amount, err := utils.BigInt("amount", body.Amount)
	if err != nil {
		return utils.BadRequest(err)
	}
	received, err := p.ledger.Stake(body.Caller, id, amount)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, newMoved(received))
}

func (p *Pools) handleWithdraw(w http.ResponseWriter, req *http.Request) error {
	id, body, err := parseAmountRequest(req)
	if err != nil {
		return err
	}
	amount, err := utils.BigInt("amount", body.Amount)
	if err != nil {
		return utils.BadRequest(err)
	}
	sent, err := p.ledger.Withdraw(body.Caller, id, amount)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, newMoved(sent))
}

func (p *Pools) handleHarvest(w http.ResponseWriter, req *http.Request) error {
	id, err := utils.ParsePoolID(mux.Vars(req)["id"])
	if err != nil {
		return utils.BadRequest(err)
	}
	var body HarvestRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	recipient := body.Caller
	if body.Recipient != nil {
		recipient = *body.Recipient
	}
	paid, err := p.ledger.Harvest(body.Caller, id, recipient)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &utils.Receipt{Paid: utils.Amount(paid)})
}

func parseAmountRequest(req *http.Request) (uint64, *utils.AmountRequest, error) {
	id, err := utils.ParsePoolID(mux.Vars(req)["id"])
	if err != nil {
		return 0, nil, utils.BadRequest(err)
	}
	var body utils.AmountRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return 0, nil, utils.BadRequest(errors.WithMessage(err, "body"))
	}
	return id, &body, nil
}

func (p *Pools) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").
		Methods(http.MethodGet).
		Name("GET /pools").
		HandlerFunc(utils.WrapHandlerFunc(p.handleGetPools))
	sub.Path("/{id}").
		Methods(http.MethodGet).
		Name("GET /pools/{id}").
		HandlerFunc(utils.WrapHandlerFunc(p.handleGetPool))
	sub.Path("/{id}/users/{address}").
		Methods(http.MethodGet).
		Name("GET /pools/{id}/users/{address}").
		HandlerFunc(utils.WrapHandlerFunc(p.handleGetPosition))
	sub.Path("/{id}/users/{address}/pending").
		Methods(http.MethodGet).
		Name("GET /pools/{id}/users/{address}/pending").
		HandlerFunc(utils.WrapHandlerFunc(p.handleGetPending))
	sub.Path("/{id}/stake").
		Methods(http.MethodPost).
		Name("POST /pools/{id}/stake").
		HandlerFunc(utils.WrapHandlerFunc(p.handleStake))
	sub.Path("/{id}/withdraw").
		Methods(http.MethodPost).
		Name("POST /pools/{id}/withdraw").
		HandlerFunc(utils.WrapHandlerFunc(p.handleWithdraw))
	sub.Path("/{id}/harvest").
		Methods(http.MethodPost).
		Name("POST /pools/{id}/harvest").
		HandlerFunc(utils.WrapHandlerFunc(p.handleHarvest))
}
