// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package double

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/api/utils"
	"github.com/Degis-Insurance/Degis-Core-sub000/ledger"
)

type Double struct {
	ledger *ledger.Ledger
}

func New(ledger *ledger.Ledger) *Double {
	return &Double{ledger}
}

// handleGetTokens lists the reward tokens bound to the share asset in the query.
func (d *Double) handleGetTokens(w http.ResponseWriter, req *http.Request) error {
	share, err := utils.ParseAddress(req.URL.Query().Get("share"))
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "share"))
	}
	tokens, err := d.ledger.RewardTokens(share)
	if err != nil {
		return err
	}
	if tokens == nil {
		tokens = []common.Address{}
	}
	return utils.WriteJSON(w, tokens)
}

func (d *Double) handleGetToken(w http.ResponseWriter, req *http.Request) error {
	token, err := utils.ParseAddress(mux.Vars(req)["token"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "token"))
	}
	info, err := d.ledger.DoubleToken(token)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, convertToken(token, info))
}

func (d *Double) handleGetBalance(w http.ResponseWriter, req *http.Request) error {
	token, err := utils.ParseAddress(mux.Vars(req)["token"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "token"))
	}
	user, err := utils.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	bal, err := d.ledger.DoubleBalance(token, user)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &Balance{
		Token:   token,
		User:    user,
		Pending: utils.Amount(bal.Pending),
		Swept:   utils.Amount(bal.Swept),
	})
}

func (d *Double) handleClaim(w http.ResponseWriter, req *http.Request) error {
	token, err := utils.ParseAddress(mux.Vars(req)["token"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "token"))
	}
	var body utils.CallerRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	paid, err := d.ledger.ClaimDouble(body.Caller, token)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &utils.Receipt{Paid: utils.Amount(paid)})
}

func (d *Double) handleAddToken(w http.ResponseWriter, req *http.Request) error {
	var body AddTokenRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if err := d.ledger.AddRewardToken(body.Caller, body.Token, body.Share); err != nil {
		return err
	}
	return d.writeToken(w, body.Token)
}

func (d *Double) handleSetSpeed(w http.ResponseWriter, req *http.Request) error {
	token, err := utils.ParseAddress(mux.Vars(req)["token"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "token"))
	}
	var body SetSpeedRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	speed, err := utils.BigInt("speed", body.Speed)
	if err != nil {
		return utils.BadRequest(err)
	}
	if err := d.ledger.SetRewardSpeed(body.Caller, body.Share, token, speed); err != nil {
		return err
	}
	return d.writeToken(w, token)
}

func (d *Double) handleSetClaimable(w http.ResponseWriter, req *http.Request) error {
	token, err := utils.ParseAddress(mux.Vars(req)["token"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "token"))
	}
	var body SetClaimableRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if err := d.ledger.SetClaimable(body.Caller, token, body.Real); err != nil {
		return err
	}
	return d.writeToken(w, token)
}

func (d *Double) writeToken(w http.ResponseWriter, token common.Address) error {
	info, err := d.ledger.DoubleToken(token)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, convertToken(token, info))
}

func (d *Double) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").
		Methods(http.MethodGet).
		Name("GET /double").
		HandlerFunc(utils.WrapHandlerFunc(d.handleGetTokens))
	sub.Path("").
		Methods(http.MethodPost).
		Name("POST /double").
		HandlerFunc(utils.WrapHandlerFunc(d.handleAddToken))
	sub.Path("/{token}").
		Methods(http.MethodGet).
		Name("GET /double/{token}").
		HandlerFunc(utils.WrapHandlerFunc(d.handleGetToken))
	sub.Path("/{token}/speed").
		Methods(http.MethodPut).
		Name("PUT /double/{token}/speed").
		HandlerFunc(utils.WrapHandlerFunc(d.handleSetSpeed))
	sub.Path("/{token}/claimable").
		Methods(http.MethodPut).
		Name("PUT /double/{token}/claimable").
		HandlerFunc(utils.WrapHandlerFunc(d.handleSetClaimable))
	sub.Path("/{token}/users/{address}").
		Methods(http.MethodGet).
		Name("GET /double/{token}/users/{address}").
		HandlerFunc(utils.WrapHandlerFunc(d.handleGetBalance))
	sub.Path("/{token}/claim").
		Methods(http.MethodPost).
		Name("POST /double/{token}/claim").
		HandlerFunc(utils.WrapHandlerFunc(d.handleClaim))
}
