// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package gov

import (
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/api/utils"
	"github.com/Degis-Insurance/Degis-Core-sub000/ledger"
)

type Gov struct {
	ledger *ledger.Ledger
}

func New(ledger *ledger.Ledger) *Gov {
	return &Gov{ledger}
}

func (g *Gov) handleGetParams(w http.ResponseWriter, _ *http.Request) error {
	p, err := g.ledger.GovParams()
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &Params{
		GenerationRate: utils.Amount(p.GenerationRate),
		MaxCapRatio:    p.MaxCapRatio,
	})
}

func (g *Gov) handleGetAccount(w http.ResponseWriter, req *http.Request) error {
	user, err := utils.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	return g.writeAccount(w, user)
}

func (g *Gov) writeAccount(w http.ResponseWriter, user common.Address) error {
	acc, err := g.ledger.GovAccount(user)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, convertAccount(user, acc))
}

// amountHandler serves an operation moving an amount of the caller's stake.
func (g *Gov) amountHandler(op func(user common.Address, amount *big.Int) error) utils.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) error {
		var body utils.AmountRequest
		if err := utils.ParseJSON(req.Body, &body); err != nil {
			return utils.BadRequest(errors.WithMessage(err, "body"))
		}
		amount, err := utils.BigInt("amount", body.Amount)
		if err != nil {
			return utils.BadRequest(err)
		}
		if err := op(body.Caller, amount); err != nil {
			return err
		}
		return g.writeAccount(w, body.Caller)
	}
}

func (g *Gov) handleWithdrawLocked(w http.ResponseWriter, req *http.Request) error {
	var body utils.CallerRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if err := g.ledger.GovWithdrawLocked(body.Caller); err != nil {
		return err
	}
	return g.writeAccount(w, body.Caller)
}

func (g *Gov) handleClaim(w http.ResponseWriter, req *http.Request) error {
	var body utils.CallerRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	paid, err := g.ledger.GovClaim(body.Caller)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &utils.Receipt{Paid: utils.Amount(paid)})
}

// escrowHandler serves the escrow operations reserved to whitelisted callers.
func (g *Gov) escrowHandler(op func(*EscrowRequest, *big.Int) error) utils.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) error {
		var body EscrowRequest
		if err := utils.ParseJSON(req.Body, &body); err != nil {
			return utils.BadRequest(errors.WithMessage(err, "body"))
		}
		amount, err := utils.BigInt("amount", body.Amount)
		if err != nil {
			return utils.BadRequest(err)
		}
		if err := op(&body, amount); err != nil {
			return err
		}
		return g.writeAccount(w, body.User)
	}
}

func (g *Gov) handleSetGenerationRate(w http.ResponseWriter, req *http.Request) error {
	var body SetGenerationRateRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	rate, err := utils.BigInt("rate", body.Rate)
	if err != nil {
		return utils.BadRequest(err)
	}
	if err := g.ledger.GovSetGenerationRate(body.Caller, rate); err != nil {
		return err
	}
	return g.handleGetParams(w, req)
}

func (g *Gov) handleSetMaxCapRatio(w http.ResponseWriter, req *http.Request) error {
	var body SetMaxCapRatioRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if err := g.ledger.GovSetMaxCapRatio(body.Caller, body.Ratio); err != nil {
		return err
	}
	return g.handleGetParams(w, req)
}

func (g *Gov) whitelistHandler(op func(caller, who common.Address) error) utils.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) error {
		var body WhitelistRequest
		if err := utils.ParseJSON(req.Body, &body); err != nil {
			return utils.BadRequest(errors.WithMessage(err, "body"))
		}
		if err := op(body.Caller, body.Account); err != nil {
			return err
		}
		return utils.WriteJSON(w, &body)
	}
}

func (g *Gov) pauseHandler(op func(caller common.Address) error) utils.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) error {
		var body utils.CallerRequest
		if err := utils.ParseJSON(req.Body, &body); err != nil {
			return utils.BadRequest(errors.WithMessage(err, "body"))
		}
		if err := op(body.Caller); err != nil {
			return err
		}
		return g.handleGetParams(w, req)
	}
}

func (g *Gov) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").
		Methods(http.MethodGet).
		Name("GET /gov").
		HandlerFunc(utils.WrapHandlerFunc(g.handleGetParams))
	sub.Path("/users/{address}").
		Methods(http.MethodGet).
		Name("GET /gov/users/{address}").
		HandlerFunc(utils.WrapHandlerFunc(g.handleGetAccount))

	sub.Path("/deposit").
		Methods(http.MethodPost).
		Name("POST /gov/deposit").
		HandlerFunc(utils.WrapHandlerFunc(g.amountHandler(g.ledger.GovDeposit)))
	sub.Path("/deposit-max").
		Methods(http.MethodPost).
		Name("POST /gov/deposit-max").
		HandlerFunc(utils.WrapHandlerFunc(g.amountHandler(g.ledger.GovDepositMaxTime)))
	sub.Path("/withdraw").
		Methods(http.MethodPost).
		Name("POST /gov/withdraw").
		HandlerFunc(utils.WrapHandlerFunc(g.amountHandler(g.ledger.GovWithdraw)))
	sub.Path("/withdraw-locked").
		Methods(http.MethodPost).
		Name("POST /gov/withdraw-locked").
		HandlerFunc(utils.WrapHandlerFunc(g.handleWithdrawLocked))
	sub.Path("/claim").
		Methods(http.MethodPost).
		Name("POST /gov/claim").
		HandlerFunc(utils.WrapHandlerFunc(g.handleClaim))

	sub.Path("/burn").
		Methods(http.MethodPost).
		Name("POST /gov/burn").
		HandlerFunc(utils.WrapHandlerFunc(g.escrowHandler(func(r *EscrowRequest, amount *big.Int) error {
			return g.ledger.GovBurnFor(r.Caller, r.User, amount)
		})))
	sub.Path("/lock").
		Methods(http.MethodPost).
		Name("POST /gov/lock").
		HandlerFunc(utils.WrapHandlerFunc(g.escrowHandler(func(r *EscrowRequest, amount *big.Int) error {
			return g.ledger.GovLockFor(r.Caller, r.User, amount, r.Until)
		})))
	sub.Path("/unlock").
		Methods(http.MethodPost).
		Name("POST /gov/unlock").
		HandlerFunc(utils.WrapHandlerFunc(g.escrowHandler(func(r *EscrowRequest, amount *big.Int) error {
			return g.ledger.GovUnlockFor(r.Caller, r.User, amount)
		})))

	sub.Path("/generation-rate").
		Methods(http.MethodPut).
		Name("PUT /gov/generation-rate").
		HandlerFunc(utils.WrapHandlerFunc(g.handleSetGenerationRate))
	sub.Path("/max-cap-ratio").
		Methods(http.MethodPut).
		Name("PUT /gov/max-cap-ratio").
		HandlerFunc(utils.WrapHandlerFunc(g.handleSetMaxCapRatio))
	sub.Path("/whitelist/add").
		Methods(http.MethodPost).
		Name("POST /gov/whitelist/add").
		HandlerFunc(utils.WrapHandlerFunc(g.whitelistHandler(g.ledger.GovAddWhitelist)))
	sub.Path("/whitelist/remove").
		Methods(http.MethodPost).
		Name("POST /gov/whitelist/remove").
		HandlerFunc(utils.WrapHandlerFunc(g.whitelistHandler(g.ledger.GovRemoveWhitelist)))
	sub.Path("/pause").
		Methods(http.MethodPost).
		Name("POST /gov/pause").
		HandlerFunc(utils.WrapHandlerFunc(g.pauseHandler(g.ledger.GovPause)))
	sub.Path("/unpause").
		Methods(http.MethodPost).
		Name("POST /gov/unpause").
		HandlerFunc(utils.WrapHandlerFunc(g.pauseHandler(g.ledger.GovUnpause)))
}
