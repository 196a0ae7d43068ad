// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package farmadmin serves the farm configuration operations reserved to the farm admin.
package farmadmin

import (
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/api/utils"
	"github.com/Degis-Insurance/Degis-Core-sub000/ledger"
)

type FarmAdmin struct {
	ledger *ledger.Ledger
}

func New(ledger *ledger.Ledger) *FarmAdmin {
	return &FarmAdmin{ledger}
}

func (a *FarmAdmin) handleGetStatus(w http.ResponseWriter, _ *http.Request) error {
	s, err := a.ledger.FarmStatus()
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &Status{
		Admin:          s.Admin,
		BonusProvider:  utils.OptionalAddress(s.BonusProvider),
		StartTimestamp: s.StartTimestamp,
		Paused:         s.Paused,
		PoolCount:      s.PoolCount,
	})
}

func (a *FarmAdmin) handleRegisterPool(w http.ResponseWriter, req *http.Request) error {
	var body RegisterPoolRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	basic, bonus, err := parseRates(body.Basic, body.Bonus)
	if err != nil {
		return err
	}
	var double common.Address
	if body.DoubleReward != nil {
		double = *body.DoubleReward
	}
	id, err := a.ledger.RegisterPool(body.Caller, body.Share, basic, bonus, double, body.WithUpdate)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &RegisterPoolResponse{id})
}

func (a *FarmAdmin) handleSetRate(w http.ResponseWriter, req *http.Request) error {
	id, err := utils.ParsePoolID(mux.Vars(req)["id"])
	if err != nil {
		return utils.BadRequest(err)
	}
	var body SetRateRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	basic, bonus, err := parseRates(body.Basic, body.Bonus)
	if err != nil {
		return err
	}
	if err := a.ledger.SetRate(body.Caller, id, basic, bonus, body.WithUpdate); err != nil {
		return err
	}
	return a.handleGetStatus(w, req)
}

func (a *FarmAdmin) handleSetPiecewise(w http.ResponseWriter, req *http.Request) error {
	id, err := utils.ParsePoolID(mux.Vars(req)["id"])
	if err != nil {
		return utils.BadRequest(err)
	}
	var body SetPiecewiseRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	thresholds, err := utils.BigInts("thresholds", body.Thresholds)
	if err != nil {
		return utils.BadRequest(err)
	}
	speeds, err := utils.BigInts("speeds", body.Speeds)
	if err != nil {
		return utils.BadRequest(err)
	}
	if err := a.ledger.SetPiecewise(body.Caller, id, thresholds, speeds); err != nil {
		return err
	}
	return a.handleGetStatus(w, req)
}

func (a *FarmAdmin) handleSetStart(w http.ResponseWriter, req *http.Request) error {
	var body SetStartRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if err := a.ledger.SetStartTimestamp(body.Caller, body.Timestamp); err != nil {
		return err
	}
	return a.handleGetStatus(w, req)
}

func (a *FarmAdmin) handleSetAdmin(w http.ResponseWriter, req *http.Request) error {
	var body SetAdminRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if err := a.ledger.SetFarmAdmin(body.Caller, body.Admin); err != nil {
		return err
	}
	return a.handleGetStatus(w, req)
}

func (a *FarmAdmin) handlePause(w http.ResponseWriter, req *http.Request) error {
	var body utils.CallerRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if err := a.ledger.PauseFarm(body.Caller); err != nil {
		return err
	}
	return a.handleGetStatus(w, req)
}

func (a *FarmAdmin) handleUnpause(w http.ResponseWriter, req *http.Request) error {
	var body utils.CallerRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if err := a.ledger.UnpauseFarm(body.Caller); err != nil {
		return err
	}
	return a.handleGetStatus(w, req)
}

func parseRates(basic, bonus *math.HexOrDecimal256) (*big.Int, *big.Int, error) {
	b, err := utils.BigInt("basic", basic)
	if err != nil {
		return nil, nil, utils.BadRequest(err)
	}
	// a missing bonus rate means none
	if bonus == nil {
		return b, new(big.Int), nil
	}
	return b, (*big.Int)(bonus), nil
}

func (a *FarmAdmin) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").
		Methods(http.MethodGet).
		Name("GET /admin").
		HandlerFunc(utils.WrapHandlerFunc(a.handleGetStatus))
	sub.Path("/pools").
		Methods(http.MethodPost).
		Name("POST /admin/pools").
		HandlerFunc(utils.WrapHandlerFunc(a.handleRegisterPool))
	sub.Path("/pools/{id}/rate").
		Methods(http.MethodPut).
		Name("PUT /admin/pools/{id}/rate").
		HandlerFunc(utils.WrapHandlerFunc(a.handleSetRate))
	sub.Path("/pools/{id}/piecewise").
		Methods(http.MethodPut).
		Name("PUT /admin/pools/{id}/piecewise").
		HandlerFunc(utils.WrapHandlerFunc(a.handleSetPiecewise))
	sub.Path("/start").
		Methods(http.MethodPut).
		Name("PUT /admin/start").
		HandlerFunc(utils.WrapHandlerFunc(a.handleSetStart))
	sub.Path("/owner").
		Methods(http.MethodPut).
		Name("PUT /admin/owner").
		HandlerFunc(utils.WrapHandlerFunc(a.handleSetAdmin))
	sub.Path("/pause").
		Methods(http.MethodPost).
		Name("POST /admin/pause").
		HandlerFunc(utils.WrapHandlerFunc(a.handlePause))
	sub.Path("/unpause").
		Methods(http.MethodPost).
		Name("POST /admin/unpause").
		HandlerFunc(utils.WrapHandlerFunc(a.handleUnpause))
}
