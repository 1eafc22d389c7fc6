package handlers

import (
	"github.com/Dhakshin2007/TradeoBull/internal/advisor"
	"github.com/Dhakshin2007/TradeoBull/internal/auth"
	"github.com/Dhakshin2007/TradeoBull/internal/ledger"
	"github.com/Dhakshin2007/TradeoBull/internal/market"
	"github.com/Dhakshin2007/TradeoBull/internal/store"
)

// Handler carries the wired collaborators for all HTTP endpoints. No global
// state: every operation receives the identity it acts on explicitly.
type Handler struct {
	Store     *store.ProfileStore
	Gateway   auth.Gateway
	Processor *ledger.Processor
	Market    *market.Provider
	Advisor   *advisor.Advisor
}

func New(st *store.ProfileStore, gw auth.Gateway, proc *ledger.Processor, mkt *market.Provider, adv *advisor.Advisor) *Handler {
	return &Handler{
		Store:     st,
		Gateway:   gw,
		Processor: proc,
		Market:    mkt,
		Advisor:   adv,
	}
}
