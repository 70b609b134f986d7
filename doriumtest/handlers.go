package doriumtest

import "github.com/apeunit/dorium-contracts"

// Handler is a mock implementation of the dorium.Handler interface. It
// counts calls and returns configured results.
type Handler struct {
	checkCall   int
	CheckResult dorium.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult dorium.DeliverResult
	DeliverErr    error
}

var _ dorium.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*dorium.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*dorium.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
