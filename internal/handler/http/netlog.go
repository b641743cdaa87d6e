package http

import (
	"net/http"

	"github.com/seclens/insight-backend-go/internal/domain/netlog"
	"github.com/seclens/insight-backend-go/internal/handler/http/response"
)

type NetlogHandler interface {
	// GetParallel returns the two-level parallel-coordinate aggregation
	GetParallel(w http.ResponseWriter, r *http.Request)
}

type netlogHandlerImpl struct {
	netlogService netlog.NetlogService
}

func NewNetlogHandler(netlogService netlog.NetlogService) NetlogHandler {
	return &netlogHandlerImpl{netlogService: netlogService}
}

// GetParallel handles GET /netlog/parallel. The aggregation runs on a
// background task so the request goroutine stays cancelable.
func (h *netlogHandlerImpl) GetParallel(w http.ResponseWriter, r *http.Request) {
	t := h.netlogService.SubmitParallelData(r.Context())

	result, err := t.Await(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
