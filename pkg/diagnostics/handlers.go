// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package diagnostics

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	httptypes "github.com/canonical/ops-console/internal/http/types"
	"github.com/canonical/ops-console/internal/logging"
	"github.com/canonical/ops-console/internal/tracing"
)

// Synthesized probe count when the caller supplies neither records nor count.
const defaultProbeCount = 10

type API struct {
	service ServiceInterface

	validate *validator.Validate
	tracer   tracing.TracingInterface
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.validate = validator.New()
	a.tracer = tracer
	a.logger = logger

	return a
}

func (a *API) RegisterAdminEndpoints(mux chi.Router) {
	mux.Post("/diagnostics/fanout", a.fanout)
}

type fanoutRequest struct {
	ServerID string `json:"server_id" validate:"required"`
	Database string `json:"database" validate:"required"`
	// Records to write; when omitted, Count synthetic probes are generated.
	Records []Record `json:"records"`
	Count   int      `json:"count" validate:"gte=0,lte=10000"`
}

func (a *API) fanout(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "diagnostics.API.fanout")
	defer span.End()

	var req fanoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteErrors(w, http.StatusBadRequest, "invalid request body", "invalid JSON payload")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrors(w, http.StatusBadRequest, "invalid request body", "server_id and database are required")
		return
	}

	records := req.Records
	if len(records) == 0 {
		records = synthesizeRecords(req.Count)
	}

	result, err := a.service.FanoutInsert(ctx, req.ServerID, req.Database, records)
	if err != nil {
		a.logger.Errorf("fan-out against %s/%s failed: %v", req.ServerID, req.Database, err)
		httptypes.WriteServiceError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "fan-out completed", result)
}

func synthesizeRecords(count int) []Record {
	if count == 0 {
		count = defaultProbeCount
	}

	records := make([]Record, count)
	for i := range records {
		records[i] = Record{
			Key:     uuid.Must(uuid.NewV7()).String(),
			Payload: fmt.Sprintf("probe %d/%d", i+1, count),
		}
	}
	return records
}
