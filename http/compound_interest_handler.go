package http

import (
	"log"
	"net/http"

	"invest-agent/domain"
	"invest-agent/report"
	"invest-agent/service"
)

type CompoundInterestHandler struct {
	service *service.CompoundInterestService
}

func NewCompoundInterestHandler(service *service.CompoundInterestService) *CompoundInterestHandler {
	return &CompoundInterestHandler{service: service}
}

func (h *CompoundInterestHandler) Project(w http.ResponseWriter, r *http.Request) {
	places, round, err := roundPlaces(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var input domain.CompoundInterestRequest
	if !decodeJSONRequest(w, r, &input) {
		return
	}

	result, err := h.service.Project(r.Context(), input)
	if err != nil {
		log.Printf("Error projecting compound interest: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if round {
		result = report.RoundCompoundInterest(result, places)
	}
	writeJSON(w, result)
}
