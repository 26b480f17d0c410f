package http

import (
	"log"
	"net/http"

	"invest-agent/domain"
	"invest-agent/report"
	"invest-agent/service"
)

type RealEstateHandler struct {
	service *service.RealEstateService
}

func NewRealEstateHandler(service *service.RealEstateService) *RealEstateHandler {
	return &RealEstateHandler{service: service}
}

func (h *RealEstateHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	places, round, err := roundPlaces(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var input domain.RealEstateRequest
	if !decodeJSONRequest(w, r, &input) {
		return
	}

	result, err := h.service.Analyze(r.Context(), input)
	if err != nil {
		log.Printf("Error analyzing real estate profitability: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if round {
		result = report.RoundRealEstate(result, places)
	}
	writeJSON(w, result)
}
