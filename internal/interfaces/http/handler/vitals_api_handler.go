package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dreschagin/vitals-dashboard/internal/application/usecase"
	"github.com/dreschagin/vitals-dashboard/internal/domain/valueobject"
	"github.com/dreschagin/vitals-dashboard/pkg/logger"
)

// VitalsAPIHandler обрабатывает API запросы presentation-слоя
type VitalsAPIHandler struct {
	getCurrentVitalsUC *usecase.GetCurrentVitalsUseCase
	getVitalHistoryUC  *usecase.GetVitalHistoryUseCase
	logger             *logger.Logger
}

// NewVitalsAPIHandler создает новый handler
func NewVitalsAPIHandler(
	getCurrentVitalsUC *usecase.GetCurrentVitalsUseCase,
	getVitalHistoryUC *usecase.GetVitalHistoryUseCase,
	logger *logger.Logger,
) *VitalsAPIHandler {
	return &VitalsAPIHandler{
		getCurrentVitalsUC: getCurrentVitalsUC,
		getVitalHistoryUC:  getVitalHistoryUC,
		logger:             logger,
	}
}

// GetCurrentVitals возвращает последний опубликованный snapshot (pull-вариант фида)
func (h *VitalsAPIHandler) GetCurrentVitals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snapshot, err := h.getCurrentVitalsUC.Execute(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNoSnapshot) {
			http.Error(w, "No snapshot published yet", http.StatusServiceUnavailable)
			return
		}
		h.logger.Error("Failed to get current vitals", err)
		http.Error(w, "Failed to fetch vitals", http.StatusInternalServerError)
		return
	}

	writeJSON(w, snapshot, h.logger)
}

// GetVitalHistory возвращает историю одной отслеживаемой метрики
func (h *VitalsAPIHandler) GetVitalHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	metricStr := r.URL.Query().Get("metric")
	if metricStr == "" {
		http.Error(w, "Missing required parameter: metric", http.StatusBadRequest)
		return
	}

	metric := valueobject.VitalType(metricStr)
	if err := metric.Validate(); err != nil || !metric.IsTracked() {
		http.Error(w, "Unknown or untracked metric", http.StatusBadRequest)
		return
	}

	history, err := h.getVitalHistoryUC.Execute(r.Context(), metric)
	if err != nil {
		h.logger.Error("Failed to get vital history", err)
		http.Error(w, "Failed to fetch history", http.StatusInternalServerError)
		return
	}

	writeJSON(w, history, h.logger)
}

// writeJSON сериализует ответ и логирует ошибку кодирования
func writeJSON(w http.ResponseWriter, payload interface{}, log *logger.Logger) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to encode response", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
