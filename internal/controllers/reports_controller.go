package controllers

import (
	"net/http"

	"github.com/propside/backoffice/internal/auth"
	"github.com/propside/backoffice/internal/services"
	"github.com/propside/backoffice/internal/utils"
)

type ReportsController struct {
	reportService *services.ReportService
}

func NewReportsController(rs *services.ReportService) *ReportsController {
	return &ReportsController{reportService: rs}
}

// ----------------------------------------------------------------
// GET /api/v1/reports/entities/{entityId}/profit-loss
// ----------------------------------------------------------------
func (c *ReportsController) ProfitLossHandler(w http.ResponseWriter, r *http.Request) {
	actx := auth.FromRequest(r)
	if actx == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No auth context", nil, nil)
		return
	}

	entityID, err := pathUUID(r, "entityId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil, nil)
		return
	}
	start, end, err := parseDateRange(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil, nil)
		return
	}
	propID, err := optionalUUIDQuery(r, "propertyId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil, nil)
		return
	}

	resp, svcErr := c.reportService.GetProfitLoss(r.Context(), actx, entityID, propID, start, end)
	if svcErr != nil {
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ----------------------------------------------------------------
// GET /api/v1/reports/entities/{entityId}/occupancy
// ----------------------------------------------------------------
func (c *ReportsController) OccupancyHandler(w http.ResponseWriter, r *http.Request) {
	actx := auth.FromRequest(r)
	if actx == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No auth context", nil, nil)
		return
	}

	entityID, err := pathUUID(r, "entityId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil, nil)
		return
	}
	propID, err := optionalUUIDQuery(r, "propertyId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil, nil)
		return
	}

	resp, svcErr := c.reportService.GetOccupancy(r.Context(), actx, entityID, propID)
	if svcErr != nil {
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ----------------------------------------------------------------
// GET /api/v1/reports/entities/{entityId}/maintenance
// ----------------------------------------------------------------
func (c *ReportsController) MaintenanceHandler(w http.ResponseWriter, r *http.Request) {
	actx := auth.FromRequest(r)
	if actx == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No auth context", nil, nil)
		return
	}

	entityID, err := pathUUID(r, "entityId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil, nil)
		return
	}
	start, end, err := parseDateRange(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil, nil)
		return
	}
	propID, err := optionalUUIDQuery(r, "propertyId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil, nil)
		return
	}

	resp, svcErr := c.reportService.GetMaintenance(r.Context(), actx, entityID, propID, start, end)
	if svcErr != nil {
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ----------------------------------------------------------------
// GET /api/v1/reports/entities/{entityId}/aging
// ----------------------------------------------------------------
func (c *ReportsController) AgingHandler(w http.ResponseWriter, r *http.Request) {
	actx := auth.FromRequest(r)
	if actx == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No auth context", nil, nil)
		return
	}

	entityID, err := pathUUID(r, "entityId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil, nil)
		return
	}

	resp, svcErr := c.reportService.GetAging(r.Context(), actx, entityID)
	if svcErr != nil {
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ----------------------------------------------------------------
// GET /api/v1/reports/entities/{entityId}/dashboard
// ----------------------------------------------------------------
func (c *ReportsController) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	actx := auth.FromRequest(r)
	if actx == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No auth context", nil, nil)
		return
	}

	entityID, err := pathUUID(r, "entityId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil, nil)
		return
	}
	start, end, err := parseDateRange(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil, nil)
		return
	}

	resp, svcErr := c.reportService.GetDashboard(r.Context(), actx, entityID, start, end)
	if svcErr != nil {
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
