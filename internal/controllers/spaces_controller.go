package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/propside/backoffice/internal/auth"
	"github.com/propside/backoffice/internal/dtos"
	"github.com/propside/backoffice/internal/models"
	"github.com/propside/backoffice/internal/services"
	"github.com/propside/backoffice/internal/utils"
)

var spaceValidate = validator.New()

type SpacesController struct {
	spaceService *services.SpaceService
}

func NewSpacesController(ss *services.SpaceService) *SpacesController {
	return &SpacesController{spaceService: ss}
}

// ----------------------------------------------------------------
// POST /api/v1/spaces
// ----------------------------------------------------------------
func (c *SpacesController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	actx := auth.FromRequest(r)
	if actx == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No auth context", nil, nil)
		return
	}

	var req dtos.CreateSpaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := spaceValidate.Struct(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationErrors.Error(), nil)
		} else {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request data", nil, err)
		}
		return
	}

	space, svcErr := c.spaceService.Create(r.Context(), actx, &req)
	if svcErr != nil {
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, services.SpaceToDTO(space))
}

// ----------------------------------------------------------------
// GET /api/v1/spaces/{spaceId}
// ----------------------------------------------------------------
func (c *SpacesController) GetHandler(w http.ResponseWriter, r *http.Request) {
	actx := auth.FromRequest(r)
	if actx == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No auth context", nil, nil)
		return
	}

	id, err := pathUUID(r, "spaceId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil, nil)
		return
	}

	space, svcErr := c.spaceService.Get(r.Context(), actx, id)
	if svcErr != nil {
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, services.SpaceToDTO(space))
}

// ----------------------------------------------------------------
// PUT /api/v1/spaces/{spaceId}
// ----------------------------------------------------------------
func (c *SpacesController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	actx := auth.FromRequest(r)
	if actx == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No auth context", nil, nil)
		return
	}

	id, err := pathUUID(r, "spaceId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil, nil)
		return
	}

	var req dtos.UpdateSpaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := spaceValidate.Struct(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationErrors.Error(), nil)
		} else {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request data", nil, err)
		}
		return
	}

	space, svcErr := c.spaceService.Update(r.Context(), actx, id, &req)
	if svcErr != nil {
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, services.SpaceToDTO(space))
}

// ----------------------------------------------------------------
// DELETE /api/v1/spaces/{spaceId}
// ----------------------------------------------------------------
func (c *SpacesController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	actx := auth.FromRequest(r)
	if actx == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No auth context", nil, nil)
		return
	}

	id, err := pathUUID(r, "spaceId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil, nil)
		return
	}

	if svcErr := c.spaceService.Delete(r.Context(), actx, id); svcErr != nil {
		utils.HandleAppError(w, svcErr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ----------------------------------------------------------------
// GET /api/v1/spaces
// ----------------------------------------------------------------
func (c *SpacesController) ListHandler(w http.ResponseWriter, r *http.Request) {
	actx := auth.FromRequest(r)
	if actx == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No auth context", nil, nil)
		return
	}

	f, err := parseListFilter(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil, nil)
		return
	}

	resp, svcErr := c.spaceService.List(r.Context(), actx, *f)
	if svcErr != nil {
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func parseListFilter(r *http.Request) (*services.ListFilter, error) {
	q := r.URL.Query()
	f := services.ListFilter{Search: q.Get("search")}

	propID, err := optionalUUIDQuery(r, "propertyId")
	if err != nil {
		return nil, err
	}
	f.PropertyID = propID

	if v := q.Get("type"); v != "" {
		st := models.SpaceTypeType(v)
		f.SpaceType = &st
	}
	if v := q.Get("bedrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errInvalidQuery("bedrooms", v)
		}
		f.Bedrooms = &n
	}
	if v := q.Get("floor"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errInvalidQuery("floor", v)
		}
		f.Floor = &n
	}
	if v := q.Get("available"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errInvalidQuery("available", v)
		}
		f.Available = &b
	}
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errInvalidQuery("page", v)
		}
		f.Page = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errInvalidQuery("limit", v)
		}
		f.Limit = n
	}
	return &f, nil
}
