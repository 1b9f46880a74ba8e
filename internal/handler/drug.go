package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eternalrights/ssmp-go/internal/model"
	"github.com/eternalrights/ssmp-go/internal/service"
)

// DrugHandler handles HTTP requests for the drug catalog.
type DrugHandler struct {
	service *service.DrugService
}

// NewDrugHandler creates a new DrugHandler.
func NewDrugHandler(svc *service.DrugService) *DrugHandler {
	return &DrugHandler{service: svc}
}

// HandleList handles GET /drugs requests. Query parameters: keyword,
// category, shelf_status, sort, page, pageSize; all optional, page and
// pageSize default to 1 and 10.
func (h *DrugHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := model.DrugQuery{
		Keyword: r.URL.Query().Get("keyword"),
		Sort:    r.URL.Query().Get("sort"),
	}
	if q.Sort == "" {
		q.Sort = "default"
	}

	var parseErr error
	q.Category = optionalIntParam(r, "category", &parseErr)
	q.ShelfStatus = optionalIntParam(r, "shelf_status", &parseErr)
	q.Page = optionalIntParam(r, "page", &parseErr)
	q.PageSize = optionalIntParam(r, "pageSize", &parseErr)
	if parseErr != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid query parameter"))
		return
	}

	if q.Page == nil {
		q.Page = intPtr(1)
	}
	if q.PageSize == nil {
		q.PageSize = intPtr(10)
	}
	if *q.Page < 1 || *q.PageSize < 1 {
		writeJSON(w, http.StatusBadRequest, errorResponse("page and pageSize must be positive"))
		return
	}

	resp, err := h.service.List(r.Context(), q)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGetByID handles GET /drugs/{id} requests.
func (h *DrugHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid drug id"))
		return
	}

	drug, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDrugNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, drug)
}

// HandleInventoryRecords handles GET /drugs/{id}/inventory-records requests.
func (h *DrugHandler) HandleInventoryRecords(w http.ResponseWriter, r *http.Request) {
	drugID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid drug id"))
		return
	}

	record, err := h.service.GetInventoryRecord(r.Context(), drugID)
	if err != nil {
		if errors.Is(err, service.ErrDrugNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// optionalIntParam parses an optional integer query parameter, recording
// a parse failure in errOut without overwriting an earlier one.
func optionalIntParam(r *http.Request, name string, errOut *error) *int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		if *errOut == nil {
			*errOut = err
		}
		return nil
	}
	return &n
}

func intPtr(n int) *int { return &n }
