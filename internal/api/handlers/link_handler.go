package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	apiContext "smartlink/internal/api/context"
	"smartlink/internal/api/middleware"
	"smartlink/internal/engine/links"
	"smartlink/internal/pkg/errors"
)

type LinkHandler struct {
	Service     *links.Service
	ShortDomain string
}

func NewLinkHandler(service *links.Service, shortDomain string) *LinkHandler {
	return &LinkHandler{Service: service, ShortDomain: shortDomain}
}

type linkResponse struct {
	*links.Link
	ShortURL string `json:"short_url"`
}

func (h *LinkHandler) response(link *links.Link) linkResponse {
	return linkResponse{
		Link:     link,
		ShortURL: "https://" + h.ShortDomain + "/" + string(link.Platform) + "/" + link.ShortCode,
	}
}

func (h *LinkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DestinationURL string `json:"destination_url"`
		ShortCode      string `json:"short_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Invalid request body", nil)
		return
	}

	link, err := h.Service.CreateLink(middleware.AccountID(r), req.DestinationURL, req.ShortCode)
	if err == links.ErrUnsupportedDestination {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput,
			"Destination URL matches no supported platform", nil)
		return
	}
	if err != nil {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, err.Error(), nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(h.response(link))
}

func (h *LinkHandler) Get(w http.ResponseWriter, r *http.Request) {
	link, ok := h.ownedLink(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.response(link))
}

func (h *LinkHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	list, err := h.Service.ListLinks(middleware.AccountID(r), limit, offset)
	if err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Something went wrong", nil)
		return
	}

	out := make([]linkResponse, 0, len(list))
	for _, l := range list {
		out = append(out, h.response(l))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"links": out})
}

func (h *LinkHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	link, ok := h.ownedLink(w, r)
	if !ok {
		return
	}

	var req struct {
		IsActive *bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsActive == nil {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "is_active is required", nil)
		return
	}

	if err := h.Service.SetActive(link.ID, *req.IsActive); err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Something went wrong", nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *LinkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	link, ok := h.ownedLink(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteLink(link.ID); err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Something went wrong", nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *LinkHandler) GetQRCode(w http.ResponseWriter, r *http.Request) {
	link, ok := h.ownedLink(w, r)
	if !ok {
		return
	}

	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	png, err := links.GenerateQRCode(h.response(link).ShortURL, size)
	if err != nil {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, err.Error(), nil)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// ownedLink fetches the :link_id row and hides other accounts' links
// behind the same 404 as missing ones.
func (h *LinkHandler) ownedLink(w http.ResponseWriter, r *http.Request) (*links.Link, bool) {
	params := r.Context().Value(apiContext.Params).(httprouter.Params)

	link, err := h.Service.GetLink(params.ByName("link_id"))
	if err == links.ErrNotFound {
		errors.WriteError(w, http.StatusNotFound, errors.ErrCodeNotFound, "Link not found", nil)
		return nil, false
	}
	if err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Something went wrong", nil)
		return nil, false
	}
	if link.AccountID != middleware.AccountID(r) {
		errors.WriteError(w, http.StatusNotFound, errors.ErrCodeNotFound, "Link not found", nil)
		return nil, false
	}
	return link, true
}
