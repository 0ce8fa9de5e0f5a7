package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"veristay/internal/domain"
)

const hostelNotFound = "Hostel not found"

type hostelList struct {
	Hostels []domain.Hostel `json:"hostels"`
	Count   int             `json:"count"`
}

type hostelEnvelope struct {
	Message string         `json:"message,omitempty"`
	Hostel  *domain.Hostel `json:"hostel,omitempty"`
}

type reviewList struct {
	Reviews []domain.Review `json:"reviews"`
	Count   int             `json:"count"`
}

type reviewEnvelope struct {
	Message string        `json:"message"`
	Review  domain.Review `json:"review"`
}

// TODO: honour ?verified=true once the explore page filters on it; every
// hostel is listed for now.
func (h *Handlers) listHostels(w http.ResponseWriter, r *http.Request) {
	hostels := h.Hostels.List(r.Context())
	writeCacheable(w, r, hostelList{Hostels: hostels, Count: len(hostels)})
}

func (h *Handlers) getHostel(w http.ResponseWriter, r *http.Request) {
	hs, err := h.Hostels.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, "hostel", hostelNotFound, err)
		return
	}
	writeCacheable(w, r, hostelEnvelope{Hostel: &hs})
}

func (h *Handlers) createHostel(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		fail(w, r, "hostel", hostelNotFound, err)
		return
	}
	hs, err := h.Hostels.Create(r.Context(), body)
	if err != nil {
		fail(w, r, "hostel", hostelNotFound, err)
		return
	}
	writeJSON(w, http.StatusCreated, hostelEnvelope{Message: "Hostel created successfully", Hostel: &hs})
}

func (h *Handlers) updateHostel(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		fail(w, r, "hostel", hostelNotFound, err)
		return
	}
	hs, err := h.Hostels.Update(r.Context(), chi.URLParam(r, "id"), body)
	if err != nil {
		fail(w, r, "hostel", hostelNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, hostelEnvelope{Message: "Hostel updated successfully", Hostel: &hs})
}

func (h *Handlers) deleteHostel(w http.ResponseWriter, r *http.Request) {
	if err := h.Hostels.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		fail(w, r, "hostel", hostelNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, hostelEnvelope{Message: "Hostel deleted successfully"})
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	rs, err := h.Hostels.ListReviews(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, "review", hostelNotFound, err)
		return
	}
	writeCacheable(w, r, reviewList{Reviews: rs, Count: len(rs)})
}

func (h *Handlers) addReview(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		fail(w, r, "review", hostelNotFound, err)
		return
	}
	rv, err := h.Hostels.AddReview(r.Context(), chi.URLParam(r, "id"), body)
	if err != nil {
		fail(w, r, "review", hostelNotFound, err)
		return
	}
	writeJSON(w, http.StatusCreated, reviewEnvelope{Message: "Review added successfully", Review: rv})
}
