package food

import (
	"errors"
	"net/http"
	"strconv"

	"food-service/internal/shared/httpx"
)

const maxUploadBytes = 32 << 20

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpx.WriteJSON(w, map[string]any{
			"message": "Could not create post",
			"errors":  map[string]string{"body": "invalid multipart form"},
		}, http.StatusBadRequest)
		return nil
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		httpx.WriteJSON(w, map[string]any{
			"message": "Could not create post",
			"errors":  map[string]string{"image": ErrImageRequired.Error()},
		}, http.StatusBadRequest)
		return nil
	}
	defer file.Close()

	in := CreateReq{
		Title:       r.FormValue("title"),
		Link:        r.FormValue("link"),
		Description: r.FormValue("description"),
		Type:        r.FormValue("type"),
	}
	// some clients post the field as "url"
	if in.Link == "" {
		in.Link = r.FormValue("url")
	}
	if v := r.FormValue("restaurantId"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			in.RestaurantID = &n
		}
	}

	f, err := h.svc.Create(r.Context(), in, file, header)
	switch {
	case err == nil:
		httpx.WriteJSON(w, f, http.StatusOK)
	case errors.Is(err, ErrUnsupportedFormat):
		httpx.WriteJSON(w, map[string]any{
			"message": "Could not create post",
			"errors":  map[string]string{"image": err.Error()},
		}, http.StatusBadRequest)
	case errors.Is(err, ErrUpload):
		httpx.WriteJSON(w, map[string]any{
			"message": "Could not upload image",
		}, http.StatusInternalServerError)
	default:
		httpx.WriteJSON(w, map[string]any{
			"message": "Could not create post",
			"errors":  map[string]string{"store": err.Error()},
		}, http.StatusBadRequest)
	}
	return nil
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) error {
	foods, err := h.svc.List()
	if err != nil {
		httpx.WriteJSON(w, map[string]any{
			"message": "Could not find food",
			"errors":  map[string]string{"store": err.Error()},
		}, http.StatusBadRequest)
		return nil
	}
	httpx.WriteJSON(w, foods, http.StatusOK)
	return nil
}
