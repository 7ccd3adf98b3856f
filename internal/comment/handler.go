package comment

import (
	"net/http"
	"strconv"

	"food-service/internal/shared/httpx"
	"food-service/internal/shared/validate"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) List(w http.ResponseWriter, r *http.Request) error {
	items, err := h.svc.Latest()
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, items, http.StatusOK)
	return nil
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) error {
	id, err := strconv.ParseUint(r.PathValue("commentId"), 10, 64)
	if err != nil {
		// a malformed id matches nothing, same shape as an unknown one
		httpx.WriteJSON(w, nil, http.StatusOK)
		return nil
	}
	c, err := h.svc.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		httpx.WriteJSON(w, nil, http.StatusOK)
		return nil
	}
	httpx.WriteJSON(w, c, http.StatusOK)
	return nil
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	in, err := httpx.Decode[CreateReq](r)
	if err != nil {
		httpx.WriteJSON(w, map[string]any{
			"message": "Could not save comment",
			"errors":  map[string]string{"body": "invalid JSON"},
		}, http.StatusBadRequest)
		return nil
	}
	if errs := validate.Struct(in); errs != nil {
		httpx.WriteJSON(w, map[string]any{
			"message": "Could not save comment",
			"errors":  errs,
		}, http.StatusBadRequest)
		return nil
	}
	c, err := h.svc.Create(in)
	if err != nil {
		httpx.WriteJSON(w, map[string]any{
			"message": "Could not save comment",
			"errors":  map[string]string{"store": err.Error()},
		}, http.StatusBadRequest)
		return nil
	}
	httpx.WriteJSON(w, c, http.StatusCreated)
	return nil
}

func (h *Handler) Like(w http.ResponseWriter, r *http.Request) error {
	id, _ := strconv.ParseUint(r.PathValue("id"), 10, 64)
	c, err := h.svc.Like(id)
	if err != nil {
		httpx.WriteJSON(w, map[string]any{
			"message": "Could not like comment",
			"errors":  map[string]string{"id": err.Error()},
		}, http.StatusBadRequest)
		return nil
	}
	httpx.WriteJSON(w, c, http.StatusOK)
	return nil
}
