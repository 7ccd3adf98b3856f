package user

import (
	"net/http"

	"food-service/internal/shared/httpx"
	"food-service/internal/shared/validate"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) error {
	in, err := httpx.Decode[RegisterReq](r)
	if err != nil {
		httpx.WriteJSON(w, map[string]any{
			"message": "Could not create user",
			"errors":  map[string]string{"body": "invalid JSON"},
		}, http.StatusBadRequest)
		return nil
	}
	if errs := validate.Struct(in); errs != nil {
		httpx.WriteJSON(w, map[string]any{
			"message": "Could not create user",
			"errors":  errs,
		}, http.StatusBadRequest)
		return nil
	}
	u, err := h.svc.Register(in.Name, in.Password)
	if err != nil {
		httpx.WriteJSON(w, map[string]any{
			"message": "Could not create user",
			"errors":  map[string]string{"store": err.Error()},
		}, http.StatusBadRequest)
		return nil
	}
	httpx.WriteJSON(w, map[string]any{
		"id":          u.ID,
		"accessToken": u.AccessToken,
	}, http.StatusCreated)
	return nil
}

// Login answers 200 either way; a miss is signalled in the body, never by
// the status code.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) error {
	in, err := httpx.Decode[LoginReq](r)
	if err != nil {
		httpx.WriteJSON(w, map[string]any{"notFound": true}, http.StatusOK)
		return nil
	}
	u, err := h.svc.Login(in.Name, in.Password)
	if err != nil {
		return err
	}
	if u == nil {
		httpx.WriteJSON(w, map[string]any{"notFound": true}, http.StatusOK)
		return nil
	}
	httpx.WriteJSON(w, map[string]any{
		"userId":      u.ID,
		"accessToken": u.AccessToken,
	}, http.StatusOK)
	return nil
}

func (h *Handler) Current(w http.ResponseWriter, r *http.Request) error {
	v, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	u, ok := v.(*User)
	if !ok {
		return httpx.ErrUnauthorized
	}
	httpx.WriteJSON(w, u, http.StatusOK)
	return nil
}
