package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/press-service/internal/errors"
	"github.com/pribylovaa/press-service/internal/http/middleware"
	"github.com/pribylovaa/press-service/internal/service"
)

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	pair, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenPairFromModel(pair))
}

func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	pair, err := h.svc.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenPairFromModel(pair))
}

// Logout завершает все сессии администратора.
// Тело с refresh_token необязательно.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	var req refreshRequest
	if err := decodeOptional(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.svc.Logout(r.Context(), sess.AdminID, req.RefreshToken); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, okDTO{OK: true})
}

func (h *Handlers) Session(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	writeJSON(w, http.StatusOK, sessionFromModel(sess))
}
