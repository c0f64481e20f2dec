package http

import (
	"errors"
	"net/http"

	"github.com/opencrew/taskhub/internal/taskhub/service"
	"github.com/opencrew/taskhub/pkg/httpx"
	"github.com/opencrew/taskhub/pkg/tasksdk"
)

type RegistrationHandler struct {
	RegistrationService *service.RegistrationService
	AccountService      *service.AccountService
}

// HandleRegister godoc
//
//	@Summary		Start Registration
//	@Description	Begin an email-verified signup. A 6-digit code is emailed to the address; it expires after 10 minutes.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.RegisterRequest	true	"Registration details"
//	@Success		202		{object}	tasksdk.RegisterResponse
//	@Failure		400		{object}	tasksdk.ErrorResponse
//	@Failure		409		{object}	tasksdk.ErrorResponse
//	@Router			/v1/users/register [post].
func (h *RegistrationHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	processID, err := h.RegistrationService.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusConflict, "email_taken", "Email is already registered")
		case errors.Is(err, service.ErrWeakPassword):
			writeError(w, http.StatusBadRequest, "weak_password", "Password must be at least 8 characters")
		default:
			writeServiceError(w, r, err)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusAccepted, tasksdk.RegisterResponse{ProcessID: processID})
}

// HandleVerifyEmail godoc
//
//	@Summary		Verify Email
//	@Description	Complete a signup by submitting the emailed code. Creates the account on success.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.VerifyEmailRequest	true	"Process id and code"
//	@Success		201		{object}	tasksdk.UserResponse
//	@Failure		400		{object}	tasksdk.ErrorResponse
//	@Failure		409		{object}	tasksdk.ErrorResponse
//	@Router			/v1/users/email/verify [post].
func (h *RegistrationHandler) HandleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.VerifyEmailRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.RegistrationService.VerifyEmail(r.Context(), req.ProcessID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVerificationInvalid):
			writeError(w, http.StatusBadRequest, "invalid_code", "Verification code invalid or expired")
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusConflict, "email_taken", "Email is already registered")
		default:
			writeServiceError(w, r, err)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

// HandleMe godoc
//
//	@Summary		Current User
//	@Description	Return the account behind the session.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	tasksdk.UserResponse
//	@Failure		401	{object}	tasksdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/v1/users [get].
func (h *RegistrationHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	a, _, ok := actor(w, r)
	if !ok {
		return
	}

	user, err := h.AccountService.GetUser(r.Context(), a.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
