package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/marketplace/model"
	utilsContext "github.com/muhammadheryan/marketplace/utils/context"
)

// Register handler
// @Summary Register user
// @Description Register a new buyer account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := s.UserApp.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RequestOTP handler
// @Summary Request login OTP
// @Description Sends a one-time code to the phone number
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.OTPRequest true "OTP Request"
// @Success 200 {object} model.OTPRequestResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/otp/request [post]
func (s *RestHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var req model.OTPRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := s.UserApp.RequestOTP(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// VerifyOTP handler
// @Summary Verify login OTP
// @Description Exchanges a valid code for a JWT, registering the phone on first use
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.OTPVerifyRequest true "OTP Verify Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/otp/verify [post]
func (s *RestHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req model.OTPVerifyRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := s.UserApp.VerifyOTP(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Tags Auth
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	jti, ok := utilsContext.GetTokenID(r.Context())
	if ok {
		if err := s.UserApp.Logout(r.Context(), jti); err != nil {
			writeError(w, err)
			return
		}
	}
	writeNoContent(w)
}

// GetProfile handler
// @Summary Current user profile
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ProfileResponse
// @Router /me [get]
func (s *RestHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.UserApp.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateProfile handler
// @Summary Update shipping profile
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateProfileRequest true "Profile"
// @Success 200 {object} model.ProfileResponse
// @Router /me/profile [put]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateProfileRequest
	if !decode(w, r, &req) {
		return
	}
	userID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.UserApp.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AssignRole handler
// @Summary Grant a role
// @Tags Admin
// @Accept json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param request body model.AssignRoleRequest true "Role"
// @Success 204
// @Failure 409 {object} ErrorResponse
// @Router /admin/users/{userId}/roles [post]
func (s *RestHandler) AssignRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	var req model.AssignRoleRequest
	if !decode(w, r, &req) {
		return
	}

	if err := s.UserApp.AssignRole(r.Context(), userID, req.Role); err != nil {
		writeError(w, err)
		return
	}

	writeNoContent(w)
}

// RevokeRole handler
// @Summary Revoke a role
// @Tags Admin
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param role path string true "Role name"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /admin/users/{userId}/roles/{role} [delete]
func (s *RestHandler) RevokeRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	if err := s.UserApp.RevokeRole(r.Context(), userID, mux.Vars(r)["role"]); err != nil {
		writeError(w, err)
		return
	}

	writeNoContent(w)
}
