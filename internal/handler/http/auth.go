package http

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/attendance-recon-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/validator"
)

type AuthHandler struct {
	jwtService   jwt.Service
	clientID     string
	clientSecret string
}

func NewAuthHandler(jwtService jwt.Service, clientID, clientSecret string) *AuthHandler {
	return &AuthHandler{
		jwtService:   jwtService,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

func (r *tokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}
	if validator.IsEmpty(r.ClientSecret) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_secret",
			Message: "client_secret is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
}

// Token handles POST /api/v1/auth/token
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	idMatch := subtle.ConstantTimeCompare([]byte(req.ClientID), []byte(h.clientID))
	secretMatch := subtle.ConstantTimeCompare([]byte(req.ClientSecret), []byte(h.clientSecret))
	if idMatch&secretMatch != 1 {
		response.Unauthorized(w, "Invalid client credentials")
		return
	}

	token, expiresAt, err := h.jwtService.GenerateAccessToken(req.ClientID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}
