package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chirpnet/social-api/internal/api/middleware"
	"github.com/chirpnet/social-api/internal/core/domain"
	"github.com/chirpnet/social-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup creates a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "New account details"
// @Success      201   {object}  privateProfileResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return domain.NewValidationError("email", "email is taken")
		}
		return err
	}

	return c.JSON(http.StatusCreated, newPrivateProfileResponse(user))
}

// Token verifies an email/password pair and mints an access+refresh token pair.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      object{email=string,password=string}  true  "Credentials"
// @Success      201   {object}  tokenPairResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	payload, ok := middleware.Payload(c)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json format")
	}

	// Presence only; anything beyond that is the credential check's job.
	fields := make(map[string]string)
	if _, ok := payload["email"]; !ok {
		fields["email"] = "email is required"
	}
	if _, ok := payload["password"]; !ok {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}

	email, _ := payload["email"].(string)
	password, _ := payload["password"].(string)

	pair, err := h.authService.Login(c.Request().Context(), email, password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "user not found")
		}
		return err
	}

	return c.JSON(http.StatusCreated, tokenPairResponse{
		Bearer:  issuedTokenResponse{Token: pair.Bearer.Token, Expires: pair.Bearer.ExpiresIn},
		Refresh: issuedTokenResponse{Token: pair.Refresh.Token, Expires: pair.Refresh.ExpiresIn},
	})
}

// Refresh mints a fresh access token for a refresh-scope principal.
//
// @Summary      Refresh the access token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  issuedTokenResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	issued, err := h.authService.Refresh(c.Request().Context(), principal)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, issuedTokenResponse{Token: issued.Token, Expires: issued.ExpiresIn})
}
