package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kamasanicharan/BoldScholars/internal/services"
	"github.com/kamasanicharan/BoldScholars/internal/utils"
)

type AuthHandler struct {
	BaseHandler
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		authService: authService,
	}
}

// SignIn completes the interactive provider sign-in with the OAuth code.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req services.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body",
			Details: err.Error(),
		})
		return
	}

	session, err := h.authService.SignIn(c.Request.Context(), &req)
	if err != nil {
		h.RespondError(c, err, "Failed to sign in")
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.authService.SignOut(c.Request.Context()); err != nil {
		h.RespondError(c, err, "Failed to sign out")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "signed out"})
}

// Session reports the resolved viewer for the current request. Anonymous
// requests get the guest session shape rather than an error.
func (h *AuthHandler) Session(c *gin.Context) {
	profile, err := GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusOK, services.SessionResponse{State: services.SessionAnonymous})
		return
	}

	c.JSON(http.StatusOK, services.SessionResponse{
		State:   services.SessionAuthenticated,
		Profile: profile,
	})
}
