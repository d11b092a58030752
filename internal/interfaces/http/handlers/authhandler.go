package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ministryshare/internal/application/user/usecases"
	"ministryshare/internal/shared/config"
	"ministryshare/internal/shared/logger"
	"ministryshare/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase    *usecases.RegisterUserUseCase
	loginUseCase       *usecases.LoginUseCase
	verifyEmailUseCase *usecases.VerifyEmailUseCase
	resendUseCase      *usecases.ResendVerificationUseCase
	profileUseCase     *usecases.GetProfileUseCase
	cookieConfig       config.CookieConfig
	accessMaxAge       int
	logger             logger.Interface
}

func NewAuthHandler(
	registerUC *usecases.RegisterUserUseCase,
	loginUC *usecases.LoginUseCase,
	verifyEmailUC *usecases.VerifyEmailUseCase,
	resendUC *usecases.ResendVerificationUseCase,
	profileUC *usecases.GetProfileUseCase,
	cookieConfig config.CookieConfig,
	accessMaxAge int,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:    registerUC,
		loginUseCase:       loginUC,
		verifyEmailUseCase: verifyEmailUC,
		resendUseCase:      resendUC,
		profileUseCase:     profileUC,
		cookieConfig:       cookieConfig,
		accessMaxAge:       accessMaxAge,
		logger:             logger,
	}
}

type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=50"`
	DisplayName string `json:"display_name" binding:"required,min=2,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	ChurchID    uint   `json:"church_id" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.RegisterUserCommand{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Password:    req.Password,
		ChurchID:    req.ChurchID,
		Locale:      localeFrom(c),
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "registration successful, please verify your email", result)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetAccessTokenCookie(c, h.cookieConfig, result.Tokens.AccessToken, h.accessMaxAge)

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAccessTokenCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

// VerifyEmail redeems the token from the verification link. The token comes
// as a query parameter because the link lands here directly from the email.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing verification token")
		return
	}

	result, err := h.verifyEmailUseCase.Execute(c.Request.Context(), token)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "email verified", result)
}

func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.resendUseCase.Execute(c.Request.Context(), usecases.ResendVerificationCommand{
		Email:  req.Email,
		Locale: localeFrom(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Same response whether or not the address has an account.
	utils.SuccessResponse(c, http.StatusOK, "if the address has an unverified account, a new link was sent", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	a := actorFrom(c)

	result, err := h.profileUseCase.Execute(c.Request.Context(), a.UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
