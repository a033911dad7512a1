package handler

import (
	"errors"
	"net/http"

	"fashionstore/internal/usecase"
	auth "fashionstore/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	registerUC *auth.RegisterUserUsecase // 会員登録usecase
	loginUC    *auth.LoginUsecase        // ログインusecase
}

// DIコンストラクタ
func NewAuthHandler(registerUC *auth.RegisterUserUsecase, loginUC *auth.LoginUsecase) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
	}
}

// /api/auth/register のリクエストボディ。
type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// /api/auth/login のリクエストボディ。
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// limitはIPごとのレート制限
func (h *AuthHandler) RegisterRoutes(api *echo.Group, limit echo.MiddlewareFunc) {
	g := api.Group("/auth", limit)
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
}

// Register godoc
// @Summary      会員登録
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  registerRequest  true  "email, password, fullName?, phone?, address?"
// @Success      200  {object}  auth.RegisterUserOutput
// @Failure      400  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.registerUC.Execute(c.Request().Context(), auth.RegisterUserInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingCredentials),
			errors.Is(err, auth.ErrInvalidEmailFormat),
			errors.Is(err, auth.ErrPasswordTooShort):
			return badRequest(c, err.Error())
		case errors.Is(err, auth.ErrEmailAlreadyExists):
			// 既存クライアントに合わせて400のまま
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email already registered", Code: usecase.CodeConflict})
		default:
			return writeError(c, err)
		}
	}

	return c.JSON(http.StatusOK, out)
}

// Login godoc
// @Summary      ログイン（JWT発行）
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "email, password"
// @Success      200  {object}  auth.LoginOutput
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingCredentials):
			return badRequest(c, err.Error())
		case errors.Is(err, auth.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid email or password", Code: usecase.CodeUnauthorized})
		default:
			return writeError(c, err)
		}
	}

	return c.JSON(http.StatusOK, out)
}
