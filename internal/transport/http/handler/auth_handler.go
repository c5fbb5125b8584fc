package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inventory-api/internal/core/auth"
	"inventory-api/internal/domain"
	httpez "inventory-api/internal/transport/http/ez"
	mdw "inventory-api/internal/transport/http/middleware"
	resp "inventory-api/internal/transport/http/response"
	"inventory-api/internal/validation"
)

const MsgLoginOK = "Login berhasil"

type AuthHandler struct {
	gate *auth.Gate
	log  *zap.Logger
}

func NewAuthHandler(g *auth.Gate, l *zap.Logger) *AuthHandler {
	if l == nil {
		l = zap.NewNop()
	}
	return &AuthHandler{gate: g, log: l}
}

func (h *AuthHandler) Priority() int { return 10 }

type loginIn struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Mount(public, authed *gin.RouterGroup) {
	// POST /auth: the only route reachable without a token
	httpez.RegisterAction(httpez.New(public, h.log), httpez.Action[loginIn, struct{}]{
		Method:  http.MethodPost,
		Path:    "/auth",
		Binder:  httpez.BindJSON,
		Handler: h.login,
	})

	httpez.RegisterAction(httpez.New(authed, h.log), httpez.Action[struct{}, domain.Identity]{
		Method: http.MethodGet,
		Path:   "/auth/me",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (httpez.Result[domain.Identity], error) {
			id, ok := mdw.IdentityFrom(c)
			if !ok {
				return httpez.Result[domain.Identity]{}, domain.NewAuthenticationError(domain.MsgUnauthorized)
			}
			return httpez.Result[domain.Identity]{Data: id}, nil
		},
	})
}

func (h *AuthHandler) login(c *gin.Context, in *loginIn) (httpez.Result[struct{}], error) {
	var none httpez.Result[struct{}]
	if errs := validation.ValidateLogin(in.Username, in.Password); len(errs) > 0 {
		return none, domain.NewValidationError(errs)
	}
	id := h.gate.ValidateCredentials(in.Username, in.Password)
	if id == nil {
		h.log.Warn("login rejected", zap.String("username", in.Username), zap.String("ip", c.ClientIP()))
		return none, domain.NewAuthenticationError(domain.MsgInvalidCredentials)
	}
	tok, err := h.gate.IssueToken(*id)
	if err != nil {
		return none, err
	}
	h.log.Info("login ok", zap.String("username", id.Username))
	return httpez.Result[struct{}]{Body: resp.AuthResp{
		Success: true,
		Token:   tok,
		User:    id,
		Message: MsgLoginOK,
	}}, nil
}
