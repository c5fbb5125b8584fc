package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inventory-api/internal/domain"
	httpez "inventory-api/internal/transport/http/ez"
)

const (
	MsgItemCreated = "Barang berhasil ditambahkan"
	MsgItemUpdated = "Barang berhasil diupdate"
	MsgItemDeleted = "Barang berhasil dihapus"
)

type ItemService interface {
	List(ctx context.Context) ([]domain.Item, error)
	Get(ctx context.Context, id string) (*domain.Item, error)
	Create(ctx context.Context, in domain.ItemInput) (*domain.Item, error)
	Update(ctx context.Context, id string, patch domain.ItemPatch) (*domain.Item, error)
	Delete(ctx context.Context, id string) error
}

type ItemHandler struct {
	svc ItemService
	log *zap.Logger
}

func NewItemHandler(svc ItemService, l *zap.Logger) *ItemHandler {
	if l == nil {
		l = zap.NewNop()
	}
	return &ItemHandler{svc: svc, log: l}
}

func (h *ItemHandler) Priority() int { return 20 }

// Mount registers the item routes; all of them need a token.
func (h *ItemHandler) Mount(_, authed *gin.RouterGroup) {
	ez := httpez.New(authed, h.log)

	httpez.RegisterAction(ez, httpez.Action[struct{}, []domain.Item]{
		Method: http.MethodGet,
		Path:   "/items",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (httpez.Result[[]domain.Item], error) {
			items, err := h.svc.List(c.Request.Context())
			return httpez.Result[[]domain.Item]{Data: items}, err
		},
	})

	httpez.RegisterAction(ez, httpez.Action[domain.ItemInput, *domain.Item]{
		Method: http.MethodPost,
		Path:   "/items",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *domain.ItemInput) (httpez.Result[*domain.Item], error) {
			it, err := h.svc.Create(c.Request.Context(), *in)
			return httpez.Result[*domain.Item]{Status: http.StatusCreated, Data: it, Message: MsgItemCreated}, err
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, *domain.Item]{
		Method: http.MethodGet,
		Path:   "/items/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (httpez.Result[*domain.Item], error) {
			it, err := h.svc.Get(c.Request.Context(), c.Param("id"))
			return httpez.Result[*domain.Item]{Data: it}, err
		},
	})

	httpez.RegisterAction(ez, httpez.Action[domain.ItemPatch, *domain.Item]{
		Method:       http.MethodPut,
		Path:         "/items/:id",
		Binder:       httpez.BindJSON,
		ExposeErrors: true,
		Handler: func(c *gin.Context, in *domain.ItemPatch) (httpez.Result[*domain.Item], error) {
			it, err := h.svc.Update(c.Request.Context(), c.Param("id"), *in)
			return httpez.Result[*domain.Item]{Data: it, Message: MsgItemUpdated}, err
		},
	})

	// no data on success, only the message
	httpez.RegisterAction(ez, httpez.Action[struct{}, any]{
		Method:       http.MethodDelete,
		Path:         "/items/:id",
		Binder:       httpez.BindNone,
		ExposeErrors: true,
		Handler: func(c *gin.Context, _ *struct{}) (httpez.Result[any], error) {
			err := h.svc.Delete(c.Request.Context(), c.Param("id"))
			return httpez.Result[any]{Message: MsgItemDeleted}, err
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, []domain.Category]{
		Method: http.MethodGet,
		Path:   "/categories",
		Binder: httpez.BindNone,
		Handler: func(_ *gin.Context, _ *struct{}) (httpez.Result[[]domain.Category], error) {
			return httpez.Result[[]domain.Category]{Data: domain.Categories()}, nil
		},
	})
}
