package ez

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inventory-api/internal/domain"
	resp "inventory-api/internal/transport/http/response"
)

const MsgBadBody = "Format data tidak valid"

type EZ struct {
	g   *gin.RouterGroup
	log *zap.Logger
}

func New(g *gin.RouterGroup, l *zap.Logger) EZ {
	if l == nil {
		l = zap.NewNop()
	}
	return EZ{g: g, log: l}
}

type Binder string

const (
	BindJSON Binder = "json"
	BindNone Binder = "none" // handler reads c.Param itself
)

// Result is what a handler hands back on success.
type Result[O any] struct {
	Status  int // defaults to 200
	Data    O
	Message string
	// Body replaces the standard envelope when set.
	Body any
}

// Action describes one endpoint: I is the bound input, O the response data.
type Action[I any, O any] struct {
	Method string
	Path   string
	Binder Binder
	// ExposeErrors sends the raw message of unexpected errors to the client
	// instead of the generic one.
	ExposeErrors bool
	Handler      func(c *gin.Context, in *I) (Result[O], error)
}

func RegisterAction[I any, O any](e EZ, a Action[I, O]) {
	h := func(c *gin.Context) {
		var in I
		if a.Binder == BindJSON {
			if err := c.ShouldBindJSON(&in); err != nil {
				c.JSON(http.StatusBadRequest, resp.Error(MsgBadBody))
				return
			}
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			e.fail(c, err, a.ExposeErrors)
			return
		}
		status := out.Status
		if status == 0 {
			status = http.StatusOK
		}
		if out.Body != nil {
			c.JSON(status, out.Body)
			return
		}
		c.JSON(status, resp.OK(out.Data, out.Message))
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default:
		e.g.POST(a.Path, h)
	}
}

// fail maps domain errors onto the envelope. Storage and unknown errors are
// logged with their cause; the client only sees the public message.
func (e EZ) fail(c *gin.Context, err error, expose bool) {
	_ = c.Error(err)
	if ae, ok := domain.AsAppError(err); ok {
		if ve, ok := ae.(*domain.ValidationError); ok {
			c.JSON(ve.HTTPCode(), resp.Error(ve.Message(), ve.Messages()...))
			return
		}
		if ae.HTTPCode() >= http.StatusInternalServerError {
			e.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		}
		c.JSON(ae.HTTPCode(), resp.Error(ae.Message()))
		return
	}

	e.log.Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
	msg := domain.MsgInternal
	if expose {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp.Error(msg))
}
