package handlers

import (
	"io"

	"car-api-go/internal/controller"
	"car-api-go/internal/errors"

	"github.com/gin-gonic/gin"
)

// CarHandler exposes the car controller over gin
type CarHandler struct {
	controller *controller.CarController
}

func NewCarHandler(c *controller.CarController) *CarHandler {
	return &CarHandler{controller: c}
}

func (h *CarHandler) List(c *gin.Context) {
	serve(c, h.controller.List)
}

func (h *CarHandler) Create(c *gin.Context) {
	serve(c, h.controller.Create)
}

func (h *CarHandler) Update(c *gin.Context) {
	serve(c, h.controller.Update)
}

func (h *CarHandler) Remove(c *gin.Context) {
	serve(c, h.controller.Remove)
}

// Register mounts the car routes on group
func (h *CarHandler) Register(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Remove)
}

// serve runs fn and either writes its response or records the error on the
// context for middleware.ErrorHandler to render.
func serve(c *gin.Context, fn controller.HandlerFunc) {
	req, err := buildRequest(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := fn(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(resp.Status, resp.Body)
}

func buildRequest(c *gin.Context) (controller.Request, error) {
	params := make(map[string]string, len(c.Params))
	for _, p := range c.Params {
		params[p.Key] = p.Value
	}

	var body []byte
	if c.Request.Body != nil {
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return controller.Request{}, errors.NewJSONError(err)
		}
		body = data
	}

	return controller.Request{Params: params, Body: body}, nil
}
