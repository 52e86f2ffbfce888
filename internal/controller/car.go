// Package controller turns car requests into record store operations.
//
// Every handler returns either a response or an error, never both. Errors are
// *errors.AppError values; writing them out is left to the transport.
package controller

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"

	"car-api-go/internal/constants"
	"car-api-go/internal/errors"
	"car-api-go/internal/models"
	"car-api-go/internal/store"

	"go.uber.org/zap"
)

// RemovedMessage confirms a successful removal
const RemovedMessage = "Removed the car from the database."

// Request describes an incoming call independent of the transport
type Request struct {
	Params map[string]string
	Body   []byte
}

// Param returns the named path parameter, or "" when absent
func (r Request) Param(name string) string {
	return r.Params[name]
}

// Response is the payload a transport writes on success
type Response struct {
	Status int
	Body   interface{}
}

// HandlerFunc is the shape shared by all controller handlers
type HandlerFunc func(ctx context.Context, req Request) (*Response, error)

type CarController struct {
	store  store.CarStore
	logger *zap.Logger
}

func NewCarController(carStore store.CarStore, logger *zap.Logger) *CarController {
	return &CarController{
		store:  carStore,
		logger: logger,
	}
}

// List returns every car
func (c *CarController) List(ctx context.Context, req Request) (*Response, error) {
	cars, err := c.store.List(ctx)
	if err != nil {
		return nil, c.internal("list", err)
	}
	return &Response{Status: http.StatusOK, Body: cars}, nil
}

// Create appends a car built from the request body
func (c *CarController) Create(ctx context.Context, req Request) (*Response, error) {
	if isEmptyBody(req.Body) {
		return nil, errors.NewValidationError("Request body is required to create a car.")
	}

	var car models.Car
	if err := json.Unmarshal(req.Body, &car); err != nil {
		c.logger.Warn(fmt.Sprintf("%s Invalid JSON", constants.APIName()), zap.Error(err))
		return nil, errors.NewJSONError(err)
	}
	car.ID = ""

	if err := c.store.Append(ctx, &car); err != nil {
		return nil, c.internal("create", err)
	}

	c.logger.Info(fmt.Sprintf("%s Created car", constants.APIName()), zap.String("car_id", car.ID))
	return &Response{Status: http.StatusOK, Body: car}, nil
}

// Update applies the fields present in the body to an existing car
func (c *CarController) Update(ctx context.Context, req Request) (*Response, error) {
	id := req.Param("id")
	if _, err := c.store.FindByID(ctx, id); err != nil {
		return nil, c.lookupError("update", id, err)
	}

	var patch models.CarPatch
	if !isBlank(req.Body) {
		if err := json.Unmarshal(req.Body, &patch); err != nil {
			c.logger.Warn(fmt.Sprintf("%s Invalid JSON", constants.APIName()), zap.Error(err))
			return nil, errors.NewJSONError(err)
		}
	}

	car, err := c.store.Update(ctx, id, patch)
	if err != nil {
		return nil, c.lookupError("update", id, err)
	}

	c.logger.Info(fmt.Sprintf("%s Updated car", constants.APIName()), zap.String("car_id", id))
	return &Response{Status: http.StatusOK, Body: car}, nil
}

// Remove deletes an existing car
func (c *CarController) Remove(ctx context.Context, req Request) (*Response, error) {
	id := req.Param("id")
	if _, err := c.store.FindByID(ctx, id); err != nil {
		return nil, c.lookupError("remove", id, err)
	}

	if err := c.store.RemoveByID(ctx, id); err != nil {
		return nil, c.lookupError("remove", id, err)
	}

	c.logger.Info(fmt.Sprintf("%s Removed car", constants.APIName()), zap.String("car_id", id))
	return &Response{
		Status: http.StatusOK,
		Body:   map[string]string{"message": RemovedMessage},
	}, nil
}

func (c *CarController) lookupError(op, id string, err error) error {
	if stderrors.Is(err, store.ErrNotFound) {
		c.logger.Debug(fmt.Sprintf("%s Car not found", constants.APIName()),
			zap.String("op", op), zap.String("car_id", id))
		return errors.NewCarNotFoundError()
	}
	return c.internal(op, err)
}

func (c *CarController) internal(op string, err error) error {
	c.logger.Error(fmt.Sprintf("%s Store operation failed", constants.APIName()),
		zap.String("op", op), zap.Error(err))
	return errors.NewInternalError(err)
}

func isBlank(body []byte) bool {
	return len(bytes.TrimSpace(body)) == 0
}

// isEmptyBody treats "", null and {} as no body at all
func isEmptyBody(body []byte) bool {
	if isBlank(body) {
		return true
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return false
	}
	return len(fields) == 0
}
