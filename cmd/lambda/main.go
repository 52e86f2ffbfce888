package main

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"car-api-go/internal/config"
	"car-api-go/internal/constants"
	"car-api-go/internal/controller"
	"car-api-go/internal/errors"
	"car-api-go/internal/lambda"
	"car-api-go/internal/repository"
	"car-api-go/internal/store"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

const carsPath = "/api/v1/cars"

var (
	carController *controller.CarController
	logger        *zap.Logger
)

func init() {
	cfg, err := config.LoadLambdaConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load Lambda config: %v", err))
	}

	if cfg.LogLevel == "debug" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}

	ctx := context.Background()
	carStore, err := openStore(ctx, cfg.Store)
	if err != nil {
		logger.Fatal("Failed to open car store", zap.Error(err))
	}
	if cfg.Store.SeedFixtures {
		if err := carStore.Reset(ctx); err != nil {
			logger.Fatal("Failed to seed fixtures", zap.Error(err))
		}
	}

	carController = controller.NewCarController(carStore, logger)
	logger.Info(fmt.Sprintf("%s Lambda handler initialized", constants.APIName()),
		zap.String("store_backend", cfg.Store.Backend))
}

func main() {
	awslambda.Start(handler)
}

func openStore(ctx context.Context, cfg config.StoreConfig) (store.CarStore, error) {
	if cfg.Backend != config.BackendPostgres {
		return store.NewMemoryStore(), nil
	}

	pool, err := lambda.GetConnectionPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return nil, err
	}
	repo := repository.NewCarRepository(pool)
	if err := repo.EnsureTable(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

func handler(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	path := strings.TrimSuffix(request.RequestContext.HTTP.Path, "/")
	method := request.RequestContext.HTTP.Method

	logger.Info(fmt.Sprintf("%s Lambda request", constants.APIName()),
		zap.String("method", method),
		zap.String("path", path),
	)

	if method == http.MethodOptions {
		return createResponse(http.StatusNoContent, nil), nil
	}

	if path == carsPath+"/health" && method == http.MethodGet {
		return createResponse(http.StatusOK, map[string]interface{}{
			"status":  "healthy",
			"message": "Car API is healthy",
		}), nil
	}

	id, isItem := carID(path, request.PathParameters)
	switch {
	case path == carsPath && method == http.MethodGet:
		return dispatch(ctx, carController.List, request, "")
	case path == carsPath && method == http.MethodPost:
		return dispatch(ctx, carController.Create, request, "")
	case isItem && method == http.MethodPut:
		return dispatch(ctx, carController.Update, request, id)
	case isItem && method == http.MethodDelete:
		return dispatch(ctx, carController.Remove, request, id)
	default:
		return createResponse(http.StatusNotFound, map[string]interface{}{
			"error":  "Not Found",
			"status": http.StatusNotFound,
		}), nil
	}
}

// carID extracts the id of a /api/v1/cars/{id} path
func carID(path string, params map[string]string) (string, bool) {
	rest, ok := strings.CutPrefix(path, carsPath+"/")
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	if id := params["id"]; id != "" {
		return id, true
	}
	return rest, true
}

// dispatch runs fn and renders the error it returns, if any, as the HTTP
// error response
func dispatch(ctx context.Context, fn controller.HandlerFunc, request events.APIGatewayV2HTTPRequest, id string) (events.APIGatewayV2HTTPResponse, error) {
	req := controller.Request{Body: []byte(request.Body)}
	if id != "" {
		req.Params = map[string]string{"id": id}
	}

	resp, err := fn(ctx, req)
	if err != nil {
		var appErr *errors.AppError
		if !stderrors.As(err, &appErr) {
			appErr = errors.NewInternalError(err)
		}
		if appErr.StatusCode >= http.StatusInternalServerError {
			logger.Error(fmt.Sprintf("%s Request failed", constants.APIName()), zap.Error(err))
		}
		return createResponse(appErr.StatusCode, map[string]interface{}{
			"error":  appErr.Message,
			"status": appErr.StatusCode,
		}), nil
	}
	return createResponse(resp.Status, resp.Body), nil
}

func createResponse(statusCode int, body interface{}) events.APIGatewayV2HTTPResponse {
	headers := map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type",
	}

	if body == nil {
		return events.APIGatewayV2HTTPResponse{StatusCode: statusCode, Headers: headers}
	}

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		logger.Error("Failed to marshal response", zap.Error(err))
		bodyBytes = []byte(`{"error":"Internal server error"}`)
		statusCode = http.StatusInternalServerError
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       string(bodyBytes),
	}
}
