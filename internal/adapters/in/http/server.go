// Package http adapts the order intake use cases to an HTTP API built on Echo.
// Handlers translate between JSON payloads and commands/queries, and map
// domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/Ramos-Maykol/project/internal/core/application/usecases/commands"
	"github.com/Ramos-Maykol/project/internal/core/application/usecases/queries"
	"github.com/Ramos-Maykol/project/internal/core/domain/model/kernel"
	"github.com/Ramos-Maykol/project/internal/core/domain/model/order"
	"github.com/Ramos-Maykol/project/internal/pkg/errs"
	"github.com/Ramos-Maykol/project/internal/pkg/guard"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	trainModelHandler        commands.TrainModelCommandHandler

	// Query handlers
	estimateDeliveryHandler   queries.EstimateDeliveryQueryHandler
	getProductionQueueHandler queries.GetProductionQueueQueryHandler
	getProductTypesHandler    queries.GetProductTypesQueryHandler
	getModelStatsHandler      queries.GetModelStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	trainModelHandler commands.TrainModelCommandHandler,
	estimateDeliveryHandler queries.EstimateDeliveryQueryHandler,
	getProductionQueueHandler queries.GetProductionQueueQueryHandler,
	getProductTypesHandler queries.GetProductTypesQueryHandler,
	getModelStatsHandler queries.GetModelStatsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		changeOrderStatusHandler:  changeOrderStatusHandler,
		trainModelHandler:         trainModelHandler,
		estimateDeliveryHandler:   estimateDeliveryHandler,
		getProductionQueueHandler: getProductionQueueHandler,
		getProductTypesHandler:    getProductTypesHandler,
		getModelStatsHandler:      getModelStatsHandler,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.GET("/orders/queue", s.GetProductionQueue)
	api.POST("/orders/estimate-delivery", s.EstimateDelivery)
	api.GET("/product-types", s.GetProductTypes)
	api.GET("/model/stats", s.GetModelStats)
	api.POST("/model/retrain", s.RetrainModel)
}

// ErrorResponse is the JSON body of failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the JSON body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerName  string  `json:"customer_name"`
	ProductTypeID int     `json:"product_type_id"`
	Quantity      int     `json:"quantity"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	Depth         float64 `json:"depth"`
	Priority      int     `json:"priority"`
}

// OrderResponse is the JSON representation of an accepted order.
type OrderResponse struct {
	ID                    string     `json:"id"`
	OrderNumber           string     `json:"order_number"`
	CustomerName          string     `json:"customer_name"`
	ProductTypeID         int        `json:"product_type_id"`
	Quantity              int        `json:"quantity"`
	Width                 float64    `json:"width"`
	Height                float64    `json:"height"`
	Depth                 float64    `json:"depth"`
	Priority              int        `json:"priority"`
	Status                string     `json:"status"`
	EstimatedHours        float64    `json:"estimated_production_hours"`
	EstimatedDeliveryDate time.Time  `json:"estimated_delivery_date"`
	PlacedAt              time.Time  `json:"order_date"`
	StartedAt             *time.Time `json:"start_production_date,omitempty"`
	CompletedAt           *time.Time `json:"completion_date,omitempty"`
	DeliveredAt           *time.Time `json:"delivery_date,omitempty"`
	ModelUsed             string     `json:"model_used"`
}

// CreateOrder handles POST /api/v1/orders - accepts a new production order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	dims, err := kernel.NewDimensions(req.Width, req.Height, req.Depth)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), req.CustomerName, req.ProductTypeID, req.Quantity, dims, req.Priority)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(result.Order, string(result.Source)))
}

// ChangeOrderStatusRequest is the JSON body of PATCH /api/v1/orders/:id/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status - advances an
// order through its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var req ChangeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid transition: " + err.Error(),
		})
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// EstimateDeliveryRequest is the JSON body of POST /api/v1/orders/estimate-delivery.
type EstimateDeliveryRequest struct {
	ProductTypeID int     `json:"product_type_id"`
	Quantity      int     `json:"quantity"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	Depth         float64 `json:"depth"`
	Priority      int     `json:"priority"`
}

// EstimateDeliveryResponse carries a delivery preview.
type EstimateDeliveryResponse struct {
	EstimatedHours        float64   `json:"estimated_production_hours"`
	CurrentQueueHours     float64   `json:"current_queue_hours"`
	EstimatedDeliveryDate time.Time `json:"estimated_delivery_date"`
	QueuePosition         int       `json:"queue_position"`
	ModelUsed             string    `json:"model_used"`
}

// EstimateDelivery handles POST /api/v1/orders/estimate-delivery - previews a
// delivery promise without creating an order.
func (s *Server) EstimateDelivery(ctx echo.Context) error {
	var req EstimateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	query, err := queries.NewEstimateDeliveryQuery(
		req.ProductTypeID, req.Quantity, req.Width, req.Height, req.Depth, req.Priority)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	estimate, err := s.estimateDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, EstimateDeliveryResponse{
		EstimatedHours:        estimate.EstimatedHours,
		CurrentQueueHours:     estimate.EffectiveQueueHours,
		EstimatedDeliveryDate: estimate.EstimatedDeliveryDate,
		QueuePosition:         estimate.QueuePosition,
		ModelUsed:             string(estimate.Source),
	})
}

// QueueEntryResponse is one row of the production queue.
type QueueEntryResponse struct {
	ID                    string    `json:"id"`
	OrderNumber           string    `json:"order_number"`
	CustomerName          string    `json:"customer_name"`
	ProductTypeName       string    `json:"product_type_name"`
	Quantity              int       `json:"quantity"`
	Priority              int       `json:"priority"`
	Status                string    `json:"status"`
	EstimatedHours        float64   `json:"estimated_production_hours"`
	EstimatedDeliveryDate time.Time `json:"estimated_delivery_date"`
	PlacedAt              time.Time `json:"order_date"`
}

// GetProductionQueue handles GET /api/v1/orders/queue - retrieves the active
// production queue.
func (s *Server) GetProductionQueue(ctx echo.Context) error {
	queue, err := s.getProductionQueueHandler.Handle(
		ctx.Request().Context(), queries.NewGetProductionQueueQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]QueueEntryResponse, len(queue))
	for i, entry := range queue {
		response[i] = QueueEntryResponse{
			ID:                    entry.ID.String(),
			OrderNumber:           entry.OrderNumber,
			CustomerName:          entry.CustomerName,
			ProductTypeName:       entry.ProductTypeName,
			Quantity:              entry.Quantity,
			Priority:              entry.Priority,
			Status:                entry.Status,
			EstimatedHours:        entry.EstimatedHours,
			EstimatedDeliveryDate: entry.EstimatedDeliveryDate,
			PlacedAt:              entry.PlacedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ProductTypeResponse is one catalog entry.
type ProductTypeResponse struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	MaterialType       string  `json:"material_type"`
	BaseProductionTime float64 `json:"base_production_time"`
	ComplexityFactor   float64 `json:"complexity_factor"`
}

// GetProductTypes handles GET /api/v1/product-types - retrieves the catalog.
func (s *Server) GetProductTypes(ctx echo.Context) error {
	catalog, err := s.getProductTypesHandler.Handle(
		ctx.Request().Context(), queries.NewGetProductTypesQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]ProductTypeResponse, len(catalog))
	for i, entry := range catalog {
		response[i] = ProductTypeResponse{
			ID:                 entry.ID,
			Name:               entry.Name,
			MaterialType:       entry.MaterialType,
			BaseProductionTime: entry.BaseProductionTime,
			ComplexityFactor:   entry.ComplexityFactor,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TrainingRunResponse is one entry of the training history.
type TrainingRunResponse struct {
	Timestamp   time.Time `json:"timestamp"`
	SampleCount int       `json:"sample_count"`
	Accuracy    float64   `json:"accuracy"`
	DurationMS  int64     `json:"training_time_ms"`
}

// ModelStatsResponse is the JSON body of GET /api/v1/model/stats.
type ModelStatsResponse struct {
	IsTrained     bool                  `json:"is_trained"`
	IsTraining    bool                  `json:"is_training"`
	LastTrainedAt *time.Time            `json:"last_training_date"`
	Accuracy      float64               `json:"accuracy"`
	ModelType     string                `json:"model_type"`
	Estimators    int                   `json:"estimators"`
	MaxDepth      int                   `json:"max_depth"`
	SampleCount   int                   `json:"sample_count"`
	History       []TrainingRunResponse `json:"training_history"`
}

// GetModelStats handles GET /api/v1/model/stats - exposes the duration
// model's state.
func (s *Server) GetModelStats(ctx echo.Context) error {
	resp, err := s.getModelStatsHandler.Handle(
		ctx.Request().Context(), queries.NewGetModelStatsQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	history := make([]TrainingRunResponse, len(resp.Stats.History))
	for i, run := range resp.Stats.History {
		history[i] = TrainingRunResponse{
			Timestamp:   run.Timestamp,
			SampleCount: run.SampleCount,
			Accuracy:    run.Accuracy,
			DurationMS:  run.Duration.Milliseconds(),
		}
	}

	return ctx.JSON(http.StatusOK, ModelStatsResponse{
		IsTrained:     resp.Stats.IsTrained,
		IsTraining:    resp.Stats.IsTraining,
		LastTrainedAt: resp.Stats.LastTrainedAt,
		Accuracy:      resp.Stats.Accuracy,
		ModelType:     resp.Stats.ModelType,
		Estimators:    resp.Stats.Estimators,
		MaxDepth:      resp.Stats.MaxDepth,
		SampleCount:   resp.Stats.SampleCount,
		History:       history,
	})
}

// RetrainModel handles POST /api/v1/model/retrain - triggers a training pass.
func (s *Server) RetrainModel(ctx echo.Context) error {
	err := s.trainModelHandler.Handle(ctx.Request().Context(), commands.NewTrainModelCommand())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "trained"})
}

// errorResponse maps domain errors onto HTTP status codes.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInsufficientData):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, guard.ErrDefaultConstructorGuard):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func orderToResponse(o *order.Order, modelUsed string) OrderResponse {
	dims := o.Dimensions()

	return OrderResponse{
		ID:                    o.ID().String(),
		OrderNumber:           o.OrderNumber(),
		CustomerName:          o.CustomerName(),
		ProductTypeID:         o.ProductTypeID(),
		Quantity:              o.Quantity(),
		Width:                 dims.Width(),
		Height:                dims.Height(),
		Depth:                 dims.Depth(),
		Priority:              o.Priority(),
		Status:                o.Status().String(),
		EstimatedHours:        o.EstimatedHours(),
		EstimatedDeliveryDate: o.EstimatedDeliveryDate(),
		PlacedAt:              o.PlacedAt(),
		StartedAt:             o.StartedAt(),
		CompletedAt:           o.CompletedAt(),
		DeliveredAt:           o.DeliveredAt(),
		ModelUsed:             modelUsed,
	}
}
