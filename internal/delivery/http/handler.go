package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mealscan/backend/internal/domain"
	"github.com/mealscan/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	mapping *usecase.MappingService
	meals   domain.MealStore
	logger  *zap.SugaredLogger
}

// NewHandler creates a new HTTP handler
func NewHandler(mapping *usecase.MappingService, meals domain.MealStore, logger *zap.SugaredLogger) *Handler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Handler{mapping: mapping, meals: meals, logger: logger}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "mealscan-backend",
		"version": "1.0.0",
	})
}

type createMealRequest struct {
	Items []domain.ParsedItem `json:"items" binding:"required,dive"`
}

// CreateMeal records a captured meal's parsed items and returns the
// generated meal id.
func (h *Handler) CreateMeal(c *gin.Context) {
	var req createMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidRequest.Error()})
		return
	}

	mealID, err := h.meals.CreateMeal(c.Request.Context(), req.Items)
	if err != nil {
		h.logger.Errorw("failed to create meal", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal_id": mealID})
}

// GetMeal returns a persisted meal record with any computed results.
func (h *Handler) GetMeal(c *gin.Context) {
	meal, err := h.meals.GetMeal(c.Request.Context(), c.Param("id"))
	if errors.Is(err, domain.ErrMealNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrMealNotFound.Error()})
		return
	}
	if err != nil {
		h.logger.Errorw("failed to load meal", "meal_id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load meal"})
		return
	}

	c.JSON(http.StatusOK, meal)
}

type mapFoodsRequest struct {
	MealID string              `json:"meal_id"`
	Items  []domain.ParsedItem `json:"items" binding:"dive"`
}

// MapFoods maps a meal's parsed items to canonical foods and nutrient
// totals. The response is always HTTP 200: callers branch on the presence
// of the "error" field, not the status code.
func (h *Handler) MapFoods(c *gin.Context) {
	var req mapFoodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": domain.ErrInvalidRequest.Error()})
		return
	}

	result, err := h.mapping.MapMeal(c.Request.Context(), req.MealID, req.Items)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
