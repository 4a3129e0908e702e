package handlers

import (
	"net/http"
	"strconv"

	"goleironow/middleware"
	"goleironow/models"
	"goleironow/services/goalkeeper"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GoalkeeperHandler serves goalkeeper browsing and profile management.
type GoalkeeperHandler struct {
	Service goalkeeper.GoalkeeperService
}

func NewGoalkeeperHandler(svc goalkeeper.GoalkeeperService) *GoalkeeperHandler {
	return &GoalkeeperHandler{Service: svc}
}

// ListGoalkeepersHandler returns goalkeepers matching the query filters
// (region, maxPrice, minRating).
func (h *GoalkeeperHandler) ListGoalkeepersHandler(c *gin.Context) {
	logger := getLogger(c)

	var filter goalkeeper.Filter
	filter.Region = c.Query("region")
	if v := c.Query("maxPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxPrice"})
			return
		}
		filter.MaxPrice = price
	}
	if v := c.Query("minRating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minRating"})
			return
		}
		filter.MinRating = rating
	}

	gks, err := h.Service.List(filter)
	if err != nil {
		logger.Error("Failed to list goalkeepers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list goalkeepers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goalkeepers": gks})
}

// GetGoalkeeperByIDHandler returns one goalkeeper profile.
func (h *GoalkeeperHandler) GetGoalkeeperByIDHandler(c *gin.Context) {
	logger := getLogger(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goalkeeper id"})
		return
	}

	gk, err := h.Service.GetByID(id)
	if err != nil {
		logger.Error("Failed to fetch goalkeeper", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goalkeeper"})
		return
	}
	if gk == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goalkeeper not found"})
		return
	}
	c.JSON(http.StatusOK, gk)
}

// RegisterGoalkeeperHandler creates a new goalkeeper profile.
func (h *GoalkeeperHandler) RegisterGoalkeeperHandler(c *gin.Context) {
	logger := getLogger(c)

	var gk models.Goalkeeper
	if err := c.ShouldBindJSON(&gk); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.Register(&gk); err != nil {
		if err == goalkeeper.ErrInvalidProfile {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name, city and pricePerHour are required"})
			return
		}
		logger.Error("Failed to register goalkeeper", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register goalkeeper"})
		return
	}
	c.JSON(http.StatusCreated, gk)
}

// UpdateGoalkeeperProfileHandler updates the authenticated goalkeeper's own
// profile.
func (h *GoalkeeperHandler) UpdateGoalkeeperProfileHandler(c *gin.Context) {
	logger := getLogger(c)
	sess := middleware.CurrentSession(c)

	var changes models.Goalkeeper
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.UpdateProfile(sess.Record.Goalkeeper.ID, changes)
	if err != nil {
		logger.Error("Failed to update goalkeeper profile",
			zap.Int("id", sess.Record.Goalkeeper.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goalkeeper not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}
