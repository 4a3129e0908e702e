package handlers

import (
	"net/http"
	"strconv"

	"goleironow/middleware"
	"goleironow/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ToggleFavoriteHandler flips a goalkeeper in the client's favorites and
// returns the authoritative favorites set.
func ToggleFavoriteHandler(c *gin.Context) {
	logger := getLogger(c)
	sess := middleware.CurrentSession(c)

	goalkeeperID, err := strconv.Atoi(c.Param("goalkeeperId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goalkeeper id"})
		return
	}

	if err := sessionService.ToggleFavorite(sess, goalkeeperID); err != nil {
		logger.Error("Failed to toggle favorite",
			zap.Int("goalkeeperID", goalkeeperID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"favorites": sess.Record.User.Favorites,
		"favorite":  sessionService.IsFavorite(sess, goalkeeperID),
	})
}

// ListFavoritesHandler returns the client's favorite goalkeepers, resolved
// to full profiles. Favorites pointing at removed profiles are skipped.
func ListFavoritesHandler(c *gin.Context) {
	logger := getLogger(c)
	sess := middleware.CurrentSession(c)

	favorites := make([]models.Goalkeeper, 0, len(sess.Record.User.Favorites))
	for _, id := range sess.Record.User.Favorites {
		gk, err := gkDirectory.GetByID(id)
		if err != nil {
			logger.Error("Failed to resolve favorite", zap.Int("goalkeeperID", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load favorites"})
			return
		}
		if gk == nil {
			continue
		}
		favorites = append(favorites, *gk)
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// FavoriteStatusHandler reports whether a goalkeeper is in the session's
// favorites. False for any non-client session.
func FavoriteStatusHandler(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	goalkeeperID, err := strconv.Atoi(c.Param("goalkeeperId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goalkeeper id"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorite": sessionService.IsFavorite(sess, goalkeeperID)})
}
