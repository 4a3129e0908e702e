package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"goleironow/config"
	"goleironow/database"
	gkRepo "goleironow/database/repository/goalkeeper"
	reservationRepo "goleironow/database/repository/reservation"
	userRepo "goleironow/database/repository/user"
	"goleironow/handlers"
	"goleironow/middleware"
	"goleironow/models"
	"goleironow/routes"
	"goleironow/services/goalkeeper"
	"goleironow/services/reservation"
	"goleironow/services/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.AppConfig.JWTSecret = "test-secret"
}

// newTestRouter wires the full API against memory repositories, mirroring the
// production wiring in main.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	users := userRepo.NewMemoryUserRepo(database.SeedUsers(), 0)
	gks := gkRepo.NewMemoryGoalkeeperRepo(database.SeedGoalkeepers(), 0)
	reservations := reservationRepo.NewMemoryReservationRepo(database.SeedReservations(), 0)

	sessionService := &session.DefaultSessionService{
		Users:       users,
		Goalkeepers: gks,
		Store:       session.NewMemorySessionStore(),
		TTL:         time.Hour,
	}
	handlers.SetSessionService(sessionService)
	handlers.SetDirectories(users, gks)

	gkHandler := handlers.NewGoalkeeperHandler(&goalkeeper.DefaultGoalkeeperService{Repo: gks})
	resHandler := handlers.NewReservationHandler(&reservation.DefaultReservationService{
		Reservations: reservations,
		Goalkeepers:  gks,
	})

	router := gin.New()
	router.Use(middleware.SessionMiddleware(sessionService))

	hb := &handlers.HandlerBundle{
		AuthenticateHandler: handlers.AuthenticateHandler,
		LogoutHandler:       handlers.LogoutHandler,
		SessionHandler:      handlers.SessionHandler,
		LoginOptionsHandler: handlers.LoginOptionsHandler,

		ListGoalkeepersHandler:         gkHandler.ListGoalkeepersHandler,
		GetGoalkeeperByIDHandler:       gkHandler.GetGoalkeeperByIDHandler,
		RegisterGoalkeeperHandler:      gkHandler.RegisterGoalkeeperHandler,
		UpdateGoalkeeperProfileHandler: gkHandler.UpdateGoalkeeperProfileHandler,

		ToggleFavoriteHandler: handlers.ToggleFavoriteHandler,
		ListFavoritesHandler:  handlers.ListFavoritesHandler,
		FavoriteStatusHandler: handlers.FavoriteStatusHandler,

		CreateReservationHandler:       resHandler.CreateReservationHandler,
		MyReservationsHandler:          resHandler.MyReservationsHandler,
		ReceivedReservationsHandler:    resHandler.ReceivedReservationsHandler,
		UpdateReservationStatusHandler: resHandler.UpdateReservationStatusHandler,
	}
	routes.RegisterRoutes(router, hb)
	return router
}

func call(router *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func loginAs(t *testing.T, router *gin.Engine, id int, role models.Role) string {
	t.Helper()
	w := call(router, http.MethodPost, "/api/auth/login", "", gin.H{"id": id, "role": role})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, ok := decode(t, w)["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	w := call(router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestLoginOptions(t *testing.T) {
	router := newTestRouter(t)

	w := call(router, http.MethodGet, "/api/auth/options", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Len(t, body["clients"], 2)
	assert.Len(t, body["goalkeepers"], 4)
}

func TestLoginAndSession(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, 1, models.RoleClient)

	w := call(router, http.MethodGet, "/api/auth/session", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "client", body["role"])
	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Carlos Silva", user["name"])
	assert.Nil(t, body["goalkeeper"])
}

func TestLoginUnknownAccount(t *testing.T) {
	router := newTestRouter(t)

	w := call(router, http.MethodPost, "/api/auth/login", "", gin.H{"id": 99, "role": "client"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = call(router, http.MethodPost, "/api/auth/login", "", gin.H{"id": 1, "role": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, 1, models.RoleClient)

	w := call(router, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = call(router, http.MethodGet, "/api/auth/session", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListGoalkeepersWithQueryFilters(t *testing.T) {
	router := newTestRouter(t)

	w := call(router, http.MethodGet, "/api/goalkeepers?maxPrice=60", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Goalkeepers []models.Goalkeeper `json:"goalkeepers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Goalkeepers, 2)
	for _, gk := range body.Goalkeepers {
		assert.LessOrEqual(t, gk.PricePerHour, 60.0)
	}
}

func TestGetGoalkeeperByID(t *testing.T) {
	router := newTestRouter(t)

	w := call(router, http.MethodGet, "/api/goalkeepers/2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Fábio Costa", decode(t, w)["name"])

	w = call(router, http.MethodGet, "/api/goalkeepers/99", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleFavoriteFlow(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, 1, models.RoleClient)

	// Goalkeeper 2 starts favorited.
	w := call(router, http.MethodGet, "/api/favorites/2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["favorite"])

	w = call(router, http.MethodPost, "/api/favorites/2/toggle", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["favorite"])

	w = call(router, http.MethodPost, "/api/favorites/2/toggle", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["favorite"])
}

func TestFavoritesRequireClientRole(t *testing.T) {
	router := newTestRouter(t)
	gkToken := loginAs(t, router, 1, models.RoleGoalkeeper)

	w := call(router, http.MethodPost, "/api/favorites/2/toggle", gkToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The public status endpoint answers false instead of erroring.
	w = call(router, http.MethodGet, "/api/favorites/2", gkToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["favorite"])
}

func TestListFavoritesResolvesProfiles(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, 1, models.RoleClient)

	w := call(router, http.MethodGet, "/api/favorites", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Favorites []models.Goalkeeper `json:"favorites"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	names := make([]string, 0, len(body.Favorites))
	for _, gk := range body.Favorites {
		names = append(names, gk.Name)
	}
	assert.ElementsMatch(t, []string{"Fábio Costa", "Marcos"}, names)
}

func TestReservationLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	clientToken := loginAs(t, router, 2, models.RoleClient)
	gkToken := loginAs(t, router, 3, models.RoleGoalkeeper)

	// Ana books Jefferson for a two hour morning slot: 60/hour -> 120.
	w := call(router, http.MethodPost, "/api/reservations", clientToken, gin.H{
		"goalkeeperId": 3,
		"date":         "2024-09-08",
		"period":       "morning",
		"duration":     2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decode(t, w)
	assert.Equal(t, "pending", created["status"])
	assert.Equal(t, 120.0, created["totalPrice"])
	resID := int(created["id"].(float64))

	// Jefferson confirms it.
	w = call(router, http.MethodPut, "/api/reservations/"+strconv.Itoa(resID)+"/status", gkToken, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "confirmed", decode(t, w)["status"])

	// Ana can no longer cancel a confirmed booking.
	w = call(router, http.MethodPut, "/api/reservations/"+strconv.Itoa(resID)+"/status", clientToken, gin.H{"status": "canceled"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Both sides see the reservation in their lists.
	var mine struct {
		Reservations []models.Reservation `json:"reservations"`
	}
	w = call(router, http.MethodGet, "/api/reservations/mine", clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	assert.Equal(t, resID, mine.Reservations[0].ID)

	var received struct {
		Reservations []models.Reservation `json:"reservations"`
	}
	w = call(router, http.MethodGet, "/api/reservations/received", gkToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &received))
	assert.Equal(t, resID, received.Reservations[0].ID)
}

func TestUpdateForeignReservationForbidden(t *testing.T) {
	router := newTestRouter(t)

	// Reservation 3 belongs to user 2; user 1 may not touch it.
	token := loginAs(t, router, 1, models.RoleClient)
	w := call(router, http.MethodPut, "/api/reservations/3/status", token, gin.H{"status": "canceled"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUnknownRouteRedirectsHome(t *testing.T) {
	router := newTestRouter(t)

	w := call(router, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "/", decode(t, w)["redirect"])
}
