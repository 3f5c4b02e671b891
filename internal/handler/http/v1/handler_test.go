package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/community_safety_system/internal/config"
	"github.com/shenikar/community_safety_system/internal/geo"
	"github.com/shenikar/community_safety_system/internal/models"
	"github.com/shenikar/community_safety_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, *mocks.MockIncidentService, *mocks.MockSafetyScorer, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockIncidentService(ctrl)
	mockScorer := mocks.NewMockSafetyScorer(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:             []string{"test-api-key"},
		NearbyRadiusMeters:  2000,
		HeatmapRadiusMeters: 5000,
	}

	handler := NewHandler(mockService, mockScorer, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, mockScorer, router
}

// floatPtr - вспомогательная функция для полей-указателей координат в DTO
func floatPtr(v float64) *float64 {
	return &v
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestReportIncident_Success(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := ReportIncidentRequest{
		ReporterID: "user-1",
		Latitude:   floatPtr(55.75),
		Longitude:  floatPtr(37.61),
		Type:       "theft",
		Severity:   "high",
		Title:      "Stolen bike",
	}

	mockService.EXPECT().
		ReportIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			inc.ID = incidentID
			inc.Status = models.StatusActive
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, reqBody.Title, resp.Title)
}

func TestReportIncident_InvalidJSON(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)

	mockService.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"title": "test"`), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestReportIncident_ValidationError(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	reqBody := ReportIncidentRequest{ // Отсутствует Title
		ReporterID: "user-1",
		Latitude:   floatPtr(55.75),
		Longitude:  floatPtr(37.61),
		Type:       "theft",
	}

	mockService.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Title' failed on the 'required' tag")
}

func TestReportIncident_ZeroCoordinates(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	incidentID := uuid.New()
	// Точка (0, 0) - легальная координата: экватор и нулевой меридиан
	reqBody := ReportIncidentRequest{
		ReporterID: "user-1",
		Latitude:   floatPtr(0),
		Longitude:  floatPtr(0),
		Type:       "theft",
		Title:      "Stolen bike",
	}

	mockService.EXPECT().
		ReportIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, 0.0, inc.Latitude)
			assert.Equal(t, 0.0, inc.Longitude)
			inc.ID = incidentID
			inc.Status = models.StatusActive
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestReportIncident_MissingCoordinates(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	reqBody := ReportIncidentRequest{ // Координаты не переданы вовсе
		ReporterID: "user-1",
		Type:       "theft",
		Title:      "Stolen bike",
	}

	mockService.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Latitude' failed on the 'required' tag")
}

func TestReportIncident_UnknownType(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	reqBody := ReportIncidentRequest{
		ReporterID: "user-1",
		Latitude:   floatPtr(55.75),
		Longitude:  floatPtr(37.61),
		Type:       "earthquake",
		Title:      "Unknown type",
	}

	// Каталог типов проверяется в сервисе, хендлер транслирует ошибку в 400
	mockService.EXPECT().
		ReportIncident(gomock.Any(), gomock.Any()).
		Return(models.NewValidationError("invalid incident type %q", reqBody.Type)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident type")
}

func TestReportIncident_ServiceError(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	reqBody := ReportIncidentRequest{
		ReporterID: "user-1",
		Latitude:   floatPtr(55.75),
		Longitude:  floatPtr(37.61),
		Type:       "theft",
		Title:      "Stolen bike",
	}
	serviceError := errors.New("failed to create incident in service")

	mockService.EXPECT().
		ReportIncident(gomock.Any(), gomock.Any()).
		Return(serviceError).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestNearbyIncidents_Success(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	near := []*models.NearbyIncident{
		{
			Incident:       &models.Incident{ID: uuid.New(), Title: "Closest", Status: models.StatusActive},
			DistanceMeters: 120.5,
		},
		{
			Incident:       &models.Incident{ID: uuid.New(), Title: "Farther", Status: models.StatusVerified},
			DistanceMeters: 800.1,
		},
	}

	mockService.EXPECT().
		Nearby(gomock.Any(), geo.Point{Lat: 55.75, Lng: 37.61}, 1000.0, "").
		Return(near, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/nearby?latitude=55.75&longitude=37.61&radius=1000", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Incidents []IncidentResponse `json:"incidents"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp.Incidents, 2)
	assert.Equal(t, "Closest", resp.Incidents[0].Title)
	require.NotNil(t, resp.Incidents[0].Distance)
	assert.InDelta(t, 120.5, *resp.Incidents[0].Distance, 1e-9)
}

func TestNearbyIncidents_DefaultRadius(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)

	// Радиус не передан — используется значение из конфигурации
	mockService.EXPECT().
		Nearby(gomock.Any(), gomock.Any(), 2000.0, "").
		Return([]*models.NearbyIncident{}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/nearby?latitude=55.75&longitude=37.61", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNearbyIncidents_MissingCoordinates(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)

	mockService.EXPECT().Nearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents/nearby?latitude=55.75", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "latitude and longitude required")
}

func TestSafetyScore_Success(t *testing.T) {
	_, _, mockScorer, router := newTestHandler(t)
	expected := &models.SafetyScore{
		Score:     100,
		RiskLevel: "safe",
		RiskLabel: "Safe Area",
		RiskColor: "#00e676",
		Alerts:    []models.SafetyAlert{},
		Stats:     models.SafetyStats{CurrentHour: 12},
	}

	mockScorer.EXPECT().
		Score(gomock.Any(), geo.Point{Lat: 55.75, Lng: 37.61}).
		Return(expected, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/safety/score?latitude=55.75&longitude=37.61", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.SafetyScore
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 100, resp.Score)
	assert.Equal(t, "safe", resp.RiskLevel)
	assert.Empty(t, resp.Alerts)
}

func TestSafetyScore_InvalidCoordinates(t *testing.T) {
	_, _, mockScorer, router := newTestHandler(t)

	mockScorer.EXPECT().
		Score(gomock.Any(), gomock.Any()).
		Return(nil, models.NewValidationError("invalid coordinates: latitude out of range")).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/safety/score?latitude=91&longitude=37.61", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid coordinates")
}

func TestHeatmapData_Success(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	points := []models.HeatmapPoint{
		{Lat: 55.75, Lng: 37.61, Intensity: 1.0},
		{Lat: 55.751, Lng: 37.611, Intensity: 0.06},
	}

	mockService.EXPECT().
		Heatmap(gomock.Any(), geo.Point{Lat: 55.75, Lng: 37.61}, 5000.0).
		Return(points, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/heatmap/data?latitude=55.75&longitude=37.61", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		HeatmapData []models.HeatmapPoint `json:"heatmapData"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp.HeatmapData, 2)
}

func TestListIncidents_Success(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	expectedIncidents := []*models.Incident{
		{ID: uuid.New(), Title: "Incident 1", Status: models.StatusActive},
		{ID: uuid.New(), Title: "Incident 2", Status: models.StatusVerified},
	}

	mockService.EXPECT().
		ListIncidents(gomock.Any(), models.ListFilter{Status: "active", Type: "theft", Days: 14}).
		Return(expectedIncidents, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?status=active&type=theft&days=14", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Incidents []IncidentResponse `json:"incidents"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp.Incidents, 2)
	assert.Equal(t, expectedIncidents[0].Title, resp.Incidents[0].Title)
}

func TestListIncidents_ServiceError(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	serviceError := errors.New("failed to list incidents")

	mockService.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetIncident_Success_WithUserVote(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	incidentID := uuid.New()
	vote := models.VoteUp
	detail := &models.IncidentDetail{
		Incident: &models.Incident{ID: incidentID, Title: "Retrieved", Status: models.StatusActive},
		UserVote: &vote,
	}

	mockService.EXPECT().GetIncident(gomock.Any(), incidentID, "user-7").Return(detail, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s?user_id=user-7", incidentID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, "upvote", resp.UserVote)
}

func TestGetIncident_InvalidID(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)

	mockService.EXPECT().GetIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/incidents/invalid-uuid", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestGetIncident_NotFound(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	incidentID := uuid.New()

	mockService.EXPECT().
		GetIncident(gomock.Any(), incidentID, "").
		Return(nil, fmt.Errorf("service: could not get incident: %w", models.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestVoteIncident_Success(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := VoteRequest{
		VoterID:  "user-1",
		VoteType: "upvote",
	}
	voted := &models.Incident{ID: incidentID, Upvotes: 1, Status: models.StatusActive}

	mockService.EXPECT().
		Vote(gomock.Any(), incidentID, "user-1", models.VoteUp).
		Return(voted, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/vote", incidentID.String()), bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Upvotes)
}

func TestVoteIncident_InvalidVoteType(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	incidentID := uuid.New()

	mockService.EXPECT().Vote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/vote", incidentID.String()), bytes.NewBufferString(`{"voter_id":"user-1","vote_type":"star"}`), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'VoteType' failed on the 'oneof' tag")
}

func TestVoteIncident_NotFound(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := VoteRequest{
		VoterID:  "user-1",
		VoteType: "downvote",
	}

	mockService.EXPECT().
		Vote(gomock.Any(), incidentID, "user-1", models.VoteDown).
		Return(nil, fmt.Errorf("service: could not vote on incident: %w", models.ErrNotFound)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/vote", incidentID.String()), bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestUpdateStatus_Success(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := UpdateStatusRequest{
		RequesterID: "user-1",
		Status:      "resolved",
	}
	resolved := &models.Incident{ID: incidentID, ReporterID: "user-1", Status: models.StatusResolved}

	mockService.EXPECT().
		UpdateStatus(gomock.Any(), incidentID, "user-1", models.StatusResolved).
		Return(resolved, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/incidents/%s/status", incidentID.String()), bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "resolved", resp.Status)
}

func TestUpdateStatus_Forbidden(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := UpdateStatusRequest{
		RequesterID: "someone-else",
		Status:      "resolved",
	}

	mockService.EXPECT().
		UpdateStatus(gomock.Any(), incidentID, "someone-else", models.StatusResolved).
		Return(nil, models.ErrPermissionDenied).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/incidents/%s/status", incidentID.String()), bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "not authorized to update this incident")
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	incidentID := uuid.New()

	mockService.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/incidents/%s/status", incidentID.String()), bytes.NewBufferString(`{"requester_id":"user-1","status":"verified"}`), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Status' failed on the 'oneof' tag")
}

func TestIncidentTypes_Success(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	// Каталог типов открыт без API-ключа
	w := makeRequest(router, "GET", "/api/v1/incidents/types", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"theft"`)
	assert.Contains(t, w.Body.String(), `"shooting"`)
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestSecuredRoutes_RequireAPIKey(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)

	mockService.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil) // Нет API ключа

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
