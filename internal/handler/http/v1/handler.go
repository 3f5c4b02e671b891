package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/community_safety_system/internal/config"
	"github.com/shenikar/community_safety_system/internal/geo"
	"github.com/shenikar/community_safety_system/internal/models"
	"github.com/shenikar/community_safety_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	scorer          service.SafetyScorer
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(incidentService service.IncidentService, scorer service.SafetyScorer, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: incidentService,
		scorer:          scorer,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// respondError выбирает HTTP-код по таксономии ошибок ядра
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case models.IsValidation(err):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Incident not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
	case errors.Is(err, models.ErrPermissionDenied):
		log.WithError(err).Warn("Permission denied")
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized to update this incident"})
	default:
		log.WithError(err).Error("Internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseCoordinates извлекает обязательные параметры latitude/longitude
func parseCoordinates(c *gin.Context) (geo.Point, bool) {
	lat, errLat := strconv.ParseFloat(c.Query("latitude"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("longitude"), 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude required"})
		return geo.Point{}, false
	}
	return geo.Point{Lat: lat, Lng: lng}, true
}

// @Summary Report a new incident
// @Description Report a new safety incident at a location. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body ReportIncidentRequest true "Incident report request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) reportIncident(c *gin.Context) {
	var input ReportIncidentRequest
	log := h.logger.WithField("method", "reportIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.incidentService.ReportIncident(c.Request.Context(), model); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get nearby incidents
// @Description Get incidents within a radius of a point, sorted by distance. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param radius query number false "Radius in meters" default(2000)
// @Param status query string false "Status filter"
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/nearby [get]
func (h *Handler) nearbyIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyIncidents")

	center, ok := parseCoordinates(c)
	if !ok {
		return
	}
	radius, err := strconv.ParseFloat(c.DefaultQuery("radius", strconv.FormatFloat(h.cfg.NearbyRadiusMeters, 'f', -1, 64)), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
		return
	}

	nearby, err := h.incidentService.Nearby(c.Request.Context(), center, radius, c.Query("status"))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"incidents": NearbyToIncidentResponses(nearby)})
}

// @Summary Get safety score for a location
// @Description Calculate the composite 0-100 safety score for a point. Requires API key.
// @Tags Safety
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Success 200 {object} models.SafetyScore
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /safety/score [get]
func (h *Handler) safetyScore(c *gin.Context) {
	log := h.logger.WithField("method", "safetyScore")

	center, ok := parseCoordinates(c)
	if !ok {
		return
	}

	score, err := h.scorer.Score(c.Request.Context(), center)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, score)
}

// @Summary Get heatmap data
// @Description Get incident heatmap points with severity/recency intensity. Requires API key.
// @Tags Safety
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param radius query number false "Radius in meters" default(5000)
// @Success 200 {object} map[string][]models.HeatmapPoint
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /heatmap/data [get]
func (h *Handler) heatmapData(c *gin.Context) {
	log := h.logger.WithField("method", "heatmapData")

	center, ok := parseCoordinates(c)
	if !ok {
		return
	}
	radius, err := strconv.ParseFloat(c.DefaultQuery("radius", strconv.FormatFloat(h.cfg.HeatmapRadiusMeters, 'f', -1, 64)), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
		return
	}

	points, err := h.incidentService.Heatmap(c.Request.Context(), center, radius)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"heatmapData": points})
}

// @Summary Get a filtered list of incidents
// @Description Get incidents for the map with optional status/type filters. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Status filter"
// @Param type query string false "Type filter"
// @Param days query int false "Time window in days" default(7)
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	filter := models.ListFilter{
		Status: models.Status(c.Query("status")),
		Type:   models.IncidentType(c.Query("type")),
		Days:   days,
	}

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), filter)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"incidents": ModelsToIncidentResponses(incidents)})
}

// @Summary Get incident by ID
// @Description Get a single incident with the caller's vote, if any. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param user_id query string false "Caller identity for the user_vote field"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	detail, err := h.incidentService.GetIncident(c.Request.Context(), id, c.Query("user_id"))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DetailToIncidentResponse(detail))
}

// @Summary Vote on an incident
// @Description Upvote or downvote an incident; repeating the same vote retracts it. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param vote body VoteRequest true "Vote request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID, body or vote type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/vote [post]
func (h *Handler) voteIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "voteIncident").WithField("id", id)

	var input VoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.Vote(c.Request.Context(), id, input.VoterID, models.VoteKind(input.VoteType))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update incident status
// @Description Resolve, dismiss or reactivate an incident. Only the original reporter may do this. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param status body UpdateStatusRequest true "Status update request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID, body or status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the original reporter"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/status [put]
func (h *Handler) updateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "updateStatus").WithField("id", id)

	var input UpdateStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.UpdateStatus(c.Request.Context(), id, input.RequesterID, models.Status(input.Status))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get the incident type catalog
// @Description Get all incident types with labels and weights
// @Tags Incidents
// @Accept json
// @Produce json
// @Success 200 {object} map[string]map[string]models.TypeInfo
// @Router /incidents/types [get]
func (h *Handler) incidentTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"types": models.TypeCatalog})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
