// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mxrtinss/equipe403/internal/db"
	"github.com/mxrtinss/equipe403/internal/discover"
	"github.com/mxrtinss/equipe403/internal/model"
)

func newHandler(finder *discover.Finder, eStore db.EventStore, fStore db.FavoriteStore, defaultRadiusKm float64) *handler {
	return &handler{
		finder:          finder,
		eStore:          eStore,
		fStore:          fStore,
		defaultRadiusKm: defaultRadiusKm,
	}
}

type handler struct {
	finder          *discover.Finder
	eStore          db.EventStore
	fStore          db.FavoriteStore
	defaultRadiusKm float64
}

// parseOrigin reads lat/lon query parameters. Both absent means the
// device could not provide a position; discovery then skips distance
// computation instead of failing. Half a coordinate pair is a client
// error.
func parseOrigin(c *gin.Context) (*model.Origin, bool) {
	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr == "" && lonStr == "" {
		return nil, true
	}
	lat, errLat := strconv.ParseFloat(latStr, 64)
	lon, errLon := strconv.ParseFloat(lonStr, 64)
	if errLat != nil || errLon != nil {
		return nil, false
	}
	return &model.Origin{Latitude: lat, Longitude: lon}, true
}

func (h *handler) radius(c *gin.Context) (float64, bool) {
	raw := c.Query("radius")
	if raw == "" {
		return h.defaultRadiusKm, true
	}
	r, err := strconv.ParseFloat(raw, 64)
	if err != nil || r < 0 {
		return 0, false
	}
	return r, true
}

func (h *handler) discover(c *gin.Context) (*discover.Result, bool) {
	origin, ok := parseOrigin(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"code": "BAD_ORIGIN", "message": "lat and lon must both be valid numbers"})
		return nil, false
	}
	radiusKm, ok := h.radius(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"code": "BAD_RADIUS", "message": "radius must be a non-negative number"})
		return nil, false
	}

	res, err := h.finder.Find(c.Request.Context(), origin, radiusKm)
	if err != nil {
		if errors.Is(err, model.ErrBothSourcesFailed) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"code": "SOURCES_UNAVAILABLE", "message": "event sources are unavailable, try again",
			})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL", "message": err.Error()})
		return nil, false
	}

	res.Events = discover.Search(res.Events, c.Query("q"), c.Query("category"))
	return res, true
}

func (h *handler) nearby(c *gin.Context) {
	res, ok := h.discover(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) mapMarkers(c *gin.Context) {
	res, ok := h.discover(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"markers":  discover.GroupAndOffset(res.Events),
		"source":   res.Source,
		"degraded": res.Degraded,
	})
}

func (h *handler) createEvent(c *gin.Context) {
	var event model.UserEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "BAD_BODY", "message": err.Error()})
		return
	}
	event.ID = uuid.Nil
	event.OwnerID = c.GetHeader(userIDHeader)

	id, err := h.eStore.CreateEvent(c.Request.Context(), &event)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *handler) updateEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}
	existing, ok := h.ownedEvent(c, id)
	if !ok {
		return
	}

	var event model.UserEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "BAD_BODY", "message": err.Error()})
		return
	}
	event.ID = id
	event.OwnerID = existing.OwnerID

	if err := h.eStore.UpdateEvent(c.Request.Context(), &event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *handler) deleteEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}
	existing, ok := h.ownedEvent(c, id)
	if !ok {
		return
	}

	if err := h.eStore.DeleteEvent(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL", "message": err.Error()})
		return
	}
	// The stored image lives in an external object store; report its
	// URL so the caller can clean it up.
	c.JSON(http.StatusOK, gin.H{"id": id, "image_url": existing.ImageURL})
}

// ownedEvent loads an event and verifies the caller owns it.
func (h *handler) ownedEvent(c *gin.Context, id uuid.UUID) (*model.UserEvent, bool) {
	existing, err := h.eStore.GetEventByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			notFound(c)
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL", "message": err.Error()})
		return nil, false
	}
	if existing.OwnerID != c.GetHeader(userIDHeader) {
		c.JSON(http.StatusForbidden, gin.H{"code": "NOT_OWNER", "message": model.ErrNotOwner.Error()})
		return nil, false
	}
	return existing, true
}

func (h *handler) myEvents(c *gin.Context) {
	events, err := h.eStore.ListEventsByOwner(c.Request.Context(), c.GetHeader(userIDHeader))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL", "message": err.Error()})
		return
	}
	if events == nil {
		events = []*model.UserEvent{}
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *handler) createFavorite(c *gin.Context) {
	var snapshot model.Event
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "BAD_BODY", "message": err.Error()})
		return
	}
	snapshot.ID = c.Param("eventid")

	fav := &model.Favorite{
		UserID:   c.GetHeader(userIDHeader),
		EventID:  snapshot.ID,
		Snapshot: snapshot,
	}
	if err := h.fStore.CreateFavorite(c.Request.Context(), fav); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, fav)
}

func (h *handler) deleteFavorite(c *gin.Context) {
	err := h.fStore.DeleteFavorite(c.Request.Context(), c.GetHeader(userIDHeader), c.Param("eventid"))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL", "message": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) listFavorites(c *gin.Context) {
	favorites, err := h.fStore.ListFavoritesByUser(c.Request.Context(), c.GetHeader(userIDHeader))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL", "message": err.Error()})
		return
	}
	if favorites == nil {
		favorites = []*model.Favorite{}
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

func (h *handler) deleteAllFavorites(c *gin.Context) {
	if err := h.fStore.DeleteFavoritesByUser(c.Request.Context(), c.GetHeader(userIDHeader)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL", "message": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
