package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberhub/barberhub-api/internal/audit"
	"github.com/barberhub/barberhub-api/internal/authz"
	"github.com/barberhub/barberhub-api/internal/cache"
	"github.com/barberhub/barberhub-api/internal/httperr"
	"github.com/barberhub/barberhub-api/internal/httpresp"
	"github.com/barberhub/barberhub-api/internal/models"
	"github.com/barberhub/barberhub-api/internal/storage"
)

type BarberHandler struct {
	db    *gorm.DB
	cache *cache.Directory
	store storage.Store
	audit *audit.Dispatcher
}

func NewBarberHandler(db *gorm.DB, dir *cache.Directory, store storage.Store, auditD *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{db: db, cache: dir, store: store, audit: auditD}
}

// --------------------------------------------------
// Public directory
// --------------------------------------------------

func (h *BarberHandler) List(c *gin.Context) {
	lngStr := c.Query("lng")
	latStr := c.Query("lat")
	radiusStr := c.Query("radius_km")
	geoFiltered := lngStr != "" && latStr != ""

	// Cache only the unfiltered directory; geo queries are cheap enough.
	if !geoFiltered {
		if payload, ok := h.cache.Get(c.Request.Context()); ok {
			c.Data(http.StatusOK, "application/json", payload)
			return
		}
	}

	var barbers []models.Barber
	if err := h.db.
		Preload("Services", "active = ?", true).
		Where("status = ?", models.BarberStatusApproved).
		Order("average_rating DESC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "")
		return
	}

	if geoFiltered {
		lng, err1 := strconv.ParseFloat(lngStr, 64)
		lat, err2 := strconv.ParseFloat(latStr, 64)
		if err1 != nil || err2 != nil {
			httperr.BadRequest(c, httperr.CodeInvalidInput, "invalid coordinates")
			return
		}
		radius := 10.0
		if radiusStr != "" {
			if r, err := strconv.ParseFloat(radiusStr, 64); err == nil && r > 0 {
				radius = r
			}
		}
		barbers = filterByDistance(barbers, lng, lat, radius)
		httpresp.List(c, barbers)
		return
	}

	resp := httpresp.ListResponse[models.Barber]{Data: barbers, Total: len(barbers)}
	if payload, err := json.Marshal(resp); err == nil {
		h.cache.Set(c.Request.Context(), payload)
		c.Data(http.StatusOK, "application/json", payload)
		return
	}
	httpresp.List(c, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "invalid barber id")
		return
	}

	var barber models.Barber
	if err := h.db.
		Preload("Services").
		Preload("Availability").
		First(&barber, uint(id)).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "barber not found")
		return
	}

	httpresp.OK(c, barber)
}

// --------------------------------------------------
// Profile (barber self-service, multipart with optional image)
// --------------------------------------------------

func (h *BarberHandler) SaveProfile(c *gin.Context) {
	caller, ok := currentCaller(c)
	if !ok || !authz.HasRole(caller, models.RoleBarber) {
		httperr.Forbidden(c, httperr.CodeForbidden, "")
		return
	}

	shopName := c.PostForm("shop_name")
	if shopName == "" {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "shop_name is required")
		return
	}

	var taken int64
	h.db.Model(&models.Barber{}).
		Where("shop_name = ? AND user_id <> ?", shopName, caller.ID).
		Count(&taken)
	if taken > 0 {
		httperr.Write(c, http.StatusConflict, httperr.CodeConflict, "shop name already in use")
		return
	}

	lng, _ := strconv.ParseFloat(c.PostForm("longitude"), 64)
	lat, _ := strconv.ParseFloat(c.PostForm("latitude"), 64)

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil {
		f, err := file.Open()
		if err != nil {
			httperr.Internal(c, "failed_to_read_upload", "")
			return
		}
		defer f.Close()

		data, ok := storage.ProcessImage(f)
		if !ok {
			httperr.BadRequest(c, httperr.CodeInvalidInput, "image must be jpeg or png")
			return
		}
		url, err := h.store.Save(c.Request.Context(), data, "image/webp")
		if err != nil {
			httperr.Internal(c, "failed_to_store_upload", "")
			return
		}
		imageURL = url
	}

	var barber models.Barber
	err := h.db.Where("user_id = ?", caller.ID).First(&barber).Error
	created := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !created {
		httperr.Internal(c, "failed_to_load_profile", "")
		return
	}

	barber.UserID = caller.ID
	barber.ShopName = shopName
	barber.Address = c.PostForm("address")
	barber.Phone = c.PostForm("phone")
	barber.Description = c.PostForm("description")
	barber.Longitude = lng
	barber.Latitude = lat
	if imageURL != "" {
		barber.ProfileImage = imageURL
	}
	if created {
		// New profiles await admin approval.
		barber.Status = models.BarberStatusPending
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_save_profile", "")
		return
	}

	h.cache.Invalidate(c.Request.Context())
	action := "barber_profile_updated"
	if created {
		action = "barber_profile_created"
	}
	h.audit.Dispatch(audit.Event{
		ActorID:  &caller.ID,
		Action:   action,
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	if created {
		httpresp.Created(c, barber)
		return
	}
	httpresp.OK(c, barber)
}

// --------------------------------------------------
// Geo helper
// --------------------------------------------------

const earthRadiusKm = 6371.0

func filterByDistance(barbers []models.Barber, lng, lat, radiusKm float64) []models.Barber {
	out := make([]models.Barber, 0, len(barbers))
	for _, b := range barbers {
		if haversineKm(lat, lng, b.Latitude, b.Longitude) <= radiusKm {
			out = append(out, b)
		}
	}
	return out
}

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
