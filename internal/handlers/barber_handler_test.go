package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/barberhub/barberhub-api/internal/audit"
	"github.com/barberhub/barberhub-api/internal/middleware"
	"github.com/barberhub/barberhub-api/internal/models"
	"github.com/barberhub/barberhub-api/internal/storage"
)

// unreachableDB opens lazily against a port nothing listens on, so every
// query fails with a connection error rather than ErrRecordNotFound.
func unreachableDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 port=1 user=test dbname=test sslmode=disable connect_timeout=1",
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	return db
}

// A database failure while loading the caller's profile must fail the
// request, not fall through to creating a blank profile.
func TestSaveProfileLoadFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewBarberHandler(
		unreachableDB(t),
		nil,
		storage.NewLocalStore(t.TempDir(), "http://localhost"),
		audit.NewDispatcher(audit.New(nil)),
	)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	form := url.Values{"shop_name": {"Fade Factory"}}
	req := httptest.NewRequest(http.MethodPost, "/api/barbers/profile", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	c.Set(middleware.ContextUserID, uint(7))
	c.Set(middleware.ContextUserRole, models.RoleBarber)

	h.SaveProfile(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed_to_load_profile")
}
