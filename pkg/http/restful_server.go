package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"waleki.xyz/water-level-service/pkg/auth"
	"waleki.xyz/water-level-service/pkg/common"
	"waleki.xyz/water-level-service/pkg/models"
	"waleki.xyz/water-level-service/pkg/telemetry"
)

const contextKeyUser = "current_user"

type RestfulServer struct {
	Server           *gin.Engine
	Core             *telemetry.Telemetry
	Auth             *auth.Auth
	RateLimiterStore *telemetry.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(deviceID uint) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	}
	return rs.RateLimiterStore.GetLimiter(deviceID)
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID uint) bool {
	limiter := rs.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(deviceID uint, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	api := rs.Server.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/login", rs.Login)
		authRoutes.POST("/logout", rs.Logout)
		authRoutes.GET("/me", rs.Authenticate, rs.GetCurrentUser)
	}

	// device-facing endpoints carry no session, devices authenticate by id
	data := api.Group("/data")
	{
		data.POST("/ingest", rs.IngestData)
		data.POST("/ingest/batch", rs.IngestBatchData)
		data.GET("/recent", rs.Authenticate, rs.GetRecentReadings)
		data.GET("/health/:device_id", rs.DeviceHealthCheck)
	}

	devices := api.Group("/devices", rs.Authenticate)
	{
		devices.GET("", rs.ListDevices)
		devices.GET("/:id", rs.GetDevice)
		devices.POST("", rs.RequireAdmin, rs.CreateDevice)
		devices.PUT("/:id", rs.RequireAdmin, rs.UpdateDevice)
		devices.DELETE("/:id", rs.RequireAdmin, rs.DeleteDevice)
		devices.GET("/:id/readings", rs.GetDeviceReadings)
		devices.GET("/:id/chart", rs.GetDeviceChart)
		devices.POST("/:id/limiter", rs.RequireAdmin, rs.PostLimiter)
	}

	api.GET("/dashboard/stats", rs.Authenticate, rs.GetDashboardStats)
	api.GET("/dashboard/stream", rs.Authenticate, rs.StreamChanges)

	users := api.Group("/users", rs.Authenticate)
	{
		users.GET("", rs.RequireAdmin, rs.ListUsers)
		users.GET("/:id", rs.RequireAdmin, rs.GetUser)
		users.POST("", rs.RequireAdmin, rs.CreateUser)
		users.PUT("/:id", rs.RequireAdmin, rs.UpdateUser)
		users.DELETE("/:id", rs.RequireAdmin, rs.DeleteUser)
		users.POST("/:id/change-password", rs.ChangePassword)
	}
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func bearerToken(c *gin.Context) string {
	return strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
}

func (rs *RestfulServer) Authenticate(c *gin.Context) {
	user, err := rs.Auth.Authenticate(bearerToken(c))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}
	c.Set(contextKeyUser, user)
	c.Next()
}

func (rs *RestfulServer) RequireAdmin(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil || user.Role != models.UserRoleAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}
	c.Next()
}

func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(contextKeyUser)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// respondError maps the domain error taxonomy onto status codes. Unknown
// errors are logged and surfaced generically.
func respondError(c *gin.Context, err error) {
	var validationErr *telemetry.ValidationError
	var notFoundErr *telemetry.NotFoundError
	var conflictErr *telemetry.ConflictError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Message})
	default:
		common.GetLoggerWith(common.LoggerNameRestfulServer).
			Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}
