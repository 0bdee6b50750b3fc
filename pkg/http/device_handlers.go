package http

import (
	"net/http"
	"strconv"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"
	"waleki.xyz/water-level-service/pkg/models"
	"waleki.xyz/water-level-service/pkg/telemetry"
)

type AlertThresholdsRequest struct {
	Low  *float64 `json:"low"`
	High *float64 `json:"high"`
}

type CalibrationRequest struct {
	Offset *float64 `json:"offset"`
	Scale  *float64 `json:"scale"`
}

type DeviceSettingsRequest struct {
	MeasurementInterval *int                    `json:"measurementInterval"`
	AlertThresholds     *AlertThresholdsRequest `json:"alertThresholds"`
	Calibration         *CalibrationRequest     `json:"calibration"`
}

func (r *DeviceSettingsRequest) toInput() *telemetry.DeviceSettingsInput {
	if r == nil {
		return nil
	}
	input := &telemetry.DeviceSettingsInput{MeasurementInterval: r.MeasurementInterval}
	if r.AlertThresholds != nil {
		input.AlertThresholds = &telemetry.AlertThresholdsInput{
			Low:  r.AlertThresholds.Low,
			High: r.AlertThresholds.High,
		}
	}
	if r.Calibration != nil {
		input.Calibration = &telemetry.CalibrationInput{
			Offset: r.Calibration.Offset,
			Scale:  r.Calibration.Scale,
		}
	}
	return input
}

type CreateDeviceRequest struct {
	Name        string                 `json:"name"`
	Location    string                 `json:"location"`
	Description string                 `json:"description"`
	Settings    *DeviceSettingsRequest `json:"settings"`
}

type UpdateDeviceRequest struct {
	Name        *string                `json:"name"`
	Location    *string                `json:"location"`
	Description *string                `json:"description"`
	Status      *models.DeviceStatus   `json:"status"`
	Settings    *DeviceSettingsRequest `json:"settings"`
}

func (rs *RestfulServer) ListDevices(c *gin.Context) {
	devices, err := rs.Core.Device.ListDevices()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, devices)
}

func (rs *RestfulServer) GetDevice(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	device, err := rs.Core.Device.GetDevice(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, device)
}

func (rs *RestfulServer) CreateDevice(c *gin.Context) {
	var req CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	device, err := rs.Core.Device.CreateDevice(&telemetry.DeviceInput{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Settings:    req.Settings.toInput(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, device)
}

func (rs *RestfulServer) UpdateDevice(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	device, err := rs.Core.Device.UpdateDevice(id, &telemetry.DeviceUpdate{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Status:      req.Status,
		Settings:    req.Settings.toInput(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, device)
}

func (rs *RestfulServer) DeleteDevice(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := rs.Core.Device.DeleteDevice(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device deleted successfully"})
}

func (rs *RestfulServer) GetDeviceReadings(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var query telemetry.ReadingQuery

	if raw := c.Query("startDate"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate"})
			return
		}
		query.StartTime = &start
	}
	if raw := c.Query("endDate"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate"})
			return
		}
		query.EndTime = &end
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		query.Limit = limit
	}

	readings, err := rs.Core.Reading.GetReadings(id, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, readings)
}

func (rs *RestfulServer) GetDeviceChart(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	timeRange, err := telemetry.ParseTimeRange(c.DefaultQuery("timeRange", string(telemetry.TimeRange1Day)))
	if err != nil {
		respondError(c, err)
		return
	}

	series, err := rs.Core.Stats.ChartSeries(id, timeRange)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deviceId":  id,
		"timeRange": timeRange,
		"series":    series,
		"stats":     rs.Core.Stats.Summarize(series),
	})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(id, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
