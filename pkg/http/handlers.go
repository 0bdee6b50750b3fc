package http

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"waleki.xyz/water-level-service/pkg/common"
	"waleki.xyz/water-level-service/pkg/models"
	"waleki.xyz/water-level-service/pkg/telemetry"
)

func (rs *RestfulServer) IngestData(c *gin.Context) {
	var payload telemetry.ReadingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !rs.CheckDeviceLimiter(payload.DeviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	result, err := rs.Core.Ingest.Ingest(&payload)
	if err != nil {
		respondError(c, err)
		return
	}

	response := gin.H{
		"message": "Data received successfully",
		"reading": result.Reading,
	}
	if len(result.Alerts) > 0 {
		response["alerts"] = result.Alerts
	}
	c.JSON(http.StatusCreated, response)
}

type BatchIngestRequest struct {
	Readings []telemetry.ReadingPayload `json:"readings"`
}

func (rs *RestfulServer) IngestBatchData(c *gin.Context) {
	var req BatchIngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := rs.Core.Ingest.IngestBatch(req.Readings)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

type DeviceChartData struct {
	DeviceID   uint                   `json:"deviceId"`
	DeviceName string                 `json:"deviceName"`
	Data       []telemetry.ChartPoint `json:"data"`
}

func (rs *RestfulServer) GetRecentReadings(c *gin.Context) {
	hours, err := strconv.Atoi(c.DefaultQuery("hours", "24"))
	if err != nil || hours <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hours parameter"})
		return
	}

	devices, err := rs.Core.Device.ListDevices()
	if err != nil {
		respondError(c, err)
		return
	}

	start := time.Now().Add(-time.Duration(hours) * time.Hour)

	response := make([]DeviceChartData, 0, len(devices))
	for _, device := range devices {
		readings, err := rs.Core.Reading.GetReadings(device.ID, telemetry.ReadingQuery{StartTime: &start})
		if err != nil {
			respondError(c, err)
			return
		}
		response = append(response, DeviceChartData{
			DeviceID:   device.ID,
			DeviceName: device.Name,
			Data: common.Mapper(readings, func(r models.WaterReading) telemetry.ChartPoint {
				return telemetry.ChartPoint{
					Timestamp:   r.Timestamp,
					Level:       r.Level,
					Temperature: r.Temperature,
				}
			}),
		})
	}

	c.JSON(http.StatusOK, response)
}

func (rs *RestfulServer) DeviceHealthCheck(c *gin.Context) {
	deviceID, ok := idParam(c, "device_id")
	if !ok {
		return
	}

	device, err := rs.Core.Device.GetDevice(deviceID)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := rs.Core.Device.MarkSeen(deviceID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Health check successful",
		"device": gin.H{
			"id":       device.ID,
			"name":     device.Name,
			"status":   device.Status,
			"lastSeen": time.Now(),
		},
		"serverTime": time.Now(),
	})
}

// StreamChanges pushes store mutations as server-sent events until the
// client disconnects. Without a feed wired in the endpoint declines.
func (rs *RestfulServer) StreamChanges(c *gin.Context) {
	if rs.Core.Changes == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Change feed not available"})
		return
	}

	events, cancel := rs.Core.Changes.Subscribe(16)
	defer cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("change", event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func (rs *RestfulServer) GetDashboardStats(c *gin.Context) {
	stats, err := rs.Core.Stats.DashboardStats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
