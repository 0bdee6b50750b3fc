package telemetry

import (
	"errors"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"waleki.xyz/water-level-service/pkg/common"
	"waleki.xyz/water-level-service/pkg/models"
)

// dashboardWindow is the trailing window reading counts and averages are
// computed over.
const dashboardWindow = 24 * time.Hour

type DashboardStats struct {
	TotalDevices  int64     `json:"totalDevices"`
	ActiveDevices int64     `json:"activeDevices"`
	TotalReadings int64     `json:"totalReadings"`
	AverageLevel  float64   `json:"averageLevel"`
	LastUpdate    time.Time `json:"lastUpdate"`
}

type ChartPoint struct {
	Timestamp   time.Time `json:"timestamp"`
	Level       float64   `json:"level"`
	Temperature *float64  `json:"temperature,omitempty"`
}

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

type SummaryStatistics struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
	Latest  float64 `json:"latest"`
	Trend   Trend   `json:"trend,omitempty"`
}

type deviceWindow struct {
	DeviceID uint
	Count    int64
	AvgLevel float64
}

func (t *Telemetry) dashboardStats() (*DashboardStats, error) {
	var totalDevices, activeDevices int64
	if err := t.Db.Conn.Model(&models.Device{}).Count(&totalDevices).Error; err != nil {
		return nil, err
	}
	if err := t.Db.Conn.Model(&models.Device{}).
		Where("status = ?", models.DeviceStatusActive).
		Count(&activeDevices).Error; err != nil {
		return nil, err
	}

	since := time.Now().Add(-dashboardWindow)

	var windows []deviceWindow
	if err := t.Db.Conn.Model(&models.WaterReading{}).
		Select("device_id, COUNT(*) AS count, AVG(level) AS avg_level").
		Where("timestamp >= ?", since).
		Group("device_id").
		Scan(&windows).Error; err != nil {
		return nil, err
	}

	totalReadings := common.Reducer(windows, func(acc int64, w deviceWindow) int64 {
		return acc + w.Count
	}, int64(0))

	// mean of per-device averages, over devices that reported in the
	// window; devices with no readings do not drag the average down
	averageLevel := 0.0
	if len(windows) > 0 {
		sum := common.Reducer(windows, func(acc float64, w deviceWindow) float64 {
			return acc + w.AvgLevel
		}, 0.0)
		averageLevel = math.Round(sum/float64(len(windows))*100) / 100
	}

	lastUpdate := time.Now()
	var newest models.WaterReading
	err := t.Db.Conn.Where("timestamp >= ?", since).
		Order("timestamp DESC").Order("id DESC").
		First(&newest).Error
	switch {
	case err == nil:
		lastUpdate = newest.Timestamp
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryStats),
	).Debug("Computed dashboard stats",
		zap.Int64("total_devices", totalDevices),
		zap.Int64("active_devices", activeDevices),
		zap.Int64("total_readings", totalReadings),
	)

	return &DashboardStats{
		TotalDevices:  totalDevices,
		ActiveDevices: activeDevices,
		TotalReadings: totalReadings,
		AverageLevel:  averageLevel,
		LastUpdate:    lastUpdate,
	}, nil
}

func (t *Telemetry) chartSeries(deviceID uint, timeRange TimeRange) ([]ChartPoint, error) {
	start, end := timeRange.Window(time.Now())

	readings, err := t.getReadings(deviceID, ReadingQuery{StartTime: &start, EndTime: &end})
	if err != nil {
		return nil, err
	}

	// the store hands back newest first; charts want chronological order
	return common.Mapper(common.Reversed(readings), func(r models.WaterReading) ChartPoint {
		return ChartPoint{
			Timestamp:   r.Timestamp,
			Level:       r.Level,
			Temperature: r.Temperature,
		}
	}), nil
}

// summarize expects chronological points, as produced by chartSeries.
// Nil on empty input; trend only exists with at least two points.
func (t *Telemetry) summarize(points []ChartPoint) *SummaryStatistics {
	if len(points) == 0 {
		return nil
	}

	stats := SummaryStatistics{
		Min:    points[0].Level,
		Max:    points[0].Level,
		Latest: points[len(points)-1].Level,
	}

	sum := 0.0
	for _, p := range points {
		sum += p.Level
		stats.Min = math.Min(stats.Min, p.Level)
		stats.Max = math.Max(stats.Max, p.Level)
	}
	stats.Average = sum / float64(len(points))

	if len(points) >= 2 {
		previous := points[len(points)-2].Level
		switch {
		case stats.Latest > previous:
			stats.Trend = TrendUp
		case stats.Latest < previous:
			stats.Trend = TrendDown
		default:
			stats.Trend = TrendStable
		}
	}

	return &stats
}

type IStatsImpl struct {
	telemetry *Telemetry
}

func (is *IStatsImpl) DashboardStats() (*DashboardStats, error) {
	return is.telemetry.dashboardStats()
}

func (is *IStatsImpl) ChartSeries(deviceID uint, timeRange TimeRange) ([]ChartPoint, error) {
	return is.telemetry.chartSeries(deviceID, timeRange)
}

func (is *IStatsImpl) Summarize(points []ChartPoint) *SummaryStatistics {
	return is.telemetry.summarize(points)
}

func (t *Telemetry) GetIStats() IStats {
	return &IStatsImpl{telemetry: t}
}
