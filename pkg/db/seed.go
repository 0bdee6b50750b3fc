package db

import (
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"waleki.xyz/water-level-service/pkg/common"
	"waleki.xyz/water-level-service/pkg/models"
)

// Seed inserts the demo users, devices and readings when the database is
// empty. It runs once at startup, before the server accepts traffic, so a
// burst of first requests cannot double-seed.
func (d *DB) Seed() error {
	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySeed),
	)

	var userCount int64
	if err := d.Conn.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	logger.Info("Seeding initial data")

	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	userHash, err := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []models.User{
		{Username: "admin", Email: "admin@waleki.com", PasswordHash: string(adminHash), Role: models.UserRoleAdmin},
		{Username: "user", Email: "user@waleki.com", PasswordHash: string(userHash), Role: models.UserRoleUser},
	}
	if err := d.Conn.Create(&users).Error; err != nil {
		return err
	}

	devices := []models.Device{
		{
			Name:                "North Field Well Monitor",
			Location:            "North Field, Plot A",
			Description:         "Primary water source monitoring for agricultural irrigation",
			Status:              models.DeviceStatusActive,
			MeasurementInterval: 15,
			AlertThresholdLow:   0.5,
			AlertThresholdHigh:  5.0,
			CalibrationScale:    1,
		},
		{
			Name:                "South Well Sensor",
			Location:            "South Field, Main Well",
			Description:         "Backup water source monitoring",
			Status:              models.DeviceStatusInactive,
			MeasurementInterval: 30,
			AlertThresholdLow:   1.0,
			AlertThresholdHigh:  4.5,
			CalibrationScale:    1,
		},
		{
			Name:                "East Field Monitoring Station",
			Location:            "East Field, Sector B",
			Description:         "Secondary monitoring for crop irrigation",
			Status:              models.DeviceStatusActive,
			MeasurementInterval: 20,
			AlertThresholdLow:   0.8,
			AlertThresholdHigh:  4.0,
			CalibrationScale:    1,
		},
	}
	if err := d.Conn.Create(&devices).Error; err != nil {
		return err
	}

	// 48 half-hour samples for the first device, newest first
	readings := make([]models.WaterReading, 0, 48)
	for i := 0; i < 48; i++ {
		timestamp := time.Now().Add(-time.Duration(i) * 30 * time.Minute)
		baseLevel := 2.5
		variation := math.Sin(float64(i)*0.3)*0.5 + rand.Float64()*0.2 - 0.1
		level := math.Max(0.1, baseLevel+variation)
		temperature := 20 + rand.Float64()*10
		batteryLevel := max(20, 100-i/2)

		readings = append(readings, models.WaterReading{
			DeviceID:     devices[0].ID,
			Level:        math.Round(level*100) / 100,
			Temperature:  &temperature,
			BatteryLevel: &batteryLevel,
			Timestamp:    timestamp,
		})
	}
	if err := d.Conn.Create(&readings).Error; err != nil {
		return err
	}

	logger.Info("Initial data seeded",
		zap.Int("users", len(users)),
		zap.Int("devices", len(devices)),
		zap.Int("readings", len(readings)))

	return nil
}
