package telemetry

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"waleki.xyz/water-level-service/pkg/common"
	"waleki.xyz/water-level-service/pkg/models"
)

func (t *Telemetry) addReading(deviceID uint, input *ReadingInput) (*models.WaterReading, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryReading),
	)

	if input.Level < 0 {
		return nil, NewValidationError("Water level cannot be negative")
	}
	if input.Temperature != nil && (*input.Temperature < -50 || *input.Temperature > 100) {
		return nil, NewValidationError("Temperature must be between -50°C and 100°C")
	}
	if input.BatteryLevel != nil && (*input.BatteryLevel < 0 || *input.BatteryLevel > 100) {
		return nil, NewValidationError("Battery level must be between 0%% and 100%%")
	}

	var device models.Device
	if err := t.Db.Conn.First(&device, deviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "device", ID: deviceID}
		}
		return nil, err
	}

	timestamp := time.Now()
	if input.Timestamp != nil {
		timestamp = *input.Timestamp
	}

	reading := models.WaterReading{
		DeviceID:     deviceID,
		Level:        input.Level,
		Temperature:  input.Temperature,
		BatteryLevel: input.BatteryLevel,
		Timestamp:    timestamp,
	}

	if err := t.Db.Conn.Create(&reading).Error; err != nil {
		return nil, err
	}

	logger.Info("Stored reading for device", zap.Reflect("reading", reading))

	// a successful sample proves the device is alive
	if err := t.markSeen(&device); err != nil {
		return nil, err
	}

	t.publishChange(ChangeReadingAdded, deviceID)

	return &reading, nil
}

func (t *Telemetry) getReadings(deviceID uint, query ReadingQuery) ([]models.WaterReading, error) {
	var exists int64
	if err := t.Db.Conn.Model(&models.Device{}).Where("id = ?", deviceID).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, &NotFoundError{Resource: "device", ID: deviceID}
	}

	tx := t.Db.Conn.Where("device_id = ?", deviceID)
	if query.StartTime != nil {
		tx = tx.Where("timestamp >= ?", *query.StartTime)
	}
	if query.EndTime != nil {
		tx = tx.Where("timestamp <= ?", *query.EndTime)
	}

	// identical timestamps fall back to insertion order, newest first
	tx = tx.Order("timestamp DESC").Order("id DESC")

	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}

	var readings []models.WaterReading
	err := tx.Find(&readings).Error
	return readings, err
}

func (t *Telemetry) deleteReadingsForDevice(deviceID uint) error {
	return t.Db.Conn.Where("device_id = ?", deviceID).Delete(&models.WaterReading{}).Error
}

type IReadingImpl struct {
	telemetry *Telemetry
}

func (ir *IReadingImpl) AddReading(deviceID uint, input *ReadingInput) (*models.WaterReading, error) {
	return ir.telemetry.addReading(deviceID, input)
}

func (ir *IReadingImpl) GetReadings(deviceID uint, query ReadingQuery) ([]models.WaterReading, error) {
	return ir.telemetry.getReadings(deviceID, query)
}

func (ir *IReadingImpl) DeleteReadingsForDevice(deviceID uint) error {
	return ir.telemetry.deleteReadingsForDevice(deviceID)
}

func (t *Telemetry) GetIReading() IReading {
	return &IReadingImpl{telemetry: t}
}
