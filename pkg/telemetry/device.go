package telemetry

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"waleki.xyz/water-level-service/pkg/common"
	"waleki.xyz/water-level-service/pkg/models"
)

type DeviceInput struct {
	Name        string
	Location    string
	Description string
	Settings    *DeviceSettingsInput
}

// DeviceSettingsInput carries optional sub-fields so PUT can update, say,
// only alertThresholds.low. Creation requires every field present.
type DeviceSettingsInput struct {
	MeasurementInterval *int
	AlertThresholds     *AlertThresholdsInput
	Calibration         *CalibrationInput
}

type AlertThresholdsInput struct {
	Low  *float64
	High *float64
}

type CalibrationInput struct {
	Offset *float64
	Scale  *float64
}

type DeviceUpdate struct {
	Name        *string
	Location    *string
	Description *string
	Status      *models.DeviceStatus
	Settings    *DeviceSettingsInput
}

func (t *Telemetry) createDevice(input *DeviceInput) (*models.Device, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDevice),
	)

	if input.Name == "" || input.Location == "" || input.Settings == nil {
		return nil, NewValidationError("Name, location, and settings are required")
	}

	s := input.Settings
	if s.MeasurementInterval == nil || s.AlertThresholds == nil || s.Calibration == nil ||
		s.AlertThresholds.Low == nil || s.AlertThresholds.High == nil ||
		s.Calibration.Offset == nil || s.Calibration.Scale == nil {
		return nil, NewValidationError("Invalid device settings")
	}
	if *s.MeasurementInterval < 1 {
		return nil, NewValidationError("Measurement interval must be at least 1 minute")
	}

	device := models.Device{
		Name:        input.Name,
		Location:    input.Location,
		Description: input.Description,
		Status:      models.DeviceStatusInactive,
	}
	device.ApplySettings(models.DeviceSettings{
		MeasurementInterval: *s.MeasurementInterval,
		AlertThresholds: models.AlertThresholds{
			Low:  *s.AlertThresholds.Low,
			High: *s.AlertThresholds.High,
		},
		Calibration: models.Calibration{
			Offset: *s.Calibration.Offset,
			Scale:  *s.Calibration.Scale,
		},
	})

	if err := t.Db.Conn.Create(&device).Error; err != nil {
		return nil, err
	}

	logger.Info("Created device", zap.Reflect("device", device))

	t.publishChange(ChangeDeviceCreated, device.ID)

	return &device, nil
}

func (t *Telemetry) getDevice(id uint) (*models.Device, error) {
	var device models.Device
	if err := t.Db.Conn.First(&device, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "device", ID: id}
		}
		return nil, err
	}
	return &device, nil
}

func (t *Telemetry) listDevices() ([]models.Device, error) {
	var devices []models.Device
	err := t.Db.Conn.Order("created_at DESC").Find(&devices).Error
	return devices, err
}

func (t *Telemetry) updateDevice(id uint, updates *DeviceUpdate) (*models.Device, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDevice),
	)

	device, err := t.getDevice(id)
	if err != nil {
		return nil, err
	}

	columns := map[string]any{}
	if updates.Name != nil {
		columns["name"] = *updates.Name
	}
	if updates.Location != nil {
		columns["location"] = *updates.Location
	}
	if updates.Description != nil {
		columns["description"] = *updates.Description
	}
	if updates.Status != nil {
		switch *updates.Status {
		case models.DeviceStatusActive, models.DeviceStatusInactive, models.DeviceStatusError:
		default:
			return nil, NewValidationError("Status must be active, inactive, or error")
		}
		columns["status"] = *updates.Status
	}
	if s := updates.Settings; s != nil {
		if s.MeasurementInterval != nil {
			if *s.MeasurementInterval < 1 {
				return nil, NewValidationError("Measurement interval must be at least 1 minute")
			}
			columns["measurement_interval"] = *s.MeasurementInterval
		}
		if s.AlertThresholds != nil {
			if s.AlertThresholds.Low != nil {
				columns["alert_threshold_low"] = *s.AlertThresholds.Low
			}
			if s.AlertThresholds.High != nil {
				columns["alert_threshold_high"] = *s.AlertThresholds.High
			}
		}
		if s.Calibration != nil {
			if s.Calibration.Offset != nil {
				columns["calibration_offset"] = *s.Calibration.Offset
			}
			if s.Calibration.Scale != nil {
				columns["calibration_scale"] = *s.Calibration.Scale
			}
		}
	}

	if len(columns) == 0 {
		return device, nil
	}

	if err := t.Db.Conn.Model(device).Updates(columns).Error; err != nil {
		return nil, err
	}

	logger.Info("Updated device", zap.Uint("device_id", id), zap.Reflect("columns", columns))

	t.publishChange(ChangeDeviceUpdated, id)

	return t.getDevice(id)
}

func (t *Telemetry) deleteDevice(id uint) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDevice),
	)

	device, err := t.getDevice(id)
	if err != nil {
		return err
	}

	// readings are owned exclusively by the device
	if err := t.deleteReadingsForDevice(id); err != nil {
		return err
	}

	if err := t.Db.Conn.Delete(device).Error; err != nil {
		return err
	}

	logger.Info("Deleted device", zap.Uint("device_id", id))

	t.publishChange(ChangeDeviceDeleted, id)

	return nil
}

// markSeen stamps last_seen and promotes an inactive device to active.
// Concurrent ingests for the same device race here, last write wins.
func (t *Telemetry) markSeen(device *models.Device) error {
	now := time.Now()
	columns := map[string]any{"last_seen": now}
	if device.Status == models.DeviceStatusInactive {
		columns["status"] = models.DeviceStatusActive
	}
	return t.Db.Conn.Model(device).Updates(columns).Error
}

func (t *Telemetry) markSeenByID(id uint) error {
	device, err := t.getDevice(id)
	if err != nil {
		return err
	}
	return t.markSeen(device)
}

type IDeviceImpl struct {
	telemetry *Telemetry
}

func (id *IDeviceImpl) CreateDevice(input *DeviceInput) (*models.Device, error) {
	return id.telemetry.createDevice(input)
}

func (id *IDeviceImpl) GetDevice(deviceID uint) (*models.Device, error) {
	return id.telemetry.getDevice(deviceID)
}

func (id *IDeviceImpl) ListDevices() ([]models.Device, error) {
	return id.telemetry.listDevices()
}

func (id *IDeviceImpl) UpdateDevice(deviceID uint, updates *DeviceUpdate) (*models.Device, error) {
	return id.telemetry.updateDevice(deviceID, updates)
}

func (id *IDeviceImpl) DeleteDevice(deviceID uint) error {
	return id.telemetry.deleteDevice(deviceID)
}

func (id *IDeviceImpl) MarkSeen(deviceID uint) error {
	return id.telemetry.markSeenByID(deviceID)
}

func (t *Telemetry) GetIDevice() IDevice {
	return &IDeviceImpl{telemetry: t}
}
