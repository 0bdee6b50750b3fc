package models

import (
	"time"

	"gorm.io/gorm"
)

type DeviceStatus string

const (
	DeviceStatusActive   DeviceStatus = "active"
	DeviceStatusInactive DeviceStatus = "inactive"
	DeviceStatusError    DeviceStatus = "error"
)

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

type AlertThresholds struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

type Calibration struct {
	Offset float64 `json:"offset"`
	Scale  float64 `json:"scale"`
}

// DeviceSettings is the nested shape the API exposes; it mirrors the
// flattened columns on Device.
type DeviceSettings struct {
	MeasurementInterval int             `json:"measurementInterval"`
	AlertThresholds     AlertThresholds `json:"alertThresholds"`
	Calibration         Calibration     `json:"calibration"`
}

type Device struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"not null" json:"name"`
	Location    string       `gorm:"not null" json:"location"`
	Description string       `json:"description,omitempty"`
	Status      DeviceStatus `gorm:"type:varchar(10);check:status IN ('active','inactive','error');default:'inactive'" json:"status"`
	LastSeen    *time.Time   `json:"lastSeen"`

	MeasurementInterval int     `gorm:"not null;default:15" json:"-"`
	AlertThresholdLow   float64 `gorm:"not null;default:0.5" json:"-"`
	AlertThresholdHigh  float64 `gorm:"not null;default:5.0" json:"-"`
	CalibrationOffset   float64 `gorm:"not null;default:0" json:"-"`
	CalibrationScale    float64 `gorm:"not null;default:1" json:"-"`

	Settings DeviceSettings `gorm:"-" json:"settings"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Readings []WaterReading `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE" json:"-"`
}

func (d *Device) AfterFind(tx *gorm.DB) error {
	d.SyncSettings()
	return nil
}

// SyncSettings fills the nested Settings view from the flattened columns.
func (d *Device) SyncSettings() {
	d.Settings = DeviceSettings{
		MeasurementInterval: d.MeasurementInterval,
		AlertThresholds: AlertThresholds{
			Low:  d.AlertThresholdLow,
			High: d.AlertThresholdHigh,
		},
		Calibration: Calibration{
			Offset: d.CalibrationOffset,
			Scale:  d.CalibrationScale,
		},
	}
}

// ApplySettings copies a nested settings value onto the flattened columns.
func (d *Device) ApplySettings(s DeviceSettings) {
	d.MeasurementInterval = s.MeasurementInterval
	d.AlertThresholdLow = s.AlertThresholds.Low
	d.AlertThresholdHigh = s.AlertThresholds.High
	d.CalibrationOffset = s.Calibration.Offset
	d.CalibrationScale = s.Calibration.Scale
	d.SyncSettings()
}

type WaterReading struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	DeviceID     uint      `gorm:"not null;index:idx_water_readings_device_timestamp,priority:1" json:"deviceId"`
	Level        float64   `gorm:"not null" json:"level"`
	Temperature  *float64  `json:"temperature,omitempty"`
	BatteryLevel *int      `json:"batteryLevel,omitempty"`
	Timestamp    time.Time `gorm:"not null;index:idx_water_readings_device_timestamp,priority:2" json:"timestamp"`
	CreatedAt    time.Time `json:"-"`
}

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         UserRole  `gorm:"type:varchar(10);check:role IN ('admin','user')" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
