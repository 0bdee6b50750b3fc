package telemetry

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"waleki.xyz/water-level-service/pkg/common"
	"waleki.xyz/water-level-service/pkg/models"
)

// MaxBatchSize bounds one batch ingestion request.
const MaxBatchSize = 100

// ReadingPayload is what a field device pushes. DeviceID and Level are
// required; everything else is optional.
type ReadingPayload struct {
	DeviceID     uint       `json:"deviceId"`
	Level        *float64   `json:"level"`
	Temperature  *float64   `json:"temperature,omitempty"`
	BatteryLevel *int       `json:"batteryLevel,omitempty"`
	Timestamp    *time.Time `json:"timestamp,omitempty"`
}

type IngestResult struct {
	Reading *models.WaterReading `json:"reading"`
	Alerts  []string             `json:"alerts,omitempty"`
}

type BatchItemResult struct {
	Index   int                  `json:"index"`
	Reading *models.WaterReading `json:"reading"`
}

type BatchItemError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

type BatchResult struct {
	Success    int               `json:"success"`
	ErrorCount int               `json:"errorCount"`
	Results    []BatchItemResult `json:"results"`
	Errors     []BatchItemError  `json:"errors,omitempty"`
}

func (t *Telemetry) ingest(payload *ReadingPayload) (*IngestResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryIngest),
	)

	if payload.DeviceID == 0 || payload.Level == nil {
		return nil, NewValidationError("Device ID and water level are required")
	}

	if t.Reading == nil || t.Device == nil {
		return nil, fmt.Errorf("telemetry services not available")
	}

	reading, err := t.Reading.AddReading(payload.DeviceID, &ReadingInput{
		Level:        *payload.Level,
		Temperature:  payload.Temperature,
		BatteryLevel: payload.BatteryLevel,
		Timestamp:    payload.Timestamp,
	})
	if err != nil {
		return nil, err
	}

	device, err := t.Device.GetDevice(payload.DeviceID)
	if err != nil {
		return nil, err
	}

	alerts := evaluateAlerts(device, reading.Level)
	if len(alerts) > 0 {
		logger.Info("Alert thresholds crossed",
			zap.Uint("device_id", device.ID),
			zap.Strings("alerts", alerts))
	}

	return &IngestResult{Reading: reading, Alerts: alerts}, nil
}

// evaluateAlerts checks both bounds independently. A misconfigured device
// (low >= high) can fire both; that matches the stored configuration.
// Alerts are advisory strings only, nothing is persisted or dispatched.
func evaluateAlerts(device *models.Device, level float64) []string {
	var alerts []string
	if level <= device.AlertThresholdLow {
		alerts = append(alerts, fmt.Sprintf(
			"Water level critically low: %gm (threshold: %gm)", level, device.AlertThresholdLow))
	}
	if level >= device.AlertThresholdHigh {
		alerts = append(alerts, fmt.Sprintf(
			"Water level critically high: %gm (threshold: %gm)", level, device.AlertThresholdHigh))
	}
	return alerts
}

func (t *Telemetry) ingestBatch(payloads []ReadingPayload) (*BatchResult, error) {
	if len(payloads) == 0 {
		return nil, NewValidationError("Readings array is required and cannot be empty")
	}
	if len(payloads) > MaxBatchSize {
		return nil, NewValidationError("Maximum %d readings per batch", MaxBatchSize)
	}

	result := &BatchResult{Results: []BatchItemResult{}}

	// each item stands alone; a failure never rolls back earlier writes
	for i := range payloads {
		itemResult, err := t.ingest(&payloads[i])
		if err != nil {
			result.Errors = append(result.Errors, BatchItemError{Index: i, Error: err.Error()})
			continue
		}
		result.Results = append(result.Results, BatchItemResult{Index: i, Reading: itemResult.Reading})
	}

	result.Success = len(result.Results)
	result.ErrorCount = len(result.Errors)

	return result, nil
}

type IIngestImpl struct {
	telemetry *Telemetry
}

func (ii *IIngestImpl) Ingest(payload *ReadingPayload) (*IngestResult, error) {
	return ii.telemetry.ingest(payload)
}

func (ii *IIngestImpl) IngestBatch(payloads []ReadingPayload) (*BatchResult, error) {
	return ii.telemetry.ingestBatch(payloads)
}

func (t *Telemetry) GetIIngest() IIngest {
	return &IIngestImpl{telemetry: t}
}
