package domain

import (
	"fmt"
	"math"
	"time"
)

// DeviceType is the kind of smart device.
type DeviceType string

const (
	DeviceThermostat DeviceType = "thermostat"
	DeviceLight      DeviceType = "light"
	DeviceLock       DeviceType = "lock"
	DeviceBlinds     DeviceType = "blinds"
	DeviceCamera     DeviceType = "camera"
	DeviceSensor     DeviceType = "sensor"
	DeviceDoorbell   DeviceType = "doorbell"
)

// DeviceStatus is the connectivity state reported by a device.
type DeviceStatus string

const (
	DeviceOnline  DeviceStatus = "online"
	DeviceOffline DeviceStatus = "offline"
	DeviceIdle    DeviceStatus = "idle"
	DeviceError   DeviceStatus = "error"
)

// LowBatteryThreshold is the battery percentage under which a device needs
// attention.
const LowBatteryThreshold = 20

// DeviceCapability describes one control surface of a device.
type DeviceCapability struct {
	ID      string   `json:"id" bson:"id"`
	Name    string   `json:"name" bson:"name"`
	Type    string   `json:"type" bson:"type"`
	Min     *float64 `json:"min,omitempty" bson:"min,omitempty"`
	Max     *float64 `json:"max,omitempty" bson:"max,omitempty"`
	Unit    string   `json:"unit,omitempty" bson:"unit,omitempty"`
	Options []string `json:"options,omitempty" bson:"options,omitempty"`
	Enabled bool     `json:"enabled" bson:"enabled"`
}

// Device is a smart device installed in an apartment. CurrentValue holds a
// number (temperature, brightness, position) or a bool (locked, on).
type Device struct {
	ID           string             `json:"id" bson:"_id"`
	Name         string             `json:"name" bson:"name"`
	Type         DeviceType         `json:"type" bson:"type"`
	Status       DeviceStatus       `json:"status" bson:"status"`
	ApartmentID  string             `json:"apartment_id" bson:"apartment_id"`
	Room         string             `json:"room" bson:"room"`
	BatteryLevel *int               `json:"battery_level,omitempty" bson:"battery_level,omitempty"`
	LastActive   time.Time          `json:"last_active" bson:"last_active"`
	Capabilities []DeviceCapability `json:"capabilities" bson:"capabilities"`
	CurrentValue any                `json:"current_value,omitempty" bson:"current_value,omitempty"`
}

// IsOnline reports whether the device accepts commands.
func (d Device) IsOnline() bool {
	return d.Status == DeviceOnline
}

// LowBattery reports whether a battery-powered device is under the threshold.
func (d Device) LowBattery() bool {
	return d.BatteryLevel != nil && *d.BatteryLevel < LowBatteryThreshold
}

// NeedsAttention reports whether maintenance should look at the device.
func (d Device) NeedsAttention() bool {
	return d.Status == DeviceOffline || d.LowBattery()
}

type rangeControl struct {
	min, max, step float64
}

var numericControls = map[DeviceType]rangeControl{
	DeviceThermostat: {min: 16, max: 30, step: 0.5},
	DeviceLight:      {min: 0, max: 100, step: 1},
	DeviceBlinds:     {min: 0, max: 100, step: 5},
}

// NormalizeControl checks value against the device's control surface and
// returns it in canonical form (float64 or bool).
func (d Device) NormalizeControl(value any) (any, error) {
	switch d.Type {
	case DeviceCamera, DeviceSensor, DeviceDoorbell:
		return nil, ErrDeviceReadOnly
	case DeviceLock:
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: lock expects true or false", ErrInvalidControl)
		}
		return b, nil
	}

	rc, ok := numericControls[d.Type]
	if !ok {
		return nil, ErrDeviceReadOnly
	}
	if b, isBool := value.(bool); isBool && d.Type == DeviceLight {
		return b, nil
	}
	n, ok := AsNumber(value)
	if !ok {
		return nil, fmt.Errorf("%w: %s expects a number", ErrInvalidControl, d.Type)
	}
	if n < rc.min || n > rc.max {
		return nil, fmt.Errorf("%w: %s must be between %g and %g", ErrInvalidControl, d.Type, rc.min, rc.max)
	}
	if steps := (n - rc.min) / rc.step; math.Abs(steps-math.Round(steps)) > 1e-9 {
		return nil, fmt.Errorf("%w: %s moves in steps of %g", ErrInvalidControl, d.Type, rc.step)
	}
	return n, nil
}

// AsNumber converts the numeric representations produced by JSON and BSON
// decoding into a float64.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
