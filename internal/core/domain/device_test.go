package domain

import (
	"errors"
	"testing"
)

func TestDevice_NormalizeControl(t *testing.T) {
	tests := []struct {
		name    string
		typ     DeviceType
		value   any
		want    any
		wantErr error
	}{
		{"thermostat in range", DeviceThermostat, 21.5, 21.5, nil},
		{"thermostat off step", DeviceThermostat, 21.3, nil, ErrInvalidControl},
		{"thermostat too cold", DeviceThermostat, 10.0, nil, ErrInvalidControl},
		{"light brightness", DeviceLight, 75.0, 75.0, nil},
		{"light switch", DeviceLight, false, false, nil},
		{"blinds step", DeviceBlinds, 45.0, 45.0, nil},
		{"blinds off step", DeviceBlinds, 42.0, nil, ErrInvalidControl},
		{"lock bool", DeviceLock, true, true, nil},
		{"lock number", DeviceLock, 1.0, nil, ErrInvalidControl},
		{"camera", DeviceCamera, true, nil, ErrDeviceReadOnly},
		{"sensor", DeviceSensor, 1.0, nil, ErrDeviceReadOnly},
		{"string value", DeviceLight, "on", nil, ErrInvalidControl},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Device{Type: tt.typ}.NormalizeControl(tt.value)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDevice_NeedsAttention(t *testing.T) {
	low, full := 12, 80
	if !(Device{Status: DeviceOffline}).NeedsAttention() {
		t.Fatalf("offline device needs attention")
	}
	if !(Device{Status: DeviceOnline, BatteryLevel: &low}).NeedsAttention() {
		t.Fatalf("low battery device needs attention")
	}
	if (Device{Status: DeviceOnline, BatteryLevel: &full}).NeedsAttention() {
		t.Fatalf("healthy device does not need attention")
	}
	if (Device{Status: DeviceOnline}).LowBattery() {
		t.Fatalf("mains-powered device never reports low battery")
	}
}
