// Package fixtures seeds the dashboard catalog with a demo building portfolio.
package fixtures

import (
	"time"

	"github.com/smarthome/building-dashboard/internal/core/domain"
)

// Snapshot is a complete catalog.
type Snapshot struct {
	Buildings     []domain.Building
	Apartments    []domain.Apartment
	Devices       []domain.Device
	WorkOrders    []domain.WorkOrder
	Activities    []domain.Activity // newest first
	Notifications []domain.Notification
}

func battery(n int) *int { return &n }

func bound(v float64) *float64 { return &v }

var (
	thermostatCaps = []domain.DeviceCapability{
		{ID: "temp", Name: "Temperature", Type: "range", Min: bound(16), Max: bound(30), Unit: "°C", Enabled: true},
		{ID: "mode", Name: "Mode", Type: "select", Options: []string{"heat", "cool", "auto"}, Enabled: true},
	}
	lightCaps = []domain.DeviceCapability{
		{ID: "power", Name: "Power", Type: "toggle", Enabled: true},
		{ID: "brightness", Name: "Brightness", Type: "range", Min: bound(0), Max: bound(100), Unit: "%", Enabled: true},
	}
	lockCaps = []domain.DeviceCapability{
		{ID: "lock", Name: "Lock", Type: "toggle", Enabled: true},
	}
	blindsCaps = []domain.DeviceCapability{
		{ID: "position", Name: "Position", Type: "range", Min: bound(0), Max: bound(100), Unit: "%", Enabled: true},
		{ID: "schedule", Name: "Schedule", Type: "schedule", Enabled: false},
	}
	cameraCaps = []domain.DeviceCapability{
		{ID: "recording", Name: "Recording", Type: "toggle", Enabled: true},
	}
)

// Seed builds the demo catalog with timestamps relative to now.
func Seed(now time.Time) Snapshot {
	ago := func(d time.Duration) time.Time { return now.Add(-d) }
	completed := ago(26 * time.Hour)

	return Snapshot{
		Buildings: []domain.Building{
			{ID: "bld-a", Name: "Tower A", Address: "100 Harbor Street", Floors: 12, TotalApartments: 48, OccupiedApartments: 42},
			{ID: "bld-b", Name: "Tower B", Address: "102 Harbor Street", Floors: 10, TotalApartments: 40, OccupiedApartments: 35},
			{ID: "bld-c", Name: "Tower C", Address: "104 Harbor Street", Floors: 8, TotalApartments: 32, OccupiedApartments: 24},
		},
		Apartments: []domain.Apartment{
			{ID: "apt-101", BuildingID: "bld-a", Floor: 1, Unit: "101", Type: "2BR", HomeownerID: "owner-001", HomeownerName: "John Doe", DeviceCount: 8, Status: domain.ApartmentOccupied},
			{ID: "apt-102", BuildingID: "bld-a", Floor: 1, Unit: "102", Type: "1BR", HomeownerID: "owner-002", HomeownerName: "Sarah Miller", DeviceCount: 3, Status: domain.ApartmentOccupied},
			{ID: "apt-201", BuildingID: "bld-a", Floor: 2, Unit: "201", Type: "3BR", HomeownerID: "owner-003", HomeownerName: "David Chen", DeviceCount: 2, Status: domain.ApartmentOccupied},
			{ID: "apt-202", BuildingID: "bld-a", Floor: 2, Unit: "202", Type: "Studio", DeviceCount: 0, Status: domain.ApartmentVacant},
			{ID: "apt-b301", BuildingID: "bld-b", Floor: 3, Unit: "301", Type: "2BR", HomeownerID: "owner-004", HomeownerName: "Emma Wilson", DeviceCount: 2, Status: domain.ApartmentOccupied},
			{ID: "apt-b302", BuildingID: "bld-b", Floor: 3, Unit: "302", Type: "1BR", DeviceCount: 1, Status: domain.ApartmentMaintenance},
			{ID: "apt-c801", BuildingID: "bld-c", Floor: 8, Unit: "801", Type: "Penthouse", HomeownerID: "owner-005", HomeownerName: "Olivia Brown", DeviceCount: 1, Status: domain.ApartmentOccupied},
		},
		Devices: []domain.Device{
			{ID: "dev-101-thermo", Name: "Living Room Thermostat", Type: domain.DeviceThermostat, Status: domain.DeviceOnline, ApartmentID: "apt-101", Room: "Living Room", LastActive: ago(2 * time.Minute), Capabilities: thermostatCaps, CurrentValue: 22.0},
			{ID: "dev-101-light-lr", Name: "Living Room Lights", Type: domain.DeviceLight, Status: domain.DeviceOnline, ApartmentID: "apt-101", Room: "Living Room", LastActive: ago(5 * time.Minute), Capabilities: lightCaps, CurrentValue: 75.0},
			{ID: "dev-101-light-mb", Name: "Bedroom Lights", Type: domain.DeviceLight, Status: domain.DeviceOnline, ApartmentID: "apt-101", Room: "Master Bedroom", LastActive: ago(3 * time.Hour), Capabilities: lightCaps, CurrentValue: false},
			{ID: "dev-101-lock", Name: "Front Door Lock", Type: domain.DeviceLock, Status: domain.DeviceOnline, ApartmentID: "apt-101", Room: "Entrance", BatteryLevel: battery(85), LastActive: ago(40 * time.Minute), Capabilities: lockCaps, CurrentValue: true},
			{ID: "dev-101-blinds", Name: "Living Room Blinds", Type: domain.DeviceBlinds, Status: domain.DeviceOnline, ApartmentID: "apt-101", Room: "Living Room", LastActive: ago(1 * time.Hour), Capabilities: blindsCaps, CurrentValue: 60.0},
			{ID: "dev-101-camera", Name: "Entrance Camera", Type: domain.DeviceCamera, Status: domain.DeviceOnline, ApartmentID: "apt-101", Room: "Entrance", LastActive: ago(1 * time.Minute), Capabilities: cameraCaps},
			{ID: "dev-101-sensor", Name: "Kitchen Smoke Sensor", Type: domain.DeviceSensor, Status: domain.DeviceOnline, ApartmentID: "apt-101", Room: "Kitchen", BatteryLevel: battery(15), LastActive: ago(10 * time.Minute)},
			{ID: "dev-101-doorbell", Name: "Video Doorbell", Type: domain.DeviceDoorbell, Status: domain.DeviceOffline, ApartmentID: "apt-101", Room: "Hallway", BatteryLevel: battery(8), LastActive: ago(2 * time.Hour)},

			{ID: "dev-102-thermo", Name: "Thermostat", Type: domain.DeviceThermostat, Status: domain.DeviceOffline, ApartmentID: "apt-102", Room: "Living Room", LastActive: ago(5 * time.Hour), Capabilities: thermostatCaps, CurrentValue: 20.0},
			{ID: "dev-102-lock", Name: "Front Door Lock", Type: domain.DeviceLock, Status: domain.DeviceOnline, ApartmentID: "apt-102", Room: "Entrance", BatteryLevel: battery(64), LastActive: ago(20 * time.Minute), Capabilities: lockCaps, CurrentValue: true},
			{ID: "dev-102-light", Name: "Kitchen Lights", Type: domain.DeviceLight, Status: domain.DeviceIdle, ApartmentID: "apt-102", Room: "Kitchen", LastActive: ago(9 * time.Hour), Capabilities: lightCaps, CurrentValue: 0.0},
			{ID: "dev-201-thermo", Name: "Thermostat", Type: domain.DeviceThermostat, Status: domain.DeviceOnline, ApartmentID: "apt-201", Room: "Living Room", LastActive: ago(4 * time.Minute), Capabilities: thermostatCaps, CurrentValue: 23.5},
			{ID: "dev-201-blinds", Name: "Bedroom Blinds", Type: domain.DeviceBlinds, Status: domain.DeviceError, ApartmentID: "apt-201", Room: "Master Bedroom", LastActive: ago(26 * time.Hour), Capabilities: blindsCaps, CurrentValue: 0.0},
			{ID: "dev-b301-camera", Name: "Balcony Camera", Type: domain.DeviceCamera, Status: domain.DeviceOnline, ApartmentID: "apt-b301", Room: "Balcony", LastActive: ago(30 * time.Second), Capabilities: cameraCaps},
			{ID: "dev-b301-lock", Name: "Front Door Lock", Type: domain.DeviceLock, Status: domain.DeviceOnline, ApartmentID: "apt-b301", Room: "Entrance", BatteryLevel: battery(12), LastActive: ago(3 * time.Hour), Capabilities: lockCaps, CurrentValue: false},
			{ID: "dev-b302-sensor", Name: "Water Leak Sensor", Type: domain.DeviceSensor, Status: domain.DeviceOffline, ApartmentID: "apt-b302", Room: "Bathroom", BatteryLevel: battery(0), LastActive: ago(72 * time.Hour)},
			{ID: "dev-c801-thermo", Name: "Penthouse Climate", Type: domain.DeviceThermostat, Status: domain.DeviceOnline, ApartmentID: "apt-c801", Room: "Living Room", LastActive: ago(6 * time.Minute), Capabilities: thermostatCaps, CurrentValue: 21.0},
		},
		WorkOrders: []domain.WorkOrder{
			{ID: "wo-001", DeviceID: "dev-102-thermo", ApartmentID: "apt-102", Type: "repair", Status: domain.WorkOrderPending, Priority: domain.PriorityUrgent, Description: "Thermostat unresponsive, unit not heating", CreatedAt: ago(3 * time.Hour)},
			{ID: "wo-002", DeviceID: "dev-201-blinds", ApartmentID: "apt-201", Type: "repair", Status: domain.WorkOrderInProgress, Priority: domain.PriorityHigh, Description: "Blinds motor reports error state", AssignedTo: "Mike Thompson", CreatedAt: ago(20 * time.Hour)},
			{ID: "wo-003", ApartmentID: "apt-202", Type: "installation", Status: domain.WorkOrderPending, Priority: domain.PriorityMedium, Description: "Install starter device kit before move-in", CreatedAt: ago(48 * time.Hour)},
			{ID: "wo-004", DeviceID: "dev-b301-lock", ApartmentID: "apt-b301", Type: "maintenance", Status: domain.WorkOrderPending, Priority: domain.PriorityHigh, Description: "Replace lock battery (12%)", AssignedTo: "Mike Thompson", CreatedAt: ago(6 * time.Hour)},
			{ID: "wo-005", DeviceID: "dev-101-doorbell", ApartmentID: "apt-101", Type: "repair", Status: domain.WorkOrderPending, Priority: domain.PriorityMedium, Description: "Doorbell offline since this morning", CreatedAt: ago(2 * time.Hour)},
			{ID: "wo-006", DeviceID: "dev-b302-sensor", ApartmentID: "apt-b302", Type: "repair", Status: domain.WorkOrderInProgress, Priority: domain.PriorityUrgent, Description: "Leak sensor offline during unit maintenance", AssignedTo: "Ana Ruiz", CreatedAt: ago(30 * time.Hour)},
			{ID: "wo-007", DeviceID: "dev-c801-thermo", ApartmentID: "apt-c801", Type: "maintenance", Status: domain.WorkOrderCompleted, Priority: domain.PriorityLow, Description: "Annual thermostat calibration", AssignedTo: "Mike Thompson", CreatedAt: ago(50 * time.Hour), CompletedAt: &completed},
			{ID: "wo-008", ApartmentID: "apt-201", Type: "move", Status: domain.WorkOrderCancelled, Priority: domain.PriorityLow, Description: "Relocate hallway sensor", CreatedAt: ago(96 * time.Hour)},
		},
		Activities: []domain.Activity{
			{ID: "act-001", Type: domain.ActivityInfo, Message: "Camera motion detected", Timestamp: ago(1 * time.Minute), Device: "Entrance Camera", ApartmentID: "apt-101"},
			{ID: "act-002", Type: domain.ActivitySuccess, Message: "Temperature set to 22°C", Timestamp: ago(2 * time.Minute), Device: "Living Room Thermostat", ApartmentID: "apt-101"},
			{ID: "act-003", Type: domain.ActivityWarning, Message: "Low battery (15%)", Timestamp: ago(10 * time.Minute), Device: "Kitchen Smoke Sensor", ApartmentID: "apt-101"},
			{ID: "act-004", Type: domain.ActivityError, Message: "Device went offline", Timestamp: ago(2 * time.Hour), Device: "Video Doorbell", ApartmentID: "apt-101"},
			{ID: "act-005", Type: domain.ActivityError, Message: "Thermostat not responding", Timestamp: ago(3 * time.Hour), Device: "Thermostat", ApartmentID: "apt-102"},
			{ID: "act-006", Type: domain.ActivityWarning, Message: "Lock battery at 12%", Timestamp: ago(3 * time.Hour), Device: "Front Door Lock", ApartmentID: "apt-b301"},
			{ID: "act-007", Type: domain.ActivitySuccess, Message: "Work order wo-007 completed by Mike Thompson", Timestamp: completed, ApartmentID: "apt-c801"},
		},
		Notifications: []domain.Notification{
			{ID: "ntf-001", UserID: "owner-001", Type: "alert", Title: "Doorbell offline", Message: "Your video doorbell lost connection.", CreatedAt: ago(2 * time.Hour)},
			{ID: "ntf-002", UserID: "owner-001", Type: "warning", Title: "Low battery", Message: "Kitchen smoke sensor battery is at 15%.", CreatedAt: ago(10 * time.Minute)},
			{ID: "ntf-003", UserID: "owner-001", Type: "info", Title: "Maintenance scheduled", Message: "A technician will check your doorbell.", CreatedAt: ago(90 * time.Minute)},
			{ID: "ntf-004", UserID: "owner-001", Type: "success", Title: "Welcome", Message: "Your smart home is set up.", Read: true, CreatedAt: ago(30 * 24 * time.Hour)},
		},
	}
}
