package service

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/smarthome/building-dashboard/internal/core/domain"
	"github.com/smarthome/building-dashboard/internal/core/ports"
)

type deviceService struct {
	catalog ports.CatalogRepository
	clock   clock.Clock
	log     zerolog.Logger
}

// NewDeviceService returns a DeviceService implementation.
func NewDeviceService(catalog ports.CatalogRepository, clk clock.Clock, log zerolog.Logger) ports.DeviceService {
	if clk == nil {
		clk = clock.New()
	}
	return &deviceService{catalog: catalog, clock: clk, log: log}
}

// Control checks that identity owns the device, that the device is online and
// that value fits its control surface.
func (s *deviceService) Control(ctx context.Context, identity *domain.Identity, deviceID string, value any) (*ports.DeviceCommand, error) {
	device, err := s.catalog.FindDevice(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("control device: %w", err)
	}

	// Devices of other apartments are reported as missing.
	owned, err := s.ownsApartment(ctx, identity, device.ApartmentID)
	if err != nil {
		return nil, fmt.Errorf("control device: %w", err)
	}
	if !owned {
		return nil, fmt.Errorf("control device: %w", domain.ErrDeviceNotFound)
	}

	if !device.IsOnline() {
		return nil, fmt.Errorf("control device %s: %w", device.ID, domain.ErrDeviceOffline)
	}

	normalized, err := device.NormalizeControl(value)
	if err != nil {
		return nil, fmt.Errorf("control device %s: %w", device.ID, err)
	}

	return &ports.DeviceCommand{
		ID:          uuid.NewString(),
		DeviceID:    device.ID,
		DeviceName:  device.Name,
		DeviceType:  device.Type,
		ApartmentID: device.ApartmentID,
		Value:       normalized,
		IssuedBy:    identity.ID,
		IssuedAt:    s.clock.Now().UTC(),
	}, nil
}

// Apply stores the commanded value and records it in the activity feed.
func (s *deviceService) Apply(ctx context.Context, cmd ports.DeviceCommand) error {
	now := s.clock.Now().UTC()
	if err := s.catalog.UpdateDeviceValue(ctx, cmd.DeviceID, cmd.Value, now); err != nil {
		return fmt.Errorf("apply command %s: %w", cmd.ID, err)
	}

	activity := domain.Activity{
		ID:          "act-" + cmd.ID,
		Type:        domain.ActivitySuccess,
		Message:     describeCommand(cmd),
		Timestamp:   now,
		Device:      cmd.DeviceName,
		ApartmentID: cmd.ApartmentID,
	}
	if err := s.catalog.AppendActivity(ctx, activity); err != nil {
		s.log.Warn().Err(err).Str("command", cmd.ID).Msg("failed to record device activity")
	}

	s.log.Info().
		Str("command", cmd.ID).
		Str("device", cmd.DeviceID).
		Interface("value", cmd.Value).
		Msg("device command applied")
	return nil
}

func (s *deviceService) ownsApartment(ctx context.Context, identity *domain.Identity, apartmentID string) (bool, error) {
	if identity == nil {
		return false, nil
	}
	apartments, err := s.catalog.Apartments(ctx)
	if err != nil {
		return false, err
	}
	for _, a := range apartments {
		if a.ID == apartmentID {
			return a.HomeownerID == identity.ID, nil
		}
	}
	return false, nil
}

func describeCommand(cmd ports.DeviceCommand) string {
	switch v := cmd.Value.(type) {
	case bool:
		switch {
		case cmd.DeviceType == domain.DeviceLock && v:
			return cmd.DeviceName + " locked"
		case cmd.DeviceType == domain.DeviceLock:
			return cmd.DeviceName + " unlocked"
		case v:
			return cmd.DeviceName + " turned on"
		default:
			return cmd.DeviceName + " turned off"
		}
	case float64:
		unit := "%"
		if cmd.DeviceType == domain.DeviceThermostat {
			unit = "°C"
		}
		return fmt.Sprintf("%s set to %g%s", cmd.DeviceName, v, unit)
	}
	return cmd.DeviceName + " updated"
}
