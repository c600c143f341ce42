package domain

import "errors"

// Session errors.
var (
	ErrUnrecognizedRole   = errors.New("unrecognized role")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleSwitchDisabled = errors.New("role switching is disabled")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidToken       = errors.New("invalid session token")
)

// Catalog errors.
var (
	ErrApartmentNotFound = errors.New("apartment not found")
	ErrDeviceNotFound    = errors.New("device not found")
	ErrDeviceOffline     = errors.New("device is offline")
	ErrDeviceReadOnly    = errors.New("device does not accept commands")
	ErrInvalidControl    = errors.New("invalid control value")
	ErrWorkOrderNotFound = errors.New("work order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ErrCommandQueueFull is returned when a device command cannot be queued.
var ErrCommandQueueFull = errors.New("device command queue is full")
