package ots

import validator "github.com/go-playground/validator/v10"

// SecurityLevel is the Bluetooth link security level applied to a
// bulk-transfer socket before connect (spec.md §4.9, §6).
type SecurityLevel uint8

const (
	SecuritySDP    SecurityLevel = 0
	SecurityLow    SecurityLevel = 1
	SecurityMedium SecurityLevel = 2
	SecurityHigh   SecurityLevel = 3
	SecurityFIPS   SecurityLevel = 4
)

// SecurityConfig holds the values for the BT_SECURITY sockopt (spec.md
// §4.9): a security level and a minimum encryption key size, each sent to
// the kernel as one byte.
type SecurityConfig struct {
	Level   SecurityLevel `validate:"lte=4"`
	KeySize uint16        `validate:"lte=16"`
}

var configValidator = validator.New()

// Config holds the construction-time options a Client is built with
// (spec.md §6). Both fields are optional; the zero value disables them.
type Config struct {
	// Privileged, if set, binds the adapter-side L2CAP socket to an
	// all-zero MAC + Random address type + PSM 0x25 instead of the
	// adapter's real MAC + address type + PSM 0x80 (spec.md §4.9).
	Privileged bool

	// Security, if non-nil, is applied to every bulk-transfer socket
	// before connect (spec.md §6).
	Security *SecurityConfig
}

// Validate checks Security's field ranges, if set, using the same
// struct-tag validator marmos91-dittofs uses for its request/config
// structs. A Client constructed with an invalid Config rejects it before
// ever touching the GATT session.
func (c Config) Validate() error {
	if c.Security == nil {
		return nil
	}
	return configValidator.Struct(c.Security)
}

// Option configures a Client at construction time, following the teacher's
// functional-option idiom (option_linux.go's LnxDeviceID, LnxMaxConnections,
// ...) generalized to this package's two-field Config.
type Option func(*Config)

// WithPrivileged sets Config.Privileged.
func WithPrivileged() Option {
	return func(c *Config) { c.Privileged = true }
}

// WithSecurity sets Config.Security.
func WithSecurity(level SecurityLevel, keySize uint16) Option {
	return func(c *Config) { c.Security = &SecurityConfig{Level: level, KeySize: keySize} }
}
