package validation

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	units "github.com/docker/go-units"
)

// NoFileSizeLimit marks a finalized configuration without a size cap.
const NoFileSizeLimit = -1

// Config is the finalized runtime configuration consumed by the
// file-validation component.
type Config struct {
	SupportedFileTypes []string
	FileSizeLimit      int64 // NoFileSizeLimit when uncapped
	FailOnInvalidFile  bool
}

// LimitsSize reports whether a size cap is configured. An explicit zero
// limit counts as a cap.
func (c Config) LimitsSize() bool {
	return c.FileSizeLimit >= 0
}

// Finalize derives the runtime configuration from user-facing settings.
//
// Size limit precedence: the explicit numeric limit when set, else the
// parsed human-readable limit ("25MB" is read with binary units, 25 x 1024 x
// 1024 bytes), else no limit. Structural problems fail here, at startup,
// with an InvalidConfigurationError.
func Finalize(s Settings) (Config, error) {
	cfg := Config{
		SupportedFileTypes: append([]string(nil), s.SupportedFileTypes...),
		FileSizeLimit:      NoFileSizeLimit,
		FailOnInvalidFile:  s.FailOnInvalidFile,
	}

	switch {
	case s.FileSizeLimit >= 0:
		cfg.FileSizeLimit = s.FileSizeLimit
	case s.FileSizeLimit != UnsetFileSizeLimit:
		return Config{}, &InvalidConfigurationError{
			Reason: fmt.Sprintf("file size limit must be %d (unset) or non-negative, got %d", UnsetFileSizeLimit, s.FileSizeLimit),
		}
	case s.UnitFileSizeLimit != "":
		limit, err := units.RAMInBytes(s.UnitFileSizeLimit)
		if err != nil {
			return Config{}, &InvalidConfigurationError{
				Reason: fmt.Sprintf("unparseable unit file size limit %q: %v", s.UnitFileSizeLimit, err),
			}
		}
		cfg.FileSizeLimit = limit
	}

	if len(cfg.SupportedFileTypes) == 0 {
		return Config{}, &InvalidConfigurationError{Reason: "supported file types must not be empty"}
	}
	for _, pattern := range cfg.SupportedFileTypes {
		if pattern == "" || !doublestar.ValidatePattern(pattern) {
			return Config{}, &InvalidConfigurationError{
				Reason: fmt.Sprintf("unusable supported file type pattern %q", pattern),
			}
		}
	}

	return cfg, nil
}
