package ring

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the immutable ring parameters. Build one by hand or with
// LoadConfig, validate it once, and pass it to NewController; the
// controller never mutates it.
type Config struct {
	Count             int     `json:"count"`             // number of command icons on the ring
	NormalRadius      float32 `json:"normalRadius"`      // ring radius when fully shown
	FadeRadiusDelta   float32 `json:"fadeRadiusDelta"`   // radial drift applied while fading
	FadeAngleDelta    float32 `json:"fadeAngleDelta"`    // angular drift (degrees) applied while fading
	FadeDuration      float32 `json:"fadeDuration"`      // seconds for a full fade in or out
	RotationDuration  float32 `json:"rotationDuration"`  // seconds for one step rotation
	RotationThreshold float32 `json:"rotationThreshold"` // accumulated hand movement that triggers a step
}

// DefaultConfig returns the parameters used by the demo.
func DefaultConfig(count int) Config {
	return Config{
		Count:             count,
		NormalRadius:      0.3,
		FadeRadiusDelta:   0.15,
		FadeAngleDelta:    45,
		FadeDuration:      0.25,
		RotationDuration:  0.2,
		RotationThreshold: 0.05,
	}
}

// Validate rejects configurations that cannot produce a ring layout.
func (c Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("ring: count must be >= 1, got %d", c.Count)
	}
	if c.NormalRadius <= 0 {
		return fmt.Errorf("ring: normalRadius must be positive, got %v", c.NormalRadius)
	}
	if c.FadeRadiusDelta <= 0 {
		return fmt.Errorf("ring: fadeRadiusDelta must be positive, got %v", c.FadeRadiusDelta)
	}
	if c.FadeAngleDelta <= 0 {
		return fmt.Errorf("ring: fadeAngleDelta must be positive, got %v", c.FadeAngleDelta)
	}
	if c.FadeDuration <= 0 {
		return fmt.Errorf("ring: fadeDuration must be positive, got %v", c.FadeDuration)
	}
	if c.RotationDuration <= 0 {
		return fmt.Errorf("ring: rotationDuration must be positive, got %v", c.RotationDuration)
	}
	if c.RotationThreshold <= 0 {
		return fmt.Errorf("ring: rotationThreshold must be positive, got %v", c.RotationThreshold)
	}
	return nil
}

// LoadConfig reads a ring definition from a JSON file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("ring: read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("ring: parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
