package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.AI.Timeout <= 0 {
		return fmt.Errorf("ai.timeout must be > 0 (got %v)", c.AI.Timeout)
	}
	if !c.AI.UseStub && c.AI.BaseURL == "" {
		return fmt.Errorf("ai.base_url is required when the stub client is disabled")
	}
	if c.Report.RatioScale < 0 || c.Report.RatioScale > 8 {
		return fmt.Errorf("report.ratio_scale must be between 0 and 8 (got %d)", c.Report.RatioScale)
	}
	return nil
}
