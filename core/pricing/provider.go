package pricing

// Provider supplies the effective configuration for one calculation.
// Implementations own any persistence, caching, or staleness policy;
// the engine only ever sees an already-resolved Config.
type Provider interface {
	Effective() (*Config, error)
}

// StaticProvider serves a fixed configuration. Used by the CLI and in
// tests, where the effective config is resolved once up front.
type StaticProvider struct {
	cfg *Config
}

// NewStaticProvider creates a provider around an already-resolved config.
func NewStaticProvider(cfg *Config) *StaticProvider {
	return &StaticProvider{cfg: cfg}
}

// Effective returns the fixed configuration.
func (p *StaticProvider) Effective() (*Config, error) {
	return p.cfg, nil
}

// FileProvider resolves the baseline against an admin-editable override
// file on every call, so knob edits take effect without a restart. A
// missing file means baseline only.
type FileProvider struct {
	baseline *Config
	path     string
}

// NewFileProvider creates a provider reading overrides from path.
func NewFileProvider(baseline *Config, path string) *FileProvider {
	return &FileProvider{baseline: baseline, path: path}
}

// Effective loads the current override record and resolves it.
func (p *FileProvider) Effective() (*Config, error) {
	ov, err := LoadOverrideFile(p.path)
	if err != nil {
		return nil, err
	}
	return Resolve(p.baseline, ov)
}
