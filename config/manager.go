package config

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Manager owns the configuration file and the last good config read from it.
type Manager struct {
	mu         sync.RWMutex
	config     *Config
	configPath string
}

// DefaultPath is $HOME/.mactime/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locate home directory")
	}
	return filepath.Join(homeDir, ".mactime", "config.yaml"), nil
}

// NewManager loads the config at path (DefaultPath when empty). A missing
// file is created with the defaults; an unreadable or invalid one is
// logged and the defaults are used without overwriting it.
func NewManager(path string) (*Manager, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	m := &Manager{configPath: path}

	cfg, err := Load(path)
	switch {
	case err == nil:
		m.config = cfg
	case os.IsNotExist(errors.Cause(err)):
		log.Printf("No config at %s, writing defaults", path)
		m.config = DefaultConfig()
		if err := m.SaveConfig(); err != nil {
			return nil, err
		}
	default:
		log.Printf("Ignoring config %s: %v", path, err)
		m.config = DefaultConfig()
	}
	return m, nil
}

// Load reads and validates the config at path. Settings absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Path returns the config file location.
func (m *Manager) Path() string {
	return m.configPath
}

// GetConfig returns a copy of the current config.
func (m *Manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.Clone()
}

// SaveConfig writes the current config to disk, creating the directory.
func (m *Manager) SaveConfig() error {
	m.mu.RLock()
	data, err := yaml.Marshal(m.config)
	m.mu.RUnlock()
	if err != nil {
		return errors.Wrap(err, "encode config")
	}

	if err := os.MkdirAll(filepath.Dir(m.configPath), 0o755); err != nil {
		return errors.Wrap(err, "create config directory")
	}
	return errors.Wrap(os.WriteFile(m.configPath, data, 0o644), "write config")
}

// Update validates cfg, makes it current and saves it.
func (m *Manager) Update(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	m.config = cfg.Clone()
	m.mu.Unlock()
	return m.SaveConfig()
}

// ConfigChangeCallback receives each successfully reloaded config.
type ConfigChangeCallback func(*Config)

// Watch reloads the config whenever the file changes until ctx is done.
// Edits that fail to parse or validate are logged and skipped.
func (m *Manager) Watch(ctx context.Context, callback ConfigChangeCallback) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create config watcher")
	}
	// Watch the directory: editors often replace the file instead of
	// writing it in place.
	if err := watcher.Add(filepath.Dir(m.configPath)); err != nil {
		watcher.Close()
		return errors.Wrapf(err, "watch %s", filepath.Dir(m.configPath))
	}

	go func() {
		defer watcher.Close()
		target := filepath.Clean(m.configPath)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				cfg, err := Load(m.configPath)
				if err != nil {
					log.Printf("Config reload skipped: %v", err)
					continue
				}
				m.mu.Lock()
				m.config = cfg
				m.mu.Unlock()
				log.Printf("Config reloaded from %s", m.configPath)
				if callback != nil {
					callback(cfg.Clone())
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Config watcher error: %v", err)
			}
		}
	}()
	return nil
}
