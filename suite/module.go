package suite

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/cemc-oper/takler-util/config"
)

const (
	// DefaultModuleName is the registry name used when the caller does not
	// provide one.
	DefaultModuleName = "suite_config"

	// suite definitions are yaml unless the file extension says otherwise
	defaultConfigType = "yaml"
)

// FS is the filesystem suite definitions are loaded from.
var FS = afero.NewReadOnlyFs(afero.NewOsFs())

// Module is a loaded suite-configuration file. It exposes the definition's
// variables for introspection while the suite is being built.
type Module struct {
	name string
	path string
	v    *viper.Viper
}

// Load reads and parses the suite-configuration file at filePath without
// registering it. Failures to resolve, read or parse the file propagate
// verbatim and nothing is loaded.
func Load(fs afero.Fs, filePath string) (*Module, error) {
	if err := validateFilepath(fs, filePath); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(filePath)
	ext := strings.TrimPrefix(filepath.Ext(filePath), ".")
	if !supportedExt(ext) {
		v.SetConfigType(defaultConfigType)
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	return &Module{
		name: DefaultModuleName,
		path: filePath,
		v:    v,
	}, nil
}

// LoadModuleFromFilePath loads the suite-configuration file at filePath and
// registers the resulting module in the process-wide registry. An empty
// name falls back to DefaultModuleName. Rebinding a name overwrites the
// previous module, so repeated calls are not idempotent; the registry does
// no locking and concurrent loads must be serialized by the caller.
func LoadModuleFromFilePath(name, filePath string) (*Module, error) {
	module, err := Load(FS, filePath)
	if err != nil {
		return nil, err
	}
	if name != "" {
		module.name = name
	}
	Modules.Add(module)
	return module, nil
}

func (m *Module) Name() string {
	return m.name
}

func (m *Module) Path() string {
	return m.path
}

func (m *Module) IsSet(key string) bool {
	return m.v.IsSet(key)
}

func (m *Module) Get(key string) interface{} {
	return m.v.Get(key)
}

func (m *Module) GetString(key string) string {
	return m.v.GetString(key)
}

func (m *Module) GetInt(key string) int {
	return m.v.GetInt(key)
}

func (m *Module) AllSettings() map[string]interface{} {
	return m.v.AllSettings()
}

// Unmarshal decodes the whole definition into out.
func (m *Module) Unmarshal(out interface{}) error {
	return m.v.Unmarshal(out, viper.DecodeHook(config.DateDecodeHook()))
}

// UnmarshalKey decodes a single block of the definition into out.
func (m *Module) UnmarshalKey(key string, out interface{}) error {
	return m.v.UnmarshalKey(key, out, viper.DecodeHook(config.DateDecodeHook()))
}

// NodeConfig decodes and validates the node-configuration block stored
// under key.
func (m *Module) NodeConfig(key string) (*config.NodeConfig, error) {
	cfg := config.NodeConfig{}
	if err := m.UnmarshalKey(key, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func supportedExt(ext string) bool {
	for _, supported := range viper.SupportedExts {
		if ext == supported {
			return true
		}
	}
	return false
}

func validateFilepath(fs afero.Fs, fpath string) error {
	f, err := fs.Stat(fpath)
	if err != nil {
		return err
	}
	if !f.Mode().IsRegular() {
		return fmt.Errorf("%s not a file", fpath)
	}
	return nil
}
