package suite

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Init loads each discovered suite-configuration file into the registry,
// named after the file's base name. Files that fail to load or parse are
// logged and skipped.
func Init(registry *Registry, discoveredConfigPaths []string, logger hclog.Logger) {
	for _, configPath := range discoveredConfigPaths {
		module, err := Load(FS, configPath)
		if err != nil {
			logger.Error(fmt.Sprintf("suite config init: %s", configPath), err)
			continue
		}
		module.name = moduleName(configPath)
		registry.Add(module)
		logger.Debug("suite config ready: ", module.Name())
	}
}

func moduleName(configPath string) string {
	base := filepath.Base(configPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
