package logging

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance installed by Setup.
var Logger *zap.Logger

// Setup builds the process logger: the production config by default, the
// development config when debug is set. The configured logger replaces the
// zap globals so library code can use zap.L().
func Setup(debug bool, appName, appVersion string) error {
	var err error
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	Logger, err = cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	zap.ReplaceGlobals(Logger)
	return nil
}
