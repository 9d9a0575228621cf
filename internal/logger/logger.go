package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log és el logger estructurat; SLog la variant sugared per missatges curts.
// Fins a Init són no-op, així els tests no necessiten configurar res.
var (
	Log  = zap.NewNop()
	SLog = zap.NewNop().Sugar()
)

func Init() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		panic("no s'ha pogut inicialitzar el logger: " + err.Error())
	}

	Log = l
	SLog = l.Sugar()
}

func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
