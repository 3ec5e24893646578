package logging

import (
	"github.com/lefinal/acegen/entity"
	"github.com/lefinal/meh"
	"github.com/lefinal/meh/mehlog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"sync"
)

func init() {
	mehlog.OmitErrorMessageField(true)
}

// NewLogger creates a new zap.Logger writing to stderr, so that stdout only
// holds command output. Don't forget to call Sync() on the returned logged
// before exiting!
func NewLogger(level zapcore.Level) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(level)
	config.DisableCaller = true
	config.DisableStacktrace = true
	logger, err := config.Build()
	if err != nil {
		return nil, meh.NewInternalErrFromErr(err, "new zap production logger", meh.Details{"config": config})
	}
	return logger, nil
}

var (
	logger      *zap.Logger
	loggerMutex sync.RWMutex
)

var defaultLevelTranslator map[meh.Code]zapcore.Level
var defaultLevelTranslatorMutex sync.RWMutex

func init() {
	defaultLevelTranslator = make(map[meh.Code]zapcore.Level)
	// Errors caused by the user are still shown with the default level.
	AddToDefaultLevelTranslator(meh.ErrNotFound, zap.WarnLevel)
	AddToDefaultLevelTranslator(meh.ErrBadInput, zap.WarnLevel)
	AddToDefaultLevelTranslator(entity.ErrInvalidName, zap.WarnLevel)
	mehlog.SetDefaultLevelTranslator(LevelForCode)
}

// AddToDefaultLevelTranslator adds the given case to the translation map.
func AddToDefaultLevelTranslator(code meh.Code, level zapcore.Level) {
	defaultLevelTranslatorMutex.Lock()
	defaultLevelTranslator[code] = level
	defaultLevelTranslatorMutex.Unlock()
}

// LevelForCode returns the level errors with the given code are logged with.
// Unknown codes are logged as errors.
func LevelForCode(code meh.Code) zapcore.Level {
	defaultLevelTranslatorMutex.RLock()
	defer defaultLevelTranslatorMutex.RUnlock()
	if level, ok := defaultLevelTranslator[code]; ok {
		return level
	}
	return zap.ErrorLevel
}

// RootLogger returns the logger set via SetLogger. If none is set, a new one
// will be created.
func RootLogger() *zap.Logger {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	if logger == nil {
		logger, _ = NewLogger(zap.InfoLevel)
	}
	return logger
}

// SetLogger sets the logger that is used for reporting errors in main.
func SetLogger(newLogger *zap.Logger) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	logger = newLogger
}
