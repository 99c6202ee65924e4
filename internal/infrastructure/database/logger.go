package database

import (
	"context"
	"errors"
	"time"

	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/logger"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// Logger routes gorm output to the application logger. SQL traces are
// logged at debug level, slow statements at warn and failures at error.
type Logger struct {
	SlowThreshold time.Duration
	LogLevel      gormlogger.LogLevel
}

func NewLogger(slowThreshold time.Duration) gormlogger.Interface {
	return &Logger{
		SlowThreshold: slowThreshold,
		LogLevel:      gormlogger.Warn,
	}
}

func (l *Logger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cp := *l
	cp.LogLevel = level
	return &cp
}

func (l *Logger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Info {
		logger.Log.WithContext(ctx).Infof(msg, data...)
	}
}

func (l *Logger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Warn {
		logger.Log.WithContext(ctx).Warnf(msg, data...)
	}
}

func (l *Logger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Error {
		logger.Log.WithContext(ctx).Errorf(msg, data...)
	}
}

func (l *Logger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	entry := logger.Log.WithContext(ctx).WithFields(logrus.Fields{
		"source":  utils.FileWithLineNum(),
		"elapsed": elapsed.String(),
		"rows":    rows,
	})

	switch {
	case err != nil && !errors.Is(err, gormlogger.ErrRecordNotFound) && l.LogLevel >= gormlogger.Error:
		entry.WithError(err).Error(sql)
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold && l.LogLevel >= gormlogger.Warn:
		entry.Warn("slow sql: " + sql)
	default:
		entry.Debug(sql)
	}
}
