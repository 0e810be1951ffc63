// Package logger holds the process-wide zap logger, filtered by zapfilter rules.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

// DefaultRules lets everything through. See zapfilter.ParseRules for the syntax, e.g.
// "*:http" or "info+:*".
const DefaultRules = "*"

var (
	Log  *zap.Logger
	base zapcore.Core
)

func init() {
	devLog, _ := zap.NewDevelopment()
	base = devLog.Core()
	Log = zap.New(zapfilter.NewFilteringCore(base, zapfilter.MustParseRules(DefaultRules)))
}

// Named returns a child of Log.
func Named(s string) *zap.Logger {
	return Log.Named(s)
}

// SetRules replaces the filter in front of Log. Loggers handed out earlier keep the
// old filter.
func SetRules(rules string) error {
	filter, err := zapfilter.ParseRules(rules)
	if err != nil {
		return err
	}
	Log = zap.New(zapfilter.NewFilteringCore(base, filter))
	return nil
}
