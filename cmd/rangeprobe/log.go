package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"

	"github.com/fgshun/example-data-structure/fenwick"
	"github.com/fgshun/example-data-structure/lazysegtree"
	"github.com/fgshun/example-data-structure/segtree"
	"github.com/fgshun/example-data-structure/sparsetable"
	"github.com/fgshun/example-data-structure/treap"
	"github.com/fgshun/example-data-structure/unionfind"
)

// logWriter implements an io.Writer that outputs to both standard output and
// the write-end pipe of an initialized log rotator.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// Loggers per subsystem.  A single backend logger is created and all subsystem
// loggers created from it will write to the backend.  When adding new
// subsystems, add the subsystem logger variable here and to the
// subsystemLoggers map.
var (
	// backendLog is the logging backend used to create all subsystem loggers.
	backendLog = btclog.NewBackend(logWriter{})

	// logRotator is one of the logging outputs.  It is nil unless --logfile
	// was given and should be closed on application shutdown.
	logRotator *rotator.Rotator

	log     = backendLog.Logger("PRBE")
	fnwkLog = backendLog.Logger("FNWK")
	lsegLog = backendLog.Logger("LSEG")
	segtLog = backendLog.Logger("SEGT")
	sptbLog = backendLog.Logger("SPTB")
	trepLog = backendLog.Logger("TREP")
	unfdLog = backendLog.Logger("UNFD")
)

// Initialize package-global logger variables.
func init() {
	fenwick.UseLogger(fnwkLog)
	lazysegtree.UseLogger(lsegLog)
	segtree.UseLogger(segtLog)
	sparsetable.UseLogger(sptbLog)
	treap.UseLogger(trepLog)
	unionfind.UseLogger(unfdLog)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]btclog.Logger{
	"PRBE": log,
	"FNWK": fnwkLog,
	"LSEG": lsegLog,
	"SEGT": segtLog,
	"SPTB": sptbLog,
	"TREP": trepLog,
	"UNFD": unfdLog,
}

// initLogRotator initializes the logging rotater to write logs to logFile and
// create roll files in the same directory.  It must be called before the
// package-global log rotater variables are used.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %v", err)
		}
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %v", err)
	}

	logRotator = r
	return nil
}

// setLogLevel sets the logging level for provided subsystem.  Invalid
// subsystems are ignored.
func setLogLevel(subsystemID string, logLevel string) {
	// Ignore invalid subsystems.
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}

	// Defaults to info if the log level is invalid.
	level, _ := btclog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

// setLogLevels sets the log level for all subsystem loggers to the passed
// level.
func setLogLevels(logLevel string) {
	// Configure all sub-systems with the new logging level.
	for subsystemID := range subsystemLoggers {
		setLogLevel(subsystemID, logLevel)
	}
}
