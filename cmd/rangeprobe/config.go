package main

import (
	"fmt"
	"os"
	"sort"

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultSize       = 1000
	defaultOps        = 10000
	defaultMonoid     = "addsum"
	defaultDebugLevel = "info"
	defaultCheckEvery = 500
)

// config defines the configuration options for rangeprobe.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Seed       int64  `short:"s" long:"seed" description:"Seed for the workload and for treap priorities -- 0 picks one from the clock"`
	Size       int    `short:"n" long:"size" description:"Number of elements in the probed structures"`
	Ops        int    `short:"o" long:"ops" description:"Number of random operations to run"`
	Monoid     string `short:"m" long:"monoid" description:"Monoid the structures are built with: addsum, addmin, addmax, assignmin or assignmax"`
	CheckEvery int    `long:"checkevery" description:"Run a full structural validation of the treap after this many operations -- Use 0 to disable"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	LogFile    string `long:"logfile" description:"Also write the log to this file, rotating it as it grows"`
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace":
		fallthrough
	case "debug":
		fallthrough
	case "info":
		fallthrough
	case "warn":
		fallthrough
	case "error":
		fallthrough
	case "critical":
		return true
	}
	return false
}

// knownMonoids returns the sorted names accepted by --monoid.
func knownMonoids() []string {
	names := make([]string, 0, len(probeMonoids))
	for name := range probeMonoids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// loadConfig initializes and parses the config using the passed command line
// arguments.
func loadConfig(args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		Size:       defaultSize,
		Ops:        defaultOps,
		Monoid:     defaultMonoid,
		CheckEvery: defaultCheckEvery,
		DebugLevel: defaultDebugLevel,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	funcName := "loadConfig"
	if cfg.Size < 0 || cfg.Ops < 0 || cfg.CheckEvery < 0 {
		str := "%s: size, ops and checkevery must not be negative"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	if _, ok := probeMonoids[cfg.Monoid]; !ok {
		str := "%s: The specified monoid [%v] is invalid -- " +
			"supported monoids %v"
		err := fmt.Errorf(str, funcName, cfg.Monoid, knownMonoids())
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	if !validLogLevel(cfg.DebugLevel) {
		str := "%s: The specified debug level [%v] is invalid"
		err := fmt.Errorf(str, funcName, cfg.DebugLevel)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
