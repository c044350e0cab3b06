// Command rangeprobe runs randomized workloads of range updates and range
// queries against the treap and the lazy segment tree, cross-checking both
// against a plain slice. The final values are also checked against the
// segment tree, the Fenwick sum and the sparse table where the monoid allows.
//
// It exits with status 1 on the first disagreement.
package main

import (
	"fmt"
	"os"
	"time"
)

func realMain() error {
	cfg, _, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	if cfg.LogFile != "" {
		if err := initLogRotator(cfg.LogFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		defer logRotator.Close()
	}
	setLogLevels(cfg.DebugLevel)

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rep, err := runProbe(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("ok: %d updates, %d queries, %d gets, %d sets, %d slices, "+
		"%d splits, %d validations, %d snapshot checks, height %d\n",
		rep.Updates, rep.Queries, rep.Gets, rep.Sets, rep.Slices,
		rep.Splits, rep.Validate, rep.Snapshot, rep.Height)
	return nil
}

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
