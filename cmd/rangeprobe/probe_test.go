package main

import (
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/stretchr/testify/require"
)

func TestProbeEveryMonoid(t *testing.T) {
	setLogLevels("off")
	defer setLogLevels(defaultDebugLevel)

	for _, name := range knownMonoids() {
		for _, size := range []int{0, 1, 37} {
			cfg, _, err := loadConfig([]string{
				"--seed=7", "--ops=2000", "--checkevery=250", "--monoid=" + name,
			})
			require.NoError(t, err)
			cfg.Size = size
			rep, err := runProbe(cfg)
			require.NoErrorf(t, err, "monoid %s, size %d", name, size)
			require.Equal(t, 8, rep.Validate)
			require.Equal(t, size, rep.Snapshot)
			if size > 0 {
				require.Equal(t, 2000, rep.Updates+rep.Queries+rep.Gets+
					rep.Sets+rep.Slices+rep.Splits)
			}
		}
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, rest, err := loadConfig([]string{"-n", "12", "--monoid", "assignmax", "extra"})
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Size)
	require.Equal(t, defaultOps, cfg.Ops)
	require.Equal(t, "assignmax", cfg.Monoid)
	require.Equal(t, []string{"extra"}, rest)

	_, _, err = loadConfig([]string{"--monoid", "product"})
	require.Error(t, err)
	_, _, err = loadConfig([]string{"--debuglevel", "loud"})
	require.Error(t, err)
	_, _, err = loadConfig([]string{"--size=-1"})
	require.Error(t, err)
}

func TestSetLogLevels(t *testing.T) {
	setLogLevels("trace")
	for id, logger := range subsystemLoggers {
		require.Equalf(t, btclog.LevelTrace, logger.Level(), "subsystem %s", id)
	}
	setLogLevel("NONE", "debug")
	setLogLevels(defaultDebugLevel)
	require.Equal(t, btclog.LevelInfo, log.Level())
}
