package main

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-rooms/generation"
)

func TestParseArgsDefaults(t *testing.T) {
	opts, err := parseArgs(nil)
	require.NoError(t, err)

	assert.False(t, opts.seedSet)
	assert.False(t, opts.dump)
	assert.False(t, opts.dumpSchema)
	assert.Equal(t, generation.DefaultGraphConfig(), opts.graphConfig())
}

func TestParseArgsValues(t *testing.T) {
	opts, err := parseArgs([]string{"--seed", "18446744073709551615", "--radius", "3", "--dump"})
	require.NoError(t, err)

	assert.True(t, opts.seedSet)
	assert.Equal(t, uint64(18446744073709551615), opts.seed)
	assert.Equal(t, 3, opts.graphConfig().HorizonRadius)
	assert.True(t, opts.dump)
}

func TestParseArgsErrors(t *testing.T) {
	_, err := parseArgs([]string{"--seed", "-1"})
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = parseArgs([]string{"--radius", "0"})
	assert.ErrorIs(t, err, errUsage)

	_, err = parseArgs([]string{"--radius"})
	assert.ErrorIs(t, err, errUsage)

	_, err = parseArgs([]string{"--dump", "--dump-schema"})
	assert.ErrorIs(t, err, errUsage)

	_, err = parseArgs([]string{"--fullscreen"})
	assert.ErrorIs(t, err, errUsage)
}
