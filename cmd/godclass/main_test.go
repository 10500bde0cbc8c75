package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/oofix/config"
)

func TestRun(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &config.Config{}, &out))
	assert.Equal(t, "Running application...\n"+
		"Authenticating user...\n"+
		"Loading dashboard...\n"+
		"Processing payments...\n"+
		"Generating reports...\n", out.String())
}
