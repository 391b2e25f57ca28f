package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"design-cost/internal/config"
	"design-cost/internal/domain"
)

func TestApp_Estimate(t *testing.T) {
	var cfg config.Config
	cfg.Estimate.FloorHeight = 3.6

	var buf bytes.Buffer
	a := New(NewLogger(&buf, "debug"), cfg)

	tp, err := domain.NewTowerProject("Apart-hotel", "Mikhailov", 215, 2000, 26, 2017)
	require.NoError(t, err)

	est, err := a.Estimate(tp)
	require.NoError(t, err)
	assert.Equal(t, 11180000.0, est.Cost)
	assert.InDelta(t, 215*3.6*26, est.Volume, 1e-6)
	assert.Contains(t, buf.String(), "estimator configured")
	assert.Contains(t, buf.String(), "estimated design")
}

func TestApp_ZeroConfigRejected(t *testing.T) {
	a := New(nil, config.Config{})
	p, err := domain.NewProject("X", "Y", 1, 1)
	require.NoError(t, err)

	_, err = a.Estimate(p)
	assert.Error(t, err)
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "warn")
	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	log = NewLogger(&buf, "bogus")
	log.Debug("hidden")
	log.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
