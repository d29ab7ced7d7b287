package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Value    int
	Name     string
	LastCall string
}

var errNegative = errors.New("value cannot be negative")

func (tc *testConfig) SetValue(v int) error {
	if v < 0 {
		return errNegative
	}
	tc.Value = v
	tc.LastCall = "SetValue"

	return nil
}

func withValue(v int) Option[*testConfig] {
	return New("WithValue", func(c *testConfig) error {
		return c.SetValue(v)
	})
}

func withName(name string) Option[*testConfig] {
	return NoError("WithName", func(c *testConfig) {
		c.Name = name
		c.LastCall = "SetName"
	})
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, withValue(1), withName("sonar"), withValue(42)))
		require.Equal(t, 42, cfg.Value)
		require.Equal(t, "sonar", cfg.Name)
		require.Equal(t, "SetValue", cfg.LastCall)
	})

	t.Run("stops at first error and names the option", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withName("a"), withValue(-1), withName("b"))
		require.ErrorIs(t, err, errNegative)
		require.Contains(t, err.Error(), "WithValue")
		require.Equal(t, "a", cfg.Name)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, testConfig{}, *cfg)
	})

	t.Run("nil options are skipped", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, nil, withValue(3)))
		require.Equal(t, 3, cfg.Value)
	})
}
