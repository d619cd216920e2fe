package listener

import (
	"testing"
	"time"

	"github.com/PascalWirtz/pwtext"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_SetDefaults(t *testing.T) {
	t.Parallel()

	t.Run("sets defaults when empty", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{}
		changed := cfg.SetDefaults()

		assert.True(t, changed)
		assert.Equal(t, DefaultAddress, cfg.Address)
		assert.Equal(t, DefaultReadHeaderTimeout, cfg.ReadHeaderTimeout)
	})

	t.Run("does not override existing values", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{Address: ":9090", ReadHeaderTimeout: time.Second}
		changed := cfg.SetDefaults()

		assert.False(t, changed)
		assert.Equal(t, ":9090", cfg.Address)
		assert.Equal(t, time.Second, cfg.ReadHeaderTimeout)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{Address: ":8080"}
		err := cfg.Validate()

		require.NoError(t, err)
	})

	t.Run("empty address", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{}
		err := cfg.Validate()

		require.ErrorIs(t, err, ErrEmptyAddress)
	})

	t.Run("negative timeout", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{Address: ":8080", ReadHeaderTimeout: -time.Second}
		err := cfg.Validate()

		require.ErrorIs(t, err, ErrInvalidTimeout)
	})
}

func TestConfig_DecodesFromDocument(t *testing.T) {
	t.Parallel()

	doc := pwtext.New(`listener { address "127.0.0.1:9000"; read_header_timeout "2s"; }`)
	section, ok := doc.Section("listener")
	require.True(t, ok)

	var cfg Config

	err := pwtext.Decode(section, &cfg)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Address)
	assert.Equal(t, 2*time.Second, cfg.ReadHeaderTimeout)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	var cfg Config

	WithAddress("127.0.0.1:1234")(&cfg)
	WithReadHeaderTimeout(3 * time.Second)(&cfg)

	assert.Equal(t, "127.0.0.1:1234", cfg.Address)
	assert.Equal(t, 3*time.Second, cfg.ReadHeaderTimeout)
}
