package pwtext_test

import (
	"net/netip"
	"testing"
	"time"

	"github.com/PascalWirtz/pwtext"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type subContainer struct {
	SubSubTag1 string `pwtext:"subsubtag1"`
}

type container struct {
	SubTag1 string       `pwtext:"subtag1"`
	SubTag2 int          `pwtext:"subtag2"`
	SubTag3 float64      `pwtext:"subtag3"`
	Nested  subContainer `pwtext:"subcontainer1"`
}

type sampleConfig struct {
	Tag1       string
	Tag2       int
	Tag3       float64
	Container1 *container
	Untouched  string
	Ignored    string `pwtext:"-"`
}

func TestDecode_Sample(t *testing.T) {
	t.Parallel()

	cfg := sampleConfig{Untouched: "keep", Ignored: "keep"}

	err := pwtext.Decode(pwtext.New(sample), &cfg)

	require.NoError(t, err)
	assert.Equal(t, "value1", cfg.Tag1)
	assert.Equal(t, 10, cfg.Tag2)
	assert.InDelta(t, 1.5, cfg.Tag3, 1e-9)
	require.NotNil(t, cfg.Container1)
	assert.Equal(t, "subvalue1", cfg.Container1.SubTag1)
	assert.Equal(t, 10, cfg.Container1.SubTag2)
	assert.InDelta(t, 1.5, cfg.Container1.SubTag3, 1e-9)
	assert.Equal(t, "subsubvalue1", cfg.Container1.Nested.SubSubTag1)
	assert.Equal(t, "keep", cfg.Untouched)
	assert.Equal(t, "keep", cfg.Ignored)
}

func TestDecode_MissingContainerLeavesPointerNil(t *testing.T) {
	t.Parallel()

	var cfg sampleConfig

	err := pwtext.Decode(pwtext.New(`tag1 "only";`), &cfg)

	require.NoError(t, err)
	assert.Equal(t, "only", cfg.Tag1)
	assert.Nil(t, cfg.Container1)
}

type common struct {
	Name string `pwtext:"name"`
}

type serviceConfig struct {
	common

	Timeout time.Duration     `pwtext:"timeout"`
	Debug   bool              `pwtext:"debug"`
	Address netip.Addr        `pwtext:"address"`
	Labels  map[string]string `pwtext:"labels"`
	Retries uint8             `pwtext:"retries"`
}

func TestDecode_FieldTypes(t *testing.T) {
	t.Parallel()

	doc := pwtext.New(`
name "api";
timeout "1m30s";
debug true;
address "127.0.0.1";
retries 3;
labels {
	team "core";
	tier {
		level 1;
	}
}
`)

	var cfg serviceConfig

	err := pwtext.Decode(doc, &cfg)

	require.NoError(t, err)
	assert.Equal(t, "api", cfg.Name)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
	assert.Equal(t, netip.MustParseAddr("127.0.0.1"), cfg.Address)
	assert.Equal(t, uint8(3), cfg.Retries)
	assert.Equal(t, map[string]string{"team": "core", "tier/level": "1"}, cfg.Labels)
}

func TestDecode_ConversionErrors(t *testing.T) {
	t.Parallel()

	type ports struct {
		Port int `pwtext:"port"`
	}

	testCases := []struct {
		name string
		text string
	}{
		{name: "not a number", text: `port "http";`},
		{name: "trailing characters", text: `port 80px;`},
		{name: "empty value", text: `port "";`},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var cfg ports

			err := pwtext.Decode(pwtext.New(testCase.text), &cfg)

			require.Error(t, err)
			require.ErrorIs(t, err, pwtext.ErrConvert)
			assert.Contains(t, err.Error(), `"port"`)
		})
	}
}

func TestDecode_UnsupportedField(t *testing.T) {
	t.Parallel()

	var cfg struct {
		Items []string `pwtext:"items"`
	}

	err := pwtext.Decode(pwtext.New("items 1;"), &cfg)

	require.ErrorIs(t, err, pwtext.ErrUnsupportedType)
}

func TestDecode_InvalidTarget(t *testing.T) {
	t.Parallel()

	doc := pwtext.New(sample)

	var number int

	var nilConfig *sampleConfig

	require.ErrorIs(t, pwtext.Decode(doc, nil), pwtext.ErrInvalidTarget)
	require.ErrorIs(t, pwtext.Decode(doc, sampleConfig{}), pwtext.ErrInvalidTarget)
	require.ErrorIs(t, pwtext.Decode(doc, &number), pwtext.ErrInvalidTarget)
	require.ErrorIs(t, pwtext.Decode(doc, nilConfig), pwtext.ErrInvalidTarget)
}
