package yaml_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osintkit/attest/pkg/yaml"
)

const testSchema = `{
	"type": "object",
	"properties": {
		"notice": {
			"type": "object",
			"properties": {
				"variant": {
					"type": "string",
					"enum": ["default", "prominent"]
				}
			}
		}
	}
}`

func TestValidatorValid(t *testing.T) {
	t.Parallel()

	v, err := yaml.NewValidator("/test.json", []byte(testSchema))
	require.NoError(t, err)

	var data any

	dec := yaml.NewDecoder(bytes.NewReader([]byte("notice:\n  variant: prominent\n")))
	require.NoError(t, dec.Decode(&data))

	assert.NoError(t, v.Validate(data))
}

func TestValidatorInvalidEnum(t *testing.T) {
	t.Parallel()

	v, err := yaml.NewValidator("/test.json", []byte(testSchema))
	require.NoError(t, err)

	var data any

	src := []byte("notice:\n  variant: loud\n")
	dec := yaml.NewDecoder(bytes.NewReader(src))
	require.NoError(t, dec.Decode(&data))

	vErr := v.Validate(data)
	require.Error(t, vErr)

	// The error should point at the offending line in the source.
	wrapped := yaml.NewErrorWrapper(yaml.WithSource(src)).Wrap(vErr)
	assert.Contains(t, wrapped.Error(), "variant")
}

func TestValidatorBadSchema(t *testing.T) {
	t.Parallel()

	_, err := yaml.NewValidator("/test.json", []byte("not json"))
	require.Error(t, err)
}

func TestMustNewValidatorPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		yaml.MustNewValidator("/test.json", []byte("not json"))
	})
}

func TestDecodeError(t *testing.T) {
	t.Parallel()

	var data map[string]any

	dec := yaml.NewDecoder(bytes.NewReader([]byte("notice: [unclosed\n")))
	err := dec.Decode(&data)
	require.Error(t, err)
}

func TestEncoderRoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	require.NoError(t, enc.Encode(map[string]string{"variant": "default"}))
	require.NoError(t, enc.Close())

	assert.Contains(t, buf.String(), "variant: default")
}

func TestErrorWithoutPosition(t *testing.T) {
	t.Parallel()

	e := yaml.NewError(assert.AnError)
	assert.Equal(t, assert.AnError.Error(), e.Error())
	assert.ErrorIs(t, e, assert.AnError)
}
