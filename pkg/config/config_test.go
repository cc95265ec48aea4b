package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osintkit/attest/pkg/config"
	"github.com/osintkit/attest/pkg/ui/notice"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	c := config.NewConfig()

	assert.Equal(t, "attest.osintkit.dev/v1beta1", c.APIVersion)
	assert.Equal(t, "Configuration", c.Kind)
	require.NotNil(t, c.Notice)
	assert.Equal(t, notice.VariantDefault, c.Notice.Variant)
	require.NotNil(t, c.UI)
}

// Defaulted sections must not be shared between configs. A caller mutating one
// config (e.g. a CLI variant override) must not leak into later loads.
func TestNewConfigDefaultsAreIndependent(t *testing.T) {
	t.Parallel()

	first := config.NewConfig()
	first.Notice.Variant = notice.VariantProminent
	first.UI.Theme = "github-dark"

	second := config.NewConfig()
	assert.Equal(t, notice.VariantDefault, second.Notice.Variant)
	assert.Equal(t, "auto", second.UI.Theme)

	cl := config.NewConfigLoaderFromBytes([]byte(`
apiVersion: attest.osintkit.dev/v1beta1
kind: Configuration
`))

	loaded, err := cl.Load()
	require.NoError(t, err)
	assert.Equal(t, notice.VariantDefault, loaded.Notice.Variant)
}

func TestConfigLoaderLoad(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		wantVariant notice.Variant
		input       string
		wantErr     bool
	}{
		"prominent variant": {
			input: `
apiVersion: attest.osintkit.dev/v1beta1
kind: Configuration
notice:
  variant: prominent
`,
			wantVariant: notice.VariantProminent,
		},
		"defaults applied when notice omitted": {
			input: `
apiVersion: attest.osintkit.dev/v1beta1
kind: Configuration
`,
			wantVariant: notice.VariantDefault,
		},
		"invalid yaml": {
			input:   `notice: [`,
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cl := config.NewConfigLoaderFromBytes([]byte(tc.input))

			c, err := cl.Load()
			if tc.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantVariant, c.Notice.Variant)
		})
	}
}

func TestConfigLoaderValidate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		errContains string
	}{
		"valid": {
			input: `
apiVersion: attest.osintkit.dev/v1beta1
kind: Configuration
notice:
  variant: default
`,
		},
		"unknown variant": {
			input: `
apiVersion: attest.osintkit.dev/v1beta1
kind: Configuration
notice:
  variant: loud
`,
			errContains: "variant",
		},
		"unknown api version": {
			input: `
apiVersion: example.com/v1
kind: Configuration
`,
			errContains: "apiVersion",
		},
		"unknown field": {
			input: `
apiVersion: attest.osintkit.dev/v1beta1
kind: Configuration
search: true
`,
			errContains: "search",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cl := config.NewConfigLoaderFromBytes([]byte(tc.input))

			err := cl.Validate()
			if tc.errContains == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	require.NoError(t, config.WriteDefaultConfig(path, false))

	cl, err := config.NewConfigLoaderFromFile(path)
	require.NoError(t, err)
	require.NoError(t, cl.Validate())

	c, err := cl.Load()
	require.NoError(t, err)
	assert.Equal(t, notice.VariantDefault, c.Notice.Variant)
}

func TestWriteDefaultConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	require.NoError(t, config.WriteDefaultConfig(path, false))
	assert.FileExists(t, path)
	assert.FileExists(t, filepath.Join(dir, "config.v1beta1.json"))

	// Existing config is left alone without force.
	require.NoError(t, os.WriteFile(path, []byte("# custom\n"), 0o600))
	require.NoError(t, config.WriteDefaultConfig(path, false))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# custom\n", string(b))

	// Force moves the existing config to a backup.
	require.NoError(t, config.WriteDefaultConfig(path, true))

	b, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, "# custom\n", string(b))

	backups, err := filepath.Glob(filepath.Join(dir, "config.yaml.*.old"))
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}

func TestNewConfigLoaderFromFile(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := config.NewConfigLoaderFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, err := config.NewConfigLoaderFromFile(t.TempDir())
		require.Error(t, err)
	})
}

func TestGetPath(t *testing.T) { //nolint:paralleltest // Uses t.Setenv.
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	assert.Equal(t, filepath.Join("/tmp/xdg", "attest", "config.yaml"), config.GetPath())
}

func TestMarshalYAML(t *testing.T) {
	t.Parallel()

	c := config.NewConfig()
	c.Notice.Variant = notice.VariantProminent

	b, err := c.MarshalYAML()
	require.NoError(t, err)
	assert.Contains(t, string(b), "variant: prominent")

	cl := config.NewConfigLoaderFromBytes(b)
	loaded, err := cl.Load()
	require.NoError(t, err)
	assert.Equal(t, notice.VariantProminent, loaded.Notice.Variant)
}

func TestWatcher(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o600))

	w, err := config.NewWatcher(path)
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, w.Close())
	})

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	changed := make(chan struct{}, 1)

	go w.Watch(ctx, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	// Give the watcher a moment to start before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("a: 2\n"), 0o600))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}
