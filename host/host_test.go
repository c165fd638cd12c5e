package host

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hostlib "github.com/scangate-dev/scangate-host-sdk"
	"github.com/scangate-dev/scangate-host-sdk/scanner"
	"github.com/scangate-dev/scangate-host-sdk/validation"
)

func newScannerRegistry(t *testing.T) *hostlib.Registry[scanner.Scanner] {
	t.Helper()
	r := hostlib.NewRegistry[scanner.Scanner]()
	require.NoError(t, hostlib.Register(r, "MockScanner", func(o scanner.MockScannerOptions) (scanner.Scanner, error) {
		return scanner.NewMockScanner(o)
	}))
	return r
}

func Test_New_FromSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
supportedFileTypes:
  - ".pdf"
unitFileSizeLimit: "25MB"
scanner:
  scannerType: MockScanner
  options:
    OptionA: "x"
    OptionB: "123"
`), 0o600))

	settings, err := validation.LoadSettings(path)
	require.NoError(t, err)

	h, err := New(settings, newScannerRegistry(t))
	require.NoError(t, err)

	assert.Equal(t, int64(25*1024*1024), h.Config().FileSizeLimit)

	instance, ok := h.Scanner()
	require.True(t, ok)
	mock, ok := instance.(*scanner.MockScanner)
	require.True(t, ok)
	assert.Equal(t, "x", mock.Options.OptionA)
	assert.Equal(t, 123, mock.Options.OptionB)

	result, err := instance.Scan(context.Background(), "report.pdf", strings.NewReader("content"))
	require.NoError(t, err)
	assert.True(t, result.Clean)
}

func Test_New_NoScannerConfigured(t *testing.T) {
	settings := validation.DefaultSettings()
	settings.SupportedFileTypes = []string{".pdf"}

	h, err := New(settings, newScannerRegistry(t))
	require.NoError(t, err)

	instance, ok := h.Scanner()
	assert.False(t, ok, "lookup yields absent, never an error")
	assert.Nil(t, instance)
}

func Test_New_ProgrammaticDescriptorOverridesSection(t *testing.T) {
	settings := validation.DefaultSettings()
	settings.SupportedFileTypes = []string{".pdf"}
	settings.Scanner = &validation.ScannerSection{ScannerType: "NoSuchScanner"}

	descriptor := hostlib.UseType[scanner.Scanner]("MockScanner").
		WithOptions(scanner.MockScannerOptions{OptionA: "prog"})

	h, err := New(settings, newScannerRegistry(t),
		WithDescriptor(descriptor),
		WithLogger[scanner.Scanner](slog.Default()))
	require.NoError(t, err)

	instance, ok := h.Scanner()
	require.True(t, ok)
	assert.Equal(t, "prog", instance.(*scanner.MockScanner).Options.OptionA)
}

func Test_New_InvalidSettingsFailFast(t *testing.T) {
	settings := validation.DefaultSettings() // no supported file types

	_, err := New(settings, newScannerRegistry(t))
	assert.ErrorIs(t, err, validation.ErrInvalidConfiguration)
}

func Test_New_UnresolvableScannerFailsStartup(t *testing.T) {
	settings := validation.DefaultSettings()
	settings.SupportedFileTypes = []string{".pdf"}
	settings.Scanner = &validation.ScannerSection{ScannerType: "NoSuchScanner"}

	_, err := New(settings, newScannerRegistry(t))
	assert.ErrorIs(t, err, hostlib.ErrUnresolvableType)
}
