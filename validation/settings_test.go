package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_LoadSettings_FullDocument(t *testing.T) {
	path := writeSettingsFile(t, `
supportedFileTypes:
  - ".pdf"
  - ".docx"
unitFileSizeLimit: "25MB"
failOnInvalidFile: true
scanner:
  scannerType: MockScanner
  options:
    OptionA: "x"
    OptionB: "123"
`)

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, []string{".pdf", ".docx"}, s.SupportedFileTypes)
	assert.Equal(t, int64(UnsetFileSizeLimit), s.FileSizeLimit, "omitted numeric limit stays unset")
	assert.Equal(t, "25MB", s.UnitFileSizeLimit)
	assert.True(t, s.FailOnInvalidFile)

	require.NotNil(t, s.Scanner)
	assert.Equal(t, "MockScanner", s.Scanner.ScannerType)
	assert.Equal(t, "x", s.Scanner.Options["OptionA"])
}

func Test_LoadSettings_NoScannerSection(t *testing.T) {
	path := writeSettingsFile(t, `
supportedFileTypes:
  - ".pdf"
`)

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Nil(t, s.Scanner)
}

func Test_LoadSettings_MissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func Test_LoadSettings_EmptyFile(t *testing.T) {
	path := writeSettingsFile(t, "")

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func Test_LoadSettings_MalformedYAML(t *testing.T) {
	path := writeSettingsFile(t, "supportedFileTypes: [\n")

	_, err := LoadSettings(path)
	assert.Error(t, err)
}
