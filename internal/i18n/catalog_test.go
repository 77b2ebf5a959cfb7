package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yaml"), []byte(content), 0o600))

	return dir
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir(), "en")
	assert.Error(t, err)
}

func TestCatalog_Resolve(t *testing.T) {
	dir := writeCatalog(t, `
category:
  not_found: "Category {id} was not found"
common:
  internal_error: "Something went wrong"
`)

	catalog, err := Load(dir, "en")
	require.NoError(t, err)
	assert.Equal(t, "en", catalog.Locale())

	assert.Equal(t, "Something went wrong", catalog.Resolve("common.internal_error", nil))
	assert.Equal(t, "Category 42 was not found",
		catalog.Resolve("category.not_found", map[string]string{"id": "42"}))

	// A template with no params supplied comes back verbatim.
	assert.Equal(t, "Category {id} was not found", catalog.Resolve("category.not_found", nil))
}

func TestCatalog_Resolve_UnknownKeyDegradesToKey(t *testing.T) {
	dir := writeCatalog(t, "common:\n  internal_error: oops\n")

	catalog, err := Load(dir, "en")
	require.NoError(t, err)

	assert.Equal(t, "no.such.key", catalog.Resolve("no.such.key", nil))
}

func TestCatalog_Resolve_MultiplePlaceholders(t *testing.T) {
	dir := writeCatalog(t, "common:\n  validation_failed: \"Field {field} failed {rule}\"\n")

	catalog, err := Load(dir, "en")
	require.NoError(t, err)

	resolved := catalog.Resolve("common.validation_failed", map[string]string{
		"field": "email",
		"rule":  "format",
	})
	assert.Equal(t, "Field email failed format", resolved)
}
