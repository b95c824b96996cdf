package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLocalesHaveSameKeys(t *testing.T) {
	i := &I18n{translations: make(map[string]map[string]string), defaultLang: "es"}
	require.NoError(t, i.LoadTranslations(localeFS, "locales"))

	es, en := i.translations["es"], i.translations["en"]
	require.NotEmpty(t, es)
	require.Equal(t, len(es), len(en))
	for key := range es {
		assert.Contains(t, en, key)
	}
}

func TestTranslateFallsBackToDefault(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/es.json": {Data: []byte(`{"order.not_found": "Pedido no encontrado", "error.invalid_id": "Identificador inválido: %s"}`)},
		"locales/en.json": {Data: []byte(`{"order.not_found": "Order not found"}`)},
		"locales/README":  {Data: []byte("ignored")},
	}

	i := &I18n{translations: make(map[string]map[string]string), defaultLang: "es"}
	require.NoError(t, i.LoadTranslations(fsys, "locales"))

	assert.Equal(t, "Order not found", i.T("en", KeyOrderNotFound))
	assert.Equal(t, "Pedido no encontrado", i.T("fr", KeyOrderNotFound))
	assert.Equal(t, "Identificador inválido: abc", i.T("en", KeyInvalidID, "abc"))
	assert.Equal(t, "missing.key", i.T("es", "missing.key"))
}

func TestLoadTranslationsRejectsBadJSON(t *testing.T) {
	fsys := fstest.MapFS{"locales/es.json": {Data: []byte(`{`)}}

	i := &I18n{translations: make(map[string]map[string]string)}
	assert.Error(t, i.LoadTranslations(fsys, "locales"))
}

func TestGlobalInitialize(t *testing.T) {
	require.NoError(t, Initialize("es"))

	assert.Equal(t, "Pedido creado", T("es", KeyOrderCreated))
	assert.Equal(t, "Order created", T("en", KeyOrderCreated))
	assert.True(t, IsSupported("en"))
	assert.False(t, IsSupported("de"))
	assert.ElementsMatch(t, []string{"es", "en"}, GetSupportedLanguages())
}
