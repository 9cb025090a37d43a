package intl

import (
	"context"
	"testing"
	"time"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestGetSupportedLanguages_Whitelist(t *testing.T) {
	assert.Len(t, GetSupportedLanguages(nil), len(allSupportedLanguages))

	only := GetSupportedLanguages([]string{"en"})
	require.Len(t, only, 1)
	assert.Equal(t, language.English, only[0].Tag)

	assert.Empty(t, GetSupportedLanguages([]string{"xx"}))
}

func TestMustT_UsesContextLocalizer(t *testing.T) {
	bundle := i18n.NewBundle(language.English)
	require.NoError(t, bundle.AddMessages(language.English, &i18n.Message{ID: "Hello", Other: "Hello {{.Name}}"}))

	ctx := WithLocalizer(context.Background(), i18n.NewLocalizer(bundle, "en"))
	assert.Equal(t, "Hello Ada", MustT(ctx, "Hello", map[string]interface{}{"Name": "Ada"}))

	assert.Panics(t, func() { MustT(context.Background(), "Hello") })
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "3/5/2024", FormatDate(language.English, d))
	assert.Equal(t, "2024/3/5", FormatDate(language.Chinese, d))
	assert.Equal(t, "3/5/2024", FormatDate(language.Und, d))
}
