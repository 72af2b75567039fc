package i18n

import (
	"embed"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"venuebook/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var messageFiles = []string{"active.en.toml", "active.fr.toml"}

var _ output.T = (*Translator)(nil)

// Translator renders console messages from the embedded go-i18n bundle.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag

	mu         sync.Mutex
	localizers map[string]*i18n.Localizer
}

// NewTranslator loads the embedded message files. defaultLocale (e.g. "en")
// is used when a message is missing in the requested locale.
func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range messageFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.WithError(err).Errorf("❌ i18n: failed to load %s", file)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		localizers:      make(map[string]*i18n.Localizer),
	}
}

// T renders key for locale. Missing keys fall back to the default locale,
// then to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := t.localizer(locale).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.WithFields(log.Fields{"key": key, "locale": locale}).Debugf("i18n: localize failed: %v", err)
		return key
	}
	return msg
}

func (t *Translator) localizer(locale string) *i18n.Localizer {
	t.mu.Lock()
	defer t.mu.Unlock()
	if l, ok := t.localizers[locale]; ok {
		return l
	}
	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())
	l := i18n.NewLocalizer(t.bundle, languages...)
	t.localizers[locale] = l
	return l
}
