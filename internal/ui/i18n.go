package ui

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-contacts/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// SetupI18n loads every embedded locale into the bundle and selects lang.
// Falls back to config.DefaultLanguage when lang is empty.
func (a *Assistant) SetupI18n(lang string) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
		)
	}

	if lang == "" {
		lang = config.DefaultLanguage
	}
	a.I18nBundle = bundle
	a.Localizer = i18n.NewLocalizer(bundle, lang)
}

// GetMsg translates key without template data.
func (a *Assistant) GetMsg(key string) string {
	return a.Msg(key, nil)
}

// Msg translates key, filling the message template with data.
// The key itself is returned when no translation exists.
func (a *Assistant) Msg(key string, data map[string]any) string {
	if a.Localizer == nil {
		return key
	}
	msg, err := a.Localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}
