package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/config"
)

// TestI18nIntegrity ensures that every translation key defined in config.go
// actually exists in the locale JSON files.
func TestI18nIntegrity(t *testing.T) {
	keysToCheck := []string{
		config.TKeyWelcome,
		config.TKeyPrompt,
		config.TKeyGoodbye,
		config.TKeyHello,
		config.TKeyInvalidCommand,
		config.TKeyMissingArgs,
		config.TKeyErrorPrefix,
		config.TKeyContactAdded,
		config.TKeyContactUpdated,
		config.TKeyContactNotFound,
		config.TKeyContactDeleted,
		config.TKeyPhoneUpdated,
		config.TKeyPhoneRemoved,
		config.TKeyPhones,
		config.TKeyNoPhones,
		config.TKeyBirthdayAdded,
		config.TKeyBirthdayShow,
		config.TKeyNoBirthday,
		config.TKeyUpcomingLine,
		config.TKeyNoUpcoming,
		config.TKeyNoContacts,
		config.TKeyInvalidWindow,
		config.TKeyHelp,
		config.TKeyUnexpectedError,
		config.TKeyEventSummary,
	}

	definedKeys := make(map[string]bool, len(keysToCheck))
	for _, k := range keysToCheck {
		definedKeys[k] = true
	}

	// Adjust path if running test from internal/ui or root
	path := "locales/active.en.json"
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		path = filepath.Join("..", "..", "internal", "ui", "locales", "active.en.json")
		content, err = os.ReadFile(path)
	}
	require.NoError(t, err, "Must load active.en.json")

	var jsonMap map[string]interface{}
	require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")

	for key := range definedKeys {
		_, exists := jsonMap[key]
		assert.Truef(t, exists, "Key '%s' defined in config.go is missing in active.en.json", key)
	}

	for jsonKey := range jsonMap {
		if strings.HasPrefix(jsonKey, "_") {
			continue
		}
		assert.Truef(t, definedKeys[jsonKey], "Key '%s' exists in JSON but has no config constant", jsonKey)
	}
}
