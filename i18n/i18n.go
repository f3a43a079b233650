// Package i18n picks the interface language and translates UI strings.
// English strings are the keys; a missing translation falls back to the key.
package i18n

import (
	"log"
	"os"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
)

var (
	mu   sync.RWMutex
	lang string
)

var supported = []string{"pt", "es", "ru"}

var translations = map[string]map[string]string{
	"Stopwatch": {
		"pt": "Cronômetro",
		"es": "Cronómetro",
		"ru": "Секундомер",
	},
	"Timer": {
		"pt": "Temporizador",
		"es": "Temporizador",
		"ru": "Таймер",
	},
	"Alarms": {
		"pt": "Alarmes",
		"es": "Alarmas",
		"ru": "Будильники",
	},
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
	"Pause": {
		"pt": "Pausar",
		"es": "Pausar",
		"ru": "Пауза",
	},
	"Reset": {
		"pt": "Resetar",
		"es": "Reiniciar",
		"ru": "Сброс",
	},
	"Lap": {
		"pt": "Volta",
		"es": "Vuelta",
		"ru": "Круг",
	},
	"Close": {
		"pt": "Fechar",
		"es": "Cerrar",
		"ru": "Закрыть",
	},
	"Alert": {
		"pt": "Alerta",
		"es": "Alerta",
		"ru": "Сигнал",
	},
	"Timer Over!": {
		"pt": "Tempo esgotado!",
		"es": "¡Tiempo terminado!",
		"ru": "Время вышло!",
	},
	"version": {
		"pt": "versão",
		"es": "versión",
		"ru": "версия",
	},
	"Quit": {
		"pt": "Sair",
		"es": "Salir",
		"ru": "Выход",
	},
}

func init() {
	// Check for override environment variable
	if forcedLang := strings.TrimSpace(os.Getenv("MACTIME_LANG")); forcedLang != "" {
		log.Printf("MACTIME_LANG is set to: '%s'", forcedLang)
		lang = Normalize(forcedLang)
		return
	}

	log.Println("MACTIME_LANG is not set, detecting from system locale.")
	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Println("Could not get user locale, defaulting to english")
		lang = "en"
		return
	}

	if len(userLocales) > 0 {
		log.Printf("Detected user locale: %s", userLocales[0])
		lang = Normalize(userLocales[0])
	} else {
		log.Println("No user locale detected, defaulting to english")
		lang = "en"
	}
	log.Printf("Language set to: %s", lang)
}

// Normalize maps a locale such as "pt_BR" or "es-ES" to a supported
// language code, defaulting to "en".
func Normalize(l string) string {
	l = strings.ToLower(strings.TrimSpace(l))
	for _, s := range supported {
		if strings.HasPrefix(l, s) {
			return s
		}
	}
	return "en"
}

// SetLang overrides the detected language. An empty value is ignored.
func SetLang(l string) {
	if strings.TrimSpace(l) == "" {
		return
	}
	mu.Lock()
	lang = Normalize(l)
	mu.Unlock()
	log.Printf("Language set to: %s", GetLang())
}

// T translates key into the current language.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}
