// Package i18n resolves the response language from the Accept-Language header
// and translates message keys against a small in-process catalog. English is
// the fallback for unknown languages and missing keys.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

const fallback = "en"

var supported = []language.Tag{
	language.English, // first tag is the matcher fallback
	language.Swedish,
}

var matcher = language.NewMatcher(supported)

// Match returns the best supported language for an Accept-Language header
// value. An empty or unparseable header yields the fallback language.
func Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, _ := matcher.Match(tags...)
	base, _ := supported[idx].Base()
	return base.String()
}

// T translates key into lang, interpolating args with fmt.Sprintf. Missing
// keys fall back to English; a key absent from every catalog is returned
// verbatim so the failure is visible rather than silent.
func T(lang, key string, args ...any) string {
	msg, ok := catalogs[lang][key]
	if !ok {
		msg, ok = catalogs[fallback][key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
