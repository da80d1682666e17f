// Package main reports how complete each locale catalog is against the base
// locale.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/louisbranch/numerals.space/internal/platform/config"
	i18ncatalog "github.com/louisbranch/numerals.space/internal/platform/i18n/catalog"
)

type report struct {
	BaseLocale string         `json:"base_locale"`
	Locales    []localeStatus `json:"locales"`
}

type localeStatus struct {
	Locale      string            `json:"locale"`
	BaseKeys    int               `json:"base_keys"`
	Translated  int               `json:"translated"`
	Completion  float64           `json:"completion"`
	Namespaces  []namespaceStatus `json:"namespaces"`
	MissingKeys []string          `json:"missing_keys"`
	ExtraKeys   []string          `json:"extra_keys"`
}

type namespaceStatus struct {
	Namespace  string  `json:"namespace"`
	BaseKeys   int     `json:"base_keys"`
	Translated int     `json:"translated"`
	Completion float64 `json:"completion"`
}

func main() {
	var (
		baseLocale string
		asJSON     bool
		strict     bool
	)
	flag.StringVar(&baseLocale, "base-locale", i18ncatalog.BaseLocale, "locale used as the source of truth")
	flag.BoolVar(&asJSON, "json", false, "print JSON instead of markdown")
	flag.BoolVar(&strict, "strict", false, "exit non-zero when any locale is missing keys")
	flag.Parse()

	bundle, err := i18ncatalog.LoadEmbedded()
	config.ExitOnError("load i18n catalogs", err)
	if !bundle.HasLocale(baseLocale) {
		config.Exitf("base locale %q is missing from catalogs", baseLocale)
	}

	rep := buildReport(bundle, baseLocale)
	if asJSON {
		err = writeJSON(os.Stdout, rep)
	} else {
		err = writeMarkdown(os.Stdout, rep)
	}
	config.ExitOnError("write report", err)

	if strict {
		if incomplete := rep.incomplete(); len(incomplete) > 0 {
			config.Exitf("locales missing keys: %s", strings.Join(incomplete, ", "))
		}
	}
}

func buildReport(bundle *i18ncatalog.Bundle, baseLocale string) report {
	baseMessages := bundle.LocaleMessages(baseLocale)

	statuses := make([]localeStatus, 0)
	for _, locale := range bundle.Locales() {
		localeMessages := bundle.LocaleMessages(locale)
		missing := diffKeys(baseMessages, localeMessages)
		translated := len(baseMessages) - len(missing)

		namespaces := make([]namespaceStatus, 0)
		for _, namespace := range bundle.Namespaces(baseLocale) {
			baseNS := bundle.NamespaceMessages(baseLocale, namespace)
			nsTranslated := len(baseNS) - len(diffKeys(baseNS, bundle.NamespaceMessages(locale, namespace)))
			namespaces = append(namespaces, namespaceStatus{
				Namespace:  namespace,
				BaseKeys:   len(baseNS),
				Translated: nsTranslated,
				Completion: percent(nsTranslated, len(baseNS)),
			})
		}

		statuses = append(statuses, localeStatus{
			Locale:      locale,
			BaseKeys:    len(baseMessages),
			Translated:  translated,
			Completion:  percent(translated, len(baseMessages)),
			Namespaces:  namespaces,
			MissingKeys: missing,
			ExtraKeys:   diffKeys(localeMessages, baseMessages),
		})
	}
	return report{BaseLocale: baseLocale, Locales: statuses}
}

// incomplete lists the locales that lack at least one base key.
func (r report) incomplete() []string {
	var out []string
	for _, locale := range r.Locales {
		if len(locale.MissingKeys) > 0 {
			out = append(out, locale.Locale)
		}
	}
	return out
}

func writeJSON(w io.Writer, rep report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rep)
}

func writeMarkdown(w io.Writer, rep report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# I18n Status\n\nBase locale: `%s`.\n\n", rep.BaseLocale)
	b.WriteString("| Locale | Base Keys | Translated | Missing | Extra | Completion |\n")
	b.WriteString("| --- | ---: | ---: | ---: | ---: | ---: |\n")
	for _, locale := range rep.Locales {
		fmt.Fprintf(&b, "| `%s` | %d | %d | %d | %d | %.1f%% |\n",
			locale.Locale, locale.BaseKeys, locale.Translated, len(locale.MissingKeys), len(locale.ExtraKeys), locale.Completion)
	}

	for _, locale := range rep.Locales {
		fmt.Fprintf(&b, "\n## `%s`\n\n", locale.Locale)
		b.WriteString("| Namespace | Base Keys | Translated | Completion |\n")
		b.WriteString("| --- | ---: | ---: | ---: |\n")
		for _, ns := range locale.Namespaces {
			fmt.Fprintf(&b, "| `%s` | %d | %d | %.1f%% |\n", ns.Namespace, ns.BaseKeys, ns.Translated, ns.Completion)
		}
		writeKeyList(&b, "Missing Keys", locale.MissingKeys)
		writeKeyList(&b, "Extra Keys", locale.ExtraKeys)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeKeyList(b *strings.Builder, title string, keys []string) {
	if len(keys) == 0 {
		return
	}
	fmt.Fprintf(b, "\n### %s\n\n", title)
	for _, key := range keys {
		fmt.Fprintf(b, "- `%s`\n", key)
	}
}

// diffKeys returns the keys of from that are absent in to, sorted.
func diffKeys(from, to map[string]string) []string {
	out := make([]string, 0)
	for key := range from {
		if _, ok := to[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func percent(numerator, denominator int) float64 {
	if denominator <= 0 {
		return 100
	}
	value := float64(numerator) * 100 / float64(denominator)
	return math.Round(value*10) / 10
}
