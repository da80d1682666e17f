package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"testing/fstest"

	i18ncatalog "github.com/louisbranch/numerals.space/internal/platform/i18n/catalog"
)

func testBundle(t *testing.T) *i18ncatalog.Bundle {
	t.Helper()
	bundle, err := i18ncatalog.LoadFromFS(fstest.MapFS{
		"locales/en-US/web.toml": {Data: []byte(`locale = "en-US"
namespace = "web"

[messages]
"web.nav.library" = "Library"
"web.nav.practice" = "Practice"
`)},
		"locales/es-ES/web.toml": {Data: []byte(`locale = "es-ES"
namespace = "web"

[messages]
"web.nav.library" = "Biblioteca"
"web.nav.legacy" = "Antiguo"
`)},
	})
	if err != nil {
		t.Fatalf("load bundle: %v", err)
	}
	return bundle
}

func TestBuildReportCountsMissingAndExtraKeys(t *testing.T) {
	t.Parallel()

	rep := buildReport(testBundle(t), "en-US")
	if len(rep.Locales) != 2 {
		t.Fatalf("locales = %d, want 2", len(rep.Locales))
	}
	es := rep.Locales[1]
	if es.Locale != "es-ES" {
		t.Fatalf("second locale = %q", es.Locale)
	}
	if es.Translated != 1 || es.Completion != 50 {
		t.Fatalf("es-ES translated=%d completion=%.1f", es.Translated, es.Completion)
	}
	if strings.Join(es.MissingKeys, ",") != "web.nav.practice" {
		t.Fatalf("missing = %v", es.MissingKeys)
	}
	if strings.Join(es.ExtraKeys, ",") != "web.nav.legacy" {
		t.Fatalf("extra = %v", es.ExtraKeys)
	}
	if got := rep.incomplete(); strings.Join(got, ",") != "es-ES" {
		t.Fatalf("incomplete = %v", got)
	}
}

func TestWriteMarkdownListsKeys(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := writeMarkdown(&out, buildReport(testBundle(t), "en-US")); err != nil {
		t.Fatalf("write markdown: %v", err)
	}
	for _, want := range []string{"| `es-ES` | 2 | 1 | 1 | 1 | 50.0% |", "### Missing Keys", "- `web.nav.practice`"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("markdown missing %q:\n%s", want, out.String())
		}
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := writeJSON(&out, buildReport(testBundle(t), "en-US")); err != nil {
		t.Fatalf("write json: %v", err)
	}
	var decoded report
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.BaseLocale != "en-US" || len(decoded.Locales) != 2 {
		t.Fatalf("decoded = %+v", decoded)
	}
}

func TestEmbeddedCatalogsAreComplete(t *testing.T) {
	t.Parallel()

	bundle, err := i18ncatalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	rep := buildReport(bundle, i18ncatalog.BaseLocale)
	for _, locale := range rep.Locales {
		if len(locale.MissingKeys) > 0 {
			t.Fatalf("%s missing keys: %v", locale.Locale, locale.MissingKeys)
		}
	}
}

func TestPercent(t *testing.T) {
	t.Parallel()

	if got := percent(0, 0); got != 100 {
		t.Fatalf("percent(0,0) = %v", got)
	}
	if got := percent(1, 3); got != 33.3 {
		t.Fatalf("percent(1,3) = %v", got)
	}
}
