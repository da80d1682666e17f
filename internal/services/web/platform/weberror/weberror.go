// Package weberror renders shared app-shell error responses for web modules.
package weberror

import (
	stderrors "errors"
	"log"
	"net/http"
	"strings"

	domainerrors "github.com/louisbranch/numerals.space/internal/platform/errors"
	errori18n "github.com/louisbranch/numerals.space/internal/platform/errors/i18n"
	apperrors "github.com/louisbranch/numerals.space/internal/services/web/platform/errors"
	"github.com/louisbranch/numerals.space/internal/services/web/platform/pagerender"
	webi18n "github.com/louisbranch/numerals.space/internal/services/web/platform/i18n"
	webtemplates "github.com/louisbranch/numerals.space/internal/services/web/templates"
)

// PublicMessage resolves a user-safe localized error message. Domain errors
// are formatted from the errors catalog with their metadata.
func PublicMessage(loc webi18n.Localizer, lang string, err error) string {
	if err == nil {
		return ""
	}
	var domainErr *domainerrors.Error
	if stderrors.As(err, &domainErr) && domainErr.Code != domainerrors.CodeInternal {
		return errori18n.Localize(lang, string(domainErr.Code), domainErr.Metadata, domainErr.Message)
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteModuleError writes a localized app-shell error response for
// full-page and HTMX requests.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		log.Printf("web request failed path=%s status=%d err=%v", requestPath(r), statusCode, err)
	}
	loc, lang := webi18n.ResolveLocalizer(w, r)
	detail := ""
	if statusCode < http.StatusInternalServerError {
		detail = PublicMessage(loc, lang, err)
	}
	page := pagerender.ModulePage{
		Title:      webtemplates.AppErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   webtemplates.AppErrorState(statusCode, detail, loc),
	}
	if renderErr := pagerender.WriteModulePage(w, r, loc, lang, page); renderErr != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// NotFound writes the localized not-found page.
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteModuleError(w, r, apperrors.EK(apperrors.KindNotFound, "web.error.message_not_found", "not found"))
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return "-"
	}
	return r.URL.Path
}
