package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/numerals.space/internal/services/web/routepath"
)

const (
	appErrorPageTitleNotFoundKey  = "web.error.page_title_not_found"
	appErrorPageTitleServerErrKey = "web.error.page_title_server_error"
	appErrorHeadingNotFoundKey    = "web.error.title_not_found"
	appErrorHeadingServerErrKey   = "web.error.title_server_error"
	appErrorMessageNotFoundKey    = "web.error.message_not_found"
	appErrorMessageServerErrKey   = "web.error.message_server_error"
	appErrorBackHomeKey           = "web.error.action_back_home"
)

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorPageTitleNotFoundKey)
	}
	return T(loc, appErrorPageTitleServerErrKey)
}

// AppErrorState renders the error panel. A non-empty detail replaces the
// generic message.
func AppErrorState(statusCode int, detail string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		heading, message := T(loc, appErrorHeadingServerErrKey), T(loc, appErrorMessageServerErrKey)
		if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
			heading, message = T(loc, appErrorHeadingNotFoundKey), T(loc, appErrorMessageNotFoundKey)
		}
		if detail != "" {
			message = detail
		}
		h := newHTML(w)
		h.open("section", "class", "app-error", "data-status", http.StatusText(statusCode))
		h.elem("h1", heading)
		h.elem("p", message)
		h.elem("a", T(loc, appErrorBackHomeKey), "href", routepath.LibraryPrefix, "class", "button")
		h.close("section")
		return h.err
	})
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
