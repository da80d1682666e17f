package templates

import (
	"io"
	"strings"

	"github.com/a-h/templ"
)

// html writes markup and remembers the first write error.
type html struct {
	w   io.Writer
	err error
}

func newHTML(w io.Writer) *html {
	return &html{w: w}
}

// raw writes trusted markup.
func (h *html) raw(parts ...string) *html {
	for _, part := range parts {
		if h.err != nil {
			return h
		}
		_, h.err = io.WriteString(h.w, part)
	}
	return h
}

// text writes escaped text.
func (h *html) text(value string) *html {
	return h.raw(templ.EscapeString(value))
}

// open writes a start tag. attrs alternate name and value; an empty value
// writes a bare attribute.
func (h *html) open(tag string, attrs ...string) *html {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		b.WriteString(" ")
		b.WriteString(attrs[i])
		if attrs[i+1] != "" {
			b.WriteString(`="`)
			b.WriteString(templ.EscapeString(attrs[i+1]))
			b.WriteString(`"`)
		}
	}
	b.WriteString(">")
	return h.raw(b.String())
}

func (h *html) close(tag string) *html {
	return h.raw("</", tag, ">")
}

// elem writes a complete element with escaped text content.
func (h *html) elem(tag, text string, attrs ...string) *html {
	return h.open(tag, attrs...).text(text).close(tag)
}

func when(cond bool, attrs ...string) []string {
	if !cond {
		return nil
	}
	return attrs
}

func classes(names ...string) string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return strings.Join(out, " ")
}
