package web

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

type link struct {
	Href  string
	Label string
}

func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html><head><meta charset="utf-8"><title>`+
			templ.EscapeString(title)+`</title></head><body>`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func indexPage(tenantName string, links []link) templ.Component {
	return layout(tenantName, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>`+templ.EscapeString(tenantName)+`</h1><ul>`); err != nil {
			return err
		}
		for _, l := range links {
			if _, err := io.WriteString(w, `<li><a href="`+templ.EscapeString(l.Href)+`">`+
				templ.EscapeString(l.Label)+`</a></li>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	}))
}

func balancePage(tenantName, amount string) templ.Component {
	return layout("Saldo", templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<h1>`+templ.EscapeString(tenantName)+`</h1>`+
			`<p>Saldo: <span id="saldo">`+templ.EscapeString(amount)+`</span></p>`)
		return err
	}))
}

func adminPage(message string) templ.Component {
	return layout("Admin", templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<h1>Admin</h1><p id="tenant">`+templ.EscapeString(message)+`</p>`)
		return err
	}))
}

func errorPage(code int, message string) templ.Component {
	title := http.StatusText(code)
	return layout(title, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<h1>`+templ.EscapeString(title)+`</h1><p>`+templ.EscapeString(message)+`</p>`)
		return err
	}))
}
