package router

import (
	"auctions/internal/utils"
	"fmt"
	"html/template"
	"io/fs"
	"time"

	"github.com/gin-contrib/multitemplate"
	"github.com/shopspring/decimal"
)

// views maps handler template names to files under views/.
var views = []string{
	"auth/login.html",
	"auth/register.html",
	"listing/list.html",
	"listing/categories.html",
	"listing/create.html",
	"listing/detail.html",
	"notification/list.html",
	"error.html",
}

var funcMap = template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return d.StringFixed(2)
	},
	"markdown": utils.RenderMarkdown,
	"timeAgo":  timeAgo,
}

func timeAgo(t time.Time) string {
	seconds := int(time.Since(t).Seconds())
	switch {
	case seconds < 60:
		return "just now"
	case seconds < 3600:
		return plural(seconds/60, "minute") + " ago"
	case seconds < 86400:
		return plural(seconds/3600, "hour") + " ago"
	case seconds < 2592000:
		return plural(seconds/86400, "day") + " ago"
	case seconds < 31536000:
		return plural(seconds/2592000, "month") + " ago"
	}
	return plural(seconds/31536000, "year") + " ago"
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// LoadTemplates assembles each view with the base layout and shared includes.
// fsys is rooted at the templates directory.
func LoadTemplates(fsys fs.FS) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := fs.Glob(fsys, "layouts/*.html")
	if err != nil {
		panic(err)
	}
	includes, err := fs.Glob(fsys, "includes/*.html")
	if err != nil {
		panic(err)
	}

	for _, view := range views {
		files := make([]string, 0, len(layouts)+len(includes)+1)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, "views/"+view)

		tmpl := template.Must(template.New("base.html").Funcs(funcMap).ParseFS(fsys, files...))
		r.Add(view, tmpl)
	}
	return r
}
