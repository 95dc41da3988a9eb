package httpserver

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

const (
	viewCookieName   = "aimax_view"
	viewCookieMaxAge = 30 * 24 * 60 * 60

	viewDesktop = "web"
	viewMobile  = "mobile"
)

// mountFrontend 挂前端：/web/ 桌面版，/web_mobile/ 手机版，/ 按视图重定向。
// 没有手机版目录时两边用同一份资源
func mountFrontend(r chi.Router, dirs StaticDirs) {
	desktop, mobile := dirs.Desktop, dirs.Mobile
	if desktop == "" {
		desktop = "."
	}
	if mobile == "" {
		mobile = desktop
	}
	for prefix, dir := range map[string]string{"/web": desktop, "/web_mobile": mobile} {
		r.Handle(prefix+"/*", http.StripPrefix(prefix+"/", http.FileServer(http.Dir(dir))))
		r.Get(prefix, http.RedirectHandler(prefix+"/", http.StatusFound).ServeHTTP)
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "User-Agent, Cookie")
		if viewFor(w, r) == viewMobile {
			http.Redirect(w, r, "/web_mobile/", http.StatusFound)
			return
		}
		http.Redirect(w, r, "/web/", http.StatusFound)
	})
}

// 视图别名，统一成 web / mobile
var viewAliases = map[string]string{
	"web":        viewDesktop,
	"desktop":    viewDesktop,
	"pc":         viewDesktop,
	"mobile":     viewMobile,
	"m":          viewMobile,
	"phone":      viewMobile,
	"web_mobile": viewMobile,
}

var mobileAgents = []string{"android", "iphone", "ipad", "ipod", "mobile", "windows phone", "harmony"}

// viewFor 先看 ?view=，再看 cookie，最后看 UA。显式指定的视图会写进 cookie
func viewFor(w http.ResponseWriter, r *http.Request) string {
	if v, ok := parseView(r.URL.Query().Get("view")); ok {
		http.SetCookie(w, &http.Cookie{
			Name:     viewCookieName,
			Value:    v,
			Path:     "/",
			MaxAge:   viewCookieMaxAge,
			SameSite: http.SameSiteLaxMode,
		})
		return v
	}
	if c, err := r.Cookie(viewCookieName); err == nil {
		if v, ok := parseView(c.Value); ok {
			return v
		}
	}
	if fromMobile(r.UserAgent()) {
		return viewMobile
	}
	return viewDesktop
}

func parseView(v string) (string, bool) {
	view, ok := viewAliases[strings.ToLower(strings.TrimSpace(v))]
	return view, ok
}

func fromMobile(ua string) bool {
	ua = strings.ToLower(ua)
	for _, a := range mobileAgents {
		if strings.Contains(ua, a) {
			return true
		}
	}
	return false
}
