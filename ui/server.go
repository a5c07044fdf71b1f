// Package ui serves browsable class documentation over HTTP.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/dhamidi/extdoc/js"
	"github.com/dhamidi/extdoc/js/codebase"
)

//go:embed static templates
var embeddedFS embed.FS

type Server struct {
	codebase   *codebase.Codebase
	title      string
	staticFS   fs.FS
	templates  *template.Template
	mux        *http.ServeMux
	templateFS fs.FS
	funcMap    template.FuncMap
}

// NewServer serves the documentation of the given codebase. title is
// shown in page headers.
func NewServer(cb *codebase.Codebase, title string) (*Server, error) {
	staticFS := overlayFS("ui/static", mustSub(embeddedFS, "static"))
	templateFS := overlayFS("ui/templates", mustSub(embeddedFS, "templates"))

	funcMap := template.FuncMap{
		"cfgs": func(cls *js.Class) []*js.Member {
			return cls.Members[js.TagCfg]
		},
		"properties": func(cls *js.Class) []*js.Member {
			return cls.Members[js.TagProperty]
		},
		"methods": func(cls *js.Class) []*js.Member {
			return cls.Members[js.TagMethod]
		},
		"events": func(cls *js.Class) []*js.Member {
			return cls.Members[js.TagEvent]
		},
		"statics": func(cls *js.Class) []*js.Member {
			var all []*js.Member
			for _, tag := range js.MemberTags {
				all = append(all, cls.Statics[tag]...)
			}
			return all
		},
		"formatDoc": func(doc string) template.HTML {
			if doc == "" {
				return ""
			}
			lines := strings.Split(doc, "\n")
			escaped := make([]string, 0, len(lines))
			for _, line := range lines {
				escaped = append(escaped, template.HTMLEscapeString(line))
			}
			return template.HTML(strings.Join(escaped, "<br>"))
		},
		"hasDoc": func(doc string) bool {
			return doc != ""
		},
		"linkifyClass": func(knownClasses map[string]bool, className string) template.HTML {
			escaped := template.HTMLEscapeString(className)
			if knownClasses[className] {
				return template.HTML(fmt.Sprintf(`<a href="/c/%s">%s</a>`, escaped, escaped))
			}
			return template.HTML(escaped)
		},
		"signature": func(m *js.Member) string {
			if m.Tag != js.TagMethod && m.Tag != js.TagEvent {
				return m.Name
			}
			params := make([]string, 0, len(m.Params))
			for _, p := range m.Params {
				params = append(params, p.Name)
			}
			return m.Name + "( " + strings.Join(params, ", ") + " )"
		},
		"xtypes": func(cls *js.Class) []string {
			return cls.Xtypes["widget"]
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		codebase:   cb,
		title:      title,
		staticFS:   staticFS,
		templates:  tmpl,
		mux:        http.NewServeMux(),
		templateFS: templateFS,
		funcMap:    funcMap,
	}

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	s.mux.HandleFunc("GET /c/{className...}", s.handleClass)
	s.mux.HandleFunc("GET /sidebar", s.handleSidebar)
	s.mux.HandleFunc("GET /", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// render re-parses the templates on every request so template edits
// show up without a restart.
func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, err := template.New("").Funcs(s.funcMap).ParseFS(s.templateFS, "*.html")
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	tmpl.ExecuteTemplate(w, name, data)
}

type ClassViewData struct {
	Title        string
	Classes      []*js.Class
	ActiveClass  *js.Class
	KnownClasses map[string]bool
	Subclasses   []*js.Class
	TotalMatches int
	HasMore      bool
}

func (s *Server) handleClass(w http.ResponseWriter, r *http.Request) {
	className := r.PathValue("className")
	allClasses := s.codebase.AllClasses()

	knownClasses := make(map[string]bool)
	for _, c := range allClasses {
		knownClasses[c.Name] = true
	}

	const maxResults = 20
	classes := allClasses
	if len(allClasses) > maxResults {
		classes = allClasses[:maxResults]
	}

	data := ClassViewData{
		Title:        s.title,
		Classes:      classes,
		TotalMatches: len(allClasses),
		HasMore:      len(allClasses) > maxResults,
		KnownClasses: knownClasses,
	}

	if className != "" {
		data.ActiveClass = s.codebase.FindClass(className)
		if data.ActiveClass == nil {
			http.Error(w, "class not found", http.StatusNotFound)
			return
		}
		for _, c := range allClasses {
			if c.Extends == data.ActiveClass.Name {
				data.Subclasses = append(data.Subclasses, c)
			}
		}
	}

	s.render(w, "class.html", data)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/" {
		if len(s.codebase.AllClasses()) > 0 {
			http.Redirect(w, r, "/c/", http.StatusSeeOther)
			return
		}
	}

	data := struct {
		Title string
	}{
		Title: s.title,
	}
	s.render(w, "index.html", data)
}

func (s *Server) handleSidebar(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(r.URL.Query().Get("q"))
	activeClassName := r.URL.Query().Get("active")

	const maxResults = 20

	allClasses := s.codebase.AllClasses()

	var classes []*js.Class
	var totalMatches int
	if query == "" {
		totalMatches = len(allClasses)
		if len(allClasses) > maxResults {
			classes = allClasses[:maxResults]
		} else {
			classes = allClasses
		}
	} else {
		for _, c := range allClasses {
			if strings.Contains(strings.ToLower(c.Name), query) {
				totalMatches++
				if len(classes) < maxResults {
					classes = append(classes, c)
				}
			}
		}
	}

	data := struct {
		Classes         []*js.Class
		ActiveClassName string
		TotalMatches    int
		HasMore         bool
	}{
		Classes:         classes,
		ActiveClassName: activeClassName,
		TotalMatches:    totalMatches,
		HasMore:         totalMatches > maxResults,
	}
	s.render(w, "_sidebar.html", data)
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

type overlayFSType struct {
	primary   fs.FS
	secondary fs.FS
}

func overlayFS(primaryPath string, secondary fs.FS) fs.FS {
	return &overlayFSType{
		primary:   os.DirFS(primaryPath),
		secondary: secondary,
	}
}

func (o *overlayFSType) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	return o.secondary.Open(name)
}

func (o *overlayFSType) ReadDir(name string) ([]fs.DirEntry, error) {
	entries := make(map[string]fs.DirEntry)

	if rd, ok := o.secondary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	if rd, ok := o.primary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	result := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	return result, nil
}
