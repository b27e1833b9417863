package web

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

// AssetDir holds the html templates and static files.
var AssetDir = assetDir()

func assetDir() string {
	if dir := os.Getenv("NNVIZ_ASSETS"); dir != "" {
		return dir
	}
	return "assets"
}

var authKey = []byte("xahghie2OhnooJi4")

const sessionName = "nnviz"

// Template and main menu definition
type Templates struct {
	*template.Template
	Menu    []Link
	Options []Link
	store   sessions.Store
}

type Link struct {
	Url      string
	Name     string
	Selected bool
}

// Load and parse templates and initialise main menu
func NewTemplates() (*Templates, error) {
	var err error
	t := &Templates{Menu: []Link{}, Options: []Link{}}
	t.Template, err = template.ParseGlob(AssetDir + "/*.html")
	if err != nil {
		return nil, err
	}
	// fixed hash key, fresh encryption key per process
	t.store = sessions.NewCookieStore(authKey, securecookie.GenerateRandomKey(32))
	return t, err
}

func (t *Templates) Clone() *Templates {
	return &Templates{
		Template: t.Template,
		Menu:     append([]Link{}, t.Menu...),
		Options:  append([]Link{}, t.Options...),
		store:    t.store,
	}
}

func (t *Templates) Select(url string) *Templates {
	for i, key := range t.Menu {
		t.Menu[i].Selected = strings.HasPrefix(key.Url, url)
	}
	return t
}

func (t *Templates) AddMenuItem(l Link) *Templates {
	t.Menu = append(t.Menu, l)
	return t
}

func (t *Templates) AddOption(l Link) *Templates {
	t.Options = append(t.Options, l)
	return t
}

// Exec renders the named template, logging any error.
func (t *Templates) Exec(w http.ResponseWriter, name string, data interface{}) {
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		logError(w, err)
	}
}

// Presentation preferences kept in a cookie session: palette name, floating
// panel on or off. Network state is never stored here.
func (t *Templates) option(r *http.Request, key, fallback string) string {
	sess, _ := t.store.Get(r, sessionName)
	if val, ok := sess.Values[key].(string); ok && val != "" {
		return val
	}
	return fallback
}

func (t *Templates) setOption(w http.ResponseWriter, r *http.Request, key, val string) {
	sess, _ := t.store.Get(r, sessionName)
	sess.Values[key] = val
	if err := sess.Save(r, w); err != nil {
		log.Println("error saving session:", err)
	}
}

func logError(w http.ResponseWriter, err error) {
	log.Println(err)
	http.Error(w, fmt.Sprint(err), http.StatusInternalServerError)
}
