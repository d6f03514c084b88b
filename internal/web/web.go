// Package web holds the HTML templates and the view models rendered into
// them. Screens build these models; no template logic reaches into entities.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"

	"trade_admin/internal/platform/flash"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses the embedded template set for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))
}

// StaticFS exposes the embedded static assets (served under /static).
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// DateOnly truncates an ISO-8601 timestamp to its date portion. No timezone
// normalization is applied; the backend's wall-clock date is shown as-is.
func DateOnly(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}

// Num renders a numeric cell without trailing zeros.
func Num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// NavItem is one destination in the navigation shell.
type NavItem struct {
	Label string
	Path  string
}

// Nav is the fixed destination list of the navigation shell.
var Nav = []NavItem{
	{Label: "Users", Path: "/users"},
	{Label: "Company", Path: "/companies"},
	{Label: "Symbol", Path: "/symbols"},
	{Label: "Leverage", Path: "/leverage"},
	{Label: "Symbol Assets", Path: "/assets"},
	{Label: "Commission", Path: "/commissions"},
	{Label: "Position", Path: "/positions"},
}

// Page carries what every rendered page needs: title, navigation state and
// the pending notification, if any.
type Page struct {
	Title  string
	Active string
	Nav    []NavItem
	Flash  *flash.Message
}

// Row is one rendered table row.
type Row struct {
	ID    string
	Cells []string
}

// ListPage is the view model of a collection screen.
type ListPage struct {
	Page
	Slug      string
	Columns   []string
	Rows      []Row
	CanCreate bool
	CanEdit   bool
	CanDelete bool

	// LoadFailed distinguishes "the fetch failed" from "the collection is
	// empty"; an empty list from the backend is a valid state.
	LoadFailed bool
}

// Option is one choice of a select field.
type Option struct {
	Value string
	Label string
}

// FormField is one rendered form control with its current value and
// validation error.
type FormField struct {
	Name     string
	Label    string
	Kind     string // "text", "password", "number" or "select"
	Value    string
	Options  []Option
	Error    string
	Required bool
}

// FormPage is the view model of a create or edit form.
type FormPage struct {
	Page
	Slug   string
	Action string
	Fields []FormField
}

// ConfirmPage is the view model of the delete confirmation step.
type ConfirmPage struct {
	Page
	Detail string
	Action string
	Cancel string
}

// LoginPage is the view model of the login screen.
type LoginPage struct {
	Page
	Email  string
	Errors map[string]string
}
