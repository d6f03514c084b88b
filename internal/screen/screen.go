// Package screen implements the generic CRUD screen every management view
// is built from. A screen is a Schema (what the table and forms look like)
// plus Ops (how drafts reach the backend); the engine owns the request
// flow, validation and error handling so no individual screen can diverge
// from them.
package screen

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trade_admin/internal/platform/flash"
	"trade_admin/internal/platform/session"
	"trade_admin/internal/web"
)

// Field kinds understood by the form template.
const (
	KindText     = "text"
	KindPassword = "password"
	KindNumber   = "number"
	KindSelect   = "select"
)

// Field declares one form control of a screen's create/edit form.
type Field struct {
	Name     string
	Label    string
	Kind     string
	Required bool

	// Email requires the value to look like an email address.
	Email bool

	// MinLen is a minimum length applied when the value is present.
	MinLen int

	// Options are the static choices of a select field. OptionsKey instead
	// names a dynamic option set delivered with the list response (company
	// emails, asset names).
	Options    []web.Option
	OptionsKey string

	// Default seeds the create form.
	Default string
}

// Column declares one table column.
type Column[T any] struct {
	Header string
	Cell   func(T) string
}

// Actions declares which row operations a screen offers.
type Actions struct {
	Create bool
	Edit   bool
	Delete bool
}

// Schema describes one entity screen: its table, its forms and how to
// identify and seed a record.
type Schema[T any] struct {
	// Slug is the URL path segment, e.g. "users".
	Slug string

	// Title is the page heading.
	Title string

	// ItemLabel names one record in messages, e.g. "user".
	ItemLabel string

	Columns []Column[T]

	// Fields is the create form. EditFields, when set, replaces it for the
	// edit form (users swap the company picker for the allow toggle).
	Fields     []Field
	EditFields []Field

	// ID extracts the server-assigned identifier.
	ID func(T) int64

	// Seed turns a record into edit-form values.
	Seed func(T) map[string]string

	Can Actions
}

// ListData is a fetched collection plus any dynamic select options that
// arrived with it, keyed by Field.OptionsKey.
type ListData[T any] struct {
	Items   []T
	Options map[string][]web.Option
}

// Ops binds a screen to the backend. Closures not offered by the screen
// (per Schema.Can) may be nil.
type Ops[T any] struct {
	List   func(ctx context.Context, token string) (ListData[T], error)
	Create func(ctx context.Context, token string, values map[string]string) (string, error)
	Update func(ctx context.Context, token string, id int64, values map[string]string) (string, error)
	Delete func(ctx context.Context, token string, id int64) (string, error)
}

// Screen is one mounted management view.
type Screen[T any] struct {
	schema   Schema[T]
	ops      Ops[T]
	sessions *session.Manager
}

// New assembles a screen from its schema and backend bindings.
func New[T any](schema Schema[T], ops Ops[T], sessions *session.Manager) *Screen[T] {
	return &Screen[T]{schema: schema, ops: ops, sessions: sessions}
}

// Slug returns the screen's URL path segment.
func (s *Screen[T]) Slug() string { return s.schema.Slug }

// Register mounts the screen's routes on an authenticated router group.
func (s *Screen[T]) Register(rg gin.IRoutes) {
	base := "/" + s.schema.Slug
	rg.GET(base, s.list)
	if s.schema.Can.Create {
		rg.GET(base+"/new", s.createForm)
		rg.POST(base, s.create)
	}
	// Static and param segments must not share a position in gin's route
	// tree, hence /edit/:id rather than /:id/edit.
	if s.schema.Can.Edit {
		rg.GET(base+"/edit/:id", s.editForm)
		rg.POST(base+"/edit/:id", s.update)
	}
	if s.schema.Can.Delete {
		rg.GET(base+"/delete/:id", s.confirmDelete)
		rg.POST(base+"/delete/:id", s.delete)
	}
}

// page builds the shared view model, consuming any pending flash message.
func (s *Screen[T]) page(c *gin.Context, title string) web.Page {
	return web.Page{
		Title:  title,
		Active: "/" + s.schema.Slug,
		Nav:    web.Nav,
		Flash:  flash.Take(c),
	}
}

// unauthorized applies the uniform 401 policy: clear the session, go to
// login. Returns true when it handled the error.
func (s *Screen[T]) unauthorized(c *gin.Context, err error) bool {
	if !isUnauthorized(err) {
		return false
	}
	s.sessions.Clear(c)
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
	return true
}

func (s *Screen[T]) list(c *gin.Context) {
	token := session.TokenFromContext(c)

	page := web.ListPage{
		Page:      s.page(c, s.schema.Title),
		Slug:      s.schema.Slug,
		Columns:   s.headers(),
		CanCreate: s.schema.Can.Create,
		CanEdit:   s.schema.Can.Edit,
		CanDelete: s.schema.Can.Delete,
	}

	data, err := s.ops.List(c.Request.Context(), token)
	if err != nil {
		if s.unauthorized(c, err) {
			return
		}
		slog.Error("collection fetch failed", "screen", s.schema.Slug, "error", err)
		page.LoadFailed = true
		page.Flash = &flash.Message{Message: Notice(err), Severity: flash.SeverityError}
		c.HTML(http.StatusOK, "list.tmpl", page)
		return
	}

	page.Rows = make([]web.Row, 0, len(data.Items))
	for _, item := range data.Items {
		cells := make([]string, 0, len(s.schema.Columns))
		for _, col := range s.schema.Columns {
			cells = append(cells, col.Cell(item))
		}
		page.Rows = append(page.Rows, web.Row{
			ID:    strconv.FormatInt(s.schema.ID(item), 10),
			Cells: cells,
		})
	}
	c.HTML(http.StatusOK, "list.tmpl", page)
}

func (s *Screen[T]) createForm(c *gin.Context) {
	token := session.TokenFromContext(c)

	// The list response also carries the dynamic select options, so the
	// form fetches it even though it renders no rows.
	options, err := s.fetchOptions(c, token)
	if err != nil {
		return // redirected to login
	}

	values := map[string]string{}
	for _, f := range s.schema.Fields {
		values[f.Name] = f.Default
	}

	page := web.FormPage{
		Page:   s.page(c, "Add "+s.schema.ItemLabel),
		Slug:   s.schema.Slug,
		Action: "/" + s.schema.Slug,
		Fields: s.formFields(s.schema.Fields, values, nil, options),
	}
	c.HTML(http.StatusOK, "form.tmpl", page)
}

func (s *Screen[T]) create(c *gin.Context) {
	token := session.TokenFromContext(c)
	values := s.formValues(c, s.schema.Fields)

	if errs := Validate(s.schema.Fields, values); len(errs) > 0 {
		s.renderForm(c, token, s.schema.Fields, values, errs, "Add "+s.schema.ItemLabel, "/"+s.schema.Slug, nil)
		return
	}

	msg, err := s.ops.Create(c.Request.Context(), token, values)
	if err != nil {
		if s.unauthorized(c, err) {
			return
		}
		slog.Warn("create failed", "screen", s.schema.Slug, "error", err)
		notice := &flash.Message{Message: Notice(err), Severity: flash.SeverityError}
		s.renderForm(c, token, s.schema.Fields, values, nil, "Add "+s.schema.ItemLabel, "/"+s.schema.Slug, notice)
		return
	}

	flash.Set(c, successMessage(msg), flash.SeveritySuccess)
	c.Redirect(http.StatusFound, "/"+s.schema.Slug)
}

func (s *Screen[T]) editForm(c *gin.Context) {
	token := session.TokenFromContext(c)
	id, ok := s.recordID(c)
	if !ok {
		return
	}

	data, err := s.ops.List(c.Request.Context(), token)
	if err != nil {
		if s.unauthorized(c, err) {
			return
		}
		flash.Set(c, Notice(err), flash.SeverityError)
		c.Redirect(http.StatusFound, "/"+s.schema.Slug)
		return
	}

	item, found := s.find(data.Items, id)
	if !found {
		flash.Set(c, "Record not found", flash.SeverityError)
		c.Redirect(http.StatusFound, "/"+s.schema.Slug)
		return
	}

	page := web.FormPage{
		Page:   s.page(c, "Edit "+s.schema.ItemLabel),
		Slug:   s.schema.Slug,
		Action: "/" + s.schema.Slug + "/edit/" + strconv.FormatInt(id, 10),
		Fields: s.formFields(s.editFields(), s.schema.Seed(item), nil, data.Options),
	}
	c.HTML(http.StatusOK, "form.tmpl", page)
}

func (s *Screen[T]) update(c *gin.Context) {
	token := session.TokenFromContext(c)
	id, ok := s.recordID(c)
	if !ok {
		return
	}
	fields := s.editFields()
	values := s.formValues(c, fields)
	action := "/" + s.schema.Slug + "/edit/" + strconv.FormatInt(id, 10)

	// Updates are validated exactly like creates.
	if errs := Validate(fields, values); len(errs) > 0 {
		s.renderForm(c, token, fields, values, errs, "Edit "+s.schema.ItemLabel, action, nil)
		return
	}

	msg, err := s.ops.Update(c.Request.Context(), token, id, values)
	if err != nil {
		if s.unauthorized(c, err) {
			return
		}
		slog.Warn("update failed", "screen", s.schema.Slug, "id", id, "error", err)
		notice := &flash.Message{Message: Notice(err), Severity: flash.SeverityError}
		s.renderForm(c, token, fields, values, nil, "Edit "+s.schema.ItemLabel, action, notice)
		return
	}

	flash.Set(c, successMessage(msg), flash.SeveritySuccess)
	c.Redirect(http.StatusFound, "/"+s.schema.Slug)
}

func (s *Screen[T]) confirmDelete(c *gin.Context) {
	id, ok := s.recordID(c)
	if !ok {
		return
	}
	// The confirmation itself touches nothing; cancelling is a plain link
	// back to the table and sends no request.
	page := web.ConfirmPage{
		Page:   s.page(c, "Delete "+s.schema.ItemLabel),
		Detail: "this " + s.schema.ItemLabel,
		Action: "/" + s.schema.Slug + "/delete/" + strconv.FormatInt(id, 10),
		Cancel: "/" + s.schema.Slug,
	}
	c.HTML(http.StatusOK, "confirm.tmpl", page)
}

func (s *Screen[T]) delete(c *gin.Context) {
	token := session.TokenFromContext(c)
	id, ok := s.recordID(c)
	if !ok {
		return
	}

	msg, err := s.ops.Delete(c.Request.Context(), token, id)
	if err != nil {
		if s.unauthorized(c, err) {
			return
		}
		slog.Warn("delete failed", "screen", s.schema.Slug, "id", id, "error", err)
		// Stay on the confirmation so the admin can retry.
		page := web.ConfirmPage{
			Page:   s.page(c, "Delete "+s.schema.ItemLabel),
			Detail: "this " + s.schema.ItemLabel,
			Action: "/" + s.schema.Slug + "/delete/" + strconv.FormatInt(id, 10),
			Cancel: "/" + s.schema.Slug,
		}
		page.Flash = &flash.Message{Message: Notice(err), Severity: flash.SeverityError}
		c.HTML(http.StatusOK, "confirm.tmpl", page)
		return
	}

	flash.Set(c, successMessage(msg), flash.SeveritySuccess)
	c.Redirect(http.StatusFound, "/"+s.schema.Slug)
}

// renderForm re-renders a form with the submitted values kept, optionally
// with field errors or an in-page notification.
func (s *Screen[T]) renderForm(c *gin.Context, token string, fields []Field, values map[string]string,
	errs map[string]string, title, action string, notice *flash.Message) {

	options, err := s.fetchOptions(c, token)
	if err != nil {
		return
	}
	page := web.FormPage{
		Page:   s.page(c, title),
		Slug:   s.schema.Slug,
		Action: action,
		Fields: s.formFields(fields, values, errs, options),
	}
	if notice != nil {
		page.Flash = notice
	}
	status := http.StatusOK
	if len(errs) > 0 {
		status = http.StatusBadRequest
	}
	c.HTML(status, "form.tmpl", page)
}

// fetchOptions loads the dynamic select options for forms. Load failures
// other than 401 degrade to static options only.
func (s *Screen[T]) fetchOptions(c *gin.Context, token string) (map[string][]web.Option, error) {
	if !s.needsOptions() {
		return nil, nil
	}
	data, err := s.ops.List(c.Request.Context(), token)
	if err != nil {
		if s.unauthorized(c, err) {
			return nil, err
		}
		slog.Warn("options fetch failed", "screen", s.schema.Slug, "error", err)
		return nil, nil
	}
	return data.Options, nil
}

func (s *Screen[T]) needsOptions() bool {
	for _, f := range append(append([]Field{}, s.schema.Fields...), s.schema.EditFields...) {
		if f.OptionsKey != "" {
			return true
		}
	}
	return false
}

func (s *Screen[T]) editFields() []Field {
	if s.schema.EditFields != nil {
		return s.schema.EditFields
	}
	return s.schema.Fields
}

func (s *Screen[T]) headers() []string {
	headers := make([]string, 0, len(s.schema.Columns))
	for _, col := range s.schema.Columns {
		headers = append(headers, col.Header)
	}
	return headers
}

func (s *Screen[T]) find(items []T, id int64) (T, bool) {
	for _, item := range items {
		if s.schema.ID(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// recordID parses the :id route parameter; malformed ids go back to the
// table.
func (s *Screen[T]) recordID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/"+s.schema.Slug)
		c.Abort()
		return 0, false
	}
	return id, true
}

// formValues reads the declared fields from the posted form.
func (s *Screen[T]) formValues(c *gin.Context, fields []Field) map[string]string {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		values[f.Name] = c.PostForm(f.Name)
	}
	return values
}

// formFields merges declared fields with current values, validation errors
// and dynamic options into the view model.
func (s *Screen[T]) formFields(fields []Field, values, errs map[string]string,
	dynamic map[string][]web.Option) []web.FormField {

	out := make([]web.FormField, 0, len(fields))
	for _, f := range fields {
		options := f.Options
		if f.OptionsKey != "" {
			options = dynamic[f.OptionsKey]
		}
		out = append(out, web.FormField{
			Name:     f.Name,
			Label:    f.Label,
			Kind:     f.Kind,
			Value:    values[f.Name],
			Options:  options,
			Error:    errs[f.Name],
			Required: f.Required,
		})
	}
	return out
}

func successMessage(serverMsg string) string {
	if serverMsg == "" {
		return "Saved"
	}
	return serverMsg
}
