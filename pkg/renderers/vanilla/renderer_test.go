package vanilla

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-userform/pkg/userform"
)

func render(t *testing.T, r *Renderer, state userform.State) string {
	t.Helper()
	out, err := r.Render(context.Background(), state)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRender_Closed(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	html := render(t, r, userform.NewState())
	if !strings.Contains(html, `class="open-form-button"`) {
		t.Fatalf("expected open button, got:\n%s", html)
	}
	if strings.Contains(html, `class="modal"`) {
		t.Fatalf("closed state must not render the modal:\n%s", html)
	}
}

func TestRender_OpenWithErrors(t *testing.T) {
	r, err := New(WithAction("/users"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	session := userform.NewSession(userform.NewReducer(userform.WithAlertMode(userform.AlertDeferred)))
	session.DispatchAll(
		userform.OpenEvent{},
		userform.ChangeEvent{Field: userform.FieldUsername, Value: `<script>x</script>`},
		userform.SubmitEvent{},
	)

	html := render(t, r, session.State())
	msgs := userform.DefaultMessages()
	for _, want := range []string{
		`<div class="modal">`,
		`action="/users"`,
		`<input type="email" id="email" name="email" value="" required>`,
		`<input type="date" id="dob" name="dob" value="" required>`,
		`value="&lt;script&gt;x&lt;/script&gt;"`,
		`<div class="error">` + msgs.Email + `</div>`,
		`<div class="error">` + msgs.Phone + `</div>`,
		`<div class="popup">`,
		"Email Address:",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("field value was not escaped:\n%s", html)
	}
	if strings.Contains(html, msgs.Username) {
		t.Fatalf("username is set and must not show an error:\n%s", html)
	}
}

func TestRender_PopupDismissed(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	state := userform.State{Open: true, Errors: userform.ErrorMap{userform.FieldPhone: "bad phone"}}

	html := render(t, r, state)
	if strings.Contains(html, `class="popup"`) {
		t.Fatalf("popup must be hidden without a last error:\n%s", html)
	}
	if !strings.Contains(html, "bad phone") {
		t.Fatalf("inline error missing:\n%s", html)
	}
}

func TestRender_Theme(t *testing.T) {
	r, err := New(WithTheme(&theme.RendererConfig{
		Theme:   "admin",
		Variant: "dark",
		CSSVars: map[string]string{"accent": "#333", "--bg": "#000"},
	}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	html := render(t, r, userform.NewState())
	for _, want := range []string{
		`data-theme="admin"`,
		`data-theme-variant="dark"`,
		`style="--bg: #000; --accent: #333;"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
}

func TestRender_CustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		TemplateName: {Data: []byte(`{% if open %}open{% else %}closed{% endif %}:{{ fields|length }}`)},
	}
	r, err := New(WithTemplatesFS(files))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if got := render(t, r, userform.State{Open: true}); got != "open:4" {
		t.Fatalf("custom template output = %q", got)
	}
}

func TestRender_CancelledContext(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Render(ctx, userform.NewState()); err == nil {
		t.Fatalf("expected context error")
	}
}
