package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-userform/pkg/userform"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRenderCmd_Closed(t *testing.T) {
	out, err := execute(t, "render")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Open Form") || strings.Contains(out, `class="modal"`) {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRenderCmd_RejectedSubmit(t *testing.T) {
	out, err := execute(t, "render", "--open", "--set", "username=ada", "--set", "phone=123", "--submit")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	msgs := userform.DefaultMessages()
	for _, want := range []string{msgs.Email, msgs.Phone, `value="ada"`, `class="popup"`, `data-theme="default"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderCmd_Dismiss(t *testing.T) {
	out, err := execute(t, "render", "--open", "--submit", "--dismiss")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, `class="popup"`) {
		t.Fatalf("popup should be dismissed:\n%s", out)
	}
}

func TestRenderCmd_AcceptedSubmitCloses(t *testing.T) {
	out, err := execute(t, "render", "--open",
		"--set", "username=ada",
		"--set", "email=ada@example.com",
		"--set", "dob=1990-02-28",
		"--set", "phone=5551234567",
		"--submit",
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, `class="modal"`) {
		t.Fatalf("accepted submit should close the modal:\n%s", out)
	}
}

func TestRenderCmd_UnknownField(t *testing.T) {
	if _, err := execute(t, "render", "--open", "--set", "nickname=ada"); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestRenderCmd_BadLogLevel(t *testing.T) {
	if _, err := execute(t, "render", "--log-level", "loud"); err == nil {
		t.Fatalf("expected error for unknown log level")
	}
}
