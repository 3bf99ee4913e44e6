package resolve

import (
	"errors"
	"testing"
)

func TestSplitTemplate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []segment
	}{
		{
			name:  "plain text",
			input: "just a value",
			want:  []segment{{text: "just a value"}},
		},
		{
			name:  "empty",
			input: "",
			want:  []segment{{text: ""}},
		},
		{
			name:  "single expression",
			input: "{{ api_server }}",
			want:  []segment{{text: "api_server", expr: true}},
		},
		{
			name:  "expression without padding",
			input: "{{api_server}}",
			want:  []segment{{text: "api_server", expr: true}},
		},
		{
			name:  "mixed",
			input: "https://{{api_server}}/v1/data",
			want: []segment{
				{text: "https://"},
				{text: "api_server", expr: true},
				{text: "/v1/data"},
			},
		},
		{
			name:  "two expressions",
			input: "{{ a }}-{{ b }}",
			want: []segment{
				{text: "a", expr: true},
				{text: "-"},
				{text: "b", expr: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitTemplate(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("got %d segments %v, want %d", len(got), got, len(tt.want))
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("segment %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitTemplate_Unterminated(t *testing.T) {
	_, err := splitTemplate("broken {{ api_server")
	if !errors.Is(err, ErrEvaluate) {
		t.Errorf("expected ErrEvaluate for unterminated segment, got %v", err)
	}
}

func TestEval_PlainStringPassthrough(t *testing.T) {
	var ev ExprEvaluator

	got, err := ev.Eval(t.Context(), "no expressions here", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "no expressions here" {
		t.Errorf("got %v", got)
	}
}

func TestEval_SingleExpressionKeepsType(t *testing.T) {
	var ev ExprEvaluator

	env := map[string]any{"count": 3}

	got, err := ev.Eval(t.Context(), "{{ count + 1 }}", env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != 4 {
		t.Errorf("got %v (%T), want 4", got, got)
	}
}

func TestEval_MixedConcatenation(t *testing.T) {
	var ev ExprEvaluator

	env := map[string]any{"api_server": "prod.example.com"}

	got, err := ev.Eval(t.Context(), "https://{{api_server}}/v1/data", env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "https://prod.example.com/v1/data" {
		t.Errorf("got %v", got)
	}
}

func TestEval_UnresolvedReference(t *testing.T) {
	var ev ExprEvaluator

	_, err := ev.Eval(t.Context(), "{{ missing_name }}", map[string]any{})
	if !errors.Is(err, ErrUnresolvedReference) {
		t.Errorf("expected ErrUnresolvedReference, got %v", err)
	}
}

func TestEval_CompileFailure(t *testing.T) {
	var ev ExprEvaluator

	_, err := ev.Eval(t.Context(), "{{ 1 + }}", map[string]any{})
	if !errors.Is(err, ErrEvaluate) {
		t.Errorf("expected ErrEvaluate, got %v", err)
	}
}

func TestEval_Builtins(t *testing.T) {
	var ev ExprEvaluator

	env := evalEnv(map[string]any{"dir": "/etc", "file": "httpd.conf"})

	got, err := ev.Eval(t.Context(), `{{ path.cat(dir, file) }}`, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "/etc/httpd.conf" {
		t.Errorf("got %v", got)
	}
}

func TestEvalEnv_VarsShadowBuiltins(t *testing.T) {
	env := evalEnv(map[string]any{"path": "/usr/bin"})

	if env["path"] != "/usr/bin" {
		t.Errorf("resolved variable should shadow builtin, got %v", env["path"])
	}
}
