package resolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/expr-lang/expr"
)

// Evaluator renders an expression template against an explicitly
// supplied environment. It is the only collaborator that computes
// values; the engine decides when it runs (once for instant variables,
// on every access for deferred ones) and with which environment.
type Evaluator interface {
	Eval(ctx context.Context, template string, env map[string]any) (any, error)
}

// Expression delimiters within a template string.
const (
	exprOpen  = "{{"
	exprClose = "}}"
)

// ExprEvaluator evaluates templates whose "{{ ... }}" segments hold
// expr-lang expressions. Literal text outside segments is preserved.
//
// A template that is a single expression with no surrounding text keeps
// the evaluated Go type; otherwise all segments are stringified and
// concatenated. A template without any expression segment passes
// through unchanged.
type ExprEvaluator struct{}

// Eval implements [Evaluator].
func (ev ExprEvaluator) Eval(
	_ context.Context,
	template string,
	env map[string]any,
) (any, error) {
	segs, err := splitTemplate(template)
	if err != nil {
		return nil, err
	}

	if env == nil {
		env = map[string]any{}
	}

	if len(segs) == 1 {
		if !segs[0].expr {
			return template, nil
		}

		return evalExpr(segs[0].text, env)
	}

	var out strings.Builder

	for _, seg := range segs {
		if !seg.expr {
			out.WriteString(seg.text)

			continue
		}

		val, err := evalExpr(seg.text, env)
		if err != nil {
			return nil, err
		}

		out.WriteString(stringify(val))
	}

	return out.String(), nil
}

// segment is one literal or expression span of a template.
type segment struct {
	text string
	expr bool
}

// splitTemplate splits a template into literal and expression segments.
// Expression sources are returned trimmed. An unterminated "{{" is an
// evaluation failure.
func splitTemplate(s string) ([]segment, error) {
	var segs []segment

	for {
		open := strings.Index(s, exprOpen)
		if open < 0 {
			break
		}

		rest := s[open+len(exprOpen):]

		end := strings.Index(rest, exprClose)
		if end < 0 {
			return nil, ErrEvaluate.
				Wrap(errors.New("unterminated expression segment")).
				With(slog.String("template", s))
		}

		if open > 0 {
			segs = append(segs, segment{text: s[:open]})
		}

		segs = append(segs, segment{
			text: strings.TrimSpace(rest[:end]),
			expr: true,
		})

		s = rest[end+len(exprClose):]
	}

	if len(segs) == 0 || s != "" {
		segs = append(segs, segment{text: s})
	}

	return segs, nil
}

// evalExpr compiles and runs one expr-lang expression against env.
//
// Compiling against the concrete environment makes expr reject
// references to names absent from it, which is how prefixing mismatches
// surface as [ErrUnresolvedReference] instead of a silent nil.
func evalExpr(source string, env map[string]any) (any, error) {
	program, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		sentinel := ErrEvaluate
		if strings.Contains(err.Error(), "unknown name") {
			sentinel = ErrUnresolvedReference
		}

		return nil, sentinel.Wrap(err).
			With(slog.String("source", source))
	}

	result, err := expr.Run(program, env)
	if err != nil {
		return nil, ErrEvaluate.Wrap(err).
			With(slog.String("source", source))
	}

	return result, nil
}

// stringify renders an evaluated segment for concatenation into a
// mixed literal/expression template.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}
