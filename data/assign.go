package data

import (
	"log/slog"
	"os"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/ardnew/stache/mustache"
)

// Assign evaluates an assignment of the form "name=expression" against root
// and returns a copy of root with the result stored at name.
//
// The name may be dotted ("a.b.c"). Intermediate maps are created as needed,
// and any non-map value in the way is replaced. The expression sees every
// top-level key of root as a variable plus the function env(name), which
// returns an environment variable's value. A nil result removes name.
func Assign(root mustache.Map, assignment string) (mustache.Map, error) {
	name, source, ok := strings.Cut(assignment, "=")
	name, source = strings.TrimSpace(name), strings.TrimSpace(source)

	if !ok || source == "" {
		return nil, ErrAssignment.With(
			slog.String("assignment", assignment),
			slog.String("reason", "expected name=expression"),
		)
	}

	path, err := splitPath(name)
	if err != nil {
		return nil, err
	}

	val, err := Eval(root, source)
	if err != nil {
		return nil, mustache.WrapError(err).With(slog.String("name", name))
	}

	return Set(root, path, val), nil
}

// Eval compiles and runs an expression with root as its environment and
// converts the result to a [mustache.Value]. A nil result yields nil.
func Eval(root mustache.Map, source string) (mustache.Value, error) {
	env := exprEnv(root)

	program, err := expr.Compile(source, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, ErrExprCompile.Wrap(err).With(slog.String("expr", source))
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return nil, ErrExprEvaluate.Wrap(err).With(slog.String("expr", source))
	}

	val, err := mustache.FromNative(out)
	if err != nil {
		return nil, ErrExprEvaluate.Wrap(err).With(slog.String("expr", source))
	}

	return val, nil
}

// Set returns a copy of root with val stored at path, copying every map
// along the way. A nil val removes the final key.
func Set(root mustache.Map, path []string, val mustache.Value) mustache.Map {
	out := make(mustache.Map, len(root)+1)
	for k, v := range root {
		out[k] = v
	}

	if len(path) == 0 {
		return out
	}

	key := path[0]

	if len(path) == 1 {
		if val == nil {
			delete(out, key)
		} else {
			out[key] = val
		}

		return out
	}

	child, _ := out[key].(mustache.Map)
	out[key] = Set(child, path[1:], val)

	return out
}

func splitPath(name string) ([]string, error) {
	path := strings.Split(name, ".")
	for _, seg := range path {
		if strings.TrimSpace(seg) == "" || seg != strings.TrimSpace(seg) {
			return nil, ErrAssignment.With(
				slog.String("name", name),
				slog.String("reason", "empty or padded name segment"),
			)
		}
	}

	return path, nil
}

func exprEnv(root mustache.Map) map[string]any {
	env := make(map[string]any, len(root)+1)
	for k, v := range root {
		env[k] = mustache.ToNative(v)
	}

	env["env"] = os.Getenv

	return env
}
