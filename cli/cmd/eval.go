package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ardnew/jspr/docloader"
	"github.com/ardnew/jspr/lang"
)

// Eval is the default command: it loads the configured source document(s)
// (or stdin, if none were given), evaluates the result as a do-sequence
// against a fresh root environment, and prints the final value.
type Eval struct{}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) error {
	doc, err := loadSources(ctx)
	if err != nil {
		return lang.WrapError(err).With(slog.String("command", "eval"))
	}

	env := rootEnvironment()

	result, err := lang.Eval(lang.NewSequence("__eval_do_seq__", doc), env)
	if err != nil {
		printEvalError(err)

		return exitError{code: 1}
	}

	fmt.Println(lang.String(result))

	return nil
}

// rootEnvironment builds the environment every invocation of jspr evaluates
// against: the kernel (lang.Register) plus the host library (lang.RegisterHost).
func rootEnvironment() *lang.Environment {
	env := lang.NewEnvironment()
	lang.Register(env)
	lang.RegisterHost(env, os.Stdout)

	return env
}

// loadSources reads the configured source files (falling back to stdin when
// none were given) and decodes the concatenation of all sources via docloader
// as one document; the sources are not decoded or wrapped separately.
func loadSources(ctx context.Context) (lang.Value, error) {
	srcs := sourceFilesFrom(ctx)
	if srcs == nil || srcs.IsZero() {
		return docloader.LoadReader(os.Stdin)
	}

	return docloader.LoadReader(srcs)
}

// printEvalError renders a raised JSPR error payload to stderr, using the
// same native formatter as a successful result.
func printEvalError(err error) {
	var jerr *lang.Error
	if asError(err, &jerr) && jerr.Raised() != nil {
		fmt.Fprintln(os.Stderr, lang.String(jerr.Raised()))

		return
	}

	fmt.Fprintln(os.Stderr, err.Error())
}

func asError(err error, target **lang.Error) bool {
	for err != nil {
		if e, ok := err.(*lang.Error); ok {
			*target = e

			return true
		}

		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}

		err = u.Unwrap()
	}

	return false
}

// exitError carries a process exit code through the kong command Run chain
// without itself printing anything further.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }
