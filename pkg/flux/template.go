package flux

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"vitalboard.xyz/vitals-telemetry-service/pkg/common"
)

var (
	// ErrTemplateNotFound means the named template file is missing or
	// unreadable. Callers treat it as an empty template and fail the query
	// cleanly instead of crashing the render.
	ErrTemplateNotFound = errors.New("flux template not found")

	// ErrMissingParameter means a ${name} placeholder has no value in the
	// supplied mapping. Resolution fails before anything is dispatched.
	ErrMissingParameter = errors.New("flux template parameter missing")

	// ErrEmptyTemplate means resolution was attempted on an absent template.
	ErrEmptyTemplate = errors.New("flux template is empty")
)

var placeholderRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Template is one stored parameterized query.
type Template struct {
	Name string
	Text string
}

func (t Template) IsEmpty() bool {
	return strings.TrimSpace(t.Text) == ""
}

// Resolve substitutes every ${name} placeholder from params. Every
// placeholder must resolve; a leftover literal placeholder must never reach
// the endpoint.
func (t Template) Resolve(params map[string]string) (string, error) {
	if t.IsEmpty() {
		return "", fmt.Errorf("%w: %s", ErrEmptyTemplate, t.Name)
	}

	var missing []string
	resolved := placeholderRe.ReplaceAllStringFunc(t.Text, func(ph string) string {
		name := placeholderRe.FindStringSubmatch(ph)[1]
		value, ok := params[name]
		if !ok {
			missing = append(missing, name)
			return ph
		}
		return value
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s: %s", ErrMissingParameter, t.Name, strings.Join(missing, ", "))
	}
	return resolved, nil
}

// Store is a directory of named template files. Adding a template is adding
// a file, there is no registration step.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads a named template from the store. On failure it logs and
// returns an empty template along with ErrTemplateNotFound.
func (s *Store) Load(name string) (Template, error) {
	logger := common.GetLoggerWith(common.LoggerNameFluxStore)

	path := filepath.Join(s.dir, filepath.Base(name))
	text, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Error loading flux template",
			zap.String("path", path),
			zap.Error(err))
		return Template{Name: name}, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, path, err)
	}

	return Template{Name: name, Text: string(text)}, nil
}
