package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Error codes for configuration failures.
const (
	ErrCodeNotFound    = "E005" // Config file not found or unreadable
	ErrCodeUnsupported = "E008" // Unknown file extension
	ErrCodeParse       = "E004" // CUE or YAML syntax error
	ErrCodeSchema      = "E009" // Config does not satisfy #Demo
)

// LoadError is a configuration failure with an optional source position.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Load reads a .cue, .yaml or .yml config file, validates it and merges
// it over Default.
func Load(path string) (Demo, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Demo{}, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading config: %v", err)}
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".cue":
		return Parse(path, src, FormatCUE)
	case ".yaml", ".yml":
		return Parse(path, src, FormatYAML)
	default:
		return Demo{}, &LoadError{Code: ErrCodeUnsupported, Message: fmt.Sprintf("unsupported config extension %q (want .cue, .yaml or .yml)", ext)}
	}
}

// Format selects the config syntax for Parse.
type Format int

const (
	FormatCUE Format = iota
	FormatYAML
)

// Parse validates src against the schema. name is used in error positions.
func Parse(name string, src []byte, format Format) (Demo, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return Demo{}, fmt.Errorf("compiling embedded schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Demo"))

	var data cue.Value
	switch format {
	case FormatCUE:
		data = ctx.CompileBytes(src, cue.Filename(name))
	case FormatYAML:
		var raw map[string]any
		if err := yaml.Unmarshal(src, &raw); err != nil {
			return Demo{}, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("parsing YAML %s: %v", name, err)}
		}
		if raw == nil {
			raw = map[string]any{}
		}
		data = ctx.Encode(raw)
	default:
		return Demo{}, fmt.Errorf("unknown config format %d", format)
	}
	if err := data.Err(); err != nil {
		return Demo{}, toLoadError(ErrCodeParse, err)
	}

	v := def.Unify(data)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return Demo{}, toLoadError(ErrCodeSchema, err)
	}

	var o overrides
	if err := v.Decode(&o); err != nil {
		return Demo{}, toLoadError(ErrCodeSchema, err)
	}

	return o.apply(Default()), nil
}

// toLoadError attaches the first CUE position of err, if any.
func toLoadError(code string, err error) *LoadError {
	le := &LoadError{Code: code, Message: err.Error()}
	var cerr cueerrors.Error
	if errors.As(err, &cerr) {
		if positions := cueerrors.Positions(cerr); len(positions) > 0 {
			le.Pos = positions[0]
		}
	}
	return le
}
