package configs

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/BurntSushi/toml"
)

var ErrValueNotFound = errors.New("config value not found")

// Loader reads config files lazily on first lookup. Files ending in .toml are
// decoded as TOML, everything else is compiled as CUE. Every file is checked
// against the schema. Earlier files take precedence.
type Loader struct {
	getRoots func() ([]rootInfo, error)
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{

		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, fmt.Errorf("schema: %w", err)
				}
			}

			for _, filePath := range filePaths {
				value, err := compileFile(ctx, filePath)
				if err != nil {
					return nil, err
				}

				if schema.Exists() {
					if err := schema.Unify(value).Validate(); err != nil {
						return nil, fmt.Errorf("%s: %w", filePath, err)
					}
				}

				ret = append(ret, rootInfo{
					value: value,
					path:  filePath,
				})
			}

			return
		}),
	}
}

func compileFile(ctx *cue.Context, filePath string) (cue.Value, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return cue.Value{}, err
	}

	var value cue.Value
	switch filepath.Ext(filePath) {
	case ".toml":
		var data map[string]any
		if _, err := toml.Decode(string(content), &data); err != nil {
			return cue.Value{}, fmt.Errorf("%s: %w", filePath, err)
		}
		value = ctx.Encode(data)
	default:
		value = ctx.CompileBytes(
			content,
			cue.Filename(filePath),
		)
	}
	if err := value.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("%s: %w", filePath, err)
	}

	return value, nil
}

type rootInfo struct {
	value cue.Value
	path  string
}

// Paths returns the files this loader reads.
func (l Loader) Paths() ([]string, error) {
	roots, err := l.getRoots()
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(roots))
	for _, info := range roots {
		paths = append(paths, info.path)
	}
	return paths, nil
}

func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if value.Exists() && value.Err() == nil {
				if !yield(&value, nil) {
					break
				}
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		if err := value.Decode(target); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	}
	return ErrValueNotFound
}
