package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/komsit37/cryptosent/pkg/cryptosent/types"
)

// YAMLSource loads a universe from a YAML file or a directory of YAML files.
// Vocabularies missing from the files fall back to the built-in ones.
type YAMLSource struct{}

type yamlUniverse struct {
	Assets []types.Asset `yaml:"assets"`
	Words  struct {
		Positive []string `yaml:"positive"`
		Negative []string `yaml:"negative"`
	} `yaml:"words"`
}

// Load expects spec to be a string filepath.
func (YAMLSource) Load(ctx context.Context, spec any) (types.Universe, error) { //nolint:revive // ctx reserved for future use
	path, ok := spec.(string)
	if !ok {
		return types.Universe{}, fmt.Errorf("yaml source expects filepath string spec")
	}
	info, err := os.Stat(path)
	if err != nil {
		return types.Universe{}, err
	}

	files := []string{path}
	if info.IsDir() {
		files = files[:0]
		err := filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(d.Name()))
			if ext == ".yaml" || ext == ".yml" {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return types.Universe{}, err
		}
		sort.Strings(files)
	}

	var u types.Universe
	for _, full := range files {
		data, err := readFile(full)
		if err != nil {
			return types.Universe{}, err
		}
		part, err := parseYAML(data)
		if err != nil {
			return types.Universe{}, fmt.Errorf("%s: %w", full, err)
		}
		u.Assets = append(u.Assets, part.Assets...)
		u.PositiveWords = appendUnique(u.PositiveWords, part.Words.Positive)
		u.NegativeWords = appendUnique(u.NegativeWords, part.Words.Negative)
	}

	def := Default()
	if len(u.PositiveWords) == 0 {
		u.PositiveWords = def.PositiveWords
	}
	if len(u.NegativeWords) == 0 {
		u.NegativeWords = def.NegativeWords
	}
	if err := Validate(u); err != nil {
		return types.Universe{}, fmt.Errorf("%s: %w", path, err)
	}
	return u, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func parseYAML(data []byte) (yamlUniverse, error) {
	var out yamlUniverse
	if err := yaml.Unmarshal(data, &out); err != nil {
		return yamlUniverse{}, err
	}
	for i := range out.Assets {
		out.Assets[i].Symbol = strings.ToUpper(strings.TrimSpace(out.Assets[i].Symbol))
		if strings.TrimSpace(out.Assets[i].Name) == "" {
			out.Assets[i].Name = out.Assets[i].Symbol
		}
	}
	return out, nil
}

// appendUnique appends words not already present, keeping first occurrence order.
func appendUnique(dst, words []string) []string {
	seen := make(map[string]struct{}, len(dst))
	for _, w := range dst {
		seen[w] = struct{}{}
	}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		dst = append(dst, w)
	}
	return dst
}
