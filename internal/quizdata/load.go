package quizdata

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/abhisek/yokai/internal/typology"
)

//go:embed data/*.json data/*.toml
var embedded embed.FS

const (
	poolFileName  = "questions.json"
	tableFileName = "yokai.toml"

	// EmbeddedSource is reported for assets compiled into the binary.
	EmbeddedSource = "embedded"

	// DefaultPerAxis is how many questions are drawn from each axis.
	DefaultPerAxis = 3

	// FallbackCode is used when a table does not name its own fallback.
	FallbackCode typology.Code = "ENTP"
)

// Options control where assets come from and how strictly they are checked.
type Options struct {
	// Dir, when set, is searched for questions.json and yokai.toml before
	// the embedded copies.
	Dir string

	// PerAxis is the minimum sub-pool size. Zero means DefaultPerAxis.
	PerAxis int

	// Strict turns under-filled sub-pools into errors.
	Strict bool
}

// Data is the loaded, validated quiz content.
type Data struct {
	Pool  Pool
	Table *Table

	PoolVersion  string
	TableVersion string

	// PoolSource and TableSource are file paths or EmbeddedSource.
	PoolSource  string
	TableSource string

	// Warnings holds non-fatal problems, such as under-filled sub-pools
	// when not strict.
	Warnings []string
}

type poolFile struct {
	Version   string         `json:"version"`
	Questions []questionFile `json:"questions"`
}

type questionFile struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Options []optionFile `json:"options"`
}

type optionFile struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

type tableFile struct {
	Version  string                `toml:"version"`
	Fallback string                `toml:"fallback"`
	Types    map[string]typeRecord `toml:"types"`
}

type typeRecord struct {
	Name        string `toml:"name"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Image       string `toml:"image"`
}

// Load reads the question pool and yokai table, preferring files in
// opts.Dir over the embedded assets, and validates both.
func Load(opts Options) (*Data, error) {
	if opts.PerAxis <= 0 {
		opts.PerAxis = DefaultPerAxis
	}

	rawPool, poolSrc, err := readAsset(opts.Dir, poolFileName)
	if err != nil {
		return nil, err
	}
	rawTable, tableSrc, err := readAsset(opts.Dir, tableFileName)
	if err != nil {
		return nil, err
	}

	pool, poolVersion, err := parsePool(rawPool)
	if err != nil {
		return nil, fmt.Errorf("load %s (%s): %w", poolFileName, poolSrc, err)
	}
	table, tableVersion, err := parseTable(rawTable)
	if err != nil {
		return nil, fmt.Errorf("load %s (%s): %w", tableFileName, tableSrc, err)
	}

	var problems []string
	problems = append(problems, validateVersion(poolFileName, poolVersion)...)
	problems = append(problems, validateVersion(tableFileName, tableVersion)...)
	poolProblems, warnings := validatePool(pool, opts.PerAxis, opts.Strict)
	problems = append(problems, poolProblems...)
	problems = append(problems, validateTable(table)...)
	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	return &Data{
		Pool:         pool,
		Table:        table,
		PoolVersion:  poolVersion,
		TableVersion: tableVersion,
		PoolSource:   poolSrc,
		TableSource:  tableSrc,
		Warnings:     warnings,
	}, nil
}

// readAsset returns the named asset from dir if it exists there, otherwise
// the embedded copy.
func readAsset(dir, name string) ([]byte, string, error) {
	if dir != "" {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("read %s: %w", path, err)
		}
	}

	data, err := embedded.ReadFile("data/" + name)
	if err != nil {
		return nil, "", fmt.Errorf("read embedded %s: %w", name, err)
	}
	return data, EmbeddedSource, nil
}

func parsePool(raw []byte) (Pool, string, error) {
	if err := validatePoolJSON(raw); err != nil {
		return nil, "", err
	}

	var pf poolFile
	if err := json.Unmarshal(raw, &pf); err != nil {
		return nil, "", fmt.Errorf("decode questions: %w", err)
	}

	pool := make(Pool, 0, len(pf.Questions))
	for _, qf := range pf.Questions {
		if len(qf.Options) != 2 {
			return nil, "", fmt.Errorf("question %q: want 2 options, got %d", qf.ID, len(qf.Options))
		}
		q := Question{ID: qf.ID, Prompt: qf.Text}
		for i, of := range qf.Options {
			l, err := typology.ParseLetter(of.Type)
			if err != nil {
				return nil, "", fmt.Errorf("question %q option %d: %w", qf.ID, i, err)
			}
			q.Options[i] = Option{Text: of.Text, Letter: l}
		}
		pool = append(pool, q)
	}
	return pool, pf.Version, nil
}

func parseTable(raw []byte) (*Table, string, error) {
	var tf tableFile
	md, err := toml.Decode(string(raw), &tf)
	if err != nil {
		return nil, "", fmt.Errorf("decode yokai table: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, "", fmt.Errorf("unknown keys in yokai table: %s", strings.Join(keys, ", "))
	}

	fallback := typology.Code(strings.ToUpper(tf.Fallback))
	if tf.Fallback == "" {
		fallback = FallbackCode
	}

	codes := make([]string, 0, len(tf.Types))
	for k := range tf.Types {
		codes = append(codes, k)
	}
	sort.Strings(codes)

	types := make([]YokaiType, 0, len(codes))
	for _, k := range codes {
		code, err := typology.ParseCode(k)
		if err != nil {
			return nil, "", fmt.Errorf("types.%s: %w", k, err)
		}
		r := tf.Types[k]
		types = append(types, YokaiType{
			Code:        code,
			Name:        r.Name,
			Title:       r.Title,
			Description: strings.TrimSpace(r.Description),
			ImageRef:    r.Image,
		})
	}
	return NewTable(types, fallback), tf.Version, nil
}
