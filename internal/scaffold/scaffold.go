package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"github.com/cedi-search/addtarget/internal/branding"
	"github.com/spf13/afero"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Extension is appended to the target name to form the generated file name.
const Extension = ".go"

const templatePath = "scaffolds/target.go.tmpl"

var (
	// ErrInvalidTarget reports a target name that cannot name a single
	// directory under the working directory.
	ErrInvalidTarget = errors.New("invalid target name")

	// ErrNotDirectory reports that an entry named after the target already
	// exists but is not a directory.
	ErrNotDirectory = errors.New("exists and is not a directory")
)

// Data holds all template variables available to the target template.
type Data struct {
	Target       string // e.g., "jumia"; package, receiver, and file base name
	TypeName     string // Derived: Title(Target), e.g., "Jumia"
	EngineModule string // e.g., "github.com/Cedi-Search/Cedi-Search-Engine"
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir  string
	Files      []string
	CreatedDir bool
}

// NewData creates a Data with derived fields populated.
func NewData(target string) *Data {
	return &Data{
		Target:       target,
		TypeName:     Title(target),
		EngineModule: branding.EngineModule(),
	}
}

// Title upper-cases the first rune of every whitespace-delimited word in s and
// leaves all other runes unchanged. Punctuation does not start a word:
// "my target" becomes "My Target", "web_crawler" becomes "Web_crawler", and
// "web-crawler" becomes "Web-crawler". A word starting with a non-letter, as
// in "2fast", is returned as is.
func Title(s string) string {
	upper := cases.Upper(language.English)

	var b strings.Builder
	b.Grow(len(s))
	wordStart := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			wordStart = true
			b.WriteRune(r)
		case wordStart:
			wordStart = false
			b.WriteString(upper.String(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateTarget rejects names that would not resolve to exactly one
// directory entry directly under the working directory.
func ValidateTarget(target string) error {
	switch {
	case target == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidTarget)
	case target == "." || target == "..":
		return fmt.Errorf("%w: %q refers to an existing directory", ErrInvalidTarget, target)
	case strings.ContainsAny(target, `/\`+"\x00"):
		return fmt.Errorf("%w: %q must not contain path separators", ErrInvalidTarget, target)
	}
	return nil
}

// Render executes the target template for target. It has no side effects.
func Render(target string) (string, error) {
	return NewData(target).Render()
}

// Render executes the target template with d.
func (d *Data) Render() (string, error) {
	tmplBytes, err := fs.ReadFile(scaffoldFS, templatePath)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", templatePath, err)
	}

	tmpl, err := template.New(filepath.Base(templatePath)).Parse(string(tmplBytes))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", templatePath, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("executing template %s: %w", templatePath, err)
	}
	return buf.String(), nil
}

// Generator writes targets onto a filesystem.
type Generator struct {
	fs     afero.Fs
	logger *slog.Logger
}

// NewGenerator returns a Generator writing to fsys. A nil logger discards
// all log output.
func NewGenerator(fsys afero.Fs, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{fs: fsys, logger: logger}
}

// Generate ensures <cwd>/<target> exists and writes the rendered template to
// <cwd>/<target>/<target>.go, truncating any previous content.
func (g *Generator) Generate(cwd, target string) (*Result, error) {
	if err := ValidateTarget(target); err != nil {
		return nil, err
	}

	content, err := Render(target)
	if err != nil {
		return nil, err
	}

	outputDir := filepath.Join(cwd, target)
	created, err := g.ensureDir(cwd, target)
	if err != nil {
		return nil, err
	}

	fileName := target + Extension
	outPath := filepath.Join(outputDir, fileName)
	if err := afero.WriteFile(g.fs, outPath, []byte(content), 0644); err != nil {
		g.logger.Error("writing target file", "target", target, "file", outPath, "error", err)
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}
	g.logger.Debug("wrote target file", "target", target, "file", outPath, "bytes", len(content))

	return &Result{
		OutputDir:  outputDir,
		Files:      []string{fileName},
		CreatedDir: created,
	}, nil
}

// ensureDir creates cwd/target unless an entry with exactly that name is
// already listed in cwd. It reports whether the directory was created.
func (g *Generator) ensureDir(cwd, target string) (bool, error) {
	entries, err := afero.ReadDir(g.fs, cwd)
	if err != nil {
		g.logger.Error("listing working directory", "dir", cwd, "error", err)
		return false, fmt.Errorf("listing %s: %w", cwd, err)
	}

	dir := filepath.Join(cwd, target)
	for _, entry := range entries {
		if entry.Name() != target {
			continue
		}
		// Stat rather than trust the entry so symlinked directories count.
		info, err := g.fs.Stat(dir)
		if err != nil {
			return false, fmt.Errorf("inspecting %s: %w", dir, err)
		}
		if !info.IsDir() {
			g.logger.Error("target path is not a directory", "target", target, "dir", dir)
			return false, fmt.Errorf("%s: %w", dir, ErrNotDirectory)
		}
		g.logger.Debug("target directory exists", "target", target, "dir", dir)
		return false, nil
	}

	if err := g.fs.Mkdir(dir, 0755); err != nil {
		g.logger.Error("creating target directory", "target", target, "dir", dir, "error", err)
		return false, fmt.Errorf("creating directory %s: %w", dir, err)
	}
	g.logger.Debug("created target directory", "target", target, "dir", dir)
	return true, nil
}
