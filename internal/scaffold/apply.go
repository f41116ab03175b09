package scaffold

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-git/go-billy/v5/osfs"
)

// names never copied out of a template tree
var ignoredNames = []string{".git", ".udev.toml"}

// ApplyTemplate renders the template tree at inputDir into outputDir. File
// contents and file names both go through text/template with the sprig
// funcmap; binary files are copied verbatim.
func ApplyTemplate(inputDir string, vars map[string]any, outputDir string) error {
	inFs := osfs.New(inputDir)

	return Walk(inFs, "/", func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ignored(p) {
			return nil
		}

		renderedPath, err := transform(p, vars)
		if err != nil {
			return fmt.Errorf("cannot render path %s: %w", p, err)
		}
		target := filepath.Join(outputDir, filepath.FromSlash(strings.TrimPrefix(renderedPath, "/")))

		if info.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		file, err := inFs.Open(p)
		if err != nil {
			return fmt.Errorf("cannot open template file %s: %w", p, err)
		}
		data, readErr := io.ReadAll(file)
		file.Close()
		if readErr != nil {
			return fmt.Errorf("cannot read template file %s: %w", p, readErr)
		}

		// binary assets (images, archives) are not templates
		if !isText(data) {
			return writeOut(target, data, info.Mode())
		}

		rendered, err := transform(string(data), vars)
		if err != nil {
			return fmt.Errorf("cannot render template file %s: %w", p, err)
		}
		return writeOut(target, []byte(rendered), info.Mode())
	})
}

func ignored(p string) bool {
	for _, name := range ignoredNames {
		if p == "/"+name || strings.HasPrefix(p, "/"+name+"/") {
			return true
		}
	}
	return false
}

func isText(data []byte) bool {
	mtype := mimetype.Detect(data)
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

func transform(text string, vars map[string]any) (string, error) {
	tpl, err := template.New("tpl").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := tpl.Execute(&out, vars); err != nil {
		return "", err
	}
	return out.String(), nil
}

func writeOut(target string, data []byte, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, data, mode.Perm())
}
