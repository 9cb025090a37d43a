package commands

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/configuration"
)

type trUsage struct {
	Key  string
	File string
	Line int
}

type missingUsage struct {
	Locale string
	trUsage
}

// CheckTrUsage fails when a literal key passed to T, TSafe or MustT in the
// sources under the working directory is missing from an allowed locale.
func CheckTrUsage(allowedLanguages []string, mods ...application.Module) error {
	if len(allowedLanguages) == 0 {
		allowedLanguages = []string{"en", "zh"}
	}

	conf := configuration.Use()
	app, err := NewApplication(mods...)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	usages, err := collectTrUsages(root)
	if err != nil {
		return err
	}
	if len(usages) == 0 {
		return fmt.Errorf("no translation usages found")
	}

	missing, seen, err := unresolvedUsages(app.Bundle(), allowedLanguages, usages)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		for _, m := range missing {
			conf.Logger().WithFields(logrus.Fields{
				"locale": m.Locale,
				"key":    m.Key,
				"source": fmt.Sprintf("%s:%d", m.File, m.Line),
			}).Error("Translation key missing in allowed locales")
		}
		return fmt.Errorf("some translation keys are missing in allowed locales")
	}

	conf.Logger().WithFields(logrus.Fields{
		"allowed_locales": strings.Join(allowedLanguages, ", "),
		"unique_keys":     seen,
	}).Info("All translation usages are present in allowed locales")
	return nil
}

func unresolvedUsages(bundle *i18n.Bundle, allowedLanguages []string, usages []trUsage) ([]missingUsage, int, error) {
	messages := bundle.Messages()
	allowed := make(map[string]language.Tag, len(allowedLanguages))
	for _, code := range allowedLanguages {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid allowed language %q: %w", code, err)
		}
		if messages[tag] == nil {
			return nil, 0, fmt.Errorf("allowed language %q (%s) not found in bundle", code, tag)
		}
		allowed[code] = tag
	}

	var missing []missingUsage
	seen := make(map[string]bool)
	for _, u := range usages {
		// Each key is reported once, at its first occurrence.
		if u.Key == "" || seen[u.Key] {
			continue
		}
		seen[u.Key] = true
		for _, code := range allowedLanguages {
			if messages[allowed[code]][u.Key] == nil {
				missing = append(missing, missingUsage{Locale: code, trUsage: u})
			}
		}
	}
	return missing, len(seen), nil
}

func collectTrUsages(root string) ([]trUsage, error) {
	var usages []trUsage

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			name := d.Name()
			if rel != "." && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
				name == "vendor" || name == "testdata" || name == "node_modules") {
				return fs.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(rel, ".go") || strings.HasSuffix(rel, "_test.go") {
			return nil
		}
		fileUsages, err := collectTrUsagesFromGoFile(path, rel)
		if err != nil {
			return err
		}
		usages = append(usages, fileUsages...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return usages, nil
}

func collectTrUsagesFromGoFile(absPath, relPath string) ([]trUsage, error) {
	src, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, absPath, src, 0)
	if err != nil {
		return nil, err
	}

	var usages []trUsage
	add := func(arg ast.Expr) {
		if key, ok := stringLiteral(arg); ok {
			pos := fset.Position(arg.Pos())
			usages = append(usages, trUsage{Key: key, File: relPath, Line: pos.Line})
		}
	}
	ast.Inspect(file, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.CallExpr:
			selector, ok := node.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			switch selector.Sel.Name {
			case "T", "TSafe":
				if len(node.Args) >= 1 {
					add(node.Args[0])
				}
			case "MustT":
				if len(node.Args) >= 2 {
					add(node.Args[1])
				}
			}
		case *ast.CompositeLit:
			for _, elt := range node.Elts {
				kv, ok := elt.(*ast.KeyValueExpr)
				if !ok {
					continue
				}
				keyIdent, ok := kv.Key.(*ast.Ident)
				if !ok || keyIdent.Name != "MessageID" {
					continue
				}
				add(kv.Value)
			}
		}
		return true
	})

	return usages, nil
}

func stringLiteral(expr ast.Expr) (string, bool) {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}
	unquoted, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}
	return unquoted, true
}
