// Package doctest checks that the public packages stay documented.
package doctest

import (
	"go/ast"
	goparser "go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// documentedPackages lists package directories relative to the repo root.
var documentedPackages = []string{
	".",
	"caser",
	"truncator",
	"logging",
	"nameerrors",
	"internal/naming",
	"cmd/namecase/commands",
}

func repoRoot(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller(0) failed to retrieve file path")
	return filepath.Join(filepath.Dir(thisFile), "..", "..")
}

// parsePackage parses the non-test Go files of dir with comments.
func parsePackage(t *testing.T, dir string) map[string]*ast.File {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	fset := token.NewFileSet()
	files := make(map[string]*ast.File)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := goparser.ParseFile(fset, filepath.Join(dir, name), nil, goparser.ParseComments)
		require.NoError(t, err, "parsing %s", name)
		files[name] = f
	}
	require.NotEmpty(t, files, "no Go files in %s", dir)
	return files
}

func TestPackageComments(t *testing.T) {
	root := repoRoot(t)
	for _, pkg := range documentedPackages {
		t.Run(pkg, func(t *testing.T) {
			files := parsePackage(t, filepath.Join(root, pkg))
			found := false
			for _, f := range files {
				if f.Doc != nil && strings.HasPrefix(f.Doc.Text(), "Package "+f.Name.Name) {
					found = true
					break
				}
			}
			assert.True(t, found, "package %s has no package comment", pkg)
		})
	}
}

func TestExportedIdentifiersDocumented(t *testing.T) {
	root := repoRoot(t)
	for _, pkg := range documentedPackages {
		t.Run(pkg, func(t *testing.T) {
			for name, f := range parsePackage(t, filepath.Join(root, pkg)) {
				for _, missing := range undocumented(f) {
					t.Errorf("%s/%s: exported %s has no doc comment", pkg, name, missing)
				}
			}
		})
	}
}

// undocumented returns the exported top-level identifiers of f without a doc
// comment. Grouped declarations are covered by the group's comment.
func undocumented(f *ast.File) []string {
	var missing []string
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Name.IsExported() && d.Doc == nil && exportedReceiver(d) {
				missing = append(missing, d.Name.Name)
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					if s.Name.IsExported() && d.Doc == nil && s.Doc == nil {
						missing = append(missing, s.Name.Name)
					}
				case *ast.ValueSpec:
					for _, n := range s.Names {
						if n.IsExported() && d.Doc == nil && s.Doc == nil {
							missing = append(missing, n.Name)
						}
					}
				}
			}
		}
	}
	return missing
}

// exportedReceiver reports whether fn is a plain function or a method on an
// exported type.
func exportedReceiver(fn *ast.FuncDecl) bool {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return true
	}
	typ := fn.Recv.List[0].Type
	if star, ok := typ.(*ast.StarExpr); ok {
		typ = star.X
	}
	ident, ok := typ.(*ast.Ident)
	return ok && ident.IsExported()
}

// TestOptionsInPackageDocs verifies that every exported With* option appears in
// its package's doc.go.
func TestOptionsInPackageDocs(t *testing.T) {
	root := repoRoot(t)
	for _, pkg := range []string{"caser", "truncator"} {
		t.Run(pkg, func(t *testing.T) {
			dir := filepath.Join(root, pkg)
			doc, err := os.ReadFile(filepath.Join(dir, "doc.go"))
			require.NoError(t, err)

			for _, f := range parsePackage(t, dir) {
				for _, decl := range f.Decls {
					fn, ok := decl.(*ast.FuncDecl)
					if !ok || fn.Recv != nil || !strings.HasPrefix(fn.Name.Name, "With") {
						continue
					}
					assert.Contains(t, string(doc), fn.Name.Name,
						"%s.%s is not mentioned in doc.go", pkg, fn.Name.Name)
				}
			}
		})
	}
}
