package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

const (
	configImportPath = "github.com/0xalexb/hjarta-config/config"
	envImportPath    = "github.com/0xalexb/hjarta-config/config/env"
)

// tag keys that name a field in a document, in lookup order.
var documentTagKeys = []string{"toml", "yaml", "json"}

// tag keys emitted on partial fields.
var partialTagKeys = []string{"json", "toml", "yaml"}

type typeDecl struct {
	spec *ast.TypeSpec
	file *ast.File
}

type loader struct {
	pkg       string
	decls     map[string]typeDecl
	requested map[string]bool
	imports   map[string]Import
	// package types with an UnmarshalText method.
	textTypes map[string]bool
}

// Load parses the Go package in dir on fsys and builds the schema of the
// requested struct types. Test files are ignored.
func Load(fsys afero.Fs, dir string, typeNames []string) (*Schema, error) {
	if len(typeNames) == 0 {
		return nil, ErrNoTypes
	}

	files, err := parseDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	ldr := &loader{
		decls:     make(map[string]typeDecl),
		requested: make(map[string]bool, len(typeNames)),
		imports:   make(map[string]Import),
		textTypes: make(map[string]bool),
	}

	for _, file := range files {
		if ldr.pkg == "" {
			ldr.pkg = file.Name.Name
		} else if ldr.pkg != file.Name.Name {
			return nil, fmt.Errorf("directory %q holds packages %q and %q", dir, ldr.pkg, file.Name.Name)
		}

		ldr.collectTypes(file)
	}

	for _, name := range typeNames {
		ldr.requested[name] = true
	}

	schema := &Schema{Package: ldr.pkg}

	for _, name := range typeNames {
		st, err := ldr.loadStruct(name)
		if err != nil {
			return nil, err
		}

		schema.Structs = append(schema.Structs, st)
	}

	schema.Imports = ldr.importList()

	return schema, nil
}

func parseDir(fsys afero.Fs, dir string) ([]*ast.File, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", dir, err)
	}

	fset := token.NewFileSet()

	var files []*ast.File

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}

		fullPath := filepath.Join(dir, name)

		src, err := afero.ReadFile(fsys, fullPath)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", fullPath, err)
		}

		file, err := parser.ParseFile(fset, fullPath, src, parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", fullPath, err)
		}

		files = append(files, file)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("directory %q: no Go files", dir)
	}

	return files, nil
}

func (l *loader) collectTypes(file *ast.File) {
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			l.collectTextMethod(fn)

			continue
		}

		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if ok {
				l.decls[typeSpec.Name.Name] = typeDecl{spec: typeSpec, file: file}
			}
		}
	}
}

func (l *loader) collectTextMethod(fn *ast.FuncDecl) {
	if fn.Recv == nil || len(fn.Recv.List) != 1 || fn.Name.Name != "UnmarshalText" {
		return
	}

	recv := fn.Recv.List[0].Type
	if star, ok := recv.(*ast.StarExpr); ok {
		recv = star.X
	}

	if ident, ok := recv.(*ast.Ident); ok {
		l.textTypes[ident.Name] = true
	}
}

func (l *loader) loadStruct(name string) (Struct, error) {
	decl, ok := l.decls[name]
	if !ok {
		return Struct{}, schemaErrorf(name, "", "type not found in package %s", l.pkg)
	}

	structType, ok := decl.spec.Type.(*ast.StructType)
	if !ok {
		return Struct{}, schemaErrorf(name, "", "not a struct type")
	}

	if decl.spec.TypeParams != nil {
		return Struct{}, schemaErrorf(name, "", "generic types are not supported")
	}

	st := Struct{Name: name}
	locals := map[string]bool{}

	for _, astField := range structType.Fields.List {
		if len(astField.Names) == 0 {
			return Struct{}, schemaErrorf(name, types.ExprString(astField.Type), "embedded fields are not supported")
		}

		tag, err := fieldTag(astField)
		if err != nil {
			return Struct{}, schemaErrorf(name, astField.Names[0].Name, "%v", err)
		}

		for _, ident := range astField.Names {
			if !ident.IsExported() || tag.Get("layer") == "-" {
				continue
			}

			field, err := l.classify(name, ident.Name, astField.Type, tag)
			if err != nil {
				return Struct{}, err
			}

			if field.IsNested() {
				field.Local = localName(field.Name, locals)
			}

			if err := l.useRefs(decl.file, name, field.Name, fieldRefs(astField.Type, field)...); err != nil {
				return Struct{}, err
			}

			st.Fields = append(st.Fields, field)
		}
	}

	return st, nil
}

// fieldRefs returns the expressions of a field that may reference other packages.
func fieldRefs(typ ast.Expr, field Field) []ast.Expr {
	refs := []ast.Expr{typ}

	for _, src := range []string{field.Default, field.Partial} {
		if src == "" {
			continue
		}

		if expr, err := parser.ParseExpr(src); err == nil {
			refs = append(refs, expr)
		}
	}

	return refs
}

func fieldTag(field *ast.Field) (reflect.StructTag, error) {
	if field.Tag == nil {
		return "", nil
	}

	raw, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return "", fmt.Errorf("invalid struct tag %s", field.Tag.Value)
	}

	return reflect.StructTag(raw), nil
}

func (l *loader) classify(structName, name string, typ ast.Expr, tag reflect.StructTag) (Field, error) {
	field := Field{
		Name: name,
		Key:  documentKey(name, tag),
		Type: types.ExprString(typ),
	}

	nested, partial, err := parseLayerTag(tag.Get("layer"))
	if err != nil {
		return Field{}, schemaErrorf(structName, name, "%v", err)
	}

	defaultValue, hasDefault := tag.Lookup("default")
	envValue, hasEnv := tag.Lookup("env")

	if nested {
		if hasDefault || hasEnv {
			return Field{}, schemaErrorf(structName, name, "nested fields cannot declare default or env")
		}

		return l.nestedField(structName, field, typ, partial, tag)
	}

	return l.plainField(structName, field, typ, tag, defaultValue, hasDefault, envValue, hasEnv)
}

// parseLayerTag reads `layer:"nested"` or `layer:"nested=PartialType"`.
func parseLayerTag(value string) (bool, string, error) {
	if value == "" {
		return false, "", nil
	}

	var (
		nested  bool
		partial string
	)

	for _, option := range strings.Split(value, ",") {
		key, arg, hasArg := strings.Cut(strings.TrimSpace(option), "=")

		switch {
		case key == "nested" && !hasArg:
			nested = true
		case key == "nested" && hasArg:
			if strings.TrimSpace(arg) == "" {
				return false, "", fmt.Errorf("empty partial type in layer tag %q", value)
			}

			nested = true
			partial = strings.TrimSpace(arg)
		default:
			return false, "", fmt.Errorf("unknown layer option %q", option)
		}
	}

	return nested, partial, nil
}

func (l *loader) nestedField(structName string, field Field, typ ast.Expr, partial string, tag reflect.StructTag) (Field, error) {
	field.Kind = Nested
	field.Tag = partialTag(field.Key, tag, false)

	if partial != "" {
		expr, err := parser.ParseExpr(partial)
		if err != nil {
			return Field{}, schemaErrorf(structName, field.Name, "invalid partial type %q", partial)
		}

		switch partialExpr := expr.(type) {
		case *ast.Ident:
			if !l.declaresPartial(partialExpr.Name) {
				return Field{}, schemaErrorf(structName, field.Name, "partial type %s is not declared in package %s", partial, l.pkg)
			}
		case *ast.SelectorExpr:
			if _, ok := partialExpr.X.(*ast.Ident); !ok {
				return Field{}, schemaErrorf(structName, field.Name, "invalid partial type %q", partial)
			}
		default:
			return Field{}, schemaErrorf(structName, field.Name, "partial type %q must be a named type", partial)
		}

		field.Partial = types.ExprString(expr)

		return field, nil
	}

	switch nestedType := typ.(type) {
	case *ast.Ident:
		if isPredeclared(nestedType.Name) {
			return Field{}, schemaErrorf(structName, field.Name, "nested requires a configuration type, got %s", nestedType.Name)
		}

		if !l.requested[nestedType.Name] && !l.declaresPartial(nestedType.Name+partialSuffix) {
			return Field{}, schemaErrorf(structName, field.Name,
				"type %s has no partial counterpart %s%s", nestedType.Name, nestedType.Name, partialSuffix)
		}

		field.Partial = nestedType.Name + partialSuffix
	case *ast.SelectorExpr:
		field.Partial = types.ExprString(nestedType) + partialSuffix
	default:
		return Field{}, schemaErrorf(structName, field.Name, "nested requires a named configuration type, got %s", field.Type)
	}

	return field, nil
}

func (l *loader) declaresPartial(name string) bool {
	if _, ok := l.decls[name]; ok {
		return true
	}

	base, ok := strings.CutSuffix(name, partialSuffix)

	return ok && l.requested[base]
}

//nolint:funlen // one check per tag.
func (l *loader) plainField(
	structName string,
	field Field,
	typ ast.Expr,
	tag reflect.StructTag,
	defaultValue string,
	hasDefault bool,
	envValue string,
	hasEnv bool,
) (Field, error) {
	field.Kind = Plain
	field.Tag = partialTag(field.Key, tag, true)

	elem := typ
	if star, ok := typ.(*ast.StarExpr); ok {
		if _, ok := star.X.(*ast.StarExpr); ok {
			return Field{}, schemaErrorf(structName, field.Name, "pointer to pointer fields are not supported")
		}

		field.Optional = true
		elem = star.X
	}

	field.Elem = types.ExprString(elem)

	if hasEnv {
		names, err := parseEnvTag(envValue)
		if err != nil {
			return Field{}, schemaErrorf(structName, field.Name, "%v", err)
		}

		if !l.envSupported(elem) {
			return Field{}, schemaErrorf(structName, field.Name, "env requires a type parseable from a string, got %s", field.Elem)
		}

		field.Env = names
	}

	if hasDefault {
		if l.isStringType(elem) {
			field.Default = strconv.Quote(defaultValue)

			return field, nil
		}

		expr, err := parser.ParseExpr(defaultValue)
		if err != nil {
			return Field{}, schemaErrorf(structName, field.Name, "invalid default expression %q", defaultValue)
		}

		err = checkLiteral(elem, expr)
		if err != nil {
			return Field{}, schemaErrorf(structName, field.Name, "default %q: %v", defaultValue, err)
		}

		field.Default = types.ExprString(expr)
	}

	return field, nil
}

func parseEnvTag(value string) ([]string, error) {
	if strings.TrimSpace(value) == "" {
		return nil, fmt.Errorf("empty env tag")
	}

	names := strings.Split(value, ",")
	for i, name := range names {
		names[i] = strings.TrimSpace(name)
		if names[i] == "" {
			return nil, fmt.Errorf("empty variable name in env tag %q", value)
		}
	}

	return names, nil
}

// envSupported reports whether values of elem can be parsed from a string:
// basic types, string slices, text unmarshalers and package types built on
// them. Types of other packages are left to the compiler and the parser.
func (l *loader) envSupported(elem ast.Expr) bool {
	return l.parseable(elem, true, map[string]bool{})
}

// parseable walks local type declarations down to their underlying type.
// withMethods is false once a defined type drops the methods of the type it
// is built on.
func (l *loader) parseable(elem ast.Expr, withMethods bool, seen map[string]bool) bool {
	switch typ := elem.(type) {
	case *ast.Ident:
		if withMethods && l.textTypes[typ.Name] {
			return true
		}

		decl, ok := l.decls[typ.Name]
		if !ok {
			return parseableBasic(typ.Name)
		}

		if seen[typ.Name] || decl.spec.TypeParams != nil {
			return false
		}

		seen[typ.Name] = true

		return l.parseable(decl.spec.Type, withMethods && decl.spec.Assign.IsValid(), seen)
	case *ast.SelectorExpr:
		return true
	case *ast.ParenExpr:
		return l.parseable(typ.X, withMethods, seen)
	case *ast.ArrayType:
		return typ.Len == nil && l.isStringType(typ.Elt)
	default:
		return false
	}
}

// parseableBasic reports whether name is a predeclared boolean, integer,
// float or string type.
func parseableBasic(name string) bool {
	basic := predeclaredBasic(name)
	if basic == nil {
		return false
	}

	return basic.Info()&(types.IsBoolean|types.IsInteger|types.IsFloat|types.IsString) != 0
}

// isStringType reports whether elem is string or a package type whose
// underlying type is string. Defaults for such fields are taken literally.
func (l *loader) isStringType(elem ast.Expr) bool {
	seen := map[string]bool{}

	for {
		ident, ok := elem.(*ast.Ident)
		if !ok || seen[ident.Name] {
			return false
		}

		decl, ok := l.decls[ident.Name]
		if !ok {
			return ident.Name == "string"
		}

		seen[ident.Name] = true
		elem = decl.spec.Type
	}
}

// checkLiteral rejects basic literals that cannot initialize a predeclared basic type.
func checkLiteral(elem ast.Expr, expr ast.Expr) error {
	ident, ok := elem.(*ast.Ident)
	if !ok {
		return nil
	}

	basic := predeclaredBasic(ident.Name)
	if basic == nil {
		return nil
	}

	lit, ok := expr.(*ast.BasicLit)
	if !ok {
		return nil
	}

	info := basic.Info()

	switch {
	case info&types.IsBoolean != 0:
		return fmt.Errorf("%s literal cannot initialize bool", strings.ToLower(lit.Kind.String()))
	case info&types.IsInteger != 0 && lit.Kind != token.INT && lit.Kind != token.CHAR:
		return fmt.Errorf("%s literal cannot initialize %s", strings.ToLower(lit.Kind.String()), ident.Name)
	case info&types.IsFloat != 0 && lit.Kind != token.INT && lit.Kind != token.FLOAT:
		return fmt.Errorf("%s literal cannot initialize %s", strings.ToLower(lit.Kind.String()), ident.Name)
	}

	return nil
}

func predeclaredBasic(name string) *types.Basic {
	typeName, ok := types.Universe.Lookup(name).(*types.TypeName)
	if !ok {
		return nil
	}

	basic, _ := typeName.Type().(*types.Basic)

	return basic
}

func isPredeclared(name string) bool {
	_, ok := types.Universe.Lookup(name).(*types.TypeName)

	return ok
}

// useRefs records the imports of file referenced by the field's type.
// Unknown qualifiers are left to the compiler.
func (l *loader) useRefs(file *ast.File, structName, fieldName string, exprs ...ast.Expr) error {
	for _, expr := range exprs {
		var err error

		ast.Inspect(expr, func(node ast.Node) bool {
			sel, ok := node.(*ast.SelectorExpr)
			if !ok || err != nil {
				return err == nil
			}

			pkgIdent, ok := sel.X.(*ast.Ident)
			if !ok {
				return true
			}

			imp, found := findImport(file, pkgIdent.Name)
			if !found {
				return true
			}

			if pkgIdent.Name == "config" || pkgIdent.Name == "env" {
				err = schemaErrorf(structName, fieldName, "package name %s collides with a generated import", pkgIdent.Name)

				return false
			}

			l.imports[imp.Path] = imp

			return true
		})

		if err != nil {
			return err
		}
	}

	return nil
}

func findImport(file *ast.File, name string) (Import, bool) {
	for _, spec := range file.Imports {
		importPath, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		if spec.Name != nil {
			if spec.Name.Name == name {
				return Import{Name: name, Path: importPath}, true
			}

			continue
		}

		if guessPackageName(importPath) == name {
			return Import{Path: importPath}, true
		}
	}

	return Import{}, false
}

// guessPackageName derives a package name from an import path the way the
// go tool's conventions usually do: last element, minus a major version
// suffix and a "go-" prefix.
func guessPackageName(importPath string) string {
	base := path.Base(importPath)
	if len(base) > 1 && base[0] == 'v' && isDigits(base[1:]) {
		base = path.Base(path.Dir(importPath))
	}

	if dot := strings.Index(base, ".v"); dot > 0 && isDigits(base[dot+2:]) {
		base = base[:dot]
	}

	base = strings.TrimPrefix(base, "go-")

	return strings.ReplaceAll(base, "-", "")
}

func isDigits(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}

func (l *loader) importList() []Import {
	imports := []Import{{Path: configImportPath}, {Path: envImportPath}}

	for _, imp := range l.imports {
		if imp.Path == configImportPath || imp.Path == envImportPath {
			continue
		}

		imports = append(imports, imp)
	}

	slices.SortFunc(imports, func(a, b Import) int {
		return strings.Compare(a.Path, b.Path)
	})

	return imports
}

func documentKey(name string, tag reflect.StructTag) string {
	for _, key := range documentTagKeys {
		tagName, _, _ := strings.Cut(tag.Get(key), ",")
		if tagName != "" && tagName != "-" {
			return tagName
		}
	}

	return snakeCase(name)
}

func partialTag(key string, tag reflect.StructTag, omitEmpty bool) string {
	parts := make([]string, 0, len(partialTagKeys))

	for _, tagKey := range partialTagKeys {
		name, _, _ := strings.Cut(tag.Get(tagKey), ",")

		switch {
		case name == "-":
			parts = append(parts, fmt.Sprintf(`%s:"-"`, tagKey))

			continue
		case name == "":
			name = key
		}

		if omitEmpty {
			name += ",omitempty"
		}

		parts = append(parts, fmt.Sprintf(`%s:%q`, tagKey, name))
	}

	return strings.Join(parts, " ")
}
