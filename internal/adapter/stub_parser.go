package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
)

const (
	selfParam       = "self"
	constructorName = "__init__"
	maxErrorText    = 60
)

// echoReturn matches the body of an echo method: return f"{self.<field>}".
var echoReturn = regexp.MustCompile(`^f(?:"|')\{self\.([A-Za-z_][A-Za-z0-9_]*)\}(?:"|')$`)

// StubParser turns the source of a corpus module into its declarations.
type StubParser interface {
	Parse(ctx context.Context, path m.Path, content []byte) (m.Module, error)
}

// TreeSitterStubParser parses Python stub modules with tree-sitter. The
// parser recovers from syntax errors, so broken headers still yield the
// declarations that follow them.
type TreeSitterStubParser struct{}

// NewTreeSitterStubParser constructs a TreeSitterStubParser.
func NewTreeSitterStubParser() *TreeSitterStubParser {
	return &TreeSitterStubParser{}
}

// Parse builds the module declared by content. The module name is the file stem.
func (p *TreeSitterStubParser) Parse(ctx context.Context, path m.Path, content []byte) (m.Module, error) {
	// sitter.Parser is not safe for concurrent use; one per call.
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		slog.Error("failed to parse stub module", "path", path, "error", err)
		return m.Module{}, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	walker := stubWalker{content: content}

	module := m.Module{
		Name: strings.TrimSuffix(filepath.Base(string(path)), filepath.Ext(string(path))),
	}

	walker.collect(root, &module)
	module.SyntaxErrors = walker.syntaxErrors(root)

	slog.Debug("parsed stub module",
		"path", path,
		"functions", len(module.Functions),
		"classes", len(module.Classes),
		"syntaxErrors", len(module.SyntaxErrors))

	return module, nil
}

type stubWalker struct {
	content []byte
}

func (w stubWalker) text(node *sitter.Node) string {
	if node == nil {
		return ""
	}

	return node.Content(w.content)
}

func line(node *sitter.Node) int {
	return int(node.StartPoint().Row) + 1
}

// collect gathers top-level declarations, looking through recovered ERROR
// regions as well.
func (w stubWalker) collect(node *sitter.Node, module *m.Module) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)

		switch child.Type() {
		case "function_definition":
			module.Functions = append(module.Functions, w.function(child))
		case "class_definition":
			module.Classes = append(module.Classes, w.class(child))
		case "decorated_definition":
			if def := child.ChildByFieldName("definition"); def != nil {
				switch def.Type() {
				case "function_definition":
					module.Functions = append(module.Functions, w.function(def))
				case "class_definition":
					module.Classes = append(module.Classes, w.class(def))
				}
			}
		case "import_statement", "import_from_statement", "future_import_statement":
			module.Imports = append(module.Imports, strings.TrimSpace(w.text(child)))
		case "expression_statement":
			if module.Doc == "" && len(module.Functions) == 0 && len(module.Classes) == 0 {
				module.Doc = w.docstring(child)
			}
		case "ERROR":
			w.collect(child, module)
		}
	}
}

func (w stubWalker) function(node *sitter.Node) m.Function {
	return m.Function{
		Name:    w.text(node.ChildByFieldName("name")),
		Params:  w.params(node.ChildByFieldName("parameters"), false),
		Returns: w.hint(node.ChildByFieldName("return_type")),
		Doc:     w.bodyDocstring(node.ChildByFieldName("body")),
		Line:    line(node),
	}
}

func (w stubWalker) class(node *sitter.Node) m.Class {
	class := m.Class{
		Name:  w.text(node.ChildByFieldName("name")),
		Field: m.Param{Type: m.HintNone},
		Line:  line(node),
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return class
	}

	class.Doc = w.bodyDocstring(body)

	// Bodies are classified once the stored field is known, wherever
	// __init__ appears in the class.
	var bodies []*sitter.Node

	for i := 0; i < int(body.NamedChildCount()); i++ {
		def := body.NamedChild(i)
		if def.Type() == "decorated_definition" {
			def = def.ChildByFieldName("definition")
		}

		if def == nil || def.Type() != "function_definition" {
			continue
		}

		name := w.text(def.ChildByFieldName("name"))
		params := w.params(def.ChildByFieldName("parameters"), true)

		if name == constructorName {
			if len(params) > 0 {
				class.Field = params[0]
			}

			continue
		}

		class.Methods = append(class.Methods, m.Method{
			Name:    name,
			Params:  params,
			Returns: w.hint(def.ChildByFieldName("return_type")),
			Doc:     w.bodyDocstring(def.ChildByFieldName("body")),
			Line:    line(def),
		})
		bodies = append(bodies, def.ChildByFieldName("body"))
	}

	for idx := range class.Methods {
		class.Methods[idx].Kind = w.classifyReturn(bodies[idx], class.Field.Name)
	}

	return class
}

func (w stubWalker) classifyReturn(body *sitter.Node, field string) m.MethodKind {
	if body == nil {
		return m.MethodUnknown
	}

	var ret *sitter.Node

	for i := 0; i < int(body.NamedChildCount()); i++ {
		if stmt := body.NamedChild(i); stmt.Type() == "return_statement" {
			ret = stmt
		}
	}

	if ret == nil || ret.NamedChildCount() == 0 {
		return m.MethodUnknown
	}

	value := ret.NamedChild(0)
	if value.Type() == "true" {
		return m.MethodPredicate
	}

	match := echoReturn.FindStringSubmatch(strings.TrimSpace(w.text(value)))
	if match != nil && match[1] == field {
		return m.MethodEcho
	}

	return m.MethodUnknown
}

// params reads typed parameters; with skipSelf the leading receiver is dropped.
func (w stubWalker) params(node *sitter.Node, skipSelf bool) []m.Param {
	params := []m.Param{}
	if node == nil {
		return params
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)

		var param m.Param

		switch child.Type() {
		case "identifier":
			param = m.Param{Name: w.text(child)}
		case "typed_parameter":
			param = m.Param{
				Name: w.text(child.NamedChild(0)),
				Type: w.hint(child.ChildByFieldName("type")),
			}
		case "default_parameter", "typed_default_parameter":
			param = m.Param{
				Name: w.text(child.ChildByFieldName("name")),
				Type: w.hint(child.ChildByFieldName("type")),
			}
		default:
			continue
		}

		if skipSelf && i == 0 && param.Name == selfParam {
			continue
		}

		params = append(params, param)
	}

	return params
}

var hintBracketSpacing = strings.NewReplacer(" [", "[", " ]", "]")

// hint normalizes annotation spacing so "dict[ str,Any ]" matches the corpus form.
func (w stubWalker) hint(node *sitter.Node) m.TypeHint {
	text := strings.Join(strings.Fields(w.text(node)), " ")
	text = strings.ReplaceAll(hintBracketSpacing.Replace(text), "[ ", "[")
	text = strings.ReplaceAll(text, " ,", ",")
	text = strings.ReplaceAll(strings.ReplaceAll(text, ", ", ","), ",", ", ")

	return m.TypeHint(text)
}

func (w stubWalker) bodyDocstring(body *sitter.Node) string {
	if body == nil || body.NamedChildCount() == 0 {
		return ""
	}

	return w.docstring(body.NamedChild(0))
}

func (w stubWalker) docstring(stmt *sitter.Node) string {
	if stmt == nil || stmt.Type() != "expression_statement" || stmt.NamedChildCount() == 0 {
		return ""
	}

	str := stmt.NamedChild(0)
	if str.Type() != "string" {
		return ""
	}

	text := strings.TrimLeft(w.text(str), "rRuUbB")
	for _, quote := range []string{`"""`, `'''`, `"`, `'`} {
		if strings.HasPrefix(text, quote) && strings.HasSuffix(text, quote) && len(text) >= 2*len(quote) {
			text = text[len(quote) : len(text)-len(quote)]
			break
		}
	}

	return strings.TrimSpace(text)
}

// syntaxErrors lists the outermost ERROR and MISSING nodes.
func (w stubWalker) syntaxErrors(root *sitter.Node) []m.SyntaxError {
	var errs []m.SyntaxError

	if !root.HasError() {
		return errs
	}

	var visit func(node *sitter.Node)
	visit = func(node *sitter.Node) {
		if node.Type() == "ERROR" || node.IsMissing() {
			errs = append(errs, m.SyntaxError{Line: line(node), Text: w.errorText(node)})
			return
		}

		for i := 0; i < int(node.ChildCount()); i++ {
			if child := node.Child(i); child.HasError() || child.IsMissing() {
				visit(child)
			}
		}
	}

	visit(root)

	return errs
}

func (w stubWalker) errorText(node *sitter.Node) string {
	if node.IsMissing() {
		return "missing " + node.Type()
	}

	text := strings.Join(strings.Fields(w.text(node)), " ")
	if len(text) > maxErrorText {
		text = text[:maxErrorText] + "..."
	}

	return text
}
