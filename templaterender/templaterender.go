// Package templaterender allows rendering stubs using Renderer.
package templaterender

import (
	"bytes"
	"fmt"
	"github.com/lefinal/acegen/entity"
	"github.com/lefinal/acegen/naming"
	"github.com/lefinal/meh"
	"gopkg.in/yaml.v3"
	"strings"
	"text/template"
)

// frontMatterDelimiter encloses the front matter at the beginning of a stub.
const frontMatterDelimiter = "---"

// Data is used as data when rendering templates with Renderer.
type Data struct {
	Entity  entity.Entity
	Feature entity.Entity
	Paths   PathData
}

// PathData for usage in Data.Paths.
type PathData struct {
	// Actions is the actions directory relative to the project directory.
	Actions string
	// Extension is the file extension of generated files including the leading
	// dot.
	Extension string
}

// FrontMatter is the YAML header of a stub.
type FrontMatter struct {
	// To is the destination filename template.
	To string `yaml:"to"`
}

// Rendered is a rendered stub.
type Rendered struct {
	// To is the rendered destination filename. It is empty if the stub has no
	// destination set.
	To       string
	Contents string
}

// Renderer allows rendering templates. Create one with New and use methods like
// Renderer.RenderStub.
type Renderer struct {
	data Data
}

// New creates a new Renderer.
func New(data Data) *Renderer {
	return &Renderer{
		data: data,
	}
}

func (renderer *Renderer) parse(str string) (*template.Template, error) {
	parsed, err := template.New("").Option("missingkey=error").Funcs(naming.FuncMap()).Parse(str)
	if err != nil {
		return nil, meh.NewBadInputErrFromErr(err, "parse", meh.Details{"str": str})
	}
	return parsed, nil
}

func (renderer *Renderer) render(str *string) error {
	if str == nil {
		return nil
	}
	parsed, err := renderer.parse(*str)
	if err != nil {
		return meh.Wrap(err, "new template", nil)
	}
	var b bytes.Buffer
	err = parsed.Execute(&b, renderer.data)
	if err != nil {
		return meh.NewBadInputErrFromErr(err, "execute template", meh.Details{
			"template":      *str,
			"template_data": fmt.Sprintf("%+v", renderer.data),
		})
	}
	*str = b.String()
	return nil
}

// RenderString renders the provided string template using the Renderer's data.
// It modifies the input string pointer in-place. If rendering fails, an error is
// returned.
func (renderer *Renderer) RenderString(str *string) error {
	err := renderer.render(str)
	if err != nil {
		return meh.Wrap(err, "render", meh.Details{"render_value": str})
	}
	return nil
}

// RenderStub splits the given stub into front matter and body and renders both.
func (renderer *Renderer) RenderStub(stub []byte) (Rendered, error) {
	frontMatter, body, err := SplitFrontMatter(string(stub))
	if err != nil {
		return Rendered{}, meh.Wrap(err, "split front matter", nil)
	}
	rendered := Rendered{
		To:       frontMatter.To,
		Contents: body,
	}
	err = renderer.RenderString(&rendered.To)
	if err != nil {
		return Rendered{}, meh.Wrap(err, "render destination", nil)
	}
	err = renderer.RenderString(&rendered.Contents)
	if err != nil {
		return Rendered{}, meh.Wrap(err, "render contents", nil)
	}
	return rendered, nil
}

// SplitFrontMatter parses the YAML front matter enclosed in --- lines at the
// beginning of the given stub and returns it along with the remaining body. If
// the stub does not start with a delimiter line, the whole stub is returned as
// body.
func SplitFrontMatter(stub string) (FrontMatter, string, error) {
	var frontMatter FrontMatter
	stub = strings.ReplaceAll(stub, "\r\n", "\n")
	if !strings.HasPrefix(stub, frontMatterDelimiter+"\n") {
		return frontMatter, stub, nil
	}
	// Keep the newline so that an empty front matter is found as well.
	rest := strings.TrimPrefix(stub, frontMatterDelimiter)
	rawFrontMatter, body, found := strings.Cut(rest, "\n"+frontMatterDelimiter+"\n")
	if !found {
		return FrontMatter{}, "", meh.NewBadInputErr("unterminated front matter", nil)
	}
	err := yaml.Unmarshal([]byte(rawFrontMatter), &frontMatter)
	if err != nil {
		return FrontMatter{}, "", meh.NewBadInputErrFromErr(err, "unmarshal front matter",
			meh.Details{"front_matter": rawFrontMatter})
	}
	return frontMatter, body, nil
}
