package templaterender

import (
	"github.com/lefinal/acegen/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"testing"
)

// RendererSuite tests Renderer.
type RendererSuite struct {
	suite.Suite
	renderer *Renderer
}

func (suite *RendererSuite) SetupTest() {
	suite.renderer = New(Data{
		Entity:  entity.Entity{Name: "UpdateUserFromForm", Path: "users"},
		Feature: entity.Entity{},
		Paths: PathData{
			Actions:   "app/actions",
			Extension: ".ts",
		},
	})
}

func (suite *RendererSuite) TestRenderString() {
	str := "export default class {{ .Entity.Name }} {"
	err := suite.renderer.RenderString(&str)
	suite.Require().NoError(err, "render should not fail")
	suite.Equal("export default class UpdateUserFromForm {", str)
}

func (suite *RendererSuite) TestRenderStringNamingFuncs() {
	str := "{{ snake .Entity.Name }} {{ camel .Entity.Name }} {{ kebab .Entity.Name }} {{ plural \"user\" }} {{ singular \"users\" }}"
	err := suite.renderer.RenderString(&str)
	suite.Require().NoError(err, "render should not fail")
	suite.Equal("update_user_from_form updateUserFromForm update-user-from-form users user", str)
}

func (suite *RendererSuite) TestRenderStringMissingKey() {
	str := "{{ .Entity.Unknown }}"
	err := suite.renderer.RenderString(&str)
	suite.Error(err, "should fail")
}

func (suite *RendererSuite) TestRenderStringInvalidTemplate() {
	str := "{{ .Entity.Name "
	err := suite.renderer.RenderString(&str)
	suite.Error(err, "should fail")
}

func (suite *RendererSuite) TestRenderStringNil() {
	err := suite.renderer.RenderString(nil)
	suite.NoError(err, "should not fail")
}

func (suite *RendererSuite) TestRenderStub() {
	stub := "---\nto: '{{ .Paths.Actions }}/{{ .Entity.Path }}/{{ .Entity.Filename }}{{ .Paths.Extension }}'\n---\n" +
		"export default class {{ .Entity.Name }} {\n}\n"
	rendered, err := suite.renderer.RenderStub([]byte(stub))
	suite.Require().NoError(err, "render should not fail")
	suite.Equal("app/actions/users/update_user_from_form.ts", rendered.To, "should render destination")
	suite.Equal("export default class UpdateUserFromForm {\n}\n", rendered.Contents, "should render contents")
}

func (suite *RendererSuite) TestRenderStubWithoutFrontMatter() {
	rendered, err := suite.renderer.RenderStub([]byte("class {{ .Entity.Name }}"))
	suite.Require().NoError(err, "render should not fail")
	suite.Equal("", rendered.To, "should have no destination")
	suite.Equal("class UpdateUserFromForm", rendered.Contents)
}

func TestRenderer(t *testing.T) {
	suite.Run(t, new(RendererSuite))
}

func TestSplitFrontMatter(t *testing.T) {
	tests := []struct {
		name            string
		stub            string
		wantFrontMatter FrontMatter
		wantBody        string
		wantErr         bool
	}{
		{
			name:            "ok",
			stub:            "---\nto: a/b.ts\n---\nbody\n",
			wantFrontMatter: FrontMatter{To: "a/b.ts"},
			wantBody:        "body\n",
		},
		{
			name:            "windows line endings",
			stub:            "---\r\nto: a/b.ts\r\n---\r\nbody\r\n",
			wantFrontMatter: FrontMatter{To: "a/b.ts"},
			wantBody:        "body\n",
		},
		{
			name:            "empty front matter",
			stub:            "---\n---\nbody",
			wantFrontMatter: FrontMatter{},
			wantBody:        "body",
		},
		{
			name:     "no front matter",
			stub:     "body",
			wantBody: "body",
		},
		{
			name:    "unterminated",
			stub:    "---\nto: a/b.ts\nbody",
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			stub:    "---\nto: [\n---\nbody",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frontMatter, body, err := SplitFrontMatter(tt.stub)
			if tt.wantErr {
				assert.Error(t, err, "should fail")
				return
			}
			require.NoError(t, err, "should not fail")
			assert.Equal(t, tt.wantFrontMatter, frontMatter, "should return correct front matter")
			assert.Equal(t, tt.wantBody, body, "should return correct body")
		})
	}
}
