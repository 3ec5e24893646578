package e2e

import (
	"github.com/lefinal/acegen/entity"
	"github.com/lefinal/meh"
	"github.com/stretchr/testify/suite"
	"os"
	"path/filepath"
	"testing"
)

// makeActionSuite tests the make:action command.
type makeActionSuite struct {
	suite.Suite
	contextDir string
}

func (suite *makeActionSuite) SetupTest() {
	suite.contextDir = suite.T().TempDir()
}

func (suite *makeActionSuite) run(input *fakeInput, args ...string) result {
	return run(suite.T(), input, append([]string{"--dir", suite.contextDir, "make:action"}, args...)...)
}

func (suite *makeActionSuite) read(relFilename string) string {
	return readFile(suite.T(), suite.contextDir, relFilename)
}

func (suite *makeActionSuite) TestSingle() {
	r := suite.run(nil, "StoreUserFromForm")
	suite.Require().NoError(r.err, "should not fail")
	suite.Equal([]string{"DONE:    create app/actions/store_user_from_form.ts"}, r.lines())
	content := suite.read("app/actions/store_user_from_form.ts")
	suite.Contains(content, "type Params = {}")
	suite.Contains(content, "export default class StoreUserFromForm {")
	suite.Contains(content, "static async handle({}: Params) {")
	suite.NotContains(content, "---", "should strip front matter")
}

func (suite *makeActionSuite) TestFeatureAndHTTP() {
	r := suite.run(nil, "--feature", "users", "--http", "update_user_from_form")
	suite.Require().NoError(r.err, "should not fail")
	suite.Equal([]string{"DONE:    create app/actions/users/update_user_from_form.ts"}, r.lines())
	content := suite.read("app/actions/users/update_user_from_form.ts")
	suite.Contains(content, "import { inject } from '@adonisjs/core'")
	suite.Contains(content, "@inject()\nexport default class UpdateUserFromForm {")
	suite.Contains(content, "constructor(protected ctx: HttpContext) {}")
}

func (suite *makeActionSuite) TestShortFlags() {
	r := suite.run(nil, "-f", "admin/accounts", "-c", "users/GetUser")
	suite.Require().NoError(r.err, "should not fail")
	suite.Equal([]string{"DONE:    create app/actions/admin/accounts/users/get_user.ts"}, r.lines())
}

func (suite *makeActionSuite) TestResource() {
	r := suite.run(nil, "--resource", "user")
	suite.Require().NoError(r.err, "should not fail")
	suite.Equal([]string{
		"DONE:    create app/actions/users/get_user.ts",
		"DONE:    create app/actions/users/get_users.ts",
		"DONE:    create app/actions/users/store_user.ts",
		"DONE:    create app/actions/users/update_user.ts",
		"DONE:    create app/actions/users/destroy_user.ts",
	}, r.lines(), "should create all actions in order")
	suite.Contains(suite.read("app/actions/users/get_user.ts"), "static async handle({ id }: Params) {")
	suite.Contains(suite.read("app/actions/users/get_users.ts"), "static async handle({}: Params) {")
	suite.Contains(suite.read("app/actions/users/destroy_user.ts"), "export default class DestroyUser {")
}

func (suite *makeActionSuite) TestResourceHTTP() {
	r := suite.run(nil, "-r", "-c", "users")
	suite.Require().NoError(r.err, "should not fail")
	suite.Len(r.lines(), 5)
	suite.Contains(suite.read("app/actions/users/update_user.ts"), "async handle({ id }: Params) {")
	suite.Contains(suite.read("app/actions/users/update_user.ts"), "@inject()")
	suite.Contains(suite.read("app/actions/users/get_users.ts"), "@inject()")
}

func (suite *makeActionSuite) TestResourceIgnoresFeature() {
	r := suite.run(nil, "--resource", "--feature", "admin", "user")
	suite.Require().NoError(r.err, "should not fail")
	suite.FileExists(filepath.Join(suite.contextDir, "app", "actions", "users", "get_user.ts"))
	suite.NoDirExists(filepath.Join(suite.contextDir, "app", "actions", "admin"))
}

func (suite *makeActionSuite) TestSkipExisting() {
	r := suite.run(nil, "GetUser")
	suite.Require().NoError(r.err, "first run should not fail")
	writeFile(suite.T(), suite.contextDir, "app/actions/get_user.ts", "custom")

	r = suite.run(nil, "GetUser")
	suite.Require().NoError(r.err, "second run should not fail")
	suite.Equal([]string{"SKIPPED: create app/actions/get_user.ts (file already exists)"}, r.lines())
	suite.Equal("custom", suite.read("app/actions/get_user.ts"), "should keep existing file")
}

func (suite *makeActionSuite) TestForce() {
	writeFile(suite.T(), suite.contextDir, "app/actions/get_user.ts", "custom")
	r := suite.run(nil, "--force", "GetUser")
	suite.Require().NoError(r.err, "should not fail")
	suite.Equal([]string{"DONE:    create app/actions/get_user.ts"}, r.lines())
	suite.Contains(suite.read("app/actions/get_user.ts"), "export default class GetUser {")
}

func (suite *makeActionSuite) TestInvalidName() {
	r := suite.run(nil, "get$user")
	suite.Require().Error(r.err, "should fail")
	suite.Equal(entity.ErrInvalidName, meh.ErrorCode(r.err), "should fail with invalid name")
	suite.NoDirExists(filepath.Join(suite.contextDir, "app"), "should not write anything")
}

func (suite *makeActionSuite) TestTooManyArgs() {
	r := suite.run(nil, "GetUser", "--http")
	suite.Require().Error(r.err, "should fail")
	suite.Equal(meh.ErrBadInput, meh.ErrorCode(r.err))
}

func (suite *makeActionSuite) TestRequestName() {
	input := &fakeInput{answers: []string{"get$user", "GetUser"}}
	r := suite.run(input, "--feature", "users")
	suite.Require().NoError(r.err, "should not fail")
	suite.Equal([]string{"Name of the action"}, input.requested, "should request name")
	suite.Equal([]string{"DONE:    create app/actions/users/get_user.ts"}, r.lines())
}

func (suite *makeActionSuite) TestRequestNameCanceled() {
	r := suite.run(&fakeInput{}, "")
	suite.Require().Error(r.err, "should fail")
	suite.Equal(meh.ErrBadInput, meh.ErrorCode(r.err))
}

func (suite *makeActionSuite) TestProjectConfig() {
	writeFile(suite.T(), suite.contextDir, "acegen.yaml", "actionsDir: src/actions\nfileExtension: .js\n")
	r := suite.run(nil, "GetUser")
	suite.Require().NoError(r.err, "should not fail")
	suite.Equal([]string{"DONE:    create src/actions/get_user.js"}, r.lines())
}

func (suite *makeActionSuite) TestProjectStubs() {
	writeFile(suite.T(), suite.contextDir, "stubs/make/action/main.stub",
		"---\nto: '{{ .Paths.Actions }}/{{ .Entity.Filename | kebab }}.custom'\n---\n// {{ .Entity.Name }}\n")
	r := suite.run(nil, "GetUser")
	suite.Require().NoError(r.err, "should not fail")
	suite.Equal([]string{"DONE:    create app/actions/get-user.custom"}, r.lines())
	suite.Equal("// GetUser\n", suite.read("app/actions/get-user.custom"))
}

func (suite *makeActionSuite) TestBrokenProjectStub() {
	writeFile(suite.T(), suite.contextDir, "stubs/make/action/resource.stub", "---\nto: x.ts\n---\n{{ .Unknown }}")
	r := suite.run(nil, "--resource", "users")
	suite.Require().Error(r.err, "should fail")
	lines := r.lines()
	suite.Require().Len(lines, 5, "should attempt all files")
	suite.Contains(lines[0], "ERROR:")
	suite.Equal("DONE:    create app/actions/users/get_users.ts", lines[1], "should continue after failure")
	_, err := os.Stat(filepath.Join(suite.contextDir, "x.ts"))
	suite.True(os.IsNotExist(err), "should not write broken stub")
}

func TestMakeAction(t *testing.T) {
	suite.Run(t, new(makeActionSuite))
}
