package exclude

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltinDirectories(t *testing.T) {
	r := New(nil, nil, nil)

	assert.True(t, r.Match(".git/config"))
	assert.True(t, r.Match("node_modules/package/index.js"))
	assert.True(t, r.Match("a/b/__pycache__/mod.pyc"))
	assert.False(t, r.Match("src/main.rs"))
	assert.False(t, r.Match(".github/workflows/ci.yml"), ".github is not .git")
}

func TestBuiltinFiles(t *testing.T) {
	r := New(nil, nil, nil)

	assert.True(t, r.Match("Cargo.lock"))
	assert.True(t, r.Match("sub/dir/yarn.lock"))
	assert.True(t, r.Match(".gitignore"))
	assert.False(t, r.Match("Cargo.toml"))
}

func TestBuiltinExtensions(t *testing.T) {
	r := New(nil, nil, nil)

	assert.True(t, r.Match("image.png"))
	assert.True(t, r.Match("assets/video.mp4"))
	assert.True(t, r.Match("src/main.rs.png"), "only the final extension counts")
	assert.False(t, r.Match("image.PNG"), "extension matching is case-sensitive")
	assert.False(t, r.Match("main.go"))
}

func TestUserDirectories(t *testing.T) {
	r := New(nil, nil, []string{"generated", "docs/api"})

	assert.True(t, r.Match("generated/models.go"))
	assert.True(t, r.Match("docs/api/openapi.yaml"))
	assert.False(t, r.Match("docs/guide.md"))
	assert.True(t, r.MatchDir("generated"))

	// Rules match as raw path prefixes, so a sibling tree sharing the prefix
	// is covered too.
	assert.True(t, r.Match("generated_v2/models.go"))
	assert.True(t, r.MatchDir("generated_v2"))
}

func TestUserFiles(t *testing.T) {
	r := New([]string{"secret", "test_"}, nil, nil)

	assert.True(t, r.Match("config/secrets.yaml"), "substring of the relative path")
	assert.True(t, r.Match("pkg/test_helpers.go"), "substring of the base name")
	assert.False(t, r.Match("pkg/helpers.go"))
}

func TestUserExtensions(t *testing.T) {
	r := New(nil, []string{".tmp", "log"}, nil)

	assert.True(t, r.Match("build.tmp"))
	assert.True(t, r.Match("server.log"), "missing leading dot is normalized")
	assert.False(t, r.Match("server.logx"))
}

func TestBuiltinsAlwaysActive(t *testing.T) {
	// User configuration never disables builtin rules.
	r := New([]string{"only-this"}, []string{".only"}, []string{"only"})

	assert.True(t, r.Match(".git/HEAD"))
	assert.True(t, r.Match("package-lock.json"))
	assert.True(t, r.Match("logo.svg"))
}

func TestMatchIsDeterministic(t *testing.T) {
	r := New([]string{"a"}, []string{".b"}, []string{"c"})
	for i := 0; i < 100; i++ {
		assert.True(t, r.Match("c/file.b"))
		assert.False(t, r.Match("src/lib.go"))
	}
}

func TestNilRulesApplyBuiltinsOnly(t *testing.T) {
	var r *Rules
	assert.True(t, r.Match(".git/config"))
	assert.False(t, r.Match("src/main.rs"))
}
