package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/objdoc/internal/errors"
)

type cliEnv struct {
	dir    string
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newCLIEnv creates a working directory holding a page template and switches into it.
func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	env := &cliEnv{dir: t.TempDir(), stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	t.Chdir(env.dir)
	env.write(t, "_template.mdt", "# {{ .class.name }}\n\n\n{{ .class.description }}\n")
	return env
}

func (e *cliEnv) write(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(e.dir, name)), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(e.dir, name), []byte(content), 0o600))
}

func (e *cliEnv) read(t *testing.T, name string) string {
	t.Helper()
	// #nosec G304 -- path is controlled by test.
	data, err := os.ReadFile(filepath.Join(e.dir, name))
	require.NoError(t, err)
	return string(data)
}

func (e *cliEnv) run(t *testing.T, args ...string) error {
	t.Helper()
	var cli CLI
	g := &Global{Stdout: e.stdout, Stderr: e.stderr}
	parser, err := kong.New(&cli,
		kong.Name("objdoc"),
		kong.Bind(g),
		Vars("test"),
		kong.Writers(e.stdout, e.stderr),
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
	)
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return ctx.Run()
}

func (e *cliEnv) progress() []string {
	return strings.Fields(e.stdout.String())
}

func TestRun_DiscoversInputs(t *testing.T) {
	env := newCLIEnv(t)
	env.write(t, "a.yml", "class: {name: Alpha, description: \"Uses [Beta].\"}\n")
	env.write(t, "b.yml", "class: {name: Beta, description: \"Field [Alpha:Size].\"}\n")
	env.write(t, "readme.txt", "class: {name: Readme}\n")

	require.NoError(t, env.run(t))

	lines := env.progress()
	sort.Strings(lines)
	require.Equal(t, []string{"a.yml", "b.yml"}, lines)
	require.Equal(t, "# Alpha\n\nUses [`Beta`](Beta.md).\n", env.read(t, "Alpha.md"))
	require.Equal(t, "# Beta\n\nField [`Alpha:Size`](Alpha.md#size).\n", env.read(t, "Beta.md"))
	require.NoFileExists(t, filepath.Join(env.dir, "Readme.md"))
}

func TestRun_ExplicitPathsInOrder(t *testing.T) {
	env := newCLIEnv(t)
	env.write(t, "objects/z.txt", "class: {name: Zed, description: z}\n")
	env.write(t, "objects/a.yml", "class: {name: Ay, description: a}\n")

	require.NoError(t, env.run(t, "objects/z.txt", "objects/a.yml"))

	require.Equal(t, []string{"objects/z.txt", "objects/a.yml"}, env.progress())
	require.FileExists(t, filepath.Join(env.dir, "Zed.md"))
	require.FileExists(t, filepath.Join(env.dir, "Ay.md"))
}

func TestRun_Flags(t *testing.T) {
	env := newCLIEnv(t)
	env.write(t, "tpl/page.tmpl", "{{ .class.name }}!")
	env.write(t, "item.yaml", "class: {name: Item}\n")

	require.NoError(t, env.run(t, "--template", "tpl/page.tmpl", "--ext", ".yaml", "-o", "out"))

	require.Equal(t, "Item!", env.read(t, "out/Item.md"))
}

func TestRun_EnvironmentDefaults(t *testing.T) {
	env := newCLIEnv(t)
	t.Setenv("OBJDOC_OUTPUT", "pages")
	env.write(t, "item.yml", "class: {name: Item, description: d}\n")

	require.NoError(t, env.run(t))

	require.FileExists(t, filepath.Join(env.dir, "pages", "Item.md"))
}

func TestRun_StopsAtFirstError(t *testing.T) {
	env := newCLIEnv(t)
	env.write(t, "one.yml", "class: {name: One, description: x}\n")
	env.write(t, "two.yml", "class: [\n")
	env.write(t, "three.yml", "class: {name: Three, description: x}\n")

	err := env.run(t, "one.yml", "two.yml", "three.yml")
	require.Error(t, err)
	require.True(t, derrors.IsCategory(err, derrors.CategoryParse))

	require.Equal(t, []string{"one.yml", "two.yml"}, env.progress())
	require.FileExists(t, filepath.Join(env.dir, "One.md"))
	require.NoFileExists(t, filepath.Join(env.dir, "Three.md"))
}

func TestRun_MissingTemplate(t *testing.T) {
	env := newCLIEnv(t)
	env.write(t, "one.yml", "class: {name: One}\n")

	err := env.run(t, "--template", "missing.mdt")
	require.True(t, derrors.IsCategory(err, derrors.CategoryFileSystem))
	require.Empty(t, env.progress())
}

func TestRun_NoInputs(t *testing.T) {
	env := newCLIEnv(t)

	require.NoError(t, env.run(t))
	require.Contains(t, env.stderr.String(), "No input files found")
}

func TestRun_EmptyOptionRejected(t *testing.T) {
	env := newCLIEnv(t)
	env.write(t, "one.yml", "class: {name: One}\n")

	err := env.run(t, "--ext=")
	require.True(t, derrors.IsCategory(err, derrors.CategoryConfig))
	require.Empty(t, env.progress())
	require.NoFileExists(t, filepath.Join(env.dir, "One.md"))
}
