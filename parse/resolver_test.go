package parse

import (
	"testing"

	"github.com/saylorsolutions/clix/rule"
	"github.com/saylorsolutions/clix/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustResolver(t *testing.T, rules ...rule.Rule) *Resolver {
	t.Helper()
	r, err := NewResolver(rules...)
	require.NoError(t, err)
	return r
}

func TestNewResolver_InvalidTree(t *testing.T) {
	_, err := NewResolver(
		rule.NewFlag("--force"),
		rule.NewParameter("--force"),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, &rule.DuplicateKeywordError{})
}

func TestResolve_Parameter(t *testing.T) {
	r := mustResolver(t, rule.NewParameter("-p", "--port"))
	tests := map[string]struct {
		tokens []string
	}{
		"separate token": {tokens: []string{"--port", "8080"}},
		"embedded value": {tokens: []string{"--port=8080"}},
		"short keyword":  {tokens: []string{"-p", "8080"}},
		"short embedded": {tokens: []string{"-p=8080"}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctx, err := r.Resolve(tc.tokens)
			require.NoError(t, err)
			got, ok := ctx.Value("port")
			require.True(t, ok)
			assert.Equal(t, "8080", got)
		})
	}
}

func TestResolve_TypedParameter(t *testing.T) {
	r := mustResolver(t, rule.NewParameter("--port").Typed(value.Int))
	ctx, err := r.Resolve([]string{"--port", "8080"})
	require.NoError(t, err)
	got, ok := ctx.Value("port")
	require.True(t, ok)
	assert.Equal(t, 8080, got)

	_, err = r.Resolve([]string{"--port", "eighty"})
	require.Error(t, err)
	assert.ErrorIs(t, err, &value.ConversionError{})
}

func TestResolve_ParameterRepeats(t *testing.T) {
	t.Run("last occurrence wins", func(t *testing.T) {
		r := mustResolver(t, rule.NewParameter("--level"))
		ctx, err := r.Resolve([]string{"--level", "1", "--level", "2"})
		require.NoError(t, err)
		got, _ := ctx.Value("level")
		assert.Equal(t, "2", got)
	})
	t.Run("multiple accumulates", func(t *testing.T) {
		r := mustResolver(t, rule.NewParameter("-t", "--tag").Multiple())
		ctx, err := r.Resolve([]string{"-t", "a", "--tag", "b"})
		require.NoError(t, err)
		got, ok := ctx.Value("tag")
		require.True(t, ok)
		assert.Equal(t, []any{"a", "b"}, got)
	})
	t.Run("multiple defaults to empty", func(t *testing.T) {
		r := mustResolver(t, rule.NewParameter("--tag").Multiple().Default("never"))
		ctx, err := r.Resolve(nil)
		require.NoError(t, err)
		got, ok := ctx.Value("tag")
		require.True(t, ok)
		assert.Equal(t, []any{}, got)
	})
}

func TestResolve_MissingValue(t *testing.T) {
	r := mustResolver(t, rule.NewParameter("--name"))
	_, err := r.Resolve([]string{"--name"})
	require.Error(t, err)
	var missing *MissingValueError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "--name", missing.Keyword)
}

func TestResolve_RequiredParameter(t *testing.T) {
	r := mustResolver(t, rule.NewParameter("-n", "--name").Required())
	_, err := r.Resolve(nil)
	require.Error(t, err)
	var missing *MissingRequiredError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "name", missing.Name)
	assert.Equal(t, []string{"-n", "--name"}, missing.Keywords)

	ctx, err := r.Resolve([]string{"--name", "joe"})
	require.NoError(t, err)
	got, _ := ctx.Value("n")
	assert.Equal(t, "joe", got)
}

func TestResolve_Defaults(t *testing.T) {
	r := mustResolver(t,
		rule.NewParameter("--port").Typed(value.Int).Default(8080),
		rule.NewArgument("mode").Default("fast"),
	)
	ctx, err := r.Resolve(nil)
	require.NoError(t, err)
	port, ok := ctx.Value("port")
	require.True(t, ok)
	assert.Equal(t, 8080, port)
	mode, ok := ctx.Value("mode")
	require.True(t, ok)
	assert.Equal(t, "fast", mode)
}

func TestResolve_Flags(t *testing.T) {
	r := mustResolver(t, rule.NewFlag("-f", "--force"))
	ctx, err := r.Resolve(nil)
	require.NoError(t, err)
	raised, ok := ctx.Value("force")
	require.True(t, ok)
	assert.Equal(t, false, raised)

	ctx, err = r.Resolve([]string{"-f"})
	require.NoError(t, err)
	raised, _ = ctx.Value("force")
	assert.Equal(t, true, raised)

	// A switch ignores an embedded value, only presence matters.
	ctx, err = r.Resolve([]string{"--force=yes"})
	require.NoError(t, err)
	raised, _ = ctx.Value("force")
	assert.Equal(t, true, raised)
}

func TestResolve_CountedFlag(t *testing.T) {
	r := mustResolver(t, rule.NewFlag("-v", "--verbose").Counted())
	ctx, err := r.Resolve(nil)
	require.NoError(t, err)
	count, ok := ctx.Value("verbose")
	require.True(t, ok)
	assert.Equal(t, 0, count)

	ctx, err = r.Resolve([]string{"-v", "--verbose", "-v"})
	require.NoError(t, err)
	count, _ = ctx.Value("verbose")
	assert.Equal(t, 3, count)
}

func TestResolve_CombinedShortFlags(t *testing.T) {
	r := mustResolver(t,
		rule.NewFlag("-a", "--all"),
		rule.NewFlag("-b", "--brief"),
		rule.NewFlag("-v", "--verbose").Counted(),
	)
	ctx, err := r.Resolve([]string{"-ab", "-vvv"})
	require.NoError(t, err)
	all, _ := ctx.Value("all")
	assert.Equal(t, true, all)
	brief, _ := ctx.Value("brief")
	assert.Equal(t, true, brief)
	verbose, _ := ctx.Value("verbose")
	assert.Equal(t, 3, verbose)

	// One undeclared character spoils the whole run.
	_, err = r.Resolve([]string{"-ax"})
	assert.ErrorIs(t, err, &UnknownTokenError{})
}

func TestResolve_StaticChoices(t *testing.T) {
	r := mustResolver(t, rule.NewParameter("--answer").
		Typed(value.Int).
		Choices("42", "7").
		StrictChoices())
	ctx, err := r.Resolve([]string{"--answer", "42"})
	require.NoError(t, err)
	got, _ := ctx.Value("answer")
	assert.Equal(t, 42, got)

	// The restriction applies to the raw token, before conversion.
	_, err = r.Resolve([]string{"--answer", "4"})
	require.Error(t, err)
	var violation *value.ChoiceViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, []string{"42", "7"}, violation.Allowed)
}

func TestResolve_DynamicChoices(t *testing.T) {
	calls := 0
	r := mustResolver(t, rule.NewParameter("--region").
		ChoicesFunc(func() []string {
			calls++
			return []string{"us", "eu"}
		}).
		StrictChoices())

	_, err := r.Resolve([]string{"--region", "us", "--region", "eu"})
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "producer should run once per pass")

	_, err = r.Resolve([]string{"--region", "eu"})
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "a new pass resolves choices fresh")
}

func TestResolve_DynamicStrictChoices(t *testing.T) {
	r := mustResolver(t, rule.NewParameter("--answer").
		ChoicesFunc(func() []string { return []string{"42"} }).
		StrictChoices())

	ctx, err := r.Resolve([]string{"--answer", "42"})
	require.NoError(t, err)
	got, _ := ctx.Value("answer")
	assert.Equal(t, "42", got)

	_, err = r.Resolve([]string{"--answer", "4"})
	assert.ErrorIs(t, err, &value.ChoiceViolationError{})
}

func TestResolve_LenientChoices(t *testing.T) {
	r := mustResolver(t, rule.NewParameter("--region").Choices("us", "eu"))
	ctx, err := r.Resolve([]string{"--region", "mars"})
	require.NoError(t, err)
	got, _ := ctx.Value("region")
	assert.Equal(t, "mars", got)
}

func TestResolve_Dictionary(t *testing.T) {
	r := mustResolver(t, rule.NewDictionary("-e", "--env"))
	ctx, err := r.Resolve([]string{"-e", "HOME", "/root", "--env", "SHELL", "/bin/sh"})
	require.NoError(t, err)
	got, ok := ctx.Value("env")
	require.True(t, ok)
	assert.Equal(t, map[any]any{"HOME": "/root", "SHELL": "/bin/sh"}, got)

	_, err = r.Resolve([]string{"-e", "HOME"})
	assert.ErrorIs(t, err, &MissingValueError{})
}

func TestResolve_TypedDictionary(t *testing.T) {
	r := mustResolver(t, rule.NewDictionary("--retry").KeyTyped(value.Int).ValueTyped(value.Duration))
	ctx, err := r.Resolve([]string{"--retry", "1", "5s"})
	require.NoError(t, err)
	got, _ := ctx.Value("retry")
	entries, ok := got.(map[any]any)
	require.True(t, ok)
	assert.Len(t, entries, 1)
}

func TestResolve_Positional(t *testing.T) {
	r := mustResolver(t,
		rule.NewArgument("src").Required(),
		rule.NewArgument("dest"),
	)
	ctx, err := r.Resolve([]string{"a.txt", "b.txt"})
	require.NoError(t, err)
	src, _ := ctx.Value("src")
	assert.Equal(t, "a.txt", src)
	dest, _ := ctx.Value("dest")
	assert.Equal(t, "b.txt", dest)

	_, err = r.Resolve(nil)
	require.Error(t, err)
	var missing *MissingRequiredError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "src", missing.Name)
	assert.Empty(t, missing.Keywords)
}

func TestResolve_PositionalPerScope(t *testing.T) {
	r := mustResolver(t,
		rule.NewArgument("src"),
		rule.NewSubcommand("to").Has(rule.NewArgument("dest")),
	)
	ctx, err := r.Resolve([]string{"a.txt", "to", "b.txt"})
	require.NoError(t, err)
	src, _ := ctx.Value("src")
	assert.Equal(t, "a.txt", src)
	dest, _ := ctx.Value("dest")
	assert.Equal(t, "b.txt", dest)
}

func TestResolve_NoOuterPositionalFallback(t *testing.T) {
	r := mustResolver(t,
		rule.NewArgument("src"),
		rule.NewArgument("dest"),
		rule.NewSubcommand("push"),
	)
	// Entering the subcommand closes the root scope's open slots.
	_, err := r.Resolve([]string{"push", "a.txt"})
	require.Error(t, err)
	var unknown *UnknownTokenError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "a.txt", unknown.Token)
}

func TestResolve_Subcommands(t *testing.T) {
	r := mustResolver(t,
		rule.NewSubcommand("remote").Has(
			rule.NewSubcommand("add"),
		),
		rule.NewSubcommand("status"),
	)
	ctx, err := r.Resolve([]string{"remote", "add"})
	require.NoError(t, err)
	assert.Equal(t, []string{"remote", "add"}, ctx.Path())

	// Only the deepest scope's subcommands are live.
	_, err = r.Resolve([]string{"remote", "status"})
	assert.ErrorIs(t, err, &UnknownTokenError{})
}

func TestResolve_FlagShadowing(t *testing.T) {
	r := mustResolver(t,
		rule.NewFlag("--force"),
		rule.NewSubcommand("run").Has(rule.NewFlag("--force")),
	)
	ctx, err := r.Resolve([]string{"run", "--force"})
	require.NoError(t, err)
	raised, _ := ctx.Value("force")
	assert.Equal(t, true, raised)

	// Raised before entering the scope, the keyword binds the outer
	// declaration and the inner one still reads as unraised.
	ctx, err = r.Resolve([]string{"--force", "run"})
	require.NoError(t, err)
	raised, _ = ctx.Value("force")
	assert.Equal(t, false, raised)
}

func TestResolve_CatchAll(t *testing.T) {
	r := mustResolver(t,
		rule.NewSubcommand("exec").Has(
			rule.NewFlag("--quiet"),
			rule.NewAllArguments("cmd"),
		),
	)
	t.Run("captures verbatim to the end", func(t *testing.T) {
		ctx, err := r.Resolve([]string{"exec", "--quiet", "echo", "-n", "--quiet"})
		require.NoError(t, err)
		quiet, _ := ctx.Value("quiet")
		assert.Equal(t, true, quiet)
		cmd, _ := ctx.Value("cmd")
		assert.Equal(t, []string{"echo", "-n", "--quiet"}, cmd)
	})
	t.Run("seeded empty", func(t *testing.T) {
		ctx, err := r.Resolve([]string{"exec"})
		require.NoError(t, err)
		cmd, ok := ctx.Value("cmd")
		require.True(t, ok)
		assert.Equal(t, []string{}, cmd)
	})
}

func TestResolve_CatchAllJoined(t *testing.T) {
	r := mustResolver(t, rule.NewAllArguments("script").JoinedWith(" "))
	ctx, err := r.Resolve([]string{"echo", "-n", "hi"})
	require.NoError(t, err)
	script, _ := ctx.Value("script")
	assert.Equal(t, "echo -n hi", script)
}

func TestResolve_CatchAllDeepestOnly(t *testing.T) {
	r := mustResolver(t,
		rule.NewAllArguments("rest"),
		rule.NewSubcommand("run"),
	)
	_, err := r.Resolve([]string{"run", "anything"})
	assert.ErrorIs(t, err, &UnknownTokenError{})
}

func TestResolve_PrimaryOption(t *testing.T) {
	version := rule.NewPrimaryOption("--version")
	r := mustResolver(t, version, rule.NewParameter("--name").Required())
	ctx, err := r.Resolve([]string{"--version", "--name", "joe"})
	require.NoError(t, err)
	require.Len(t, ctx.Primaries(), 1)
	assert.Same(t, version, ctx.Primary())
	seen, _ := ctx.Value("version")
	assert.Equal(t, true, seen)
}

func TestResolve_UnknownToken(t *testing.T) {
	r := mustResolver(t, rule.NewFlag("--force"))
	_, err := r.Resolve([]string{"--bogus"})
	require.Error(t, err)
	var unknown *UnknownTokenError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "--bogus", unknown.Token)
}

func TestModesOnSameInput(t *testing.T) {
	r := mustResolver(t, rule.NewSubcommand("sub"))
	tokens := []string{"sub", "--unknown"}

	// Tolerant resolution still discovers how deep the tokens reach.
	ctx := r.ResolveDry(tokens)
	assert.Equal(t, []string{"sub"}, ctx.Path())

	_, err := r.Resolve(tokens)
	assert.ErrorIs(t, err, &UnknownTokenError{})
}

func TestResolveDry_SkipsUnknown(t *testing.T) {
	r := mustResolver(t,
		rule.NewSubcommand("deploy").Has(rule.NewFlag("--force")),
	)
	ctx := r.ResolveDry([]string{"--bogus", "deploy", "--force"})
	assert.Equal(t, []string{"deploy"}, ctx.Path())
	raised, _ := ctx.Value("force")
	assert.Equal(t, true, raised)
}

func TestResolveDry_SkipsRequirements(t *testing.T) {
	r := mustResolver(t,
		rule.NewParameter("--name").Required(),
		rule.NewParameter("--port").Default(8080),
	)
	ctx := r.ResolveDry(nil)
	_, ok := ctx.Value("name")
	assert.False(t, ok)
	// Defaults apply only during strict finalization.
	_, ok = ctx.Value("port")
	assert.False(t, ok)
}

func TestResolveDry_PartialOnBadValue(t *testing.T) {
	r := mustResolver(t,
		rule.NewParameter("--port").Typed(value.Int),
		rule.NewSubcommand("deploy"),
	)
	ctx := r.ResolveDry([]string{"--port", "abc", "deploy"})
	_, ok := ctx.Value("port")
	assert.False(t, ok)
	assert.Empty(t, ctx.Path(), "the walk ends at the failed binding")
}

func TestResolve_Reuse(t *testing.T) {
	r := mustResolver(t, rule.NewParameter("--tag").Multiple())
	for i := 0; i < 2; i++ {
		ctx, err := r.Resolve([]string{"--tag", "only"})
		require.NoError(t, err)
		got, _ := ctx.Value("tag")
		assert.Equal(t, []any{"only"}, got, "passes must not share state")
	}
}
