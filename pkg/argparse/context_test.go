package argparse

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// view flattens a parsed view into a plain structure for comparison. Flag keys are listed in
// encounter order under "keys".
func view(argv *Argv) map[string]any {
	out := map[string]any{
		"_":    argv.Positional,
		"$0":   argv.Program,
		"keys": argv.Keys(),
	}
	for _, k := range argv.Keys() {
		v, _ := argv.Get(k)
		out[k] = v
	}
	return out
}

func TestArgv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		options map[string]Option
		want    map[string]any
	}{
		{
			name: "options and aliases",
			args: []string{"widgets", "create", "foo", "-v", "--count", "3", "--name=bar"},
			options: map[string]Option{
				"verbose": {Alias: []string{"v"}, Type: Bool},
				"count":   {Type: Number},
				"name":    {Type: String},
			},
			want: map[string]any{
				"_": []string{"widgets", "create", "foo"}, "$0": "app",
				"keys":    []string{"verbose", "count", "name"},
				"verbose": true, "count": 3.0, "name": "bar",
			},
		},
		{
			name:    "negated boolean",
			args:    []string{"--no-verbose", "--no-color"},
			options: map[string]Option{"verbose": {Type: Bool, Default: true}},
			want: map[string]any{
				"_": []string(nil), "$0": "app",
				"keys":    []string{"verbose", "color"},
				"verbose": false, "color": false,
			},
		},
		{
			name:    "negated alias",
			args:    []string{"--no-v"},
			options: map[string]Option{"verbose": {Alias: []string{"v"}, Type: Bool}},
			want: map[string]any{
				"_": []string(nil), "$0": "app",
				"keys":    []string{"verbose"},
				"verbose": false,
			},
		},
		{
			name:    "non-boolean options do not negate",
			args:    []string{"--no-file"},
			options: map[string]Option{"file": {Type: String, Default: "tasks.json"}},
			want: map[string]any{
				"_": []string(nil), "$0": "app",
				"keys":    []string{"no-file", "file"},
				"no-file": true, "file": "tasks.json",
			},
		},
		{
			name: "undeclared flags are recorded",
			args: []string{"run", "--foo", "bar", "--baz"},
			want: map[string]any{
				"_": []string{"run"}, "$0": "app",
				"keys": []string{"foo", "baz"},
				"foo":  "bar", "baz": true,
			},
		},
		{
			name: "double dash ends flags",
			args: []string{"a", "--", "--x", "b"},
			want: map[string]any{
				"_": []string{"a", "--x", "b"}, "$0": "app",
				"keys": []string{},
			},
		},
		{
			name: "count and default",
			args: []string{"-v", "-v"},
			options: map[string]Option{
				"v":      {Type: Count},
				"output": {Type: String, Default: "json"},
			},
			want: map[string]any{
				"_": []string(nil), "$0": "app",
				"keys": []string{"v", "output"},
				"v":    2, "output": "json",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := New("app", tt.args)
			c.Options(tt.options)
			argv, err := c.Argv()
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, view(argv), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("argv mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("invalid number reaches fail", func(t *testing.T) {
		t.Parallel()
		c := New("app", []string{"--count", "many"})
		c.Options(map[string]Option{"count": {Type: Number}})
		var failed []error
		c.Fail(func(err error) { failed = append(failed, err) })
		_, err := c.Argv()
		require.Error(t, err)
		require.Len(t, failed, 1)
		assert.Equal(t, err, failed[0])
	})
}

func TestValidation(t *testing.T) {
	t.Parallel()

	t.Run("demand", func(t *testing.T) {
		t.Parallel()
		c := New("app", nil)
		c.Demand(1, "Please enter a valid command.")
		var failed error
		c.Fail(func(err error) { failed = err })
		_, err := c.Argv()
		require.EqualError(t, err, "Please enter a valid command.")
		assert.Equal(t, err, failed)
	})
	t.Run("demanded options", func(t *testing.T) {
		t.Parallel()
		c := New("app", nil)
		c.Options(map[string]Option{
			"name": {Type: String, Demand: true},
			"id":   {Type: String, Demand: true},
		})
		_, err := c.Argv()
		require.EqualError(t, err, "Missing required arguments: id, name")
		assert.Equal(t, map[string]bool{"id": true, "name": true}, c.Demanded())
	})
	t.Run("checks run in order", func(t *testing.T) {
		t.Parallel()
		c := New("app", []string{"x"})
		var calls []string
		c.Check(func(*Argv) error { calls = append(calls, "first"); return nil })
		c.Check(func(*Argv) error { calls = append(calls, "second"); return errors.New("boom") })
		c.Check(func(*Argv) error { calls = append(calls, "third"); return nil })
		_, err := c.Argv()
		require.EqualError(t, err, "boom")
		assert.Equal(t, []string{"first", "second"}, calls)
	})
	t.Run("help short-circuits", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		c := New("todo", []string{"--help"})
		c.SetOutput(&out)
		c.Usage("Usage: $0 <command>")
		c.Help("help")
		c.Demand(1, "never")
		c.Fail(func(error) { t.Fatal("fail must not be called for help") })
		_, err := c.Argv()
		require.ErrorIs(t, err, ErrHelp)
		assert.Contains(t, out.String(), "Usage: todo <command>")
		assert.Contains(t, out.String(), "--help")
	})
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	t.Run("walks levels", func(t *testing.T) {
		t.Parallel()
		c := New("app", []string{"widgets", "create", "--force"})
		c.Options(map[string]Option{"root-only": {Type: Bool}})
		var levels []int
		c.Command("widgets", "Manage widgets", func() (*Argv, error) {
			levels = append(levels, c.Level())
			c.Command("create", "Create a widget", func() (*Argv, error) {
				levels = append(levels, c.Level())
				c.Options(map[string]Option{"force": {Type: Bool}})
				return c.Argv()
			})
			return c.Argv()
		})
		c.Check(func(*Argv) error { return errors.New("root checks are skipped when dispatching") })

		argv, err := c.Argv()
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, levels)
		want := map[string]any{
			"_": []string{"widgets", "create"}, "$0": "app",
			"keys": []string{"force"}, "force": true,
		}
		if diff := cmp.Diff(want, view(argv), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("argv mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("enclosing options stay known", func(t *testing.T) {
		t.Parallel()
		c := New("app", []string{"-v", "widgets", "create", "foo", "--level", "2"})
		c.Options(map[string]Option{
			"verbose": {Alias: []string{"v"}, Describe: "Talk more", Type: Bool},
			"token":   {Type: String, Demand: true},
		})
		c.Help("help")
		c.Command("widgets", "", func() (*Argv, error) {
			c.Options(map[string]Option{"level": {Type: Number, Default: 1.0}})
			c.Command("create", "", func() (*Argv, error) {
				assert.Equal(t, map[string]string{"verbose": "Talk more", "token": "", "level": ""}, c.Descriptions())
				assert.Equal(t, []string{"v"}, c.Aliases()["verbose"])
				assert.Empty(t, c.Demanded(), "demands stay with the level that declared them")
				assert.NotContains(t, c.HelpText(), "--verbose", "help lists the current level only")
				return c.Argv()
			})
			return c.Argv()
		})

		argv, err := c.Argv()
		require.NoError(t, err)
		want := map[string]any{
			"_": []string{"widgets", "create", "foo"}, "$0": "app",
			"keys": []string{"verbose", "level"}, "verbose": true, "level": 2.0,
		}
		if diff := cmp.Diff(want, view(argv), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("argv mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestIntrospection(t *testing.T) {
	t.Parallel()

	c := New("app", nil)
	c.Options(map[string]Option{"verbose": {Alias: []string{"v", "no-quiet"}, Describe: "Talk more"}})
	c.Options(map[string]Option{"quiet": {}})
	assert.Equal(t, map[string][]string{"verbose": {"v", "no-quiet"}, "quiet": nil}, c.Aliases())
	assert.Equal(t, map[string]string{"verbose": "Talk more", "quiet": ""}, c.Descriptions())
	assert.Empty(t, c.Demanded())
}

func TestHelp(t *testing.T) {
	t.Parallel()

	c := New("todo", nil)
	c.Usage("Usage: $ tasks <command>")
	c.Command("add", "Add a task", nil)
	c.Command("list", "List tasks", nil)
	c.Options(map[string]Option{"verbose": {Alias: []string{"v"}, Describe: "Verbose output", Type: Bool}})
	c.Example("$0 tasks add milk", "Add a task")
	c.Help("help")

	help := c.HelpText()
	assert.Contains(t, help, "Usage: $ tasks <command>")
	assert.Contains(t, help, "Commands:\n  add     Add a task\n  list    List tasks\n")
	assert.Contains(t, help, "-v, --verbose")
	assert.Contains(t, help, "Verbose output [boolean]")
	assert.Contains(t, help, "todo tasks add milk")
}

func TestFlagName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg      string
		name     string
		hasValue bool
		ok       bool
	}{
		{"--name", "name", false, true},
		{"-n", "n", false, true},
		{"--name=x", "name", true, true},
		{"--", "", false, false},
		{"-", "", false, false},
		{"plain", "", false, false},
		{"---x", "", false, false},
	}
	for _, tt := range tests {
		name, hasValue, ok := flagName(tt.arg)
		assert.Equal(t, tt.name, name, tt.arg)
		assert.Equal(t, tt.hasValue, hasValue, tt.arg)
		assert.Equal(t, tt.ok, ok, tt.arg)
	}
}
