package icicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildTree() *Command {
	root := New("root")
	root.Command("sub").Alias("alias")

	return root
}

func TestCommand_ResolveSubcommand(t *testing.T) {
	root := buildTree()

	cmd, args, _ := root.Parse([]string{"sub", "file1.txt", "file2.txt"})
	assert.Equal(t, "sub", cmd.Name())
	assert.Equal(t, []string{"file1.txt", "file2.txt"}, args.Pos(),
		"tokens after the matched subcommand should be positionals")
}

func TestCommand_ResolveAlias(t *testing.T) {
	root := buildTree()

	cmd, _, _ := root.Parse([]string{"alias"})
	assert.Equal(t, "sub", cmd.Name(), "an alias should resolve to its command")
}

func TestCommand_ResolveRootWhenNoMatch(t *testing.T) {
	root := buildTree()

	cmd, args, _ := root.Parse([]string{"unknown"})
	assert.Same(t, root, cmd, "an unmatched first token should leave the root matched")
	assert.Equal(t, []string{"unknown"}, args.Pos(),
		"the token which ended subcommand matching must still be classified")
}

func TestCommand_ResolveFirstMatchWins(t *testing.T) {
	root := New("root")
	a := New("a")
	b := New("a").Alias("b")
	root.Add(a).Add(b)

	cmd, _, _ := root.Parse([]string{"a"})
	assert.Same(t, a, cmd, "children should be scanned in attachment order, first exact match wins")

	cmd, _, _ = root.Parse([]string{"b"})
	assert.Same(t, b, cmd)
}

func TestCommand_ResolveNested(t *testing.T) {
	root := New("root")
	root.Command("service").Command("start")

	cmd, args, _ := root.Parse([]string{"service", "start", "--now"})
	assert.Equal(t, "start", cmd.Name())
	assert.True(t, args.Has("--now"))
}

func TestCommand_NoResolutionAfterPositionalMode(t *testing.T) {
	root := New("root")
	root.Command("sub")

	cmd, args, _ := root.Parse([]string{"stray", "sub"})
	assert.Same(t, root, cmd,
		"subcommand matching must never resume once a token has failed to match")
	assert.Equal(t, []string{"stray", "sub"}, args.Pos())
}

func TestCommand_NoResolutionAfterTerminator(t *testing.T) {
	root := New("root")
	root.Command("sub")

	cmd, args, _ := root.Parse([]string{"--", "sub"})
	assert.Same(t, root, cmd, "'--' fails subcommand matching and ends it for good")
	assert.Equal(t, []string{"sub"}, args.Pos())
}

func TestCommand_ResolveHelpCallback(t *testing.T) {
	var called string
	rootHelp := func(reason HelpReason, cmd *Command, args *Args) { called = "root" }
	subHelp := func(reason HelpReason, cmd *Command, args *Args) { called = "sub" }

	root := New("root").Help(rootHelp)
	sub := root.Command("sub")
	sub.Command("leaf")

	_, _, helpFn := root.Parse([]string{"sub", "leaf"})
	assert.NotNil(t, helpFn, "descendants without their own help should inherit the nearest ancestor's")
	helpFn(HelpReason{}, root, nil)
	assert.Equal(t, "root", called)

	sub.Help(subHelp)
	_, _, helpFn = root.Parse([]string{"sub", "leaf"})
	helpFn(HelpReason{}, root, nil)
	assert.Equal(t, "sub", called, "the deepest matched command with a help callback should win")
}

func TestCommand_ParseNeverFails(t *testing.T) {
	root := New("root")

	cmd, args, _ := root.Parse([]string{"--unknown=1", "-zzz", "whatever", "--", "-even-this"})
	assert.Same(t, root, cmd)
	assert.True(t, args.Has("--unknown"))
	assert.True(t, args.Has("-z"))
	assert.Equal(t, []string{"whatever", "-even-this"}, args.Pos())
}

func TestCommand_ParseIdempotence(t *testing.T) {
	root := New("root")
	root.Command("sub")
	argv := []string{"sub", "--flag=1", "pos1", "--", "-pos2"}

	cmd1, args1, _ := root.Parse(argv)
	cmd2, args2, _ := root.Parse(argv)

	assert.Same(t, cmd1, cmd2, "re-parsing the same tokens against an unmodified tree should match the same command")
	assert.Equal(t, args1.Opts(), args2.Opts())
	assert.Equal(t, args1.Pos(), args2.Pos())
}

func TestCommand_ParseString(t *testing.T) {
	root := New("root")
	root.Command("sub")

	cmd, args, _, err := root.ParseString(`sub --msg="hello there" trailing`)
	assert.Nil(t, err)
	assert.Equal(t, "sub", cmd.Name())

	msg, _ := args.GetString("--msg")
	assert.Equal(t, "hello there", msg)
	assert.Equal(t, []string{"trailing"}, args.Pos())
}
