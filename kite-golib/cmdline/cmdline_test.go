package cmdline

import (
	"bytes"
	"testing"

	"github.com/kiteco/oxyjs/kite-golib/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greetArgs struct {
	Name  string `arg:"positional,required"`
	Shout bool

	got string
}

func (g *greetArgs) Validate() error {
	if g.Name == "nobody" {
		return errors.New("nobody cannot be greeted")
	}
	return nil
}

func (g *greetArgs) Handle() error {
	g.got = "hello " + g.Name
	if g.Shout {
		g.got += "!"
	}
	return nil
}

type failArgs struct{}

func (failArgs) Handle() error { return errors.New("failed") }

func commands(g *greetArgs) []Command {
	return []Command{
		{Name: "greet", Synopsis: "say hello", Args: g},
		{Name: "fail", Synopsis: "always fails", Args: &failArgs{}},
	}
}

func TestDispatch(t *testing.T) {
	var buf bytes.Buffer
	var g greetArgs
	require.NoError(t, Dispatch(&buf, []string{"greet", "--shout", "world"}, commands(&g)...))
	assert.Equal(t, "hello world!", g.got)
}

func TestDispatch_HandlerError(t *testing.T) {
	var buf bytes.Buffer
	err := Dispatch(&buf, []string{"fail"}, commands(&greetArgs{})...)
	assert.EqualError(t, err, "failed")
}

func TestDispatch_Validate(t *testing.T) {
	var buf bytes.Buffer
	var g greetArgs
	err := Dispatch(&buf, []string{"greet", "nobody"}, commands(&g)...)
	assert.EqualError(t, err, "nobody cannot be greeted")
	assert.Empty(t, g.got)
}

func TestDispatch_Usage(t *testing.T) {
	var buf bytes.Buffer
	err := Dispatch(&buf, nil, commands(&greetArgs{})...)
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "say hello")

	buf.Reset()
	err = Dispatch(&buf, []string{"bogus"}, commands(&greetArgs{})...)
	assert.EqualError(t, err, "unknown command bogus")
}

func TestDispatch_Help(t *testing.T) {
	var buf bytes.Buffer
	err := Dispatch(&buf, []string{"help"}, commands(&greetArgs{})...)
	assert.Equal(t, ErrHelp, err)
	assert.Contains(t, buf.String(), "always fails")

	buf.Reset()
	err = Dispatch(&buf, []string{"help", "greet"}, commands(&greetArgs{})...)
	assert.Equal(t, ErrHelp, err)
	assert.Contains(t, buf.String(), "--shout")
}
