package commands

import (
	"slices"
	"strings"
)

const (
	secretMask = "******"
)

// CustomCmd is a generic command with explicit program and arguments.
type CustomCmd struct {
	name    string
	args    []string
	env     []string
	secrets []string
}

func NewCmd(name string, args ...string) *CustomCmd {
	return &CustomCmd{
		name: name,
		args: args,
	}
}

// WithEnv appends KEY=VALUE pairs to the process environment of the command.
func (c *CustomCmd) WithEnv(env ...string) *CustomCmd {
	c.env = append(c.env, env...)
	return c
}

// WithSecret masks arguments equal to any of values in String. Empty values are ignored.
func (c *CustomCmd) WithSecret(values ...string) *CustomCmd {
	for _, value := range values {
		if value != "" {
			c.secrets = append(c.secrets, value)
		}
	}

	return c
}

func (c *CustomCmd) Name() string {
	return c.name
}

func (c *CustomCmd) Args() []string {
	return c.args
}

func (c *CustomCmd) Env() []string {
	return c.env
}

// String returns printable command line with secret arguments masked.
func (c *CustomCmd) String() string {
	parts := make([]string, 0, len(c.args)+1)
	parts = append(parts, c.name)
	for _, arg := range c.args {
		if slices.Contains(c.secrets, arg) {
			arg = secretMask
		}
		parts = append(parts, arg)
	}

	return strings.Join(parts, " ")
}
