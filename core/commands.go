package core

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgument    = errors.New("bad command argument")
	// ErrExit is returned by the exit command's handler to stop the read loop.
	ErrExit = errors.New("exit requested")
)

type ArgProcessor func(arg string) (any, error)

func IntArg(arg string) (any, error) {
	return strconv.Atoi(arg)
}

// Binding names an argument a command receives implicitly, appended after the
// arguments captured from the input line.
type Binding int

const (
	BindLibraries Binding = iota
	BindCommands
)

type Args []any

func (a Args) Int(i int) int {
	return a[i].(int)
}

func (a Args) Text(i int) string {
	return a[i].(string)
}

func (a Args) Libraries(i int) Libraries {
	return a[i].(Libraries)
}

func (a Args) Commands(i int) []Command {
	return a[i].([]Command)
}

type Handler func(args Args) error

type Command struct {
	Pattern         *regexp.Regexp
	ArgProcessors   []ArgProcessor
	HelpLabel       string
	HelpDescription string
	Bindings        []Binding
	Handler         Handler
}

// NewCommand builds a command matching the whole input line against pattern.
func NewCommand(pattern string, label string, description string, handler Handler) Command {
	return Command{
		Pattern:         regexp.MustCompile(`^(?:` + pattern + `)$`),
		HelpLabel:       label,
		HelpDescription: description,
		Handler:         handler,
	}
}

func (c Command) WithArgs(processors ...ArgProcessor) Command {
	c.ArgProcessors = processors
	return c
}

func (c Command) WithBindings(bindings ...Binding) Command {
	c.Bindings = bindings
	return c
}

// Env carries the state refreshed before every dispatch.
type Env struct {
	Libraries    Libraries
	LibrariesErr error
}

type Dispatcher struct {
	commands []Command
}

func NewDispatcher(commands ...Command) *Dispatcher {
	return &Dispatcher{
		commands: append([]Command(nil), commands...),
	}
}

func (d *Dispatcher) Commands() []Command {
	return append([]Command(nil), d.commands...)
}

// Dispatch runs the first command whose pattern matches the entire line.
// ErrUnknownCommand is returned when none does.
func (d *Dispatcher) Dispatch(line string, env *Env) error {
	line = strings.TrimSpace(line)
	for _, command := range d.commands {
		match := command.Pattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		Logger.Debug("dispatching", "command", command.HelpLabel, "line", line)
		return d.invoke(command, match[1:], env)
	}

	return ErrUnknownCommand
}

func (d *Dispatcher) invoke(command Command, groups []string, env *Env) error {
	args := Args{}
	for i, group := range groups {
		if i >= len(command.ArgProcessors) {
			args = append(args, group)
			continue
		}

		value, err := command.ArgProcessors[i](group)
		if err != nil {
			return fmt.Errorf("%w: %v: %v", ErrBadArgument, command.HelpLabel, err)
		}
		args = append(args, value)
	}

	for _, binding := range command.Bindings {
		switch binding {
		case BindLibraries:
			if env.LibrariesErr != nil {
				return env.LibrariesErr
			}
			args = append(args, env.Libraries)
		case BindCommands:
			args = append(args, d.Commands())
		}
	}

	return command.Handler(args)
}
