package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"steamlibrarian/console"
	"steamlibrarian/core"
)

type Librarian struct {
	registry   core.LibraryRegistry
	fs         core.LocalFs
	mover      *core.GameMover
	printer    *console.Printer
	input      *bufio.Reader
	dispatcher *core.Dispatcher
}

func MakeLibrarian(registry core.LibraryRegistry, localFs core.LocalFs, printer *console.Printer, input *bufio.Reader, confirmer core.Confirmer) *Librarian {
	l := &Librarian{
		registry: registry,
		fs:       localFs,
		mover:    core.MakeGameMover(localFs, confirmer),
		printer:  printer,
		input:    input,
	}

	l.mover.OnMoveStarted(func(plan *core.MovePlan) {
		l.printer.Warn("Moving, do not interrupt...")
	})
	l.dispatcher = core.NewDispatcher(l.commands()...)
	return l
}

func (l *Librarian) commands() []core.Command {
	return []core.Command{
		core.NewCommand(`list`, "list", "list all Steam libraries and their indices", l.listLibraries).
			WithBindings(core.BindLibraries),
		core.NewCommand(`list (\d)`, "list <lib_index>", "list all games installed in the specified library", l.listGames).
			WithArgs(core.IntArg).
			WithBindings(core.BindLibraries),
		core.NewCommand(`move (\d{1,9}) (\d{1,9})`, "move <game_id> <lib_index>", "move the specified game to the specific library", l.moveGame).
			WithArgs(core.IntArg, core.IntArg).
			WithBindings(core.BindLibraries),
		core.NewCommand(`info (\d{1,9})`, "info <game_id>", "show where the specified game is installed and how large it is", l.showGame).
			WithArgs(core.IntArg).
			WithBindings(core.BindLibraries),
		core.NewCommand(`help`, "help", "display this message again", l.help).
			WithBindings(core.BindCommands),
		core.NewCommand(`exit`, "exit", "exit the program", func(args core.Args) error {
			return core.ErrExit
		}),
	}
}

func (l *Librarian) listLibraries(args core.Args) error {
	l.printer.PrintLibraryPaths(args.Libraries(0))
	return nil
}

func (l *Librarian) listGames(args core.Args) error {
	index := args.Int(0)
	games, err := core.GetGames(l.fs, index, args.Libraries(1))
	if err != nil {
		return err
	}

	l.printer.PrintGames(index, games)
	return nil
}

func (l *Librarian) moveGame(args core.Args) error {
	result, err := l.mover.MoveGame(args.Int(0), args.Int(1), args.Libraries(2))
	if err != nil {
		return err
	}

	if result.Moved {
		l.printer.Println("Done.")
	}
	return nil
}

func (l *Librarian) showGame(args core.Args) error {
	details, err := core.GetGameDetails(l.fs, args.Int(0), args.Libraries(1))
	if err != nil {
		return err
	}

	l.printer.PrintGameDetails(details)
	return nil
}

func (l *Librarian) help(args core.Args) error {
	l.printer.PrintHelp(args.Commands(0))
	return nil
}

// refresh re-reads the libraries from disk; a move may have changed them.
func (l *Librarian) refresh() *core.Env {
	libraries, err := l.registry.GetLibraryPaths()
	if err != nil {
		core.Logger.Error("failed to refresh libraries", "err", err)
	}

	return &core.Env{
		Libraries:    libraries,
		LibrariesErr: err,
	}
}

func (l *Librarian) readLine() (string, error) {
	line, err := l.input.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimSpace(line), err
}

// Run prints the help and the libraries, then reads and dispatches one command
// per line until exit or end of input.
func (l *Librarian) Run() error {
	l.printer.PrintHelp(l.dispatcher.Commands())
	if env := l.refresh(); env.LibrariesErr != nil {
		l.report(env.LibrariesErr)
	} else {
		l.printer.PrintLibraryPaths(env.Libraries)
	}

	for {
		fmt.Fprint(l.printer.Out(), "> ")
		line, err := l.readLine()
		if err == io.EOF {
			l.printer.Println()
			return nil
		}
		if err != nil {
			return err
		}

		err = l.dispatcher.Dispatch(line, l.refresh())
		if errors.Is(err, core.ErrExit) {
			return nil
		}
		if err != nil {
			l.report(err)
		}
	}
}

func (l *Librarian) report(err error) {
	var partial *core.PartialMoveError
	var cleanup *core.SourceCleanupError

	switch {
	case errors.Is(err, core.ErrUnknownCommand):
		l.printer.Println("Unknown command.")
		return
	case errors.As(err, &partial):
		l.printer.Error("Move incomplete: " + partial.Error())
		l.printer.Error("Move the manifest into the target library's steamapps folder by hand before starting Steam.")
	case errors.As(err, &cleanup):
		l.printer.Error("Move finished, but the original could not be removed: " + err.Error())
		l.printer.Error("Delete the leftover copy in the source library by hand.")
	case errors.Is(err, core.ErrNoSuchLibrary):
		l.printer.Error("No such library.")
	case errors.Is(err, core.ErrAlreadyInTarget):
		l.printer.Error("The specified game is already in the target library.")
	case errors.Is(err, core.ErrGameNotFound):
		l.printer.Error("Cannot find game in any library.")
	case errors.Is(err, core.ErrDestinationExists):
		l.printer.Error("Cannot move: " + err.Error())
	default:
		l.printer.Error(err.Error())
	}

	core.Logger.Error("command failed", "err", err)
}
