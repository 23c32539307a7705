package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"

	"steamlibrarian/console"
	"steamlibrarian/core"
	"steamlibrarian/platform"
)

func initLogging(ops *core.Options) {
	var err error
	if ops.LogLocation != "" {
		err = core.InitLoggingWithPath(ops.LogLocation, ops.Verbose)
	} else {
		err = core.InitLoggingWithDefaultPath(ops.Verbose)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
	}
}

func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

func makeConfirmer(ops *core.Options, printer *console.Printer, input *bufio.Reader) core.Confirmer {
	if !ops.PlainPrompt && isInteractive() {
		return &huhConfirmer{printer: printer}
	}

	return &lineConfirmer{printer: printer, input: input}
}

func main() {
	ops := &core.Options{}
	if _, err := flags.Parse(ops); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}

	perfs := core.GetCurrentLibrarianPerfsOrDefault()
	if ops.SetSteamPath != "" {
		perfs.SteamPath = filepath.Clean(ops.SetSteamPath)
		if err := core.CommitLibrarianPerfs(perfs); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Println("Steam location saved!")
		return
	}

	ops.Apply(perfs)
	initLogging(ops)

	printer := console.NewPrinter(os.Stdout, os.Stderr)

	steamPath := ops.SteamPath
	if steamPath == "" {
		var ok bool
		steamPath, ok = platform.GetSteamPath()
		if !ok {
			printer.Error("Cannot find Steam install location.")
			os.Exit(1)
		}
	}
	core.Logger.Info("starting", "steam", steamPath, "libraryFolders", ops.LibraryFolders)

	localFs := core.GetDefaultLocalFs()
	input := bufio.NewReader(os.Stdin)
	registry := core.MakeLibraryRegistry(steamPath, localFs, ops.LibraryFolders)
	librarian := MakeLibrarian(registry, localFs, printer, input, makeConfirmer(ops, printer, input))

	if err := librarian.Run(); err != nil {
		printer.Error(err.Error())
		os.Exit(1)
	}
}
