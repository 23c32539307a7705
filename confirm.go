package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"steamlibrarian/console"
	"steamlibrarian/core"
)

type lineConfirmer struct {
	printer *console.Printer
	input   *bufio.Reader
}

func (c *lineConfirmer) Confirm(plan *core.MovePlan) (bool, error) {
	c.printer.PrintMovePlan(plan)
	fmt.Fprint(c.printer.Out(), "Ready? (y/N) ")

	answer, err := c.input.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}

type huhConfirmer struct {
	printer *console.Printer
}

func (c *huhConfirmer) Confirm(plan *core.MovePlan) (bool, error) {
	c.printer.PrintMovePlan(plan)

	ready := false
	err := huh.NewConfirm().
		Title("Ready?").
		Affirmative("Yes").
		Negative("No").
		Value(&ready).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return ready, nil
}
