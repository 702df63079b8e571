// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/MKhiriev/go-bank-validator/internal/logger"
	"github.com/MKhiriev/go-bank-validator/internal/service"
	"github.com/MKhiriev/go-bank-validator/models"
)

// ExitCommand typed as the bank code ends the interactive loop. Matching is
// case-insensitive.
const ExitCommand = "exit"

const divider = "================================================="

// errEndOfInput signals that the reader is exhausted.
var errEndOfInput = errors.New("end of input")

type inputLine struct {
	text string
	err  error
}

// Console drives validation from a line-oriented reader and writes the
// reports to out.
type Console struct {
	in         io.Reader
	out        io.Writer
	validation service.ValidationService

	// lines is fed by a single reader goroutine so prompts can also wait on
	// ctx. It is closed after the final read error.
	lines      chan inputLine
	readerOnce sync.Once

	logger *logger.Logger
}

func New(in io.Reader, out io.Writer, validation service.ValidationService, logger *logger.Logger) *Console {
	return &Console{
		in:         in,
		out:        out,
		validation: validation,
		lines:      make(chan inputLine, 1),
		logger:     logger,
	}
}

// PrintHeader writes the banner shown when the client starts.
func (c *Console) PrintHeader(version string) {
	fmt.Fprintln(c.out, divider)
	fmt.Fprintln(c.out, "   BANKING APP VALIDATION ENGINE")
	fmt.Fprintf(c.out, "   version: %s\n", version)
	fmt.Fprintln(c.out, divider)
	fmt.Fprintln(c.out)
}

// RunScenarios validates and prints every scenario in order. Only context
// cancellation stops the run early; other failures are reported inline.
func (c *Console) RunScenarios(ctx context.Context, scenarios []Scenario) error {
	for i, sc := range scenarios {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(c.out, ">>> Executing Scenario %d: %s\n", i+1, sc.Name)
		if err := c.Process(ctx, sc.Request); err != nil {
			return err
		}
	}
	return nil
}

// RunInteractive prompts for transactions until the user types ExitCommand
// as the bank code, the input ends or ctx is done. A blank order line is
// treated as a missing order.
func (c *Console) RunInteractive(ctx context.Context) error {
	fmt.Fprintf(c.out, "Enter transaction data. Type '%s' as the bank code to quit.\n\n", ExitCommand)

	for {
		req, quit, err := c.readRequest(ctx)
		switch {
		case errors.Is(err, errEndOfInput):
			c.logger.Debug().Msg("console input closed")
			return nil
		case ctx.Err() != nil:
			return ctx.Err()
		case err != nil:
			return fmt.Errorf("error reading console input: %w", err)
		case quit:
			fmt.Fprintln(c.out, "Goodbye.")
			return nil
		}

		if err = c.Process(ctx, req); err != nil {
			return err
		}
	}
}

// Process validates req and prints its report. Errors other than context
// cancellation are printed and logged, not returned.
func (c *Console) Process(ctx context.Context, req models.TransactionRequest) error {
	result, err := c.validation.ValidateTransaction(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		c.logger.Err(err).Object("request", req).Msg("transaction could not be validated")
		fmt.Fprintln(c.out, ErrorReport(req, err))
		return nil
	}

	fmt.Fprintln(c.out, Report(req, result))
	return nil
}

func (c *Console) readRequest(ctx context.Context) (models.TransactionRequest, bool, error) {
	var req models.TransactionRequest

	bank, err := c.prompt(ctx, "Bank Code (3 digits): ")
	if err != nil {
		return req, false, err
	}
	if strings.EqualFold(bank, ExitCommand) {
		return req, true, nil
	}
	req.BankCode = bank

	var order string
	fields := []struct {
		label string
		dst   *string
	}{
		{"Branch Code (Region + 3 digits): ", &req.BranchCode},
		{"Account Number (10 digits): ", &req.AccountNumber},
		{"Personal Key (6 digits): ", &req.PersonalKey},
		{"Order (CHECK or STMT): ", &order},
	}
	for _, f := range fields {
		if *f.dst, err = c.prompt(ctx, f.label); err != nil {
			return req, false, err
		}
	}
	if order != "" {
		req.OrderValue = models.Order(order)
	}

	return req, false, nil
}

func (c *Console) prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.readerOnce.Do(func() { go c.readLines() })

	fmt.Fprint(c.out, label)
	select {
	case <-ctx.Done():
		fmt.Fprintln(c.out)
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok || errors.Is(line.err, io.EOF) {
			fmt.Fprintln(c.out)
			return "", errEndOfInput
		}
		if line.err != nil {
			return "", line.err
		}
		return strings.TrimSpace(line.text), nil
	}
}

// readLines blocks on c.in for the life of the process; a pending read is
// abandoned, not interrupted, when the loop stops.
func (c *Console) readLines() {
	defer close(c.lines)

	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		c.lines <- inputLine{text: scanner.Text()}
	}

	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	c.lines <- inputLine{err: err}
}
