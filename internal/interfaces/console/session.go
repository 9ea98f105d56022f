// Package console implements the interactive shipping quote session.
//
// A session walks a fixed sequence of steps: greet, read the weight, check
// it, read width, height and length, check the size, then print the quote.
// Any failed step ends the session; there is no retry.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/burakkgenccc/package-express/internal/application/dto"
	"github.com/burakkgenccc/package-express/internal/application/port"
	"github.com/burakkgenccc/package-express/internal/application/shipping"
	"github.com/burakkgenccc/package-express/internal/domain/entity"
	"github.com/burakkgenccc/package-express/pkg/logger"
	"github.com/google/uuid"
)

// dimensionFields are read after the weight check, in this order.
var dimensionFields = []entity.Field{
	entity.FieldWidth,
	entity.FieldHeight,
	entity.FieldLength,
}

// InputError is returned when a line cannot be parsed as a number.
type InputError struct {
	// Field is the field being read.
	Field entity.Field

	// Input is the raw line, or empty if input ended.
	Input string

	// Err is the underlying parse error, if any.
	Err error
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return fmt.Sprintf("%s %q: %v", fieldName(e.Field), e.Input, shipping.ErrInvalidInput)
}

// Unwrap makes InputError match shipping.ErrInvalidInput.
func (e *InputError) Unwrap() []error {
	if e.Err == nil {
		return []error{shipping.ErrInvalidInput}
	}
	return []error{shipping.ErrInvalidInput, e.Err}
}

// Session is one run of the shipping quote dialogue.
type Session struct {
	in     *bufio.Reader
	out    printer
	logger port.Logger
}

// NewSession creates a session reading lines from in and writing to out.
//
// Parameters:
//   - in: source of user input, one value per line
//   - out: destination of prompts and messages
//   - log: structured logger (nil disables logging)
//
// Returns:
//   - *Session: the session, ready to Run
func NewSession(in io.Reader, out io.Writer, log port.Logger) *Session {
	if log == nil {
		log = port.NopLogger{}
	}
	return &Session{
		in:     bufio.NewReader(in),
		out:    printer{w: out},
		logger: log,
	}
}

// Run executes the session to completion and reports how it ended.
// Every outcome, including unexpected failures and panics, is turned into a
// console message; Run never panics and never returns an error.
//
// Parameters:
//   - ctx: carries the session ID into log entries
//
// Returns:
//   - dto.SessionResult: the session outcome
func (s *Session) Run(ctx context.Context) (result dto.SessionResult) {
	sessionID := uuid.New().String()
	log := s.logger.WithContext(context.WithValue(ctx, logger.SessionIDKey, sessionID))
	result.SessionID = sessionID

	defer func() {
		if r := recover(); r != nil {
			log.Error("Panic recovered",
				"error", r,
				"stack", string(debug.Stack()),
			)
			result = s.report(log, result, fmt.Errorf("%v", r))
		}
	}()

	log.Info("Session started")

	calc := shipping.NewCalculator(log)
	if err := s.quote(calc); err != nil {
		return s.report(log, result, err)
	}

	result.Status = dto.StatusCompleted
	result.Total = calc.ComputeCost()

	fields := []interface{}{
		"dimensions", calc.Package().Dimensions().String(),
		"weight", calc.Package().Weight(),
		"total", calc.FormatCost(),
	}
	if cost, err := calc.Quote(); err == nil {
		result.Cost = &cost
		fields = append(fields, "cost", cost.String())
	} else {
		fields = append(fields, "cost_error", err.Error())
	}
	log.Info("Package quoted", fields...)
	return result
}

// quote walks the steps in order and prints the quote on success.
func (s *Session) quote(calc *shipping.Calculator) error {
	pkg := calc.Package()

	if err := s.out.line(msgWelcome); err != nil {
		return err
	}

	if err := s.readField(pkg, entity.FieldWeight); err != nil {
		return err
	}
	if !calc.ValidateWeight() {
		return fmt.Errorf("weight %v over %v: %w", pkg.Weight(), shipping.MaxWeight, shipping.ErrTooHeavy)
	}

	for _, field := range dimensionFields {
		if err := s.readField(pkg, field); err != nil {
			return err
		}
	}
	if !calc.ValidateSize() {
		return fmt.Errorf("dimension sum %v over %v: %w", pkg.Dimensions().Sum(), shipping.MaxDimensionSum, shipping.ErrTooBig)
	}

	if err := s.out.colored(green, msgTotal+calc.FormatCost()); err != nil {
		return err
	}
	return s.out.line(msgThankYou)
}

// readField prompts for a field, reads one line and stores the parsed value.
func (s *Session) readField(pkg *entity.Package, field entity.Field) error {
	if err := s.out.line(promptFor(fieldName(field))); err != nil {
		return err
	}

	line, ok, err := s.readLine()
	if err != nil {
		return err
	}
	if !ok {
		return &InputError{Field: field}
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return &InputError{Field: field, Input: line, Err: err}
	}

	pkg.Set(field, value)
	return nil
}

// readLine returns the next line without its terminator.
// ok is false when the input has ended before any character was read.
func (s *Session) readLine() (line string, ok bool, err error) {
	line, err = s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, err
		}
		if line == "" {
			return "", false, nil
		}
	}
	return strings.TrimRight(line, "\r\n"), true, nil
}

// report prints the message for an early stop and fills in the result.
func (s *Session) report(log port.Logger, result dto.SessionResult, err error) dto.SessionResult {
	result.Err = err

	var (
		inputErr *InputError
		msg      string
		c        = yellow
	)
	switch {
	case errors.As(err, &inputErr):
		result.Status = dto.StatusInvalidInput
		result.Field = string(inputErr.Field)
		msg = invalidInput(fieldName(inputErr.Field))
		log.Warn("Invalid input", "field", result.Field, "input", inputErr.Input)
	case errors.Is(err, shipping.ErrTooHeavy):
		result.Status = dto.StatusTooHeavy
		msg = msgTooHeavy
		log.Info("Package rejected", "reason", err.Error())
	case errors.Is(err, shipping.ErrTooBig):
		result.Status = dto.StatusTooBig
		msg = msgTooBig
		log.Info("Package rejected", "reason", err.Error())
	default:
		result.Status = dto.StatusFailed
		msg = msgErrorStart + err.Error()
		c = red
		log.Error("Session failed", "error", err)
	}

	if werr := s.out.colored(c, msg); werr != nil {
		log.Error("Failed to write session output", "error", werr)
	}
	return result
}

// fieldName is the lower-case name used in prompts and messages.
func fieldName(field entity.Field) string {
	return strings.ToLower(string(field))
}
