package core

import (
	"bufio"
	"fmt"
	"io"

	"github.com/netserf/sarlac/pkg/errors"
	"github.com/netserf/sarlac/pkg/logging"
	"github.com/netserf/sarlac/pkg/rules"
)

// StdinMarker as the final positional argument switches input to the
// standard input stream, one transformation per line
const StdinMarker = "-"

// maxLineBytes caps a single stdin line. The default bufio.Scanner limit
// of 64 KiB is too small for real piped input; a line beyond this cap is
// still a fatal read error.
const maxLineBytes = 10 << 20

// Process runs the rule set over each input and writes every transformed
// result to out as its own line. Inputs are the args themselves, unless
// the final arg is "-": then args are ignored and inputs are the lines of
// stdin, with the trailing line terminator stripped before matching and a
// newline restored on output.
//
// A non-matching input produces no output line at all; suppression is the
// no-match behavior, and callers cannot tell it apart from the input never
// having existed. Outputs keep the relative order of their inputs.
func Process(ruleSet rules.RuleSet, args []string, stdin io.Reader, out io.Writer) error {
	logger := logging.GetLogger("core.process")

	if len(args) > 0 && args[len(args)-1] == StdinMarker {
		logger.Debug().Msg("Reading inputs from stdin")
		return processStream(ruleSet, stdin, out)
	}

	for _, input := range args {
		if err := emit(ruleSet, input, out); err != nil {
			return err
		}
	}
	return nil
}

func processStream(ruleSet rules.RuleSet, stdin io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if err := emit(ruleSet, scanner.Text(), out); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed reading input stream")
	}
	return nil
}

func emit(ruleSet rules.RuleSet, input string, out io.Writer) error {
	result, ok := ruleSet.Apply(input)
	if !ok {
		return nil
	}
	if _, err := fmt.Fprintln(out, result); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed writing output")
	}
	return nil
}
