package email

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// addressPattern matches local-part@domain with a final label of 2-4 word
// characters. \w is ASCII-only here: addresses containing non-ASCII word
// characters do not validate.
var addressPattern = regexp.MustCompile(`^[\w\-.]+@(?:[\w-]+\.)+[\w-]{2,4}$`)

// InvalidAddressError indicates an address that failed syntactic validation
type InvalidAddressError struct {
	Address string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid email address: %s", e.Address)
}

// Validate checks every address against the address pattern and fails on the
// first invalid one. Validation is all-or-nothing: no valid subset proceeds
// when any address is invalid.
func Validate(addresses []string) error {
	for _, addr := range addresses {
		if !addressPattern.MatchString(addr) {
			return &InvalidAddressError{Address: addr}
		}
	}
	return nil
}

// Collector obtains candidate addresses from exactly one of three sources:
// an input file, an explicit list, or line-by-line from a reader (stdin)
type Collector struct {
	inputFile string
	list      []string
	stdin     io.Reader
	logger    *zap.Logger
}

// NewCollector creates a new address collector
func NewCollector(inputFile string, list []string, stdin io.Reader, logger *zap.Logger) *Collector {
	return &Collector{
		inputFile: inputFile,
		list:      list,
		stdin:     stdin,
		logger:    logger,
	}
}

// Collect reads the candidate addresses from the highest-priority configured
// source (file, then explicit list, then stdin) and validates them
func (c *Collector) Collect() ([]string, error) {
	var addresses []string

	switch {
	case c.inputFile != "":
		file, err := os.Open(c.inputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer file.Close()

		addresses, err = readLines(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file %s: %w", c.inputFile, err)
		}
		c.logger.Debug("Read addresses from file",
			zap.String("file", c.inputFile),
			zap.Int("count", len(addresses)))

	case len(c.list) > 0:
		addresses = c.list
		c.logger.Debug("Using addresses from arguments", zap.Int("count", len(addresses)))

	default:
		var err error
		addresses, err = readLines(c.stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read addresses from stdin: %w", err)
		}
		c.logger.Debug("Read addresses from stdin", zap.Int("count", len(addresses)))
	}

	if err := Validate(addresses); err != nil {
		return nil, err
	}

	return addresses, nil
}

// readLines reads one address per line, trimming surrounding whitespace.
// Blank lines are kept: they fail validation, exactly as any other malformed
// address would.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
