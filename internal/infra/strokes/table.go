// Package strokes loads the character stroke-count table used for name input.
package strokes

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"

	"github.com/Shan319/number-dna-analyze/internal/domain"
	"github.com/Shan319/number-dna-analyze/internal/infra/logger"
	"github.com/Shan319/number-dna-analyze/internal/ports"
)

// Table maps a character to its stroke count.
type Table map[rune]int

var _ ports.StrokeTable = Table(nil)

func (t Table) Strokes(r rune) (int, bool) {
	n, ok := t[r]
	return n, ok
}

// Load reads a table file. encoding is "utf-8" (default) or "big5".
func Load(path, encoding string, log *slog.Logger) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "strokes.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  fmt.Errorf("%v: %w", err, domain.ErrNotFound),
		}
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
	case "big5", "cp950":
		r = transform.NewReader(f, traditionalchinese.Big5.NewDecoder())
	default:
		return nil, &domain.OpError{
			Op:   "strokes.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("unsupported encoding %q: %w", encoding, domain.ErrInvalidConfig),
		}
	}

	t, err := Parse(r, log)
	if err != nil {
		return nil, &domain.OpError{Op: "strokes.load", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return t, nil
}

// Parse reads whitespace-separated lines: the character first, the stroke
// count last. Blank lines and "Column" header lines are skipped, malformed
// lines are logged and skipped.
func Parse(r io.Reader, log *slog.Logger) (Table, error) {
	log = logger.OrDiscard(log)
	t := Table{}

	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\ufeff"))
		if line == "" || strings.HasPrefix(line, "Column") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			log.Warn("strokes.skip_line", "line", lineNo, "reason", "too few columns")
			continue
		}

		ch, size := utf8.DecodeRuneInString(parts[0])
		if ch == utf8.RuneError || size != len(parts[0]) {
			log.Warn("strokes.skip_line", "line", lineNo, "reason", "first column is not one character")
			continue
		}

		n, err := strconv.Atoi(parts[len(parts)-1])
		if err != nil || n <= 0 {
			log.Warn("strokes.skip_line", "line", lineNo, "reason", "bad stroke count")
			continue
		}
		t[ch] = n
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
