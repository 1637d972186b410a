// Package atlas rewrites the second line of a Spine .atlas file, which
// names the texture page it binds to, from the compiled .sct extension
// back to the portable .png one.
package atlas

import (
	"bufio"
	"os"
	"strings"

	"github.com/himeope/scsp2json/errs"
)

// RewriteSecondLine reads the .atlas file at path and replaces every
// ".sct" occurrence on its second line with ".png", rewriting the file in
// place.
//
// Returns errs.ErrMissingSecondLine if the file has fewer than two lines,
// or errs.ErrMissingExtension if the second line contains no ".sct".
// Neither is necessarily fatal to a caller processing a batch of files;
// both are meant to be logged and skipped.
func RewriteSecondLine(path string) error {
	lines, err := readLines(path)
	if err != nil {
		return err
	}

	if len(lines) < 2 {
		return errs.ErrMissingSecondLine
	}

	if !strings.Contains(lines[1], ".sct") {
		return errs.ErrMissingExtension
	}

	lines[1] = strings.ReplaceAll(lines[1], ".sct", ".png")

	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines, scanner.Err()
}
