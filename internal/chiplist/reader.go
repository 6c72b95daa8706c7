// Package chiplist reads the chip numbers a batch is run against.
//
// The input is a plain text export with one chip number per line. Export
// tools put a "Microchip" column header on the first line; any line starting
// with that marker is dropped. Chip numbers are not validated.
package chiplist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// HeaderMarker prefixes header lines that are not chip numbers.
const HeaderMarker = "Microchip"

// Read opens path and parses it with Parse.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("chiplist.Read: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only

	chips, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("chiplist.Read %s: %w", path, err)
	}
	return chips, nil
}

// Parse returns one trimmed entry per line of r, in order, skipping lines
// that begin with HeaderMarker. Blank lines are kept as empty strings.
func Parse(r io.Reader) ([]string, error) {
	var chips []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, HeaderMarker) {
			continue
		}
		chips = append(chips, strings.TrimSpace(line))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return chips, nil
}
