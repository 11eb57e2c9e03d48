package source

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadTSV reads intervals from a tab-separated file with lines of the form
// name<TAB>start<TAB>end. Lines starting with '#' and blank lines are
// skipped. Files ending in .gz are decompressed transparently.
func LoadTSV(path string) ([]Interval, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open interval file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	return ParseTSV(reader)
}

// ParseTSV parses interval lines from r. See LoadTSV for the format.
func ParseTSV(r io.Reader) ([]Interval, error) {
	var intervals []Interval

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: expected 3 tab-separated fields, got %d", lineNum, len(fields))
		}

		start, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad start %q: %w", lineNum, fields[1], err)
		}
		end, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad end %q: %w", lineNum, fields[2], err)
		}
		if end < start {
			return nil, fmt.Errorf("line %d: end %d before start %d", lineNum, end, start)
		}

		intervals = append(intervals, Interval{Name: fields[0], Start: start, End: end})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read interval file: %w", err)
	}

	return intervals, nil
}
