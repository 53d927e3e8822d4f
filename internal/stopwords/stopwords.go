// Package stopwords loads stop-word lists from files.
package stopwords

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadFile reads one stop word per line from the provided file path,
// lowercased for case-folded matching.
func LoadFile(path string) (map[string]struct{}, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only stop-word list.
			_ = cerr
		}
	}()

	words := map[string]struct{}{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("stop-word list is empty")
	}
	return words, nil
}
