package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read returns at most maxLines from the end of the file at path, plus the
// byte offset immediately after the last returned line. maxLines <= 0 reads
// the whole file. A missing file yields no lines and offset zero rather than
// an error, since captures are often created after the viewer starts.
func Read(path string, maxLines int) ([]string, int64, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("open capture: %w", err)
	}
	defer file.Close()

	var (
		ring   []string
		lines  []string
		count  int
		idx    int
		offset int64
	)
	if maxLines > 0 {
		ring = make([]string, maxLines)
	}

	push := func(line string) {
		if maxLines <= 0 {
			lines = append(lines, line)
			return
		}
		ring[idx] = line
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}

	reader := bufio.NewReaderSize(file, 64*1024)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			offset += int64(len(line))
			push(strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read capture: %w", err)
		}
	}

	if maxLines <= 0 {
		return lines, offset, nil
	}
	lines = make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, offset, nil
}
