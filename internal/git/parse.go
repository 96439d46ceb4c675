package git

import (
	"bytes"
	"fmt"
	"strconv"
)

// ParseLog parses output produced by a LogQuery command.
func ParseLog(out []byte) ([]CommitRecord, error) {
	records := bytes.Split(out, []byte{0x1e})
	results := make([]CommitRecord, 0, len(records))

	for _, rec := range records {
		if len(bytes.Trim(rec, "\x00\r\n")) == 0 {
			continue
		}

		header, body := splitHeaderBody(rec)
		fields := bytes.SplitN(header, []byte{0x00}, headerFields)
		if len(fields) < headerFields {
			return nil, fmt.Errorf("unexpected git log header format: %q", string(header))
		}

		files, err := parseNumstat(body)
		if err != nil {
			return nil, err
		}

		results = append(results, CommitRecord{
			Hash:        string(fields[0]),
			ShortHash:   string(fields[1]),
			Author:      string(fields[2]),
			AuthorEmail: string(fields[3]),
			Date:        string(fields[4]),
			Refs:        string(fields[5]),
			Subject:     string(fields[6]),
			Files:       files,
		})
	}

	return results, nil
}

func splitHeaderBody(rec []byte) (header []byte, body []byte) {
	// The pretty line is terminated by '\n', followed by numstat output.
	if idx := bytes.IndexByte(rec, '\n'); idx != -1 {
		return rec[:idx], rec[idx+1:]
	}
	return bytes.TrimRight(rec, "\x00"), nil
}

// parseNumstat walks NUL-terminated `--numstat -z` entries:
//
//	added \t deleted \t path \0
//	added \t deleted \t \0 oldpath \0 newpath \0   (renames and copies)
//
// Binary files report "-" for both counts.
func parseNumstat(body []byte) ([]FileStat, error) {
	var stats []FileStat
	i := 0
	for {
		for i < len(body) && (body[i] == '\n' || body[i] == '\r' || body[i] == 0) {
			i++
		}
		if i >= len(body) {
			return stats, nil
		}

		added, addedBinary, err := readNumstatField(body, &i)
		if err != nil {
			return nil, err
		}
		deleted, deletedBinary, err := readNumstatField(body, &i)
		if err != nil {
			return nil, err
		}

		st := FileStat{
			Added:   added,
			Deleted: deleted,
			Binary:  addedBinary && deletedBinary,
		}

		if i < len(body) && body[i] == 0 {
			// Empty path signals a rename: old and new paths follow.
			i++
			oldPath, ok := readStringUntilNUL(body, &i)
			if !ok {
				return nil, fmt.Errorf("unexpected git --numstat format (missing rename source)")
			}
			newPath, ok := readStringUntilNUL(body, &i)
			if !ok {
				return nil, fmt.Errorf("unexpected git --numstat format (missing rename target)")
			}
			st.OldPath = oldPath
			st.Path = newPath
		} else {
			path, ok := readStringUntilNUL(body, &i)
			if !ok || path == "" {
				return nil, fmt.Errorf("unexpected git --numstat format (path)")
			}
			st.Path = path
		}

		stats = append(stats, st)
	}
}

// readStringUntilNUL reads up to the next NUL, or to the end of b when the
// final entry is unterminated.
func readStringUntilNUL(b []byte, i *int) (string, bool) {
	if *i >= len(b) {
		return "", false
	}
	j := bytes.IndexByte(b[*i:], 0)
	if j == -1 {
		s := string(bytes.TrimRight(b[*i:], "\r\n"))
		*i = len(b)
		return s, true
	}
	start := *i
	*i = start + j + 1
	return string(b[start : start+j]), true
}

// readNumstatField reads a tab-terminated count. "-" means binary.
func readNumstatField(b []byte, i *int) (int, bool, error) {
	if *i >= len(b) {
		return 0, false, fmt.Errorf("unexpected git --numstat format (truncated)")
	}
	j := bytes.IndexByte(b[*i:], '\t')
	if j == -1 {
		return 0, false, fmt.Errorf("unexpected git --numstat format (missing tab)")
	}
	field := b[*i : *i+j]
	*i = *i + j + 1

	if len(field) == 1 && field[0] == '-' {
		return 0, true, nil
	}
	n, err := strconv.Atoi(string(field))
	if err != nil {
		return 0, false, fmt.Errorf("parse numstat int %q: %w", string(field), err)
	}
	return n, false, nil
}
