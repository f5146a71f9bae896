package git

import (
	"strings"
)

// Commit represents a git commit
type Commit struct {
	Hash     string
	Title    string
	Body     string
	Message  string
	Trailers map[string]string
}

// ParseCommitMessage parses a commit message into title, body, and trailers.
// Trailer keys may contain internal spaces ("Differential Revision: ..."),
// which is how Phabricator writes its cross-reference.
func ParseCommitMessage(hash string, message string) Commit {
	lines := strings.Split(message, "\n")

	commit := Commit{
		Hash:     hash,
		Message:  message,
		Trailers: make(map[string]string),
	}

	if len(lines) == 0 {
		return commit
	}

	// First line is the title
	commit.Title = strings.TrimSpace(lines[0])

	// Find where trailers start (last non-empty block of Key: Value lines)
	trailerStart := len(lines)
	inTrailers := false

	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			if inTrailers {
				trailerStart = i + 1
				break
			}
			continue
		}

		if isTrailerLine(line) {
			inTrailers = true
			continue
		}

		// Hit a non-trailer line while in trailers: the block starts after it
		if inTrailers {
			trailerStart = i + 1
		}
		break
	}

	if !inTrailers {
		trailerStart = len(lines)
	}

	// Parse trailers
	for i := trailerStart; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			commit.Trailers[key] = value
		}
	}

	// Body is everything between title and trailers
	bodyLines := []string{}
	for i := 1; i < trailerStart; i++ {
		bodyLines = append(bodyLines, lines[i])
	}
	commit.Body = strings.TrimSpace(strings.Join(bodyLines, "\n"))

	return commit
}

// isTrailerLine reports whether a trimmed line looks like a "Key: Value"
// trailer. Keys must not start with whitespace and are limited to a few
// words so prose with a stray colon is not misread as a trailer.
func isTrailerLine(line string) bool {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 || parts[0] == "" {
		return false
	}
	key := strings.TrimSpace(parts[0])
	if key == "" || key != parts[0] {
		return false
	}
	return strings.Count(key, " ") <= 2
}

// GetTrailer extracts a specific trailer from a commit message
func GetTrailer(message string, key string) string {
	commit := ParseCommitMessage("", message)
	return commit.Trailers[key]
}
