package main

import (
	"os"
	"strings"

	"jobtrack-cli/internal/cli"
)

func looksLikeAppID(s string) bool {
	s = strings.TrimSpace(s)
	// Generated IDs are UUIDs; the fallback form is millis_hex. Keep it
	// permissive so pasted variants still resolve.
	if len(s) == 36 && strings.Count(s, "-") == 4 {
		return true
	}
	if i := strings.IndexByte(s, '_'); i > 0 {
		for _, r := range s[:i] {
			if r < '0' || r > '9' {
				return false
			}
		}
		return len(s) > i+1
	}
	return false
}

func rewriteDirectLookupArgs(argv []string) []string {
	// Convenience: `jobtrack <id>` works like `jobtrack show <id>`.
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite argv
	// before parsing. Users often pass persistent flags first (e.g.
	// `jobtrack --dir ... <id>`), so we must find the first positional token,
	// not just argv[1].
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--dir":       true,
		"--workspace": true,
		"--format":    true,
	}
	boolFlags := map[string]bool{
		"--pretty": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && looksLikeAppID(argv[i+1]) {
				out := make([]string, 0, len(argv)+1)
				out = append(out, argv[:i+1]...)
				out = append(out, "show")
				out = append(out, argv[i+1:]...)
				return out
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") {
				continue
			}
			if boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++ // skip value if present
				continue
			}
			continue
		}

		if looksLikeAppID(a) {
			out := make([]string, 0, len(argv)+1)
			out = append(out, argv[:i]...)
			out = append(out, "show")
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
