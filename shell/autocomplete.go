package shell

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string // options such as "-strategy"
	Args    []string // possible values for positional arguments
	// Files completes the first argument from the data path.
	Files bool
}

var commandMetadata = map[string]CommandMetadata{
	"ladder":  {Options: []string{"-strategy"}},
	"random":  {Options: []string{"-length", "-strategy"}},
	"batch":   {Options: []string{"-threads", "-out", "-length", "-count", "-strategy"}, Args: []string{"random"}},
	"load":    {Options: []string{"-encoding"}, Files: true},
	"lexicon": {Options: []string{"-dist"}},
	"set":     {Args: []string{"strategy", "cache", "threads"}},
	"help":    {Args: []string{"ladder", "batch", "set", "script"}},
}

var commandNames = []string{
	"help", "load", "lexicon", "ladder", "neighbors", "check", "verify",
	"random", "batch", "set", "info", "script", "exit",
}

var strategyValues = []string{"ucs", "greedy", "astar", "all"}

// Do implements the readline.AutoCompleter interface
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}

		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		if strings.HasPrefix(lastCompleteField, "-") {
			switch strings.TrimPrefix(lastCompleteField, "-") {
			case "strategy":
				completions = strategyValues
			case "encoding":
				completions = []string{"utf8", "latin1"}
			}
		} else if cmdName == "set" && lastCompleteField == "strategy" {
			completions = strategyValues[:3]
		}

		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				switch {
				case strings.HasPrefix(prefix, "-"):
					completions = metadata.Options
				case metadata.Files && c.sc != nil:
					completions = c.dataFiles()
				case len(metadata.Args) > 0:
					completions = metadata.Args
				default:
					completions = metadata.Options
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}

// dataFiles lists word list candidates in the data path.
func (c *ShellCompleter) dataFiles() []string {
	entries, err := os.ReadDir(c.sc.config.WGLConfig().DataPath)
	if err != nil {
		return nil
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) == ".yaml" {
			continue
		}
		files = append(files, e.Name())
	}
	return files
}
