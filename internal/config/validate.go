package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValidationError reports a malformed config file with position context.
type ValidationError struct {
	FilePath string
	Line     int
	Column   int
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.FilePath, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// ValidateYAMLSyntax checks that the file at path parses as YAML.
// Missing and empty files are valid; defaults apply.
func ValidateYAMLSyntax(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &ValidationError{FilePath: path, Message: err.Error()}
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		line, column := extractLineColumn(err.Error())
		return &ValidationError{
			FilePath: path,
			Line:     line,
			Column:   column,
			Message:  strings.TrimPrefix(err.Error(), "yaml: "),
		}
	}
	return nil
}

// yamlPositionPattern matches "line X" position info in yaml.v3 errors.
var yamlPositionPattern = regexp.MustCompile(`line (\d+)(?:, column (\d+))?`)

// extractLineColumn pulls line/column info out of a yaml.v3 error
// message. Either value is 0 when absent.
func extractLineColumn(msg string) (line, column int) {
	m := yamlPositionPattern.FindStringSubmatch(msg)
	if m == nil {
		return 0, 0
	}
	line, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		column, _ = strconv.Atoi(m[2])
	}
	return line, column
}
