package core

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pirakansa/contract/schema"
)

// CheckRequiredFiles evaluates every required-file rule against the listed
// file set and counts the missing ones by severity. The files slice must hold
// root-relative, forward-slash paths as produced by the file lister.
func CheckRequiredFiles(root string, files []string, rules []schema.RequiredFile) (*schema.RequiredFilesReport, error) {
	lowercase := make(map[string]struct{}, len(files))
	for _, path := range files {
		lowercase[strings.ToLower(path)] = struct{}{}
	}

	report := &schema.RequiredFilesReport{}
	for i := range rules {
		check, err := evaluateRequiredFile(&rules[i], root, files, lowercase)
		if err != nil {
			return nil, err
		}
		if !check.Exists {
			report.Summary.Count(check.Severity)
		}
		report.Checks = append(report.Checks, check)
	}
	return report, nil
}

// evaluateRequiredFile resolves a single rule. Path rules pass when the path
// or any alternative matches; pattern rules pass when any listed file matches
// the regular expression.
func evaluateRequiredFile(rule *schema.RequiredFile, root string, files []string, lowercase map[string]struct{}) (schema.RequiredFileCheck, error) {
	check := schema.RequiredFileCheck{
		Severity:    rule.Severity,
		Description: rule.Description,
	}

	switch {
	case rule.Path != "":
		check.Path = rule.Path
		candidates := append([]string{rule.Path}, rule.Alternatives...)
		for _, candidate := range candidates {
			if pathExists(candidate, root, files, lowercase, rule.CaseInsensitive) {
				check.Exists = true
				break
			}
		}
	case rule.Pattern != "":
		check.Path = rule.Pattern
		exists, err := matchRegex(rule.Pattern, files, rule.CaseInsensitive)
		if err != nil {
			return check, err
		}
		check.Exists = exists
	default:
		return check, &schema.InvalidConfigError{Reason: "required_files entry must include path or pattern"}
	}
	return check, nil
}

// pathExists tests one candidate: glob membership if the candidate looks like
// a glob, lowercase set membership if case-insensitive, literal existence on
// disk otherwise.
func pathExists(candidate, root string, files []string, lowercase map[string]struct{}, caseInsensitive bool) bool {
	normalized := normalizePath(candidate)
	if looksLikeGlob(normalized) {
		return matchGlob(normalized, files, caseInsensitive)
	}
	if caseInsensitive {
		_, ok := lowercase[strings.ToLower(normalized)]
		return ok
	}
	_, err := os.Stat(filepath.Join(root, candidate))
	return err == nil
}

func looksLikeGlob(candidate string) bool {
	return strings.ContainsAny(candidate, "*?[")
}

// matchGlob tests glob membership with literal path separators: * and ? never
// cross a slash, ** does.
func matchGlob(pattern string, files []string, caseInsensitive bool) bool {
	if caseInsensitive {
		pattern = strings.ToLower(pattern)
	}
	if !doublestar.ValidatePattern(pattern) {
		return false
	}
	for _, file := range files {
		if caseInsensitive {
			file = strings.ToLower(file)
		}
		if ok, err := doublestar.Match(pattern, file); err == nil && ok {
			return true
		}
	}
	return false
}

func normalizePath(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// matchRegex reports whether any listed file matches the pattern. A pattern
// that does not compile is an invalid-configuration error, never a silent
// no-match.
func matchRegex(pattern string, files []string, caseInsensitive bool) (bool, error) {
	if caseInsensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, &schema.InvalidConfigError{Reason: err.Error()}
	}
	for _, file := range files {
		if re.MatchString(file) {
			return true, nil
		}
	}
	return false, nil
}
