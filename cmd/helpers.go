package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/pirakansa/contract/schema"
	"github.com/spf13/viper"
)

// parseRules resolves the rule selection from flag/env/config, defaulting to
// both rule kinds.
func parseRules() ([]schema.RuleName, error) {
	raw := viper.GetString("rules")
	if strings.TrimSpace(raw) == "" {
		return schema.DefaultRules, nil
	}
	var rules []schema.RuleName
	for _, item := range strings.Split(raw, ",") {
		rule := schema.RuleName(strings.TrimSpace(item))
		if _, ok := schema.ValidRuleNames[rule]; !ok {
			return nil, &schema.InvalidConfigError{Reason: fmt.Sprintf("unknown rule: %s", rule)}
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// resolveFormat resolves the output format and rejects formats the command
// does not support.
func resolveFormat(allowed ...schema.OutputFormat) (schema.OutputFormat, error) {
	raw := viper.GetString("format")
	if raw == "" {
		return schema.HumanFormat, nil
	}
	format := schema.OutputFormat(raw)
	if !slices.Contains(allowed, format) {
		return "", &schema.InvalidConfigError{Reason: fmt.Sprintf("unsupported format: %s", raw)}
	}
	return format, nil
}

// resolveConfigPath returns the contract file path from flag/env/config.
func resolveConfigPath() string {
	return viper.GetString("config")
}

// resolveGithubToken prefers the tool's own configuration and falls back to
// the conventional GITHUB_TOKEN variable.
func resolveGithubToken() string {
	if token := strings.TrimSpace(viper.GetString("github-token")); token != "" {
		return token
	}
	return strings.TrimSpace(os.Getenv("GITHUB_TOKEN"))
}

// requireContractFile fails fast when the contract file does not exist.
func requireContractFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("contract file not found: %s", path)
	}
	return nil
}
