package ghclient

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/pirakansa/contract/schema"
)

// ResolveRepository determines the owner/name slug to evaluate: the explicit
// remote value first, then the GITHUB_REPOSITORY environment variable, then
// the origin URL of the working directory's git remote.
func ResolveRepository(remote string) (string, error) {
	if remote != "" {
		slug, ok := normalizeRepository(remote)
		if !ok {
			return "", &schema.InvalidConfigError{Reason: fmt.Sprintf("invalid remote repository: %q", remote)}
		}
		return slug, nil
	}
	if repo := strings.TrimSpace(os.Getenv("GITHUB_REPOSITORY")); repo != "" {
		return repo, nil
	}
	output, err := exec.Command("git", "config", "--get", "remote.origin.url").Output()
	if err != nil {
		return "", fmt.Errorf("resolve remote.origin.url: %w", err)
	}
	url := strings.TrimSpace(string(output))
	slug, ok := normalizeRepository(url)
	if !ok {
		return "", &schema.InvalidConfigError{Reason: fmt.Sprintf("invalid remote repository: %q", url)}
	}
	return slug, nil
}

// normalizeRepository extracts owner/name from the supported remote forms:
// a plain slug, an ssh URL, or an https URL.
func normalizeRepository(value string) (string, bool) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(value), ".git")
	if rest, ok := strings.CutPrefix(trimmed, "git@github.com:"); ok {
		return takeOwnerRepo(rest)
	}
	if rest, ok := strings.CutPrefix(trimmed, "ssh://git@github.com/"); ok {
		return takeOwnerRepo(rest)
	}
	if index := strings.Index(trimmed, "github.com/"); index >= 0 {
		return takeOwnerRepo(trimmed[index+len("github.com/"):])
	}
	return takeOwnerRepo(trimmed)
}

func takeOwnerRepo(value string) (string, bool) {
	parts := strings.Split(value, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", false
	}
	return parts[0] + "/" + parts[1], true
}
