package utils

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

func IsDocsURLValid(href string) bool {
	if href == "" {
		return false
	}
	// ASSUMPTION: Every documentation page is linked relative to the index,
	// absolute links point outside of the generated docs.
	link, err := url.Parse(href)
	if err != nil || link.IsAbs() || link.Host != "" {
		return false
	}
	return link.Path != ""
}

// SanitizeDocsURL drops the fragment, TypeDoc links members as page.html#member.
func SanitizeDocsURL(href string) string {
	anchorIndex := strings.Index(href, "#")

	if anchorIndex != -1 {
		href = href[:anchorIndex]
	}

	return href
}

// ResolveDocsURL resolves href against the page it was found on.
func ResolveDocsURL(base, href string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", base, err)
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("invalid link %q: %w", href, err)
	}
	return baseURL.ResolveReference(ref).String(), nil
}

func WriteNewFile(filePath string, fileContent string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	defer file.Close()

	_, err = fmt.Fprint(file, fileContent)
	if err != nil {
		return fmt.Errorf("failed to write to file %s: %w", filePath, err)
	}
	return nil
}
