// Package mdconv turns an archive of raw documentation pages into markdown.
package mdconv

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"rpglogs-typegen/utils"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
)

func NewConverter() *md.Converter {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())
	// TypeDoc page chrome, nothing of it is documentation
	converter.Remove("header", "footer", "nav", "script", "svg")
	return converter
}

// ConvertDir mirrors every .html file below rawDir as a .md file below mdDir
// and returns how many files were converted.
func ConvertDir(rawDir, mdDir string) (int, error) {
	converter := NewConverter()
	converted := 0

	err := filepath.WalkDir(rawDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !strings.HasSuffix(path, ".html") {
			return nil
		}

		fileContent, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		markdown, err := converter.ConvertString(string(fileContent))
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(rawDir, path)
		if err != nil {
			return err
		}
		err = utils.WriteNewFile(
			filepath.Join(mdDir, strings.TrimSuffix(rel, ".html")+".md"),
			markdown,
		)
		if err != nil {
			return err
		}

		converted++
		return nil
	})

	return converted, err
}
