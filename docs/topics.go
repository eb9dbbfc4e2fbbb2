// Package docs holds the embedded user documentation served by `dvp topic`.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Topic returns the content of a documentation topic.
func Topic(name string) (string, error) {
	content, err := docs.ReadFile(name + ".md")
	if err != nil {
		all, _ := AllTopics()
		return "", fmt.Errorf("topic %q not found, available topics: %s", name, strings.Join(all, ", "))
	}
	return string(content), nil
}

// AllTopics returns the sorted list of available documentation topics,
// excluding the readme index itself.
func AllTopics() ([]string, error) {
	entries, err := docs.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics, nil
}
