package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/catch-zone/internal/config"
)

func TestRulesMarkdown(t *testing.T) {
	md, err := rulesMarkdown(config.Default())
	if err != nil {
		t.Fatalf("rulesMarkdown() error: %v", err)
	}

	for _, want := range []string{
		"| apple | 🍎 | 100 |",
		"| orange | 🍊 | 200 |",
		"| bomb | 💣 | game over |",
		"Every 20 seconds",
		"| 1 | 2.0s |",
		"| 2 | 1.8s |",
		"| 8+ | 0.6s |",
		"Missing 2 fruit",
		"| left | left, 왼쪽 |",
		"from 85% of its fall",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Rules missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "| 9 |") {
		t.Error("Level table should stop at the floor level")
	}
}

func TestRulesMarkdownInvalidItems(t *testing.T) {
	cfg := config.Default()
	cfg.Items = cfg.Items[:1]
	if _, err := rulesMarkdown(cfg); err == nil {
		t.Error("Expected error without a hazard")
	}
}
