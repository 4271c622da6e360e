package agent

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadSystemPrompt reads the assistant persona and the business summary from
// dir and joins them into the system instruction. Both files are required.
func LoadSystemPrompt(dir string) (string, error) {
	persona, err := os.ReadFile(filepath.Join(dir, "system_prompt.txt"))
	if err != nil {
		return "", fmt.Errorf("read system prompt: %w", err)
	}

	summary, err := os.ReadFile(filepath.Join(dir, "business_summary.txt"))
	if err != nil {
		return "", fmt.Errorf("read business summary: %w", err)
	}

	return strings.TrimSpace(string(persona)) + "\n\n" + strings.TrimSpace(string(summary)), nil
}
