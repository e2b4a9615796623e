package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	DictionaryPath     string
	DictionaryBackend  string
	CustomWords        []string
	MaxEditDistance    int
	MinWordLength      int
	MaxConcurrentFiles int
	ReportDir          string
	CustomSettings     map[string]string
}

func NewConfig() *Config {
	return &Config{
		DictionaryPath:     "",
		DictionaryBackend:  "fuzzy",
		CustomWords:        []string{},
		MaxEditDistance:    2,
		MinWordLength:      1,
		MaxConcurrentFiles: 4,
		ReportDir:          ".textcorrector/reports",
		CustomSettings:     make(map[string]string),
	}
}

func LoadConfig() (*Config, error) {
	config := NewConfig()

	// Look for config files in order of preference
	configFiles := []string{
		".textcorrector.rc",
		".textcorrector.config",
		"textcorrector.config",
	}

	var configFile string
	for _, file := range configFiles {
		if _, err := os.Stat(file); err == nil {
			configFile = file
			break
		}
	}

	if configFile == "" {
		return config, nil // No config file found, return default config
	}

	return parseConfigFile(configFile, config)
}

func LoadConfigFromFile(filename string) (*Config, error) {
	config := NewConfig()
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("config file not found: %s", filename)
	}
	return parseConfigFile(filename, config)
}

func parseConfigFile(filename string, config *Config) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return config, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		// Parse key-value pairs
		if strings.Contains(line, "=") {
			parts := strings.SplitN(line, "=", 2)
			if len(parts) == 2 {
				key := strings.TrimSpace(parts[0])
				value := strings.TrimSpace(parts[1])

				// Remove quotes if present
				value = strings.Trim(value, `"'`)

				if err := config.parseKeyValue(key, value); err != nil {
					fmt.Printf("Warning: Line %d: %v\n", lineNum, err)
				}
			}
		}
	}

	return config, scanner.Err()
}

func (c *Config) parseKeyValue(key, value string) error {
	switch key {
	case "dictionary-path":
		c.DictionaryPath = value
	case "dictionary-backend":
		backend := strings.ToLower(value)
		if backend != "fuzzy" && backend != "index" {
			return fmt.Errorf("invalid dictionary-backend value: %s", value)
		}
		c.DictionaryBackend = backend
	case "custom-words":
		c.CustomWords = append(c.CustomWords, parseList(value)...)
	case "max-edit-distance":
		if dist, err := strconv.Atoi(value); err == nil && dist >= 1 && dist <= 3 {
			c.MaxEditDistance = dist
		} else {
			return fmt.Errorf("invalid max-edit-distance value: %s", value)
		}
	case "min-word-length":
		if length, err := strconv.Atoi(value); err == nil && length >= 1 {
			c.MinWordLength = length
		} else {
			return fmt.Errorf("invalid min-word-length value: %s", value)
		}
	case "max-concurrent-files":
		if concurrent, err := strconv.Atoi(value); err == nil && concurrent >= 1 {
			c.MaxConcurrentFiles = concurrent
		} else {
			return fmt.Errorf("invalid max-concurrent-files value: %s", value)
		}
	case "report-dir":
		c.ReportDir = value
	default:
		c.CustomSettings[key] = value
	}
	return nil
}

func parseList(value string) []string {
	// Split by comma and clean up
	items := strings.Split(value, ",")
	var result []string

	for _, item := range items {
		cleaned := strings.TrimSpace(item)
		if cleaned != "" {
			result = append(result, cleaned)
		}
	}

	return result
}

func (c *Config) GetConcurrency() int {
	if c.MaxConcurrentFiles > 0 {
		return c.MaxConcurrentFiles
	}
	return 2 // Default
}

func GenerateConfigFile(filename string) error {
	if filename == "" {
		filename = ".textcorrector.rc"
	}

	content := `# TextCorrector Configuration File
# Lines starting with # are comments

# Path to the dictionary word list (one word per line).
# Leave empty to use the built-in fallback list.
dictionary-path = ""

# Candidate-generation backend: fuzzy or index
dictionary-backend = "fuzzy"

# Extra words treated as correctly spelled
custom-words = "api,url,json,async,goroutine"

# Edit-distance radius for suggestions (1-3)
max-edit-distance = 2

# Skip tokens shorter than this many letters
min-word-length = 1

# Maximum files checked concurrently
max-concurrent-files = 4

# Directory for CSV misspelling reports
report-dir = ".textcorrector/reports"
`

	return os.WriteFile(filename, []byte(content), 0644)
}

func (c *Config) PrintSummary() {
	fmt.Printf("Configuration Summary:\n")
	if c.DictionaryPath != "" {
		fmt.Printf("  • Dictionary: %s\n", c.DictionaryPath)
	} else {
		fmt.Printf("  • Dictionary: built-in fallback list\n")
	}
	fmt.Printf("  • Backend: %s\n", c.DictionaryBackend)
	fmt.Printf("  • Custom words: %d\n", len(c.CustomWords))
	fmt.Printf("  • Max edit distance: %d\n", c.MaxEditDistance)
	fmt.Printf("  • Min word length: %d\n", c.MinWordLength)
	fmt.Printf("  • Max concurrent files: %d\n", c.MaxConcurrentFiles)
	fmt.Printf("  • Report directory: %s\n", c.ReportDir)
}
