package config

import (
	"os"
	"testing"
)

func TestNewConfig(t *testing.T) {
	c := NewConfig()

	if c.DictionaryBackend != "fuzzy" {
		t.Errorf("Expected DictionaryBackend to be fuzzy, but got %s", c.DictionaryBackend)
	}

	if c.MaxEditDistance != 2 {
		t.Errorf("Expected MaxEditDistance to be 2, but got %d", c.MaxEditDistance)
	}

	if c.MinWordLength != 1 {
		t.Errorf("Expected MinWordLength to be 1, but got %d", c.MinWordLength)
	}

	if c.MaxConcurrentFiles != 4 {
		t.Errorf("Expected MaxConcurrentFiles to be 4, but got %d", c.MaxConcurrentFiles)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	// Create a temporary config file
	content := []byte("dictionary-path = words.txt\ndictionary-backend = index\ncustom-words = api,url\nmax-edit-distance = 1")
	tmpfile, err := os.CreateTemp("", "config_test")
	if err != nil {
		t.Fatal(err)
	}

	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write(content); err != nil {
		t.Fatal(err)
	}

	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Load the config from the temporary file
	c, err := LoadConfigFromFile(tmpfile.Name())
	if err != nil {
		t.Fatal(err)
	}

	if c.DictionaryPath != "words.txt" {
		t.Errorf("Expected DictionaryPath to be words.txt, but got %s", c.DictionaryPath)
	}

	if c.DictionaryBackend != "index" {
		t.Errorf("Expected DictionaryBackend to be index, but got %s", c.DictionaryBackend)
	}

	if len(c.CustomWords) != 2 {
		t.Errorf("Expected 2 custom words, but got %d", len(c.CustomWords))
	}

	if c.CustomWords[0] != "api" {
		t.Errorf("Expected custom word to be api, but got %s", c.CustomWords[0])
	}

	if c.MaxEditDistance != 1 {
		t.Errorf("Expected MaxEditDistance to be 1, but got %d", c.MaxEditDistance)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfigFromFile("no/such/file.rc"); err == nil {
		t.Errorf("Expected an error for a missing config file")
	}
}

func TestParseKeyValueInvalid(t *testing.T) {
	c := NewConfig()

	if err := c.parseKeyValue("max-edit-distance", "9"); err == nil {
		t.Errorf("Expected an error for an out-of-range max-edit-distance")
	}

	if err := c.parseKeyValue("dictionary-backend", "trie"); err == nil {
		t.Errorf("Expected an error for an unknown backend")
	}

	if err := c.parseKeyValue("min-word-length", "zero"); err == nil {
		t.Errorf("Expected an error for a non-numeric min-word-length")
	}
}

func TestParseKeyValueCustomSetting(t *testing.T) {
	c := NewConfig()

	if err := c.parseKeyValue("project-name", "My Project"); err != nil {
		t.Fatal(err)
	}

	if c.CustomSettings["project-name"] != "My Project" {
		t.Errorf("Expected unknown keys to land in CustomSettings")
	}
}

func TestGetConcurrency(t *testing.T) {
	c := NewConfig()
	c.MaxConcurrentFiles = 8

	if c.GetConcurrency() != 8 {
		t.Errorf("Expected concurrency 8, but got %d", c.GetConcurrency())
	}

	c.MaxConcurrentFiles = 0
	if c.GetConcurrency() != 2 {
		t.Errorf("Expected default concurrency 2, but got %d", c.GetConcurrency())
	}
}

func TestGenerateConfigFile(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config_gen")
	if err != nil {
		t.Fatal(err)
	}
	tmpfile.Close()
	defer os.Remove(tmpfile.Name())

	if err := GenerateConfigFile(tmpfile.Name()); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfigFromFile(tmpfile.Name())
	if err != nil {
		t.Fatal(err)
	}

	if c.DictionaryBackend != "fuzzy" {
		t.Errorf("Expected generated config to parse with fuzzy backend, but got %s", c.DictionaryBackend)
	}
}
