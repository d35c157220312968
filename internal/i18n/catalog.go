package i18n

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	LangEnglish   = "en"
	LangRussian   = "ru"
	LangUkrainian = "ua"

	// language packs on disk are named language_<code>
	packFilePrefix = "language_"
)

//go:embed lang/*.env
var embeddedPacks embed.FS

var aliases = map[string]string{
	"":           LangEnglish,
	"en":         LangEnglish,
	"eng":        LangEnglish,
	"english":    LangEnglish,
	"ru":         LangRussian,
	"rus":        LangRussian,
	"russian":    LangRussian,
	"русский":    LangRussian,
	"ua":         LangUkrainian,
	"ukr":        LangUkrainian,
	"ukrainian":  LangUkrainian,
	"українська": LangUkrainian,
}

// Normalize maps a user supplied language name to a pack code. Unknown
// names fall back to English.
func Normalize(name string) string {
	if code, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return code
	}
	return LangEnglish
}

type Catalog struct {
	lang     string
	messages map[string]string
}

// Load builds the catalog for the named language. English is always loaded
// first so a pack missing a key still yields a message. When dir is set and
// contains language_<code>, its keys override the embedded ones.
func Load(name, dir string) (*Catalog, error) {
	code := Normalize(name)
	c := &Catalog{lang: code, messages: make(map[string]string, 64)}

	if err := c.mergeEmbedded(LangEnglish); err != nil {
		return nil, err
	}
	if code != LangEnglish {
		if err := c.mergeEmbedded(code); err != nil {
			return nil, err
		}
	}

	if dir == "" {
		return c, nil
	}

	path := filepath.Join(dir, PackFileName(code))
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, err
	}

	overrides, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read language pack %s: %w", path, err)
	}
	c.merge(overrides)
	return c, nil
}

func (c *Catalog) mergeEmbedded(code string) error {
	raw, err := embeddedPacks.ReadFile("lang/" + code + ".env")
	if err != nil {
		return fmt.Errorf("no embedded language pack for %q: %w", code, err)
	}

	messages, err := godotenv.Parse(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to parse embedded language pack %q: %w", code, err)
	}
	c.merge(messages)
	return nil
}

func (c *Catalog) merge(messages map[string]string) {
	for k, v := range messages {
		c.messages[k] = v
	}
}

func (c *Catalog) Lang() string {
	return c.lang
}

// Message formats the message stored under key with args. An unknown key is
// returned as is.
func (c *Catalog) Message(key string, args ...interface{}) string {
	format, ok := c.messages[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

func PackFileName(code string) string {
	return packFilePrefix + code
}

// Save writes the catalog as a language_<code> pack in dir, the format Load
// reads back.
func (c *Catalog) Save(dir string) (string, error) {
	path := filepath.Join(dir, PackFileName(c.lang))
	if err := godotenv.Write(c.messages, path); err != nil {
		return "", err
	}
	return path, nil
}
