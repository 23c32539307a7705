package core

import (
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

var valueExpressions sync.Map

func valueExpression(key string) *regexp.Regexp {
	if exp, ok := valueExpressions.Load(key); ok {
		return exp.(*regexp.Regexp)
	}

	exp := regexp.MustCompile(`"` + regexp.QuoteMeta(key) + `"\s+"(.+)"`)
	valueExpressions.Store(key, exp)
	return exp
}

// FindValue returns the first quoted value following the quoted key in content.
// The content does not need to be a valid VDF document.
func FindValue(content string, key string) (string, bool) {
	match := valueExpression(key).FindStringSubmatch(content)
	if match == nil {
		return "", false
	}

	return match[1], true
}

// VDF writers escape backslashes inside quoted strings
func unescapeValue(value string) string {
	return strings.NewReplacer(`\\`, `\`, `\"`, `"`).Replace(value)
}

func normalizePath(path string) string {
	return filepath.Clean(unescapeValue(path))
}
