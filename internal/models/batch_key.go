package models

import (
	"regexp"
	"strings"
)

var structuredBatchKey = regexp.MustCompile(`(?i)^\s*(btech)-(\d+)`)

// BatchKeyClass is the result of classifying a batch key into a campus bucket.
// It is either a StructuredBatchKey or a FallbackKey.
type BatchKeyClass interface {
	CampusKey() string
	isBatchKeyClass()
}

// StructuredBatchKey is a key following the "btech-<digits>" convention.
type StructuredBatchKey struct {
	Program string
	Cohort  string
}

// CampusKey returns "<program>-<cohort>" in lower case.
func (k StructuredBatchKey) CampusKey() string {
	return strings.ToLower(k.Program) + "-" + k.Cohort
}

func (StructuredBatchKey) isBatchKeyClass() {}

// FallbackKey is any other key, bucketed by the text before its first underscore.
type FallbackKey struct {
	Prefix string
}

// CampusKey returns the lower-cased prefix.
func (k FallbackKey) CampusKey() string {
	return strings.ToLower(k.Prefix)
}

func (FallbackKey) isBatchKeyClass() {}

// ClassifyBatchKey derives the campus bucket for a batch key.
func ClassifyBatchKey(key string) BatchKeyClass {
	if m := structuredBatchKey.FindStringSubmatch(key); m != nil {
		return StructuredBatchKey{Program: strings.ToLower(m[1]), Cohort: m[2]}
	}
	prefix, _, _ := strings.Cut(key, "_")
	return FallbackKey{Prefix: prefix}
}
