package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBatchKey(t *testing.T) {
	cases := []struct {
		key   string
		class BatchKeyClass
		want  string
	}{
		{"btech-1_cse_a", StructuredBatchKey{Program: "btech", Cohort: "1"}, "btech-1"},
		{"BTech-22_ECE", StructuredBatchKey{Program: "btech", Cohort: "22"}, "btech-22"},
		{"  btech-3", StructuredBatchKey{Program: "btech", Cohort: "3"}, "btech-3"},
		{"MCA_sem2", FallbackKey{Prefix: "MCA"}, "mca"},
		{"btech_misc", FallbackKey{Prefix: "btech"}, "btech"},
		{"nounderscore", FallbackKey{Prefix: "nounderscore"}, "nounderscore"},
		{"_leading", FallbackKey{Prefix: ""}, ""},
	}
	for _, tc := range cases {
		got := ClassifyBatchKey(tc.key)
		assert.Equal(t, tc.class, got, tc.key)
		assert.Equal(t, tc.want, got.CampusKey(), tc.key)
	}
}
