// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDsForms(t *testing.T) {
	tests := []struct {
		name string
		arg  any
		want []int
	}{
		{"single int", 142441, []int{142441}},
		{"single string", "142441", []int{142441}},
		{"comma-separated string", "1031963,1046308", []int{1031963, 1046308}},
		{"comma-separated with spaces", " 1031963 , 1046308 ", []int{1031963, 1046308}},
		{"int slice", []int{1008041, 168225}, []int{1008041, 168225}},
		{"string slice", []string{"1", "2"}, []int{1, 2}},
		{"mixed slice", []any{1008041, "168225"}, []int{1008041, 168225}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIDs("organization", tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIDsRejects(t *testing.T) {
	tests := []struct {
		name string
		arg  any
	}{
		{"nil", nil},
		{"zero int", 0},
		{"negative int", -5},
		{"zero string", "0"},
		{"empty string", ""},
		{"non-numeric", "abc"},
		{"one bad id fails the whole call", "1031963,abc"},
		{"zero inside list", []int{1031963, 0}},
		{"empty list", []int{}},
		{"unsupported type", 3.14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseIDs("publication", tt.arg)
			assert.Error(t, err)
		})
	}
}

func TestParseIDsErrorNamesDomain(t *testing.T) {
	_, err := parseIDs("person", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "person")
}

func TestExpandRequests(t *testing.T) {
	reqs := expandRequests([]int{1, 2}, []string{"a/%d", "b/%d"})
	assert.Equal(t, []string{"a/1", "b/1", "a/2", "b/2"}, reqs)
}
