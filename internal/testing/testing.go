// SPDX-FileCopyrightText: © 2025 Olivier Meunier <olivier@neokraft.net>
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package testing provides tools to compare test results with fixture files.
package testing

import (
	"os"
	"path"
	"testing"

	"github.com/kinbiko/jsonassert"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
)

// FixturePath returns the path of a file in test-fixtures.
func FixturePath(name string) string {
	return path.Join("test-fixtures", name)
}

// ReadFixture returns the content of a file in test-fixtures.
func ReadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(FixturePath(name))
	require.NoError(t, err)
	return string(data)
}

// AssertGolden checks that actual is the content of the given
// fixture file and prints a diff when it's not.
func AssertGolden(t *testing.T, name string, actual string) {
	t.Helper()
	expected := ReadFixture(t, name)
	if expected == actual {
		return
	}

	// Not using require.Equal here, its output for large strings
	// comes before the diff and is hard to read.
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  2,
	})
	t.Errorf("%s does not match:\n%s", name, diff)
}

// AssertJSON checks that the JSON encoded data matches what we expect.
func AssertJSON(t *testing.T, data []byte, expected string) {
	t.Helper()
	jsonassert.New(t).Assertf(string(data), "%s", expected)
	if t.Failed() {
		t.Errorf("Received JSON: %s\n", string(data))
		t.FailNow()
	}
}
