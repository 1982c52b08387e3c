package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func seed(t *testing.T, dir, file, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644))
}

func TestRootRejectsUnknownFormat(t *testing.T) {
	_, err := runCLI(t, "--data-dir", t.TempDir(), "--format", "yaml", "summary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestSummary(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "finances.csv", "ID,Date,Type,Category,Amount,Description\n"+
		"a,2026-01-05,Income,Dues,100,January dues\n"+
		"b,2026-01-09,Income,Bake sale,5,\n"+
		"c,2026-01-12,Expense,Books,40,Next month's title\n")

	out, err := runCLI(t, "--data-dir", dir, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Total income:   105.00")
	assert.Contains(t, out, "Total expenses: 40.00")
	assert.Contains(t, out, "Balance:        65.00")

	out, err = runCLI(t, "--data-dir", dir, "--format", "json", "summary")
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_income":"105","total_expenses":"40","balance":"65"}`, out)

	out, err = runCLI(t, "--data-dir", dir, "summary", "--by-category")
	require.NoError(t, err)
	assert.Contains(t, out, "Income by category:")
	assert.Contains(t, out, "Bake sale")
	assert.Contains(t, out, "Books")
}

func TestSummaryEmptyStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fresh")

	out, err := runCLI(t, "--data-dir", dir, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Balance:        0.00")

	_, err = os.Stat(filepath.Join(dir, "goals.csv"))
	assert.NoError(t, err)
}

func TestExport(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, "--data-dir", dir, "export", "members")
	require.NoError(t, err)
	assert.Equal(t, "ID,Member Name,Email,Join Date\n", out)

	_, err = runCLI(t, "--data-dir", dir, "export", "payroll")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store")

	_, err = runCLI(t, "--data-dir", dir, "export")
	require.Error(t, err)
}

func TestGoalsClearCompleted(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "goals.csv", "ID,Title,Due Date,Completed,Created Date\n"+
		"g1,Read 12 books,2026-12-31,True,2026-01-01\n"+
		"g2,Host a signing,2026-06-30,False,2026-01-01\n"+
		"g3,Start a podcast,2026-09-01,True,2026-01-02\n")

	out, err := runCLI(t, "--data-dir", dir, "--format", "json", "goals", "clear-completed")
	require.NoError(t, err)
	var resp struct {
		Removed int `json:"removed"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 2, resp.Removed)

	data, err := os.ReadFile(filepath.Join(dir, "goals.csv"))
	require.NoError(t, err)
	assert.Equal(t, "ID,Title,Due Date,Completed,Created Date\ng2,Host a signing,2026-06-30,False,2026-01-01\n", string(data))

	out, err = runCLI(t, "--data-dir", dir, "goals", "clear-completed")
	require.NoError(t, err)
	assert.Equal(t, "Removed 0 completed goal(s)\n", out)
}
