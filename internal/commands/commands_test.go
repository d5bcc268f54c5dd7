package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/txnotify-dev/txnotify/internal/config"
	"github.com/txnotify-dev/txnotify/internal/runlog"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestParseCommand_ContentFlag(t *testing.T) {
	out, err := execute(t, "parse", "--content", "Баланс: 1000.00 UAH")
	require.NoError(t, err)
	assert.Contains(t, out, "\"operation_type\": \"balance_info\"")
	assert.Contains(t, out, "\"bank_account_balance\": \"1000\"")
}

func TestParseCommand_TitleFlag(t *testing.T) {
	out, err := execute(t, "parse",
		"--content", "Оплата з картки",
		"--title", "-1 000.00 UAH доступно 505.01 UAH *0000")
	require.NoError(t, err)
	assert.Contains(t, out, "\"operation_type\": \"out\"")
	assert.Contains(t, out, "\"operation_amount\": \"1000\"")
}

func TestParseCommand_File(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "n.txt")
	require.NoError(t, os.WriteFile(src,
		[]byte("app_name: UKRSIB\ncontent: Perekaz: TEST123 na sumu 100.00UAH. Dostupno 500.00UAH.\n"), 0o644))

	dst := filepath.Join(dir, "n.json")
	out, err := execute(t, "parse", src, "-o", dst)
	require.NoError(t, err)
	assert.Contains(t, out, "\"operation_type\": \"in\"")

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"counterparty_details\": \"TEST123\"")
}

func TestParseCommand_NoInput(t *testing.T) {
	_, err := execute(t, "parse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--content")
}

func TestBatchCommand_File(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "batch.txt")
	batch := "app_name: A\ncontent: Надходження: 200.0UAH\n\napp_name: B\ncontent: Баланс: 10.00 UAH\n"
	require.NoError(t, os.WriteFile(src, []byte(batch), 0o644))

	out, err := execute(t, "batch", src)
	require.NoError(t, err)
	assert.Contains(t, out, "example 1 (A):")
	assert.Contains(t, out, "example 2 (B):")
	assert.Contains(t, out, "\"operation_type\": \"in\"")
	assert.Contains(t, out, "\"operation_type\": \"balance_info\"")
}

func TestBatchCommand_FileWithLog(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "batch.txt")
	batch := "app_name: A\ncontent: Надходження: 200.0UAH\n\napp_name: B\ncontent: Баланс: 10.00 UAH\n"
	require.NoError(t, os.WriteFile(src, []byte(batch), 0o644))

	_, err := execute(t, "batch", "--log", src)
	require.NoError(t, err)

	entries, err := runlog.ReadAll(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "batch.txt#1", entries[0].Source)
	assert.Equal(t, "in", entries[0].OperationType)
	assert.Equal(t, "200", entries[0].Amount)
	assert.Equal(t, "balance_info", entries[1].OperationType)
	assert.Empty(t, entries[1].Amount)
}

func TestBatchCommand_Dir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.txt"),
		[]byte("content: Баланс: 55.00 UAH\n"), 0o644))

	out, err := execute(t, "batch", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "one.txt -> one_result.json")

	data, err := os.ReadFile(filepath.Join(dir, "one_result.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"operation_type\": \"balance_info\"")
}

func TestBatchCommand_EmptyDir(t *testing.T) {
	_, err := execute(t, "batch", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .txt files")
}

func TestBatchCommand_MissingTarget(t *testing.T) {
	_, err := execute(t, "batch", filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestBatchCommand_CustomConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.txt"),
		[]byte("content: Баланс: 55.00 UAH\n"), 0o644))

	cfgPath := filepath.Join(dir, "txnotify.yaml")
	require.NoError(t, config.Save(cfgPath, &config.Config{
		Output: config.OutputConfig{Suffix: "_parsed"},
	}))

	out, err := execute(t, "batch", "--config", cfgPath, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "one_parsed.json")

	_, err = os.Stat(filepath.Join(dir, "one_parsed.json"))
	assert.NoError(t, err)
}

func TestResultPath(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t,
		filepath.Join("data", "a_result.json"),
		resultPath(filepath.Join("data", "a.txt"), cfg))

	cfg.Output.Dir = "out"
	assert.Equal(t,
		filepath.Join("out", "a_result.json"),
		resultPath(filepath.Join("data", "a.txt"), cfg))
}
