package runlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/txnotify-dev/txnotify/internal/model"
)

func TestFromRecord(t *testing.T) {
	var rec model.TransactionRecord
	rec.OperationType = model.OpIncoming
	rec.SetOperation(decimal.RequireFromString("100.50"), model.UAH)

	now := time.Date(2025, 1, 3, 12, 0, 0, 0, time.UTC)
	e := FromRecord("example.txt", rec, now)

	assert.Equal(t, "example.txt", e.Source)
	assert.Equal(t, "in", e.OperationType)
	assert.Equal(t, "100.5", e.Amount)
	assert.Equal(t, "UAH", e.Currency)
	assert.Equal(t, now, e.Timestamp)
}

func TestFromRecord_NoOperation(t *testing.T) {
	rec := model.TransactionRecord{OperationType: model.OpBalanceInfo}
	e := FromRecord("balance.txt", rec, time.Now())
	assert.Equal(t, "balance_info", e.OperationType)
	assert.Empty(t, e.Amount)
	assert.Empty(t, e.Currency)
}

func TestMarshalUnmarshalEntry(t *testing.T) {
	e := Entry{
		Timestamp:     time.Date(2025, 1, 3, 12, 0, 0, 0, time.UTC),
		Source:        "a.txt",
		OperationType: "out",
		Amount:        "300",
		Currency:      "UAH",
	}
	got, err := UnmarshalEntry(MarshalEntry(e))
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestUnmarshalEntry_WrongFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"only", "three", "fields"})
	assert.Error(t, err)
}

func TestAppend_CreatesFileWithHeader(t *testing.T) {
	dir := t.TempDir()
	e := Entry{Timestamp: time.Now().UTC(), Source: "a.txt", OperationType: "in"}
	require.NoError(t, Append(dir, []Entry{e}))

	data, err := os.ReadFile(filepath.Join(dir, "txnotify-log.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), Header+"\n"))
}

func TestAppend_ThenReadAll(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2025, 1, 3, 12, 0, 0, 0, time.UTC)
	first := Entry{Timestamp: ts, Source: "a.txt", OperationType: "in", Amount: "1", Currency: "UAH"}
	second := Entry{Timestamp: ts, Source: "b.txt", OperationType: "reject"}

	require.NoError(t, Append(dir, []Entry{first}))
	require.NoError(t, Append(dir, []Entry{second}))

	entries, err := ReadAll(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])
}

func TestReadAll_Missing(t *testing.T) {
	entries, err := ReadAll(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}
