package ledger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ailedger/ai-ledger/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPairsContractsAndEntries(t *testing.T) {
	l := initLedger(t)

	_, err := l.New("Fix Auth Bug", "AILE-1")
	require.NoError(t, err)
	l.Now = func() time.Time { return fixedNow.Add(24 * time.Hour) }
	_, err = l.New("Add cache", "AILE-2")
	require.NoError(t, err)

	records, err := l.List()
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "2024-01-15-fix-auth-bug", first.Stem)
	assert.Equal(t, "AILE-1", first.ID)
	assert.Equal(t, "Fix Auth Bug", first.Title)
	assert.Equal(t, "2024-01-15", first.Date)
	assert.Equal(t, types.RiskLow, first.RiskLevel)
	assert.True(t, first.Decoded)
	assert.NotEmpty(t, first.ContractPath)
	assert.NotEmpty(t, first.EntryPath)

	assert.Equal(t, "2024-01-16-add-cache", records[1].Stem)
}

func TestListUndecodableContract(t *testing.T) {
	l := initLedger(t)

	created, err := l.New(`Quote "this"`, "AILE-1")
	require.NoError(t, err)

	records, err := l.List()
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.False(t, r.Decoded)
	assert.Equal(t, "2024-01-15", r.Date)
	assert.Equal(t, "quote-this", r.Title)
	assert.Equal(t, created.ContractPath, r.ContractPath)
}

func TestListOrphanEntry(t *testing.T) {
	l := initLedger(t)
	require.NoError(t, os.WriteFile(filepath.Join(l.Layout.Entries(), "2024-02-01-lonely.md"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(l.Layout.Entries(), ".hidden.md"), []byte("x"), 0644))

	records, err := l.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-02-01-lonely", records[0].Stem)
	assert.Empty(t, records[0].ContractPath)
	assert.Equal(t, "lonely", records[0].Title)
}

func TestListWithoutLedger(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.List()
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestShow(t *testing.T) {
	l := initLedger(t)
	_, err := l.New("Fix Auth Bug", "AILE-1")
	require.NoError(t, err)
	_, err = l.New("Fix Auth Docs", "AILE-2")
	require.NoError(t, err)

	r, err := l.Show("2024-01-15-fix-auth-bug")
	require.NoError(t, err)
	assert.Equal(t, "AILE-1", r.ID)

	r, err = l.Show("2024-01-15-fix-auth-d")
	require.NoError(t, err)
	assert.Equal(t, "AILE-2", r.ID)

	_, err = l.Show("2024-01-15-fix")
	assert.ErrorIs(t, err, ErrAmbiguous)

	_, err = l.Show("2023")
	assert.ErrorIs(t, err, ErrNotFound)
}
