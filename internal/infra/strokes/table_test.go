package strokes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/traditionalchinese"

	"github.com/Shan319/number-dna-analyze/internal/domain"
)

const sample = "Column1 Column2\n王 wang 4\n\n小 3\n明 ming x\nbad\n龍 long 16\n"

func TestParse(t *testing.T) {
	tbl, err := Parse(strings.NewReader(sample), nil)
	require.NoError(t, err)

	assert.Equal(t, Table{'王': 4, '小': 3, '龍': 16}, tbl)

	n, ok := tbl.Strokes('龍')
	assert.True(t, ok)
	assert.Equal(t, 16, n)

	_, ok = tbl.Strokes('明')
	assert.False(t, ok)
}

func TestLoad_Big5(t *testing.T) {
	encoded, err := traditionalchinese.Big5.NewEncoder().String("王 4\n明 8\n")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "characters.txt")
	require.NoError(t, os.WriteFile(path, []byte(encoded), 0o644))

	tbl, err := Load(path, "big5", nil)
	require.NoError(t, err)
	assert.Equal(t, Table{'王': 4, '明': 8}, tbl)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"), "utf-8", nil)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))

	path := filepath.Join(t.TempDir(), "characters.txt")
	require.NoError(t, os.WriteFile(path, []byte("王 4\n"), 0o644))
	_, err = Load(path, "latin1", nil)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
}
