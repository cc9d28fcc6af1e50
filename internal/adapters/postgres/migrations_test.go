package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrationsSortedAndEmbedded(t *testing.T) {
	all, err := loadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, all)

	assert.Equal(t, "001_init.sql", all[0].name)
	assert.Contains(t, all[0].content, "CREATE TABLE")
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].name, all[i].name)
	}
}

func TestPendingMigrations(t *testing.T) {
	all := []migration{
		{name: "001_init.sql", content: "CREATE TABLE a (id INT);"},
		{name: "002_more.sql", content: "CREATE TABLE b (id INT);"},
	}

	t.Run("nothing applied", func(t *testing.T) {
		pending, err := pendingMigrations(all, map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, all, pending)
	})

	t.Run("applied files are skipped", func(t *testing.T) {
		pending, err := pendingMigrations(all, map[string]string{
			"001_init.sql": checksum(all[0].content),
		})
		require.NoError(t, err)
		assert.Equal(t, all[1:], pending)
	})

	t.Run("modified applied file is an error", func(t *testing.T) {
		_, err := pendingMigrations(all, map[string]string{
			"001_init.sql": checksum("CREATE TABLE a (id BIGINT);"),
		})
		assert.ErrorIs(t, err, ErrMigrationChanged)
		assert.Contains(t, err.Error(), "001_init.sql")
	})
}
