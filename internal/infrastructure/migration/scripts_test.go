package migration

import (
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The goose directory must parse as goose migrations: single annotated
// files, one version each. Paired .up/.down files would collide on a
// version here; those belong in scripts/ for golang-migrate only.
func TestGooseScriptsCollect(t *testing.T) {
	migrations, err := goose.CollectMigrations("goose", 0, goose.MaxVersion)
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	versions := []int64{migrations[0].Version, migrations[1].Version}
	assert.Equal(t, []int64{1, 2}, versions)
}

func TestGooseScriptsAnnotated(t *testing.T) {
	entries, err := os.ReadDir("goose")
	require.NoError(t, err)

	for _, e := range entries {
		data, err := os.ReadFile("goose/" + e.Name())
		require.NoError(t, err)
		assert.Contains(t, string(data), "-- +goose Up", e.Name())
		assert.Contains(t, string(data), "-- +goose Down", e.Name())
	}
}

// Both script directories describe the same schema versions; a migration
// added to one format and not the other would leave the two strategies
// disagreeing on the schema.
func TestScriptDirectoriesCoverSameVersions(t *testing.T) {
	gooseVersions := map[string]bool{}
	entries, err := os.ReadDir("goose")
	require.NoError(t, err)
	for _, e := range entries {
		version := strings.TrimLeft(strings.SplitN(e.Name(), "_", 2)[0], "0")
		gooseVersions[version] = true
	}

	migrateVersions := map[string]bool{}
	entries, err = os.ReadDir("scripts")
	require.NoError(t, err)
	for _, e := range entries {
		require.True(t,
			strings.HasSuffix(e.Name(), ".up.sql") || strings.HasSuffix(e.Name(), ".down.sql"),
			"unexpected file in scripts/: %s", e.Name())
		version := strings.TrimLeft(strings.SplitN(e.Name(), "_", 2)[0], "0")
		migrateVersions[version] = true
	}

	keys := func(m map[string]bool) []string {
		out := make([]string, 0, len(m))
		for k := range m {
			out = append(out, k)
		}
		sort.Strings(out)
		return out
	}
	assert.Equal(t, keys(migrateVersions), keys(gooseVersions))
}
