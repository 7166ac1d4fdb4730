package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_CreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "shiftcal.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "-//Employee Shift Calendar//shiftcal//", cfg.ProdID)
	assert.Equal(t, "shifts.example.com", cfg.UIDDomain)

	// The file must now exist with owner-only permissions.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// A second load reads the file back unchanged.
	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoad_PartialConfigNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shiftcal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("uid_domain: roster.hospital.example\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "roster.hospital.example", cfg.UIDDomain)
	assert.Equal(t, "-//Employee Shift Calendar//shiftcal//", cfg.ProdID)
	assert.Equal(t, ".", cfg.OutputDir)
	require.Len(t, cfg.Specialties, 2)
}

func TestConfig_SpecialtyLabel(t *testing.T) {
	cfg := DefaultConfig()

	label, ok := cfg.SpecialtyLabel("cathlab")
	require.True(t, ok)
	assert.Equal(t, "Cath Lab On-Call", label)

	label, ok = cfg.SpecialtyLabel("ep")
	require.True(t, ok)
	assert.Equal(t, "Electrophysiology On-Call", label)

	_, ok = cfg.SpecialtyLabel("derm")
	assert.False(t, ok)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shiftcal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("specialties: [unclosed"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestSave_Errors(t *testing.T) {
	assert.Error(t, Save("", DefaultConfig()))
	assert.Error(t, Save(filepath.Join(t.TempDir(), "x.yaml"), nil))
}
