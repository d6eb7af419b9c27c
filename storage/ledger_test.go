package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"servicoperto-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestAppend_RoundTrip(t *testing.T) {
	ledger := NewLeadLedger(filepath.Join(t.TempDir(), "leads.json"))

	saved, err := ledger.Append(models.LeadCreate{
		Name:     "Ana",
		Whatsapp: "+5511999999999",
		Type:     models.CustomerLead,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	leads := ledger.ListAll()
	assert.Equal(t, 1, len(leads))
	assert.Equal(t, saved.ID, leads[0].ID)
	assert.Equal(t, "Ana", leads[0].Name)
	assert.Equal(t, "+5511999999999", leads[0].Whatsapp)
	assert.Equal(t, models.CustomerLead, leads[0].Type)
}

func TestAppend_MostRecentFirst(t *testing.T) {
	ledger := NewLeadLedger(filepath.Join(t.TempDir(), "leads.json"))

	first, err := ledger.Append(models.LeadCreate{Name: "Ana", Whatsapp: "+5511999999999", Type: models.CustomerLead})
	assert.NoError(t, err)
	second, err := ledger.Append(models.LeadCreate{Name: "Carlos", Whatsapp: "+5511888888888", Type: models.ProviderLead, Specialty: "Eletricista"})
	assert.NoError(t, err)

	leads := ledger.ListAll()
	assert.Equal(t, 2, len(leads))
	assert.Equal(t, second.ID, leads[0].ID, "the newest record should come first")
	assert.Equal(t, first.ID, leads[1].ID)
}

func TestAppend_FileIsInspectableJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.json")
	ledger := NewLeadLedger(path)

	_, err := ledger.Append(models.LeadCreate{Name: "Ana", Whatsapp: "+5511999999999", Type: models.CustomerLead})
	assert.NoError(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)

	var records []map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &records))
	assert.Equal(t, 1, len(records))
	assert.Equal(t, "Ana", records[0]["name"])
}

func TestListAll_MissingFile(t *testing.T) {
	ledger := NewLeadLedger(filepath.Join(t.TempDir(), "missing.json"))

	leads := ledger.ListAll()
	assert.NotNil(t, leads)
	assert.Equal(t, 0, len(leads))
}

func TestListAll_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	ledger := NewLeadLedger(path)
	leads := ledger.ListAll()
	assert.Equal(t, 0, len(leads))
}

func TestAppend_KeepsExistingRecordsOnCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	ledger := NewLeadLedger(path)
	saved, err := ledger.Append(models.LeadCreate{Name: "Ana", Whatsapp: "+5511999999999", Type: models.CustomerLead})
	assert.NoError(t, err)

	leads := ledger.ListAll()
	assert.Equal(t, 1, len(leads))
	assert.Equal(t, saved.ID, leads[0].ID)
}
