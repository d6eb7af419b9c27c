package storage

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"servicoperto-backend/models"
	"servicoperto-backend/utils"

	"github.com/google/uuid"
)

// DefaultLeadsFile is the fallback file, kept in the working directory so
// operators can inspect it directly.
const DefaultLeadsFile = "leads.json"

// LeadLedger persists leads to a flat JSON file while the primary store is
// down. It is a degraded-mode mirror, not a second source of truth: records
// are not reconciled back into the database after recovery.
//
// The file holds a single pretty-printed JSON array, most recent record
// first. Appends serialize on a mutex so concurrent writers inside one
// process cannot lose records; cross-process writers are out of scope.
type LeadLedger struct {
	path string
	mu   sync.Mutex
}

func NewLeadLedger(path string) *LeadLedger {
	return &LeadLedger{path: path}
}

// Append records a lead with a generated id and timestamp and returns it.
func (l *LeadLedger) Append(input models.LeadCreate) (models.Lead, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lead := models.Lead{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Whatsapp:  input.Whatsapp,
		Type:      input.Type,
		Specialty: input.Specialty,
		CreatedAt: time.Now().UTC(),
	}

	leads := append([]models.Lead{lead}, l.readAll()...)

	data, err := json.MarshalIndent(leads, "", "  ")
	if err != nil {
		return models.Lead{}, err
	}
	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return models.Lead{}, err
	}
	return lead, nil
}

// ListAll returns the recorded leads, most recent first. A missing or
// unreadable file yields an empty list, never an error.
func (l *LeadLedger) ListAll() []models.Lead {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.readAll()
}

func (l *LeadLedger) readAll() []models.Lead {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if !os.IsNotExist(err) {
			utils.LogError(err, "Error reading the leads fallback file")
		}
		return []models.Lead{}
	}

	var leads []models.Lead
	if err := json.Unmarshal(data, &leads); err != nil {
		utils.LogError(err, "Error parsing the leads fallback file")
		return []models.Lead{}
	}
	return leads
}
