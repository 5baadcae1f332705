package service

import (
	"time"

	"github.com/agrodesk/agrodesk/models"
)

func clientTraits() recordTraits[models.Client] {
	return recordTraits[models.Client]{
		collection: models.Client{}.CollectionKey(),
		resource:   models.ResourceClient,
		idPrefix:   "client",
		id:         func(c models.Client) string { return c.ID },
		searchable: func(c models.Client) []string { return []string{c.Name, c.Email, c.Phone} },
		onCreate: func(c models.Client, id string, owner models.Ownership, now time.Time) models.Client {
			c.ID = id
			c.Ownership = owner
			c.CreatedAt = now
			c.UpdatedAt = now
			if c.Status == "" {
				c.Status = models.RecordActive
			}
			return c
		},
		onUpdate: func(stored, incoming models.Client, now time.Time) models.Client {
			incoming.ID = stored.ID
			incoming.Ownership = stored.Ownership
			incoming.CreatedAt = stored.CreatedAt
			incoming.UpdatedAt = now
			return incoming
		},
	}
}

func farmerTraits() recordTraits[models.Farmer] {
	return recordTraits[models.Farmer]{
		collection: models.Farmer{}.CollectionKey(),
		resource:   models.ResourceFarmer,
		idPrefix:   "farmer",
		id:         func(f models.Farmer) string { return f.ID },
		searchable: func(f models.Farmer) []string { return []string{f.Name, f.Email, f.Phone} },
		onCreate: func(f models.Farmer, id string, owner models.Ownership, now time.Time) models.Farmer {
			f.ID = id
			f.Ownership = owner
			f.CreatedAt = now
			f.UpdatedAt = now
			if f.Status == "" {
				f.Status = models.RecordActive
			}
			return f
		},
		onUpdate: func(stored, incoming models.Farmer, now time.Time) models.Farmer {
			incoming.ID = stored.ID
			incoming.Ownership = stored.Ownership
			incoming.CreatedAt = stored.CreatedAt
			incoming.UpdatedAt = now
			return incoming
		},
	}
}

func taskTraits() recordTraits[models.Task] {
	return recordTraits[models.Task]{
		collection: models.Task{}.CollectionKey(),
		resource:   models.ResourceTask,
		idPrefix:   "task",
		id:         func(t models.Task) string { return t.ID },
		searchable: func(t models.Task) []string { return []string{t.Title, t.Description} },
		onCreate: func(t models.Task, id string, owner models.Ownership, now time.Time) models.Task {
			t.ID = id
			t.Ownership = owner
			t.CreatedAt = now
			t.UpdatedAt = now
			if t.Status == "" {
				t.Status = models.TaskPending
			}
			if t.Priority == "" {
				t.Priority = models.PriorityMedium
			}
			return t
		},
		onUpdate: func(stored, incoming models.Task, now time.Time) models.Task {
			incoming.ID = stored.ID
			incoming.Ownership = stored.Ownership
			incoming.CreatedAt = stored.CreatedAt
			incoming.UpdatedAt = now
			return incoming
		},
	}
}

func complaintTraits() recordTraits[models.Complaint] {
	return recordTraits[models.Complaint]{
		collection: models.Complaint{}.CollectionKey(),
		resource:   models.ResourceComplaint,
		idPrefix:   "complaint",
		id:         func(c models.Complaint) string { return c.ID },
		searchable: func(c models.Complaint) []string { return []string{c.Title, c.Description} },
		onCreate: func(c models.Complaint, id string, owner models.Ownership, now time.Time) models.Complaint {
			c.ID = id
			c.Ownership = owner
			c.CreatedAt = now
			c.UpdatedAt = now
			if c.Status == "" {
				c.Status = models.ComplaintOpen
			}
			if c.Priority == "" {
				c.Priority = models.PriorityMedium
			}
			return c
		},
		onUpdate: func(stored, incoming models.Complaint, now time.Time) models.Complaint {
			incoming.ID = stored.ID
			incoming.Ownership = stored.Ownership
			incoming.CreatedAt = stored.CreatedAt
			incoming.UpdatedAt = now
			return incoming
		},
	}
}
