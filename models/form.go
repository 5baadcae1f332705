// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package models

import "time"

// FieldType enumerates the input kinds a form builder may place on a form.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldNumber   FieldType = "number"
	FieldEmail    FieldType = "email"
	FieldDate     FieldType = "date"
	FieldSelect   FieldType = "select"
	FieldCheckbox FieldType = "checkbox"
)

// FormStatus is the publication state of a digital form. Only published
// forms are reachable through the public submission endpoint.
type FormStatus string

const (
	FormDraft     FormStatus = "draft"
	FormPublished FormStatus = "published"
	FormArchived  FormStatus = "archived"
)

// FormField is one entry of a form's field schema. The schema itself is
// data: the admin builds it at runtime, and the public endpoint validates
// submissions against it.
type FormField struct {
	// ID identifies the field within its form and keys submission
	// responses ("field-<uuid>").
	ID string `json:"id"`

	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`

	// Options lists the selectable values for select fields. Ignored for
	// other field types.
	Options []string `json:"options,omitempty"`
}

// DigitalForm is an admin-built data-collection form.
type DigitalForm struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Fields      []FormField `json:"fields"`
	Status      FormStatus  `json:"status"`

	// AssignedUserIDs lists the operators expected to work with this
	// form's submissions, in addition to the owner relation below.
	AssignedUserIDs []string `json:"assigned_user_ids,omitempty"`

	Ownership

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CollectionKey returns the storage key of the forms collection.
func (f DigitalForm) CollectionKey() string {
	return "forms"
}

// Owner returns the record's ownership relation.
func (f DigitalForm) Owner() Ownership {
	return f.Ownership
}

// Field returns the schema entry with the given id, if present.
func (f DigitalForm) Field(fieldID string) (FormField, bool) {
	for _, field := range f.Fields {
		if field.ID == fieldID {
			return field, true
		}
	}
	return FormField{}, false
}
