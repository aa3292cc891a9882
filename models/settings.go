package models

import "time"

// JobViewSettingsKey is the settings document holding job table columns.
const JobViewSettingsKey = "jobView"

// JobViewSettings is the server-side column preference for the job table.
type JobViewSettings struct {
	Key       string    `json:"key" bson:"key"`
	Columns   []string  `json:"columns" bson:"columns"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type JobViewSettingsPayload struct {
	Columns []string `json:"columns" validate:"required,min=1,dive,required"`
}
