// Package model contains domain models passed between layers.
package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is one persisted love calculation. Submissions are append-only:
// once written they are never updated or deleted by this service.
type Submission struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	YourName             string             `bson:"yourName" json:"yourName"`
	YourAge              int                `bson:"yourAge" json:"yourAge"`
	CrushName            string             `bson:"crushName" json:"crushName"`
	CalculatedPercentage int                `bson:"calculatedPercentage" json:"calculatedPercentage"`
	Date                 time.Time          `bson:"date" json:"date"`
}

// NewSubmission builds a Submission stamped with now. Names are trimmed.
func NewSubmission(yourName string, yourAge int, crushName string, percentage int, now time.Time) Submission {
	return Submission{
		YourName:             strings.TrimSpace(yourName),
		YourAge:              yourAge,
		CrushName:            strings.TrimSpace(crushName),
		CalculatedPercentage: percentage,
		Date:                 now.UTC(),
	}
}
