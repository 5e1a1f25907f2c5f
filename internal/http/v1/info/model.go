package info

import "github.com/example/java-service/internal/platform/timeutil"

// Contact is the maintainer contact published with the service metadata.
type Contact struct {
	Name  string `json:"name,omitempty"  doc:"Maintainer name"          example:"Platform Team"`
	Email string `json:"email,omitempty" doc:"Maintainer email address" example:"team@example.com" format:"email"`
}

// Data models the service metadata payload.
type Data struct {
	Title       string        `json:"title"             doc:"API title"                         example:"Java Service API"`
	Version     string        `json:"version"           doc:"Build version"                     example:"1.0.0"`
	Description string        `json:"description"       doc:"API description"`
	Contact     *Contact      `json:"contact,omitempty" doc:"Maintainer contact"`
	StartedAt   timeutil.Time `json:"startedAt"         doc:"Process start time (RFC 3339, UTC)" example:"2024-01-15T10:30:00.000Z"`
}
