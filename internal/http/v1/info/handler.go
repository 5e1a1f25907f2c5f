package info

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/example/java-service/internal/apiinfo"
	"github.com/example/java-service/internal/platform/timeutil"
)

// Register wires the service info route. The payload is computed once since
// neither the descriptor nor the start time change after startup.
func Register(api huma.API, desc apiinfo.ServiceDescriptor, startedAt time.Time) {
	data := Data{
		Title:       desc.Title,
		Version:     desc.Version,
		Description: desc.Description,
		StartedAt:   timeutil.NewTime(startedAt),
	}
	if desc.Contact != nil {
		data.Contact = &Contact{Name: desc.Contact.Name, Email: desc.Contact.Email}
	}

	huma.Register(api, huma.Operation{
		OperationID: "get-service-info",
		Method:      http.MethodGet,
		Path:        "/api/info",
		Summary:     "Get service info",
		Description: "Returns the service metadata published in the API documentation.",
		Tags:        []string{apiinfo.HelloTag},
	}, func(context.Context, *struct{}) (*GetOutput, error) {
		return &GetOutput{Body: data}, nil
	})
}
