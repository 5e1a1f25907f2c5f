package hello

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/example/java-service/internal/apiinfo"
	applog "github.com/example/java-service/internal/platform/logging"
)

// Greeting is the fixed body returned by GET /api/hello.
const Greeting = "Hello from java-service!"

const (
	path             = "/api/hello"
	plainContentType = "text/plain; charset=utf-8"
)

// Register wires the greeting route into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "say-hello",
		Method:      http.MethodGet,
		Path:        path,
		Summary:     "Say hello",
		Description: "Returns a greeting message",
		Tags:        []string{apiinfo.HelloTag},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Greeting message",
				Content: map[string]*huma.MediaType{
					"text/plain": {
						Schema: &huma.Schema{Type: huma.TypeString, Examples: []any{Greeting}},
					},
				},
			},
		},
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LogInfo(ctx, "hello get", zap.String("path", path))
	return &GetOutput{ContentType: plainContentType, Body: []byte(Greeting)}, nil
}
